package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/domain"
)

// PriceNormalizer parses currency amounts in any position and regional
// decimal convention into typed Price values.
type PriceNormalizer struct{}

// NewPriceNormalizer creates a price normalizer.
func NewPriceNormalizer() *PriceNormalizer {
	return &PriceNormalizer{}
}

// currencyDecimals is the known ISO 4217 table with canonical decimal
// places. Unlisted codes are rejected: an unrecognized currency fails the
// whole parse rather than producing a partial result.
var currencyDecimals = map[string]int{
	"USD": 2, "EUR": 2, "GBP": 2, "CAD": 2, "AUD": 2, "NZD": 2,
	"CHF": 2, "SEK": 2, "NOK": 2, "DKK": 2, "PLN": 2, "CZK": 2,
	"HUF": 2, "TRY": 2, "ILS": 2, "AED": 2, "QAR": 2, "OMR": 3,
	"ZAR": 2, "EGP": 2, "MAD": 2, "KES": 2, "TZS": 2,
	"JPY": 0, "KRW": 0, "IDR": 0, "VND": 0, "CLP": 0, "ISK": 0,
	"CNY": 2, "HKD": 2, "SGD": 2, "THB": 2, "MYR": 2, "PHP": 2,
	"INR": 2, "NPR": 2, "LKR": 2, "MVR": 2, "FJD": 2,
	"MXN": 2, "CRC": 2, "PAB": 2, "COP": 2, "PEN": 2, "BOB": 2,
	"ARS": 2, "BRL": 2, "UYU": 2, "CUP": 2, "JMD": 2, "BSD": 2,
	"BBD": 2, "JOD": 3, "BHD": 3, "KWD": 3,
}

// unambiguousSymbols map directly to one currency.
var unambiguousSymbols = map[string]string{
	"€": "EUR", "£": "GBP", "₹": "INR", "₩": "KRW", "₺": "TRY",
	"₫": "VND", "฿": "THB", "₪": "ILS", "zł": "PLN", "R$": "BRL",
}

// ambiguousSymbols resolve through the locale table, falling back to the
// documented default when no locale hint is given.
var ambiguousSymbols = map[string]struct {
	byLocale map[string]string
	fallback string
}{
	"$": {
		byLocale: map[string]string{
			"us": "USD", "ca": "CAD", "au": "AUD", "nz": "NZD",
			"mx": "MXN", "sg": "SGD", "hk": "HKD", "cl": "CLP",
			"co": "COP", "ar": "ARS",
		},
		fallback: "USD",
	},
	"¥": {
		byLocale: map[string]string{"jp": "JPY", "cn": "CNY"},
		fallback: "JPY",
	},
	"kr": {
		byLocale: map[string]string{"se": "SEK", "dk": "DKK", "no": "NOK", "is": "ISK"},
		fallback: "SEK",
	},
}

const symbolClass = `\$|€|£|¥|₹|₩|₺|₫|฿|₪|zł|R\$|kr`

// Ordered price patterns: symbol before amount, amount before symbol,
// 3-letter code before, code after, then bare amount.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(` + symbolClass + `)\s*(\d[\d.,]*)`),
	regexp.MustCompile(`(?i)(\d[\d.,]*)\s*(` + symbolClass + `)`),
	regexp.MustCompile(`\b([A-Z]{3})\s*(\d[\d.,]*)`),
	regexp.MustCompile(`(\d[\d.,]*)\s*([A-Z]{3})\b`),
}

var bareAmountPattern = regexp.MustCompile(`\d[\d.,]*`)

var (
	perPersonPattern = regexp.MustCompile(`(?i)\b(?:per person|/?pp|p\.p\.)\b`)
	perGroupPattern  = regexp.MustCompile(`(?i)\bper group\b`)
	totalPattern     = regexp.MustCompile(`(?i)\btotal\b`)
)

// NormalizePrice parses a currency amount from text. The default currency
// applies when the text carries an amount but no currency indicator; locale
// disambiguates symbols shared across currencies ($, ¥, kr). Returns nil
// when no amount is found or the currency is unrecognized.
func (p *PriceNormalizer) NormalizePrice(text, defaultCurrency, locale string) *domain.Price {
	price, _ := p.parse(text, defaultCurrency, locale)
	return price
}

// parse additionally reports whether the currency came from an explicit
// indicator in the text, which range extraction uses to share currency
// context across both endpoints.
func (p *PriceNormalizer) parse(text, defaultCurrency, locale string) (*domain.Price, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}

	for i, pattern := range pricePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		// The group containing digits is the amount; the other is currency.
		amountText, currencyText := m[1], m[2]
		if i == 0 || i == 2 {
			amountText, currencyText = m[2], m[1]
		}

		currency, ok := p.resolveCurrency(currencyText, locale)
		if !ok {
			// Fail closed on unrecognized codes.
			return nil, false
		}
		amount, ok := parseAmount(amountText)
		if !ok {
			return nil, false
		}
		return &domain.Price{
			Amount:    roundToDecimals(amount, currencyDecimals[currency]),
			Currency:  currency,
			PriceType: detectPriceType(text),
		}, true
	}

	// Bare amount with no indicator: fall back to the caller's default.
	if m := bareAmountPattern.FindString(text); m != "" {
		currency := strings.ToUpper(strings.TrimSpace(defaultCurrency))
		if _, ok := currencyDecimals[currency]; !ok {
			return nil, false
		}
		amount, ok := parseAmount(m)
		if !ok {
			return nil, false
		}
		return &domain.Price{
			Amount:    roundToDecimals(amount, currencyDecimals[currency]),
			Currency:  currency,
			PriceType: detectPriceType(text),
		}, false
	}

	return nil, false
}

// resolveCurrency maps a matched symbol or code to an ISO currency.
func (p *PriceNormalizer) resolveCurrency(indicator, locale string) (string, bool) {
	indicator = strings.TrimSpace(indicator)

	if code, ok := unambiguousSymbols[indicator]; ok {
		return code, true
	}
	if entry, ok := ambiguousSymbols[strings.ToLower(indicator)]; ok {
		if code, found := entry.byLocale[localeRegion(locale)]; found {
			return code, true
		}
		return entry.fallback, true
	}

	code := strings.ToUpper(indicator)
	if _, ok := currencyDecimals[code]; ok {
		return code, true
	}
	return "", false
}

// localeRegion extracts the region hint from a locale tag: "en-US" -> "us".
func localeRegion(locale string) string {
	lower := strings.ToLower(strings.TrimSpace(locale))
	if idx := strings.LastIndexAny(lower, "-_"); idx >= 0 {
		return lower[idx+1:]
	}
	return lower
}

// parseAmount converts a digit string to a float, detecting European
// (1.234,56) versus standard (1,234.56) grouping first.
func parseAmount(text string) (float64, bool) {
	text = strings.TrimSpace(text)

	lastComma := strings.LastIndex(text, ",")
	lastDot := strings.LastIndex(text, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		// Both present: the later separator is the decimal mark.
		if lastComma > lastDot {
			text = strings.ReplaceAll(text, ".", "")
			text = strings.Replace(text, ",", ".", 1)
		} else {
			text = strings.ReplaceAll(text, ",", "")
		}
	case lastComma >= 0:
		// Single comma followed by exactly two digits is a decimal comma;
		// anything else is grouping.
		if strings.Count(text, ",") == 1 && len(text)-lastComma-1 == 2 {
			text = strings.Replace(text, ",", ".", 1)
		} else {
			text = strings.ReplaceAll(text, ",", "")
		}
	case lastDot >= 0:
		// Only repeated dots can be European grouping. A single dot is a
		// decimal mark even with three trailing digits: "10.999" is ten
		// and a fraction, not ten thousand.
		if strings.Count(text, ".") > 1 {
			text = strings.ReplaceAll(text, ".", "")
		}
	}

	amount, err := strconv.ParseFloat(text, 64)
	if err != nil || amount < 0 {
		return 0, false
	}
	return amount, true
}

func roundToDecimals(amount float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(amount*factor) / factor
}

func detectPriceType(text string) domain.PriceType {
	switch {
	case perPersonPattern.MatchString(text):
		return domain.PricePerPerson
	case perGroupPattern.MatchString(text):
		return domain.PricePerGroup
	case totalPattern.MatchString(text):
		return domain.PriceTotal
	}
	return ""
}

var priceRangePattern = regexp.MustCompile(`(?i)((?:` + symbolClass + `|[A-Z]{3} ?)?\s*\d[\d.,]*)\s*(?:-|–|\bto\b)\s*((?:` + symbolClass + `|[A-Z]{3} ?)?\s*\d[\d.,]*(?:\s*[A-Z]{3})?)`)

// ExtractPriceRange finds "X-Y currency" and "X to Y currency" phrasings.
// A currency indicator on either endpoint is shared with the other. The
// min <= max invariant is NOT enforced here; the pipeline validator owns it.
func (p *PriceNormalizer) ExtractPriceRange(text, defaultCurrency, locale string) *domain.PriceRange {
	m := priceRangePattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	minPrice, minExplicit := p.parse(m[1], defaultCurrency, locale)
	maxPrice, maxExplicit := p.parse(m[2], defaultCurrency, locale)
	if minPrice == nil || maxPrice == nil {
		return nil
	}

	// Share explicit currency context across endpoints.
	if minExplicit && !maxExplicit {
		maxPrice.Currency = minPrice.Currency
		maxPrice.Amount = roundToDecimals(maxPrice.Amount, currencyDecimals[minPrice.Currency])
	}
	if maxExplicit && !minExplicit {
		minPrice.Currency = maxPrice.Currency
		minPrice.Amount = roundToDecimals(minPrice.Amount, currencyDecimals[maxPrice.Currency])
	}

	qualifier := detectPriceType(text)
	minPrice.PriceType = qualifier
	maxPrice.PriceType = qualifier

	return &domain.PriceRange{Min: *minPrice, Max: *maxPrice}
}
