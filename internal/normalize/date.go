// Package normalize converts free-text travel content fragments into
// canonical values: ISO-8601 dates, typed prices, and recognized entities.
// Normalizers never return errors; a value that cannot be normalized yields
// the zero result and callers omit the field.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Duration is a normalized duration value.
type Duration struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// DateRange is a normalized start/end pair of ISO-8601 timestamps.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DateNormalizer parses absolute, relative, and locale-specific date, time,
// and duration strings.
type DateNormalizer struct{}

// NewDateNormalizer creates a date normalizer.
func NewDateNormalizer() *DateNormalizer {
	return &DateNormalizer{}
}

const (
	daysPerWeek = 7
	noonHour    = 12
)

// absoluteLayouts are the common date formats tried in order. Slash and
// dash layouts are locale-ambiguous and ordered per locale in parseAbsolute.
var absoluteLayouts = []string{
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"2 January, 2006",
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"02.01.2006",
	"2.1.2006",
	"January 2006",
	"Jan 2006",
	"Monday, January 2, 2006",
	"Mon, 2 Jan 2006",
	"2-Jan-2006",
}

// US-style month-first numeric layouts vs day-first for everyone else.
var (
	monthFirstLayouts = []string{"01/02/2006", "1/2/2006", "01-02-2006"}
	dayFirstLayouts   = []string{"02/01/2006", "2/1/2006", "02-01-2006"}
)

// localeMonths translates localized month names to English before layout
// parsing. Only the locales the content corpus actually carries are listed.
var localeMonths = map[string]map[string]string{
	"fr": {
		"janvier": "January", "février": "February", "fevrier": "February",
		"mars": "March", "avril": "April", "mai": "May", "juin": "June",
		"juillet": "July", "août": "August", "aout": "August",
		"septembre": "September", "octobre": "October",
		"novembre": "November", "décembre": "December", "decembre": "December",
	},
	"de": {
		"januar": "January", "februar": "February", "märz": "March",
		"marz": "March", "april": "April", "mai": "May", "juni": "June",
		"juli": "July", "august": "August", "september": "September",
		"oktober": "October", "november": "November", "dezember": "December",
	},
	"es": {
		"enero": "January", "febrero": "February", "marzo": "March",
		"abril": "April", "mayo": "May", "junio": "June", "julio": "July",
		"agosto": "August", "septiembre": "September", "octubre": "October",
		"noviembre": "November", "diciembre": "December",
	},
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var (
	inPattern       = regexp.MustCompile(`^in (\d+) (day|week|month)s?$`)
	agoPattern      = regexp.MustCompile(`^(\d+) (day|week|month)s? ago$`)
	nextLastWeekday = regexp.MustCompile(`^(next|last) (sunday|monday|tuesday|wednesday|thursday|friday|saturday)$`)
)

// NormalizeDate parses a date string into an ISO-8601 timestamp.
// Already-canonical ISO input is returned unchanged. Relative phrases are
// resolved against reference. Returns "" when nothing matched.
func (n *DateNormalizer) NormalizeDate(text, locale string, reference time.Time) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	// Strict ISO input is already canonical.
	if _, err := time.Parse(time.RFC3339, text); err == nil {
		return text
	}
	if _, err := time.Parse("2006-01-02", text); err == nil {
		return text
	}

	if t, ok := n.parseRelative(strings.ToLower(text), reference); ok {
		return isoMidnight(t)
	}

	if t, ok := n.parseAbsolute(text, locale); ok {
		return isoMidnight(t)
	}

	return ""
}

// parseRelative resolves relative-date phrases against the reference date.
func (n *DateNormalizer) parseRelative(text string, reference time.Time) (time.Time, bool) {
	switch text {
	case "today", "tonight":
		return reference, true
	case "tomorrow":
		return reference.AddDate(0, 0, 1), true
	case "yesterday":
		return reference.AddDate(0, 0, -1), true
	case "next week":
		return reference.AddDate(0, 0, daysPerWeek), true
	case "last week":
		return reference.AddDate(0, 0, -daysPerWeek), true
	case "next month":
		return reference.AddDate(0, 1, 0), true
	case "last month":
		return reference.AddDate(0, -1, 0), true
	}

	if m := inPattern.FindStringSubmatch(text); m != nil {
		count, _ := strconv.Atoi(m[1])
		return addUnits(reference, count, m[2]), true
	}
	if m := agoPattern.FindStringSubmatch(text); m != nil {
		count, _ := strconv.Atoi(m[1])
		return addUnits(reference, -count, m[2]), true
	}
	if m := nextLastWeekday.FindStringSubmatch(text); m != nil {
		target := weekdays[m[2]]
		delta := int(target-reference.Weekday()+daysPerWeek) % daysPerWeek
		if m[1] == "next" {
			if delta == 0 {
				delta = daysPerWeek
			}
			return reference.AddDate(0, 0, delta), true
		}
		back := int(reference.Weekday()-target+daysPerWeek) % daysPerWeek
		if back == 0 {
			back = daysPerWeek
		}
		return reference.AddDate(0, 0, -back), true
	}

	return time.Time{}, false
}

func addUnits(reference time.Time, count int, unit string) time.Time {
	switch unit {
	case "day":
		return reference.AddDate(0, 0, count)
	case "week":
		return reference.AddDate(0, 0, count*daysPerWeek)
	case "month":
		return reference.AddDate(0, count, 0)
	}
	return reference
}

// parseAbsolute tries the fixed layout list, translating locale month names
// first and ordering numeric layouts by the locale's day/month convention.
func (n *DateNormalizer) parseAbsolute(text, locale string) (time.Time, bool) {
	candidate := translateMonths(text, locale)
	candidate = titleCaseMonths(candidate)

	layouts := make([]string, 0, len(absoluteLayouts)+len(monthFirstLayouts)+len(dayFirstLayouts))
	layouts = append(layouts, absoluteLayouts...)
	if isMonthFirstLocale(locale) {
		layouts = append(layouts, monthFirstLayouts...)
		layouts = append(layouts, dayFirstLayouts...)
	} else {
		layouts = append(layouts, dayFirstLayouts...)
		layouts = append(layouts, monthFirstLayouts...)
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, candidate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// isMonthFirstLocale reports whether numeric dates read month-first.
// Only US English does; everything else is day-first.
func isMonthFirstLocale(locale string) bool {
	lower := strings.ToLower(locale)
	return lower == "en-us" || lower == "en_us" || lower == "us"
}

func translateMonths(text, locale string) string {
	lang := strings.ToLower(locale)
	if idx := strings.IndexAny(lang, "-_"); idx > 0 {
		lang = lang[:idx]
	}
	months, ok := localeMonths[lang]
	if !ok {
		return text
	}
	lower := strings.ToLower(text)
	for local, english := range months {
		if strings.Contains(lower, local) {
			idx := strings.Index(lower, local)
			return text[:idx] + english + text[idx+len(local):]
		}
	}
	return text
}

var monthWords = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec)\b`)

var titleCaser = cases.Title(language.English)

// titleCaseMonths fixes the casing of month names so layout parsing accepts
// lowercase input like "15 march 2024".
func titleCaseMonths(text string) string {
	return monthWords.ReplaceAllStringFunc(text, func(m string) string {
		return titleCaser.String(strings.ToLower(m))
	})
}

func isoMidnight(t time.Time) string {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Format(time.RFC3339)
}

var (
	time24Pattern   = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	time12Pattern   = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)$`)
	bareHourPattern = regexp.MustCompile(`^(\d{1,2})(?:h|:00)?$`)
)

// NormalizeTime parses a time string into "HH:MM". Supports 24-hour,
// 12-hour with AM/PM, and bare-hour forms. Returns "" when nothing matched.
func (n *DateNormalizer) NormalizeTime(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return ""
	}

	if m := time24Pattern.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return ""
		}
		return fmt.Sprintf("%02d:%02d", hour, minute)
	}

	if m := time12Pattern.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour < 1 || hour > 12 || minute > 59 {
			return ""
		}
		// 12am is midnight, 12pm is noon.
		if m[3] == "pm" && hour != noonHour {
			hour += noonHour
		}
		if m[3] == "am" && hour == noonHour {
			hour = 0
		}
		return fmt.Sprintf("%02d:%02d", hour, minute)
	}

	if m := bareHourPattern.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if hour > 23 {
			return ""
		}
		return fmt.Sprintf("%02d:00", hour)
	}

	return ""
}

var durationPattern = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(hours?|hrs?|h|minutes?|mins?|m|days?|d|weeks?|w)\b`)

// NormalizeDuration parses a duration string into a value/unit pair.
// Recognizes numeric durations plus the idioms "half day" and
// "full day". Returns nil when nothing matched.
func (n *DateNormalizer) NormalizeDuration(text string) *Duration {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return nil
	}

	switch {
	case strings.Contains(lower, "half day"), strings.Contains(lower, "half-day"):
		return &Duration{Value: 0.5, Unit: "days"}
	case strings.Contains(lower, "full day"), strings.Contains(lower, "all day"), strings.Contains(lower, "full-day"):
		return &Duration{Value: 1, Unit: "days"}
	}

	m := durationPattern.FindStringSubmatch(lower)
	if m == nil {
		return nil
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return nil
	}
	return &Duration{Value: value, Unit: canonicalUnit(m[2])}
}

func canonicalUnit(unit string) string {
	switch unit[0] {
	case 'h':
		return "hours"
	case 'm':
		return "minutes"
	case 'd':
		return "days"
	case 'w':
		return "weeks"
	}
	return unit
}

var (
	// "May 15-20, 2024" and "May 15 to 20, 2024"
	monthFirstRange = regexp.MustCompile(`(?i)\b([a-záéíóúû]+)\s+(\d{1,2})\s*(?:-|–|to)\s*(\d{1,2}),?\s+(\d{4})`)
	// "15-20 May 2024"
	dayFirstRange = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(?:-|–|to)\s*(\d{1,2})\s+([a-záéíóúû]+),?\s+(\d{4})`)
	// "15/05/2024 - 20/05/2024"
	slashRange = regexp.MustCompile(`\b(\d{1,2}/\d{1,2}/\d{4})\s*(?:-|–|to)\s*(\d{1,2}/\d{1,2}/\d{4})`)
)

// ExtractDateRanges finds date-range phrases in free text and returns their
// ISO start/end pairs. Unmatched text yields an empty slice, never an error.
func (n *DateNormalizer) ExtractDateRanges(text, locale string) []DateRange {
	ranges := make([]DateRange, 0)

	for _, m := range monthFirstRange.FindAllStringSubmatch(text, -1) {
		start := n.NormalizeDate(fmt.Sprintf("%s %s, %s", m[1], m[2], m[4]), locale, time.Time{})
		end := n.NormalizeDate(fmt.Sprintf("%s %s, %s", m[1], m[3], m[4]), locale, time.Time{})
		if start != "" && end != "" {
			ranges = append(ranges, DateRange{Start: start, End: end})
		}
	}

	for _, m := range dayFirstRange.FindAllStringSubmatch(text, -1) {
		start := n.NormalizeDate(fmt.Sprintf("%s %s %s", m[1], m[3], m[4]), locale, time.Time{})
		end := n.NormalizeDate(fmt.Sprintf("%s %s %s", m[2], m[3], m[4]), locale, time.Time{})
		if start != "" && end != "" {
			ranges = append(ranges, DateRange{Start: start, End: end})
		}
	}

	for _, m := range slashRange.FindAllStringSubmatch(text, -1) {
		start := n.NormalizeDate(m[1], locale, time.Time{})
		end := n.NormalizeDate(m[2], locale, time.Time{})
		if start != "" && end != "" {
			ranges = append(ranges, DateRange{Start: start, End: end})
		}
	}

	return ranges
}
