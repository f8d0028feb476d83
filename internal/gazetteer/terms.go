package gazetteer

// locations maps normalized place names to an empty struct. This is a
// curated list of countries, capitals, and major travel destinations; it is
// intentionally an approximation, and unlisted places are expected to be
// missed (false negatives are acceptable per the recognizer contract).
var locations = map[string]struct{}{
	// Countries
	"france": {}, "italy": {}, "spain": {}, "portugal": {}, "greece": {},
	"germany": {}, "austria": {}, "switzerland": {}, "netherlands": {},
	"belgium": {}, "united kingdom": {}, "england": {}, "scotland": {},
	"ireland": {}, "iceland": {}, "norway": {}, "sweden": {}, "denmark": {},
	"finland": {}, "poland": {}, "czech republic": {}, "hungary": {},
	"croatia": {}, "turkey": {}, "morocco": {}, "egypt": {}, "kenya": {},
	"tanzania": {}, "south africa": {}, "japan": {}, "china": {},
	"south korea": {}, "thailand": {}, "vietnam": {}, "cambodia": {},
	"laos": {}, "indonesia": {}, "malaysia": {}, "singapore": {},
	"philippines": {}, "india": {}, "nepal": {}, "sri lanka": {},
	"maldives": {}, "australia": {}, "new zealand": {}, "fiji": {},
	"united states": {}, "canada": {}, "mexico": {}, "costa rica": {},
	"panama": {}, "colombia": {}, "ecuador": {}, "peru": {}, "bolivia": {},
	"chile": {}, "argentina": {}, "brazil": {}, "uruguay": {}, "cuba": {},
	"jamaica": {}, "bahamas": {}, "barbados": {}, "israel": {},
	"jordan": {}, "united arab emirates": {}, "qatar": {}, "oman": {},

	// European cities
	"paris": {}, "lyon": {}, "nice": {}, "marseille": {}, "bordeaux": {},
	"rome": {}, "florence": {}, "venice": {}, "milan": {}, "naples": {},
	"madrid": {}, "barcelona": {}, "seville": {}, "valencia": {},
	"granada": {}, "lisbon": {}, "porto": {}, "athens": {},
	"santorini": {}, "mykonos": {}, "crete": {}, "berlin": {},
	"munich": {}, "hamburg": {}, "vienna": {}, "salzburg": {},
	"zurich": {}, "geneva": {}, "lucerne": {}, "amsterdam": {},
	"rotterdam": {}, "brussels": {}, "bruges": {}, "london": {},
	"edinburgh": {}, "dublin": {}, "reykjavik": {}, "oslo": {},
	"bergen": {}, "stockholm": {}, "copenhagen": {}, "helsinki": {},
	"prague": {}, "budapest": {}, "krakow": {}, "warsaw": {},
	"dubrovnik": {}, "split": {}, "istanbul": {},

	// Africa and Middle East
	"marrakech": {}, "fez": {}, "casablanca": {}, "cairo": {},
	"luxor": {}, "nairobi": {}, "zanzibar": {}, "cape town": {},
	"johannesburg": {}, "dubai": {}, "abu dhabi": {}, "doha": {},
	"tel aviv": {}, "jerusalem": {}, "petra": {}, "amman": {},

	// Asia and Pacific
	"tokyo": {}, "kyoto": {}, "osaka": {}, "hiroshima": {},
	"beijing": {}, "shanghai": {}, "hong kong": {}, "seoul": {},
	"busan": {}, "bangkok": {}, "chiang mai": {}, "phuket": {},
	"krabi": {}, "hanoi": {}, "ho chi minh city": {}, "hoi an": {},
	"siem reap": {}, "phnom penh": {}, "luang prabang": {}, "bali": {},
	"ubud": {}, "jakarta": {}, "kuala lumpur": {}, "penang": {},
	"manila": {}, "cebu": {}, "delhi": {}, "mumbai": {}, "jaipur": {},
	"agra": {}, "goa": {}, "kathmandu": {}, "pokhara": {},
	"colombo": {}, "kandy": {}, "sydney": {}, "melbourne": {},
	"brisbane": {}, "cairns": {}, "perth": {}, "auckland": {},
	"queenstown": {}, "wellington": {}, "christchurch": {},

	// Americas
	"new york": {}, "los angeles": {}, "san francisco": {},
	"las vegas": {}, "miami": {}, "chicago": {}, "boston": {},
	"seattle": {}, "new orleans": {}, "honolulu": {}, "toronto": {},
	"vancouver": {}, "montreal": {}, "quebec city": {}, "banff": {},
	"mexico city": {}, "cancun": {}, "tulum": {}, "oaxaca": {},
	"san jose": {}, "bogota": {}, "cartagena": {}, "medellin": {},
	"quito": {}, "galapagos": {}, "lima": {}, "cusco": {},
	"machu picchu": {}, "la paz": {}, "santiago": {}, "patagonia": {},
	"buenos aires": {}, "mendoza": {}, "rio de janeiro": {},
	"sao paulo": {}, "havana": {}, "kingston": {}, "nassau": {},
}

// activityTypes maps normalized activity terms. Lowercase free-text tokens
// are checked against this table by the entity recognizer.
var activityTypes = map[string]struct{}{
	"hiking": {}, "trekking": {}, "climbing": {}, "mountaineering": {},
	"cycling": {}, "biking": {}, "kayaking": {}, "canoeing": {},
	"rafting": {}, "surfing": {}, "snorkeling": {}, "diving": {},
	"scuba diving": {}, "sailing": {}, "fishing": {}, "swimming": {},
	"skiing": {}, "snowboarding": {}, "safari": {}, "birdwatching": {},
	"sightseeing": {}, "tour": {}, "walking tour": {}, "food tour": {},
	"wine tasting": {}, "cooking class": {}, "museum": {}, "gallery": {},
	"concert": {}, "theater": {}, "festival": {}, "shopping": {},
	"spa": {}, "yoga": {}, "golf": {}, "tennis": {}, "horseback riding": {},
	"paragliding": {}, "skydiving": {}, "bungee jumping": {},
	"zip lining": {}, "ziplining": {}, "camping": {}, "glamping": {},
	"photography": {}, "stargazing": {}, "whale watching": {},
	"dolphin watching": {}, "cruise": {}, "boat trip": {},
	"hot air balloon": {}, "caving": {}, "canyoning": {},
}

// amenities maps normalized amenity terms for accommodation extraction.
var amenities = map[string]struct{}{
	"wifi": {}, "free wifi": {}, "parking": {}, "free parking": {},
	"pool": {}, "swimming pool": {}, "gym": {}, "fitness center": {},
	"spa": {}, "sauna": {}, "hot tub": {}, "restaurant": {}, "bar": {},
	"breakfast": {}, "free breakfast": {}, "room service": {},
	"air conditioning": {}, "heating": {}, "kitchen": {},
	"kitchenette": {}, "laundry": {}, "balcony": {}, "terrace": {},
	"garden": {}, "beach access": {}, "beachfront": {}, "sea view": {},
	"airport shuttle": {}, "concierge": {}, "pet friendly": {},
	"family rooms": {}, "non smoking": {}, "wheelchair accessible": {},
	"elevator": {}, "safe": {}, "minibar": {}, "tv": {}, "bathtub": {},
}

// countryCodes maps normalized country names to ISO 3166-1 alpha-2 codes.
var countryCodes = map[string]string{
	"france": "FR", "italy": "IT", "spain": "ES", "portugal": "PT",
	"greece": "GR", "germany": "DE", "austria": "AT", "switzerland": "CH",
	"netherlands": "NL", "belgium": "BE", "united kingdom": "GB",
	"england": "GB", "scotland": "GB", "ireland": "IE", "iceland": "IS",
	"norway": "NO", "sweden": "SE", "denmark": "DK", "finland": "FI",
	"poland": "PL", "czech republic": "CZ", "hungary": "HU",
	"croatia": "HR", "turkey": "TR", "morocco": "MA", "egypt": "EG",
	"kenya": "KE", "tanzania": "TZ", "south africa": "ZA", "japan": "JP",
	"china": "CN", "south korea": "KR", "thailand": "TH", "vietnam": "VN",
	"cambodia": "KH", "laos": "LA", "indonesia": "ID", "malaysia": "MY",
	"singapore": "SG", "philippines": "PH", "india": "IN", "nepal": "NP",
	"sri lanka": "LK", "maldives": "MV", "australia": "AU",
	"new zealand": "NZ", "fiji": "FJ", "united states": "US",
	"usa": "US", "america": "US", "canada": "CA", "mexico": "MX",
	"costa rica": "CR", "panama": "PA", "colombia": "CO", "ecuador": "EC",
	"peru": "PE", "bolivia": "BO", "chile": "CL", "argentina": "AR",
	"brazil": "BR", "uruguay": "UY", "cuba": "CU", "jamaica": "JM",
	"bahamas": "BS", "barbados": "BB", "israel": "IL", "jordan": "JO",
	"united arab emirates": "AE", "uae": "AE", "qatar": "QA", "oman": "OM",
}

// knownCodes is the set of ISO alpha-2 codes accepted by validation.
var knownCodes = func() map[string]struct{} {
	codes := make(map[string]struct{}, len(countryCodes))
	for _, code := range countryCodes {
		codes[code] = struct{}{}
	}
	return codes
}()
