package tagging

// taxonomyTree returns the hand-authored travel category tree. Keywords are
// stored lower-case; multi-word phrases are matched as-is against
// normalized text.
func taxonomyTree() []*CategoryNode {
	return []*CategoryNode{
		{
			Name:     "destination",
			Keywords: []string{"destination", "visit", "travel guide", "places to see"},
			Children: []*CategoryNode{
				{Name: "city", Keywords: []string{"city", "capital", "downtown", "urban", "metropolis", "old town"}},
				{Name: "beach", Keywords: []string{"beach", "coast", "seaside", "shore", "bay"}},
				{Name: "mountain", Keywords: []string{"mountain", "alpine", "peak", "valley", "highlands"}},
				{Name: "countryside", Keywords: []string{"countryside", "rural", "village", "vineyard", "farmland"}},
				{Name: "island", Keywords: []string{"island", "archipelago", "atoll", "lagoon"}},
			},
		},
		{
			Name:     "activity",
			Keywords: []string{"activity", "experience", "tour", "excursion", "adventure"},
			Children: []*CategoryNode{
				{
					Name:     "outdoor_adventure",
					Keywords: []string{"outdoor", "adventure", "expedition"},
					Children: []*CategoryNode{
						{Name: "water_sports", Keywords: []string{"diving", "scuba", "snorkeling", "coral reef", "surfing", "kayaking", "rafting", "sailing", "paddleboarding"}},
						{Name: "hiking", Keywords: []string{"hiking", "trekking", "trail", "climbing", "summit", "backpacking"}},
						{Name: "winter_sports", Keywords: []string{"skiing", "snowboarding", "ski resort", "ice skating", "snowshoeing"}},
						{Name: "cycling", Keywords: []string{"cycling", "mountain biking", "bike tour", "e-bike"}},
					},
				},
				{
					Name:     "cultural",
					Keywords: []string{"cultural", "heritage", "tradition"},
					Children: []*CategoryNode{
						{Name: "museums", Keywords: []string{"museum", "gallery", "exhibition", "art collection"}},
						{Name: "historical", Keywords: []string{"historical", "ancient", "ruins", "castle", "cathedral", "temple", "monument", "archaeological"}},
					},
				},
				{
					Name:     "entertainment",
					Keywords: []string{"entertainment", "nightlife", "show", "concert", "festival", "theme park"},
				},
				{
					Name:     "wellness",
					Keywords: []string{"wellness", "spa", "yoga", "retreat", "massage", "hot springs"},
				},
			},
		},
		{
			Name:     "accommodation",
			Keywords: []string{"accommodation", "stay", "lodging", "rooms", "night"},
			Children: []*CategoryNode{
				{Name: "hotel", Keywords: []string{"hotel", "boutique hotel", "suite", "concierge"}},
				{Name: "hostel", Keywords: []string{"hostel", "dorm", "shared room", "backpacker"}},
				{Name: "resort", Keywords: []string{"resort", "all inclusive", "beachfront", "infinity pool"}},
				{Name: "apartment", Keywords: []string{"apartment", "flat", "self catering", "kitchenette"}},
				{Name: "camping", Keywords: []string{"camping", "campsite", "glamping", "tent", "caravan"}},
				{
					Name:     "amenities",
					Keywords: []string{"amenities"},
					Children: []*CategoryNode{
						{Name: "comfort", Keywords: []string{"wifi", "air conditioning", "parking", "breakfast included"}},
						{Name: "leisure", Keywords: []string{"swimming pool", "gym", "sauna", "rooftop bar"}},
					},
				},
			},
		},
		{
			Name:     "transportation",
			Keywords: []string{"transportation", "transport", "transfer", "getting around"},
			Children: []*CategoryNode{
				{Name: "air", Keywords: []string{"flight", "airline", "airport", "layover", "boarding"}},
				{Name: "rail", Keywords: []string{"train", "railway", "rail pass", "sleeper train", "metro"}},
				{Name: "road", Keywords: []string{"bus", "coach", "car rental", "taxi", "rideshare", "road trip"}},
				{Name: "water", Keywords: []string{"ferry", "cruise", "boat", "water taxi"}},
			},
		},
		{
			Name:     "dining",
			Keywords: []string{"dining", "restaurant", "food", "eat", "cuisine"},
			Children: []*CategoryNode{
				{Name: "fine_dining", Keywords: []string{"fine dining", "michelin", "tasting menu", "gourmet"}},
				{Name: "street_food", Keywords: []string{"street food", "food market", "food stall", "night market"}},
				{Name: "cafes", Keywords: []string{"cafe", "coffee", "bakery", "brunch"}},
				{
					Name:     "cuisines",
					Keywords: []string{"local cuisine"},
					Children: []*CategoryNode{
						{Name: "regional", Keywords: []string{"italian", "french", "japanese", "thai", "mexican", "indian", "mediterranean"}},
						{Name: "dietary", Keywords: []string{"vegetarian", "vegan", "gluten free", "halal", "kosher"}},
					},
				},
			},
		},
		{
			Name:     "shopping",
			Keywords: []string{"shopping", "shop", "buy", "souvenir"},
			Children: []*CategoryNode{
				{Name: "markets", Keywords: []string{"market", "bazaar", "flea market", "craft market"}},
				{Name: "malls", Keywords: []string{"mall", "shopping center", "department store", "outlet"}},
				{Name: "boutiques", Keywords: []string{"boutique", "artisan", "handmade", "designer"}},
			},
		},
		{
			Name:     "practical_info",
			Keywords: []string{"practical", "tips", "advice", "guide"},
			Children: []*CategoryNode{
				{Name: "visa", Keywords: []string{"visa", "passport", "entry requirements", "customs", "border"}},
				{Name: "health", Keywords: []string{"vaccination", "travel insurance", "pharmacy", "medical"}},
				{Name: "safety", Keywords: []string{"safety", "scam", "emergency", "embassy"}},
				{Name: "money", Keywords: []string{"currency", "exchange rate", "atm", "tipping", "budget"}},
			},
		},
		{
			Name:     "general",
			Keywords: []string{"travel", "trip", "vacation", "holiday", "journey", "itinerary"},
		},
	}
}
