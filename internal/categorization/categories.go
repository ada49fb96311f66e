package categorization

// Category is one of the eight fixed automotive news categories. Index is the
// category's position in the canonical ordering and is the tie-break rule when
// two prototypes score identically: the lowest index wins.
type Category struct {
	Name     string
	Index    int
	Keywords []string // ordered; drives prototype construction and explanations
}

// Categories lists the eight fixed categories in canonical order. The keyword
// lists are ordered and deduplicated; explanations report the first matches in
// this order.
var Categories = []Category{
	{
		Name:  "Industry & Market Updates",
		Index: 0,
		Keywords: []string{
			"industry", "sales", "trends", "demand", "outlook", "fuel", "price",
			"impact", "adoption", "market", "forecasts", "vehicle", "volume",
			"share", "growth", "automotive", "quarterly", "results", "annual",
			"retail", "numbers", "delivery", "statistics", "consumer",
		},
	},
	{
		Name:  "Regulatory & Policy Updates",
		Index: 1,
		Keywords: []string{
			"emission", "norms", "safety", "regulations", "incentives", "import",
			"export", "rules", "duty", "government", "policy", "cafe",
			"standards", "fuel", "economy", "compliance", "mandate", "subsidy",
			"scheme", "incentive", "program", "carbon", "credit", "target",
		},
	},
	{
		Name:  "Competitor Activity",
		Index: 2,
		Keywords: []string{
			"vehicle", "launch", "pricing", "changes", "feature", "announcement",
			"capacity", "expansion", "strategic", "partnerships", "model",
			"reveal", "debut", "competitor", "price", "competition", "rival",
			"market", "entry", "product", "lineup", "unveil", "showcase",
		},
	},
	{
		Name:  "Technology & Innovation",
		Index: 3,
		Keywords: []string{
			"battery", "technology", "adas", "features", "connected", "software",
			"update", "platform", "autonomous", "driving", "self-driving",
			"infotainment", "system", "sensor", "lidar", "solid", "state",
			"fast", "charging", "range", "improvement", "vehicle", "innovation",
		},
	},
	{
		Name:  "Manufacturing & Operations",
		Index: 4,
		Keywords: []string{
			"plant", "opening", "production", "changes", "capacity",
			"announcement", "labour", "update", "manufacturing", "investment",
			"factory", "expansion", "assembly", "line", "workforce",
			"retooling", "halt", "shutdown", "output", "facility",
			"inauguration", "capex",
		},
	},
	{
		Name:  "Supply Chain & Logistics",
		Index: 5,
		Keywords: []string{
			"vendor", "development", "component", "availability", "logistics",
			"disruption", "material", "semiconductor", "shortage", "chip",
			"supply", "lithium", "cobalt", "supplier", "tier1", "tier2",
			"procurement", "inventory", "stockpile", "import", "price",
			"commodity",
		},
	},
	{
		Name:  "Corporate & Business News",
		Index: 6,
		Keywords: []string{
			"investment", "partnership", "financial", "announcement",
			"leadership", "change", "merger", "acquisition", "joint", "venture",
			"funding", "revenue", "profit", "quarterly", "earnings", "board",
			"director", "appointment", "resignation", "stake", "buyout",
			"valuation",
		},
	},
	{
		Name:  "External Events",
		Index: 7,
		Keywords: []string{
			"natural", "disaster", "flood", "earthquake", "infrastructure",
			"disruption", "economic", "development", "geopolitical", "trade",
			"tariff", "port", "strike", "fuel", "price", "commodity", "market",
			"global", "recession", "inflation", "rate", "hike", "currency",
			"exchange", "impact",
		},
	},
}

// Names returns the category names in canonical order.
func Names() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = c.Name
	}
	return names
}
