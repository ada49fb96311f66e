package relevance

// Tier weights for keyword matches. Each keyword contributes its tier weight
// exactly once regardless of how often it occurs.
const (
	Tier1Weight = 0.25
	Tier2Weight = 0.15
	Tier3Weight = 0.08
)

// tier1Keywords are unambiguous automotive signals: listed OEMs, tyre makers,
// component suppliers, index terms, industry bodies and sector events.
var tier1Keywords = []string{
	// Auto OEMs - stock market names
	"ola electric", "olaelectric", "ola ev",
	"sml mahindra", "sml isuzu",
	"tata motors", "tatamotors",
	"maruti suzuki", "marutisuzuki", "msil",
	"hero motocorp", "heromotocorp",
	"bajaj auto", "bajajauto",
	"tvs motor", "tvsmotor", "tvs supply chain", "tvs-sc",
	"eicher motors", "eichers",
	"ashok leyland", "ashokleyland",
	"force motors", "forcemotors",
	"mahindra & mahindra", "mahindra and mahindra", "m&m",
	"hyundai motor india", "hyundai india ipo",
	// Tyre companies
	"mrf limited", "mrf tyre",
	"ceat tyre", "ceat ltd",
	"apollo tyres", "apollo tyre",
	"balkrishna industries", "bkt tyre",
	// Auto ancillary
	"motherson sumi", "motherson", "samvardhana motherson",
	"bosch india", "bosch ltd",
	"minda industries", "minda corp", "uno minda",
	"varroc engineering", "varroc",
	"endurance technologies", "endurance tech",
	"suprajit engineering",
	"fiem industries",
	"lumax industries", "lumax auto",
	"sona blw", "sona comstar",
	"rane holdings", "rane brake",
	"gabriel india",
	"sundram fasteners",
	"exide industries", "exide battery",
	"amara raja", "amara raja batteries",
	// Stock market auto terms
	"nifty auto", "nifty auto index",
	"bse auto", "auto index",
	"auto sector rally", "auto sector stocks",
	// Industry bodies
	"siam", "fada", "acma",
	// Auto events
	"auto expo", "bharat mobility", "motoverse",
	"india auto show", "motor show india",
	// Unambiguous terms
	"automobile", "automotive industry",
	"vehicle recall", "car recall",
	"electric vehicle", "ev charging", "gigafactory",
	"auto ancillary", "auto component", "auto parts maker",
}

// tier2Keywords are strong signals: global brands, vehicle types, EV and
// driver-assistance vocabulary, motorsport, supply-chain terms.
var tier2Keywords = []string{
	// Brands
	"tesla", "toyota", "honda", "ford", "bmw", "mercedes", "audi",
	"volkswagen", "vw", "hyundai", "kia", "nissan", "chevrolet",
	"general motors", "gm", "stellantis", "chrysler", "jeep",
	"volvo", "jaguar", "land rover", "porsche", "ferrari",
	"lamborghini", "tata motors", "mahindra", "maruti", "suzuki",
	"bajaj", "hero motocorp", "tvs motor", "ola electric", "ather",
	"rivian", "lucid motors", "nio", "byd", "xpeng", "geely",
	"renault", "peugeot", "fiat", "subaru", "mazda", "mitsubishi",
	"lexus", "acura", "infiniti", "cadillac", "buick", "lincoln",
	"genesis", "skoda", "seat", "cupra", "alfa romeo",
	// Vehicle types
	"suv", "sedan", "hatchback", "coupe", "pickup truck", "pickup",
	"minivan", "crossover", "mpv", "two-wheeler", "motorcycle",
	"scooter", "electric bike",
	// EV terms
	"ev ", "evs", "bev", "phev", "hybrid vehicle",
	"plug-in hybrid", "battery electric",
	"charging station", "range anxiety",
	"solid state battery", "battery pack", "lithium ion",
	"regenerative braking",
	// Industry terms
	"auto industry", "car market", "auto market", "vehicle sales",
	"car sales", "dealership", "dealer network", "oem",
	"car plant", "auto plant", "vehicle production", "assembly line",
	// Tech
	"adas", "autonomous driving", "self-driving", "autopilot",
	"connected car", "ota update", "infotainment", "powertrain",
	"drivetrain", "transmission", "turbocharger", "internal combustion",
	// Racing
	"formula 1", "formula one", "f1", "nascar", "motogp", "indycar",
	"rally racing", "le mans", "motorsport",
	// Supply chain
	"tier 1 supplier", "tier-1 supplier",
	"semiconductor shortage", "auto supply chain",
	// Auto-adjacent tech
	"xiaomi car", "xiaomi ev", "xiaomi auto",
	"apple car", "apple carplay",
	"google waymo", "waymo",
	"baidu apollo", "baidu ev",
	// Charging ecosystem
	"charge zone", "chargezone",
	"tata power ev", "tata power charging",
	"statiq", "kazam ev",
	// Emission/regulations
	"emission norms", "emission", "fuel efficiency",
}

// tier3Keywords are weak generic signals.
var tier3Keywords = []string{
	"automotive", "vehicle", "vehicles", "car", "cars",
	"fuel", "fuel price",
	"auto parts", "auto stock", "auto shares",
	"two-wheeler stock", "passenger vehicle stock",
}
