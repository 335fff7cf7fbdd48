package analyzer

// Category is a topical bucket used to classify news text.
type Category string

// Categories recognised by the lexicon.
const (
	CategoryWar             Category = "war"
	CategoryPeace           Category = "peace"
	CategoryEconomy         Category = "economy"
	CategoryHealth          Category = "health"
	CategoryPolitics        Category = "politics"
	CategorySports          Category = "sports"
	CategoryTerrorism       Category = "terrorism"
	CategoryHumanRights     Category = "humanRights"
	CategorySocialEvents    Category = "socialEvents"
	CategoryTechnology      Category = "technology"
	CategoryEnvironment     Category = "environment"
	CategoryNaturalDisaster Category = "natural_disaster"
	CategoryEducation       Category = "education"
)

// AllCategories lists every category in a fixed order.
var AllCategories = []Category{
	CategoryWar,
	CategoryPeace,
	CategoryEconomy,
	CategoryHealth,
	CategoryPolitics,
	CategorySports,
	CategoryTerrorism,
	CategoryHumanRights,
	CategorySocialEvents,
	CategoryTechnology,
	CategoryEnvironment,
	CategoryNaturalDisaster,
	CategoryEducation,
}

// Lexicon maps each category to lower-case keywords (English, Spanish,
// French, German, Portuguese, Russian). Multi-word phrases are matched as a
// whole.
var Lexicon = map[Category][]string{
	CategoryWar: {
		"war", "military", "invasion", "troops", "missile", "airstrike", "bombing",
		"artillery", "combat", "offensive", "battle", "soldiers", "army", "drone strike",
		"guerra", "ejército", "guerre", "armée", "krieg", "armee", "truppen",
		"война", "армия", "военный",
	},
	CategoryPeace: {
		"peace", "ceasefire", "truce", "treaty", "agreement", "reconciliation",
		"armistice", "peace talks", "diplomacy", "negotiations",
		"paz", "acuerdo", "tregua", "paix", "accord", "frieden", "waffenstillstand",
		"abkommen", "acordo", "мир", "перемирие", "соглашение",
	},
	CategoryEconomy: {
		"economy", "economic", "trade", "gdp", "inflation", "recession", "market",
		"markets", "stocks", "investment", "tariff", "tariffs", "exports", "imports",
		"growth", "unemployment", "interest rate", "central bank", "currency", "deal",
		"economía", "comercio", "inflación", "économie", "commerce", "wirtschaft",
		"handel", "economia", "экономика", "торговля", "инфляция",
	},
	CategoryHealth: {
		"health", "hospital", "pandemic", "epidemic", "virus", "outbreak", "vaccine",
		"disease", "covid", "cholera", "medical", "doctors",
		"salud", "vacuna", "santé", "vaccin", "gesundheit", "impfstoff", "saúde",
		"здоровье", "вакцина", "эпидемия",
	},
	CategoryPolitics: {
		"government", "election", "elections", "president", "parliament", "minister",
		"prime minister", "vote", "policy", "opposition", "coalition", "senate",
		"congress", "referendum", "cabinet",
		"gobierno", "elecciones", "gouvernement", "élection", "regierung", "wahl",
		"governo", "правительство", "выборы", "президент",
	},
	CategorySports: {
		"football", "soccer", "olympics", "world cup", "championship", "tournament",
		"match", "league", "athlete", "medal", "cricket", "tennis", "basketball",
		"fútbol", "olimpiadas", "sport", "fußball", "futebol", "спорт", "футбол",
	},
	CategoryTerrorism: {
		"terrorism", "terrorist", "terrorists", "terror attack", "suicide bomber",
		"hostage", "extremist", "extremists", "isis", "al-qaeda", "jihadist",
		"insurgents", "explosion",
		"terrorismo", "terrorista", "terrorisme", "terroriste", "terror",
		"terrorismus", "терроризм", "теракт", "террорист",
	},
	CategoryHumanRights: {
		"human rights", "refugees", "refugee", "asylum", "discrimination", "freedom",
		"censorship", "political prisoners", "torture", "crackdown", "amnesty",
		"derechos humanos", "refugiados", "droits de l'homme", "réfugiés",
		"menschenrechte", "flüchtlinge", "direitos humanos", "права человека", "беженцы",
	},
	CategorySocialEvents: {
		"protest", "protests", "demonstration", "rally", "strike", "festival",
		"celebration", "riots", "unrest", "parade",
		"protesta", "manifestación", "huelga", "manifestation", "grève", "streik",
		"протест", "забастовка", "митинг",
	},
	CategoryTechnology: {
		"technology", "tech", "artificial intelligence", "ai", "software", "startup",
		"semiconductor", "chips", "cyber", "cyberattack", "internet", "innovation",
		"satellite", "digital",
		"tecnología", "technologie", "technik", "tecnologia", "технологии",
		"искусственный интеллект",
	},
	CategoryEnvironment: {
		"climate", "climate change", "emissions", "pollution", "carbon", "renewable",
		"deforestation", "biodiversity", "environment", "environmental", "global warming",
		"clima", "medio ambiente", "climat", "environnement", "klima", "umwelt",
		"meio ambiente", "климат", "экология",
	},
	CategoryNaturalDisaster: {
		"earthquake", "tsunami", "hurricane", "typhoon", "cyclone", "flood", "floods",
		"flooding", "wildfire", "wildfires", "drought", "landslide", "volcano",
		"eruption", "tornado",
		"terremoto", "inundación", "huracán", "séisme", "inondation", "erdbeben",
		"überschwemmung", "enchente", "землетрясение", "наводнение", "пожар",
	},
	CategoryEducation: {
		"education", "school", "schools", "university", "universities", "students",
		"teachers", "literacy", "scholarship", "curriculum", "exam",
		"educación", "escuela", "universidad", "éducation", "école", "bildung",
		"schule", "universität", "educação", "образование", "школа", "университет",
	},
}
