// Package countries holds the fixed universe of country instruments traded on
// the platform: ISO 3166-1 alpha-2 codes, display names and the aliases used
// to spot a country in free news text.
package countries

import "strings"

// Country is a tradable country instrument's reference record.
type Country struct {
	Code    string
	Name    string
	Aliases []string
}

// Terms returns the lower-cased name followed by every alias.
func (c Country) Terms() []string {
	terms := make([]string, 0, len(c.Aliases)+1)
	terms = append(terms, strings.ToLower(c.Name))
	for _, a := range c.Aliases {
		terms = append(terms, strings.ToLower(a))
	}
	return terms
}

var byCode map[string]Country

func init() {
	byCode = make(map[string]Country, len(all))
	for _, c := range all {
		byCode[c.Code] = c
	}
}

// All returns a copy of the country list in a stable order.
func All() []Country {
	out := make([]Country, len(all))
	copy(out, all)
	return out
}

// Codes returns every country code in list order.
func Codes() []string {
	codes := make([]string, len(all))
	for i, c := range all {
		codes[i] = c.Code
	}
	return codes
}

// Lookup finds a country by code, ignoring case.
func Lookup(code string) (Country, bool) {
	c, ok := byCode[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// Count returns the number of known countries.
func Count() int {
	return len(all)
}

var all = []Country{
	{Code: "AF", Name: "Afghanistan", Aliases: []string{"afghan", "kabul", "taliban"}},
	{Code: "AL", Name: "Albania", Aliases: []string{"albanian", "tirana"}},
	{Code: "DZ", Name: "Algeria", Aliases: []string{"algerian", "algiers"}},
	{Code: "AD", Name: "Andorra"},
	{Code: "AO", Name: "Angola", Aliases: []string{"angolan", "luanda"}},
	{Code: "AG", Name: "Antigua and Barbuda"},
	{Code: "AR", Name: "Argentina", Aliases: []string{"argentine", "argentinian", "buenos aires"}},
	{Code: "AM", Name: "Armenia", Aliases: []string{"armenian", "yerevan"}},
	{Code: "AU", Name: "Australia", Aliases: []string{"australian", "canberra"}},
	{Code: "AT", Name: "Austria", Aliases: []string{"austrian", "vienna"}},
	{Code: "AZ", Name: "Azerbaijan", Aliases: []string{"azerbaijani", "baku"}},
	{Code: "BS", Name: "Bahamas"},
	{Code: "BH", Name: "Bahrain", Aliases: []string{"bahraini", "manama"}},
	{Code: "BD", Name: "Bangladesh", Aliases: []string{"bangladeshi", "dhaka"}},
	{Code: "BB", Name: "Barbados"},
	{Code: "BY", Name: "Belarus", Aliases: []string{"belarusian", "minsk"}},
	{Code: "BE", Name: "Belgium", Aliases: []string{"belgian", "brussels"}},
	{Code: "BZ", Name: "Belize"},
	{Code: "BJ", Name: "Benin"},
	{Code: "BT", Name: "Bhutan"},
	{Code: "BO", Name: "Bolivia", Aliases: []string{"bolivian", "la paz"}},
	{Code: "BA", Name: "Bosnia and Herzegovina", Aliases: []string{"bosnia", "sarajevo"}},
	{Code: "BW", Name: "Botswana"},
	{Code: "BR", Name: "Brazil", Aliases: []string{"brazilian", "brasilia", "brasil", "brésil"}},
	{Code: "BN", Name: "Brunei"},
	{Code: "BG", Name: "Bulgaria", Aliases: []string{"bulgarian", "sofia"}},
	{Code: "BF", Name: "Burkina Faso"},
	{Code: "BI", Name: "Burundi"},
	{Code: "CV", Name: "Cabo Verde", Aliases: []string{"cape verde"}},
	{Code: "KH", Name: "Cambodia", Aliases: []string{"cambodian", "phnom penh"}},
	{Code: "CM", Name: "Cameroon", Aliases: []string{"cameroonian", "yaounde"}},
	{Code: "CA", Name: "Canada", Aliases: []string{"canadian", "ottawa"}},
	{Code: "CF", Name: "Central African Republic"},
	{Code: "TD", Name: "Chad", Aliases: []string{"chadian", "n'djamena"}},
	{Code: "CL", Name: "Chile", Aliases: []string{"chilean", "santiago"}},
	{Code: "CN", Name: "China", Aliases: []string{"chinese", "beijing", "prc"}},
	{Code: "CO", Name: "Colombia", Aliases: []string{"colombian", "bogota"}},
	{Code: "KM", Name: "Comoros"},
	{Code: "CG", Name: "Congo", Aliases: []string{"republic of the congo", "brazzaville"}},
	{Code: "CD", Name: "Democratic Republic of the Congo", Aliases: []string{"dr congo", "drc", "kinshasa"}},
	{Code: "CR", Name: "Costa Rica"},
	{Code: "CI", Name: "Cote d'Ivoire", Aliases: []string{"ivory coast", "côte d'ivoire"}},
	{Code: "HR", Name: "Croatia", Aliases: []string{"croatian", "zagreb"}},
	{Code: "CU", Name: "Cuba", Aliases: []string{"cuban", "havana"}},
	{Code: "CY", Name: "Cyprus", Aliases: []string{"cypriot", "nicosia"}},
	{Code: "CZ", Name: "Czechia", Aliases: []string{"czech republic", "czech", "prague"}},
	{Code: "DK", Name: "Denmark", Aliases: []string{"danish", "copenhagen"}},
	{Code: "DJ", Name: "Djibouti"},
	{Code: "DM", Name: "Dominica"},
	{Code: "DO", Name: "Dominican Republic", Aliases: []string{"santo domingo"}},
	{Code: "EC", Name: "Ecuador", Aliases: []string{"ecuadorian", "quito"}},
	{Code: "EG", Name: "Egypt", Aliases: []string{"egyptian", "cairo"}},
	{Code: "SV", Name: "El Salvador", Aliases: []string{"salvadoran"}},
	{Code: "GQ", Name: "Equatorial Guinea"},
	{Code: "ER", Name: "Eritrea", Aliases: []string{"eritrean", "asmara"}},
	{Code: "EE", Name: "Estonia", Aliases: []string{"estonian", "tallinn"}},
	{Code: "SZ", Name: "Eswatini", Aliases: []string{"swaziland"}},
	{Code: "ET", Name: "Ethiopia", Aliases: []string{"ethiopian", "addis ababa"}},
	{Code: "FJ", Name: "Fiji"},
	{Code: "FI", Name: "Finland", Aliases: []string{"finnish", "helsinki"}},
	{Code: "FR", Name: "France", Aliases: []string{"french", "paris", "élysée", "frankreich", "francia"}},
	{Code: "GA", Name: "Gabon"},
	{Code: "GM", Name: "Gambia"},
	{Code: "GE", Name: "Georgia", Aliases: []string{"tbilisi"}},
	{Code: "DE", Name: "Germany", Aliases: []string{"german", "berlin", "deutschland", "bundestag", "alemania", "allemagne"}},
	{Code: "GH", Name: "Ghana", Aliases: []string{"ghanaian", "accra"}},
	{Code: "GR", Name: "Greece", Aliases: []string{"greek", "athens"}},
	{Code: "GD", Name: "Grenada"},
	{Code: "GT", Name: "Guatemala", Aliases: []string{"guatemalan"}},
	{Code: "GN", Name: "Guinea", Aliases: []string{"conakry"}},
	{Code: "GW", Name: "Guinea-Bissau"},
	{Code: "GY", Name: "Guyana"},
	{Code: "HT", Name: "Haiti", Aliases: []string{"haitian", "port-au-prince"}},
	{Code: "HN", Name: "Honduras", Aliases: []string{"honduran", "tegucigalpa"}},
	{Code: "HU", Name: "Hungary", Aliases: []string{"hungarian", "budapest"}},
	{Code: "IS", Name: "Iceland", Aliases: []string{"icelandic", "reykjavik"}},
	{Code: "IN", Name: "India", Aliases: []string{"indian", "new delhi", "delhi", "mumbai"}},
	{Code: "ID", Name: "Indonesia", Aliases: []string{"indonesian", "jakarta"}},
	{Code: "IR", Name: "Iran", Aliases: []string{"iranian", "tehran"}},
	{Code: "IQ", Name: "Iraq", Aliases: []string{"iraqi", "baghdad"}},
	{Code: "IE", Name: "Ireland", Aliases: []string{"irish", "dublin"}},
	{Code: "IL", Name: "Israel", Aliases: []string{"israeli", "jerusalem", "tel aviv"}},
	{Code: "IT", Name: "Italy", Aliases: []string{"italian", "rome", "italia"}},
	{Code: "JM", Name: "Jamaica", Aliases: []string{"jamaican", "kingston"}},
	{Code: "JP", Name: "Japan", Aliases: []string{"japanese", "tokyo"}},
	{Code: "JO", Name: "Jordan", Aliases: []string{"jordanian", "amman"}},
	{Code: "KZ", Name: "Kazakhstan", Aliases: []string{"kazakh", "astana"}},
	{Code: "KE", Name: "Kenya", Aliases: []string{"kenyan", "nairobi"}},
	{Code: "KI", Name: "Kiribati"},
	{Code: "KP", Name: "North Korea", Aliases: []string{"pyongyang", "dprk"}},
	{Code: "KR", Name: "South Korea", Aliases: []string{"seoul", "korean"}},
	{Code: "KW", Name: "Kuwait", Aliases: []string{"kuwaiti"}},
	{Code: "KG", Name: "Kyrgyzstan", Aliases: []string{"bishkek"}},
	{Code: "LA", Name: "Laos", Aliases: []string{"vientiane"}},
	{Code: "LV", Name: "Latvia", Aliases: []string{"latvian", "riga"}},
	{Code: "LB", Name: "Lebanon", Aliases: []string{"lebanese", "beirut", "hezbollah"}},
	{Code: "LS", Name: "Lesotho"},
	{Code: "LR", Name: "Liberia", Aliases: []string{"liberian", "monrovia"}},
	{Code: "LY", Name: "Libya", Aliases: []string{"libyan", "tripoli"}},
	{Code: "LI", Name: "Liechtenstein"},
	{Code: "LT", Name: "Lithuania", Aliases: []string{"lithuanian", "vilnius"}},
	{Code: "LU", Name: "Luxembourg"},
	{Code: "MG", Name: "Madagascar", Aliases: []string{"malagasy", "antananarivo"}},
	{Code: "MW", Name: "Malawi"},
	{Code: "MY", Name: "Malaysia", Aliases: []string{"malaysian", "kuala lumpur"}},
	{Code: "MV", Name: "Maldives"},
	{Code: "ML", Name: "Mali", Aliases: []string{"malian", "bamako"}},
	{Code: "MT", Name: "Malta", Aliases: []string{"maltese", "valletta"}},
	{Code: "MH", Name: "Marshall Islands"},
	{Code: "MR", Name: "Mauritania"},
	{Code: "MU", Name: "Mauritius"},
	{Code: "MX", Name: "Mexico", Aliases: []string{"mexican", "mexico city", "méxico"}},
	{Code: "FM", Name: "Micronesia"},
	{Code: "MD", Name: "Moldova", Aliases: []string{"moldovan", "chisinau"}},
	{Code: "MC", Name: "Monaco"},
	{Code: "MN", Name: "Mongolia", Aliases: []string{"mongolian", "ulaanbaatar"}},
	{Code: "ME", Name: "Montenegro"},
	{Code: "MA", Name: "Morocco", Aliases: []string{"moroccan", "rabat"}},
	{Code: "MZ", Name: "Mozambique", Aliases: []string{"maputo"}},
	{Code: "MM", Name: "Myanmar", Aliases: []string{"burma", "burmese", "naypyidaw"}},
	{Code: "NA", Name: "Namibia", Aliases: []string{"windhoek"}},
	{Code: "NR", Name: "Nauru"},
	{Code: "NP", Name: "Nepal", Aliases: []string{"nepalese", "kathmandu"}},
	{Code: "NL", Name: "Netherlands", Aliases: []string{"dutch", "holland", "amsterdam", "the hague"}},
	{Code: "NZ", Name: "New Zealand", Aliases: []string{"wellington", "kiwi"}},
	{Code: "NI", Name: "Nicaragua", Aliases: []string{"managua"}},
	{Code: "NE", Name: "Niger", Aliases: []string{"niamey"}},
	{Code: "NG", Name: "Nigeria", Aliases: []string{"nigerian", "abuja", "lagos"}},
	{Code: "MK", Name: "North Macedonia", Aliases: []string{"macedonia", "skopje"}},
	{Code: "NO", Name: "Norway", Aliases: []string{"norwegian", "oslo"}},
	{Code: "OM", Name: "Oman", Aliases: []string{"omani", "muscat"}},
	{Code: "PK", Name: "Pakistan", Aliases: []string{"pakistani", "islamabad", "karachi"}},
	{Code: "PW", Name: "Palau"},
	{Code: "PA", Name: "Panama", Aliases: []string{"panamanian"}},
	{Code: "PG", Name: "Papua New Guinea"},
	{Code: "PY", Name: "Paraguay", Aliases: []string{"asuncion"}},
	{Code: "PE", Name: "Peru", Aliases: []string{"peruvian", "lima"}},
	{Code: "PH", Name: "Philippines", Aliases: []string{"filipino", "manila"}},
	{Code: "PL", Name: "Poland", Aliases: []string{"polish", "warsaw", "polska"}},
	{Code: "PT", Name: "Portugal", Aliases: []string{"portuguese", "lisbon"}},
	{Code: "QA", Name: "Qatar", Aliases: []string{"qatari", "doha"}},
	{Code: "RO", Name: "Romania", Aliases: []string{"romanian", "bucharest"}},
	{Code: "RU", Name: "Russia", Aliases: []string{"russian", "moscow", "kremlin", "россия", "russland", "rusia"}},
	{Code: "RW", Name: "Rwanda", Aliases: []string{"rwandan", "kigali"}},
	{Code: "KN", Name: "Saint Kitts and Nevis"},
	{Code: "LC", Name: "Saint Lucia"},
	{Code: "VC", Name: "Saint Vincent and the Grenadines"},
	{Code: "WS", Name: "Samoa"},
	{Code: "SM", Name: "San Marino"},
	{Code: "ST", Name: "Sao Tome and Principe"},
	{Code: "SA", Name: "Saudi Arabia", Aliases: []string{"saudi", "riyadh"}},
	{Code: "SN", Name: "Senegal", Aliases: []string{"senegalese", "dakar"}},
	{Code: "RS", Name: "Serbia", Aliases: []string{"serbian", "belgrade"}},
	{Code: "SC", Name: "Seychelles"},
	{Code: "SL", Name: "Sierra Leone", Aliases: []string{"freetown"}},
	{Code: "SG", Name: "Singapore", Aliases: []string{"singaporean"}},
	{Code: "SK", Name: "Slovakia", Aliases: []string{"slovak", "bratislava"}},
	{Code: "SI", Name: "Slovenia", Aliases: []string{"slovenian", "ljubljana"}},
	{Code: "SB", Name: "Solomon Islands"},
	{Code: "SO", Name: "Somalia", Aliases: []string{"somali", "mogadishu"}},
	{Code: "ZA", Name: "South Africa", Aliases: []string{"south african", "pretoria", "johannesburg", "cape town"}},
	{Code: "SS", Name: "South Sudan", Aliases: []string{"juba"}},
	{Code: "ES", Name: "Spain", Aliases: []string{"spanish", "madrid", "españa", "espagne"}},
	{Code: "LK", Name: "Sri Lanka", Aliases: []string{"sri lankan", "colombo"}},
	{Code: "SD", Name: "Sudan", Aliases: []string{"sudanese", "khartoum"}},
	{Code: "SR", Name: "Suriname"},
	{Code: "SE", Name: "Sweden", Aliases: []string{"swedish", "stockholm"}},
	{Code: "CH", Name: "Switzerland", Aliases: []string{"swiss", "bern", "geneva", "zurich"}},
	{Code: "SY", Name: "Syria", Aliases: []string{"syrian", "damascus"}},
	{Code: "TJ", Name: "Tajikistan", Aliases: []string{"dushanbe"}},
	{Code: "TZ", Name: "Tanzania", Aliases: []string{"tanzanian", "dodoma", "dar es salaam"}},
	{Code: "TH", Name: "Thailand", Aliases: []string{"thai", "bangkok"}},
	{Code: "TL", Name: "Timor-Leste", Aliases: []string{"east timor"}},
	{Code: "TG", Name: "Togo", Aliases: []string{"lome"}},
	{Code: "TO", Name: "Tonga"},
	{Code: "TT", Name: "Trinidad and Tobago"},
	{Code: "TN", Name: "Tunisia", Aliases: []string{"tunisian", "tunis"}},
	{Code: "TR", Name: "Turkey", Aliases: []string{"turkish", "ankara", "istanbul", "türkiye", "turkiye"}},
	{Code: "TM", Name: "Turkmenistan", Aliases: []string{"ashgabat"}},
	{Code: "TV", Name: "Tuvalu"},
	{Code: "UG", Name: "Uganda", Aliases: []string{"ugandan", "kampala"}},
	{Code: "UA", Name: "Ukraine", Aliases: []string{"ukrainian", "kyiv", "kiev", "украина"}},
	{Code: "AE", Name: "United Arab Emirates", Aliases: []string{"uae", "emirati", "abu dhabi", "dubai"}},
	{Code: "GB", Name: "United Kingdom", Aliases: []string{"uk", "britain", "british", "london", "england", "downing street"}},
	{Code: "US", Name: "United States", Aliases: []string{"usa", "u.s.", "america", "american", "washington", "white house", "estados unidos", "états-unis"}},
	{Code: "UY", Name: "Uruguay", Aliases: []string{"uruguayan", "montevideo"}},
	{Code: "UZ", Name: "Uzbekistan", Aliases: []string{"uzbek", "tashkent"}},
	{Code: "VU", Name: "Vanuatu"},
	{Code: "VA", Name: "Vatican City", Aliases: []string{"holy see", "vatican"}},
	{Code: "VE", Name: "Venezuela", Aliases: []string{"venezuelan", "caracas"}},
	{Code: "VN", Name: "Vietnam", Aliases: []string{"vietnamese", "hanoi", "viet nam"}},
	{Code: "YE", Name: "Yemen", Aliases: []string{"yemeni", "sanaa", "houthi"}},
	{Code: "ZM", Name: "Zambia", Aliases: []string{"zambian", "lusaka"}},
	{Code: "ZW", Name: "Zimbabwe", Aliases: []string{"zimbabwean", "harare"}},
}
