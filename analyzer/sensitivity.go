package analyzer

import (
	"math"
	"strings"
)

// SensitivityVector holds a country's signed coefficient per category, each
// in [-5, 5]. A positive coefficient means news in that category lifts the
// country's price.
type SensitivityVector map[Category]float64

// MaxSensitivity bounds the absolute value of every coefficient.
const MaxSensitivity = 5.0

// DefaultSensitivity applies to any country code without an explicit entry.
var DefaultSensitivity = SensitivityVector{
	CategoryWar:             -3,
	CategoryPeace:           2,
	CategoryEconomy:         2,
	CategoryHealth:          -1,
	CategoryPolitics:        -1,
	CategorySports:          1,
	CategoryTerrorism:       -3,
	CategoryHumanRights:     -1,
	CategorySocialEvents:    -1,
	CategoryTechnology:      1,
	CategoryEnvironment:     -1,
	CategoryNaturalDisaster: -3,
	CategoryEducation:       1,
}

// sensitivityTable is defined once at process start and never mutated.
var sensitivityTable = map[string]SensitivityVector{
	"US": {CategoryWar: -2, CategoryPeace: 2, CategoryEconomy: 4, CategoryHealth: -2, CategoryPolitics: -3, CategorySports: 1, CategoryTerrorism: -4, CategoryHumanRights: -1, CategorySocialEvents: -2, CategoryTechnology: 4, CategoryEnvironment: -1, CategoryNaturalDisaster: -2, CategoryEducation: 1},
	"CN": {CategoryWar: -3, CategoryPeace: 2, CategoryEconomy: 5, CategoryHealth: -3, CategoryPolitics: -2, CategorySports: 1, CategoryTerrorism: -2, CategoryHumanRights: -3, CategorySocialEvents: -3, CategoryTechnology: 4, CategoryEnvironment: -2, CategoryNaturalDisaster: -3, CategoryEducation: 1},
	"RU": {CategoryWar: -5, CategoryPeace: 4, CategoryEconomy: 3, CategoryHealth: -1, CategoryPolitics: -3, CategorySports: 1, CategoryTerrorism: -3, CategoryHumanRights: -3, CategorySocialEvents: -2, CategoryTechnology: 1, CategoryEnvironment: -1, CategoryNaturalDisaster: -2, CategoryEducation: 1},
	"UA": {CategoryWar: -5, CategoryPeace: 5, CategoryEconomy: 3, CategoryHealth: -2, CategoryPolitics: -2, CategorySports: 1, CategoryTerrorism: -3, CategoryHumanRights: -2, CategorySocialEvents: -1, CategoryTechnology: 1, CategoryEnvironment: -1, CategoryNaturalDisaster: -2, CategoryEducation: 1},
	"DE": {CategoryWar: -2, CategoryPeace: 2, CategoryEconomy: 4, CategoryHealth: -2, CategoryPolitics: -2, CategorySports: 1, CategoryTerrorism: -3, CategoryHumanRights: -1, CategorySocialEvents: -1, CategoryTechnology: 3, CategoryEnvironment: 2, CategoryNaturalDisaster: -2, CategoryEducation: 2},
	"FR": {CategoryWar: -2, CategoryPeace: 2, CategoryEconomy: 3, CategoryHealth: -2, CategoryPolitics: -2, CategorySports: 2, CategoryTerrorism: -4, CategoryHumanRights: -1, CategorySocialEvents: -3, CategoryTechnology: 2, CategoryEnvironment: 2, CategoryNaturalDisaster: -2, CategoryEducation: 2},
	"GB": {CategoryWar: -2, CategoryPeace: 2, CategoryEconomy: 4, CategoryHealth: -2, CategoryPolitics: -3, CategorySports: 2, CategoryTerrorism: -4, CategoryHumanRights: -1, CategorySocialEvents: -2, CategoryTechnology: 3, CategoryEnvironment: 1, CategoryNaturalDisaster: -1, CategoryEducation: 2},
	"JP": {CategoryWar: -3, CategoryPeace: 2, CategoryEconomy: 4, CategoryHealth: -2, CategoryPolitics: -1, CategorySports: 1, CategoryTerrorism: -2, CategoryHumanRights: -1, CategorySocialEvents: -1, CategoryTechnology: 5, CategoryEnvironment: 1, CategoryNaturalDisaster: -5, CategoryEducation: 2},
	"IN": {CategoryWar: -3, CategoryPeace: 3, CategoryEconomy: 4, CategoryHealth: -3, CategoryPolitics: -2, CategorySports: 2, CategoryTerrorism: -4, CategoryHumanRights: -2, CategorySocialEvents: -2, CategoryTechnology: 4, CategoryEnvironment: -2, CategoryNaturalDisaster: -4, CategoryEducation: 3},
	"BR": {CategoryWar: -1, CategoryPeace: 1, CategoryEconomy: 4, CategoryHealth: -3, CategoryPolitics: -3, CategorySports: 3, CategoryTerrorism: -1, CategoryHumanRights: -2, CategorySocialEvents: -2, CategoryTechnology: 2, CategoryEnvironment: -4, CategoryNaturalDisaster: -3, CategoryEducation: 2},
	"IL": {CategoryWar: -5, CategoryPeace: 5, CategoryEconomy: 3, CategoryHealth: -1, CategoryPolitics: -3, CategorySports: 1, CategoryTerrorism: -5, CategoryHumanRights: -3, CategorySocialEvents: -2, CategoryTechnology: 4, CategoryEnvironment: -1, CategoryNaturalDisaster: -1, CategoryEducation: 2},
	"IR": {CategoryWar: -5, CategoryPeace: 4, CategoryEconomy: 3, CategoryHealth: -2, CategoryPolitics: -3, CategorySports: 1, CategoryTerrorism: -4, CategoryHumanRights: -4, CategorySocialEvents: -3, CategoryTechnology: 1, CategoryEnvironment: -2, CategoryNaturalDisaster: -3, CategoryEducation: 1},
	"SA": {CategoryWar: -4, CategoryPeace: 3, CategoryEconomy: 5, CategoryHealth: -1, CategoryPolitics: -2, CategorySports: 2, CategoryTerrorism: -4, CategoryHumanRights: -3, CategorySocialEvents: -2, CategoryTechnology: 2, CategoryEnvironment: -3, CategoryNaturalDisaster: -1, CategoryEducation: 1},
	"TR": {CategoryWar: -4, CategoryPeace: 3, CategoryEconomy: 4, CategoryHealth: -2, CategoryPolitics: -3, CategorySports: 2, CategoryTerrorism: -4, CategoryHumanRights: -3, CategorySocialEvents: -2, CategoryTechnology: 1, CategoryEnvironment: -1, CategoryNaturalDisaster: -4, CategoryEducation: 1},
	"KR": {CategoryWar: -4, CategoryPeace: 4, CategoryEconomy: 4, CategoryHealth: -2, CategoryPolitics: -2, CategorySports: 1, CategoryTerrorism: -2, CategoryHumanRights: -1, CategorySocialEvents: -2, CategoryTechnology: 5, CategoryEnvironment: 1, CategoryNaturalDisaster: -2, CategoryEducation: 3},
	"KP": {CategoryWar: -5, CategoryPeace: 5, CategoryEconomy: 1, CategoryHealth: -3, CategoryPolitics: -2, CategorySports: 1, CategoryTerrorism: -2, CategoryHumanRights: -5, CategorySocialEvents: -1, CategoryTechnology: 1, CategoryEnvironment: -1, CategoryNaturalDisaster: -3, CategoryEducation: 1},
	"MX": {CategoryWar: -1, CategoryPeace: 2, CategoryEconomy: 4, CategoryHealth: -2, CategoryPolitics: -2, CategorySports: 2, CategoryTerrorism: -3, CategoryHumanRights: -2, CategorySocialEvents: -2, CategoryTechnology: 2, CategoryEnvironment: -2, CategoryNaturalDisaster: -4, CategoryEducation: 2},
	"CA": {CategoryWar: -1, CategoryPeace: 2, CategoryEconomy: 4, CategoryHealth: -2, CategoryPolitics: -1, CategorySports: 2, CategoryTerrorism: -2, CategoryHumanRights: -1, CategorySocialEvents: -1, CategoryTechnology: 3, CategoryEnvironment: 3, CategoryNaturalDisaster: -3, CategoryEducation: 2},
	"AU": {CategoryWar: -1, CategoryPeace: 2, CategoryEconomy: 4, CategoryHealth: -2, CategoryPolitics: -1, CategorySports: 3, CategoryTerrorism: -2, CategoryHumanRights: -1, CategorySocialEvents: -1, CategoryTechnology: 2, CategoryEnvironment: 3, CategoryNaturalDisaster: -5, CategoryEducation: 2},
	"ZA": {CategoryWar: -2, CategoryPeace: 2, CategoryEconomy: 4, CategoryHealth: -3, CategoryPolitics: -3, CategorySports: 3, CategoryTerrorism: -2, CategoryHumanRights: -3, CategorySocialEvents: -3, CategoryTechnology: 2, CategoryEnvironment: -2, CategoryNaturalDisaster: -2, CategoryEducation: 3},
	"NG": {CategoryWar: -3, CategoryPeace: 3, CategoryEconomy: 4, CategoryHealth: -4, CategoryPolitics: -3, CategorySports: 2, CategoryTerrorism: -5, CategoryHumanRights: -3, CategorySocialEvents: -2, CategoryTechnology: 2, CategoryEnvironment: -2, CategoryNaturalDisaster: -3, CategoryEducation: 3},
	"EG": {CategoryWar: -4, CategoryPeace: 3, CategoryEconomy: 4, CategoryHealth: -2, CategoryPolitics: -3, CategorySports: 2, CategoryTerrorism: -4, CategoryHumanRights: -3, CategorySocialEvents: -3, CategoryTechnology: 1, CategoryEnvironment: -2, CategoryNaturalDisaster: -2, CategoryEducation: 2},
	"CH": {CategoryWar: -1, CategoryPeace: 3, CategoryEconomy: 5, CategoryHealth: -1, CategoryPolitics: -1, CategorySports: 1, CategoryTerrorism: -2, CategoryHumanRights: 1, CategorySocialEvents: -1, CategoryTechnology: 3, CategoryEnvironment: 2, CategoryNaturalDisaster: -2, CategoryEducation: 2},
	"SG": {CategoryWar: -2, CategoryPeace: 2, CategoryEconomy: 5, CategoryHealth: -3, CategoryPolitics: -1, CategorySports: 1, CategoryTerrorism: -3, CategoryHumanRights: -1, CategorySocialEvents: -1, CategoryTechnology: 4, CategoryEnvironment: 1, CategoryNaturalDisaster: -1, CategoryEducation: 3},
	"NO": {CategoryWar: -1, CategoryPeace: 3, CategoryEconomy: 4, CategoryHealth: -1, CategoryPolitics: -1, CategorySports: 2, CategoryTerrorism: -2, CategoryHumanRights: 2, CategorySocialEvents: -1, CategoryTechnology: 2, CategoryEnvironment: 3, CategoryNaturalDisaster: -2, CategoryEducation: 2},
}

// SensitivityFor returns the vector for a country code, falling back to
// DefaultSensitivity for codes without an explicit entry. The second return
// reports whether an explicit entry was found.
func SensitivityFor(countryCode string) (SensitivityVector, bool) {
	if v, ok := sensitivityTable[strings.ToUpper(countryCode)]; ok {
		return v, true
	}
	return DefaultSensitivity, false
}

// AverageVolatility is the mean absolute coefficient of a country's vector.
// The history backfill uses it to size daily drift.
func AverageVolatility(countryCode string) float64 {
	v, _ := SensitivityFor(countryCode)
	if len(v) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range v {
		total += math.Abs(c)
	}
	return total / float64(len(v))
}
