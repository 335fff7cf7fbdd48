package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCategories_PeaceAndTrade(t *testing.T) {
	scores := AnalyzeCategories("The government signed a peace agreement and trade deal")

	assert.Greater(t, scores[CategoryPeace], 0.0)
	assert.Greater(t, scores[CategoryEconomy], 0.0)
	assert.Greater(t, scores[CategoryPolitics], 0.0)
	assert.Equal(t, 0.0, scores[CategoryWar])
	assert.Equal(t, 0.0, scores[CategoryTerrorism])
}

func TestAnalyzeCategories_NoMatchesIsAllZero(t *testing.T) {
	for _, text := range []string{"", "   \n\t ", "lorem ipsum dolor sit amet"} {
		scores := AnalyzeCategories(text)
		require.Len(t, scores, len(AllCategories))
		for _, c := range AllCategories {
			assert.Equal(t, 0.0, scores[c], "category %s for %q", c, text)
		}
		assert.Equal(t, 0.0, scores.TotalWeight())
	}
}

func TestAnalyzeCategories_WholeWordOnly(t *testing.T) {
	// "warm" and "software" must not count as "war"; "award" neither.
	scores := AnalyzeCategories("A warm award ceremony")
	assert.Equal(t, 0.0, scores[CategoryWar])

	scores = AnalyzeCategories("War!")
	assert.InDelta(t, 0.2, scores[CategoryWar], 1e-9)
}

func TestAnalyzeCategories_DiminishingReturnsPerKeyword(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"one hit", "earthquake", 0.2},
		{"three hits", "earthquake earthquake earthquake", 0.6},
		{"keyword capped at one", strings.Repeat("earthquake ", 12), 1.0},
		{"two keywords add up", "earthquake tsunami", 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := AnalyzeCategories(tt.text)
			assert.InDelta(t, tt.want, scores[CategoryNaturalDisaster], 1e-9)
		})
	}
}

func TestAnalyzeCategories_Bounded(t *testing.T) {
	var sb strings.Builder
	for _, keywords := range Lexicon {
		for _, k := range keywords {
			sb.WriteString(strings.Repeat(k+" ", 7))
		}
	}
	inputs := []string{
		sb.String(),
		"WAR war War wAr military troops missile invasion battle army combat",
		"Землетрясение и наводнение: пожар",
		"Terremoto e inundación en México",
	}
	for _, text := range inputs {
		scores := AnalyzeCategories(text)
		for c, v := range scores {
			assert.GreaterOrEqual(t, v, 0.0, "category %s", c)
			assert.LessOrEqual(t, v, 1.0, "category %s", c)
		}
	}
}

func TestAnalyzeCategories_NonASCIIKeywords(t *testing.T) {
	scores := AnalyzeCategories("Землетрясение в регионе")
	assert.Greater(t, scores[CategoryNaturalDisaster], 0.0)

	scores = AnalyzeCategories("Nouvelle grève à Paris")
	assert.Greater(t, scores[CategorySocialEvents], 0.0)
}

func TestAnalyzeCategories_PhraseAcrossLineBreak(t *testing.T) {
	scores := AnalyzeCategories("activists defend human\nrights")
	assert.Greater(t, scores[CategoryHumanRights], 0.0)
}

func TestCategoryScoresTop(t *testing.T) {
	scores := CategoryScores{
		CategoryWar:     0.4,
		CategoryEconomy: 0.8,
		CategoryPeace:   0.4,
		CategorySports:  0,
	}
	assert.Equal(t, []Category{CategoryEconomy, CategoryWar, CategoryPeace}, scores.Top(0))
	assert.Equal(t, []Category{CategoryEconomy}, scores.Top(1))
}
