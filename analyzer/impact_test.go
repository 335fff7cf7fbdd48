package analyzer

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"country-bonds/countries"
)

// sequenceSource replays fixed values, cycling when exhausted.
type sequenceSource struct {
	values []float64
	next   int
}

func (s *sequenceSource) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func TestCalculateImpact_SingleCategory(t *testing.T) {
	calc := NewCalculator(&sequenceSource{values: []float64{0.5}})

	tests := []struct {
		name    string
		scores  CategoryScores
		country string
		want    float64
	}{
		{"war hits russia hardest", CategoryScores{CategoryWar: 1.0}, "RU", -1.5},
		{"economy lifts china", CategoryScores{CategoryEconomy: 0.2}, "CN", 1.5},
		{"unknown code uses default vector", CategoryScores{CategoryEconomy: 0.6}, "ZZ", 0.6},
		{"lower case code", CategoryScores{CategoryTechnology: 0.4}, "jp", 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, calc.CalculateImpact(tt.scores, tt.country), 1e-9)
		})
	}
}

func TestCalculateImpact_WeightedAverage(t *testing.T) {
	calc := NewCalculator(nil)
	// US: war -2, economy +4. ((-2/5)*0.4*1.5 + (4/5)*0.2*1.5) / 0.6
	scores := CategoryScores{CategoryWar: 0.4, CategoryEconomy: 0.2}
	want := ((-2.0/5)*0.4*1.5 + (4.0/5)*0.2*1.5) / 0.6
	assert.InDelta(t, want, calc.CalculateImpact(scores, "US"), 1e-9)
}

func TestCalculateImpact_NoiseWhenNoSignal(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"lowest level negative", []float64{0.0, 0.1}, -0.15},
		{"lowest level positive", []float64{0.0, 0.9}, 0.15},
		{"mid level positive", []float64{0.5, 0.7}, 0.225},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := NewCalculator(&sequenceSource{values: tt.values})
			got := calc.CalculateImpact(AnalyzeCategories("nothing relevant here"), "US")
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCalculateImpact_Bounded(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 11))
	calc := NewCalculator(rnd)

	for i := 0; i < 2000; i++ {
		scores := make(CategoryScores)
		for _, c := range AllCategories {
			if rnd.Float64() < 0.4 {
				scores[c] = rnd.Float64()
			}
		}
		for _, c := range countries.All() {
			impact := calc.CalculateImpact(scores, c.Code)
			if scores.TotalWeight() == 0 {
				require.LessOrEqual(t, math.Abs(impact), 0.3)
				continue
			}
			require.LessOrEqual(t, math.Abs(impact), 1.5+1e-9, "country %s", c.Code)
		}
	}
}

func TestCalculateImpact_NoiseVaries(t *testing.T) {
	calc := NewCalculator(rand.New(rand.NewPCG(1, 2)))
	seen := make(map[float64]bool)
	for i := 0; i < 20; i++ {
		seen[calc.CalculateImpact(CategoryScores{}, "DE")] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestSensitivityTableWithinRange(t *testing.T) {
	for code, vector := range sensitivityTable {
		_, known := countries.Lookup(code)
		assert.True(t, known, "sensitivity entry for unknown code %s", code)
		for c, v := range vector {
			assert.LessOrEqual(t, math.Abs(v), MaxSensitivity, "%s/%s", code, c)
		}
		assert.Len(t, vector, len(AllCategories), code)
	}
}

func TestAverageVolatility(t *testing.T) {
	v, explicit := SensitivityFor("XX")
	assert.False(t, explicit)
	assert.Equal(t, DefaultSensitivity, v)

	total := 0.0
	for _, c := range DefaultSensitivity {
		total += math.Abs(c)
	}
	assert.InDelta(t, total/float64(len(DefaultSensitivity)), AverageVolatility("XX"), 1e-9)
}
