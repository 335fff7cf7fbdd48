package analyzer

const (
	// impactScale converts a normalized sensitivity-weighted score into the
	// impact range; the largest possible non-noise magnitude is 1.5.
	impactScale = 1.5

	noiseMin   = 0.3
	noiseMax   = 0.6
	noiseScale = 0.5
)

// Calculator combines category scores with a country's sensitivity vector.
// Results are intentionally non-deterministic: news that carries no signal
// for a country still produces a small random move.
type Calculator struct {
	rnd RandomSource
}

// NewCalculator creates an impact calculator. A nil source uses DefaultRandom.
func NewCalculator(rnd RandomSource) *Calculator {
	if rnd == nil {
		rnd = DefaultRandom()
	}
	return &Calculator{rnd: rnd}
}

// CalculateImpact returns the signed impact of scores on countryCode. Unknown
// codes use DefaultSensitivity.
func (c *Calculator) CalculateImpact(scores CategoryScores, countryCode string) float64 {
	sensitivity, _ := SensitivityFor(countryCode)

	totalImpact := 0.0
	totalWeight := 0.0
	for _, category := range AllCategories {
		score := scores[category]
		if score <= 0 {
			continue
		}
		coefficient, ok := sensitivity[category]
		if !ok {
			continue
		}
		totalImpact += (coefficient / MaxSensitivity) * score * impactScale
		totalWeight += score
	}

	if totalWeight == 0 {
		return c.Noise()
	}
	return totalImpact / totalWeight
}

// Noise is the impact used when categorization gives no signal: a random
// sign times a level drawn from [0.3, 0.6), halved.
func (c *Calculator) Noise() float64 {
	level := Uniform(c.rnd, noiseMin, noiseMax)
	return RandomSign(c.rnd) * level * noiseScale
}
