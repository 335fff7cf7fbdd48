package analyzer

import "sort"

const (
	// perMatchWeight is what each occurrence of a keyword adds.
	perMatchWeight = 0.2
	// perKeywordCap bounds the contribution of a single keyword.
	perKeywordCap = 1.0
)

// CategoryScores maps a category to its relevance in [0, 1].
type CategoryScores map[Category]float64

// AnalyzeCategories scores text against the lexicon. Every category appears
// in the result; text without any keyword hit yields all zeros.
func AnalyzeCategories(text string) CategoryScores {
	normalized := normalize(text)
	scores := make(CategoryScores, len(AllCategories))

	for _, category := range AllCategories {
		total := 0.0
		if normalized != "" {
			for _, keyword := range Lexicon[category] {
				matches := countWholeWord(normalized, keyword)
				if matches == 0 {
					continue
				}
				total += min(float64(matches)*perMatchWeight, perKeywordCap)
			}
		}
		scores[category] = clamp(total, 0, 1)
	}
	return scores
}

// TotalWeight sums every score.
func (s CategoryScores) TotalWeight() float64 {
	total := 0.0
	for _, v := range s {
		total += v
	}
	return total
}

// Top returns up to n categories with a positive score, strongest first.
// Ties keep the lexicon order.
func (s CategoryScores) Top(n int) []Category {
	out := make([]Category, 0, len(s))
	for _, c := range AllCategories {
		if s[c] > 0 {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return s[out[i]] > s[out[j]] })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
