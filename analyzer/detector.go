package analyzer

import (
	"sort"

	"country-bonds/countries"
)

type detectorTerm struct {
	code string
	term string
}

// Detector finds the country a piece of news is about by matching country
// names and aliases as whole words.
type Detector struct {
	terms []detectorTerm
}

// NewDetector builds a detector over the given countries.
func NewDetector(list []countries.Country) *Detector {
	d := &Detector{}
	for _, c := range list {
		for _, term := range c.Terms() {
			d.terms = append(d.terms, detectorTerm{code: c.Code, term: normalize(term)})
		}
	}
	// Longer terms first so "south africa" wins over "africa"-like prefixes
	// when two terms start at the same offset.
	sort.SliceStable(d.terms, func(i, j int) bool { return len(d.terms[i].term) > len(d.terms[j].term) })
	return d
}

// DefaultDetector covers every known country.
func DefaultDetector() *Detector {
	return NewDetector(countries.All())
}

// DetectCountry returns the code of the country mentioned earliest in text,
// or "" when none is found.
func (d *Detector) DetectCountry(text string) string {
	normalized := normalize(text)
	if normalized == "" {
		return ""
	}

	bestCode := ""
	bestPos := -1
	bestLen := 0
	for _, t := range d.terms {
		pos := firstWholeWord(normalized, t.term)
		if pos < 0 {
			continue
		}
		if bestPos < 0 || pos < bestPos || (pos == bestPos && len(t.term) > bestLen) {
			bestCode, bestPos, bestLen = t.code, pos, len(t.term)
		}
	}
	return bestCode
}
