package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"country-bonds/countries"
)

func TestDetectCountry(t *testing.T) {
	d := DefaultDetector()

	tests := []struct {
		text string
		want string
	}{
		{"Germany announces new climate package", "DE"},
		{"Talks in Berlin stall", "DE"},
		{"The U.S. and China agree on tariffs", "US"},
		{"Floods hit South Africa, aid arrives from Nigeria", "ZA"},
		{"Officials in Kyiv report calm night", "UA"},
		{"Россия и Украина", "RU"},
		{"Markets rally worldwide", ""},
		{"", ""},
		// "Niger" must not match inside "Nigeria".
		{"Nigeria election results", "NG"},
		// "oman" must not match inside "woman".
		{"A woman won the marathon", ""},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, d.DetectCountry(tt.text))
		})
	}
}

func TestDetectCountry_EarliestMentionWins(t *testing.T) {
	d := DefaultDetector()
	assert.Equal(t, "FR", d.DetectCountry("France and Spain sign border accord"))
	assert.Equal(t, "ES", d.DetectCountry("Spain and France sign border accord"))
}

func TestDetectCountry_LongerTermWinsAtSameOffset(t *testing.T) {
	d := NewDetector([]countries.Country{
		{Code: "AA", Name: "Guinea"},
		{Code: "BB", Name: "Guinea Bissau"},
	})
	assert.Equal(t, "BB", d.DetectCountry("guinea bissau holds vote"))
	assert.Equal(t, "AA", d.DetectCountry("guinea holds vote"))
}
