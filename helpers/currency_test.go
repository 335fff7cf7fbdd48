package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.0000"},
		{0.05, "$0.0500"},
		{0.12345, "$0.1235"},
		{999.5, "$999.5000"},
		{1234.5, "$1,234.5000"},
		{1234567.891, "$1,234,567.8910"},
		{-42.1, "-$42.1000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatUSD(tt.in))
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "+1.25%", FormatPercent(1.25))
	assert.Equal(t, "-33.75%", FormatPercent(-33.75))
	assert.Equal(t, "+0.00%", FormatPercent(0))
}
