package countries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodesAreUniqueAndWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range All() {
		require.Len(t, c.Code, 2, c.Name)
		assert.False(t, seen[c.Code], "duplicate code %s", c.Code)
		seen[c.Code] = true
		assert.NotEmpty(t, c.Name)
	}
	assert.GreaterOrEqual(t, Count(), 193)
	assert.Len(t, Codes(), Count())
}

func TestLookup(t *testing.T) {
	c, ok := Lookup(" de ")
	require.True(t, ok)
	assert.Equal(t, "Germany", c.Name)

	_, ok = Lookup("ZZ")
	assert.False(t, ok)
}

func TestTermsAreLowerCase(t *testing.T) {
	c, _ := Lookup("US")
	terms := c.Terms()
	assert.Equal(t, "united states", terms[0])
	assert.Contains(t, terms, "white house")
}

func TestAllReturnsCopy(t *testing.T) {
	list := All()
	list[0].Name = "changed"
	assert.NotEqual(t, "changed", All()[0].Name)
}
