package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"en", true},
		{"EN", true},
		{"pt-BR", true},
		{"zh-Hant", true},
		{"", false},
		{" ", false},
		{"und", false},
		{"not a language", false},
		{"e", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValid(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "en", Normalize(" EN "))
	assert.Equal(t, "pt-BR", Normalize("pt_br"))
	assert.Equal(t, "???", Normalize("???"))
}

func TestNormalizeList(t *testing.T) {
	assert.Equal(t, []string{"es", "fr", "de"}, NormalizeList([]string{"es", "FR", "es", " ", "de", "fr"}))
	assert.Nil(t, NormalizeList(nil))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "English", DisplayName("en"))
	assert.Equal(t, "Spanish", DisplayName("ES"))
	assert.Equal(t, "???", DisplayName("???"))
}

func TestCatalog(t *testing.T) {
	languages := Catalog()
	require.Len(t, languages, 32)

	assert.Equal(t, "en", languages[0].Code)
	assert.Equal(t, "English", languages[0].Name)
	assert.True(t, languages[0].IsCommon)

	seenUncommon := false
	for _, l := range languages {
		if !l.IsCommon {
			seenUncommon = true
			continue
		}
		assert.False(t, seenUncommon, "common languages must come first: %s", l.Code)
	}
}

func TestSearch(t *testing.T) {
	results := Search("span")
	require.Len(t, results, 1)
	assert.Equal(t, "es", results[0].Code)

	assert.Len(t, Search(""), 32)
	assert.Empty(t, Search("klingon"))
}
