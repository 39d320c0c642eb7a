package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchCategoryName(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"exact keyword", "spent 50000 on cement", "Materials"},
		{"keyword inside a longer word", "bought cements for 5000", "Materials"},
		{"hyphenated compound", "firewood delivery-truck", "Transport"},
		{"case insensitive", "Paid WAGES to the crew", "Labor"},
		{"luganda labor term", "paid the fundi 30000", "Labor"},
		{"equipment rental", "mixer hire for two days", "Equipment"},
		{"no keyword", "paid 20000 for lunch", ""},
		{"empty text", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, matchCategoryName(tt.text))
		})
	}
}

// Table order decides ties: a text mentioning both materials and transport
// keywords always resolves to Materials.
func TestMatchCategoryName_TableOrderBreaksTies(t *testing.T) {
	assert.Equal(t, "Materials", matchCategoryName("fuel for the cement truck"))
	assert.Equal(t, "Materials", matchCategoryName("cement delivery by boda"))
}
