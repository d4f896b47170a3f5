package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// digitsAndLabel strips the locale's group separators (which may be narrow
// or regular no-break spaces depending on the CLDR version) so assertions
// hold across x/text releases.
func digitsAndLabel(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', ' ', ' ':
			return -1
		}
		return r
	}, s)
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name  string
		price Price
		want  string
	}{
		{
			name:  "grouped thousands",
			price: Price{Value: 898350, Currency: "DH"},
			want:  "898350DH",
		},
		{
			name:  "millions",
			price: Price{Value: 2500000, Currency: "DH"},
			want:  "2500000DH",
		},
		{
			name:  "no grouping below one thousand",
			price: Price{Value: 950, Currency: "DH"},
			want:  "950DH",
		},
		{
			name:  "zero",
			price: Price{Value: 0, Currency: "DH"},
			want:  "0DH",
		},
		{
			name:  "fractions are rounded away",
			price: Price{Value: 1234.4, Currency: "DH"},
			want:  "1234DH",
		},
		{
			name:  "label is verbatim",
			price: Price{Value: 100, Currency: "MAD"},
			want:  "100MAD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatPrice(tt.price)
			assert.Equal(t, tt.want, digitsAndLabel(got))
		})
	}
}

func TestFormatPriceUsesSpacedGrouping(t *testing.T) {
	got := FormatPrice(Price{Value: 898350, Currency: "DH"})

	// French grouping separates thousands with some kind of space.
	assert.NotContains(t, got, ",")
	assert.NotContains(t, got, ".")
	assert.True(t, strings.HasSuffix(got, " DH"), "label follows the amount: %q", got)
	assert.NotEqual(t, "898350 DH", got, "thousands must be grouped")
}
