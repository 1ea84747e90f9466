package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEuAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"thousands and decimals", "1.234,56", 1234.56},
		{"euro symbol and space", "€ 10,00", 10.0},
		{"plain integer", "500", 500},
		{"decimal only", "0,5", 0.5},
		{"large amount", "1.234.567,89", 1234567.89},
		{"empty string", "", 0},
		{"garbage", "n/d", 0},
		{"whitespace only", "   ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseEuAmount(tt.in))
		})
	}
}
