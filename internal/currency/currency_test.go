package currency

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		amount float64
		want   string
	}{
		{"zero", "$", 0, "$0.00"},
		{"small", "$", 5, "$5.00"},
		{"cents", "$", 12.5, "$12.50"},
		{"rounding", "$", 12.555, "$12.56"},
		{"thousands", "$", 1234.5, "$1,234.50"},
		{"millions", "$", 1234567.89, "$1,234,567.89"},
		{"negative", "$", -1234.5, "$-1,234.50"},
		{"euro symbol", "€", 99.9, "€99.90"},
		{"empty symbol falls back", "", 10, "$10.00"},
		{"nan", "$", math.NaN(), "$0.00"},
		{"positive infinity", "$", math.Inf(1), "$0.00"},
		{"negative infinity", "$", math.Inf(-1), "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.symbol, tt.amount))
		})
	}
}
