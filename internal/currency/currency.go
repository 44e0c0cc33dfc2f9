// Package currency renders monetary amounts for display.
package currency

import (
	"fmt"
	"math"
	"strings"
)

// Format renders an amount with the configured symbol, two fixed decimal
// places, and comma grouping ("$1,234.50"). Non-finite amounts render as the
// zero amount rather than leaking NaN into reports.
func Format(symbol string, amount float64) string {
	if symbol == "" {
		symbol = "$"
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return symbol + "0.00"
	}

	neg := amount < 0
	fixed := fmt.Sprintf("%.2f", math.Abs(amount))

	parts := strings.SplitN(fixed, ".", 2)
	grouped := groupThousands(parts[0])

	var b strings.Builder
	b.WriteString(symbol)
	if neg {
		b.WriteString("-")
	}
	b.WriteString(grouped)
	b.WriteString(".")
	b.WriteString(parts[1])
	return b.String()
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
