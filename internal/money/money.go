// Package money owns display formatting of monetary amounts. Quote and plan
// arithmetic stays in plain float64; this package applies the zero-decimal
// rounding and thousands grouping used when an amount becomes a string, so
// the arithmetic remains testable without formatting concerns.
package money

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/joledev/quoter/internal/catalog"
)

// Round rounds half away from zero to a whole amount. Every rounded value in
// the engine goes through this one policy so downstream plan totals stay
// reproducible.
func Round(amount float64) float64 {
	return math.Round(amount)
}

// Format renders an amount as a whole-unit price in the given currency,
// e.g. $12,500 for 12500.4 MXN. Rounding follows Round.
func Format(amount float64, cur catalog.Currency) string {
	d := decimal.NewFromFloat(amount).Round(0)

	s := cur.Symbol + group(d.Abs().StringFixed(0))
	if d.IsNegative() {
		s = "-" + s
	}
	return s
}

// group inserts thousands separators into a plain digit string.
func group(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	lead := n % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < n; i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
