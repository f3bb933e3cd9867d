// Package quote computes price estimates from customer selections.
package quote

import (
	"github.com/joledev/quoter/internal/catalog"
	"github.com/joledev/quoter/internal/money"
)

// Band half-widths around the point estimate. Both are applied to the
// unrounded total, so Min <= Total <= Max holds for every quote.
const (
	minBand = 0.85
	maxBand = 1.15
)

// Selection is the caller-supplied input to the calculator. Identifiers that
// do not resolve in the catalog contribute nothing; this lenient policy is
// deliberate. A mistyped id silently lowers the estimate instead of failing
// the quote, validation belongs upstream.
type Selection struct {
	ProjectTypes []string `json:"projectTypes"`
	Features     []string `json:"features"`
	BusinessSize string   `json:"businessSize"`
	CurrentState string   `json:"currentState"`
	Timeline     string   `json:"timeline"`
	Currency     string   `json:"currency"`
}

// Quote is the computed estimate: whole amounts in Currency, rounded half
// away from zero.
type Quote struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}

// Calculator derives quotes from selections. It is stateless beyond the
// read-only catalog and safe for concurrent use.
type Calculator struct {
	cat *catalog.Catalog
}

func NewCalculator(cat *catalog.Catalog) *Calculator {
	return &Calculator{cat: cat}
}

// Compute resolves a selection against the catalog. Steps, in order: sum
// project type base prices, add feature costs, apply the business size,
// current state and timeline multipliers, convert out of the reference
// currency, then band and round. It never fails; an empty selection yields a
// zero quote.
func (c *Calculator) Compute(sel Selection) Quote {
	var subtotal float64

	for _, key := range sel.ProjectTypes {
		if pt, ok := c.cat.FindProjectType(key); ok {
			subtotal += pt.BasePrice
		}
	}
	for _, key := range sel.Features {
		if f, ok := c.cat.FindFeature(key); ok {
			subtotal += f.Cost
		}
	}

	// Multiplier order is fixed: size, then state, then timeline. An
	// unresolved option is a factor of 1.
	if m, ok := c.cat.FindBusinessSize(sel.BusinessSize); ok {
		subtotal *= m.Multiplier
	}
	if m, ok := c.cat.FindCurrentState(sel.CurrentState); ok {
		subtotal *= m.Multiplier
	}
	if m, ok := c.cat.FindTimeline(sel.Timeline); ok {
		subtotal *= m.Multiplier
	}

	if cur, ok := c.cat.FindCurrency(sel.Currency); ok && cur.Code != c.cat.ReferenceCurrency() {
		subtotal /= c.cat.ExchangeRate()
	}

	return Quote{
		Min:      money.Round(subtotal * minBand),
		Max:      money.Round(subtotal * maxBand),
		Total:    money.Round(subtotal),
		Currency: sel.Currency,
	}
}
