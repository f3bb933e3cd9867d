package quote

import (
	"math"
	"testing"

	"github.com/joledev/quoter/internal/catalog"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func testCatalog() *catalog.Catalog {
	return catalog.New(catalog.Data{
		ReferenceCurrency:   "MXN",
		ExchangeRate:        17.5,
		SourceCodeSurcharge: 0.25,
		ProjectTypes: []catalog.ProjectType{
			{Key: "website", BasePrice: 7500, Label: "Website"},
			{Key: "ecommerce", BasePrice: 15000, Label: "Online store"},
		},
		Features: []catalog.Feature{
			{Key: "blog", Cost: 2500, Label: "Integrated blog"},
			{Key: "seo", Cost: 2500, Label: "SEO optimized"},
			{Key: "responsiveDesign", Cost: 0, Label: "Responsive design"},
		},
		BusinessSizes: []catalog.MultiplierOption{
			{Key: "1-5", Multiplier: 1.0},
			{Key: "6-20", Multiplier: 1.15},
		},
		CurrentStates: []catalog.MultiplierOption{
			{Key: "fromScratch", Multiplier: 1.0},
			{Key: "improve", Multiplier: 0.7},
		},
		Timelines: []catalog.MultiplierOption{
			{Key: "1-3months", Multiplier: 1.0},
			{Key: "asap", Multiplier: 1.3},
		},
		Currencies: []catalog.Currency{
			{Code: "MXN", Symbol: "$", Name: "Mexican peso"},
			{Code: "USD", Symbol: "$", Name: "US dollar"},
		},
		PlanRates: map[string]catalog.Rates{
			"MXN": {Hourly: 500, HostingMonthly: 3000},
			"USD": {Hourly: 30, HostingMonthly: 170},
		},
	})
}

func TestCompute_WebsiteWithBlogAndSEO(t *testing.T) {
	calc := NewCalculator(testCatalog())

	q := calc.Compute(Selection{
		ProjectTypes: []string{"website"},
		Features:     []string{"blog", "seo"},
		BusinessSize: "1-5",
		CurrentState: "fromScratch",
		Timeline:     "1-3months",
		Currency:     "MXN",
	})

	nearlyEqual(t, "total", q.Total, 12500)
	nearlyEqual(t, "min", q.Min, 10625)
	nearlyEqual(t, "max", q.Max, 14375)
	if q.Currency != "MXN" {
		t.Fatalf("currency = %q, want MXN", q.Currency)
	}
}

func TestCompute_ConvertsToUSD(t *testing.T) {
	calc := NewCalculator(testCatalog())

	q := calc.Compute(Selection{
		ProjectTypes: []string{"website"},
		Features:     []string{"blog", "seo"},
		BusinessSize: "1-5",
		CurrentState: "fromScratch",
		Timeline:     "1-3months",
		Currency:     "USD",
	})

	// 12500 / 17.5 = 714.2857..., banded then rounded.
	nearlyEqual(t, "total", q.Total, 714)
	nearlyEqual(t, "min", q.Min, 607)
	nearlyEqual(t, "max", q.Max, 821)
}

func TestCompute_MultipliersApplyInOrder(t *testing.T) {
	calc := NewCalculator(testCatalog())

	q := calc.Compute(Selection{
		ProjectTypes: []string{"ecommerce"},
		BusinessSize: "6-20",
		CurrentState: "improve",
		Timeline:     "asap",
		Currency:     "MXN",
	})

	// 15000 * 1.15 * 0.7 * 1.3 = 15697.5
	nearlyEqual(t, "total", q.Total, 15698)
	nearlyEqual(t, "min", q.Min, 13343)
	nearlyEqual(t, "max", q.Max, 18052)
}

func TestCompute_UnknownIdentifiersContributeNothing(t *testing.T) {
	calc := NewCalculator(testCatalog())

	withTypos := calc.Compute(Selection{
		ProjectTypes: []string{"website", "spaceship"},
		Features:     []string{"blog", "seo", "teleporter"},
		BusinessSize: "enormous",
		CurrentState: "fromScratch",
		Timeline:     "1-3months",
		Currency:     "MXN",
	})
	clean := calc.Compute(Selection{
		ProjectTypes: []string{"website"},
		Features:     []string{"blog", "seo"},
		CurrentState: "fromScratch",
		Timeline:     "1-3months",
		Currency:     "MXN",
	})

	if withTypos != clean {
		t.Fatalf("unknown identifiers changed the quote: %+v vs %+v", withTypos, clean)
	}
}

func TestCompute_UnknownCurrencyIsNotConverted(t *testing.T) {
	calc := NewCalculator(testCatalog())

	q := calc.Compute(Selection{
		ProjectTypes: []string{"website"},
		Currency:     "EUR",
	})

	nearlyEqual(t, "total", q.Total, 7500)
	if q.Currency != "EUR" {
		t.Fatalf("currency = %q, want EUR echoed back", q.Currency)
	}
}

func TestCompute_EmptySelectionIsZero(t *testing.T) {
	calc := NewCalculator(testCatalog())

	q := calc.Compute(Selection{})

	if q.Min != 0 || q.Max != 0 || q.Total != 0 {
		t.Fatalf("empty selection produced a non-zero quote: %+v", q)
	}
}

func TestCompute_MinNeverExceedsTotalOrMax(t *testing.T) {
	calc := NewCalculator(testCatalog())

	selections := []Selection{
		{ProjectTypes: []string{"website"}, Currency: "MXN"},
		{ProjectTypes: []string{"website"}, Currency: "USD"},
		{ProjectTypes: []string{"ecommerce"}, Features: []string{"blog"}, Timeline: "asap", Currency: "USD"},
		{ProjectTypes: []string{"website", "ecommerce"}, BusinessSize: "6-20", Currency: "MXN"},
	}

	for _, sel := range selections {
		q := calc.Compute(sel)
		if q.Min > q.Total || q.Total > q.Max {
			t.Fatalf("band inverted for %+v: %+v", sel, q)
		}
	}
}
