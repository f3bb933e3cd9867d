package payplan

import (
	"fmt"

	"github.com/joledev/quoter/internal/catalog"
	"github.com/joledev/quoter/internal/money"
)

// GeneratedPlan is one display-ready payment option.
type GeneratedPlan struct {
	Key         string  `json:"key"`
	Label       string  `json:"label"`
	Description string  `json:"description,omitempty"`
	Icon        string  `json:"icon,omitempty"`
	Badge       string  `json:"badge,omitempty"`
	Primary     string  `json:"primary"`
	Secondary   string  `json:"secondary,omitempty"`
	Details     string  `json:"details"`
	TotalCost   float64 `json:"totalCost"`
}

// Generator maps quote totals through every registered plan strategy.
type Generator struct {
	cat *catalog.Catalog
}

func NewGenerator(cat *catalog.Catalog) *Generator {
	return &Generator{cat: cat}
}

// Generate produces one plan per catalog strategy, preserving catalog order;
// the list is a ranked recommendation, not a set. It is a total function:
// unknown currency codes fall back to the reference currency's rates and
// symbol, and catalog plan keys without a registered kind are skipped.
func (g *Generator) Generate(total float64, currencyCode string) []GeneratedPlan {
	rates := g.cat.RatesFor(currencyCode)
	cur := g.displayCurrency(currencyCode)

	metas := g.cat.PaymentPlans()
	plans := make([]GeneratedPlan, 0, len(metas))
	for _, meta := range metas {
		kind, ok := kindsByPlanKey[meta.Key]
		if !ok {
			continue
		}

		terms := kind.Compute(total, rates)
		plan := GeneratedPlan{
			Key:         meta.Key,
			Label:       meta.Label,
			Description: meta.Description,
			Icon:        meta.Icon,
			Badge:       meta.Badge,
			TotalCost:   terms.TotalCost,
		}
		describe(kind, terms, rates, cur, &plan)
		plans = append(plans, plan)
	}

	return plans
}

func (g *Generator) displayCurrency(code string) catalog.Currency {
	if cur, ok := g.cat.FindCurrency(code); ok {
		return cur
	}
	ref, _ := g.cat.FindCurrency(g.cat.ReferenceCurrency())
	return ref
}

// describe fills the display strings of a plan. All monetary text goes
// through money.Format; the arithmetic in Terms is never re-rounded here
// beyond that display step.
func describe(kind Kind, terms Terms, rates catalog.Rates, cur catalog.Currency, plan *GeneratedPlan) {
	amount := func(v float64) string { return money.Format(v, cur) }

	switch kind {
	case FullPayment:
		plan.Primary = amount(terms.Amount)
		plan.Secondary = "One-time payment"
		plan.Details = "Pay the full amount upfront and get a 10% discount."
	case SplitHalves:
		plan.Primary = amount(terms.Amount)
		plan.Secondary = "2 payments"
		plan.Details = "50% when the project starts and 50% on delivery."
	case ThreeInstallments:
		plan.Primary = amount(terms.Amount)
		plan.Secondary = "× 3 months"
		plan.Details = "Split the cost into 3 monthly interest-free payments."
	case SixInstallments:
		plan.Primary = amount(terms.Amount)
		plan.Secondary = "× 6 months"
		plan.Details = "Split the cost into 6 monthly interest-free payments."
	case TwelveMonthFinancing:
		plan.Primary = amount(terms.Amount)
		plan.Secondary = "× 12 months (+15%)"
		plan.Details = "Monthly payments over 12 months with a 15% financing surcharge."
	case SaaSMonthly:
		plan.Primary = amount(terms.Amount) + "/mo"
		plan.Secondary = "× 12 months (includes maintenance)"
		plan.Details = "Monthly payment that includes development plus maintenance and updates."
	case AnnualLicense:
		plan.Primary = amount(terms.Amount)
		plan.Secondary = fmt.Sprintf("+ %s/mo server", amount(terms.Recurring))
		plan.Details = fmt.Sprintf("60%% of the cost as initial license + %s/mo for server and support.", amount(terms.Recurring))
	case HourlyRetainer:
		plan.Primary = fmt.Sprintf("~%d hrs", terms.Hours)
		plan.Secondary = fmt.Sprintf("@ %s/hr", amount(rates.Hourly))
		plan.Details = fmt.Sprintf("Approximately %d development hours at %s per hour.", terms.Hours, amount(rates.Hourly))
	case PayrollStyle:
		plan.Primary = amount(terms.Amount) + "/mo"
		plan.Secondary = "× 6 months"
		plan.Details = "Pay as a monthly salary over 6 months of dedicated development."
	}
}
