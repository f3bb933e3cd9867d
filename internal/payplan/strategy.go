// Package payplan turns a quote total into the menu of payment plans shown
// to the customer. Each plan is a fixed strategy kind paired with a pure
// computation over (total, rates); the catalog contributes labels and the
// presentation order.
package payplan

import (
	"math"

	"github.com/joledev/quoter/internal/catalog"
)

// Kind identifies a payment plan strategy.
type Kind int

const (
	FullPayment Kind = iota
	SplitHalves
	ThreeInstallments
	SixInstallments
	TwelveMonthFinancing
	SaaSMonthly
	AnnualLicense
	HourlyRetainer
	PayrollStyle
)

const (
	fullPaymentDiscount  = 0.10
	financingSurcharge   = 0.15
	maintenanceSurcharge = 0.15
	licenseFraction      = 0.60
	hostingMonths        = 12
	payrollMonths        = 6
)

// kindsByPlanKey maps catalog plan keys to strategy kinds. A catalog entry
// whose key is not listed here is skipped by the generator.
var kindsByPlanKey = map[string]Kind{
	"fullPayment":   FullPayment,
	"splitPayment":  SplitHalves,
	"msi3":          ThreeInstallments,
	"msi6":          SixInstallments,
	"financing12":   TwelveMonthFinancing,
	"saasMonthly":   SaaSMonthly,
	"annualLicense": AnnualLicense,
	"timeRetainer":  HourlyRetainer,
	"payroll":       PayrollStyle,
}

// Terms is the raw arithmetic output of a strategy, before any display
// formatting. Amount is the primary payment in the quote currency. Hours is
// set instead of Amount for the hourly retainer. Recurring is the monthly
// hosting fee charged on top of the annual license. TotalCost is the
// effective total the customer ends up paying under the plan.
type Terms struct {
	Amount    float64
	Hours     int
	Recurring float64
	TotalCost float64
}

// Compute derives the plan terms for a quote total. It is a pure function:
// the same total and rates always yield the same terms.
func (k Kind) Compute(total float64, rates catalog.Rates) Terms {
	switch k {
	case FullPayment:
		discounted := total * (1 - fullPaymentDiscount)
		return Terms{Amount: discounted, TotalCost: discounted}
	case SplitHalves:
		return Terms{Amount: total / 2, TotalCost: total}
	case ThreeInstallments:
		return Terms{Amount: total / 3, TotalCost: total}
	case SixInstallments:
		return Terms{Amount: total / 6, TotalCost: total}
	case TwelveMonthFinancing:
		financed := total * (1 + financingSurcharge)
		return Terms{Amount: financed / 12, TotalCost: financed}
	case SaaSMonthly:
		bundled := total + total*maintenanceSurcharge
		return Terms{Amount: bundled / 12, TotalCost: bundled}
	case AnnualLicense:
		upfront := total * licenseFraction
		return Terms{
			Amount:    upfront,
			Recurring: rates.HostingMonthly,
			TotalCost: upfront + rates.HostingMonthly*hostingMonths,
		}
	case HourlyRetainer:
		// Hours round up so the estimate never undercharges.
		hours := int(math.Ceil(total / rates.Hourly))
		return Terms{Hours: hours, TotalCost: float64(hours) * rates.Hourly}
	case PayrollStyle:
		return Terms{Amount: total / payrollMonths, TotalCost: total}
	}
	return Terms{}
}
