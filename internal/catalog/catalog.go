// Package catalog exposes the immutable reference data the quoting engine
// computes against: project types, features, multiplier options, currencies,
// payment plan metadata and the fixed exchange rate.
//
// All prices and costs are authored in the reference currency. The catalog is
// built once at startup and never mutated afterwards, so every accessor is
// safe for concurrent readers without synchronization.
package catalog

// ProjectType is a quotable kind of project.
type ProjectType struct {
	Key         string   `json:"key"`
	BasePrice   float64  `json:"basePrice"`
	Label       string   `json:"label"`
	Description string   `json:"description,omitempty"`
	Icon        string   `json:"icon,omitempty"`
	Features    []string `json:"features"` // compatible feature keys, in display order
}

// Feature is an optional add-on. A cost of 0 marks baseline behavior that is
// included with a project type.
type Feature struct {
	Key         string  `json:"key"`
	Cost        float64 `json:"cost"`
	Label       string  `json:"label"`
	Description string  `json:"description,omitempty"`
	Icon        string  `json:"icon,omitempty"`
}

// MultiplierOption scales a quote subtotal. Exactly one option per axis
// (business size, current state, timeline) is chosen per quote.
type MultiplierOption struct {
	Key        string  `json:"key"`
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
	Icon       string  `json:"icon,omitempty"`
}

// Currency is a supported quote currency.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Flag   string `json:"flag,omitempty"`
	Name   string `json:"name"`
}

// PaymentPlan holds the display metadata of a payment plan strategy. The
// arithmetic lives with the strategy kinds in the payplan package; the catalog
// only declares labels and presentation order.
type PaymentPlan struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Badge       string `json:"badge,omitempty"`
}

// Rates are the per-currency constants used by the time-based and
// hosting-based payment plans.
type Rates struct {
	Hourly         float64 `json:"hourly"`
	HostingMonthly float64 `json:"hostingMonthly"`
}

// Data carries the raw reference data a Catalog is built from. Slices are in
// display order; order is significant for payment plans, which form a ranked
// recommendation list.
type Data struct {
	ReferenceCurrency   string
	ExchangeRate        float64
	SourceCodeSurcharge float64
	ProjectTypes        []ProjectType
	Features            []Feature
	BusinessSizes       []MultiplierOption
	CurrentStates       []MultiplierOption
	Timelines           []MultiplierOption
	Currencies          []Currency
	PaymentPlans        []PaymentPlan
	PlanRates           map[string]Rates
}

// Catalog is the read-only view over Data with indexed lookups.
type Catalog struct {
	data Data

	projectTypes  map[string]ProjectType
	features      map[string]Feature
	businessSizes map[string]MultiplierOption
	currentStates map[string]MultiplierOption
	timelines     map[string]MultiplierOption
	currencies    map[string]Currency
	paymentPlans  map[string]PaymentPlan
}

// New builds a Catalog from raw data. Keys are assumed unique within their
// category; later duplicates overwrite earlier ones.
func New(data Data) *Catalog {
	c := &Catalog{
		data:          data,
		projectTypes:  make(map[string]ProjectType, len(data.ProjectTypes)),
		features:      make(map[string]Feature, len(data.Features)),
		businessSizes: make(map[string]MultiplierOption, len(data.BusinessSizes)),
		currentStates: make(map[string]MultiplierOption, len(data.CurrentStates)),
		timelines:     make(map[string]MultiplierOption, len(data.Timelines)),
		currencies:    make(map[string]Currency, len(data.Currencies)),
		paymentPlans:  make(map[string]PaymentPlan, len(data.PaymentPlans)),
	}

	for _, pt := range data.ProjectTypes {
		c.projectTypes[pt.Key] = pt
	}
	for _, f := range data.Features {
		c.features[f.Key] = f
	}
	for _, m := range data.BusinessSizes {
		c.businessSizes[m.Key] = m
	}
	for _, m := range data.CurrentStates {
		c.currentStates[m.Key] = m
	}
	for _, m := range data.Timelines {
		c.timelines[m.Key] = m
	}
	for _, cur := range data.Currencies {
		c.currencies[cur.Code] = cur
	}
	for _, p := range data.PaymentPlans {
		c.paymentPlans[p.Key] = p
	}

	return c
}

func (c *Catalog) FindProjectType(key string) (ProjectType, bool) {
	pt, ok := c.projectTypes[key]
	return pt, ok
}

func (c *Catalog) FindFeature(key string) (Feature, bool) {
	f, ok := c.features[key]
	return f, ok
}

func (c *Catalog) FindBusinessSize(key string) (MultiplierOption, bool) {
	m, ok := c.businessSizes[key]
	return m, ok
}

func (c *Catalog) FindCurrentState(key string) (MultiplierOption, bool) {
	m, ok := c.currentStates[key]
	return m, ok
}

func (c *Catalog) FindTimeline(key string) (MultiplierOption, bool) {
	m, ok := c.timelines[key]
	return m, ok
}

func (c *Catalog) FindCurrency(code string) (Currency, bool) {
	cur, ok := c.currencies[code]
	return cur, ok
}

func (c *Catalog) FindPaymentPlan(key string) (PaymentPlan, bool) {
	p, ok := c.paymentPlans[key]
	return p, ok
}

// Ordered accessors. Callers must treat the returned slices as read-only.

func (c *Catalog) ProjectTypes() []ProjectType       { return c.data.ProjectTypes }
func (c *Catalog) Features() []Feature               { return c.data.Features }
func (c *Catalog) BusinessSizes() []MultiplierOption { return c.data.BusinessSizes }
func (c *Catalog) CurrentStates() []MultiplierOption { return c.data.CurrentStates }
func (c *Catalog) Timelines() []MultiplierOption     { return c.data.Timelines }
func (c *Catalog) Currencies() []Currency            { return c.data.Currencies }
func (c *Catalog) PaymentPlans() []PaymentPlan       { return c.data.PaymentPlans }

// ReferenceCurrency is the currency all catalog prices are authored in.
func (c *Catalog) ReferenceCurrency() string { return c.data.ReferenceCurrency }

// ExchangeRate converts reference-currency amounts to any other supported
// currency (by division).
func (c *Catalog) ExchangeRate() float64 { return c.data.ExchangeRate }

// SourceCodeSurcharge is the fractional surcharge applied by the display
// layer when the customer wants the project's source code included.
func (c *Catalog) SourceCodeSurcharge() float64 { return c.data.SourceCodeSurcharge }

// RatesFor returns the plan rates for a currency, falling back to the
// reference currency's rates when the requested code has none. Missing-rate
// lookups are never an error.
func (c *Catalog) RatesFor(code string) Rates {
	if r, ok := c.data.PlanRates[code]; ok {
		return r
	}
	return c.data.PlanRates[c.data.ReferenceCurrency]
}
