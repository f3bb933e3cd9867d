package main

import (
	"encoding/json"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joledev/quoter/internal/catalog"
	"github.com/joledev/quoter/internal/config"
	"github.com/joledev/quoter/internal/money"
	"github.com/joledev/quoter/internal/notify"
	"github.com/joledev/quoter/internal/payplan"
	"github.com/joledev/quoter/internal/quote"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type server struct {
	cat          *catalog.Catalog
	calc         *quote.Calculator
	plans        *payplan.Generator
	notifier     *notify.Client
	contactEmail string
	limiter      *ipRateLimiter
}

func newServer(cat *catalog.Catalog, cfg config.Config) *server {
	return &server{
		cat:          cat,
		calc:         quote.NewCalculator(cat),
		plans:        payplan.NewGenerator(cat),
		notifier:     notify.NewClient(cfg.ResendAPIKey, cfg.FromEmail),
		contactEmail: cfg.ContactEmail,
		limiter:      newIPRateLimiter(5, time.Hour),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type catalogResponse struct {
	ProjectTypes        []catalog.ProjectType      `json:"projectTypes"`
	Features            []catalog.Feature          `json:"features"`
	BusinessSizes       []catalog.MultiplierOption `json:"businessSizes"`
	CurrentStates       []catalog.MultiplierOption `json:"currentStates"`
	Timelines           []catalog.MultiplierOption `json:"timelines"`
	Currencies          []catalog.Currency         `json:"currencies"`
	PaymentPlans        []catalog.PaymentPlan      `json:"paymentPlans"`
	ReferenceCurrency   string                     `json:"referenceCurrency"`
	ExchangeRate        float64                    `json:"exchangeRate"`
	SourceCodeSurcharge float64                    `json:"sourceCodeSurcharge"`
}

func (s *server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalogResponse{
		ProjectTypes:        s.cat.ProjectTypes(),
		Features:            s.cat.Features(),
		BusinessSizes:       s.cat.BusinessSizes(),
		CurrentStates:       s.cat.CurrentStates(),
		Timelines:           s.cat.Timelines(),
		Currencies:          s.cat.Currencies(),
		PaymentPlans:        s.cat.PaymentPlans(),
		ReferenceCurrency:   s.cat.ReferenceCurrency(),
		ExchangeRate:        s.cat.ExchangeRate(),
		SourceCodeSurcharge: s.cat.SourceCodeSurcharge(),
	})
}

type quoteResponse struct {
	Quote               quote.Quote             `json:"quote"`
	Plans               []payplan.GeneratedPlan `json:"plans"`
	SourceCodeSurcharge float64                 `json:"sourceCodeSurcharge"`
}

func (s *server) handleQuote(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var sel quote.Selection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	q := s.calc.Compute(sel)
	writeJSON(w, http.StatusOK, quoteResponse{
		Quote:               q,
		Plans:               s.plans.Generate(q.Total, q.Currency),
		SourceCodeSurcharge: s.cat.SourceCodeSurcharge(),
	})
}

func (s *server) handlePaymentPlans(w http.ResponseWriter, r *http.Request) {
	total, err := strconv.ParseFloat(r.URL.Query().Get("total"), 64)
	if err != nil || total < 0 {
		writeError(w, http.StatusBadRequest, "total must be a non-negative number")
		return
	}
	currency := r.URL.Query().Get("currency")

	writeJSON(w, http.StatusOK, s.plans.Generate(total, currency))
}

type submissionContact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Notes   string `json:"notes"`
}

type submissionRequest struct {
	quote.Selection
	Contact           submissionContact `json:"contact"`
	PaymentPlan       string            `json:"paymentPlan"`
	IncludeSourceCode bool              `json:"includeSourceCode"`
}

type submissionResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Reference string `json:"reference"`
}

func (s *server) handleCreateSubmission(w http.ResponseWriter, r *http.Request) {
	if !s.limiter.allow(clientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "too many requests, please try again later")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req submissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	name := strings.TrimSpace(req.Contact.Name)
	email := strings.TrimSpace(req.Contact.Email)
	switch {
	case name == "" || len(name) > 200:
		writeError(w, http.StatusBadRequest, "name is required (max 200 chars)")
		return
	case !emailRegex.MatchString(email) || len(email) > 254:
		writeError(w, http.StatusBadRequest, "valid email is required")
		return
	case len(req.ProjectTypes) == 0 || len(req.ProjectTypes) > 20:
		writeError(w, http.StatusBadRequest, "at least one project type is required")
		return
	case len(req.Contact.Phone) > 30 || len(req.Contact.Company) > 200 || len(req.Contact.Notes) > 2000:
		writeError(w, http.StatusBadRequest, "field too long")
		return
	}

	// The estimate is always recomputed server side; client-supplied
	// amounts are never trusted.
	q := s.calc.Compute(req.Selection)
	reference := "QT-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])

	cur := s.displayCurrency(req.Currency)
	sub := notify.Submission{
		Reference:         reference,
		ContactName:       name,
		ContactEmail:      email,
		ContactPhone:      req.Contact.Phone,
		Company:           req.Contact.Company,
		Notes:             req.Contact.Notes,
		ProjectTypes:      s.projectTypeLabels(req.ProjectTypes),
		Features:          s.featureLabels(req.Features),
		BusinessSize:      optionLabel(s.cat.FindBusinessSize, req.BusinessSize),
		CurrentState:      optionLabel(s.cat.FindCurrentState, req.CurrentState),
		Timeline:          optionLabel(s.cat.FindTimeline, req.Timeline),
		Currency:          req.Currency,
		EstimateMin:       money.Format(q.Min, cur),
		EstimateMax:       money.Format(q.Max, cur),
		PaymentPlan:       s.planLabel(req.PaymentPlan),
		IncludeSourceCode: req.IncludeSourceCode,
	}

	// Emails go out in the background; a delivery failure never fails
	// the submission, it is only logged.
	go func() {
		if err := s.notifier.SendOwnerNotification(s.contactEmail, sub); err != nil {
			log.Printf("error sending owner notification for %s: %v", sub.Reference, err)
		}
		if err := s.notifier.SendCustomerConfirmation(sub); err != nil {
			log.Printf("error sending customer confirmation for %s: %v", sub.Reference, err)
		}
	}()

	writeJSON(w, http.StatusOK, submissionResponse{
		Success:   true,
		Message:   "Quote request sent successfully",
		Reference: reference,
	})
}

// Label resolution is lenient to mirror the calculator: a key the catalog
// does not know is passed through as-is so the notification still shows
// what the customer picked.

func (s *server) projectTypeLabels(keys []string) []string {
	labels := make([]string, 0, len(keys))
	for _, key := range keys {
		if pt, ok := s.cat.FindProjectType(key); ok {
			labels = append(labels, pt.Label)
		} else {
			labels = append(labels, key)
		}
	}
	return labels
}

func (s *server) featureLabels(keys []string) []string {
	labels := make([]string, 0, len(keys))
	for _, key := range keys {
		if f, ok := s.cat.FindFeature(key); ok {
			labels = append(labels, f.Label)
		} else {
			labels = append(labels, key)
		}
	}
	return labels
}

func optionLabel(find func(string) (catalog.MultiplierOption, bool), key string) string {
	if m, ok := find(key); ok {
		return m.Label
	}
	return key
}

func (s *server) planLabel(key string) string {
	if p, ok := s.cat.FindPaymentPlan(key); ok {
		return p.Label
	}
	return key
}

func (s *server) displayCurrency(code string) catalog.Currency {
	if cur, ok := s.cat.FindCurrency(code); ok {
		return cur
	}
	ref, _ := s.cat.FindCurrency(s.cat.ReferenceCurrency())
	return ref
}
