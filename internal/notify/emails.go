package notify

import (
	"fmt"
	"html"
	"strings"
)

// Submission carries everything the notification emails mention. Label
// fields are already resolved against the catalog; amounts are already
// formatted for display.
type Submission struct {
	Reference         string
	ContactName       string
	ContactEmail      string
	ContactPhone      string
	Company           string
	Notes             string
	ProjectTypes      []string
	Features          []string
	BusinessSize      string
	CurrentState      string
	Timeline          string
	Currency          string
	EstimateMin       string
	EstimateMax       string
	PaymentPlan       string
	IncludeSourceCode bool
}

func (s Submission) estimate() string {
	return fmt.Sprintf("%s - %s", s.EstimateMin, s.EstimateMax)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// SendOwnerNotification emails the full submission to the site owner.
func (c *Client) SendOwnerNotification(to string, s Submission) error {
	who := s.Company
	if who == "" {
		who = s.ContactName
	}
	subject := fmt.Sprintf("New quote request - %s - %s", who, s.Reference)

	body := fmt.Sprintf(`<h2>New quote request: %s</h2>
<p><strong>Client:</strong> %s<br>
<strong>Email:</strong> %s<br>
<strong>Phone:</strong> %s<br>
<strong>Company:</strong> %s</p>
<p><strong>Projects:</strong> %s<br>
<strong>Features:</strong> %s</p>
<p><strong>Business size:</strong> %s<br>
<strong>Current state:</strong> %s<br>
<strong>Timeline:</strong> %s<br>
<strong>Currency:</strong> %s</p>
<p><strong>Estimated budget:</strong> %s</p>
<p><strong>Payment plan:</strong> %s<br>
<strong>Source code included:</strong> %s</p>
<p><strong>Notes:</strong><br>%s</p>`,
		html.EscapeString(s.Reference),
		html.EscapeString(s.ContactName), html.EscapeString(s.ContactEmail),
		html.EscapeString(s.ContactPhone), html.EscapeString(s.Company),
		html.EscapeString(strings.Join(s.ProjectTypes, ", ")),
		html.EscapeString(strings.Join(s.Features, ", ")),
		html.EscapeString(s.BusinessSize), html.EscapeString(s.CurrentState),
		html.EscapeString(s.Timeline), html.EscapeString(s.Currency),
		html.EscapeString(s.estimate()),
		html.EscapeString(s.PaymentPlan), yesNo(s.IncludeSourceCode),
		html.EscapeString(s.Notes))

	return c.Send(to, subject, body)
}

// SendCustomerConfirmation emails a short summary back to the customer.
func (c *Client) SendCustomerConfirmation(s Submission) error {
	subject := fmt.Sprintf("Your quote request - %s", s.Reference)

	body := fmt.Sprintf(`<p>Hi %s,</p>
<p>Thank you for your interest. Your quote request has been received and will be reviewed in detail.</p>
<p>You will be contacted within the next 24 hours to discuss your project and prepare a personalized proposal.</p>
<p><strong>Summary:</strong><br>
Projects: %s<br>
Estimated budget: %s<br>
Payment plan: %s</p>
<p>Best regards,<br>JoleDev - Technology tailored to your business</p>`,
		html.EscapeString(s.ContactName),
		html.EscapeString(strings.Join(s.ProjectTypes, ", ")),
		html.EscapeString(s.estimate()),
		html.EscapeString(s.PaymentPlan))

	return c.Send(s.ContactEmail, subject, body)
}
