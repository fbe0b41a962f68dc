package entity

import (
	"time"
)

// Lead kinds accepted by the capture endpoint.
const (
	LeadContact           = "contact"
	LeadRegister          = "register"
	LeadQuoteRequest      = "quote_request"
	LeadPortfolioInterest = "portfolio_interest"
)

// Lead is a captured prospect submission from one of the site forms.
// Payload carries kind-specific extras, such as the projection summary
// attached to a quote request.
type Lead struct {
	ID         string
	Kind       string
	Name       string
	Email      string
	Mobile     string
	Message    string
	Payload    map[string]any
	SourcePage string
	CreatedAt  time.Time
}
