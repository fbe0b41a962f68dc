package mailer

// LeadJob is the JSON payload put on the RabbitMQ queue when a lead is
// captured. The worker renders it into a notification email for the
// advisory team.
type LeadJob struct {
	LeadID     string         `json:"lead_id"`
	Kind       string         `json:"kind"` // contact, register, quote_request, portfolio_interest
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Mobile     string         `json:"mobile,omitempty"`
	Message    string         `json:"message,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"` // kind-specific extras, e.g. projection summary
	SourcePage string         `json:"source_page,omitempty"`
}
