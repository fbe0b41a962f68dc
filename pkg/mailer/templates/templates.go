package templates

import (
	"bytes"
	"fmt"
	htmltpl "html/template"
	"sort"
	"strings"
	texttpl "text/template"

	"github.com/ifa360/ifa360-server/pkg/mailer"
)

// Lead kinds mirrored from the capture endpoint.
const (
	Contact           = "contact"
	Register          = "register"
	QuoteRequest      = "quote_request"
	PortfolioInterest = "portfolio_interest"
)

// Subject returns the notification subject line for a lead kind.
func Subject(kind string) string {
	switch strings.ToLower(kind) {
	case Contact:
		return "New contact message"
	case Register:
		return "New client registration"
	case QuoteRequest:
		return "New investment quote request"
	case PortfolioInterest:
		return "New portfolio report request"
	default:
		return "New website lead"
	}
}

var textBody = texttpl.Must(texttpl.New("lead_text").Parse(`New lead from the IFA360 site.

Kind:    {{.Kind}}
Name:    {{.Name}}
Email:   {{.Email}}
{{- if .Mobile}}
Mobile:  {{.Mobile}}
{{- end}}
{{- if .Message}}

Message:
{{.Message}}
{{- end}}
{{- if .Extras}}

Details:
{{- range .Extras}}
  {{.Key}}: {{.Value}}
{{- end}}
{{- end}}
{{- if .SourcePage}}

Source: {{.SourcePage}}
{{- end}}
Lead ID: {{.LeadID}}
`))

var htmlBody = htmltpl.Must(htmltpl.New("lead_html").Parse(`<html><body style="font-family:Arial,sans-serif;color:#222">
<h2 style="color:#174a99">New lead: {{.Kind}}</h2>
<table cellpadding="4">
<tr><td><b>Name</b></td><td>{{.Name}}</td></tr>
<tr><td><b>Email</b></td><td>{{.Email}}</td></tr>
{{if .Mobile}}<tr><td><b>Mobile</b></td><td>{{.Mobile}}</td></tr>{{end}}
{{range .Extras}}<tr><td><b>{{.Key}}</b></td><td>{{.Value}}</td></tr>{{end}}
</table>
{{if .Message}}<p>{{.Message}}</p>{{end}}
{{if .SourcePage}}<p style="color:#777">Source: {{.SourcePage}}</p>{{end}}
<p style="color:#777">Lead ID: {{.LeadID}}</p>
</body></html>`))

type kv struct {
	Key   string
	Value string
}

type leadView struct {
	mailer.LeadJob
	Extras []kv
}

// Render produces the subject, text and HTML bodies for a lead job.
// Payload keys are rendered sorted so output is stable.
func Render(job mailer.LeadJob) (subject, text, html string, err error) {
	view := leadView{LeadJob: job}
	keys := make([]string, 0, len(job.Payload))
	for k := range job.Payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		view.Extras = append(view.Extras, kv{Key: k, Value: fmt.Sprintf("%v", job.Payload[k])})
	}

	var tb bytes.Buffer
	if err = textBody.Execute(&tb, view); err != nil {
		return "", "", "", err
	}
	var hb bytes.Buffer
	if err = htmlBody.Execute(&hb, view); err != nil {
		return "", "", "", err
	}
	return Subject(job.Kind), tb.String(), hb.String(), nil
}
