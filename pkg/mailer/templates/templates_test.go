package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifa360/ifa360-server/pkg/mailer"
)

func TestSubjectPerKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "New contact message", Subject(Contact))
	assert.Equal(t, "New investment quote request", Subject(QuoteRequest))
	assert.Equal(t, "New website lead", Subject("something-else"))
}

func TestRenderLead(t *testing.T) {
	t.Parallel()

	job := mailer.LeadJob{
		LeadID:     "lead-1",
		Kind:       QuoteRequest,
		Name:       "Lerato Mokoena",
		Email:      "lerato@example.com",
		Mobile:     "+27835550123",
		Payload:    map[string]any{"monthly": 2500, "years": 10},
		SourcePage: "ifa360-projection-page",
	}

	subject, text, html, err := Render(job)
	require.NoError(t, err)

	assert.Equal(t, "New investment quote request", subject)
	for _, body := range []string{text, html} {
		assert.Contains(t, body, "Lerato Mokoena")
		assert.Contains(t, body, "lerato@example.com")
		assert.Contains(t, body, "+27835550123")
		assert.Contains(t, body, "lead-1")
		assert.Contains(t, body, "monthly")
	}
}

func TestRenderEscapesHTML(t *testing.T) {
	t.Parallel()

	job := mailer.LeadJob{
		LeadID:  "lead-2",
		Kind:    Contact,
		Name:    "<script>alert(1)</script>",
		Email:   "x@example.com",
		Message: "hello",
	}

	_, _, html, err := Render(job)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
