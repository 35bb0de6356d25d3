package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"QuickTech-Backend/src/config"
	"QuickTech-Backend/src/models"
)

func TestRenderContactEmail(t *testing.T) {
	sub := models.Submission{
		ID:   3,
		Type: models.SubmissionContact,
		Data: map[string]any{
			"name":    "Jane <script>alert(1)</script>Doe",
			"email":   "jane@example.com",
			"subject": "Tom & Jerry",
			"message": "Can you tell me more about your SEO packages?",
		},
		CreatedAt: time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC),
		Email:     "jane@example.com",
	}

	subject, body, err := RenderSubmissionEmail(sub, "https://quicktech.io/admin")
	require.NoError(t, err)

	assert.Equal(t, "[QuickTech] Contact Form #3", subject)
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "Tom &amp; Jerry")
	assert.NotContains(t, body, "&amp;amp;")
	assert.Contains(t, body, "https://quicktech.io/admin")
	assert.Contains(t, body, "jane@example.com")
}

func TestRenderQuoteEmailDefaultsToNA(t *testing.T) {
	sub := models.Submission{ID: 1, Type: models.SubmissionQuote, Data: map[string]any{"name": "Sam"}}
	_, body, err := RenderSubmissionEmail(sub, "")
	require.NoError(t, err)
	assert.Contains(t, body, models.NotAvailable)
}

func TestRenderUnknownType(t *testing.T) {
	_, _, err := RenderSubmissionEmail(models.Submission{Type: "survey"}, "")
	assert.Error(t, err)
}

func TestNewSMTPSenderRequiresSettings(t *testing.T) {
	_, err := NewSMTPSender(config.SMTPConfig{Host: "smtp.example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP_PORT")

	s, err := NewSMTPSender(config.SMTPConfig{Host: "smtp.example.com", Port: 587, User: "u", Pass: "p", From: "noreply@quicktech.io"})
	require.NoError(t, err)
	assert.Equal(t, 587, s.Port)
}
