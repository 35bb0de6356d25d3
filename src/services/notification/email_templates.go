package notification

import (
	"bytes"
	_ "embed"
	"fmt"
	"html"
	"html/template"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"QuickTech-Backend/src/models"
)

type SubmissionEmailData struct {
	ID           int64
	TypeLabel    string
	CreatedAt    string
	Fields       []models.DisplayField
	Email        string
	Phone        string
	DashboardURL string
}

//go:embed submission_email.html
var submissionEmailHTML string

var submissionEmailTmpl = template.Must(template.New("submission").Parse(submissionEmailHTML))

// visitors type whatever they like into the forms
var strict = bluemonday.StrictPolicy()

// plainText strips markup; html/template escapes the result again on render.
func plainText(s string) string {
	return html.UnescapeString(strict.Sanitize(s))
}

func RenderSubmissionEmail(sub models.Submission, dashboardURL string) (subject, body string, err error) {
	payload, err := models.PayloadOf(sub)
	if err != nil {
		return "", "", err
	}

	fields := models.DisplayFields(payload)
	for i := range fields {
		fields[i].Value = plainText(fields[i].Value)
	}

	data := SubmissionEmailData{
		ID:           sub.ID,
		TypeLabel:    models.TypeLabel(sub.Type),
		CreatedAt:    sub.CreatedAt.UTC().Format(time.RFC1123),
		Fields:       fields,
		Email:        plainText(sub.Email),
		Phone:        plainText(sub.PhoneNumber),
		DashboardURL: dashboardURL,
	}

	var buf bytes.Buffer
	if err := submissionEmailTmpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render submission email: %w", err)
	}

	subject = fmt.Sprintf("[QuickTech] %s #%d", data.TypeLabel, sub.ID)
	return subject, buf.String(), nil
}
