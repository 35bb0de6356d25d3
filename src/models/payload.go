package models

import (
	"fmt"
	"strings"
)

// Payload is the typed view of Submission.Data. Exactly one concrete type exists per
// SubmissionType so consumers can switch over it exhaustively.
type Payload interface {
	Kind() SubmissionType
}

type ContactPayload struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type QuotePayload struct {
	Name        string
	Email       string
	Phone       string
	Service     string
	Budget      string
	ProjectType string
	Timeline    string
	Details     string
}

// AuthPayload covers both signup and login events.
type AuthPayload struct {
	Event    SubmissionType
	Username string
	Email    string
	Name     string
}

func (ContactPayload) Kind() SubmissionType { return SubmissionContact }
func (QuotePayload) Kind() SubmissionType   { return SubmissionQuote }
func (p AuthPayload) Kind() SubmissionType  { return p.Event }

// PayloadOf decodes the open data map of s into its typed payload.
func PayloadOf(s Submission) (Payload, error) {
	d := s.Data
	switch s.Type {
	case SubmissionContact:
		return ContactPayload{
			Name:    str(d, "name"),
			Email:   str(d, "email"),
			Subject: str(d, "subject"),
			Message: str(d, "message"),
		}, nil
	case SubmissionQuote:
		return QuotePayload{
			Name:        str(d, "name"),
			Email:       str(d, "email"),
			Phone:       str(d, "phone"),
			Service:     str(d, "service"),
			Budget:      str(d, "budget"),
			ProjectType: str(d, "projectType"),
			Timeline:    str(d, "timeline"),
			Details:     str(d, "details"),
		}, nil
	case SubmissionSignup, SubmissionLogin:
		name := str(d, "name")
		if name == "" {
			name = strings.TrimSpace(str(d, "firstName") + " " + str(d, "lastName"))
		}
		return AuthPayload{
			Event:    s.Type,
			Username: str(d, "username"),
			Email:    str(d, "email"),
			Name:     name,
		}, nil
	}
	return nil, fmt.Errorf("unknown submission type %q", s.Type)
}

func str(d map[string]any, key string) string {
	v, ok := d[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

const NotAvailable = "N/A"

// DisplayField is one labelled line of a rendered submission.
type DisplayField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DisplayFields lists the fields shown for a payload. Quote fields fall back to N/A;
// auth fields are shown only when present.
func DisplayFields(p Payload) []DisplayField {
	switch v := p.(type) {
	case ContactPayload:
		return []DisplayField{
			{"Name", v.Name},
			{"Email", v.Email},
			{"Subject", v.Subject},
			{"Message", v.Message},
		}
	case QuotePayload:
		fields := []DisplayField{
			{"Name", orNA(v.Name)},
			{"Email", orNA(v.Email)},
			{"Phone", orNA(v.Phone)},
			{"Project Type", orNA(v.ProjectType)},
			{"Budget", orNA(v.Budget)},
			{"Timeline", orNA(v.Timeline)},
			{"Details", orNA(v.Details)},
		}
		if v.Service != "" {
			fields = append(fields, DisplayField{"Service", v.Service})
		}
		return fields
	case AuthPayload:
		var fields []DisplayField
		if v.Username != "" {
			fields = append(fields, DisplayField{"Username", v.Username})
		}
		if v.Email != "" {
			fields = append(fields, DisplayField{"Email", v.Email})
		}
		if v.Name != "" {
			fields = append(fields, DisplayField{"Name", v.Name})
		}
		return fields
	}
	return nil
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotAvailable
	}
	return s
}

// TypeLabel is the heading used for a submission type.
func TypeLabel(t SubmissionType) string {
	switch t {
	case SubmissionContact:
		return "Contact Form"
	case SubmissionQuote:
		return "Quote Request"
	case SubmissionSignup:
		return "New Signup"
	case SubmissionLogin:
		return "User Login"
	}
	return string(t)
}
