package models

import "time"

// ContactRequest ฟอร์มติดต่อจากหน้า Contact
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=5"`
	Message string `json:"message" validate:"required,min=10"`
}

// Map returns the validated fields only; anything else in the body is dropped.
func (r ContactRequest) Map() map[string]any {
	return map[string]any{
		"name":    r.Name,
		"email":   r.Email,
		"subject": r.Subject,
		"message": r.Message,
	}
}

// ContactRecord is the contact view of a stored contact submission.
type ContactRecord struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// QuickQuoteForm is what the quick-quote wizard collects before posting to /quote.
// The server stores quote bodies as open records and does not apply these rules.
type QuickQuoteForm struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Service string `json:"service" validate:"required"`
	Budget  string `json:"budget" validate:"required"`
}

// Map is the body posted to /quote.
func (f QuickQuoteForm) Map() map[string]any {
	return map[string]any{
		"name":    f.Name,
		"email":   f.Email,
		"service": f.Service,
		"budget":  f.Budget,
	}
}

// AuthEventRequest body ของ POST /auth-event
type AuthEventRequest struct {
	Type     SubmissionType `json:"type" validate:"required,oneof=login signup"`
	UserData map[string]any `json:"userData"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type SignupRequest struct {
	FirstName       string `json:"firstName" validate:"required,min=2"`
	LastName        string `json:"lastName" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	AgreeTerms      bool   `json:"agreeTerms" validate:"required"`
}
