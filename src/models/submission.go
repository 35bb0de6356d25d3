package models

import (
	"time"
)

// SubmissionType แยกประเภทของฟอร์มที่ส่งเข้ามา
type SubmissionType string

const (
	SubmissionContact SubmissionType = "contact"
	SubmissionQuote   SubmissionType = "quote"
	SubmissionSignup  SubmissionType = "signup"
	SubmissionLogin   SubmissionType = "login"
)

func (t SubmissionType) Valid() bool {
	switch t {
	case SubmissionContact, SubmissionQuote, SubmissionSignup, SubmissionLogin:
		return true
	}
	return false
}

// IsAuth reports whether the type is one of the authentication events.
func (t SubmissionType) IsAuth() bool {
	return t == SubmissionSignup || t == SubmissionLogin
}

// Submission is one normalized form event as stored and returned to the admin dashboard.
type Submission struct {
	ID          int64          `bson:"_id" json:"id"`
	Type        SubmissionType `bson:"type" json:"type"`
	Data        map[string]any `bson:"data" json:"data"`
	CreatedAt   time.Time      `bson:"createdAt" json:"createdAt"`
	Email       string         `bson:"email" json:"email"`
	PhoneNumber string         `bson:"phoneNumber" json:"phoneNumber"`
	Viewed      bool           `bson:"viewed" json:"viewed"`
}

// NewSubmission ข้อมูลที่ใช้สร้าง Submission ใหม่ (ยังไม่มี id)
type NewSubmission struct {
	Type        SubmissionType
	Data        map[string]any
	CreatedAt   time.Time
	Email       string
	PhoneNumber string
}

// Clone returns a copy that does not share the Data map with s.
func (s Submission) Clone() Submission {
	out := s
	if s.Data != nil {
		out.Data = make(map[string]any, len(s.Data))
		for k, v := range s.Data {
			out.Data[k] = v
		}
	}
	return out
}

// SubmissionStats are the dashboard tab counts.
type SubmissionStats struct {
	Total   int `json:"total"`
	Unread  int `json:"unread"`
	Contact int `json:"contact"`
	Quote   int `json:"quote"`
	Auth    int `json:"auth"`
}

// Summarize counts submissions per dashboard tab. Auth covers login and signup.
func Summarize(list []Submission) SubmissionStats {
	st := SubmissionStats{Total: len(list)}
	for _, s := range list {
		if !s.Viewed {
			st.Unread++
		}
		switch {
		case s.Type == SubmissionContact:
			st.Contact++
		case s.Type == SubmissionQuote:
			st.Quote++
		case s.Type.IsAuth():
			st.Auth++
		}
	}
	return st
}
