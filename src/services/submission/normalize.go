package submission

import (
	"fmt"
	"strings"

	"QuickTech-Backend/src/models"
)

// ContactChannels derives the email and phone number shown in the admin footer.
// Missing channels are returned as "".
func ContactChannels(t models.SubmissionType, data map[string]any) (email, phone string) {
	switch t {
	case models.SubmissionContact:
		return field(data, "email"), ""
	case models.SubmissionQuote:
		return field(data, "email"), field(data, "phone")
	case models.SubmissionSignup, models.SubmissionLogin:
		email = field(data, "email")
		if email == "" {
			email = field(data, "username")
		}
		return email, ""
	}
	return "", ""
}

func field(data map[string]any, key string) string {
	v, ok := data[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	return strings.TrimSpace(s)
}

func copyData(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
