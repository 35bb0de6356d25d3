package dashboard

import (
	"fmt"
	"time"

	"QuickTech-Backend/src/models"
)

type Tab string

const (
	TabAll     Tab = "all"
	TabUnread  Tab = "unread"
	TabContact Tab = "contact"
	TabQuote   Tab = "quote"
	TabAuth    Tab = "auth"
)

var Tabs = []Tab{TabAll, TabUnread, TabContact, TabQuote, TabAuth}

func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tab %q", s)
}

// Filter keeps the submissions shown under tab, in list order.
func Filter(list []models.Submission, tab Tab) []models.Submission {
	out := make([]models.Submission, 0, len(list))
	for _, s := range list {
		if matches(s, tab) {
			out = append(out, s)
		}
	}
	return out
}

func matches(s models.Submission, tab Tab) bool {
	switch tab {
	case TabAll:
		return true
	case TabUnread:
		return !s.Viewed
	case TabAuth:
		return s.Type.IsAuth()
	default:
		return string(s.Type) == string(tab)
	}
}

// Card is one rendered submission.
type Card struct {
	ID      int64
	Title   string
	Fields  []models.DisplayField
	Email   string
	Phone   string
	When    string
	Viewed  bool
	Pending bool
}

// CanMarkViewed reports whether the mark-as-viewed control is shown and enabled.
func (c Card) CanMarkViewed() bool {
	return !c.Viewed && !c.Pending
}

func CardOf(s models.Submission, now time.Time) Card {
	card := Card{
		ID:     s.ID,
		Title:  models.TypeLabel(s.Type),
		Email:  s.Email,
		Phone:  s.PhoneNumber,
		When:   RelativeTime(s.CreatedAt, now),
		Viewed: s.Viewed,
	}
	if p, err := models.PayloadOf(s); err == nil {
		card.Fields = models.DisplayFields(p)
	}
	return card
}

// RelativeTime renders t relative to now, e.g. "5 minutes ago".
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Minute:
		return "less than a minute ago"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute") + " ago"
	case d < 24*time.Hour:
		return "about " + plural(int(d/time.Hour), "hour") + " ago"
	case d < 30*24*time.Hour:
		return plural(int(d/(24*time.Hour)), "day") + " ago"
	}
	return t.Format("Jan 2, 2006")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
