package domain

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// MaxActivity bounds the feed; older events fall off the end.
const MaxActivity = 10

type ActivityEvent struct {
	ID       string
	Icon     string
	Message  string
	At       time.Time
	Severity Severity
}

// Ago renders the event time relative to now.
func (e ActivityEvent) Ago(now time.Time) string {
	if now.Sub(e.At) < time.Minute {
		return "Just now"
	}
	return humanize.RelTime(e.At, now, "ago", "from now")
}

// ActivityFeed keeps events most recent first.
type ActivityFeed struct {
	events []ActivityEvent
}

// NewActivityFeed seeds a feed; seed is given most recent first.
func NewActivityFeed(seed ...ActivityEvent) *ActivityFeed {
	f := &ActivityFeed{}
	for i := len(seed) - 1; i >= 0; i-- {
		f.Push(seed[i])
	}
	return f
}

// Push prepends e and evicts the oldest event past MaxActivity.
func (f *ActivityFeed) Push(e ActivityEvent) {
	f.events = append([]ActivityEvent{e}, f.events...)
	if len(f.events) > MaxActivity {
		f.events = f.events[:MaxActivity]
	}
}

func (f *ActivityFeed) Events() []ActivityEvent {
	out := make([]ActivityEvent, len(f.events))
	copy(out, f.events)
	return out
}

func (f *ActivityFeed) Len() int {
	return len(f.events)
}

// SeedActivity is the welcome feed of a fresh dashboard, stamped relative to now.
func SeedActivity(now time.Time) []ActivityEvent {
	return []ActivityEvent{
		{ID: "seed-welcome", Icon: "fa-user-plus", Message: "Welcome to WorkSphere! Your AI Career Passport is ready.", At: now, Severity: SeveritySuccess},
		{ID: "seed-match", Icon: "fa-briefcase", Message: "New job recommendation: Frontend Developer position matches your skills.", At: now.Add(-5 * time.Minute), Severity: SeverityInfo},
		{ID: "seed-trust", Icon: "fa-star", Message: "Your trust score has been updated based on your profile completion.", At: now.Add(-time.Hour), Severity: SeveritySuccess},
		{ID: "seed-profile", Icon: "fa-bell", Message: "Complete your profile to get better job matches and increase your trust score.", At: now.Add(-2 * time.Hour), Severity: SeverityWarning},
	}
}

func AppliedEvent(id, title string, at time.Time) ActivityEvent {
	return ActivityEvent{
		ID:       id,
		Icon:     "fa-paper-plane",
		Message:  fmt.Sprintf(`You applied for "%s"`, title),
		At:       at,
		Severity: SeveritySuccess,
	}
}

func AppliedMessage(title string) string {
	return fmt.Sprintf(`Successfully applied for "%s"!`, title)
}

const MsgApplyFailed = "Failed to apply for job. Please try again."
