package domain

import (
	"fmt"
	"testing"
	"time"
)

func TestActivityFeedPrependsAndCaps(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	feed := NewActivityFeed(SeedActivity(now)...)
	if feed.Len() != 4 {
		t.Fatalf("seed len = %d", feed.Len())
	}
	if got := feed.Events()[0].ID; got != "seed-welcome" {
		t.Fatalf("seed order lost, first = %s", got)
	}

	for i := 0; i < 6; i++ {
		feed.Push(AppliedEvent(fmt.Sprintf("e%d", i), "Job", now))
	}
	if feed.Len() != MaxActivity {
		t.Fatalf("len = %d, want %d", feed.Len(), MaxActivity)
	}
	oldest := feed.Events()[MaxActivity-1].ID
	if oldest != "seed-profile" {
		t.Fatalf("oldest = %s", oldest)
	}

	feed.Push(AppliedEvent("e-11", "Job", now))
	events := feed.Events()
	if len(events) != MaxActivity {
		t.Fatalf("len after 11th = %d", len(events))
	}
	if events[0].ID != "e-11" {
		t.Fatalf("newest not first: %s", events[0].ID)
	}
	for _, e := range events {
		if e.ID == "seed-profile" {
			t.Fatalf("oldest event was not evicted")
		}
	}
}

func TestEventsReturnsCopy(t *testing.T) {
	t.Parallel()
	feed := NewActivityFeed(AppliedEvent("a", "Job", time.Now()))
	events := feed.Events()
	events[0].Message = "changed"
	if feed.Events()[0].Message == "changed" {
		t.Fatalf("feed shares its backing slice")
	}
}

func TestAgo(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	cases := map[time.Duration]string{
		0:                "Just now",
		30 * time.Second: "Just now",
		5 * time.Minute:  "5 minutes ago",
		time.Hour:        "1 hour ago",
		2 * time.Hour:    "2 hours ago",
	}
	for offset, want := range cases {
		got := ActivityEvent{At: now.Add(-offset)}.Ago(now)
		if got != want {
			t.Fatalf("Ago(%s) = %q, want %q", offset, got, want)
		}
	}
}

func TestAppliedTexts(t *testing.T) {
	t.Parallel()
	e := AppliedEvent("x", "Data Analysis Dashboard", time.Now())
	if e.Message != `You applied for "Data Analysis Dashboard"` || e.Icon != "fa-paper-plane" || e.Severity != SeveritySuccess {
		t.Fatalf("unexpected event %+v", e)
	}
	if got := AppliedMessage("Data Analysis Dashboard"); got != `Successfully applied for "Data Analysis Dashboard"!` {
		t.Fatalf("message = %q", got)
	}
}

func TestPassportDefaults(t *testing.T) {
	t.Parallel()
	if got := DefaultPassport(); got != (Passport{TrustScore: 75, Level: 1, XPPoints: 0}) {
		t.Fatalf("defaults = %+v", got)
	}
	if got := PassportOf(88, 3, 40); got != (Passport{TrustScore: 88, Level: 3, XPPoints: 40}) {
		t.Fatalf("explicit = %+v", got)
	}
	if got := PassportOf(0, 2, 0); got.TrustScore != 75 || got.Level != 2 {
		t.Fatalf("partial = %+v", got)
	}
}

func TestSampleData(t *testing.T) {
	t.Parallel()
	jobs := SampleJobs()
	if len(jobs) != 6 {
		t.Fatalf("sample jobs = %d", len(jobs))
	}
	if job, ok := FindJob(jobs, 3); !ok || job.Title != "Django Backend API Development" {
		t.Fatalf("FindJob(3) = %+v, %v", job, ok)
	}
	if _, ok := FindJob(jobs, 99); ok {
		t.Fatalf("FindJob(99) should miss")
	}
	if got := SampleStats().EarningsLabel(); got != "$2,450" {
		t.Fatalf("earnings = %q", got)
	}
}
