package overview

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	dashboarddto "worksphere/internal/modules/dashboard/dto"
	sessiondto "worksphere/internal/modules/session/dto"
	"worksphere/internal/ui/components"
)

func loaded() LoadedMsg {
	return LoadedMsg{
		Overview: dashboarddto.Overview{
			Passport: dashboarddto.Passport{TrustScore: 75, Level: 1},
			Stats:    dashboarddto.Stats{ActiveJobs: 3, CompletedJobs: 12, TotalEarnings: "$2,450"},
			Jobs: []dashboarddto.Job{
				{ID: 1, Title: "Frontend Developer Needed", Budget: "$500-$1000"},
				{ID: 2, Title: "Mobile App UI/UX Design", Budget: "$300-$700"},
			},
			Activity: []dashboarddto.Activity{
				{Icon: "fa-user-plus", Message: "Welcome to WorkSphere!", Ago: "Just now", Severity: "success"},
			},
		},
		User:    sessiondto.UserProfile{Username: "ada"},
		HasUser: true,
	}
}

func TestLoadingPlaceholders(t *testing.T) {
	t.Parallel()
	for _, width := range []int{0, 80, 140} {
		m := New()
		m, _ = m.Update(tea.WindowSizeMsg{Width: width, Height: 30})
		out := m.View()
		for _, want := range []string{"Loading recommended jobs...", "Loading recent activity..."} {
			if !strings.Contains(out, want) {
				t.Fatalf("width %d: missing %q:\n%s", width, want, out)
			}
		}
	}
}

func TestPaneWidthsFitTerminal(t *testing.T) {
	t.Parallel()
	for _, width := range []int{80, 100, 140, 200} {
		left, right := paneWidths(width)
		if left < minPaneWidth || right < minPaneWidth {
			t.Fatalf("width %d: panes %d/%d below minimum", width, left, right)
		}
		if total := left + right + 5; total > width {
			t.Fatalf("width %d: panes need %d columns", width, total)
		}
	}
}

func TestLoadedViewAndCounter(t *testing.T) {
	t.Parallel()
	m := New()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	m, cmd := m.Update(loaded())
	if cmd == nil {
		t.Fatalf("expected counter frames")
	}
	out := m.View()
	for _, want := range []string{"Welcome back, ada!", "$2,450", "Frontend Developer Needed", "Welcome to WorkSphere!", "Just now"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q", want)
		}
	}

	m, _ = m.Update(components.CounterFrameMsg{ID: "trust-score", Seq: 1, At: time.Now().Add(2 * time.Second)})
	if !strings.Contains(m.View(), "75") {
		t.Fatalf("counter did not reach target")
	}
}

func TestCursorSelectsJobs(t *testing.T) {
	t.Parallel()
	m := New()
	if _, ok := m.SelectedJob(); ok {
		t.Fatalf("selection while loading")
	}
	m, _ = m.Update(loaded())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	job, ok := m.SelectedJob()
	if !ok || job.ID != 2 {
		t.Fatalf("selected = %+v", job)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if job, _ := m.SelectedJob(); job.ID != 1 {
		t.Fatalf("selected = %+v", job)
	}
}

func TestJobsErrorKeepsActivity(t *testing.T) {
	t.Parallel()
	msg := loaded()
	msg.Overview.Jobs = nil
	msg.Overview.JobsError = "Failed to load recommended jobs"
	m, _ := New().Update(msg)
	out := m.View()
	if !strings.Contains(out, "Failed to load recommended jobs") || !strings.Contains(out, "Welcome to WorkSphere!") {
		t.Fatalf("unexpected view:\n%s", out)
	}
}

func TestRenderActivityEmpty(t *testing.T) {
	t.Parallel()
	if !strings.Contains(RenderActivity(nil), "No recent activity.") {
		t.Fatalf("empty feed text missing")
	}
}
