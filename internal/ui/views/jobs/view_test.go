package jobs

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	dashboarddto "worksphere/internal/modules/dashboard/dto"
)

var sample = dashboarddto.Job{
	ID:          3,
	Title:       "Django Backend API Development",
	Description: "Create REST APIs for SaaS platform with PostgreSQL.",
	Budget:      "$800-$1500",
	Skills:      []string{"Django", "Python"},
	Type:        "Fixed Price",
	Duration:    "3-6 weeks",
	Proposals:   5,
}

func TestRenderCard(t *testing.T) {
	t.Parallel()
	out := RenderCard(sample, 60, false)
	for _, want := range []string{sample.Title, "$800-$1500", "[Django]", "5 proposals", "Apply Now"} {
		if !strings.Contains(out, want) {
			t.Fatalf("card missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(RenderCard(sample, 60, true), "Applying...") {
		t.Fatalf("busy card should say Applying...")
	}
}

func TestModelLoadsAndSelects(t *testing.T) {
	t.Parallel()
	m := New()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	if _, ok := m.SelectedJob(); ok {
		t.Fatalf("selection before load")
	}
	m, _ = m.Update(LoadedMsg{Jobs: []dashboarddto.Job{sample}})
	job, ok := m.SelectedJob()
	if !ok || job.ID != 3 {
		t.Fatalf("selected = %+v, %v", job, ok)
	}
}

func TestModelShowsLoadError(t *testing.T) {
	t.Parallel()
	m := New()
	m, _ = m.Update(LoadedMsg{Err: errors.New("offline")})
	if !strings.Contains(m.View(), "offline") {
		t.Fatalf("error not rendered: %q", m.View())
	}
}
