package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	authdto "worksphere/internal/modules/auth/dto"
	dashboarddto "worksphere/internal/modules/dashboard/dto"
	sessiondto "worksphere/internal/modules/session/dto"
	"worksphere/internal/platform/notice"
	"worksphere/internal/ui/navigation"
	"worksphere/internal/ui/theme"
	entryview "worksphere/internal/ui/views/entry"
)

type fakeSession struct {
	authed  bool
	user    sessiondto.UserProfile
	theme   string
	cleared int
}

func (f *fakeSession) IsAuthenticated(context.Context) bool { return f.authed }

func (f *fakeSession) CurrentUser(context.Context) (sessiondto.UserProfile, bool) {
	return f.user, f.authed
}

func (f *fakeSession) Logout(context.Context) error {
	f.cleared++
	f.authed = false
	return nil
}

func (f *fakeSession) Theme(context.Context) string { return f.theme }

func (f *fakeSession) SetTheme(_ context.Context, name string) error {
	f.theme = name
	return nil
}

func (f *fakeSession) ToggleTheme(context.Context) (string, error) {
	if f.theme == "dark" {
		f.theme = "light"
	} else {
		f.theme = "dark"
	}
	return f.theme, nil
}

type fakeAuth struct{}

func (fakeAuth) Login(context.Context, authdto.LoginInput) authdto.Result       { return authdto.Result{} }
func (fakeAuth) Register(context.Context, authdto.RegisterInput) authdto.Result { return authdto.Result{} }
func (fakeAuth) FederatedAuth(context.Context, string) authdto.Result           { return authdto.Result{} }
func (fakeAuth) SignInWithProvider(context.Context) authdto.Result              { return authdto.Result{} }
func (fakeAuth) Profile(context.Context) (sessiondto.UserProfile, error) {
	return sessiondto.UserProfile{}, errors.New("offline")
}

type fakeDashboard struct{ applied []int }

func (f *fakeDashboard) Overview(context.Context) dashboarddto.Overview { return dashboarddto.Overview{} }

func (f *fakeDashboard) ListJobs(context.Context) ([]dashboarddto.Job, error) {
	return []dashboarddto.Job{{ID: 1, Title: "Go service"}}, nil
}

func (f *fakeDashboard) Activity(context.Context) []dashboarddto.Activity { return nil }

func (f *fakeDashboard) Apply(_ context.Context, jobID int) dashboarddto.ApplyResult {
	f.applied = append(f.applied, jobID)
	return dashboarddto.ApplyResult{Success: true, Notice: notice.Success(`Successfully applied for "Go service"!`)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out, cmd
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStartsOnEntryWithoutSession(t *testing.T) {
	m := NewModel(&fakeSession{}, fakeAuth{}, &fakeDashboard{})
	if m.screen != screenEntry {
		t.Fatalf("screen = %v", m.screen)
	}
}

func TestStoredSessionOpensDashboard(t *testing.T) {
	m := NewModel(&fakeSession{authed: true}, fakeAuth{}, &fakeDashboard{})
	if m.screen != screenDashboard || m.nav.Active() != navigation.PageDashboard {
		t.Fatalf("screen = %v page = %s", m.screen, m.nav.Active())
	}
}

func TestSignInSwitchesToDashboard(t *testing.T) {
	session := &fakeSession{}
	m := NewModel(session, fakeAuth{}, &fakeDashboard{})

	failed := entryview.ResultMsg{Result: authdto.Result{Notice: notice.Error("Login failed")}}
	m, _ = update(t, m, failed)
	if m.screen != screenEntry || m.notice.Current().Text != "Login failed" {
		t.Fatalf("after failure: screen = %v notice = %q", m.screen, m.notice.Current().Text)
	}

	session.authed = true
	ok := entryview.ResultMsg{Result: authdto.Result{Success: true, Notice: notice.Success("Signed in successfully")}}
	m, cmd := update(t, m, ok)
	if m.screen != screenDashboard || cmd == nil {
		t.Fatalf("screen = %v cmd = %v", m.screen, cmd)
	}
	if !m.notice.Visible() || m.notice.Current().Text != "Signed in successfully" {
		t.Fatalf("notice = %+v", m.notice.Current())
	}
}

func TestSignedOutReturnsToEntry(t *testing.T) {
	m := NewModel(&fakeSession{authed: true}, fakeAuth{}, &fakeDashboard{})
	m, _ = update(t, m, SignedOutMsg{})
	if m.screen != screenEntry || m.hasUser {
		t.Fatalf("screen = %v hasUser = %v", m.screen, m.hasUser)
	}
}

func TestLogoutKeyClearsSession(t *testing.T) {
	session := &fakeSession{authed: true}
	m := NewModel(session, fakeAuth{}, &fakeDashboard{})
	m, cmd := update(t, m, keyPress("o"))
	if cmd == nil {
		t.Fatal("expected logout command")
	}
	m, _ = update(t, m, cmd())
	if session.cleared != 1 || m.screen != screenEntry {
		t.Fatalf("cleared = %d screen = %v", session.cleared, m.screen)
	}
}

func TestTabAndDigitsSelectPages(t *testing.T) {
	m := NewModel(&fakeSession{authed: true}, fakeAuth{}, &fakeDashboard{})
	m, _ = update(t, m, keyPress("tab"))
	if m.nav.Active() != navigation.PageJobs {
		t.Fatalf("after tab: %s", m.nav.Active())
	}
	m, _ = update(t, m, keyPress("6"))
	if m.nav.Active() != navigation.PageEarnings || !m.nav.NavActive(navigation.PageEarnings) {
		t.Fatalf("after 6: %s", m.nav.Active())
	}
	m, _ = update(t, m, keyPress("tab"))
	if m.nav.Active() != navigation.PageDashboard {
		t.Fatalf("tab should wrap, got %s", m.nav.Active())
	}
}

func TestPaletteApplyShowsNotice(t *testing.T) {
	dashboard := &fakeDashboard{}
	m := NewModel(&fakeSession{authed: true}, fakeAuth{}, dashboard)

	next, cmd := m.executePalette("apply 1")
	m = next.(Model)
	if !m.applying || cmd == nil {
		t.Fatal("apply did not start")
	}
	again, second := m.executePalette("apply 1")
	if second != nil || !again.(Model).applying {
		t.Fatal("second apply should be ignored while busy")
	}

	m, _ = update(t, m, cmd())
	if m.applying || len(dashboard.applied) != 1 || dashboard.applied[0] != 1 {
		t.Fatalf("applying = %v applied = %v", m.applying, dashboard.applied)
	}
	if got := m.notice.Current().Text; got != `Successfully applied for "Go service"!` {
		t.Fatalf("notice = %q", got)
	}
}

func TestPaletteRejectsUnknownInput(t *testing.T) {
	m := NewModel(&fakeSession{authed: true}, fakeAuth{}, &fakeDashboard{})
	tests := []struct{ input, want string }{
		{"bogus", "unknown command: bogus"},
		{"go nowhere", "unknown page"},
		{"apply x", "invalid job id"},
		{"theme:set", "usage: theme:set"},
	}
	for _, tt := range tests {
		next, _ := m.executePalette(tt.input)
		if got := next.(Model).notice.Current().Text; !strings.HasPrefix(got, tt.want) {
			t.Fatalf("%q: notice = %q, want prefix %q", tt.input, got, tt.want)
		}
	}
}

func TestThemeToggleRestylesAndPersists(t *testing.T) {
	t.Cleanup(func() { theme.Use("light") })
	session := &fakeSession{authed: true, theme: "light"}
	m := NewModel(session, fakeAuth{}, &fakeDashboard{})

	m, cmd := update(t, m, keyPress("t"))
	if cmd == nil {
		t.Fatal("expected theme command")
	}
	_, _ = update(t, m, cmd())
	if session.theme != "dark" || theme.Current.Name != "dark" {
		t.Fatalf("stored = %s current = %s", session.theme, theme.Current.Name)
	}
}

func TestProfileRefreshFailureShowsNotice(t *testing.T) {
	m := NewModel(&fakeSession{authed: true}, fakeAuth{}, &fakeDashboard{})
	next, cmd := m.executePalette("profile:refresh")
	m = next.(Model)
	m, _ = update(t, m, cmd())
	if got := m.notice.Current().Text; got != "Profile refresh failed: offline" {
		t.Fatalf("notice = %q", got)
	}
}
