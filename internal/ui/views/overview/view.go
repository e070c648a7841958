package overview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	dashboarddto "worksphere/internal/modules/dashboard/dto"
	sessiondto "worksphere/internal/modules/session/dto"
	"worksphere/internal/ui/components"
	"worksphere/internal/ui/theme"
	jobsview "worksphere/internal/ui/views/jobs"
	profileview "worksphere/internal/ui/views/profile"
)

const counterDuration = time.Second

// LoadedMsg carries a freshly built dashboard.
type LoadedMsg struct {
	Overview dashboarddto.Overview
	User     sessiondto.UserProfile
	HasUser  bool
}

// ActivityMsg replaces the activity feed after it changed.
type ActivityMsg struct {
	Activity []dashboarddto.Activity
}

type Model struct {
	data     dashboarddto.Overview
	user     sessiondto.UserProfile
	hasUser  bool
	loading  bool
	applying bool
	cursor   int
	trust    components.Counter
	spinner  spinner.Model
	width    int
	height   int
}

func New() Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		loading: true,
		trust:   components.NewCounter("trust-score", counterDuration),
		spinner: sp,
	}
}

// Reload clears the page back to its loading placeholders.
func (m Model) Reload() (Model, tea.Cmd) {
	m.loading = true
	m.data = dashboarddto.Overview{}
	m.cursor = 0
	return m, m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case LoadedMsg:
		m.loading = false
		m.data = msg.Overview
		m.user, m.hasUser = msg.User, msg.HasUser
		if m.cursor >= len(m.data.Jobs) {
			m.cursor = 0
		}
		return m, m.trust.Start(0, m.data.Passport.TrustScore, time.Now())

	case ActivityMsg:
		m.data.Activity = msg.Activity

	case components.CounterFrameMsg:
		var cmd tea.Cmd
		m.trust, cmd = m.trust.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.data.Jobs)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m Model) SelectedJob() (dashboarddto.Job, bool) {
	if m.loading || m.cursor < 0 || m.cursor >= len(m.data.Jobs) {
		return dashboarddto.Job{}, false
	}
	return m.data.Jobs[m.cursor], true
}

func (m *Model) SetApplying(applying bool) { m.applying = applying }

func (m Model) View() string {
	name := "there"
	if m.hasUser {
		name = profileview.DisplayName(m.user)
	}
	header := theme.Title.Render(fmt.Sprintf("Welcome back, %s!", name)) + "\n" +
		theme.Muted.Render("Here is what's happening with your work today.")

	stats := RenderStats(m.trust.View(), m.data.Stats)
	if m.loading {
		stats = RenderStats("…", dashboarddto.Stats{})
	}

	leftW, rightW := paneWidths(m.width)

	var jobs, activity string
	if m.loading {
		jobs = m.spinner.View() + " Loading recommended jobs..."
		activity = m.spinner.View() + " Loading recent activity..."
	} else {
		jobs = m.renderJobs(leftW - 4)
		activity = RenderActivity(m.data.Activity)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Pane.Width(leftW).Render(theme.Title.Render("Recommended Jobs")+"\n\n"+jobs),
		" ",
		theme.Pane.Width(rightW).Render(theme.Title.Render("Recent Activity")+"\n\n"+activity),
	)
	return lipgloss.JoinVertical(lipgloss.Left, header, "", stats, "", body)
}

// minPaneWidth keeps the longest loading line on one row inside a padded pane.
const minPaneWidth = 36

// paneWidths splits the terminal between the jobs and activity panes. The
// borders and the gap take five columns; below that the panes keep their
// minimum and the terminal clips.
func paneWidths(total int) (left, right int) {
	right = max(total*4/10, minPaneWidth)
	left = max(total-right-5, minPaneWidth)
	return left, right
}

func (m Model) renderJobs(width int) string {
	if m.data.JobsError != "" {
		return theme.Danger.Render(m.data.JobsError)
	}
	if len(m.data.Jobs) == 0 {
		return theme.Muted.Render("No recommendations yet.")
	}
	cards := make([]string, 0, len(m.data.Jobs))
	for i, job := range m.data.Jobs {
		card := jobsview.RenderCard(job, width-2, m.applying)
		if i == m.cursor {
			card = lipgloss.NewStyle().BorderStyle(lipgloss.ThickBorder()).BorderLeft(true).
				BorderForeground(theme.Lavender).Render(card)
		} else {
			card = lipgloss.NewStyle().PaddingLeft(1).Render(card)
		}
		cards = append(cards, card)
	}
	return strings.Join(cards, "\n\n")
}

// RenderStats draws the stat row. trust is passed pre-rendered so the
// caller can animate it.
func RenderStats(trust string, s dashboarddto.Stats) string {
	stat := func(value, label string) string {
		return theme.Pane.Padding(0, 2).Render(
			lipgloss.JoinVertical(lipgloss.Center, theme.Hot.Render(value), theme.Muted.Render(label)))
	}
	active, completed, earnings := "-", "-", "-"
	if s.TotalEarnings != "" {
		active = fmt.Sprint(s.ActiveJobs)
		completed = fmt.Sprint(s.CompletedJobs)
		earnings = s.TotalEarnings
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		stat(trust, "Trust Score"), " ",
		stat(active, "Active Jobs"), " ",
		stat(completed, "Completed"), " ",
		stat(earnings, "Total Earnings"),
	)
}

var icons = map[string]string{
	"fa-paper-plane": "➤",
	"fa-user-plus":   "✚",
	"fa-briefcase":   "■",
	"fa-star":        "★",
	"fa-bell":        "◆",
}

// RenderActivity draws the feed most recent first.
func RenderActivity(items []dashboarddto.Activity) string {
	if len(items) == 0 {
		return theme.Muted.Render("No recent activity.")
	}
	lines := make([]string, 0, len(items))
	for _, a := range items {
		icon := icons[a.Icon]
		if icon == "" {
			icon = "•"
		}
		style := theme.Info
		switch a.Severity {
		case "success":
			style = theme.Success
		case "warning":
			style = theme.Warning
		}
		lines = append(lines, style.Render(icon)+" "+a.Message+"\n  "+theme.Muted.Render(a.Ago))
	}
	return strings.Join(lines, "\n")
}
