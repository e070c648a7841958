package jobs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	dashboarddto "worksphere/internal/modules/dashboard/dto"
	"worksphere/internal/ui/theme"
)

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Jobs []dashboarddto.Job
	Err  error
}

// ─── list item ───────────────────────────────────────────────────────────────

type jobItem struct {
	job dashboarddto.Job
}

func (i jobItem) Title() string { return i.job.Title }
func (i jobItem) Description() string {
	return fmt.Sprintf("%s · %s · %s", i.job.Budget, i.job.Type, i.job.Duration)
}
func (i jobItem) FilterValue() string {
	return i.job.Title + " " + strings.Join(i.job.Skills, " ")
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the Find Jobs page: a filterable list with the selected job's card.
type Model struct {
	list     list.Model
	detail   viewport.Model
	spinner  spinner.Model
	loading  bool
	applying bool
	errText  string
	width    int
	height   int
}

func New() Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Find Jobs"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{list: l, detail: viewport.New(0, 0), spinner: sp, loading: true}
	m.Restyle()
	return m
}

// Reload puts the page back into its loading state.
func (m Model) Reload() (Model, tea.Cmd) {
	m.loading = true
	m.errText = ""
	return m, m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errText = "Failed to load jobs: " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Jobs))
		for i, j := range msg.Jobs {
			items[i] = jobItem{job: j}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		m.detail.SetContent(m.renderDetail())
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading all jobs...")
	}
	if m.errText != "" {
		return theme.Danger.Render(m.errText)
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())
	detailPane := theme.Pane.
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.detail.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

func (m Model) SelectedJob() (dashboarddto.Job, bool) {
	if item, ok := m.list.SelectedItem().(jobItem); ok {
		return item.job, true
	}
	return dashboarddto.Job{}, false
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m *Model) SetApplying(applying bool) {
	m.applying = applying
	m.detail.SetContent(m.renderDetail())
}

// ─── private ─────────────────────────────────────────────────────────────────

// Restyle picks up the current theme.
func (m *Model) Restyle() {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)
	m.list.SetDelegate(delegate)
	m.list.Styles.Title = theme.Title
	m.spinner.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	m.detail.SetContent(m.renderDetail())
}

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.detail.Width = detailW - 4
	m.detail.Height = m.height - 4
}

func (m Model) renderDetail() string {
	job, ok := m.SelectedJob()
	if !ok {
		return theme.Muted.Render("No jobs match the filter")
	}
	return RenderCard(job, m.detail.Width, m.applying) + "\n\n" + theme.Muted.Render("a: apply  /: filter")
}

// RenderCard draws one job posting. While an application is in flight the
// apply control reads "Applying...".
func RenderCard(job dashboarddto.Job, width int, applying bool) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(job.Title) + "\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%s · %s · %d proposals", job.Type, job.Duration, job.Proposals)) + "\n")
	desc := job.Description
	if width > 10 {
		desc = lipgloss.NewStyle().Width(width).Render(desc)
	}
	sb.WriteString(desc + "\n")
	tags := make([]string, len(job.Skills))
	for i, s := range job.Skills {
		tags[i] = theme.Info.Render("[" + s + "]")
	}
	sb.WriteString(strings.Join(tags, " ") + "\n")
	action := "➤ Apply Now"
	if applying {
		action = "… Applying..."
	}
	sb.WriteString(theme.Hot.Render(job.Budget) + "   " + theme.Success.Render(action))
	return sb.String()
}
