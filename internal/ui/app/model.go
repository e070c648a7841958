package app

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "worksphere/internal/modules/auth/dto"
	dashboarddto "worksphere/internal/modules/dashboard/dto"
	sessiondto "worksphere/internal/modules/session/dto"
	apperrors "worksphere/internal/platform/errors"
	"worksphere/internal/platform/notice"
	"worksphere/internal/ui/components"
	"worksphere/internal/ui/navigation"
	"worksphere/internal/ui/theme"
	entryview "worksphere/internal/ui/views/entry"
	jobsview "worksphere/internal/ui/views/jobs"
	overviewview "worksphere/internal/ui/views/overview"
	placeholderview "worksphere/internal/ui/views/placeholder"
	profileview "worksphere/internal/ui/views/profile"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.

type sessionPort interface {
	IsAuthenticated(ctx context.Context) bool
	CurrentUser(ctx context.Context) (sessiondto.UserProfile, bool)
	Logout(ctx context.Context) error
	Theme(ctx context.Context) string
	SetTheme(ctx context.Context, theme string) error
	ToggleTheme(ctx context.Context) (string, error)
}

type authPort interface {
	Login(ctx context.Context, input authdto.LoginInput) authdto.Result
	Register(ctx context.Context, input authdto.RegisterInput) authdto.Result
	FederatedAuth(ctx context.Context, credential string) authdto.Result
	SignInWithProvider(ctx context.Context) authdto.Result
	Profile(ctx context.Context) (sessiondto.UserProfile, error)
}

type dashboardPort interface {
	Overview(ctx context.Context) dashboarddto.Overview
	ListJobs(ctx context.Context) ([]dashboarddto.Job, error)
	Activity(ctx context.Context) []dashboarddto.Activity
	Apply(ctx context.Context, jobID int) dashboarddto.ApplyResult
}

// ─── screens ─────────────────────────────────────────────────────────────────

type screen int

const (
	screenEntry screen = iota
	screenDashboard
)

// ─── async messages ──────────────────────────────────────────────────────────

// SignedOutMsg switches the UI back to the entry screen. The session store's
// navigator sends it after the session is cleared.
type SignedOutMsg struct{}

type profileLoadedMsg struct {
	user    sessiondto.UserProfile
	hasUser bool
	err     error
}

type applyDoneMsg struct{ result dashboarddto.ApplyResult }

type themeChangedMsg struct {
	name string
	err  error
}

type logoutDoneMsg struct{ err error }

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Pages   key.Binding
	Apply   key.Binding
	Refresh key.Binding
	Theme   key.Binding
	Logout  key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next page")),
		Pages:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "go to page")),
		Apply:   key.NewBinding(key.WithKeys("a", "enter"), key.WithHelp("a", "apply for job")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload page")),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
		Logout:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sign out")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Pages, k.Refresh},
		{k.Apply, k.Theme, k.Logout},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns the entry/dashboard switch,
// page navigation, the notice bar, help and the command palette. Business
// logic goes through the ports; rendering is delegated to the views.
type Model struct {
	session   sessionPort
	auth      authPort
	dashboard dashboardPort

	screen   screen
	nav      *navigation.Controller[tea.Cmd]
	entry    entryview.Model
	overview overviewview.Model
	jobs     jobsview.Model

	user     sessiondto.UserProfile
	hasUser  bool
	applying bool

	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	notice   components.NoticeBar
	width    int
	height   int
}

func NewModel(session sessionPort, auth authPort, dashboard dashboardPort) Model {
	m := Model{
		session:   session,
		auth:      auth,
		dashboard: dashboard,
		entry:     entryview.New(auth),
		overview:  overviewview.New(),
		jobs:      jobsview.New(),
		keys:      defaultKeys(),
		help:      help.New(),
		palette:   components.NewPalette(),
	}
	ctx := context.Background()
	theme.Use(session.Theme(ctx))
	if session.IsAuthenticated(ctx) {
		m.screen = screenDashboard
	}
	m.nav = navigation.New(map[navigation.Page]navigation.Loader[tea.Cmd]{
		navigation.PageDashboard: func() tea.Cmd { return loadOverviewCmd(session, dashboard) },
		navigation.PageJobs:      func() tea.Cmd { return loadJobsCmd(dashboard) },
		navigation.PageProfile:   func() tea.Cmd { return loadCachedProfileCmd(session) },
	})
	return m
}

// Init loads the dashboard when a session exists, otherwise it starts the
// entry screen.
func (m Model) Init() tea.Cmd {
	if m.screen == screenDashboard {
		_, tick := m.overview.Reload()
		return tea.Batch(tick, loadCachedProfileCmd(m.session), m.selectPageCmd(string(navigation.PageDashboard)))
	}
	return m.entry.Init()
}

// selectPageCmd is used before the first Update, when the model cannot be
// mutated yet; the page's loading state is the views' initial state.
func (m Model) selectPageCmd(page string) tea.Cmd {
	cmd, err := m.nav.Select(page)
	if err != nil {
		return nil
	}
	return cmd
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, isKey := msg.(tea.KeyMsg); isKey && m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	if m.screen == screenEntry {
		return m.updateEntry(msg)
	}

	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
		return m, nil

	case SignedOutMsg:
		return m.toEntry(), nil

	case logoutDoneMsg:
		if msg.err != nil {
			return m.showNotice(notice.Error("Sign out failed: " + msg.err.Error()))
		}
		return m.toEntry(), nil

	case profileLoadedMsg:
		if msg.err != nil {
			return m.showNotice(notice.Error("Profile refresh failed: " + msg.err.Error()))
		}
		m.user, m.hasUser = msg.user, msg.hasUser
		return m, nil

	case applyDoneMsg:
		m.applying = false
		m.overview.SetApplying(false)
		m.jobs.SetApplying(false)
		cmds = append(cmds, m.notice.Show(msg.result.Notice))
		if msg.result.Success {
			cmds = append(cmds, loadActivityCmd(m.dashboard))
		}
		return m, tea.Batch(cmds...)

	case themeChangedMsg:
		if msg.err != nil {
			return m.showNotice(notice.Error("Theme change failed: " + msg.err.Error()))
		}
		theme.Use(msg.name)
		m.jobs.Restyle()
		return m, nil

	case components.NoticeHideMsg:
		m.notice = m.notice.Update(msg)
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		return m, nil

	case overviewview.LoadedMsg, overviewview.ActivityMsg, components.CounterFrameMsg:
		var cmd tea.Cmd
		m.overview, cmd = m.overview.Update(msg)
		return m, cmd

	case jobsview.LoadedMsg:
		var cmd tea.Cmd
		m.jobs, cmd = m.jobs.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		var oCmd, jCmd tea.Cmd
		m.overview, oCmd = m.overview.Update(msg)
		m.jobs, jCmd = m.jobs.Update(msg)
		return m, tea.Batch(oCmd, jCmd)

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if m.nav.Active() == navigation.PageJobs && m.jobs.Filtering() {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			return m.selectPage(string(m.nav.Offset(1)))
		case "shift+tab":
			return m.selectPage(string(m.nav.Offset(-1)))
		case "1", "2", "3", "4", "5", "6":
			idx, _ := strconv.Atoi(msg.String())
			return m.selectPage(string(navigation.Pages[idx-1]))
		case "r":
			return m.selectPage(string(m.nav.Active()))
		case "t":
			return m, toggleThemeCmd(m.session)
		case "o":
			return m, logoutCmd(m.session)
		case "?":
			m.showHelp = true
			return m, nil
		case ":":
			cmd := m.palette.Open()
			return m, cmd
		case "a", "enter":
			if job, ok := m.selectedJob(); ok {
				return m.apply(job.ID)
			}
			return m, nil
		}
	}

	var pageCmd tea.Cmd
	switch m.nav.Active() {
	case navigation.PageDashboard:
		m.overview, pageCmd = m.overview.Update(msg)
	case navigation.PageJobs:
		m.jobs, pageCmd = m.jobs.Update(msg)
	}
	cmds = append(cmds, pageCmd)
	return m, tea.Batch(cmds...)
}

func (m Model) updateEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case components.NoticeHideMsg:
		m.notice = m.notice.Update(msg)
		return m, nil
	case entryview.ResultMsg:
		var cmd tea.Cmd
		m.entry, cmd = m.entry.Update(msg)
		noticeCmd := m.notice.Show(msg.Result.Notice)
		if !msg.Result.Success {
			return m, tea.Batch(cmd, noticeCmd)
		}
		m.screen = screenDashboard
		m.entry = m.entry.Reset()
		next, selectCmd := m.selectPage(string(navigation.PageDashboard))
		return next, tea.Batch(cmd, noticeCmd, loadCachedProfileCmd(m.session), selectCmd)
	}
	var cmd tea.Cmd
	m.entry, cmd = m.entry.Update(msg)
	return m, cmd
}

func (m Model) toEntry() Model {
	m.screen = screenEntry
	m.user, m.hasUser = sessiondto.UserProfile{}, false
	m.applying = false
	m.showHelp = false
	m.entry = m.entry.Reset()
	m.overview = overviewview.New()
	m.jobs = jobsview.New()
	m.propagateSize()
	return m
}

// selectPage switches pages through the navigation controller and resets the
// target view so its loader repaints it from scratch.
func (m Model) selectPage(page string) (Model, tea.Cmd) {
	loadCmd, err := m.nav.Select(page)
	if err != nil {
		return m.showNotice(notice.Error(err.Error()))
	}
	var reset tea.Cmd
	switch m.nav.Active() {
	case navigation.PageDashboard:
		m.overview, reset = m.overview.Reload()
	case navigation.PageJobs:
		m.jobs, reset = m.jobs.Reload()
	}
	return m, tea.Batch(reset, loadCmd)
}

func (m Model) selectedJob() (dashboarddto.Job, bool) {
	switch m.nav.Active() {
	case navigation.PageDashboard:
		return m.overview.SelectedJob()
	case navigation.PageJobs:
		return m.jobs.SelectedJob()
	}
	return dashboarddto.Job{}, false
}

func (m Model) apply(jobID int) (Model, tea.Cmd) {
	if m.applying {
		return m, nil
	}
	m.applying = true
	m.overview.SetApplying(true)
	m.jobs.SetApplying(true)
	return m, applyCmd(m.dashboard, jobID)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.screen == screenEntry {
		bar := m.notice.View()
		content := m.entry.View()
		if bar == "" {
			return content
		}
		return lipgloss.JoinVertical(lipgloss.Left, content, bar)
	}

	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	page := m.nav.Active()
	switch page {
	case navigation.PageDashboard:
		return m.overview.View()
	case navigation.PageJobs:
		return m.jobs.View()
	case navigation.PageProfile:
		return profileview.Render(m.user, m.hasUser, m.width)
	}
	return placeholderview.Render(page)
}

func (m Model) renderTabBar() string {
	parts := make([]string, len(navigation.Pages))
	for i, page := range navigation.Pages {
		label := " " + page.Label() + " "
		if m.nav.NavActive(page) {
			parts[i] = theme.Hot.Render(label)
		} else {
			parts[i] = theme.Muted.Render(label)
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := theme.Title.Render("WorkSphere") + "  " + strings.Join(parts, sep)
	if m.hasUser {
		bar += "  " + theme.Muted.Render(profileview.DisplayName(m.user))
	}
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.notice.View()
	right := theme.Muted.Render("?:help  tab:page  a:apply  t:theme  o:sign out  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ───────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}
	switch parts[0] {
	case "go":
		if len(parts) < 2 {
			return m.showNotice(notice.Error("usage: go <page>"))
		}
		return m.selectPage(parts[1])

	case "apply":
		if len(parts) < 2 {
			return m.showNotice(notice.Error("usage: apply <job-id>"))
		}
		id, err := strconv.Atoi(parts[1])
		if err != nil {
			return m.showNotice(notice.Error("invalid job id"))
		}
		return m.apply(id)

	case "refresh":
		return m.selectPage(string(m.nav.Active()))

	case "profile:refresh":
		return m, refreshProfileCmd(m.session, m.auth)

	case "theme:toggle":
		return m, toggleThemeCmd(m.session)

	case "theme:set":
		if len(parts) < 2 {
			return m.showNotice(notice.Error("usage: theme:set <light|dark>"))
		}
		return m, setThemeCmd(m.session, parts[1])

	case "logout":
		return m, logoutCmd(m.session)
	}
	return m.showNotice(notice.Error("unknown command: " + parts[0]))
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m Model) showNotice(n notice.Notice) (Model, tea.Cmd) {
	cmd := m.notice.Show(n)
	return m, cmd
}

func (m *Model) resize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	m.palette.SetWidth(min(m.width-4, 80))
	m.help.Width = m.width
	m.propagateSize()
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 4}
	m.overview, _ = m.overview.Update(sz)
	m.jobs, _ = m.jobs.Update(sz)
	m.entry, _ = m.entry.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height - 1})
}

// ─── async commands ──────────────────────────────────────────────────────────

func loadOverviewCmd(session sessionPort, dashboard dashboardPort) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		overview := dashboard.Overview(ctx)
		user, ok := session.CurrentUser(ctx)
		return overviewview.LoadedMsg{Overview: overview, User: user, HasUser: ok}
	}
}

func loadJobsCmd(dashboard dashboardPort) tea.Cmd {
	return func() tea.Msg {
		jobs, err := dashboard.ListJobs(context.Background())
		return jobsview.LoadedMsg{Jobs: jobs, Err: err}
	}
}

func loadActivityCmd(dashboard dashboardPort) tea.Cmd {
	return func() tea.Msg {
		return overviewview.ActivityMsg{Activity: dashboard.Activity(context.Background())}
	}
}

func loadCachedProfileCmd(session sessionPort) tea.Cmd {
	return func() tea.Msg {
		user, ok := session.CurrentUser(context.Background())
		return profileLoadedMsg{user: user, hasUser: ok}
	}
}

func refreshProfileCmd(session sessionPort, auth authPort) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := auth.Profile(ctx); err != nil {
			if errors.Is(err, apperrors.ErrNotAuthenticated) {
				return SignedOutMsg{}
			}
			return profileLoadedMsg{err: err}
		}
		user, ok := session.CurrentUser(ctx)
		return profileLoadedMsg{user: user, hasUser: ok}
	}
}

func applyCmd(dashboard dashboardPort, jobID int) tea.Cmd {
	return func() tea.Msg {
		return applyDoneMsg{result: dashboard.Apply(context.Background(), jobID)}
	}
}

func toggleThemeCmd(session sessionPort) tea.Cmd {
	return func() tea.Msg {
		name, err := session.ToggleTheme(context.Background())
		return themeChangedMsg{name: name, err: err}
	}
}

func setThemeCmd(session sessionPort, name string) tea.Cmd {
	return func() tea.Msg {
		err := session.SetTheme(context.Background(), name)
		return themeChangedMsg{name: name, err: err}
	}
}

func logoutCmd(session sessionPort) tea.Cmd {
	return func() tea.Msg {
		return logoutDoneMsg{err: session.Logout(context.Background())}
	}
}
