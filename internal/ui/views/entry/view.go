package entry

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "worksphere/internal/modules/auth/dto"
	"worksphere/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type AuthPort interface {
	Login(ctx context.Context, input authdto.LoginInput) authdto.Result
	Register(ctx context.Context, input authdto.RegisterInput) authdto.Result
	FederatedAuth(ctx context.Context, credential string) authdto.Result
	SignInWithProvider(ctx context.Context) authdto.Result
}

// ─── messages ────────────────────────────────────────────────────────────────

// ResultMsg reports the outcome of a submitted form.
type ResultMsg struct {
	Mode   Mode
	Result authdto.Result
}

// ─── fields ──────────────────────────────────────────────────────────────────

type Mode int

const (
	ModeLogin Mode = iota
	ModeSignup
	ModeManual
)

type field int

const (
	fieldEmail field = iota
	fieldPassword
	fieldFirstName
	fieldLastName
	fieldSignupEmail
	fieldUsername
	fieldUserType
	fieldSignupPassword
	fieldConfirm
	fieldTerms
	fieldCredential
	fieldCount
)

var modeFields = map[Mode][]field{
	ModeLogin:  {fieldEmail, fieldPassword},
	ModeSignup: {fieldFirstName, fieldLastName, fieldSignupEmail, fieldUsername, fieldUserType, fieldSignupPassword, fieldConfirm, fieldTerms},
	ModeManual: {fieldCredential},
}

var fieldLabels = [fieldCount]string{
	fieldEmail:          "Email",
	fieldPassword:       "Password",
	fieldFirstName:      "First Name",
	fieldLastName:       "Last Name",
	fieldSignupEmail:    "Email",
	fieldUsername:       "Username",
	fieldUserType:       "I want to",
	fieldSignupPassword: "Password",
	fieldConfirm:        "Confirm Password",
	fieldTerms:          "Terms",
	fieldCredential:     "Google credential",
}

var userTypes = []string{"worker", "employer"}

var userTypeLabels = map[string]string{
	"worker":   "Find work (Freelancer)",
	"employer": "Hire talent (Employer)",
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the sign-in screen: login, signup and the manual credential
// fallback for federated sign-in.
type Model struct {
	port     AuthPort
	inputs   [fieldCount]textinput.Model
	mode     Mode
	focus    int
	userType int
	terms    bool
	busy     bool
	spinner  spinner.Model
	width    int
	height   int
}

func New(port AuthPort) Model {
	m := Model{port: port}
	for f := field(0); f < fieldCount; f++ {
		ti := textinput.New()
		ti.CharLimit = 254
		ti.Prompt = ""
		switch f {
		case fieldPassword, fieldSignupPassword, fieldConfirm:
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		case fieldCredential:
			ti.CharLimit = 4096
		}
		m.inputs[f] = ti
	}
	m.inputs[fieldEmail].Placeholder = "you@example.com"
	m.inputs[fieldSignupEmail].Placeholder = "you@example.com"
	m.inputs[fieldCredential].Placeholder = "paste an OAuth access token"
	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot
	m.focusCurrent()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Mode() Mode { return m.mode }

func (m Model) Busy() bool { return m.busy }

// Reset clears every field and returns to the login form.
func (m Model) Reset() Model {
	for f := range m.inputs {
		m.inputs[f].SetValue("")
	}
	m.terms = false
	m.userType = 0
	m.busy = false
	return m.switchMode(ModeLogin)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ResultMsg:
		m.busy = false
		if msg.Result.Fallback {
			m = m.switchMode(ModeManual)
		}
		return m, nil

	case spinner.TickMsg:
		if m.busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	fields := modeFields[m.mode]
	current := fields[m.focus]
	switch msg.String() {
	case "tab", "down":
		m.focus = (m.focus + 1) % len(fields)
		m.focusCurrent()
		return m, nil
	case "shift+tab", "up":
		m.focus = (m.focus + len(fields) - 1) % len(fields)
		m.focusCurrent()
		return m, nil
	case "ctrl+n":
		if m.mode == ModeSignup {
			return m.switchMode(ModeLogin), nil
		}
		return m.switchMode(ModeSignup), nil
	case "esc":
		if m.mode != ModeLogin {
			return m.switchMode(ModeLogin), nil
		}
		return m, nil
	case "ctrl+g":
		return m.submit(m.googleCmd())
	case "ctrl+s":
		return m.submit(m.formCmd())
	case "enter":
		if m.focus == len(fields)-1 {
			return m.submit(m.formCmd())
		}
		m.focus++
		m.focusCurrent()
		return m, nil
	}

	switch current {
	case fieldUserType:
		switch msg.String() {
		case " ", "left", "right", "h", "l":
			m.userType = (m.userType + 1) % len(userTypes)
		}
		return m, nil
	case fieldTerms:
		if msg.String() == " " {
			m.terms = !m.terms
		}
		return m, nil
	}
	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (Model, tea.Cmd) {
	f := modeFields[m.mode][m.focus]
	if f == fieldUserType || f == fieldTerms {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[f], cmd = m.inputs[f].Update(msg)
	return m, cmd
}

// submit starts cmd unless a submission is already in flight.
func (m Model) submit(cmd tea.Cmd) (Model, tea.Cmd) {
	if m.busy || cmd == nil {
		return m, nil
	}
	m.busy = true
	return m, tea.Batch(cmd, m.spinner.Tick)
}

func (m Model) formCmd() tea.Cmd {
	mode := m.mode
	switch mode {
	case ModeLogin:
		input := m.LoginInput()
		return func() tea.Msg {
			return ResultMsg{Mode: mode, Result: m.port.Login(context.Background(), input)}
		}
	case ModeSignup:
		input := m.RegisterInput()
		return func() tea.Msg {
			return ResultMsg{Mode: mode, Result: m.port.Register(context.Background(), input)}
		}
	case ModeManual:
		credential := m.inputs[fieldCredential].Value()
		return func() tea.Msg {
			return ResultMsg{Mode: mode, Result: m.port.FederatedAuth(context.Background(), credential)}
		}
	}
	return nil
}

func (m Model) googleCmd() tea.Cmd {
	mode := m.mode
	return func() tea.Msg {
		return ResultMsg{Mode: mode, Result: m.port.SignInWithProvider(context.Background())}
	}
}

// LoginInput reads the login form. Values are sent exactly as typed, the
// same as the command line does.
func (m Model) LoginInput() authdto.LoginInput {
	return authdto.LoginInput{
		Email:    m.inputs[fieldEmail].Value(),
		Password: m.inputs[fieldPassword].Value(),
	}
}

func (m Model) RegisterInput() authdto.RegisterInput {
	return authdto.RegisterInput{
		FirstName:   m.inputs[fieldFirstName].Value(),
		LastName:    m.inputs[fieldLastName].Value(),
		Email:       m.inputs[fieldSignupEmail].Value(),
		Username:    m.inputs[fieldUsername].Value(),
		UserType:    userTypes[m.userType],
		Password:    m.inputs[fieldSignupPassword].Value(),
		Confirm:     m.inputs[fieldConfirm].Value(),
		AcceptTerms: m.terms,
	}
}

func (m Model) switchMode(mode Mode) Model {
	m.mode = mode
	m.focus = 0
	m.focusCurrent()
	return m
}

func (m *Model) focusCurrent() {
	for f := range m.inputs {
		m.inputs[f].Blur()
	}
	f := modeFields[m.mode][m.focus]
	if f != fieldUserType && f != fieldTerms {
		m.inputs[f].Focus()
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Hot.Render("WorkSphere") + "\n")
	switch m.mode {
	case ModeSignup:
		sb.WriteString(theme.Title.Render("Create your account") + "\n\n")
	case ModeManual:
		sb.WriteString(theme.Title.Render("Sign in with Google") + "\n")
		sb.WriteString(theme.Muted.Render("Google Sign In is not reachable from here. Paste a credential instead.") + "\n\n")
	default:
		sb.WriteString(theme.Title.Render("Welcome back") + "\n\n")
	}

	for i, f := range modeFields[m.mode] {
		focused := i == m.focus
		label := fieldLabels[f]
		if focused {
			label = theme.Info.Render("› " + label)
		} else {
			label = theme.Muted.Render("  " + label)
		}
		sb.WriteString(label + "\n  " + m.fieldView(f) + "\n")
	}

	sb.WriteString("\n")
	if m.busy {
		sb.WriteString(m.spinner.View() + theme.Muted.Render(" Please wait..."))
	} else {
		sb.WriteString(m.submitLabel())
	}
	sb.WriteString("\n\n" + theme.Muted.Render(m.hints()))

	card := theme.PaneActive.Padding(1, 3).Render(sb.String())
	if m.width == 0 || m.height == 0 {
		return card
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

func (m Model) fieldView(f field) string {
	switch f {
	case fieldUserType:
		return "◂ " + userTypeLabels[userTypes[m.userType]] + " ▸"
	case fieldTerms:
		box := "[ ]"
		if m.terms {
			box = "[x]"
		}
		return box + " I agree to the Terms of Service and Privacy Policy"
	}
	return m.inputs[f].View()
}

func (m Model) submitLabel() string {
	switch m.mode {
	case ModeSignup:
		return theme.Success.Render("enter: Create Account")
	case ModeManual:
		return theme.Success.Render("enter: Continue with credential")
	}
	return theme.Success.Render("enter: Sign In")
}

func (m Model) hints() string {
	switch m.mode {
	case ModeSignup:
		return "tab: next field  space: toggle  ctrl+g: Google  ctrl+n: sign in instead  ctrl+c: quit"
	case ModeManual:
		return "esc: back  ctrl+c: quit"
	}
	return "tab: next field  ctrl+g: Google  ctrl+n: create account  ctrl+c: quit"
}
