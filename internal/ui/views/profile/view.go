package profile

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	sessiondto "worksphere/internal/modules/session/dto"
	"worksphere/internal/ui/theme"
)

const (
	defaultTrust = 75
	defaultLevel = 1
)

// Passport holds the display values of the AI Career Passport.
type Passport struct {
	TrustScore float64
	Level      int
	XPPoints   int
}

// PassportOf reads the passport figures off a cached profile; unset or zero
// values fall back to trust 75, level 1, xp 0.
func PassportOf(u sessiondto.UserProfile) Passport {
	p := Passport{TrustScore: u.TrustScore, Level: u.Level, XPPoints: u.XPPoints}
	if p.TrustScore == 0 {
		p.TrustScore = defaultTrust
	}
	if p.Level == 0 {
		p.Level = defaultLevel
	}
	return p
}

// DisplayName is the first name, or the username when it is empty.
func DisplayName(u sessiondto.UserProfile) string {
	if strings.TrimSpace(u.FirstName) != "" {
		return u.FirstName
	}
	return u.Username
}

func UserTypeLabel(userType string) string {
	if userType == "worker" {
		return "Freelancer"
	}
	return "Employer"
}

func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Render draws the profile page. Without a cached user it only shows the header.
func Render(user sessiondto.UserProfile, hasUser bool, width int) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("My Profile") + "\n")
	sb.WriteString(theme.Muted.Render("Manage your AI Career Passport") + "\n\n")
	if !hasUser {
		sb.WriteString(theme.Muted.Render("No profile cached for this session."))
		return sb.String()
	}

	cardW := width/2 - 2
	if cardW < 30 {
		cardW = 30
	}
	info := renderInfo(user)
	passport := RenderPassport(PassportOf(user))
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Pane.Width(cardW).Render(info),
		" ",
		theme.Pane.Width(cardW).Render(passport),
	)
	sb.WriteString(cards)
	return sb.String()
}

func renderInfo(u sessiondto.UserProfile) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Personal Information") + "\n\n")
	row := func(label, value string) {
		sb.WriteString(theme.Muted.Render(label) + "\n" + value + "\n")
	}
	row("Full Name", strings.TrimSpace(u.FirstName+" "+u.LastName))
	row("Email", u.Email)
	row("Username", u.Username)
	row("User Type", UserTypeLabel(u.UserType))
	return strings.TrimRight(sb.String(), "\n")
}

// RenderPassport draws the three passport stats side by side.
func RenderPassport(p Passport) string {
	stat := func(value, label string) string {
		return lipgloss.JoinVertical(lipgloss.Center, theme.Hot.Render(value), theme.Muted.Render(label))
	}
	return theme.Title.Render("AI Career Passport") + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top,
		stat(FormatScore(p.TrustScore), "Trust Score"), "   ",
		stat(strconv.Itoa(p.Level), "Level"), "   ",
		stat(strconv.Itoa(p.XPPoints), "XP Points"),
	)
}
