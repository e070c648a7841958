package theme

import "github.com/charmbracelet/lipgloss"

// Palette is one Catppuccin flavour.
type Palette struct {
	Name     string
	Base     lipgloss.Color
	Mantle   lipgloss.Color
	Surface0 lipgloss.Color
	Surface1 lipgloss.Color
	Text     lipgloss.Color
	Subtext0 lipgloss.Color
	Lavender lipgloss.Color
	Sapphire lipgloss.Color
	Green    lipgloss.Color
	Peach    lipgloss.Color
	Red      lipgloss.Color
	Yellow   lipgloss.Color
}

var Latte = Palette{
	Name:     "light",
	Base:     "#eff1f5",
	Mantle:   "#e6e9ef",
	Surface0: "#ccd0da",
	Surface1: "#bcc0cc",
	Text:     "#4c4f69",
	Subtext0: "#6c6f85",
	Lavender: "#7287fd",
	Sapphire: "#209fb5",
	Green:    "#40a02b",
	Peach:    "#fe640b",
	Red:      "#d20f39",
	Yellow:   "#df8e1d",
}

var Mocha = Palette{
	Name:     "dark",
	Base:     "#1e1e2e",
	Mantle:   "#181825",
	Surface0: "#313244",
	Surface1: "#45475a",
	Text:     "#cdd6f4",
	Subtext0: "#a6adc8",
	Lavender: "#b4befe",
	Sapphire: "#74c7ec",
	Green:    "#a6e3a1",
	Peach:    "#fab387",
	Red:      "#f38ba8",
	Yellow:   "#f9e2af",
}

// Styles below are rebuilt by Use. Views read them at render time.
var (
	Current Palette

	Base     lipgloss.Color
	Mantle   lipgloss.Color
	Surface0 lipgloss.Color
	Surface1 lipgloss.Color
	Text     lipgloss.Color
	Subtext0 lipgloss.Color
	Lavender lipgloss.Color
	Sapphire lipgloss.Color
	Green    lipgloss.Color
	Peach    lipgloss.Color
	Red      lipgloss.Color
	Yellow   lipgloss.Color

	App        lipgloss.Style
	Pane       lipgloss.Style
	PaneActive lipgloss.Style
	Title      lipgloss.Style
	Muted      lipgloss.Style
	Hot        lipgloss.Style
	Success    lipgloss.Style
	Danger     lipgloss.Style
	Warning    lipgloss.Style
	Info       lipgloss.Style
)

func init() {
	Use(Latte.Name)
}

// ForName maps a stored theme name to its palette; anything but "dark" is light.
func ForName(name string) Palette {
	if name == Mocha.Name {
		return Mocha
	}
	return Latte
}

// Use switches every shared style to the named palette.
func Use(name string) {
	p := ForName(name)
	Current = p
	Base, Mantle, Surface0, Surface1 = p.Base, p.Mantle, p.Surface0, p.Surface1
	Text, Subtext0, Lavender, Sapphire = p.Text, p.Subtext0, p.Lavender, p.Sapphire
	Green, Peach, Red, Yellow = p.Green, p.Peach, p.Red, p.Yellow

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(0, 1)

	PaneActive = Pane.BorderForeground(Lavender)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Success = lipgloss.NewStyle().Foreground(Green).Bold(true)
	Danger = lipgloss.NewStyle().Foreground(Red).Bold(true)
	Warning = lipgloss.NewStyle().Foreground(Yellow)
	Info = lipgloss.NewStyle().Foreground(Lavender)
}
