package ui

import "github.com/charmbracelet/lipgloss"

// Design centralizes the TUI color palette and common styles.
//
// Palette is based on Vitesse Dark Soft:
// https://github.com/antfu/vscode-theme-vitesse/blob/main/themes/vitesse-dark-soft.json
type designTheme struct {
	Primary lipgloss.Color // #4d9375
	Blue    lipgloss.Color // #6394bf
	Yellow  lipgloss.Color // #e6cc77
	Magenta lipgloss.Color // #d9739f
	Cyan    lipgloss.Color // #5eaab5
	Red     lipgloss.Color // #cb7676

	Text      lipgloss.Color // #dbd7caee
	Secondary lipgloss.Color // #bfbaaa
	Muted     lipgloss.Color // #dedcd590

	Bg     lipgloss.Color // #181818
	BgSoft lipgloss.Color // #292929
	Border lipgloss.Color // #252525

	OnAccent lipgloss.Color // #222

	BarFG lipgloss.AdaptiveColor
	BarBG lipgloss.AdaptiveColor
}

// Vitesse defines the current global design theme for the TUI.
var Vitesse = designTheme{
	Primary: lipgloss.Color("#4d9375"),
	Blue:    lipgloss.Color("#6394bf"),
	Yellow:  lipgloss.Color("#e6cc77"),
	Magenta: lipgloss.Color("#d9739f"),
	Cyan:    lipgloss.Color("#5eaab5"),
	Red:     lipgloss.Color("#cb7676"),

	Text:      lipgloss.Color("#dbd7caee"),
	Secondary: lipgloss.Color("#bfbaaa"),
	Muted:     lipgloss.Color("#dedcd590"),

	Bg:     lipgloss.Color("#181818"),
	BgSoft: lipgloss.Color("#292929"),
	Border: lipgloss.Color("#252525"),

	OnAccent: lipgloss.Color("#222"),

	BarFG: lipgloss.AdaptiveColor{Light: "#343433", Dark: "#bfbaaa"},
	BarBG: lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#222"},
}

// Cell styles, layered by interaction state. Selection wins over plain,
// focus wins over selection, active search match wins over focus.
var (
	headerStyle = lipgloss.NewStyle().Bold(true).
			Foreground(Vitesse.Secondary).Background(Vitesse.BgSoft)
	headerSelStyle = lipgloss.NewStyle().Bold(true).
			Foreground(Vitesse.OnAccent).Background(Vitesse.Primary)

	cellStyle     = lipgloss.NewStyle().Foreground(Vitesse.Text)
	selectedStyle = lipgloss.NewStyle().Foreground(Vitesse.Text).Background(Vitesse.BgSoft)
	focusedStyle  = lipgloss.NewStyle().Bold(true).
			Foreground(Vitesse.OnAccent).Background(Vitesse.Primary)
	cutStyle      = lipgloss.NewStyle().Faint(true).Foreground(Vitesse.Muted)
	matchStyle    = lipgloss.NewStyle().Foreground(Vitesse.OnAccent).Background(Vitesse.Yellow)
	activeMatchSt = lipgloss.NewStyle().Bold(true).
			Foreground(Vitesse.OnAccent).Background(Vitesse.Magenta)
	rowSelStyle = lipgloss.NewStyle().Foreground(Vitesse.Text).Background(Vitesse.Border)

	noticeStyle  = lipgloss.NewStyle().Foreground(Vitesse.Primary)
	warningStyle = lipgloss.NewStyle().Foreground(Vitesse.Red)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Vitesse.Primary).
			Background(Vitesse.Bg).
			Padding(1, 2)
	menuStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(Vitesse.Border).
			Background(Vitesse.BgSoft)
	menuItemStyle    = lipgloss.NewStyle().Foreground(Vitesse.Text).Padding(0, 1)
	menuItemDisabled = lipgloss.NewStyle().Foreground(Vitesse.Muted).Padding(0, 1)
)

// StatusBarBase returns the base style for the status bar.
func StatusBarBase() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.BarFG).Background(Vitesse.BarBG)
}

// ChipKeyStyle returns a style for the left-most highlighted chip in the
// status bar.
func ChipKeyStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Vitesse.OnAccent).
		Background(Vitesse.Primary).
		Padding(0, 1)
}
