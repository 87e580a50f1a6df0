package ui

import "github.com/charmbracelet/lipgloss"

// Theme bundles palette + symbols + styles.
// Renderers take a Theme explicitly; there is no package-level current theme.
type Theme struct {
	Dark bool

	Title, Muted, Accent, Success, Pending, Error lipgloss.Style
	Done, Selected, Help, Base                    lipgloss.Style

	Border                   lipgloss.Color
	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
}

// ForMode returns the dark theme when dark is set, else the light one.
func ForMode(dark bool) Theme {
	if dark {
		return darkTheme()
	}
	return lightTheme()
}

func (t Theme) Name() string {
	if t.Dark {
		return "dark"
	}
	return "light"
}

func lightTheme() Theme {
	fg := lipgloss.Color("235")
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5A56E0")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("#02BA84")),
		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Done:     lipgloss.NewStyle().Foreground(fg).Strikethrough(true),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5A56E0")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Base:     lipgloss.NewStyle().Foreground(fg),

		Border:       lipgloss.Color("8"),
		BoxUnchecked: "☐", BoxChecked: "☑",
		SymDone: "✔", SymPending: "•",
	}
}

func darkTheme() Theme {
	fg := lipgloss.Color("252")
	bg := lipgloss.Color("234")
	on := func(s lipgloss.Style) lipgloss.Style { return s.Background(bg) }
	return Theme{
		Dark:     true,
		Title:    on(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7571F9"))),
		Muted:    on(lipgloss.NewStyle().Foreground(lipgloss.Color("245"))),
		Accent:   on(lipgloss.NewStyle().Foreground(lipgloss.Color("117"))),
		Success:  on(lipgloss.NewStyle().Foreground(lipgloss.Color("#02BF87"))),
		Pending:  on(lipgloss.NewStyle().Foreground(lipgloss.Color("221"))),
		Error:    on(lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)),
		Done:     on(lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Strikethrough(true)),
		Selected: on(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7571F9"))),
		Help:     on(lipgloss.NewStyle().Foreground(lipgloss.Color("241"))),
		Base:     on(lipgloss.NewStyle().Foreground(fg)),

		Border:       lipgloss.Color("240"),
		BoxUnchecked: "◻", BoxChecked: "◼",
		SymDone: "✔", SymPending: "•",
	}
}
