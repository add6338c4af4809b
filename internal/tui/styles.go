package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/osintnexus/internal/catalog"
	"github.com/nao1215/osintnexus/internal/model"
	"github.com/nao1215/osintnexus/internal/prefs"
)

// titleCase renders statuses and categories, e.g. "in-progress" as "In-Progress".
// A Caser is stateful, so each call gets its own.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// Semantic colors shared by both palettes.
var (
	successColor = lipgloss.Color("#2E7D32")
	warningColor = lipgloss.Color("#F9A825")
	errorColor   = lipgloss.Color("#D32F2F")
	infoColor    = lipgloss.Color("#1976D2")
)

// Theme is the resolved palette of the current preferences.
type Theme struct {
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Surface    lipgloss.Color
	Primary    lipgloss.Color
	OnPrimary  lipgloss.Color
	IsDark     bool
}

// NewTheme builds the palette for a theme mode and accent color scheme.
func NewTheme(mode prefs.ThemeMode, scheme prefs.ColorScheme) Theme {
	t := Theme{
		Primary:   lipgloss.Color(scheme.Primary),
		OnPrimary: lipgloss.Color("#FFFFFF"),
	}
	if mode == prefs.ThemeDark {
		t.Foreground = lipgloss.Color("#E6E1E5")
		t.Muted = lipgloss.Color("#938F99")
		t.Border = lipgloss.Color("#49454F")
		t.Surface = lipgloss.Color("#1C1B1F")
		t.IsDark = true
		return t
	}
	t.Foreground = lipgloss.Color("#1C1B1F")
	t.Muted = lipgloss.Color("#79747E")
	t.Border = lipgloss.Color("#CAC4D0")
	t.Surface = lipgloss.Color("#FFFBFE")
	return t
}

// Styles holds the styled components of every screen.
type Styles struct {
	Theme Theme

	App      lipgloss.Style
	Header   lipgloss.Style
	Footer   lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style

	NavItem   lipgloss.Style
	NavActive lipgloss.Style

	Card         lipgloss.Style
	CardSelected lipgloss.Style
	Modal        lipgloss.Style
	Badge        lipgloss.Style
	Selected     lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
}

// NewStyles creates the styles for p.
func NewStyles(p prefs.Preferences) Styles {
	theme := NewTheme(p.Theme, p.Scheme())

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	return Styles{
		Theme: theme,

		App: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Padding(0, 1),
		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(theme.OnPrimary).
			Bold(true).
			Padding(0, 2),
		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),
		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),
		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		NavItem: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),
		NavActive: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Underline(true).
			Padding(0, 1),

		Card:         card,
		CardSelected: card.BorderForeground(theme.Primary),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(theme.Primary).
			Padding(1, 2),
		Badge: lipgloss.NewStyle().
			Foreground(theme.OnPrimary).
			Background(theme.Primary).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Success: lipgloss.NewStyle().Foreground(successColor).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(warningColor).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(errorColor).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(infoColor).Bold(true),
	}
}

// Severity renders an alert severity in its color.
func (s Styles) Severity(sev model.Severity) string {
	label := strings.ToUpper(sev.String())
	switch sev {
	case model.SeverityHigh:
		return s.Error.Render(label)
	case model.SeverityMedium:
		return s.Warning.Render(label)
	case model.SeverityLow:
		return s.Info.Render(label)
	default:
		return s.Muted.Render(label)
	}
}

// Status renders an activity status in its color.
func (s Styles) Status(st model.ActivityStatus) string {
	label := titleCase(string(st))
	switch st {
	case model.StatusCompleted:
		return s.Success.Render(label)
	case model.StatusInProgress:
		return s.Warning.Render(label)
	case model.StatusFailed:
		return s.Error.Render(label)
	default:
		return s.Muted.Render(label)
	}
}

// ToolStatus renders a tool maturity badge.
func (s Styles) ToolStatus(st model.ToolStatus) string {
	if st == model.ToolBeta {
		return s.Warning.Render("BETA")
	}
	return s.Success.Render("ACTIVE")
}

// ModuleAccent renders text in the accent color of a module.
func (s Styles) ModuleAccent(m catalog.Module, text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.Color)).Bold(true).Render(text)
}
