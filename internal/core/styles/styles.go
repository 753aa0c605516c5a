// Package styles provides shared lipgloss styles for the TUI.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases.
var (
	ColorPrimary    lipgloss.Color
	ColorSecondary  lipgloss.Color
	ColorForeground lipgloss.Color
	ColorMuted      lipgloss.Color
	ColorBackground lipgloss.Color
	ColorSurface    lipgloss.Color
	ColorSuccess    lipgloss.Color
	ColorWarning    lipgloss.Color
	ColorError      lipgloss.Color
)

// Style exports.
var (
	TextPrimaryStyle        lipgloss.Style
	TextPrimaryBoldStyle    lipgloss.Style
	TextForegroundStyle     lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
	TextMutedStyle          lipgloss.Style

	// Diff line styles.
	DiffAddStyle     lipgloss.Style
	DiffDeleteStyle  lipgloss.Style
	DiffChangeStyle  lipgloss.Style
	DiffContextStyle lipgloss.Style
	DiffFillerStyle  lipgloss.Style
	LinenoStyle      lipgloss.Style
	HunkBoundary     lipgloss.Style
	CursorLineStyle  lipgloss.Style

	// Review overlay styles.
	ThreadSummaryStyle  lipgloss.Style
	ThreadResolvedStyle lipgloss.Style
	PendingStyle        lipgloss.Style

	// Chrome.
	StatusBarStyle  lipgloss.Style
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

func init() {
	Init(DefaultTheme)
}

// Init activates the named theme and rebuilds all exported styles.
// Unknown names fall back to the default theme.
func Init(theme string) {
	p, ok := themes[theme]
	if !ok {
		p = themes[DefaultTheme]
	}
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	TextPrimaryStyle = lipgloss.NewStyle().Foreground(p.Primary)
	TextPrimaryBoldStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	TextForegroundStyle = lipgloss.NewStyle().Foreground(p.Foreground)
	TextForegroundBoldStyle = lipgloss.NewStyle().Foreground(p.Foreground).Bold(true)
	TextMutedStyle = lipgloss.NewStyle().Foreground(p.Muted)

	DiffAddStyle = lipgloss.NewStyle().Foreground(p.Success)
	DiffDeleteStyle = lipgloss.NewStyle().Foreground(p.Error)
	DiffChangeStyle = lipgloss.NewStyle().Foreground(p.Warning)
	DiffContextStyle = lipgloss.NewStyle().Foreground(p.Foreground)
	DiffFillerStyle = lipgloss.NewStyle().Foreground(p.Surface)
	LinenoStyle = lipgloss.NewStyle().Foreground(p.Muted)
	HunkBoundary = lipgloss.NewStyle().Foreground(p.Secondary)
	CursorLineStyle = lipgloss.NewStyle().Background(p.Surface)

	ThreadSummaryStyle = lipgloss.NewStyle().Foreground(p.Warning)
	ThreadResolvedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	PendingStyle = lipgloss.NewStyle().Foreground(p.Secondary).Italic(true)

	StatusBarStyle = lipgloss.NewStyle().Background(p.Surface)
	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	ModalHelpStyle = lipgloss.NewStyle().Foreground(p.Muted)
}
