package styles

import "github.com/charmbracelet/lipgloss"

// Theme names.
const (
	Dark  = "dark"
	Light = "light"
)

var current = Dark

func init() {
	Use(Dark)
}

// Use activates the named theme. Anything other than "light" selects the
// dark theme. Styles are package-level values, so Use must be called from
// the goroutine that renders (the bubbletea update loop).
func Use(theme string) {
	p := DarkPalette
	current = Dark
	if theme == Light {
		p = LightPalette
		current = Light
	}
	apply(p)
}

// Current returns the active theme name.
func Current() string {
	return current
}

// Toggle switches between the dark and light themes and returns the new one.
func Toggle() string {
	if current == Light {
		Use(Dark)
	} else {
		Use(Light)
	}
	return current
}

// --- Typography ---

var (
	// Title is the main header text style.
	Title lipgloss.Style

	// Subtitle is used for secondary headings.
	Subtitle lipgloss.Style

	// Label is used for field names in detail views.
	Label lipgloss.Style

	// Value is used for field values in detail views.
	Value lipgloss.Style

	// MutedText is for help text, hints, and less important info.
	MutedText lipgloss.Style

	// AccentText is for highlighted interactive elements.
	AccentText lipgloss.Style

	ErrorText   lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
)

// --- Layout components ---

var (
	// Border is the default subtle border style.
	Border = lipgloss.RoundedBorder()

	// Card is a rounded-border panel for content sections.
	Card lipgloss.Style

	// CardActive is a card with an accent border for focused elements.
	CardActive lipgloss.Style
)

// --- Key binding hint styles ---

var (
	// KeyStyle is used for key labels in the footer (e.g. "esc").
	KeyStyle lipgloss.Style

	// KeyDescStyle is used for key descriptions in the footer (e.g. "clear").
	KeyDescStyle lipgloss.Style

	// KeySepStyle is used for separators between key bindings.
	KeySepStyle lipgloss.Style
)

// --- Input field styles ---

var (
	InputFocused lipgloss.Style
	InputBlurred lipgloss.Style
)

func apply(p Palette) {
	White, Gray, Muted, DimGray = p.Text, p.Subtle, p.Muted, p.Border
	Blue, Green, Yellow, Red = p.Accent, p.Success, p.Warning, p.Danger

	Title = lipgloss.NewStyle().Bold(true).Foreground(White)
	Subtitle = lipgloss.NewStyle().Foreground(Gray)
	Label = lipgloss.NewStyle().Foreground(Gray).Bold(true)
	Value = lipgloss.NewStyle().Foreground(White)
	MutedText = lipgloss.NewStyle().Foreground(Muted)
	AccentText = lipgloss.NewStyle().Foreground(Blue)
	ErrorText = lipgloss.NewStyle().Foreground(Red).Bold(true)
	SuccessText = lipgloss.NewStyle().Foreground(Green).Bold(true)
	WarningText = lipgloss.NewStyle().Foreground(Yellow).Bold(true)

	Card = lipgloss.NewStyle().
		Border(Border).
		BorderForeground(DimGray).
		Padding(1, 2)
	CardActive = lipgloss.NewStyle().
		Border(Border).
		BorderForeground(Blue).
		Padding(1, 2)

	KeyStyle = lipgloss.NewStyle().Foreground(Blue).Bold(true)
	KeyDescStyle = lipgloss.NewStyle().Foreground(Muted)
	KeySepStyle = lipgloss.NewStyle().Foreground(DimGray)

	InputFocused = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Blue).
		Padding(0, 1)
	InputBlurred = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(DimGray).
		Padding(0, 1)
}

// FormatKeyBinding formats a single key binding for the footer.
func FormatKeyBinding(key, desc string) string {
	return KeyStyle.Render(key) + " " + KeyDescStyle.Render(desc)
}

// CenterText centers text horizontally within the given width.
func CenterText(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(text)
}
