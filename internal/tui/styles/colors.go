// Package styles provides the color palettes and style definitions for the
// padron TUI. All visual constants live here so the rest of the TUI code
// can reference a single source of truth.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette is a complete set of colors for one theme.
type Palette struct {
	Text    lipgloss.Color
	Subtle  lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Danger  lipgloss.Color
}

// --- Palettes (professional & minimal) ---

var (
	DarkPalette = Palette{
		Text:    lipgloss.Color("#E2E2E2"),
		Subtle:  lipgloss.Color("#888888"),
		Muted:   lipgloss.Color("#555555"),
		Border:  lipgloss.Color("#444444"),
		Accent:  lipgloss.Color("#5FAFFF"),
		Success: lipgloss.Color("#5FD787"),
		Warning: lipgloss.Color("#FFD787"),
		Danger:  lipgloss.Color("#FF8787"),
	}

	LightPalette = Palette{
		Text:    lipgloss.Color("#1F1F1F"),
		Subtle:  lipgloss.Color("#5C5C5C"),
		Muted:   lipgloss.Color("#8A8A8A"),
		Border:  lipgloss.Color("#C4C4C4"),
		Accent:  lipgloss.Color("#1F6FB2"),
		Success: lipgloss.Color("#2E8B57"),
		Warning: lipgloss.Color("#B8860B"),
		Danger:  lipgloss.Color("#C0392B"),
	}
)

// Active colors. Use swaps them.
var (
	White   lipgloss.Color
	Gray    lipgloss.Color
	Muted   lipgloss.Color
	DimGray lipgloss.Color
	Blue    lipgloss.Color
	Green   lipgloss.Color
	Yellow  lipgloss.Color
	Red     lipgloss.Color
)
