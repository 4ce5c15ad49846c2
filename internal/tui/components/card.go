package components

import (
	"strings"

	"nathanbeddoewebdev/padron/internal/domain"
	"nathanbeddoewebdev/padron/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	cardMaxWidth   = 72
	cardMinWidth   = 30
	cardLabelWidth = 14
)

// FieldCard renders a titled card with one label/value line per field.
// Values wider than the card are truncated with an ellipsis so each field
// stays on one line.
//
//	╭────────────────────────────────────╮
//	│  Pérez, Ana                        │
//	│                                    │
//	│  Libreta       1234                │
//	│  DNI           43323124            │
//	╰────────────────────────────────────╯
func FieldCard(width int, title string, fields []domain.Field) string {
	cardWidth := min(max(width-8, cardMinWidth), cardMaxWidth)
	valueWidth := max(cardWidth-cardLabelWidth-8, 1) // padding + border

	lines := make([]string, 0, len(fields)+2)
	if title != "" {
		lines = append(lines, styles.Title.Render(ansi.Truncate(title, cardWidth-6, "…")), "")
	}
	for _, f := range fields {
		value := f.Value
		if value == "" {
			value = "-"
		}
		l := styles.Label.Width(cardLabelWidth).Render(f.Label)
		v := styles.Value.Render(ansi.Truncate(value, valueWidth, "…"))
		lines = append(lines, l+v)
	}

	return styles.CardActive.Width(cardWidth).Render(strings.Join(lines, "\n"))
}

// Centered places content in the middle of a width x height area.
func Centered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
