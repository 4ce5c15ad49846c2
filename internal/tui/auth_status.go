package tui

import (
	"errors"
	"fmt"
	"strings"

	"nathanbeddoewebdev/padron/internal/services/auth"
	"nathanbeddoewebdev/padron/internal/tui/components"
	"nathanbeddoewebdev/padron/internal/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// --- Host status ---

// HostStatus is the stored-token state of one source host.
type HostStatus struct {
	Host   string
	Status string // "authenticated", "not authenticated", or error message
	OK     bool
}

// CheckHosts looks up the token state of each host.
func CheckHosts(store auth.Store, hosts []string) []HostStatus {
	statuses := make([]HostStatus, 0, len(hosts))
	for _, host := range hosts {
		_, err := store.GetToken(host)
		switch {
		case err == nil:
			statuses = append(statuses, HostStatus{Host: host, Status: "authenticated", OK: true})
		case errors.Is(err, auth.ErrTokenNotFound):
			statuses = append(statuses, HostStatus{Host: host, Status: "not authenticated"})
		default:
			statuses = append(statuses, HostStatus{Host: host, Status: fmt.Sprintf("error: %v", err)})
		}
	}
	return statuses
}

// --- Auth status model ---

type authStatusModel struct {
	store auth.Store

	statuses []HostStatus

	width  int
	height int
}

// RunAuthStatus starts the full-window auth status TUI for the given hosts.
func RunAuthStatus(store auth.Store, hosts []string) error {
	m := authStatusModel{
		store:    store,
		statuses: CheckHosts(store, hosts),
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m authStatusModel) Init() tea.Cmd {
	return nil
}

func (m authStatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m authStatusModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, "auth status", "")
	footerBindings := []components.KeyBinding{
		{Key: "q", Desc: "quit"},
	}
	footer := components.Footer(m.width, footerBindings)

	headerH := lipgloss.Height(header)
	footerH := lipgloss.Height(footer)
	contentH := m.height - headerH - footerH
	if contentH < 1 {
		contentH = 1
	}

	content := m.renderContent(contentH)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m authStatusModel) renderContent(height int) string {
	if len(m.statuses) == 0 {
		return lipgloss.Place(
			m.width, height,
			lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("The configured source is a local file; no token is needed."),
		)
	}

	title := styles.Title.Render("Source Authentication")

	cardWidth := 64
	labelWidth := 32

	rows := make([]string, 0, len(m.statuses))
	for _, ps := range m.statuses {
		nameStyle := styles.Label.Width(labelWidth)
		name := nameStyle.Render(ps.Host)

		var statusText string
		if ps.OK {
			statusText = styles.SuccessText.Render("authenticated")
		} else {
			statusText = styles.MutedText.Render(ps.Status)
		}

		rows = append(rows, name+statusText)
	}

	content := strings.Join(rows, "\n")

	card := styles.Card.Width(cardWidth).Render(content)

	combined := lipgloss.JoinVertical(lipgloss.Center, title, "", card)

	return lipgloss.Place(
		m.width, height,
		lipgloss.Center, lipgloss.Center,
		combined,
	)
}
