package tui

import (
	"context"
	"errors"
	"fmt"

	"nathanbeddoewebdev/padron/internal/domain"
	"nathanbeddoewebdev/padron/internal/search"
	"nathanbeddoewebdev/padron/internal/tui/components"
	"nathanbeddoewebdev/padron/internal/tui/styles"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// --- Messages ---

type rosterLoadedMsg struct {
	records int
	err     error
}

type searchDoneMsg struct {
	seq    int
	result search.Result
	err    error
}

// SearchOptions configures the interactive search.
type SearchOptions struct {
	Variant      string
	Source       string
	WithSchedule bool
	Theme        string
}

// SearchOutcome reports state the caller may want to persist.
type SearchOutcome struct {
	Theme string
}

// --- Search model ---

type searchModel struct {
	svc  *search.Service
	opts SearchOptions
	ctx  context.Context

	input   textinput.Model
	spinner spinner.Model

	loading   bool
	loadErr   error
	records   int
	searching bool

	// seq identifies the latest submitted query; older results are dropped.
	seq    int
	result *search.Result
	err    error

	width  int
	height int
}

// RunSearch starts the full-window search TUI and blocks until the user
// quits.
func RunSearch(ctx context.Context, svc *search.Service, opts SearchOptions) (*SearchOutcome, error) {
	styles.Use(opts.Theme)

	m := newSearchModel(ctx, svc, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return &SearchOutcome{Theme: styles.Current()}, nil
		}
		return nil, fmt.Errorf("failed to run search: %w", err)
	}
	return &SearchOutcome{Theme: styles.Current()}, nil
}

func newSearchModel(ctx context.Context, svc *search.Service, opts SearchOptions) searchModel {
	m := svc.Matcher()

	ti := textinput.New()
	ti.Placeholder = "Ingresá tu " + m.Label()
	ti.Prompt = m.Label() + ": "
	// Length is enforced by Sanitize so pasted separators don't eat the limit.
	ti.Width = max(m.MaxInput(), 16)
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	return searchModel{
		svc:     svc,
		opts:    opts,
		ctx:     ctx,
		input:   ti,
		spinner: s,
		loading: true,
	}
}

func (m searchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, textinput.Blink, m.loadRoster())
}

func (m searchModel) loadRoster() tea.Cmd {
	return func() tea.Msg {
		r := m.svc.Load(m.ctx)
		return rosterLoadedMsg{records: r.Len(), err: m.svc.LoadErr()}
	}
}

func (m searchModel) runSearch(seq int, query string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.Search(m.ctx, query)
		return searchDoneMsg{seq: seq, result: res, err: err}
	}
}

func (m searchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case rosterLoadedMsg:
		m.loading = false
		m.records = msg.records
		m.loadErr = msg.err
		return m, nil

	case searchDoneMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.searching = false
		if msg.err != nil {
			m.err = msg.err
			m.result = nil
			return m, nil
		}
		res := msg.result
		m.result = &res
		m.err = nil
		return m, nil

	case spinner.TickMsg:
		if m.loading || m.searching {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m searchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "ctrl+t":
		styles.Toggle()
		m.spinner.Style = lipgloss.NewStyle().Foreground(styles.Blue)
		return m, nil

	case "esc":
		m.input.Reset()
		m.result = nil
		m.err = nil
		return m, nil

	case "enter":
		query := m.input.Value()
		if query == "" {
			return m, nil
		}
		m.seq++
		m.searching = true
		m.err = nil
		return m, tea.Batch(m.spinner.Tick, m.runSearch(m.seq, query))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if clean := m.svc.Matcher().Sanitize(m.input.Value()); clean != m.input.Value() {
		m.input.SetValue(clean)
	}
	return m, cmd
}

func (m searchModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, "search", m.opts.Variant)
	footer := components.Footer(m.width, []components.KeyBinding{
		{Key: "enter", Desc: "search"},
		{Key: "esc", Desc: "clear"},
		{Key: "ctrl+t", Desc: "theme"},
		{Key: "ctrl+c", Desc: "quit"},
	})

	statusBar := m.statusLine()

	headerH := lipgloss.Height(header)
	footerH := lipgloss.Height(footer)
	statusH := lipgloss.Height(statusBar)
	contentH := max(m.height-headerH-footerH-statusH, 1)

	sections := []string{header, m.renderContent(contentH)}
	if statusBar != "" {
		sections = append(sections, statusBar)
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m searchModel) statusLine() string {
	switch {
	case m.loading:
		return ""
	case m.loadErr != nil:
		return components.StatusBar(m.width, "Could not load "+m.opts.Source+"; every search will come back empty", true)
	default:
		return components.StatusBar(m.width, fmt.Sprintf("%d records from %s", m.records, m.opts.Source), false)
	}
}

func (m searchModel) renderContent(height int) string {
	if m.loading {
		return components.Centered(m.width, height,
			styles.MutedText.Render(m.spinner.View()+"  Loading records..."))
	}

	title := styles.Title.Render("Consulta de " + m.svc.Matcher().Label())
	box := styles.InputFocused.Render(m.input.View())

	var body string
	switch {
	case m.searching:
		body = styles.MutedText.Render(m.spinner.View() + "  Searching...")
	case m.err != nil:
		body = styles.ErrorText.Render("Error: " + m.err.Error())
	case m.result != nil && m.result.Found():
		body = m.renderStudent(*m.result.Student)
	case m.result != nil:
		body = styles.WarningText.Render(notFoundText(*m.result))
	}

	parts := []string{title, "", box}
	if body != "" {
		parts = append(parts, "", body)
	}
	return components.Centered(m.width, height, lipgloss.JoinVertical(lipgloss.Center, parts...))
}

func (m searchModel) renderStudent(s domain.Student) string {
	return components.FieldCard(m.width, s.FullName(), s.Fields(m.opts.WithSchedule))
}

func notFoundText(r search.Result) string {
	return fmt.Sprintf("No student found with %s %q", r.Label, r.Query)
}
