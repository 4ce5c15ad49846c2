package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/padron/internal/config"
	"nathanbeddoewebdev/padron/internal/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
)

func setupConfigView(t *testing.T) configViewModel {
	t.Helper()
	config.SetPath(filepath.Join(t.TempDir(), "config.json"))
	t.Cleanup(config.ResetPath)
	t.Cleanup(func() { styles.Use(styles.Dark) })

	m := newConfigViewModel(&config.Config{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(configViewModel)
}

func configUpdate(t *testing.T, m configViewModel, msg tea.Msg) (configViewModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(configViewModel), cmd
}

// editKey moves the cursor to key, opens the editor and replaces its value.
func editKey(t *testing.T, m configViewModel, key, value string) (configViewModel, tea.Cmd) {
	t.Helper()
	for m.keys[m.cursor].Name != key {
		m, _ = configUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m, _ = configUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m.editor.SetValue(value)
	return configUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestConfigView_SavesValidValue(t *testing.T) {
	m := setupConfigView(t)

	m, cmd := editKey(t, m, "theme", "light")
	if cmd == nil {
		t.Fatal("expected save command")
	}
	m, _ = configUpdate(t, m, cmd())

	if m.isError {
		t.Fatalf("unexpected error status: %s", m.status)
	}
	if m.editing {
		t.Error("expected editor to close after save")
	}
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != "light" {
		t.Errorf("expected theme persisted as light, got %q", cfg.Theme)
	}
	if styles.Current() != styles.Light {
		t.Error("expected saved theme to be applied")
	}
}

func TestConfigView_RejectsInvalidValue(t *testing.T) {
	m := setupConfigView(t)

	m, cmd := editKey(t, m, "delay", "soon")
	if cmd != nil {
		t.Error("expected no save command for invalid value")
	}
	if !m.isError || !strings.Contains(m.status, "invalid value for delay") {
		t.Errorf("expected validation error status, got %q", m.status)
	}
	if m.cfg.Delay != "" {
		t.Errorf("invalid value must not be stored, got %q", m.cfg.Delay)
	}
}

func TestConfigView_EmptyValueResetsToDefault(t *testing.T) {
	m := setupConfigView(t)
	m.cfg.Source = "old.xlsx"

	m, cmd := editKey(t, m, "source", "  ")
	if cmd == nil {
		t.Fatal("expected save command")
	}
	if m.cfg.Source != "" {
		t.Errorf("expected source cleared, got %q", m.cfg.Source)
	}
}
