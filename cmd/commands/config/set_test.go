package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/padron/internal/config"
	"nathanbeddoewebdev/padron/internal/variant"
)

// setupTestConfig points the config package at a temp file and registers
// the built-in variants.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	config.SetPath(path)
	t.Cleanup(config.ResetPath)

	variant.Reset()
	variant.RegisterBuiltins()
	t.Cleanup(variant.Reset)
	return path
}

// execConfig creates the config command, wires up output buffers, runs with the
// given args, and returns what was written to stdout and stderr.
func execConfig(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestSet_Variant(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "variant", "LIBRETA")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"libreta"`) {
		t.Errorf("expected confirmation with normalized variant, got: %s", stdout)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Variant != "libreta" {
		t.Errorf("expected Variant %q, got %q", "libreta", cfg.Variant)
	}
}

func TestSet_Variant_Unknown(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "variant", "nonexistent")

	if !strings.Contains(stderr, "unknown variant") {
		t.Errorf("expected 'unknown variant' error, got: %s", stderr)
	}
	cfg, _ := config.Load()
	if cfg.Variant != "" {
		t.Errorf("rejected value must not be saved, got %q", cfg.Variant)
	}
}

func TestSet_SourceKeepsCase(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "source", "Comisiones con Horarios.xlsx")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"Comisiones con Horarios.xlsx"`) {
		t.Errorf("expected source echoed verbatim, got: %s", stdout)
	}
}

func TestSet_InvalidDelay(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "delay", "eventually")

	if !strings.Contains(stderr, "invalid value for delay") {
		t.Errorf("expected delay validation error, got: %s", stderr)
	}
}

func TestSet_EmptyResetsToDefault(t *testing.T) {
	path := setupTestConfig(t)
	if err := (&config.Config{Theme: "light"}).SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, _ := execConfig(t, "set", "theme", "")

	if !strings.Contains(stdout, "theme reset to default") {
		t.Errorf("expected reset confirmation, got: %s", stdout)
	}
	cfg, _ := config.Load()
	if cfg.Theme != "" {
		t.Errorf("expected theme cleared, got %q", cfg.Theme)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "bogus-key", "value")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}
