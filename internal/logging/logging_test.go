package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" Warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if err != nil {
				t.Fatalf("ParseLevel(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseLevel_Invalid(t *testing.T) {
	if _, err := ParseLevel("trace"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestResolveLevel_FlagWinsOverEnv(t *testing.T) {
	t.Setenv(EnvLevel, "error")

	got, err := ResolveLevel("debug")
	if err != nil {
		t.Fatalf("ResolveLevel error: %v", err)
	}
	if got != slog.LevelDebug {
		t.Errorf("expected debug, got %v", got)
	}
}

func TestResolveLevel_FallsBackToEnv(t *testing.T) {
	t.Setenv(EnvLevel, "warn")

	got, err := ResolveLevel("")
	if err != nil {
		t.Fatalf("ResolveLevel error: %v", err)
	}
	if got != slog.LevelWarn {
		t.Errorf("expected warn, got %v", got)
	}
}

func TestForComponent_TagsAndFilters(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() {
		mu.Lock()
		root = prev
		mu.Unlock()
	})

	var out bytes.Buffer
	Setup(&out, slog.LevelInfo)

	log := ForComponent(CompRoster)
	log.Debug("hidden")
	log.Info("roster loaded", "records", 3)

	got := out.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("debug line should be filtered at info level: %q", got)
	}
	if !strings.Contains(got, "component=roster") {
		t.Errorf("expected component attribute, got %q", got)
	}
	if !strings.Contains(got, "records=3") {
		t.Errorf("expected records attribute, got %q", got)
	}
}

func TestBuffer_FlushTo(t *testing.T) {
	var b Buffer
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = b.Write([]byte("line\n"))
		}()
	}
	wg.Wait()

	if b.Len() != 50 {
		t.Fatalf("expected 50 buffered bytes, got %d", b.Len())
	}

	var out bytes.Buffer
	if err := b.FlushTo(&out); err != nil {
		t.Fatalf("FlushTo error: %v", err)
	}
	if strings.Count(out.String(), "line\n") != 10 {
		t.Errorf("expected 10 lines, got %q", out.String())
	}
	if b.Len() != 0 {
		t.Errorf("expected empty buffer after flush, got %d bytes", b.Len())
	}
}
