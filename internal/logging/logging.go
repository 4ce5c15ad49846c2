// Package logging configures the process-wide slog logger.
//
// Commands call Setup once, early, and then take per-component loggers
// with ForComponent. While a full-screen TUI owns the terminal, output is
// routed into a Buffer and written out after the program exits.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// EnvLevel is read when no level flag is given.
const EnvLevel = "LOG_LEVEL"

// Component names used with ForComponent.
const (
	CompCLI    = "cli"
	CompRoster = "roster"
	CompSearch = "search"
	CompTUI    = "tui"
)

var (
	mu   sync.RWMutex
	root = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
)

// ParseLevel maps debug, info, warn (or warning) and error to a slog
// level. Matching is case-insensitive; the empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q (must be debug, info, warn or error)", s)
	}
}

// ResolveLevel picks the flag value when set, otherwise LOG_LEVEL.
func ResolveLevel(flag string) (slog.Level, error) {
	if strings.TrimSpace(flag) != "" {
		return ParseLevel(flag)
	}
	return ParseLevel(os.Getenv(EnvLevel))
}

// Setup replaces the root logger with a text handler writing to w.
func Setup(w io.Writer, level slog.Level) *slog.Logger {
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))

	mu.Lock()
	root = l
	mu.Unlock()
	return l
}

// Logger returns the root logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root
}

// ForComponent returns a child of the current root logger tagged with
// component=name. Loggers taken before a later Setup keep the old output.
func ForComponent(name string) *slog.Logger {
	return Logger().With("component", name)
}

// Buffer collects log output in memory. It is safe for concurrent use.
type Buffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// Len reports the number of buffered bytes.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Len()
}

// FlushTo writes everything buffered so far to w and empties the buffer.
func (b *Buffer) FlushTo(w io.Writer) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.buf.Len() == 0 {
		return nil
	}
	_, err := b.buf.WriteTo(w)
	return err
}
