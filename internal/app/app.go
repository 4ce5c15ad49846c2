// Package app resolves per-invocation settings from flags and the saved
// config, and wires the roster, lookup and search packages together.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"nathanbeddoewebdev/padron/internal/config"
	"nathanbeddoewebdev/padron/internal/logging"
	"nathanbeddoewebdev/padron/internal/roster"
	"nathanbeddoewebdev/padron/internal/search"
	"nathanbeddoewebdev/padron/internal/services/auth"
	"nathanbeddoewebdev/padron/internal/util"
	"nathanbeddoewebdev/padron/internal/variant"

	"github.com/spf13/cobra"
)

// Flag names shared by every command.
const (
	FlagSource   = "source"
	FlagVariant  = "variant"
	FlagDelay    = "delay"
	FlagLogLevel = "log-level"
)

// AddPersistentFlags registers the shared flags on cmd (normally the root).
func AddPersistentFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String(FlagSource, "", "Workbook path or http(s) URL (overrides config)")
	f.String(FlagVariant, "", "Column layout and lookup key: "+variant.Comisiones.Name+" or "+variant.Libreta.Name)
	f.String(FlagDelay, "", "Artificial latency before a result is shown, e.g. 1s or 0s")
	f.String(FlagLogLevel, "", "Log level: debug, info, warn or error (default from "+logging.EnvLevel+")")
}

// Settings is the resolved configuration for one invocation.
type Settings struct {
	Variant  variant.Variant
	Source   string
	Delay    time.Duration
	Theme    string
	LogLevel slog.Level

	// DelaySet reports whether --delay was given explicitly.
	DelaySet bool
}

// Resolve merges flags over the saved config over built-in defaults.
func Resolve(cmd *cobra.Command) (Settings, error) {
	cfg, err := config.Load()
	if err != nil {
		return Settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	return ResolveWith(cmd, cfg)
}

// ResolveWith is Resolve with an already loaded config.
func ResolveWith(cmd *cobra.Command, cfg *config.Config) (Settings, error) {
	var s Settings

	name := firstNonEmpty(flagValue(cmd, FlagVariant), cfg.Variant, variant.Default)
	v, err := variant.Get(name)
	if err != nil {
		return Settings{}, fmt.Errorf("%w (known: %v)", err, variant.Names())
	}
	s.Variant = v

	s.Source = firstNonEmpty(flagValue(cmd, FlagSource), cfg.Source, v.DefaultSource)
	if err := util.ValidateSource(s.Source); err != nil {
		return Settings{}, err
	}

	if d := flagValue(cmd, FlagDelay); d != "" {
		if err := util.ValidateDelay(d); err != nil {
			return Settings{}, err
		}
		s.Delay, _ = time.ParseDuration(d)
		s.DelaySet = true
	} else {
		s.Delay, err = cfg.DelayOr(search.DefaultDelay)
		if err != nil {
			return Settings{}, err
		}
	}

	s.LogLevel, err = logging.ResolveLevel(flagValue(cmd, FlagLogLevel))
	if err != nil {
		return Settings{}, err
	}

	s.Theme = config.ThemeDark
	if cfg.IsLight() {
		s.Theme = config.ThemeLight
	}
	return s, nil
}

// NewService builds the search service for s. The roster is not loaded
// until the first Load or Search call.
func (s Settings) NewService(store auth.Store, opts ...search.Option) *search.Service {
	src := roster.NewSource(s.Source, auth.TokenFor(store, s.Source))
	loader := roster.NewLoader(src, s.Variant.Columns, logging.ForComponent(logging.CompRoster))

	opts = append([]search.Option{
		search.WithDelay(s.Delay),
		search.WithLogger(logging.ForComponent(logging.CompSearch)),
	}, opts...)
	return search.New(roster.NewSession(loader), s.Variant.Matcher, opts...)
}

func flagValue(cmd *cobra.Command, name string) string {
	f := cmd.Flag(name)
	if f == nil {
		return ""
	}
	return f.Value.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
