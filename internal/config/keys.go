package config

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/padron/internal/util"
	"nathanbeddoewebdev/padron/internal/variant"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "source").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string)

	// Validate rejects values that Set must not store.
	Validate func(value string) error
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "source",
		Description: "Workbook path or http(s) URL used when --source is not specified",
		Get:         func(cfg *Config) string { return cfg.Source },
		Set:         func(cfg *Config, v string) { cfg.Source = strings.TrimSpace(v) },
		Validate:    util.ValidateSource,
	},
	{
		Name:        "variant",
		Description: "Column layout and lookup key (" + strings.Join(variantNames(), ", ") + ")",
		Get:         func(cfg *Config) string { return cfg.Variant },
		Set:         func(cfg *Config, v string) { cfg.Variant = util.NormalizeKey(v) },
		Validate: func(v string) error {
			_, err := variant.Get(v)
			return err
		},
	},
	{
		Name:        "delay",
		Description: "Artificial latency before a search result is shown (e.g. 1s, 0s)",
		Get:         func(cfg *Config) string { return cfg.Delay },
		Set:         func(cfg *Config, v string) { cfg.Delay = strings.TrimSpace(v) },
		Validate:    util.ValidateDelay,
	},
	{
		Name:        "theme",
		Description: "Color theme of the interactive search (dark or light)",
		Get:         func(cfg *Config) string { return cfg.Theme },
		Set:         func(cfg *Config, v string) { cfg.Theme = util.NormalizeKey(v) },
		Validate:    util.ValidateTheme,
	},
}

// variantNames lists the built-in variants. Keys is initialised before any
// registration happens, so the registry cannot be consulted here.
func variantNames() []string {
	return []string{variant.Comisiones.Name, variant.Libreta.Name}
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := util.NormalizeKey(name)
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// Apply validates value and stores it in cfg.
func (k *KeySpec) Apply(cfg *Config, value string) error {
	if k.Validate != nil {
		if err := k.Validate(value); err != nil {
			return fmt.Errorf("invalid value for %s: %w", k.Name, err)
		}
	}
	k.Set(cfg, value)
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	// Find the longest key name for alignment.
	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
