package util

import (
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// schemePrefix matches a URL scheme such as "https://".
var schemePrefix = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*://`)

// MaxDelay bounds the configurable search latency.
const MaxDelay = time.Minute

// ValidateSource checks a workbook location. It accepts:
//   - an http or https URL with a host
//   - a local path ending in .xlsx (any case)
func ValidateSource(source string) error {
	source = strings.TrimSpace(source)
	if source == "" {
		return fmt.Errorf("source must not be empty")
	}

	if schemePrefix.MatchString(source) {
		u, err := url.Parse(source)
		if err != nil {
			return fmt.Errorf("source %q is not a valid URL: %w", source, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("source URL scheme must be http or https, got %q", u.Scheme)
		}
		if u.Host == "" {
			return fmt.Errorf("source URL %q has no host", source)
		}
		return nil
	}

	if !strings.EqualFold(filepath.Ext(source), ".xlsx") {
		return fmt.Errorf("source %q must be an .xlsx file", source)
	}
	return nil
}

// ValidateDelay checks a Go duration string between 0 and MaxDelay.
func ValidateDelay(value string) error {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("delay %q is not a duration (e.g. 500ms, 1s)", value)
	}
	if d < 0 {
		return fmt.Errorf("delay must not be negative, got %s", d)
	}
	if d > MaxDelay {
		return fmt.Errorf("delay must be at most %s, got %s", MaxDelay, d)
	}
	return nil
}

// ValidateTheme accepts "dark" or "light", case-insensitively.
func ValidateTheme(value string) error {
	switch NormalizeKey(value) {
	case "dark", "light":
		return nil
	default:
		return fmt.Errorf("theme must be dark or light, got %q", value)
	}
}
