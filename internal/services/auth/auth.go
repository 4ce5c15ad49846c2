// Package auth stores bearer tokens for protected roster sources.
//
// Tokens are keyed by the source host, so one login covers every
// workbook served from the same host.
package auth

import (
	"errors"
	"net/url"

	"nathanbeddoewebdev/padron/internal/util"
)

const ServiceName = "padron"

var ErrTokenNotFound = errors.New("auth token not found")

type Store interface {
	SetToken(host string, token string) error
	GetToken(host string) (string, error)
	DeleteToken(host string) error
}

// DefaultStore returns the standard auth store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// NormalizeHost normalizes a host name for consistent key lookup.
func NormalizeHost(host string) string {
	return util.NormalizeKey(host)
}

// HostOf returns the host of an http(s) source location, or "" for a
// local path.
func HostOf(location string) string {
	u, err := url.Parse(location)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}
	return NormalizeHost(u.Host)
}

// TokenFor returns the stored token for location's host. Local paths,
// hosts without a token and keychain failures all yield "".
func TokenFor(store Store, location string) string {
	host := HostOf(location)
	if host == "" || store == nil {
		return ""
	}
	token, err := store.GetToken(host)
	if err != nil {
		return ""
	}
	return token
}
