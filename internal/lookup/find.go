package lookup

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/padron/internal/domain"
	"nathanbeddoewebdev/padron/internal/roster"
)

// NotFoundError reports a well-formed query that matched no record.
// It carries the query exactly as the user typed it.
type NotFoundError struct {
	Label string
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no student found with %s %s", e.Label, e.Query)
}

func (e *NotFoundError) Unwrap() error {
	return domain.ErrNotFound
}

// Find scans r in load order and returns the first record whose key equals
// the normalized query.
//
// If the roster holds duplicate keys, the earliest row wins and the rest
// are not reported. A query that is empty after trimming returns
// domain.ErrEmptyQuery. Any other query that matches nothing, including
// one that normalizes to an empty key, returns a *NotFoundError.
// Find does not modify r.
func Find(r *roster.Roster, m Matcher, raw string) (domain.Student, error) {
	if strings.TrimSpace(raw) == "" {
		return domain.Student{}, domain.ErrEmptyQuery
	}

	key := m.NormalizeQuery(raw)
	if key != "" {
		for _, s := range r.All() {
			if m.Key(s) == key {
				return s, nil
			}
		}
	}

	return domain.Student{}, &NotFoundError{Label: m.Label(), Query: raw}
}
