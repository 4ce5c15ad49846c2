// Package lookup finds a single student in a roster by an exact key.
//
// The key type is a Matcher strategy: NationalID compares digit-only DNI
// values, RecordNumber compares trimmed libreta numbers. Both operate on
// the same domain.Student shape.
package lookup

import (
	"strings"

	"nathanbeddoewebdev/padron/internal/domain"
	"nathanbeddoewebdev/padron/internal/util"
)

// Matcher defines how a raw query and a record are reduced to comparable
// keys, and how the input boundary filters what the user types.
type Matcher interface {
	// Name is the stable identifier ("dni", "libreta").
	Name() string

	// Label is the human-facing key name used in prompts and messages.
	Label() string

	// NormalizeQuery reduces raw user input to a key.
	NormalizeQuery(raw string) string

	// Key reduces a record to the key compared against NormalizeQuery.
	Key(s domain.Student) string

	// Sanitize filters text as it is typed at the input boundary.
	Sanitize(input string) string

	// MaxInput is the input length cap, or 0 for no cap.
	MaxInput() int
}

// Compile-time checks.
var (
	_ Matcher = NationalID{}
	_ Matcher = RecordNumber{}
)

// NationalIDMaxDigits caps DNI entry at the input boundary.
const NationalIDMaxDigits = 8

// NationalID matches on the DNI with every non-digit removed from both
// sides, so "43.323.124" and "43323124" are the same key.
type NationalID struct{}

func (NationalID) Name() string  { return "dni" }
func (NationalID) Label() string { return "DNI" }

func (NationalID) NormalizeQuery(raw string) string {
	return util.DigitsOnly(raw)
}

func (NationalID) Key(s domain.Student) string {
	return util.DigitsOnly(s.NationalID)
}

// Sanitize keeps digits only and truncates to NationalIDMaxDigits.
func (NationalID) Sanitize(input string) string {
	digits := util.DigitsOnly(input)
	if len(digits) > NationalIDMaxDigits {
		digits = digits[:NationalIDMaxDigits]
	}
	return digits
}

func (NationalID) MaxInput() int { return NationalIDMaxDigits }

// RecordNumber matches on the libreta number as text. Only surrounding
// whitespace is ignored; "0123" and "123" are different keys.
type RecordNumber struct{}

func (RecordNumber) Name() string  { return "libreta" }
func (RecordNumber) Label() string { return "Libreta" }

func (RecordNumber) NormalizeQuery(raw string) string {
	return strings.TrimSpace(raw)
}

func (RecordNumber) Key(s domain.Student) string {
	return strings.TrimSpace(s.RecordNumber)
}

// Sanitize keeps digits only.
func (RecordNumber) Sanitize(input string) string {
	return util.DigitsOnly(input)
}

func (RecordNumber) MaxInput() int { return 0 }
