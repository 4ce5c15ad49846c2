package util

import "strings"

// DigitsOnly returns s with every character outside 0-9 removed.
// "43.323.124" becomes "43323124". Applying it twice is the same as once.
func DigitsOnly(s string) string {
	if isAllDigits(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
