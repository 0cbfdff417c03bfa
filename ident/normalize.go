package ident

import "strings"

// Normalize canonicalizes a raw identifier string: uppercases it and
// strips every character that is not an ASCII letter or digit, so
// "784-1990-1234567-8" and "78419901234567 8" normalize to the same
// value. Empty input yields "". Idempotent and total.
func Normalize(id string) string {
	if id == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r
		case r >= 'a' && r <= 'z':
			return r - ('a' - 'A')
		default:
			return -1
		}
	}, id)
}
