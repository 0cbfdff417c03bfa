package ident

import (
	"strconv"
	"strings"
	"time"
)

const (
	// emiratesIDLen is the full normalized length of an Emirates ID:
	// 784 + 4-digit birth year + 7-digit sequence + 1 check digit.
	emiratesIDLen = 15

	// emiratesIDPrefix is the UAE country code every Emirates ID
	// starts with.
	emiratesIDPrefix = "784"

	// passportMinLen and passportMaxLen bound the normalized length of
	// passport numbers across issuing countries.
	passportMinLen = 6
	passportMaxLen = 9

	// minBirthYear is the oldest birth year accepted as sane.
	minBirthYear = 1900
)

// timeNow is indirected so tests can pin the current year.
var timeNow = time.Now

// IsEmiratesID reports whether the identifier, once normalized, is a
// structurally valid Emirates ID: exactly 15 characters, "784"
// followed by 12 digits.
func IsEmiratesID(id string) bool {
	n := Normalize(id)
	if len(n) != emiratesIDLen || !strings.HasPrefix(n, emiratesIDPrefix) {
		return false
	}
	for _, r := range n {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsPassportNumber reports whether the identifier plausibly is a
// passport number: normalized length between 6 and 9 inclusive, and
// not already classified as an Emirates ID.
func IsPassportNumber(id string) bool {
	n := Normalize(id)
	if len(n) < passportMinLen || len(n) > passportMaxLen {
		return false
	}
	return !IsEmiratesID(n)
}

// ExtractBirthYear reads the 4-digit birth year embedded in an
// Emirates ID (characters 3 through 6 of the normalized form). The
// second return value is false when the input is not a valid Emirates
// ID or the embedded year falls outside [1900, current year]. Never
// panics.
func ExtractBirthYear(id string) (int, bool) {
	if !IsEmiratesID(id) {
		return 0, false
	}

	n := Normalize(id)
	year, err := strconv.Atoi(n[3:7])
	if err != nil {
		return 0, false
	}
	if year < minBirthYear || year > timeNow().Year() {
		return 0, false
	}
	return year, true
}
