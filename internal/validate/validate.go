package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	namePattern  = regexp.MustCompile(`^[A-Za-z0-9\s-]+$`)
	spacePattern = regexp.MustCompile(`\s+`)

	lowerPattern  = regexp.MustCompile(`[a-z]`)
	upperPattern  = regexp.MustCompile(`[A-Z]`)
	digitPattern  = regexp.MustCompile(`\d`)
	symbolPattern = regexp.MustCompile(`[^\w\s]`)
)

// ReportTypes is the fixed set of accepted report categories.
// Matching is exact and case-sensitive.
var ReportTypes = []string{
	"delay",
	"no-show",
	"early departure",
	"route change",
	"overcrowding",
	"missed stop",
	"accessibility issues",
}

// UserTypes is the fixed set of account types.
var UserTypes = []string{"user", "admin"}

// Email normalizes and checks an email value from a decoded JSON body.
// Returns the trimmed, lowercased address and whether it is valid.
func Email(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailPattern.MatchString(s) {
		return "", false
	}
	return s, true
}

// Password checks the password policy: at least 8 characters with one
// lowercase, one uppercase, one digit and one symbol. The value is
// returned unchanged; passwords are never normalized.
func Password(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	if len(s) < 8 {
		return "", false
	}
	if !lowerPattern.MatchString(s) || !upperPattern.MatchString(s) ||
		!digitPattern.MatchString(s) || !symbolPattern.MatchString(s) {
		return "", false
	}
	return s, true
}

// NormalizeName trims, collapses internal whitespace to single spaces
// and title-cases each word. Normalizing an already-normalized string
// is a no-op.
func NormalizeName(s string) string {
	s = spacePattern.ReplaceAllString(strings.TrimSpace(s), " ")
	return strings.Title(strings.ToLower(s))
}

// Name normalizes a route/stop/name value and checks it against the
// allowed character set (letters, digits, spaces, hyphens). Underscores
// and other punctuation are rejected.
func Name(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	s = NormalizeName(s)
	if s == "" || !namePattern.MatchString(s) {
		return "", false
	}
	return s, true
}

// ReportType checks exact membership in ReportTypes.
func ReportType(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	for _, t := range ReportTypes {
		if s == t {
			return s, true
		}
	}
	return "", false
}

// UserType checks exact membership in UserTypes.
func UserType(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	for _, t := range UserTypes {
		if s == t {
			return s, true
		}
	}
	return "", false
}

// Limit parses a page-limit query parameter. Only positive integers
// are accepted.
func Limit(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// NonEmptyString reports whether a decoded JSON value is a non-empty
// string and returns it.
func NonEmptyString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
