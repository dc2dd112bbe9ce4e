// utils/validation.go - Field validation helpers
package utils

import (
	"regexp"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var (
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	teamCodeRe = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)
)

// Required reports whether the value is non-empty after trimming.
func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// ValidScore reports whether the score is inside the 0-10 range.
func ValidScore(score int) bool {
	return score >= 0 && score <= 10
}

// ValidEmail reports whether the value looks like an email address.
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// NormalizeTeamCode uppercases and trims a team join code.
func NormalizeTeamCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidTeamCode reports whether the (normalized) code is 3-20 alphanumerics.
func ValidTeamCode(code string) bool {
	return teamCodeRe.MatchString(code)
}
