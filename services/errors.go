// services/errors.go - Service error taxonomy
package services

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNoActiveCycle is returned when a team has no active cycle to
	// record against. Should not arise under the lifecycle invariant, but
	// recording defends against it regardless.
	ErrNoActiveCycle = errors.New("no active cycle for team")

	// ErrCycleNotActive is returned by CompleteCycle when the cycle does
	// not exist or is already completed.
	ErrCycleNotActive = errors.New("cycle not found or not active")

	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationErrors maps field names to messages. It is always recoverable:
// handlers surface it to the caller for re-display, never as a 5xx.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// AsValidationErrors unwraps err into a ValidationErrors map, if it is one.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
