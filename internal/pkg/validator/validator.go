package validator

import (
	"slices"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04:05"
)

type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors collects field problems of one request. The handler layer
// renders it as a 422 with one detail per field.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

// ToMap keeps the first message reported for each field.
func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v))
	for _, err := range v {
		if _, ok := result[err.Field]; !ok {
			result[err.Field] = err.Message
		}
	}
	return result
}

func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, ValidationError{Field: field, Message: message})
}

// Err returns nil when nothing was added, so a Validate method can end with
// `return errs.Err()`.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// Required adds "is required" for a blank value and reports whether the
// value was present.
func (v *ValidationErrors) Required(field, value string) bool {
	if IsEmpty(value) {
		v.Add(field, "is required")
		return false
	}
	return true
}

// MaxLength adds a problem when value is longer than max bytes.
func (v *ValidationErrors) MaxLength(field, value string, max int) {
	if len(value) > max {
		v.Add(field, "is too long")
	}
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidDate parses a YYYY-MM-DD calendar date.
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse(DateLayout, dateStr)
	return date, err == nil
}

// IsValidClock parses a time of day in "HH:MM" or "HH:MM:SS" form. The
// returned value carries the clock on the zero date in UTC.
func IsValidClock(clock string) (time.Time, bool) {
	for _, layout := range []string{ClockLayout, "15:04"} {
		if t, err := time.Parse(layout, clock); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func IsInSlice(value string, slice []string) bool {
	return slices.Contains(slice, value)
}
