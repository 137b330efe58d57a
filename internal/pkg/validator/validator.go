package validator

import (
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

var yearRegex = regexp.MustCompile(`^[0-9]{4}$`)

// IsValidYear accepts a 4-digit year string.
func IsValidYear(year string) bool {
	return yearRegex.MatchString(year)
}

var monthRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])$`)

// IsValidMonth accepts the "ALL" sentinel or a zero-padded month 01-12.
func IsValidMonth(month string) bool {
	return month == "ALL" || monthRegex.MatchString(month)
}
