package prompt

import (
	"errors"
	"regexp"
	"strings"
)

// emailRe matches a simple local@domain.tld shape; no attempt at full
// RFC 5322 parsing, git itself accepts anything here.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateNotEmpty returns an error if the string is empty or whitespace-only.
func ValidateNotEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("value cannot be empty")
	}
	return nil
}

// ValidateEmail returns an error unless the string looks like an email
// address. Surrounding whitespace is ignored, matching what gets stored.
func ValidateEmail(s string) error {
	if !emailRe.MatchString(strings.TrimSpace(s)) {
		return errors.New("must be a valid email address")
	}
	return nil
}
