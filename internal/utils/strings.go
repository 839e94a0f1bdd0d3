package utils

import (
	"regexp"
	"strings"
)

// TrimOrEmpty trims surrounding whitespace from form input.
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

var (
	emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phoneRe = regexp.MustCompile(`^[6-9]\d{9}$`)
)

// IsEmail applies the storefront's basic email pattern.
func IsEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// IsPhone accepts a 10-digit Indian mobile number.
func IsPhone(s string) bool {
	return phoneRe.MatchString(strings.TrimSpace(s))
}
