// Package validation cleans untrusted form input before it is stored.
package validation

import (
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pandeptwidyaop/landing-kit/internal/models"
)

// Maximum stored lengths, in runes.
const (
	MaxNameLength    = 200
	MaxEmailLength   = 254
	MaxCompanyLength = 200
	MaxMessageLength = 5000
)

// SanitizeString trims input and removes control characters.
func SanitizeString(input string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, input))
}

// SanitizeStringPreserveNewlines sanitizes but keeps newlines for multiline fields.
func SanitizeStringPreserveNewlines(input string) string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, input))
}

// Truncate shortens s to at most max runes.
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

// IsEmail reports whether s is a bare address such as name@example.com.
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && addr.Name == ""
}

// ContactFields returns req with every field sanitized and bounded. An
// address that does not parse is dropped rather than rejected, since the
// form accepts any JSON body.
func ContactFields(req models.ContactRequest) models.ContactRequest {
	req.Name = Truncate(SanitizeString(req.Name), MaxNameLength)
	req.Company = Truncate(SanitizeString(req.Company), MaxCompanyLength)
	req.Message = Truncate(SanitizeStringPreserveNewlines(req.Message), MaxMessageLength)

	email := Truncate(SanitizeString(req.Email), MaxEmailLength)
	if !IsEmail(email) {
		email = ""
	}
	req.Email = email
	return req
}
