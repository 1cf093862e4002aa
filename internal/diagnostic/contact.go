package diagnostic

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether the address has a plausible shape. This is
// intake validation, not RFC compliance.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidWhatsApp accepts Brazilian numbers with 10 digits (landline era)
// or 11 digits (mobile with the extra 9), ignoring formatting.
func ValidWhatsApp(phone string) bool {
	n := len(digitsOnly(phone))
	return n == 10 || n == 11
}

// FormatWhatsApp renders a Brazilian phone number as (DD) XXXXX-XXXX or
// (DD) XXXX-XXXX. Inputs with an unexpected digit count pass through
// unchanged.
func FormatWhatsApp(phone string) string {
	cleaned := digitsOnly(phone)
	switch len(cleaned) {
	case 11:
		return "(" + cleaned[:2] + ") " + cleaned[2:7] + "-" + cleaned[7:]
	case 10:
		return "(" + cleaned[:2] + ") " + cleaned[2:6] + "-" + cleaned[6:]
	default:
		return phone
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
