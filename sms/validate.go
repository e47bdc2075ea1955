package sms

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minPhoneDigits = 10
	maxPhoneDigits = 15
)

// ValidatePhoneNumber checks that phone holds 10 to 15 digits once every
// non-digit character is removed.
//
// When phone already starts with "+" it is returned unchanged as Cleaned,
// separators included. Otherwise Cleaned is "+" followed by the digits.
func ValidatePhoneNumber(phone string) ValidationResult {
	digits := digitsOnly(phone)

	switch n := utf8.RuneCountInString(digits); {
	case n < minPhoneDigits:
		return ValidationResult{Valid: false, Error: "Phone number too short"}
	case n > maxPhoneDigits:
		return ValidationResult{Valid: false, Error: "Phone number too long"}
	}

	cleaned := "+" + digits
	if strings.HasPrefix(phone, "+") {
		cleaned = phone
	}
	return ValidationResult{Valid: true, Cleaned: cleaned}
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// maskPhone obfuscates the phone number for logging
func maskPhone(phone string) string {
	if len(phone) > 4 {
		return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
	}
	return "****"
}
