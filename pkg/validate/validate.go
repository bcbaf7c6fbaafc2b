// Package validate holds pure shape checks for registration input. All
// functions return a bare boolean; callers attach field-level error detail.
package validate

import (
	"strings"
	"unicode"
)

// specials is the allowed special-character set for passwords.
const specials = "@$!%*?&=-"

// Email reports whether s has a local@domain.tld shape: exactly one '@', at
// least one '.' after it, and no whitespace anywhere.
func Email(s string) bool {
	if strings.ContainsFunc(s, unicode.IsSpace) {
		return false
	}
	at := strings.IndexByte(s, '@')
	if at <= 0 || at != strings.LastIndexByte(s, '@') {
		return false
	}
	domain := s[at+1:]
	dot := strings.IndexByte(domain, '.')
	// Dot must separate non-empty labels.
	return dot > 0 && dot < len(domain)-1
}

// Phone reports whether s is an E.164 number: optional leading '+', first
// digit 1-9, and 2 to 15 digits in total.
func Phone(s string) bool {
	s = strings.TrimPrefix(s, "+")
	if len(s) < 2 || len(s) > 15 {
		return false
	}
	if s[0] < '1' || s[0] > '9' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Password reports whether s is at least 8 characters and contains at least
// one lowercase letter, one uppercase letter, one digit, and one special
// character from the allowed set.
func Password(s string) bool {
	if len(s) < 8 {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(specials, r):
			special = true
		}
	}
	return lower && upper && digit && special
}

// Name reports whether s, after trimming, is 2 to 50 characters long.
func Name(s string) bool {
	n := len(strings.TrimSpace(s))
	return n >= 2 && n <= 50
}
