package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"simple address", "user@example.com", true},
		{"subdomain", "user@mail.example.co.in", true},
		{"plus tag", "user+tag@example.com", true},
		{"missing at", "userexample.com", false},
		{"two ats", "user@@example.com", false},
		{"no dot after at", "user@example", false},
		{"dot before at only", "user.name@example", false},
		{"empty local part", "@example.com", false},
		{"dot immediately after at", "user@.com", false},
		{"trailing dot", "user@example.", false},
		{"embedded space", "us er@example.com", false},
		{"empty string", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Email(tt.email))
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{"e164 with plus", "+919876543210", true},
		{"without plus", "919876543210", true},
		{"minimum two digits", "91", true},
		{"maximum fifteen digits", "123456789012345", true},
		{"sixteen digits", "1234567890123456", false},
		{"single digit", "9", false},
		{"leading zero", "0987654321", false},
		{"letters", "+91abc543210", false},
		{"embedded space", "+91 9876543210", false},
		{"plus only", "+", false},
		{"empty string", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Phone(tt.phone))
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"all classes", "Str0ng@pass", true},
		{"hyphen as special", "Str0ng-pass", true},
		{"equals as special", "Str0ng=pass", true},
		{"too short", "S0r@ngp", false},
		{"no uppercase", "str0ng@pass", false},
		{"no lowercase", "STR0NG@PASS", false},
		{"no digit", "Strong@pass", false},
		{"no special", "Str0ngpass", false},
		{"special outside allowed set", "Str0ng#pass", false},
		{"empty string", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Password(tt.password))
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"short name", "Al", true},
		{"typical name", "Priya", true},
		{"surrounded by spaces", "  Priya  ", true},
		{"single char", "A", false},
		{"only spaces", "   ", false},
		{"fifty chars", "abcdefghijabcdefghijabcdefghijabcdefghijabcdefghij", true},
		{"fifty one chars", "abcdefghijabcdefghijabcdefghijabcdefghijabcdefghijk", false},
		{"empty string", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(tt.input))
		})
	}
}
