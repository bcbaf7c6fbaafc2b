package registration

import (
	"time"

	"disha/internal/user"
)

// PendingRegistration is the transient record awaiting OTP proof, keyed by
// phone number. Exactly one live record exists per phone at a time.
type PendingRegistration struct {
	FirstName    string
	MiddleName   string
	LastName     string
	Email        string
	PasswordHash string
	Phone        string
	OTPCode      string
	OTPExpiry    time.Time
	Attempts     int
}

// Expired reports whether the record's validity window has passed at now.
func (p PendingRegistration) Expired(now time.Time) bool {
	return now.After(p.OTPExpiry)
}

// RegisterRequest is the registration intake payload.
type RegisterRequest struct {
	FirstName       string `json:"firstName"`
	MiddleName      string `json:"middleName,omitempty"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Phone           string `json:"phone"`
}

// RegisterResult reports a successful intake: the OTP was delivered and a
// pending record awaits verification.
type RegisterResult struct {
	Message   string `json:"message"`
	ExpiresIn int    `json:"expiresIn"`
}

// VerifyRequest carries a phone number and the submitted 6-digit code.
type VerifyRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

// VerifyResult reports a committed user after successful verification.
type VerifyResult struct {
	Message string       `json:"message"`
	User    user.Summary `json:"user"`
}
