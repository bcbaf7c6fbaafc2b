package audit

import "time"

// Action names an auditable event.
type Action string

const (
	ActionRegistrationStarted Action = "registration.started"
	ActionOTPDeliveryFailed   Action = "otp.delivery_failed"
	ActionUserCreated         Action = "user.created"
	ActionUserLogin           Action = "user.login"
)

// Event is a structured audit record. Phone and Email are stored masked by
// callers; an event never carries codes, hashes, or tokens.
type Event struct {
	Action    Action    `json:"action"`
	UserID    string    `json:"user_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	ClientIP  string    `json:"client_ip,omitempty"`
	Device    string    `json:"device,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
