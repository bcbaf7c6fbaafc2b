package user

import "time"

// User is the durable identity record. Users are created only at successful
// OTP verification, so IsVerified is true from creation.
type User struct {
	ID           string
	FirstName    string
	MiddleName   string
	LastName     string
	Email        string
	PasswordHash string
	Phone        string
	IsVerified   bool

	// Derived cache, recomputed on every profile create/update.
	ProfileCompletionPercentage int
	IsProfileComplete           bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Summary is the caller-facing view of a user. It never carries the password
// hash.
type Summary struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Summarize converts a User into its caller-facing view.
func (u User) Summarize() Summary {
	return Summary{
		ID:        u.ID,
		Email:     u.Email,
		Phone:     u.Phone,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
