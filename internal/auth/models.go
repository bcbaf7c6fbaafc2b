package auth

import "disha/internal/user"

// LoginRequest carries credentials for an email/password login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult carries the session token and the user view on success.
type LoginResult struct {
	Message string       `json:"message"`
	User    user.Summary `json:"user"`
	Token   string       `json:"token"`
}
