package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"disha/internal/auth"
	"disha/internal/platform/middleware"
	"disha/internal/registration"
	"disha/internal/transport/http/shared"
	"disha/internal/user"
	dErrors "disha/pkg/domain-errors"
	"disha/pkg/requestcontext"
)

// RegistrationService drives phone-OTP registration.
type RegistrationService interface {
	Register(ctx context.Context, req registration.RegisterRequest) (*registration.RegisterResult, error)
	VerifyOTP(ctx context.Context, req registration.VerifyRequest) (*registration.VerifyResult, error)
}

// LoginService authenticates existing users.
type LoginService interface {
	Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResult, error)
	TokenTTL() time.Duration
}

// AuthHandler serves registration, login and signout.
type AuthHandler struct {
	logger       *slog.Logger
	registration RegistrationService
	login        LoginService
}

func NewAuthHandler(reg RegistrationService, login LoginService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{logger: logger, registration: reg, login: login}
}

// Register mounts the auth routes.
func (h *AuthHandler) Register(r chi.Router) {
	r.Post("/auth/register", h.handleRegister)
	r.Post("/auth/verify-otp", h.handleVerifyOTP)
	r.Post("/auth/login", h.handleLogin)
	r.Post("/auth/signout", h.handleSignout)
}

type registerResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ExpiresIn int    `json:"expiresIn"`
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registration.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.warnBadBody(ctx, "register", err)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid request body"))
		return
	}

	res, err := h.registration.Register(ctx, req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, registerResponse{
		Success:   true,
		Message:   res.Message,
		ExpiresIn: res.ExpiresIn,
	})
}

type verifyResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    user.Summary `json:"user"`
}

func (h *AuthHandler) handleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registration.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.warnBadBody(ctx, "verify-otp", err)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid request body"))
		return
	}

	res, err := h.registration.VerifyOTP(ctx, req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, verifyResponse{
		Success: true,
		Message: res.Message,
		User:    res.User,
	})
}

type loginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    user.Summary `json:"user"`
	Token   string       `json:"token"`
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.warnBadBody(ctx, "login", err)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid request body"))
		return
	}

	res, err := h.login.Login(ctx, req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    res.Token,
		Path:     "/",
		Expires:  requestcontext.Now(ctx).Add(h.login.TokenTTL()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	shared.WriteJSON(w, http.StatusOK, loginResponse{
		Success: true,
		Message: res.Message,
		User:    res.User,
		Token:   res.Token,
	})
}

func (h *AuthHandler) handleSignout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Signed out successfully",
	})
}

func (h *AuthHandler) warnBadBody(ctx context.Context, op string, err error) {
	h.logger.WarnContext(ctx, "invalid request body",
		"op", op,
		"error", err.Error(),
		"request_id", requestcontext.RequestID(ctx),
	)
}
