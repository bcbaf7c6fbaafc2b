package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"disha/internal/audit"
	"disha/internal/password"
	"disha/internal/platform/logger"
	"disha/internal/platform/metrics"
	userstore "disha/internal/user/store"
	dErrors "disha/pkg/domain-errors"
	"disha/pkg/platform/sentinel"
	"disha/pkg/requestcontext"
	"disha/pkg/validate"
)

// TokenIssuer is the session-token capability the login flow depends on.
type TokenIssuer interface {
	GenerateToken(userID, email string, expiresIn time.Duration) (string, error)
}

// Service handles email/password login. Registration owns account creation;
// this service only authenticates committed, verified users.
type Service struct {
	users    userstore.Store
	hasher   password.Hasher
	tokens   TokenIssuer
	audit    *audit.Publisher
	metrics  *metrics.Metrics
	logger   *slog.Logger
	tokenTTL time.Duration
}

func NewService(
	users userstore.Store,
	hasher password.Hasher,
	tokens TokenIssuer,
	auditPub *audit.Publisher,
	m *metrics.Metrics,
	log *slog.Logger,
	tokenTTL time.Duration,
) *Service {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &Service{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		audit:    auditPub,
		metrics:  m,
		logger:   log,
		tokenTTL: tokenTTL,
	}
}

// TokenTTL exposes the session lifetime for cookie expiry at the transport.
func (s *Service) TokenTTL() time.Duration {
	return s.tokenTTL
}

// Login authenticates by email and password. Unknown email and wrong
// password yield the same generic error so credentials cannot be probed.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "Email and password are required")
	}
	if !validate.Email(email) {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "Invalid email format")
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "Invalid credentials")
		}
		s.logger.ErrorContext(ctx, "user lookup failed", "error", err)
		return nil, dErrors.Wrap(dErrors.CodeInternal, "Internal server error", err)
	}

	if !u.IsVerified {
		return nil, dErrors.New(dErrors.CodeForbidden, "Please verify your account first")
	}

	if !s.hasher.Compare(req.Password, u.PasswordHash) {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "Invalid credentials")
	}

	token, err := s.tokens.GenerateToken(u.ID, u.Email, s.tokenTTL)
	if err != nil {
		s.logger.ErrorContext(ctx, "token generation failed", "error", err)
		return nil, dErrors.Wrap(dErrors.CodeInternal, "Internal server error", err)
	}

	if s.metrics != nil {
		s.metrics.Logins.Inc()
	}
	s.logger.InfoContext(ctx, "user logged in",
		"user_id", u.ID,
		"email", logger.MaskEmail(u.Email),
		"request_id", requestcontext.RequestID(ctx),
	)
	s.audit.Emit(ctx, audit.Event{
		Action: audit.ActionUserLogin,
		UserID: u.ID,
		Email:  logger.MaskEmail(u.Email),
	})

	return &LoginResult{
		Message: "Login successful",
		User:    u.Summarize(),
		Token:   token,
	}, nil
}
