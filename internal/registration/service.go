package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"disha/internal/audit"
	"disha/internal/password"
	"disha/internal/platform/logger"
	"disha/internal/platform/metrics"
	"disha/internal/sms"
	"disha/internal/user"
	userstore "disha/internal/user/store"
	dErrors "disha/pkg/domain-errors"
	"disha/pkg/platform/sentinel"
	"disha/pkg/requestcontext"
	"disha/pkg/validate"
)

// PendingStore is the transient pending-registration store, keyed by phone.
// Implementations live in the store subpackage.
//
// Atomicity contract: Create, RecordAttempt, and Remove are each atomic per
// key so concurrent intake and verification requests cannot lose updates.
// Two concurrent verifications serialize on Remove: exactly one caller wins
// the record, the other observes sentinel.ErrNotFound.
type PendingStore interface {
	// Create stores rec if no live record exists for the phone. An expired
	// record is replaced. When a live record exists, Create returns the
	// existing record together with sentinel.ErrConflict so callers can
	// report the remaining validity window.
	Create(ctx context.Context, rec PendingRegistration) (*PendingRegistration, error)

	// Get returns the record for the phone or sentinel.ErrNotFound.
	Get(ctx context.Context, phone string) (*PendingRegistration, error)

	// RecordAttempt atomically increments the attempt counter and returns
	// the updated record, or sentinel.ErrNotFound.
	RecordAttempt(ctx context.Context, phone string) (*PendingRegistration, error)

	// Remove atomically deletes and returns the record, or
	// sentinel.ErrNotFound if another caller already claimed it.
	Remove(ctx context.Context, phone string) (*PendingRegistration, error)

	// Delete removes the record if present. Missing records are not an error.
	Delete(ctx context.Context, phone string) error

	// DeleteExpired removes every record whose expiry has passed and returns
	// the count removed. The sweep task calls this on a fixed interval.
	DeleteExpired(ctx context.Context) (int, error)
}

// Service drives the registration state machine:
//
//	Intake -> AwaitingOTP -> Verified | Expired | Failed | Aborted
//
// Intake validates the request, rejects duplicates and throttled retries,
// stores a pending record, and delivers the OTP. Verification checks the
// submitted code against the pending record and commits a durable user on
// success. The pending store is owned exclusively by this service and the
// sweep task.
type Service struct {
	pending PendingStore
	users   userstore.Store
	sender  sms.Sender
	hasher  password.Hasher
	audit   *audit.Publisher
	metrics *metrics.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer

	otpTTL      time.Duration
	maxAttempts int
}

// Config bounds the OTP window and attempt ceiling.
type Config struct {
	OTPTTL      time.Duration
	MaxAttempts int
}

func NewService(
	pending PendingStore,
	users userstore.Store,
	sender sms.Sender,
	hasher password.Hasher,
	auditPub *audit.Publisher,
	m *metrics.Metrics,
	log *slog.Logger,
	cfg Config,
) *Service {
	if cfg.OTPTTL <= 0 {
		cfg.OTPTTL = 5 * time.Minute
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	return &Service{
		pending:     pending,
		users:       users,
		sender:      sender,
		hasher:      hasher,
		audit:       auditPub,
		metrics:     m,
		logger:      log,
		tracer:      otel.Tracer("disha/registration"),
		otpTTL:      cfg.OTPTTL,
		maxAttempts: cfg.MaxAttempts,
	}
}

// Register runs registration intake. On success an OTP has been delivered and
// exactly one pending record exists for the phone, expiring after the OTP
// window. A delivery failure rolls the pending record back: no record may
// outlive a failed delivery attempt.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	ctx, span := s.tracer.Start(ctx, "registration.Register")
	defer span.End()

	norm, err := validateIntake(req)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.FindByEmailOrPhone(ctx, norm.Email, norm.Phone); err == nil {
		return nil, dErrors.New(dErrors.CodeConflict, "User already exists with this email or phone")
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, s.internal(ctx, "duplicate user lookup failed", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, s.internal(ctx, "password hashing failed", err)
	}

	code, err := generateOTP()
	if err != nil {
		return nil, s.internal(ctx, "otp generation failed", err)
	}

	now := requestcontext.Now(ctx)
	rec := PendingRegistration{
		FirstName:    norm.FirstName,
		MiddleName:   norm.MiddleName,
		LastName:     norm.LastName,
		Email:        norm.Email,
		PasswordHash: hash,
		Phone:        norm.Phone,
		OTPCode:      code,
		OTPExpiry:    now.Add(s.otpTTL),
		Attempts:     0,
	}

	if existing, err := s.pending.Create(ctx, rec); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			retryAfter := int(math.Ceil(existing.OTPExpiry.Sub(now).Seconds()))
			return nil, dErrors.New(dErrors.CodeRateLimited,
				"OTP already sent. Please wait before requesting a new one.").
				WithMeta("retryAfter", retryAfter)
		}
		return nil, s.internal(ctx, "pending registration create failed", err)
	}

	body := fmt.Sprintf("Your verification code is: %s. Valid for %d minutes.", code, int(s.otpTTL.Minutes()))
	if err := s.sender.Send(ctx, norm.Phone, body); err != nil {
		// Hard invariant: the pending record must not outlive a failed
		// delivery attempt.
		if delErr := s.pending.Delete(ctx, norm.Phone); delErr != nil {
			s.logger.ErrorContext(ctx, "pending rollback failed after delivery failure",
				"phone", logger.MaskPhone(norm.Phone), "error", delErr)
		}
		if s.metrics != nil {
			s.metrics.OTPDeliveryFailures.Inc()
		}
		s.logger.ErrorContext(ctx, "sms delivery failed",
			"phone", logger.MaskPhone(norm.Phone), "error", err)
		s.audit.Emit(ctx, audit.Event{
			Action: audit.ActionOTPDeliveryFailed,
			Phone:  logger.MaskPhone(norm.Phone),
		})
		return nil, dErrors.New(dErrors.CodeUnavailable, "Failed to send verification code. Please try again.")
	}

	if s.metrics != nil {
		s.metrics.RegistrationsStarted.Inc()
	}
	s.logger.InfoContext(ctx, "otp sent",
		"phone", logger.MaskPhone(norm.Phone),
		"request_id", requestcontext.RequestID(ctx),
	)
	s.audit.Emit(ctx, audit.Event{
		Action: audit.ActionRegistrationStarted,
		Phone:  logger.MaskPhone(norm.Phone),
		Email:  logger.MaskEmail(norm.Email),
	})

	return &RegisterResult{
		Message:   "Verification code sent successfully",
		ExpiresIn: int(s.otpTTL.Seconds()),
	}, nil
}

// VerifyOTP checks a submitted code against the pending record and, on
// success, commits a verified durable user. At most one verification per
// phone can commit: the committing request claims the record atomically, and
// any concurrent loser observes NotFound.
func (s *Service) VerifyOTP(ctx context.Context, req VerifyRequest) (*VerifyResult, error) {
	ctx, span := s.tracer.Start(ctx, "registration.VerifyOTP")
	defer span.End()

	phone := strings.TrimSpace(req.Phone)
	code := strings.TrimSpace(req.OTP)
	if phone == "" || code == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "Phone and OTP are required")
	}
	if !validate.Phone(phone) {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "Invalid phone number format")
	}
	if !isSixDigits(code) {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "OTP must be 6 digits")
	}

	rec, err := s.pending.Get(ctx, phone)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.failVerify("not_found")
			return nil, dErrors.New(dErrors.CodeNotFound, "No pending registration found for this phone number")
		}
		return nil, s.internal(ctx, "pending registration lookup failed", err)
	}

	now := requestcontext.Now(ctx)
	if rec.Expired(now) {
		_ = s.pending.Delete(ctx, phone)
		s.failVerify("expired")
		return nil, dErrors.New(dErrors.CodeGone, "OTP has expired. Please register again.")
	}

	if rec.Attempts >= s.maxAttempts {
		_ = s.pending.Delete(ctx, phone)
		s.failVerify("too_many_attempts")
		return nil, dErrors.New(dErrors.CodeRateLimited, "Too many failed attempts. Please register again.")
	}

	if rec.OTPCode != code {
		updated, err := s.pending.RecordAttempt(ctx, phone)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				s.failVerify("not_found")
				return nil, dErrors.New(dErrors.CodeNotFound, "No pending registration found for this phone number")
			}
			return nil, s.internal(ctx, "otp attempt accounting failed", err)
		}
		remaining := s.maxAttempts - updated.Attempts
		if remaining < 0 {
			remaining = 0
		}
		if updated.Attempts >= s.maxAttempts {
			// Exhausting the attempt ceiling burns the record: the next
			// submission observes NotFound and must re-register.
			_ = s.pending.Delete(ctx, phone)
		}
		s.failVerify("invalid_code")
		return nil, dErrors.New(dErrors.CodeInvalidInput, "Invalid OTP").
			WithMeta("attemptsRemaining", remaining)
	}

	// Race guard: a user may have been committed for this email or phone
	// since intake.
	if _, err := s.users.FindByEmailOrPhone(ctx, rec.Email, rec.Phone); err == nil {
		_ = s.pending.Delete(ctx, phone)
		s.failVerify("duplicate")
		return nil, dErrors.New(dErrors.CodeConflict, "User already exists")
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, s.internal(ctx, "duplicate user lookup failed", err)
	}

	// Claim the record. A concurrent verification that lost this race sees
	// NotFound, which keeps the commit at-most-once.
	claimed, err := s.pending.Remove(ctx, phone)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.failVerify("not_found")
			return nil, dErrors.New(dErrors.CodeNotFound, "No pending registration found for this phone number")
		}
		return nil, s.internal(ctx, "pending registration claim failed", err)
	}

	created, err := s.users.Create(ctx, user.User{
		ID:           uuid.NewString(),
		FirstName:    claimed.FirstName,
		MiddleName:   claimed.MiddleName,
		LastName:     claimed.LastName,
		Email:        claimed.Email,
		PasswordHash: claimed.PasswordHash,
		Phone:        claimed.Phone,
		IsVerified:   true,
	})
	if err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			s.failVerify("duplicate")
			return nil, dErrors.New(dErrors.CodeConflict, "User already exists")
		}
		return nil, s.internal(ctx, "user commit failed", err)
	}

	if s.metrics != nil {
		s.metrics.UsersCreated.Inc()
	}
	s.logger.InfoContext(ctx, "user registered",
		"user_id", created.ID,
		"email", logger.MaskEmail(created.Email),
		"request_id", requestcontext.RequestID(ctx),
	)
	s.audit.Emit(ctx, audit.Event{
		Action: audit.ActionUserCreated,
		UserID: created.ID,
		Email:  logger.MaskEmail(created.Email),
		Phone:  logger.MaskPhone(created.Phone),
	})

	return &VerifyResult{
		Message: "User registered successfully",
		User:    created.Summarize(),
	}, nil
}

// normalized holds trimmed, canonicalized intake fields.
type normalized struct {
	FirstName  string
	MiddleName string
	LastName   string
	Email      string
	Phone      string
}

func validateIntake(req RegisterRequest) (*normalized, error) {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" ||
		req.Password == "" || req.ConfirmPassword == "" || req.Phone == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "All required fields must be provided")
	}
	if !validate.Name(req.FirstName) {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "First name must be 2-50 characters long")
	}
	if !validate.Name(req.LastName) {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "Last name must be 2-50 characters long")
	}
	if req.MiddleName != "" && !validate.Name(req.MiddleName) {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "Middle name must be 2-50 characters long")
	}
	if !validate.Email(req.Email) {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "Please provide a valid email address")
	}
	if !validate.Phone(strings.TrimSpace(req.Phone)) {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "Please provide a valid phone number")
	}
	if !validate.Password(req.Password) {
		return nil, dErrors.New(dErrors.CodeInvalidInput,
			"Password must be at least 8 characters with uppercase, lowercase, number and special character")
	}
	if req.Password != req.ConfirmPassword {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "Passwords do not match")
	}
	return &normalized{
		FirstName:  strings.TrimSpace(req.FirstName),
		MiddleName: strings.TrimSpace(req.MiddleName),
		LastName:   strings.TrimSpace(req.LastName),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:      strings.TrimSpace(req.Phone),
	}, nil
}

func isSixDigits(s string) bool {
	if len(s) != otpLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (s *Service) failVerify(reason string) {
	if s.metrics != nil {
		s.metrics.IncOTPVerifyFailure(reason)
	}
}

func (s *Service) internal(ctx context.Context, msg string, err error) error {
	s.logger.ErrorContext(ctx, msg, "error", err, "request_id", requestcontext.RequestID(ctx))
	return dErrors.Wrap(dErrors.CodeInternal, "Internal server error", err)
}
