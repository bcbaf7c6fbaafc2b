package registration_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"disha/internal/audit"
	"disha/internal/password"
	"disha/internal/registration"
	registrationstore "disha/internal/registration/store"
	"disha/internal/user"
	userstore "disha/internal/user/store"
	dErrors "disha/pkg/domain-errors"
	"disha/pkg/requestcontext"
)

// capturingSender records deliveries and can be told to fail.
type capturingSender struct {
	mu   sync.Mutex
	sent []sentSMS
	fail error
}

type sentSMS struct {
	to   string
	body string
}

func (c *capturingSender) Send(_ context.Context, to, body string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail != nil {
		return c.fail
	}
	c.sent = append(c.sent, sentSMS{to: to, body: body})
	return nil
}

func (c *capturingSender) last() sentSMS {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sent[len(c.sent)-1]
}

type RegistrationServiceSuite struct {
	suite.Suite

	start   time.Time
	ctx     context.Context
	pending *registrationstore.InMemoryStore
	users   *userstore.InMemoryStore
	sender  *capturingSender
	svc     *registration.Service
}

func TestRegistrationServiceSuite(t *testing.T) {
	suite.Run(t, new(RegistrationServiceSuite))
}

func (s *RegistrationServiceSuite) SetupTest() {
	s.start = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.start)
	s.pending = registrationstore.NewInMemoryStore()
	s.users = userstore.NewInMemoryStore()
	s.sender = &capturingSender{}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.svc = registration.NewService(
		s.pending, s.users, s.sender,
		password.NewBcryptHasher(4),
		audit.NewPublisher(16, log),
		nil, log,
		registration.Config{OTPTTL: 5 * time.Minute, MaxAttempts: 3},
	)
}

// at returns a request context whose clock is offset from the suite start.
func (s *RegistrationServiceSuite) at(offset time.Duration) context.Context {
	return requestcontext.WithTime(context.Background(), s.start.Add(offset))
}

func userFixture(email, phone string) user.User {
	return user.User{
		ID:           "existing-user",
		FirstName:    "Asha",
		LastName:     "Verma",
		Email:        email,
		PasswordHash: "$2a$04$fixture",
		Phone:        phone,
		IsVerified:   true,
	}
}

func validRequest() registration.RegisterRequest {
	return registration.RegisterRequest{
		FirstName:       "Asha",
		LastName:        "Verma",
		Email:           "Asha@Example.com",
		Password:        "Str0ng@Pass",
		ConfirmPassword: "Str0ng@Pass",
		Phone:           "+919876543210",
	}
}

// otpFor reads the stored code so tests can verify with it.
func (s *RegistrationServiceSuite) otpFor(phone string) string {
	rec, err := s.pending.Get(s.ctx, phone)
	s.Require().NoError(err)
	return rec.OTPCode
}

func (s *RegistrationServiceSuite) register() string {
	res, err := s.svc.Register(s.ctx, validRequest())
	s.Require().NoError(err)
	s.Require().Equal(300, res.ExpiresIn)
	return validRequest().Phone
}

func (s *RegistrationServiceSuite) TestRegisterCreatesPendingAndSendsOTP() {
	phone := s.register()

	rec, err := s.pending.Get(s.ctx, phone)
	s.Require().NoError(err)
	s.Len(rec.OTPCode, 6)
	s.Equal(0, rec.Attempts)
	s.Equal(s.start.Add(5*time.Minute), rec.OTPExpiry)
	s.Equal("asha@example.com", rec.Email)

	s.Contains(s.sender.last().body, rec.OTPCode)
	s.Equal(phone, s.sender.last().to)

	// Password is hashed, never stored raw.
	s.NotContains(rec.PasswordHash, "Str0ng@Pass")
}

func (s *RegistrationServiceSuite) TestRegisterValidation() {
	cases := []struct {
		name   string
		mutate func(*registration.RegisterRequest)
	}{
		{"missing first name", func(r *registration.RegisterRequest) { r.FirstName = "" }},
		{"short last name", func(r *registration.RegisterRequest) { r.LastName = "V" }},
		{"bad email", func(r *registration.RegisterRequest) { r.Email = "not-an-email" }},
		{"bad phone", func(r *registration.RegisterRequest) { r.Phone = "0123" }},
		{"weak password", func(r *registration.RegisterRequest) { r.Password, r.ConfirmPassword = "password", "password" }},
		{"password mismatch", func(r *registration.RegisterRequest) { r.ConfirmPassword = "Other1@Pass" }},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			req := validRequest()
			tc.mutate(&req)
			_, err := s.svc.Register(s.ctx, req)
			s.True(dErrors.Is(err, dErrors.CodeInvalidInput))
		})
	}
	s.Zero(s.pending.Len())
}

func (s *RegistrationServiceSuite) TestRegisterRejectsExistingUser() {
	phone := s.register()
	_, err := s.svc.VerifyOTP(s.ctx, registration.VerifyRequest{Phone: phone, OTP: s.otpFor(phone)})
	s.Require().NoError(err)

	_, err = s.svc.Register(s.ctx, validRequest())
	s.True(dErrors.Is(err, dErrors.CodeConflict), "a committed user wins over a fresh intake")
}

func (s *RegistrationServiceSuite) TestRegisterThrottlesDuplicateIntake() {
	s.register()

	_, err := s.svc.Register(s.at(2*time.Minute), validRequest())
	s.Require().True(dErrors.Is(err, dErrors.CodeRateLimited))

	retryAfter, ok := dErrors.MetaOf(err)["retryAfter"].(int)
	s.Require().True(ok)
	s.Positive(retryAfter)
	s.LessOrEqual(retryAfter, 300)
	s.Equal(180, retryAfter)

	// Only one delivery happened.
	s.Len(s.sender.sent, 1)
}

func (s *RegistrationServiceSuite) TestRegisterAllowedAfterExpiry() {
	s.register()

	res, err := s.svc.Register(s.at(301*time.Second), validRequest())
	s.Require().NoError(err)
	s.Equal(300, res.ExpiresIn)
	s.Len(s.sender.sent, 2)
}

func (s *RegistrationServiceSuite) TestDeliveryFailureRollsBackPending() {
	s.sender.fail = errors.New("provider down")

	_, err := s.svc.Register(s.ctx, validRequest())
	s.Require().True(dErrors.Is(err, dErrors.CodeUnavailable))

	// Hard invariant: no pending record outlives a failed delivery.
	s.Zero(s.pending.Len())

	// The phone can immediately register again.
	s.sender.fail = nil
	_, err = s.svc.Register(s.ctx, validRequest())
	s.NoError(err)
}

func (s *RegistrationServiceSuite) TestVerifyCommitsVerifiedUser() {
	phone := s.register()

	res, err := s.svc.VerifyOTP(s.ctx, registration.VerifyRequest{Phone: phone, OTP: s.otpFor(phone)})
	s.Require().NoError(err)
	s.Equal("asha@example.com", res.User.Email)
	s.NotEmpty(res.User.ID)

	// Pending record is consumed.
	s.Zero(s.pending.Len())

	u, err := s.users.FindByEmail(s.ctx, "asha@example.com")
	s.Require().NoError(err)
	s.True(u.IsVerified)
}

func (s *RegistrationServiceSuite) TestVerifyWrongCodeCountsAttempts() {
	phone := s.register()
	wrong := "000000"
	if s.otpFor(phone) == wrong {
		wrong = "000001"
	}

	for _, expectRemaining := range []int{2, 1, 0} {
		_, err := s.svc.VerifyOTP(s.ctx, registration.VerifyRequest{Phone: phone, OTP: wrong})
		s.Require().True(dErrors.Is(err, dErrors.CodeInvalidInput))
		s.Equal(expectRemaining, dErrors.MetaOf(err)["attemptsRemaining"])
	}

	// The third wrong code burns the record, so a fourth submission finds
	// nothing and the student must re-register.
	s.Zero(s.pending.Len(), "record deleted at the attempt ceiling")

	_, err := s.svc.VerifyOTP(s.ctx, registration.VerifyRequest{Phone: phone, OTP: wrong})
	s.True(dErrors.Is(err, dErrors.CodeNotFound), "fourth attempt sees no record")

	// The slot is immediately free for a fresh intake.
	s.register()
}

func (s *RegistrationServiceSuite) TestVerifyExpiredCodeRemovesRecord() {
	phone := s.register()
	otp := s.otpFor(phone)

	_, err := s.svc.VerifyOTP(s.at(301*time.Second), registration.VerifyRequest{Phone: phone, OTP: otp})
	s.True(dErrors.Is(err, dErrors.CodeGone))
	s.Zero(s.pending.Len())
}

func (s *RegistrationServiceSuite) TestVerifyAtExactExpiryStillValid() {
	phone := s.register()
	otp := s.otpFor(phone)

	_, err := s.svc.VerifyOTP(s.at(5*time.Minute), registration.VerifyRequest{Phone: phone, OTP: otp})
	s.NoError(err, "expiry boundary is inclusive")
}

func (s *RegistrationServiceSuite) TestVerifyUnknownPhone() {
	_, err := s.svc.VerifyOTP(s.ctx, registration.VerifyRequest{Phone: "+911111111111", OTP: "123456"})
	s.True(dErrors.Is(err, dErrors.CodeNotFound))
}

func (s *RegistrationServiceSuite) TestVerifyInputValidation() {
	_, err := s.svc.VerifyOTP(s.ctx, registration.VerifyRequest{Phone: "", OTP: "123456"})
	s.True(dErrors.Is(err, dErrors.CodeInvalidInput))

	_, err = s.svc.VerifyOTP(s.ctx, registration.VerifyRequest{Phone: "+919876543210", OTP: "12ab56"})
	s.True(dErrors.Is(err, dErrors.CodeInvalidInput))

	_, err = s.svc.VerifyOTP(s.ctx, registration.VerifyRequest{Phone: "+919876543210", OTP: "12345"})
	s.True(dErrors.Is(err, dErrors.CodeInvalidInput))
}

func (s *RegistrationServiceSuite) TestVerifyDuplicateRaceGuard() {
	phone := s.register()
	otp := s.otpFor(phone)

	// A user with the same email was committed between intake and verify.
	_, err := s.users.Create(s.ctx, userFixture("asha@example.com", "+910000000000"))
	s.Require().NoError(err)

	_, err = s.svc.VerifyOTP(s.ctx, registration.VerifyRequest{Phone: phone, OTP: otp})
	s.True(dErrors.Is(err, dErrors.CodeConflict))
	s.Zero(s.pending.Len(), "stale pending record is cleaned up")
}

func (s *RegistrationServiceSuite) TestVerifyCommitIsAtMostOnce() {
	phone := s.register()
	otp := s.otpFor(phone)

	_, err := s.svc.VerifyOTP(s.ctx, registration.VerifyRequest{Phone: phone, OTP: otp})
	s.Require().NoError(err)

	_, err = s.svc.VerifyOTP(s.ctx, registration.VerifyRequest{Phone: phone, OTP: otp})
	s.True(dErrors.Is(err, dErrors.CodeNotFound), "second verification finds no record")
}
