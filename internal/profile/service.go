// Package profile manages student demographics and the derived profile
// completion score.
package profile

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"time"

	userstore "disha/internal/user/store"
	dErrors "disha/pkg/domain-errors"
	"disha/pkg/platform/sentinel"
	"disha/pkg/requestcontext"
)

// Field weights for profile completion. They sum to 100; a profile is
// complete exactly when every weighted field is set.
const (
	weightDOB      = 25
	weightGender   = 20
	weightLocation = 25
	weightClass    = 20
	weightStream   = 10
)

// Store persists profiles keyed by user ID. Implementations live in the
// store subpackage.
type Store interface {
	// Create inserts a profile. Returns sentinel.ErrConflict if one already
	// exists for the user.
	Create(ctx context.Context, p *Profile) error

	// FindByUserID returns the profile for a user, or sentinel.ErrNotFound.
	FindByUserID(ctx context.Context, userID string) (*Profile, error)

	// Update overwrites the stored profile. Returns sentinel.ErrNotFound if
	// no profile exists for the user.
	Update(ctx context.Context, p *Profile) error
}

// Service owns profile reads and writes. Every write recomputes the
// completion score and persists it onto the owning user record.
type Service struct {
	profiles Store
	users    userstore.Store
	logger   *slog.Logger
}

func NewService(profiles Store, users userstore.Store, log *slog.Logger) *Service {
	return &Service{profiles: profiles, users: users, logger: log}
}

// Get returns the profile for a user together with its completion score.
func (s *Service) Get(ctx context.Context, userID string) (*Profile, Completion, error) {
	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, Completion{}, dErrors.New(dErrors.CodeNotFound, "Profile not found")
		}
		return nil, Completion{}, s.internal(ctx, "profile lookup failed", err)
	}
	return p, Completeness(p), nil
}

// Create stores a new profile for the user. A 10th-class student who gives
// no stream gets the "None" sentinel, which does not count toward completion.
func (s *Service) Create(ctx context.Context, userID string, req UpsertRequest) (*Profile, Completion, error) {
	if err := validateFields(ctx, req); err != nil {
		return nil, Completion{}, err
	}

	now := requestcontext.Now(ctx)
	p := &Profile{
		UserID:    userID,
		DOB:       req.DOB,
		Gender:    strings.TrimSpace(req.Gender),
		Location:  strings.TrimSpace(req.Location),
		Class:     strings.TrimSpace(req.Class),
		Stream:    strings.TrimSpace(req.Stream),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if p.Class == ClassTenth && p.Stream == "" {
		p.Stream = StreamNone
	}

	if err := s.profiles.Create(ctx, p); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, Completion{}, dErrors.New(dErrors.CodeConflict, "Profile already exists")
		}
		return nil, Completion{}, s.internal(ctx, "profile create failed", err)
	}

	comp, err := s.persistCompletion(ctx, p)
	if err != nil {
		return nil, Completion{}, err
	}
	s.logger.InfoContext(ctx, "profile created",
		"user_id", userID,
		"completion", comp.Percentage,
		"request_id", requestcontext.RequestID(ctx),
	)
	return p, comp, nil
}

// Update overwrites the fields present in the request and leaves the rest
// untouched.
func (s *Service) Update(ctx context.Context, userID string, req UpsertRequest) (*Profile, Completion, error) {
	if err := validateFields(ctx, req); err != nil {
		return nil, Completion{}, err
	}

	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, Completion{}, dErrors.New(dErrors.CodeNotFound, "Profile not found")
		}
		return nil, Completion{}, s.internal(ctx, "profile lookup failed", err)
	}

	if req.DOB != nil {
		p.DOB = req.DOB
	}
	if v := strings.TrimSpace(req.Gender); v != "" {
		p.Gender = v
	}
	if v := strings.TrimSpace(req.Location); v != "" {
		p.Location = v
	}
	if v := strings.TrimSpace(req.Class); v != "" {
		p.Class = v
	}
	if v := strings.TrimSpace(req.Stream); v != "" {
		p.Stream = v
	}
	if p.Class == ClassTenth && p.Stream == "" {
		p.Stream = StreamNone
	}
	p.UpdatedAt = requestcontext.Now(ctx)

	if err := s.profiles.Update(ctx, p); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, Completion{}, dErrors.New(dErrors.CodeNotFound, "Profile not found")
		}
		return nil, Completion{}, s.internal(ctx, "profile update failed", err)
	}

	comp, err := s.persistCompletion(ctx, p)
	if err != nil {
		return nil, Completion{}, err
	}
	s.logger.InfoContext(ctx, "profile updated",
		"user_id", userID,
		"completion", comp.Percentage,
		"request_id", requestcontext.RequestID(ctx),
	)
	return p, comp, nil
}

// RecalculateCompletion rescores the stored profile and persists the result
// onto the user record. A user without a profile scores zero.
func (s *Service) RecalculateCompletion(ctx context.Context, userID string) (Completion, error) {
	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) {
			return Completion{}, s.internal(ctx, "profile lookup failed", err)
		}
		p = &Profile{UserID: userID}
	}
	return s.persistCompletion(ctx, p)
}

// Completeness scores a profile by field weights. Sentinel values that mean
// "not provided" do not count, and only a fully populated profile reaches
// 100 and is complete.
func Completeness(p *Profile) Completion {
	pct := 0
	if p.DOB != nil && !p.DOB.IsZero() {
		pct += weightDOB
	}
	if p.Gender != "" && p.Gender != GenderUnset {
		pct += weightGender
	}
	if p.Location != "" {
		pct += weightLocation
	}
	if p.Class != "" {
		pct += weightClass
	}
	if p.Stream != "" && p.Stream != StreamNone {
		pct += weightStream
	}
	return Completion{Percentage: pct, IsComplete: pct == 100}
}

func (s *Service) persistCompletion(ctx context.Context, p *Profile) (Completion, error) {
	comp := Completeness(p)
	if err := s.users.SaveCompletion(ctx, p.UserID, comp.Percentage, comp.IsComplete); err != nil {
		return Completion{}, s.internal(ctx, "completion persist failed", err)
	}
	return comp, nil
}

func validateFields(ctx context.Context, req UpsertRequest) error {
	if req.DOB != nil {
		if req.DOB.After(requestcontext.Now(ctx)) {
			return dErrors.New(dErrors.CodeInvalidInput, "Date of birth cannot be in the future")
		}
		if age(*req.DOB, requestcontext.Now(ctx)) > 120 {
			return dErrors.New(dErrors.CodeInvalidInput, "Please provide a valid date of birth")
		}
	}
	if v := strings.TrimSpace(req.Gender); v != "" && !validGenders[v] {
		return dErrors.New(dErrors.CodeInvalidInput, "Invalid gender value")
	}
	if v := strings.TrimSpace(req.Class); v != "" && !validClasses[v] {
		return dErrors.New(dErrors.CodeInvalidInput, "Class must be 10th or 12th")
	}
	if v := strings.TrimSpace(req.Stream); v != "" && !validStreams[v] {
		return dErrors.New(dErrors.CodeInvalidInput, "Invalid stream value")
	}
	if v := strings.TrimSpace(req.Location); len(v) > 100 {
		return dErrors.New(dErrors.CodeInvalidInput, "Location must be at most 100 characters")
	}
	return nil
}

func age(dob, now time.Time) int {
	return int(math.Floor(now.Sub(dob).Hours() / 24 / 365.25))
}

func (s *Service) internal(ctx context.Context, msg string, err error) error {
	s.logger.ErrorContext(ctx, msg, "error", err, "request_id", requestcontext.RequestID(ctx))
	return dErrors.Wrap(dErrors.CodeInternal, "Internal server error", err)
}
