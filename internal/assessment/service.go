// Package assessment scores the career-guidance quiz and serves its static
// question catalog.
package assessment

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"disha/internal/platform/metrics"
	"disha/internal/profile"
	dErrors "disha/pkg/domain-errors"
	"disha/pkg/platform/sentinel"
	"disha/pkg/requestcontext"
)

// ResultStore persists assessment results. Implementations live in the store
// subpackage.
type ResultStore interface {
	// Save inserts a result.
	Save(ctx context.Context, r *Result) error

	// LatestByUserID returns the most recent result for a user, or
	// sentinel.ErrNotFound.
	LatestByUserID(ctx context.Context, userID string) (*Result, error)

	// CountByUserID returns how many assessments the user has taken.
	CountByUserID(ctx context.Context, userID string) (int, error)
}

// Service gates the quiz to 10th-class students and persists scored results.
type Service struct {
	results  ResultStore
	profiles profile.Store
	metrics  *metrics.Metrics
	logger   *slog.Logger

	maxPointsPerQuestion int
}

func NewService(results ResultStore, profiles profile.Store, m *metrics.Metrics, log *slog.Logger, maxPointsPerQuestion int) *Service {
	if maxPointsPerQuestion <= 0 {
		maxPointsPerQuestion = DefaultMaxPointsPerQuestion
	}
	return &Service{
		results:              results,
		profiles:             profiles,
		metrics:              m,
		logger:               log,
		maxPointsPerQuestion: maxPointsPerQuestion,
	}
}

// Questions returns the quiz for an eligible student.
func (s *Service) Questions(ctx context.Context, userID string) ([]Question, error) {
	if err := s.gate(ctx, userID); err != nil {
		return nil, err
	}
	return questions, nil
}

// QuestionByID returns a single quiz item.
func (s *Service) QuestionByID(ctx context.Context, userID string, id int) (*Question, error) {
	if err := s.gate(ctx, userID); err != nil {
		return nil, err
	}
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i], nil
		}
	}
	return nil, dErrors.New(dErrors.CodeNotFound, "Question not found")
}

// CareerPaths returns the static path catalog in canonical order.
func (s *Service) CareerPaths(ctx context.Context) ([]PathDetails, error) {
	out := make([]PathDetails, 0, len(careerPaths))
	for _, path := range careerPaths {
		out = append(out, pathDetails[path])
	}
	return out, nil
}

// Stats summarizes the catalog.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	perPath := make(map[string]int, len(careerPaths))
	for _, path := range careerPaths {
		perPath[path] = len(scoringMatrix[path])
	}
	return &Stats{
		TotalQuestions: len(questions),
		TotalPaths:     len(careerPaths),
		OptionsPerPath: perPath,
	}, nil
}

// Assess scores the submitted answers and persists the result.
func (s *Service) Assess(ctx context.Context, userID string, responses []Response) (*AssessResult, error) {
	if err := s.gate(ctx, userID); err != nil {
		return nil, err
	}

	out, err := Score(responses, s.maxPointsPerQuestion)
	if err != nil {
		return nil, err
	}

	completionRate := int(math.Round(100 * float64(len(responses)) / float64(len(questions))))
	rec := &Result{
		ID:              uuid.NewString(),
		UserID:          userID,
		RecommendedPath: out.RecommendedPath,
		Scores:          out.Scores,
		Confidence:      out.Confidence,
		CompletionRate:  completionRate,
		CreatedAt:       requestcontext.Now(ctx),
	}
	if err := s.results.Save(ctx, rec); err != nil {
		return nil, s.internal(ctx, "assessment result save failed", err)
	}

	if s.metrics != nil {
		s.metrics.AssessmentsScored.Inc()
	}
	s.logger.InfoContext(ctx, "assessment scored",
		"user_id", userID,
		"recommended_path", out.RecommendedPath,
		"confidence", out.Confidence,
		"request_id", requestcontext.RequestID(ctx),
	)

	return &AssessResult{Outcome: *out, CompletionRate: completionRate}, nil
}

// LatestResult returns the user's most recent persisted result.
func (s *Service) LatestResult(ctx context.Context, userID string) (*Result, error) {
	r, err := s.results.LatestByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "No assessment result found")
		}
		return nil, s.internal(ctx, "assessment result lookup failed", err)
	}
	return r, nil
}

// gate admits only students whose profile names the 10th class.
func (s *Service) gate(ctx context.Context, userID string) error {
	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeBadRequest, "Please complete your profile before taking the assessment")
		}
		return s.internal(ctx, "profile lookup failed", err)
	}
	if p.Class == "" {
		return dErrors.New(dErrors.CodeBadRequest, "Please complete your profile before taking the assessment")
	}
	if p.Class != profile.ClassTenth {
		return dErrors.New(dErrors.CodeForbidden, "Career assessment is available for 10th class students only").
			WithMeta("userClass", p.Class)
	}
	return nil
}

func (s *Service) internal(ctx context.Context, msg string, err error) error {
	s.logger.ErrorContext(ctx, msg, "error", err, "request_id", requestcontext.RequestID(ctx))
	return dErrors.Wrap(dErrors.CodeInternal, "Internal server error", err)
}
