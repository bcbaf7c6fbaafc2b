package assessment_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"disha/internal/assessment"
	assessmentstore "disha/internal/assessment/store"
	"disha/internal/profile"
	profilestore "disha/internal/profile/store"
	dErrors "disha/pkg/domain-errors"
	"disha/pkg/requestcontext"
)

type AssessmentServiceSuite struct {
	suite.Suite

	ctx      context.Context
	results  *assessmentstore.InMemoryResultStore
	profiles *profilestore.InMemoryStore
	svc      *assessment.Service
}

func TestAssessmentServiceSuite(t *testing.T) {
	suite.Run(t, new(AssessmentServiceSuite))
}

func (s *AssessmentServiceSuite) SetupTest() {
	s.ctx = requestcontext.WithTime(context.Background(), time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.results = assessmentstore.NewInMemoryResultStore()
	s.profiles = profilestore.NewInMemoryStore()
	s.svc = assessment.NewService(
		s.results, s.profiles, nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		assessment.DefaultMaxPointsPerQuestion,
	)
}

func (s *AssessmentServiceSuite) seedProfile(class string) {
	s.Require().NoError(s.profiles.Create(s.ctx, &profile.Profile{
		UserID: "u-1",
		Class:  class,
		Stream: profile.StreamNone,
	}))
}

func scienceAnswers() []assessment.Response {
	values := []string{"science", "practical", "lab", "visual", "logical", "discovery", "science", "research"}
	out := make([]assessment.Response, len(values))
	for i, v := range values {
		out[i] = assessment.Response{QuestionID: i + 1, Answer: v}
	}
	return out
}

func (s *AssessmentServiceSuite) TestQuestionsRequireProfile() {
	_, err := s.svc.Questions(s.ctx, "u-1")
	s.True(dErrors.Is(err, dErrors.CodeBadRequest))
}

func (s *AssessmentServiceSuite) TestQuestionsRejectTwelfthClass() {
	s.seedProfile(profile.ClassTwelfth)

	_, err := s.svc.Questions(s.ctx, "u-1")
	s.True(dErrors.Is(err, dErrors.CodeForbidden))
	s.Equal(profile.ClassTwelfth, dErrors.MetaOf(err)["userClass"])
}

func (s *AssessmentServiceSuite) TestQuestionsForTenthClass() {
	s.seedProfile(profile.ClassTenth)

	qs, err := s.svc.Questions(s.ctx, "u-1")
	s.Require().NoError(err)
	s.Len(qs, 8)
	for _, q := range qs {
		s.Len(q.Options, 4)
	}
}

func (s *AssessmentServiceSuite) TestQuestionByID() {
	s.seedProfile(profile.ClassTenth)

	q, err := s.svc.QuestionByID(s.ctx, "u-1", 3)
	s.Require().NoError(err)
	s.Equal(3, q.ID)

	_, err = s.svc.QuestionByID(s.ctx, "u-1", 99)
	s.True(dErrors.Is(err, dErrors.CodeNotFound))
}

func (s *AssessmentServiceSuite) TestAssessPersistsResult() {
	s.seedProfile(profile.ClassTenth)

	res, err := s.svc.Assess(s.ctx, "u-1", scienceAnswers())
	s.Require().NoError(err)
	s.Equal("science", res.RecommendedPath)
	s.Equal(25, res.Confidence)
	s.Equal(100, res.CompletionRate)

	stored, err := s.svc.LatestResult(s.ctx, "u-1")
	s.Require().NoError(err)
	s.Equal("science", stored.RecommendedPath)
	s.Equal(8, stored.Scores["science"])
	s.NotEmpty(stored.ID)
}

func (s *AssessmentServiceSuite) TestAssessPartialAnswers() {
	s.seedProfile(profile.ClassTenth)

	res, err := s.svc.Assess(s.ctx, "u-1", scienceAnswers()[:4])
	s.Require().NoError(err)
	s.Equal(50, res.CompletionRate)
	s.Equal(4, res.Scores["science"])
}

func (s *AssessmentServiceSuite) TestAssessRejectsEmpty() {
	s.seedProfile(profile.ClassTenth)

	_, err := s.svc.Assess(s.ctx, "u-1", nil)
	s.True(dErrors.Is(err, dErrors.CodeBadRequest))

	n, err := s.results.CountByUserID(s.ctx, "u-1")
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *AssessmentServiceSuite) TestLatestResultMissing() {
	_, err := s.svc.LatestResult(s.ctx, "u-1")
	s.True(dErrors.Is(err, dErrors.CodeNotFound))
}

func (s *AssessmentServiceSuite) TestCareerPathsAndStats() {
	paths, err := s.svc.CareerPaths(s.ctx)
	s.Require().NoError(err)
	s.Len(paths, 4)
	s.Equal("Science", paths[0].Name)

	stats, err := s.svc.Stats(s.ctx)
	s.Require().NoError(err)
	s.Equal(8, stats.TotalQuestions)
	s.Equal(4, stats.TotalPaths)
}
