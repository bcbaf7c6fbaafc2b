package httptransport

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"disha/internal/assessment"
	"disha/internal/college"
	"disha/internal/platform/middleware"
	"disha/internal/transport/http/mocks"
	dErrors "disha/pkg/domain-errors"
	"disha/pkg/testutil"
)

//go:generate mockgen -source=handlers_assessment.go -destination=mocks/assessment-mocks.go -package=mocks AssessmentService
//go:generate mockgen -source=handlers_college.go -destination=mocks/college-mocks.go -package=mocks CollegeService

type AssessmentHandlerSuite struct {
	suite.Suite

	ctrl           *gomock.Controller
	mockAssessment *mocks.MockAssessmentService
	mockCollege    *mocks.MockCollegeService
	router         chi.Router
}

func TestAssessmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AssessmentHandlerSuite))
}

func (s *AssessmentHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAssessment = mocks.NewMockAssessmentService(s.ctrl)
	s.mockCollege = mocks.NewMockCollegeService(s.ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	validator := &stubValidator{
		token:  "valid-token",
		claims: middleware.JWTClaims{UserID: "u-1", Email: "asha@example.com"},
	}

	s.router = chi.NewRouter()
	s.router.Use(middleware.RequireAuth(validator, logger))
	NewAssessmentHandler(s.mockAssessment, logger).Register(s.router)
	NewCollegeHandler(s.mockCollege, logger).Register(s.router)
}

func (s *AssessmentHandlerSuite) authed(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer valid-token")
	return req
}

func (s *AssessmentHandlerSuite) TestListQuestions() {
	s.Run("eligible student - 200", func() {
		s.mockAssessment.EXPECT().Questions(gomock.Any(), "u-1").
			Return([]assessment.Question{{ID: 1, Question: "Which subject do you enjoy the most?"}}, nil)

		rr := testutil.DoRequest(s.router, s.authed(testutil.NewJSONRequest(s.T(), http.MethodGet, "/questions", nil)))

		s.Equal(http.StatusOK, rr.Code)
		body := testutil.UnmarshalErrorResponse(s.T(), rr)
		s.Equal(float64(1), body["total"])
	})

	s.Run("incomplete profile - 400", func() {
		s.mockAssessment.EXPECT().Questions(gomock.Any(), "u-1").
			Return(nil, dErrors.New(dErrors.CodeBadRequest, "Please complete your profile before taking the assessment"))

		rr := testutil.DoRequest(s.router, s.authed(testutil.NewJSONRequest(s.T(), http.MethodGet, "/questions", nil)))

		s.Equal(http.StatusBadRequest, rr.Code)
	})

	s.Run("wrong class - 403 with userClass", func() {
		s.mockAssessment.EXPECT().Questions(gomock.Any(), "u-1").
			Return(nil, dErrors.New(dErrors.CodeForbidden, "Career assessment is available for 10th class students only").
				WithMeta("userClass", "12th"))

		rr := testutil.DoRequest(s.router, s.authed(testutil.NewJSONRequest(s.T(), http.MethodGet, "/questions", nil)))

		s.Equal(http.StatusForbidden, rr.Code)
		body := testutil.UnmarshalErrorResponse(s.T(), rr)
		s.Equal("12th", body["userClass"])
	})
}

func (s *AssessmentHandlerSuite) TestQuestionByID() {
	s.Run("found - 200", func() {
		s.mockAssessment.EXPECT().QuestionByID(gomock.Any(), "u-1", 3).
			Return(&assessment.Question{ID: 3}, nil)

		rr := testutil.DoRequest(s.router, s.authed(testutil.NewJSONRequest(s.T(), http.MethodGet, "/questions/3", nil)))
		s.Equal(http.StatusOK, rr.Code)
	})

	s.Run("non-numeric id - 400", func() {
		rr := testutil.DoRequest(s.router, s.authed(testutil.NewJSONRequest(s.T(), http.MethodGet, "/questions/abc", nil)))
		s.Equal(http.StatusBadRequest, rr.Code)
	})
}

func (s *AssessmentHandlerSuite) TestAssess() {
	responses := []assessment.Response{{QuestionID: 1, Answer: "science"}}

	s.mockAssessment.EXPECT().Assess(gomock.Any(), "u-1", responses).
		Return(&assessment.AssessResult{
			Outcome: assessment.Outcome{
				RecommendedPath: "science",
				Confidence:      25,
				Scores:          map[string]int{"science": 1},
			},
			CompletionRate: 13,
		}, nil)

	rr := testutil.DoRequest(s.router, s.authed(
		testutil.NewJSONRequest(s.T(), http.MethodPost, "/questions/assess", assessRequest{Responses: responses})))

	s.Equal(http.StatusOK, rr.Code)
	got := testutil.UnmarshalResponse[struct {
		Result assessment.AssessResult `json:"result"`
	}](s.T(), rr)
	s.Equal("science", got.Result.RecommendedPath)
	s.Equal(25, got.Result.Confidence)
}

func (s *AssessmentHandlerSuite) TestCareerPathsAndStats() {
	s.mockAssessment.EXPECT().CareerPaths(gomock.Any()).
		Return([]assessment.PathDetails{{Name: "Science"}}, nil)
	rr := testutil.DoRequest(s.router, s.authed(testutil.NewJSONRequest(s.T(), http.MethodGet, "/questions/career-paths", nil)))
	s.Equal(http.StatusOK, rr.Code)

	s.mockAssessment.EXPECT().Stats(gomock.Any()).
		Return(&assessment.Stats{TotalQuestions: 8, TotalPaths: 4}, nil)
	rr = testutil.DoRequest(s.router, s.authed(testutil.NewJSONRequest(s.T(), http.MethodGet, "/questions/stats", nil)))
	s.Equal(http.StatusOK, rr.Code)
}

func (s *AssessmentHandlerSuite) TestColleges() {
	s.Run("list with filters", func() {
		s.mockCollege.EXPECT().List(gomock.Any(), "u-1", college.Filter{Search: "poly", Location: "Pune", Type: "Government"}).
			Return(&college.ListResult{
				Colleges: []college.College{{ID: 1, Name: "Government Polytechnic Pune"}},
				Total:    1,
			}, nil)

		rr := testutil.DoRequest(s.router, s.authed(testutil.NewJSONRequest(s.T(), http.MethodGet,
			"/colleges?search=poly&location=Pune&type=Government", nil)))

		s.Equal(http.StatusOK, rr.Code)
		body := testutil.UnmarshalErrorResponse(s.T(), rr)
		s.Equal(float64(1), body["total"])
	})

	s.Run("get by id - 404", func() {
		s.mockCollege.EXPECT().GetByID(gomock.Any(), 999).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "College not found"))

		rr := testutil.DoRequest(s.router, s.authed(testutil.NewJSONRequest(s.T(), http.MethodGet, "/colleges/999", nil)))
		s.Equal(http.StatusNotFound, rr.Code)
	})
}
