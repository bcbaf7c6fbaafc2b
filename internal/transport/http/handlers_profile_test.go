package httptransport

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"disha/internal/platform/middleware"
	"disha/internal/profile"
	"disha/internal/transport/http/mocks"
	dErrors "disha/pkg/domain-errors"
	"disha/pkg/testutil"
)

//go:generate mockgen -source=handlers_profile.go -destination=mocks/profile-mocks.go -package=mocks ProfileService

// stubValidator accepts exactly one token and returns fixed claims.
type stubValidator struct {
	token  string
	claims middleware.JWTClaims
}

func (v *stubValidator) ValidateToken(token string) (*middleware.JWTClaims, error) {
	if token != v.token {
		return nil, fmt.Errorf("token mismatch")
	}
	claims := v.claims
	return &claims, nil
}

type ProfileHandlerSuite struct {
	suite.Suite

	ctrl        *gomock.Controller
	mockProfile *mocks.MockProfileService
	router      chi.Router
}

func TestProfileHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProfileHandlerSuite))
}

func (s *ProfileHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockProfile = mocks.NewMockProfileService(s.ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	validator := &stubValidator{
		token:  "valid-token",
		claims: middleware.JWTClaims{UserID: "u-1", Email: "asha@example.com"},
	}

	s.router = chi.NewRouter()
	s.router.Use(middleware.RequireAuth(validator, logger))
	NewProfileHandler(s.mockProfile, logger).Register(s.router)
}

func (s *ProfileHandlerSuite) authed(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "valid-token"})
	return req
}

func (s *ProfileHandlerSuite) TestRequiresAuth() {
	s.Run("missing token - 401", func() {
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/profile", nil))
		s.Equal(http.StatusUnauthorized, rr.Code)
	})

	s.Run("bad token - 401", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodGet, "/profile", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "forged"})
		rr := testutil.DoRequest(s.router, req)
		s.Equal(http.StatusUnauthorized, rr.Code)
	})

	s.Run("bearer header works too", func() {
		s.mockProfile.EXPECT().Get(gomock.Any(), "u-1").
			Return(&profile.Profile{UserID: "u-1"}, profile.Completion{}, nil)

		req := testutil.NewJSONRequest(s.T(), http.MethodGet, "/profile", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		rr := testutil.DoRequest(s.router, req)
		s.Equal(http.StatusOK, rr.Code)
	})
}

func (s *ProfileHandlerSuite) TestCreate() {
	born := time.Date(2009, 3, 15, 0, 0, 0, 0, time.UTC)
	req := profile.UpsertRequest{DOB: &born, Gender: profile.GenderFemale}

	s.Run("created - 201", func() {
		s.mockProfile.EXPECT().Create(gomock.Any(), "u-1", req).
			Return(&profile.Profile{UserID: "u-1", Gender: profile.GenderFemale},
				profile.Completion{Percentage: 45}, nil)

		rr := testutil.DoRequest(s.router, s.authed(testutil.NewJSONRequest(s.T(), http.MethodPost, "/profile", req)))

		s.Equal(http.StatusCreated, rr.Code)
		got := testutil.UnmarshalResponse[profileResponse](s.T(), rr)
		s.Equal(45, got.Completion.Percentage)
		s.False(got.Completion.IsComplete)
	})

	s.Run("duplicate - 409", func() {
		s.mockProfile.EXPECT().Create(gomock.Any(), "u-1", req).
			Return(nil, profile.Completion{}, dErrors.New(dErrors.CodeConflict, "Profile already exists"))

		rr := testutil.DoRequest(s.router, s.authed(testutil.NewJSONRequest(s.T(), http.MethodPost, "/profile", req)))

		s.Equal(http.StatusConflict, rr.Code)
	})

	s.Run("malformed body - 400", func() {
		rr := testutil.DoRequest(s.router, s.authed(testutil.NewRequestWithBody(s.T(), http.MethodPost, "/profile", "{oops")))
		s.Equal(http.StatusBadRequest, rr.Code)
	})
}

func (s *ProfileHandlerSuite) TestUpdate() {
	req := profile.UpsertRequest{Location: "Pune"}
	s.mockProfile.EXPECT().Update(gomock.Any(), "u-1", req).
		Return(&profile.Profile{UserID: "u-1", Location: "Pune"}, profile.Completion{Percentage: 25}, nil)

	rr := testutil.DoRequest(s.router, s.authed(testutil.NewJSONRequest(s.T(), http.MethodPut, "/profile", req)))

	s.Equal(http.StatusOK, rr.Code)
}

func (s *ProfileHandlerSuite) TestCompletion() {
	s.mockProfile.EXPECT().RecalculateCompletion(gomock.Any(), "u-1").
		Return(profile.Completion{Percentage: 100, IsComplete: true}, nil)

	rr := testutil.DoRequest(s.router, s.authed(testutil.NewJSONRequest(s.T(), http.MethodGet, "/profile/completion", nil)))

	s.Equal(http.StatusOK, rr.Code)
	got := testutil.UnmarshalResponse[profile.Completion](s.T(), rr)
	s.True(got.IsComplete)
}
