package college_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"disha/internal/college"
	"disha/internal/profile"
	profilestore "disha/internal/profile/store"
	dErrors "disha/pkg/domain-errors"
)

type CollegeServiceSuite struct {
	suite.Suite

	ctx      context.Context
	profiles *profilestore.InMemoryStore
	svc      *college.Service
}

func TestCollegeServiceSuite(t *testing.T) {
	suite.Run(t, new(CollegeServiceSuite))
}

func (s *CollegeServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.profiles = profilestore.NewInMemoryStore()
	s.svc = college.NewService(s.profiles, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *CollegeServiceSuite) seedProfile(class string) {
	s.Require().NoError(s.profiles.Create(s.ctx, &profile.Profile{UserID: "u-1", Class: class}))
}

func (s *CollegeServiceSuite) TestListRequiresProfileClass() {
	_, err := s.svc.List(s.ctx, "u-1", college.Filter{})
	s.True(dErrors.Is(err, dErrors.CodeBadRequest))

	s.Require().NoError(s.profiles.Create(s.ctx, &profile.Profile{UserID: "u-1"}))
	_, err = s.svc.List(s.ctx, "u-1", college.Filter{})
	s.True(dErrors.Is(err, dErrors.CodeBadRequest))
}

func (s *CollegeServiceSuite) TestListSelectsDatasetByClass() {
	s.seedProfile(profile.ClassTenth)

	res, err := s.svc.List(s.ctx, "u-1", college.Filter{})
	s.Require().NoError(err)
	s.NotZero(res.Total)
	for _, c := range res.Colleges {
		s.Equal("10th", c.AdmitsAfter)
	}
	s.Contains(res.Filters.Types, college.TypeGovernment)
	s.Contains(res.Filters.Locations, "Pune")
}

func (s *CollegeServiceSuite) TestListFilters() {
	s.seedProfile(profile.ClassTwelfth)

	res, err := s.svc.List(s.ctx, "u-1", college.Filter{Location: "mumbai", Type: "Government"})
	s.Require().NoError(err)
	s.NotZero(res.Total)
	for _, c := range res.Colleges {
		s.Equal("Mumbai", c.Location)
		s.Equal(college.TypeGovernment, c.Type)
	}
}

func (s *CollegeServiceSuite) TestListSearchMatchesNameAndCourses() {
	s.seedProfile(profile.ClassTwelfth)

	byName, err := s.svc.List(s.ctx, "u-1", college.Filter{Search: "engineering"})
	s.Require().NoError(err)
	s.NotZero(byName.Total)

	byCourse, err := s.svc.List(s.ctx, "u-1", college.Filter{Search: "mbbs"})
	s.Require().NoError(err)
	s.Require().Equal(1, byCourse.Total)
	s.Equal("Grant Medical College", byCourse.Colleges[0].Name)
}

func (s *CollegeServiceSuite) TestFilterOptionsComeFromUnfilteredDataset() {
	s.seedProfile(profile.ClassTwelfth)

	res, err := s.svc.List(s.ctx, "u-1", college.Filter{Location: "Nashik"})
	s.Require().NoError(err)
	s.Contains(res.Filters.Locations, "Mumbai")
}

func (s *CollegeServiceSuite) TestGetByID() {
	c, err := s.svc.GetByID(s.ctx, 101)
	s.Require().NoError(err)
	s.Equal("College of Engineering Pune", c.Name)

	_, err = s.svc.GetByID(s.ctx, 999)
	s.True(dErrors.Is(err, dErrors.CodeNotFound))
}
