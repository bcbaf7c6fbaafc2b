// Package college serves the static institution catalog, selected by the
// student's class.
package college

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"disha/internal/profile"
	dErrors "disha/pkg/domain-errors"
	"disha/pkg/platform/sentinel"
	"disha/pkg/requestcontext"
)

type Service struct {
	profiles profile.Store
	logger   *slog.Logger
}

func NewService(profiles profile.Store, log *slog.Logger) *Service {
	return &Service{profiles: profiles, logger: log}
}

// List returns the catalog for the student's class, narrowed by the filter.
// Filter options are computed from the unfiltered dataset so controls stay
// stable while filters are applied.
func (s *Service) List(ctx context.Context, userID string, f Filter) (*ListResult, error) {
	dataset, err := s.datasetFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	matched := make([]College, 0, len(dataset))
	for _, c := range dataset {
		if matches(c, f) {
			matched = append(matched, c)
		}
	}

	return &ListResult{
		Colleges: matched,
		Total:    len(matched),
		Filters:  filterOptions(dataset),
	}, nil
}

// GetByID looks an institution up across both datasets.
func (s *Service) GetByID(ctx context.Context, id int) (*College, error) {
	for _, dataset := range [][]College{collegesAfterTenth, collegesAfterTwelfth} {
		for i := range dataset {
			if dataset[i].ID == id {
				c := dataset[i]
				return &c, nil
			}
		}
	}
	return nil, dErrors.New(dErrors.CodeNotFound, "College not found")
}

func (s *Service) datasetFor(ctx context.Context, userID string) ([]College, error) {
	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeBadRequest, "Please complete your profile to see colleges")
		}
		s.logger.ErrorContext(ctx, "profile lookup failed", "error", err, "request_id", requestcontext.RequestID(ctx))
		return nil, dErrors.Wrap(dErrors.CodeInternal, "Internal server error", err)
	}
	switch p.Class {
	case profile.ClassTenth:
		return collegesAfterTenth, nil
	case profile.ClassTwelfth:
		return collegesAfterTwelfth, nil
	default:
		return nil, dErrors.New(dErrors.CodeBadRequest, "Please complete your profile to see colleges")
	}
}

func matches(c College, f Filter) bool {
	if f.Location != "" && !strings.EqualFold(c.Location, f.Location) {
		return false
	}
	if f.Type != "" && !strings.EqualFold(c.Type, f.Type) {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Name), needle) && !containsCourse(c.Courses, needle) {
			return false
		}
	}
	return true
}

func containsCourse(courses []string, needle string) bool {
	for _, course := range courses {
		if strings.Contains(strings.ToLower(course), needle) {
			return true
		}
	}
	return false
}

func filterOptions(dataset []College) FilterOptions {
	locSet := make(map[string]bool)
	typeSet := make(map[string]bool)
	for _, c := range dataset {
		locSet[c.Location] = true
		typeSet[c.Type] = true
	}
	return FilterOptions{
		Locations: sortedKeys(locSet),
		Types:     sortedKeys(typeSet),
	}
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
