package assessment

import (
	"math"
	"sort"

	dErrors "disha/pkg/domain-errors"
)

// DefaultMaxPointsPerQuestion is the confidence-denominator ceiling. It
// models the absolute per-question point ceiling of the scoring design and is
// deliberately a configured constant rather than a value derived from the
// matrix.
const DefaultMaxPointsPerQuestion = 4

// Score accumulates per-path points for an ordered answer list and ranks the
// paths. The i-th response is compared to the i-th matrix column for every
// path; an answer that matches no column simply scores nothing. The result is
// deterministic, with ties resolved in canonical path order.
func Score(responses []Response, maxPointsPerQuestion int) (*Outcome, error) {
	if len(responses) == 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Assessment responses are required")
	}
	if len(responses) > len(questions) {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Too many assessment responses")
	}
	for _, r := range responses {
		if r.QuestionID <= 0 || r.Answer == "" {
			return nil, dErrors.New(dErrors.CodeBadRequest, "Each response needs a questionId and an answer")
		}
	}
	if maxPointsPerQuestion <= 0 {
		maxPointsPerQuestion = DefaultMaxPointsPerQuestion
	}

	scores := make(map[string]int, len(careerPaths))
	for _, path := range careerPaths {
		scores[path] = 0
	}
	for i, r := range responses {
		for _, path := range careerPaths {
			if scoringMatrix[path][i] == r.Answer {
				scores[path]++
			}
		}
	}

	recommended := careerPaths[0]
	for _, path := range careerPaths[1:] {
		if scores[path] > scores[recommended] {
			recommended = path
		}
	}

	confidence := int(math.Round(
		100 * float64(scores[recommended]) / float64(len(questions)*maxPointsPerQuestion),
	))

	var rest []string
	for _, path := range careerPaths {
		if path != recommended {
			rest = append(rest, path)
		}
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return scores[rest[i]] > scores[rest[j]]
	})
	if len(rest) > 2 {
		rest = rest[:2]
	}
	alternatives := make([]Alternative, 0, len(rest))
	for _, path := range rest {
		alternatives = append(alternatives, Alternative{
			Path:    path,
			Score:   scores[path],
			Details: pathDetails[path],
		})
	}

	return &Outcome{
		RecommendedPath: recommended,
		PathDetails:     pathDetails[recommended],
		Scores:          scores,
		Confidence:      confidence,
		Alternatives:    alternatives,
	}, nil
}
