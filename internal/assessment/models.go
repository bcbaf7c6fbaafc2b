package assessment

import "time"

// Question is one quiz item presented to the student.
type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

// Option is a selectable answer. Value is the token submitted back and
// matched against the scoring matrix; Label is display text.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Response is one submitted answer. Scoring is positional: the i-th response
// is matched against the i-th matrix column regardless of QuestionID, so
// callers must submit responses in question order.
type Response struct {
	QuestionID int    `json:"questionId"`
	Answer     string `json:"answer"`
}

// PathDetails is the static descriptive metadata for a career path.
type PathDetails struct {
	Name         string   `json:"name"`
	Subjects     []string `json:"subjects"`
	Careers      []string `json:"careers"`
	Institutions []string `json:"institutions"`
}

// Alternative is a non-recommended path ranked by score.
type Alternative struct {
	Path    string      `json:"path"`
	Score   int         `json:"score"`
	Details PathDetails `json:"details"`
}

// Outcome is the scored result of one assessment.
type Outcome struct {
	RecommendedPath string         `json:"recommendedPath"`
	PathDetails     PathDetails    `json:"pathDetails"`
	Scores          map[string]int `json:"scores"`
	Confidence      int            `json:"confidencePercent"`
	Alternatives    []Alternative  `json:"alternatives"`
}

// AssessResult is the outcome returned to the client, with how much of the
// quiz the submitted answers covered.
type AssessResult struct {
	Outcome
	CompletionRate int `json:"completionRate"`
}

// Result is a persisted assessment outcome.
type Result struct {
	ID              string         `json:"id"`
	UserID          string         `json:"userId"`
	RecommendedPath string         `json:"recommendedPath"`
	Scores          map[string]int `json:"scores"`
	Confidence      int            `json:"confidencePercent"`
	CompletionRate  int            `json:"completionRate"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// Stats summarizes the question catalog.
type Stats struct {
	TotalQuestions int            `json:"totalQuestions"`
	TotalPaths     int            `json:"totalPaths"`
	OptionsPerPath map[string]int `json:"optionsPerPath"`
}
