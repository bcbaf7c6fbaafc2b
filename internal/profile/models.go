package profile

import "time"

// Enumerations for profile fields. GenderUnset and StreamNone are "unset"
// sentinels: they are stored but do not count toward profile completion.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderUnset  = "Prefer not to say"

	ClassTenth   = "10th"
	ClassTwelfth = "12th"

	StreamScience    = "Science"
	StreamCommerce   = "Commerce"
	StreamArts       = "Arts"
	StreamDiploma    = "Diploma"
	StreamVocational = "Vocational courses"
	StreamOther      = "Other"
	StreamNone       = "None"
)

var (
	validGenders = map[string]bool{GenderMale: true, GenderFemale: true, GenderUnset: true}
	validClasses = map[string]bool{ClassTenth: true, ClassTwelfth: true}
	validStreams = map[string]bool{
		StreamScience: true, StreamCommerce: true, StreamArts: true,
		StreamDiploma: true, StreamVocational: true, StreamOther: true, StreamNone: true,
	}
)

// Profile holds a student's demographics, keyed by the user ID.
type Profile struct {
	UserID    string     `json:"userId"`
	DOB       *time.Time `json:"dob,omitempty"`
	Gender    string     `json:"gender,omitempty"`
	Location  string     `json:"location,omitempty"`
	Class     string     `json:"class,omitempty"`
	Stream    string     `json:"stream,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// UpsertRequest carries profile fields from the client.
type UpsertRequest struct {
	DOB      *time.Time `json:"dob,omitempty"`
	Gender   string     `json:"gender,omitempty"`
	Location string     `json:"location,omitempty"`
	Class    string     `json:"class,omitempty"`
	Stream   string     `json:"stream,omitempty"`
}

// Completion is the derived completeness of a profile.
type Completion struct {
	Percentage int  `json:"percentage"`
	IsComplete bool `json:"isComplete"`
}
