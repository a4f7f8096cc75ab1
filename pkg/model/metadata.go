package model

import "time"

// ProjectMetadata carries the descriptive fields of a project. Dates are
// ISO-8601 strings; CreatedDate is set once, ModifiedDate is touched by
// the aggregate's add/remove operations and by every save.
type ProjectMetadata struct {
	ProjectName   string
	ClientName    string
	ClientAddress string
	ClientPhone   string
	Notes         string
	CreatedDate   string
	ModifiedDate  string
}

// NewMetadata returns metadata for a fresh project with both dates set
// to now.
func NewMetadata() ProjectMetadata {
	now := Timestamp()
	return ProjectMetadata{
		ProjectName:  "Untitled Wardrobe",
		CreatedDate:  now,
		ModifiedDate: now,
	}
}

// Timestamp returns the current time as an ISO-8601 string with
// sub-second precision, so that consecutive mutations get distinct
// modified dates.
func Timestamp() string {
	return time.Now().Format(time.RFC3339Nano)
}
