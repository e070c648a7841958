package dto

import "worksphere/internal/platform/notice"

type Job struct {
	ID          int
	Title       string
	Description string
	Budget      string
	Skills      []string
	Type        string
	Duration    string
	Proposals   int
}

type Activity struct {
	ID       string
	Icon     string
	Message  string
	Ago      string
	Severity string
}

type Passport struct {
	TrustScore float64
	Level      int
	XPPoints   int
}

type Stats struct {
	ActiveJobs    int
	CompletedJobs int
	TotalEarnings string
}

// Overview is everything the dashboard page shows. JobsError is set when
// recommendations could not be loaded; the rest is still usable.
type Overview struct {
	Passport       Passport
	PassportLoaded bool
	Stats          Stats
	Jobs           []Job
	JobsError      string
	Activity       []Activity
}

type ApplyResult struct {
	Success bool
	Job     Job
	Notice  notice.Notice
}

// ExportInput names the member whose passport is exported. The session owns
// the profile, so callers pass it in.
type ExportInput struct {
	Path     string
	Name     string
	Username string
	Email    string
	UserType string
}
