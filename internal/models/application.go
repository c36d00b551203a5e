package models

import "time"

// ApplicationStatus enumerates the review pipeline. Any status may follow
// any other; the record store only rejects values outside this set.
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "pending"
	StatusReviewed  ApplicationStatus = "reviewed"
	StatusInterview ApplicationStatus = "interview"
	StatusHired     ApplicationStatus = "hired"
	StatusRejected  ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusInterview, StatusHired, StatusRejected:
		return true
	}
	return false
}

// Application is one jobseeker's submission against one job. ApplicantName
// is a snapshot taken at submission time, so later profile renames do not
// rewrite history. At most one application exists per (JobID, ApplicantID).
type Application struct {
	ID            string            `json:"id"`
	JobID         string            `json:"jobId"`
	ApplicantID   string            `json:"applicantId"`
	ApplicantName string            `json:"applicantName"`
	CoverLetter   string            `json:"coverLetter,omitempty"`
	Resume        string            `json:"resume,omitempty"`
	Status        ApplicationStatus `json:"status"`
	AppliedAt     time.Time         `json:"appliedDate"`
}

// NewApplication carries caller-supplied fields for ApplyForJob. Everything
// else is stamped by the record store.
type NewApplication struct {
	CoverLetter string
	Resume      string
}
