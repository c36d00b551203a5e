package models

import "time"

// JobType is the employment type of a posting.
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

// Job is an employer-owned posting. PostedBy references the owning account
// by id; only that account may update, deactivate, or delete the job.
type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	Salary       string    `json:"salary,omitempty"`
	Type         JobType   `json:"type"`
	PostedBy     string    `json:"postedBy"`
	PostedAt     time.Time `json:"postedDate"`
	Active       bool      `json:"isActive"`
}

// NewJob carries caller-supplied fields for CreateJob. Id, owner, timestamp,
// and the active flag are stamped by the record store.
type NewJob struct {
	Title        string
	Company      string
	Location     string
	Description  string
	Requirements []string
	Salary       string
	Type         JobType
}

// JobUpdate merges into an existing job; nil fields are left untouched.
// Ownership and the creation timestamp are immutable.
type JobUpdate struct {
	Title        *string
	Company      *string
	Location     *string
	Description  *string
	Requirements *[]string
	Salary       *string
	Type         *JobType
	Active       *bool
}

// JobFilter narrows job listings. Query matches title, company, and
// location case-insensitively; empty fields match everything.
type JobFilter struct {
	Query      string
	Type       JobType
	ActiveOnly bool
}
