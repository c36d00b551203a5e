package records

import (
	"time"

	"github.com/hiresphere/hiresphere/internal/models"
)

// seedJobs returns the sample postings written to an empty board on first
// open. The fixed ids keep repeated bootstraps (say, after wiping the jobs
// slot by hand) from multiplying the samples.
func seedJobs(now time.Time) []*models.Job {
	posted := now.UTC()
	return []*models.Job{
		{
			ID:          "job_1",
			Title:       "Frontend Developer",
			Company:     "TechCorp",
			Location:    "San Francisco, CA",
			Description: "We are looking for a skilled frontend developer to join our team.",
			Requirements: []string{
				"3+ years of React experience",
				"TypeScript knowledge",
				"CSS/Tailwind skills",
			},
			Salary:   "$90,000 - $120,000",
			Type:     models.JobTypeFullTime,
			PostedBy: "user_1",
			PostedAt: posted,
			Active:   true,
		},
		{
			ID:          "job_2",
			Title:       "UX Designer",
			Company:     "DesignHub",
			Location:    "Remote",
			Description: "Join our design team to create beautiful user experiences.",
			Requirements: []string{
				"Portfolio of design work",
				"Experience with Figma",
				"User research skills",
			},
			Salary:   "$85,000 - $110,000",
			Type:     models.JobTypeFullTime,
			PostedBy: "user_2",
			PostedAt: posted,
			Active:   true,
		},
		{
			ID:          "job_3",
			Title:       "Backend Engineer",
			Company:     "DataSystems",
			Location:    "New York, NY",
			Description: "Build robust backend systems for our growing platform.",
			Requirements: []string{
				"Node.js expertise",
				"Database design",
				"API development",
			},
			Salary:   "$100,000 - $130,000",
			Type:     models.JobTypeFullTime,
			PostedBy: "user_3",
			PostedAt: posted,
			Active:   true,
		},
	}
}
