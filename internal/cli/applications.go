package cli

import (
	"context"
	"fmt"

	"github.com/hiresphere/hiresphere/internal/models"
)

// Apply submits an application for a job under the current session.
func (a *App) Apply(ctx context.Context, jobID string) error {
	job, err := a.recs.GetJob(jobID)
	if err != nil {
		fmt.Fprintf(a.out, "Job not found: %s\n", jobID)
		return err
	}

	coverLetter, err := GetMultiline(a.reader, "Cover letter (optional)", a.out)
	if err != nil {
		return err
	}
	resume, err := GetSimpleText(a.reader, "Resume link (optional)", a.out)
	if err != nil {
		return err
	}

	app, err := a.recs.ApplyForJob(ctx, jobID, models.NewApplication{
		CoverLetter: coverLetter,
		Resume:      resume,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Failed to apply: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Applied to %s at %s (application %s).\n", job.Title, job.Company, app.ID)
	return nil
}

// MyApplications lists the current jobseeker's applications with the job
// each one targets.
func (a *App) MyApplications(ctx context.Context) error {
	apps := a.recs.ApplicationsForCurrentUser()
	if len(apps) == 0 {
		fmt.Fprintln(a.out, "No applications yet.")
		return nil
	}

	for _, app := range apps {
		title := "(job removed)"
		if job, err := a.recs.GetJob(app.JobID); err == nil {
			title = fmt.Sprintf("%s — %s", job.Title, job.Company)
		}
		fmt.Fprintf(a.out, "%s  %s [%s] applied %s\n",
			app.ID, title, app.Status, app.AppliedAt.Format("Jan 2, 2006"))
	}
	return nil
}

// Applicants lists the applications against one of the employer's jobs.
func (a *App) Applicants(ctx context.Context, jobID string) error {
	if _, err := a.recs.GetJob(jobID); err != nil {
		fmt.Fprintf(a.out, "Job not found: %s\n", jobID)
		return err
	}

	apps := a.recs.ApplicationsForJob(jobID)
	if len(apps) == 0 {
		fmt.Fprintln(a.out, "No applications for this job yet.")
		return nil
	}

	for _, app := range apps {
		fmt.Fprintf(a.out, "%s  %s [%s] applied %s\n",
			app.ID, app.ApplicantName, app.Status, app.AppliedAt.Format("Jan 2, 2006"))
		if app.CoverLetter != "" {
			fmt.Fprintf(a.out, "    %s\n", app.CoverLetter)
		}
	}
	return nil
}

// SetStatus moves an application to a new status.
func (a *App) SetStatus(ctx context.Context, applicationID, status string) error {
	st := models.ApplicationStatus(status)
	if !st.Valid() {
		fmt.Fprintln(a.out, "Status must be one of: pending, reviewed, interview, hired, rejected")
		return nil
	}

	app, err := a.recs.UpdateApplicationStatus(ctx, applicationID, st)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to update status: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Application %s is now %s.\n", app.ID, app.Status)
	return nil
}
