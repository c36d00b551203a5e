package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/hiresphere/hiresphere/internal/models"
)

// Jobs lists active postings, optionally narrowed by a search query.
func (a *App) Jobs(ctx context.Context, query string) error {
	jobs := a.recs.ListJobs(models.JobFilter{Query: query, ActiveOnly: true})
	if len(jobs) == 0 {
		fmt.Fprintln(a.out, "No jobs found. Try adjusting your search.")
		return nil
	}

	for _, j := range jobs {
		fmt.Fprintf(a.out, "%s  %s — %s (%s, %s)\n", j.ID, j.Title, j.Company, j.Location, j.Type)
	}
	return nil
}

// ShowJob prints one posting in full.
func (a *App) ShowJob(ctx context.Context, id string) error {
	job, err := a.recs.GetJob(id)
	if err != nil {
		fmt.Fprintf(a.out, "Job not found: %s\n", id)
		return err
	}

	fmt.Fprintf(a.out, "%s — %s\n", job.Title, job.Company)
	fmt.Fprintf(a.out, "%s | %s", job.Location, job.Type)
	if job.Salary != "" {
		fmt.Fprintf(a.out, " | %s", job.Salary)
	}
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Posted %s\n\n", job.PostedAt.Format("Jan 2, 2006"))
	fmt.Fprintln(a.out, job.Description)
	if len(job.Requirements) > 0 {
		fmt.Fprintln(a.out, "\nRequirements:")
		for _, r := range job.Requirements {
			fmt.Fprintf(a.out, "  - %s\n", r)
		}
	}
	return nil
}

// PostJob walks an employer through creating a posting.
func (a *App) PostJob(ctx context.Context) error {
	fields := models.NewJob{}
	var err error

	if fields.Title, err = GetSimpleText(a.reader, "Job title", a.out); err != nil {
		return err
	}
	if fields.Company, err = GetSimpleText(a.reader, "Company", a.out); err != nil {
		return err
	}
	if fields.Location, err = GetSimpleText(a.reader, "Location", a.out); err != nil {
		return err
	}
	typeStr, err := GetSimpleText(a.reader, "Type (full-time/part-time/contract/internship)", a.out)
	if err != nil {
		return err
	}
	fields.Type = models.JobType(strings.ToLower(strings.TrimSpace(typeStr)))
	if !fields.Type.Valid() {
		fmt.Fprintln(a.out, "Unknown job type.")
		return nil
	}
	if fields.Salary, err = GetSimpleText(a.reader, "Salary range (optional)", a.out); err != nil {
		return err
	}
	if fields.Description, err = GetMultiline(a.reader, "Description", a.out); err != nil {
		return err
	}
	if fields.Requirements, err = GetList(a.reader, "Requirements", a.out); err != nil {
		return err
	}

	job, err := a.recs.CreateJob(ctx, fields)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to create job: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Job posted: %s\n", job.ID)
	return nil
}

// EditJob updates fields of an owned posting. Empty input keeps the
// current value.
func (a *App) EditJob(ctx context.Context, id string) error {
	job, err := a.recs.GetJob(id)
	if err != nil {
		fmt.Fprintf(a.out, "Job not found: %s\n", id)
		return err
	}

	update := models.JobUpdate{}

	title, err := GetSimpleText(a.reader, fmt.Sprintf("Title [%s]", job.Title), a.out)
	if err != nil {
		return err
	}
	if title != "" {
		update.Title = &title
	}

	location, err := GetSimpleText(a.reader, fmt.Sprintf("Location [%s]", job.Location), a.out)
	if err != nil {
		return err
	}
	if location != "" {
		update.Location = &location
	}

	salary, err := GetSimpleText(a.reader, fmt.Sprintf("Salary [%s]", job.Salary), a.out)
	if err != nil {
		return err
	}
	if salary != "" {
		update.Salary = &salary
	}

	activeStr, err := GetSimpleText(a.reader, fmt.Sprintf("Active (y/n) [%v]", job.Active), a.out)
	if err != nil {
		return err
	}
	switch strings.ToLower(activeStr) {
	case "y", "yes":
		active := true
		update.Active = &active
	case "n", "no":
		active := false
		update.Active = &active
	}

	if _, err := a.recs.UpdateJob(ctx, id, update); err != nil {
		fmt.Fprintf(a.out, "Failed to update job: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Job updated.")
	return nil
}

// DeleteJob removes an owned posting and its applications.
func (a *App) DeleteJob(ctx context.Context, id string) error {
	confirm, err := GetSimpleText(a.reader, "Delete this job and all its applications? (yes/no)", a.out)
	if err != nil {
		return err
	}
	if strings.ToLower(confirm) != "yes" {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.recs.DeleteJob(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Failed to delete job: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Job deleted.")
	return nil
}

// Listings shows the employer's own postings with application counts.
func (a *App) Listings(ctx context.Context) error {
	user := a.ids.CurrentSession()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	jobs := a.recs.JobsForEmployer(user.ID)
	if len(jobs) == 0 {
		fmt.Fprintln(a.out, "You haven't posted any jobs yet.")
		return nil
	}

	for _, j := range jobs {
		state := "active"
		if !j.Active {
			state = "inactive"
		}
		apps := a.recs.ApplicationsForJob(j.ID)
		fmt.Fprintf(a.out, "%s  %s (%s) — %d applications\n", j.ID, j.Title, state, len(apps))
	}
	return nil
}
