// Package records owns the job and application collections. It enforces
// ownership and role rules against the identity store's current session,
// keeps referential integrity between jobs and applications, and prevents
// duplicate submissions. Every invariant is checked before any mutation, so
// a failing operation leaves both collections untouched.
package records

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hiresphere/hiresphere/internal/common"
	"github.com/hiresphere/hiresphere/internal/logging"
	"github.com/hiresphere/hiresphere/internal/models"
	"github.com/hiresphere/hiresphere/internal/storage"
)

const (
	jobsSnapshotVersion         = 1
	applicationsSnapshotVersion = 1
)

type jobsSnapshot struct {
	Version int           `json:"version"`
	Jobs    []*models.Job `json:"jobs"`
}

type applicationsSnapshot struct {
	Version      int                   `json:"version"`
	Applications []*models.Application `json:"applications"`
}

// SessionSource tells the record store who is asking. The identity store
// satisfies it; tests substitute a stub.
type SessionSource interface {
	CurrentSession() *models.Account
}

// Store holds jobs and applications, persisting each collection to its own
// slot after every successful mutation.
type Store struct {
	slots    storage.SlotStore
	sessions SessionSource
	log      logging.Logger

	// now is a test seam for timestamps.
	now func() time.Time

	jobs         []*models.Job
	applications []*models.Application
}

// New constructs a Store. Call Open before using it.
func New(slots storage.SlotStore, sessions SessionSource, log logging.Logger) *Store {
	return &Store{
		slots:    slots,
		sessions: sessions,
		log:      log.With("store", "records"),
		now:      time.Now,
	}
}

// Open hydrates jobs and applications from their slots. A board that has
// never been opened before gets the sample jobs, a one-time bootstrap so a
// fresh install is not an empty page.
func (s *Store) Open(ctx context.Context) error {
	raw, err := s.slots.Get(ctx, storage.SlotJobs)
	if err != nil {
		return fmt.Errorf("loading jobs: %w", err)
	}
	if raw == nil {
		s.jobs = seedJobs(s.now())
		if err := s.persistJobs(ctx); err != nil {
			return err
		}
		s.log.Info(ctx, "seeded sample jobs", "count", len(s.jobs))
	} else {
		var snap jobsSnapshot
		if err := json.Unmarshal(raw, &snap); err != nil {
			return fmt.Errorf("decoding jobs: %w", err)
		}
		if snap.Version != jobsSnapshotVersion {
			return fmt.Errorf("jobs version %d: %w", snap.Version, common.ErrBadSnapshot)
		}
		s.jobs = snap.Jobs
	}

	raw, err = s.slots.Get(ctx, storage.SlotApplications)
	if err != nil {
		return fmt.Errorf("loading applications: %w", err)
	}
	if raw != nil {
		var snap applicationsSnapshot
		if err := json.Unmarshal(raw, &snap); err != nil {
			return fmt.Errorf("decoding applications: %w", err)
		}
		if snap.Version != applicationsSnapshotVersion {
			return fmt.Errorf("applications version %d: %w", snap.Version, common.ErrBadSnapshot)
		}
		s.applications = snap.Applications
	}

	return nil
}

// Close exists for lifecycle symmetry with Open.
func (s *Store) Close(ctx context.Context) error { return nil }

// Jobs returns every job in insertion order.
func (s *Store) Jobs() []*models.Job {
	out := make([]*models.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, cloneJob(j))
	}
	return out
}

// GetJob looks a job up by id.
func (s *Store) GetJob(id string) (*models.Job, error) {
	j := s.findJob(id)
	if j == nil {
		return nil, common.ErrNotFound
	}
	return cloneJob(j), nil
}

// ListJobs returns the jobs matching the filter, insertion order preserved.
func (s *Store) ListJobs(filter models.JobFilter) []*models.Job {
	query := strings.ToLower(filter.Query)
	out := make([]*models.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		if filter.ActiveOnly && !j.Active {
			continue
		}
		if filter.Type != "" && j.Type != filter.Type {
			continue
		}
		if query != "" && !matchesQuery(j, query) {
			continue
		}
		out = append(out, cloneJob(j))
	}
	return out
}

// JobsForEmployer returns the jobs posted by the given account.
func (s *Store) JobsForEmployer(accountID string) []*models.Job {
	out := make([]*models.Job, 0)
	for _, j := range s.jobs {
		if j.PostedBy == accountID {
			out = append(out, cloneJob(j))
		}
	}
	return out
}

// Applications returns every application in insertion order.
func (s *Store) Applications() []*models.Application {
	out := make([]*models.Application, 0, len(s.applications))
	for _, a := range s.applications {
		out = append(out, cloneApplication(a))
	}
	return out
}

// ApplicationsForJob returns the applications against one job, insertion
// order preserved.
func (s *Store) ApplicationsForJob(jobID string) []*models.Application {
	out := make([]*models.Application, 0)
	for _, a := range s.applications {
		if a.JobID == jobID {
			out = append(out, cloneApplication(a))
		}
	}
	return out
}

// ApplicationsForCurrentUser returns the session account's applications,
// or an empty slice when nobody is signed in.
func (s *Store) ApplicationsForCurrentUser() []*models.Application {
	user := s.sessions.CurrentSession()
	out := make([]*models.Application, 0)
	if user == nil {
		return out
	}
	for _, a := range s.applications {
		if a.ApplicantID == user.ID {
			out = append(out, cloneApplication(a))
		}
	}
	return out
}

// CreateJob posts a new job owned by the session account, which must be an
// employer.
func (s *Store) CreateJob(ctx context.Context, fields models.NewJob) (*models.Job, error) {
	user := s.sessions.CurrentSession()
	if user == nil {
		return nil, common.ErrNotAuthenticated
	}
	if user.Role != models.RoleEmployer {
		return nil, common.ErrForbidden
	}

	job := &models.Job{
		ID:           uuid.NewString(),
		Title:        fields.Title,
		Company:      fields.Company,
		Location:     fields.Location,
		Description:  fields.Description,
		Requirements: append([]string(nil), fields.Requirements...),
		Salary:       fields.Salary,
		Type:         fields.Type,
		PostedBy:     user.ID,
		PostedAt:     s.now().UTC(),
		Active:       true,
	}

	s.jobs = append(s.jobs, job)
	if err := s.persistJobs(ctx); err != nil {
		s.jobs = s.jobs[:len(s.jobs)-1]
		return nil, err
	}

	s.log.Info(ctx, "job created", "job_id", job.ID, "owner", user.ID)
	return cloneJob(job), nil
}

// UpdateJob merges non-nil fields into a job owned by the session account.
func (s *Store) UpdateJob(ctx context.Context, id string, fields models.JobUpdate) (*models.Job, error) {
	user := s.sessions.CurrentSession()
	if user == nil {
		return nil, common.ErrNotAuthenticated
	}

	job := s.findJob(id)
	if job == nil {
		return nil, common.ErrNotFound
	}
	if job.PostedBy != user.ID {
		return nil, common.ErrForbidden
	}

	prev := *job
	if fields.Title != nil {
		job.Title = *fields.Title
	}
	if fields.Company != nil {
		job.Company = *fields.Company
	}
	if fields.Location != nil {
		job.Location = *fields.Location
	}
	if fields.Description != nil {
		job.Description = *fields.Description
	}
	if fields.Requirements != nil {
		job.Requirements = append([]string(nil), (*fields.Requirements)...)
	}
	if fields.Salary != nil {
		job.Salary = *fields.Salary
	}
	if fields.Type != nil {
		job.Type = *fields.Type
	}
	if fields.Active != nil {
		job.Active = *fields.Active
	}

	if err := s.persistJobs(ctx); err != nil {
		*job = prev
		return nil, err
	}

	return cloneJob(job), nil
}

// DeleteJob removes a job owned by the session account and cascades: every
// application referencing the job goes with it, and the pruned application
// collection is persisted even when nothing matched.
func (s *Store) DeleteJob(ctx context.Context, id string) error {
	user := s.sessions.CurrentSession()
	if user == nil {
		return common.ErrNotAuthenticated
	}

	job := s.findJob(id)
	if job == nil {
		return common.ErrNotFound
	}
	if job.PostedBy != user.ID {
		return common.ErrForbidden
	}

	prevJobs, prevApps := s.jobs, s.applications

	jobs := make([]*models.Job, 0, len(s.jobs)-1)
	for _, j := range s.jobs {
		if j.ID != id {
			jobs = append(jobs, j)
		}
	}
	apps := make([]*models.Application, 0, len(s.applications))
	for _, a := range s.applications {
		if a.JobID != id {
			apps = append(apps, a)
		}
	}
	s.jobs, s.applications = jobs, apps

	// Both slots move in one durable write: a crash or write failure must
	// not leave the job gone with its applications still on disk.
	jobsRaw, err := encodeJobs(s.jobs)
	if err != nil {
		s.jobs, s.applications = prevJobs, prevApps
		return err
	}
	appsRaw, err := encodeApplications(s.applications)
	if err != nil {
		s.jobs, s.applications = prevJobs, prevApps
		return err
	}
	if err := s.slots.SetMany(ctx, map[string][]byte{
		storage.SlotJobs:         jobsRaw,
		storage.SlotApplications: appsRaw,
	}); err != nil {
		s.jobs, s.applications = prevJobs, prevApps
		return fmt.Errorf("persisting job delete: %w", err)
	}

	s.log.Info(ctx, "job deleted", "job_id", id, "cascaded", len(prevApps)-len(apps))
	return nil
}

// ApplyForJob submits the session account's application for a job. One
// submission per (job, applicant) pair; the second fails.
func (s *Store) ApplyForJob(ctx context.Context, jobID string, submission models.NewApplication) (*models.Application, error) {
	user := s.sessions.CurrentSession()
	if user == nil {
		return nil, common.ErrNotAuthenticated
	}
	if user.Role != models.RoleJobseeker {
		return nil, common.ErrForbidden
	}
	if s.findJob(jobID) == nil {
		return nil, common.ErrNotFound
	}
	for _, a := range s.applications {
		if a.JobID == jobID && a.ApplicantID == user.ID {
			return nil, common.ErrDuplicateApplication
		}
	}

	app := &models.Application{
		ID:            uuid.NewString(),
		JobID:         jobID,
		ApplicantID:   user.ID,
		ApplicantName: user.Name,
		CoverLetter:   submission.CoverLetter,
		Resume:        submission.Resume,
		Status:        models.StatusPending,
		AppliedAt:     s.now().UTC(),
	}

	s.applications = append(s.applications, app)
	if err := s.persistApplications(ctx); err != nil {
		s.applications = s.applications[:len(s.applications)-1]
		return nil, err
	}

	s.log.Info(ctx, "application submitted", "application_id", app.ID, "job_id", jobID)
	return cloneApplication(app), nil
}

// UpdateApplicationStatus sets an application's status. Only the employer
// who owns the parent job may do this; an application whose parent job is
// gone behaves the same as one owned by somebody else.
func (s *Store) UpdateApplicationStatus(ctx context.Context, applicationID string, status models.ApplicationStatus) (*models.Application, error) {
	user := s.sessions.CurrentSession()
	if user == nil {
		return nil, common.ErrNotAuthenticated
	}

	app := s.findApplication(applicationID)
	if app == nil {
		return nil, common.ErrNotFound
	}

	job := s.findJob(app.JobID)
	if job == nil || job.PostedBy != user.ID {
		return nil, common.ErrForbidden
	}

	if !s.transitionAllowed(app.Status, status) {
		return nil, fmt.Errorf("status %q: %w", status, common.ErrInvalidStatus)
	}

	prev := app.Status
	app.Status = status
	if err := s.persistApplications(ctx); err != nil {
		app.Status = prev
		return nil, err
	}

	s.log.Info(ctx, "application status updated", "application_id", app.ID, "status", status)
	return cloneApplication(app), nil
}

// transitionAllowed is the single hook deciding which status changes go
// through. Today every transition between enumerated statuses is allowed;
// a real state machine can be dropped in here without touching call sites.
func (s *Store) transitionAllowed(from, to models.ApplicationStatus) bool {
	return to.Valid()
}

func (s *Store) findJob(id string) *models.Job {
	for _, j := range s.jobs {
		if j.ID == id {
			return j
		}
	}
	return nil
}

func (s *Store) findApplication(id string) *models.Application {
	for _, a := range s.applications {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (s *Store) persistJobs(ctx context.Context) error {
	raw, err := encodeJobs(s.jobs)
	if err != nil {
		return err
	}
	if err := s.slots.Set(ctx, storage.SlotJobs, raw); err != nil {
		return fmt.Errorf("persisting jobs: %w", err)
	}
	return nil
}

func (s *Store) persistApplications(ctx context.Context) error {
	raw, err := encodeApplications(s.applications)
	if err != nil {
		return err
	}
	if err := s.slots.Set(ctx, storage.SlotApplications, raw); err != nil {
		return fmt.Errorf("persisting applications: %w", err)
	}
	return nil
}

func encodeJobs(jobs []*models.Job) ([]byte, error) {
	raw, err := json.Marshal(jobsSnapshot{Version: jobsSnapshotVersion, Jobs: jobs})
	if err != nil {
		return nil, fmt.Errorf("encoding jobs: %w", err)
	}
	return raw, nil
}

func encodeApplications(apps []*models.Application) ([]byte, error) {
	raw, err := json.Marshal(applicationsSnapshot{
		Version:      applicationsSnapshotVersion,
		Applications: apps,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding applications: %w", err)
	}
	return raw, nil
}

func matchesQuery(j *models.Job, query string) bool {
	return strings.Contains(strings.ToLower(j.Title), query) ||
		strings.Contains(strings.ToLower(j.Company), query) ||
		strings.Contains(strings.ToLower(j.Location), query)
}

func cloneJob(j *models.Job) *models.Job {
	c := *j
	c.Requirements = append([]string(nil), j.Requirements...)
	return &c
}

func cloneApplication(a *models.Application) *models.Application {
	c := *a
	return &c
}
