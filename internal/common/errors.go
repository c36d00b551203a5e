// Package common defines the sentinel errors shared by the identity and
// record stores. Callers match them with errors.Is; the stores never wrap
// one failure kind into another.
package common

import "errors"

var (
	// Session / authorization errors.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("forbidden")

	// Lookup errors.
	ErrNotFound = errors.New("not found")

	// Identity-specific errors.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Record-specific errors.
	ErrDuplicateApplication = errors.New("already applied for this job")
	ErrInvalidStatus        = errors.New("invalid application status")

	// Persistence errors.
	ErrBadSnapshot = errors.New("unsupported snapshot version")
)
