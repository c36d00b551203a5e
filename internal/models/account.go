// Package models defines the entities owned by the identity and record
// stores. Cross-references between entities are by id only.
package models

// Role determines what an account may do: employers post and manage jobs,
// jobseekers apply to them. Role is fixed at registration.
type Role string

const (
	RoleJobseeker Role = "jobseeker"
	RoleEmployer  Role = "employer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleJobseeker || r == RoleEmployer
}

// Account is a registered identity. Salt and Verifier are credential
// material and must never leave the identity store: session snapshots are
// exposed through Sanitized copies.
type Account struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`

	// Employer-only.
	Company string `json:"company,omitempty"`

	// Jobseeker-only.
	Title  string   `json:"title,omitempty"`
	Skills []string `json:"skills,omitempty"`

	About string `json:"about,omitempty"`

	Salt     []byte `json:"salt,omitempty"`
	Verifier []byte `json:"verifier,omitempty"`
}

// Sanitized returns a copy of the account with credential material removed.
func (a *Account) Sanitized() *Account {
	c := *a
	c.Salt = nil
	c.Verifier = nil
	c.Skills = append([]string(nil), a.Skills...)
	return &c
}

// NewAccount carries the registration profile. The id, salt, and verifier
// are assigned by the identity store.
type NewAccount struct {
	Name    string
	Email   string
	Role    Role
	Company string
	Title   string
	Skills  []string
	About   string
}

// ProfileUpdate merges into the current account; nil fields are left
// untouched. Email and role are deliberately absent.
type ProfileUpdate struct {
	Name    *string
	Company *string
	Title   *string
	Skills  *[]string
	About   *string
}
