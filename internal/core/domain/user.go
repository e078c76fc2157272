package domain

// DefaultUserID is the demo identity every request falls back to when no
// valid x-user-id override is present.
const DefaultUserID int64 = 1

// User models a tenant of the CRM. Users are provisioned out of band
// (seed data); the API only ever mutates the plan, and only upwards.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Plan  string `json:"plan"`
}
