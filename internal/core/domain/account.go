package domain

import "time"

// Account is a customer organisation owned by exactly one user.
// Accounts are created via the API and never updated or deleted.
type Account struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
