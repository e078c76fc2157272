package handler

type meResponse struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Plan         string `json:"plan"`
	ContactLimit *int   `json:"contactLimit"`
	ContactsUsed int    `json:"contactsUsed"`
}

type upgradeResponse struct {
	Plan string `json:"plan"`
}
