package models

// Admin is the single principal allowed to manage content.
type Admin struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don’t expose hash
	Email        string `json:"email"`
}

// Principal is the identity embedded in a session token.
type Principal struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}
