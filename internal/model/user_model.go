package model

import "time"

// User is the identity record behind the /auth and /user endpoints.
// ID is the store's row id; UserID is the stable external identifier
// embedded in tokens and referenced by registered_auctions lists.
type User struct {
	ID                 int64     `json:"-"`
	UserID             string    `json:"user_id"`
	Email              string    `json:"email"`
	FullName           string    `json:"full_name"`
	Phone              string    `json:"phone"`
	Company            *string   `json:"company,omitempty"`
	PasswordHash       string    `json:"-"` // never JSON-encode
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	RegisteredAuctions []string  `json:"registered_auctions"`
}
