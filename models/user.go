package models

import "time"

// User is an account record. PasswordHash is the bcrypt hash stored
// server-side; Password is only ever populated on inbound auth requests and
// is never persisted or echoed back.
type User struct {
	UserID       int64      `json:"user_id,omitempty"`
	Login        string     `json:"login"`
	Password     string     `json:"password,omitempty"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}
