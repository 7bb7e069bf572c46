package models

import "time"

// Session is the client's persisted sign-in state: who is signed in and the
// bearer token issued for them. A cleared session means signed out.
type Session struct {
	UserID  int64     `json:"user_id"`
	Login   string    `json:"login"`
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}
