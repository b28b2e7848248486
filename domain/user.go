// Package domain contains core concepts of the ChatSphere data model.
// This file defines User accounts and the session snapshot kept for them.
// No storage, rendering, or transport logic should be added here.
package domain

// ID identifies an entity. Values come from the store's monotonic
// counter, so they are unique within one state tree.
type ID int64

// User is an account record. Passwords are stored verbatim and
// compared by exact match.
type User struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionUser is the authenticated-user snapshot stored in the session.
// It deliberately omits the password.
type SessionUser struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
}
