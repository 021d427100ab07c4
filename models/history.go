package models

import "time"

// LoginRecord captures a single successful login event. Records are
// append-only: the authentication flow creates them and nothing in this
// service ever updates or deletes them.
//
// The record is stored in a role-specific relation (histories_user or
// histories_artist) selected by the role of the authenticated identity.
type LoginRecord struct {
	// OwnerID is the account's primary key in its role-specific table.
	OwnerID int64 `json:"owner_id"`

	// IP is the client address the login request originated from.
	IP string `json:"ip"`

	// CreatedAt is assigned by the database at insert time.
	CreatedAt time.Time `json:"created_at"`
}
