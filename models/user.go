package models

import "time"

// User represents a listener account stored in the "users" table.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the display name of the user. Unique within the users table.
	Username string `json:"username"`

	// Email is the login identifier of the user. Uniqueness is enforced
	// within the users table only; an artist account may carry the same email.
	Email string `json:"email"`

	// Password carries the plaintext password on inbound create/update
	// requests only. It is hashed before it ever reaches the store and is
	// never written back in responses.
	Password string `json:"password,omitempty"`

	// PasswordHash is the peppered bcrypt hash persisted in the database.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// ProfilePicture is an opaque URL to the user's avatar.
	ProfilePicture string `json:"profile_picture,omitempty"`

	// Biography is a free-form self description.
	Biography string `json:"biography,omitempty"`

	// Country is an upper-cased country name.
	Country string `json:"country,omitempty"`

	// Birth is the user's birth date in YYYY-MM-DD form. Parsing is left to
	// the database date type; a malformed value surfaces as a date-format
	// error at the store boundary.
	Birth string `json:"birth,omitempty"`

	// CreatedAt is the timestamp when the account row was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
