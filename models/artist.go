package models

import "time"

// Artist represents a performer account stored in the "artists" table.
// It is a separate relation from users: email uniqueness is enforced per
// table, so an artist and a user may legitimately share an email.
type Artist struct {
	// ArtistID is the internal unique identifier of the artist.
	ArtistID int64 `json:"id"`

	// Name is the artist's public name. Unique within the artists table.
	Name string `json:"name"`

	// Email is the login identifier of the artist.
	Email string `json:"email"`

	// Password carries the plaintext password on inbound create/update
	// requests only; it is never persisted or echoed back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the peppered bcrypt hash persisted in the database.
	PasswordHash string `json:"-"`

	// Image is an opaque URL to the artist's picture.
	Image string `json:"image,omitempty"`

	// Country is an upper-cased country name.
	Country string `json:"country,omitempty"`

	// CreatedAt is the timestamp when the account row was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Artist model.
func (a Artist) TableName() string {
	return "artists"
}
