package models

import "time"

// Playlist represents a user-owned, optionally public collection of songs.
type Playlist struct {
	PlaylistID int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Name       string    `json:"name"`
	IsPublic   bool      `json:"is_public"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Playlist model.
func (p Playlist) TableName() string {
	return "playlists"
}
