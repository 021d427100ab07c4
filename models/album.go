package models

// Album represents a collection of songs published by an artist.
type Album struct {
	AlbumID     int64  `json:"id"`
	GenreID     int64  `json:"genre_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// TableName returns the name of the database table
// associated with the Album model.
func (a Album) TableName() string {
	return "albums"
}
