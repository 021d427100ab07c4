package models

// Song represents a track in the catalog. Image and MP3 are opaque URLs;
// this service never stores media assets itself.
type Song struct {
	SongID  int64  `json:"id"`
	GenreID int64  `json:"genre_id"`
	Name    string `json:"name"`
	Lyrics  string `json:"lyrics,omitempty"`
	Time    string `json:"time,omitempty"`
	Image   string `json:"image,omitempty"`
	MP3     string `json:"mp3,omitempty"`
}

// RankedSong is a catalog track joined with its accumulated play count,
// as served by the top-charts ranking.
type RankedSong struct {
	Song
	PlayCount int64 `json:"play_count"`
}

// TableName returns the name of the database table
// associated with the Song model.
func (s Song) TableName() string {
	return "songs"
}
