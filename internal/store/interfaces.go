package store

import (
	"context"

	"github.com/melodia-app/melodia-server/models"
)

// UserRepository persists and retrieves listener accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUsersByEmail returns every row matching the email. The slice is
	// returned as-is: deciding what a multi-row result means is up to the
	// caller (the authentication flow requires exactly one).
	FindUsersByEmail(ctx context.Context, email string) ([]models.User, error)

	// FindUserByID returns ErrNotFound for zero rows and ErrMultipleMatches
	// when the id unexpectedly matches several rows.
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

// ArtistRepository persists and retrieves performer accounts.
type ArtistRepository interface {
	CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error)
	UpdateArtist(ctx context.Context, artist models.Artist) (models.Artist, error)
	FindArtistsByEmail(ctx context.Context, email string) ([]models.Artist, error)
	FindArtistByID(ctx context.Context, id int64) (models.Artist, error)
}

// HistoryRepository appends login events to the role-specific history
// relations. Nothing in this service reads the history back; rows are
// write-once.
type HistoryRepository interface {
	RecordLogin(ctx context.Context, role string, record models.LoginRecord) (models.LoginRecord, error)
}

// SongRepository covers the song catalog and its associations with
// playlists and albums.
type SongRepository interface {
	CreateSong(ctx context.Context, song models.Song) (models.Song, error)
	UpdateSong(ctx context.Context, song models.Song) (models.Song, error)
	DeleteSong(ctx context.Context, id int64) (models.Song, error)
	FindSongByID(ctx context.Context, id int64) (models.Song, error)
	FindSongsByGenre(ctx context.Context, genreID int64) ([]models.Song, error)
	SearchSongs(ctx context.Context, word string) ([]models.Song, error)
	RandomSongs(ctx context.Context, limit int) ([]models.Song, error)

	SongsFromPlaylist(ctx context.Context, playlistID int64) ([]models.Song, error)
	SongsFromAlbum(ctx context.Context, albumID int64) ([]models.Song, error)
	SongsFromArtist(ctx context.Context, artistID int64) ([]models.Song, error)

	AddSongToPlaylist(ctx context.Context, songID, playlistID int64) error
	RemoveSongFromPlaylist(ctx context.Context, songID, playlistID int64) error
	AddSongToAlbum(ctx context.Context, songID, albumID int64) error
	RemoveSongFromAlbum(ctx context.Context, songID, albumID int64) error
	AddSongToArtist(ctx context.Context, songID, artistID int64) error
	RemoveSongFromArtist(ctx context.Context, songID, artistID int64) error

	// RecordReplay appends one playback event for the song. The chart only
	// moves when the materialized view is next refreshed.
	RecordReplay(ctx context.Context, songID int64) error

	// TopSongs serves the play-count chart from the top_songs materialized
	// view; RefreshTopSongs recomputes the view and is driven by the chart
	// worker.
	TopSongs(ctx context.Context) ([]models.RankedSong, error)
	RefreshTopSongs(ctx context.Context) error
}

// AlbumRepository covers album CRUD.
type AlbumRepository interface {
	CreateAlbum(ctx context.Context, album models.Album) (models.Album, error)
	UpdateAlbum(ctx context.Context, album models.Album) (models.Album, error)
	DeleteAlbum(ctx context.Context, id int64) (models.Album, error)
	FindAlbumByID(ctx context.Context, id int64) (models.Album, error)
	FindAlbumsByArtist(ctx context.Context, artistID int64) ([]models.Album, error)
}

// PlaylistRepository covers playlist CRUD.
type PlaylistRepository interface {
	CreatePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error)
	UpdatePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error)
	DeletePlaylist(ctx context.Context, id int64) (models.Playlist, error)
	FindPlaylistByID(ctx context.Context, id int64) (models.Playlist, error)
	FindPlaylistsByUser(ctx context.Context, userID int64) ([]models.Playlist, error)
}
