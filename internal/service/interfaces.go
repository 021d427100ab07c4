package service

import (
	"context"

	"github.com/melodia-app/melodia-server/models"
)

// AuthService covers the credential verification and session issuance flow.
type AuthService interface {
	// Resolve verifies the supplied credentials against both account
	// tables, checking users before artists. A nil identity with a nil
	// error means the credentials did not match any single account;
	// a non-nil error always signals an infrastructure failure.
	Resolve(ctx context.Context, email, password string) (*models.Identity, error)

	// Login records the login event for the identity and issues a signed
	// session token.
	Login(ctx context.Context, identity models.Identity, clientIP string) (models.Token, error)

	// ParseToken validates a raw JWT string and returns its decoded form.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService covers listener account registration and maintenance.
type UserService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
}

// ArtistService covers performer account registration and maintenance.
type ArtistService interface {
	RegisterArtist(ctx context.Context, artist models.Artist) (models.Artist, error)
	UpdateArtist(ctx context.Context, artist models.Artist) (models.Artist, error)
	GetArtist(ctx context.Context, id int64) (models.Artist, error)
}

// SongService covers the track catalog and its associations.
type SongService interface {
	CreateSong(ctx context.Context, song models.Song) (models.Song, error)
	UpdateSong(ctx context.Context, song models.Song) (models.Song, error)
	DeleteSong(ctx context.Context, id int64) (models.Song, error)
	GetSong(ctx context.Context, id int64) (models.Song, error)
	SongsByGenre(ctx context.Context, genreID int64) ([]models.Song, error)
	SearchSongs(ctx context.Context, word string) ([]models.Song, error)
	RandomSongs(ctx context.Context, limit int) ([]models.Song, error)
	TopSongs(ctx context.Context) ([]models.RankedSong, error)
	RefreshTopSongs(ctx context.Context) error

	SongsOfPlaylist(ctx context.Context, playlistID int64) ([]models.Song, error)
	SongsOfAlbum(ctx context.Context, albumID int64) ([]models.Song, error)
	SongsOfArtist(ctx context.Context, artistID int64) ([]models.Song, error)

	AddSongToPlaylist(ctx context.Context, songID, playlistID int64) error
	RemoveSongFromPlaylist(ctx context.Context, songID, playlistID int64) error
	AddSongToAlbum(ctx context.Context, songID, albumID int64) error
	RemoveSongFromAlbum(ctx context.Context, songID, albumID int64) error
	AddSongToArtist(ctx context.Context, songID, artistID int64) error
	RemoveSongFromArtist(ctx context.Context, songID, artistID int64) error

	// ReplaySong records one playback of the track, feeding the play-count
	// chart.
	ReplaySong(ctx context.Context, songID int64) error
}

// AlbumService covers album maintenance.
type AlbumService interface {
	CreateAlbum(ctx context.Context, album models.Album) (models.Album, error)
	UpdateAlbum(ctx context.Context, album models.Album) (models.Album, error)
	DeleteAlbum(ctx context.Context, id int64) (models.Album, error)
	GetAlbum(ctx context.Context, id int64) (models.Album, error)
	AlbumsOfArtist(ctx context.Context, artistID int64) ([]models.Album, error)
}

// PlaylistService covers playlist maintenance.
type PlaylistService interface {
	CreatePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error)
	UpdatePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error)
	DeletePlaylist(ctx context.Context, id int64) (models.Playlist, error)
	GetPlaylist(ctx context.Context, id int64) (models.Playlist, error)
	PlaylistsOfUser(ctx context.Context, userID int64) ([]models.Playlist, error)
}
