package store

import "github.com/melodia-app/melodia-server/internal/logger"

// Repositories groups every PostgreSQL-backed repository behind its
// interface. Services receive this aggregate instead of individual
// repositories.
type Repositories struct {
	UserRepository     UserRepository
	ArtistRepository   ArtistRepository
	HistoryRepository  HistoryRepository
	SongRepository     SongRepository
	AlbumRepository    AlbumRepository
	PlaylistRepository PlaylistRepository
}

// NewRepositories wires every repository to the shared database handle.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db, log),
		ArtistRepository:   NewArtistRepository(db, log),
		HistoryRepository:  NewHistoryRepository(db, log),
		SongRepository:     NewSongRepository(db, log),
		AlbumRepository:    NewAlbumRepository(db, log),
		PlaylistRepository: NewPlaylistRepository(db, log),
	}
}
