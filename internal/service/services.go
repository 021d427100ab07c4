package service

import (
	"github.com/melodia-app/melodia-server/internal/config"
	"github.com/melodia-app/melodia-server/internal/crypto"
	"github.com/melodia-app/melodia-server/internal/logger"
	"github.com/melodia-app/melodia-server/internal/store"
)

type Services struct {
	AuthService     AuthService
	UserService     UserService
	ArtistService   ArtistService
	SongService     SongService
	AlbumService    AlbumService
	PlaylistService PlaylistService
}

func NewServices(repos *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewPasswordHasher(cfg.App)
	return &Services{
		AuthService:     NewAuthService(repos.UserRepository, repos.ArtistRepository, repos.HistoryRepository, hasher, cfg.App, logger),
		UserService:     NewUserService(repos.UserRepository, hasher, logger),
		ArtistService:   NewArtistService(repos.ArtistRepository, hasher, logger),
		SongService:     NewSongService(repos.SongRepository, logger),
		AlbumService:    NewAlbumService(repos.AlbumRepository, logger),
		PlaylistService: NewPlaylistService(repos.PlaylistRepository, logger),
	}
}
