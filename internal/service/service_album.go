package service

import (
	"context"
	"fmt"

	"github.com/melodia-app/melodia-server/internal/logger"
	"github.com/melodia-app/melodia-server/internal/store"
	"github.com/melodia-app/melodia-server/internal/validators"
	"github.com/melodia-app/melodia-server/models"
)

// albumService is the concrete implementation of AlbumService.
type albumService struct {
	albumRepository store.AlbumRepository
	validator       validators.Validator
	logger          *logger.Logger
}

// NewAlbumService constructs an AlbumService wired to the given repository.
func NewAlbumService(albumRepository store.AlbumRepository, logger *logger.Logger) AlbumService {
	return &albumService{
		albumRepository: albumRepository,
		validator:       validators.NewCatalogValidator(),
		logger:          logger,
	}
}

// CreateAlbum validates and persists a new album.
func (s *albumService) CreateAlbum(ctx context.Context, album models.Album) (models.Album, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, album); err != nil {
		log.Error().Err(err).Str("func", "*albumService.CreateAlbum").Msg("invalid album data provided")
		return models.Album{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.albumRepository.CreateAlbum(ctx, album)
	if err != nil {
		log.Err(err).Str("func", "*albumService.CreateAlbum").Msg("album creation ended with error")
		return models.Album{}, fmt.Errorf("album creation ended with error: %w", err)
	}

	return created, nil
}

// UpdateAlbum applies a partial update to an existing album.
func (s *albumService) UpdateAlbum(ctx context.Context, album models.Album) (models.Album, error) {
	if album.AlbumID <= 0 {
		return models.Album{}, ErrInvalidDataProvided
	}

	updated, err := s.albumRepository.UpdateAlbum(ctx, album)
	if err != nil {
		return models.Album{}, fmt.Errorf("album update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteAlbum removes an album and returns its last stored state.
func (s *albumService) DeleteAlbum(ctx context.Context, id int64) (models.Album, error) {
	deleted, err := s.albumRepository.DeleteAlbum(ctx, id)
	if err != nil {
		return models.Album{}, fmt.Errorf("album deletion ended with error: %w", err)
	}
	return deleted, nil
}

// GetAlbum retrieves a single album by id.
func (s *albumService) GetAlbum(ctx context.Context, id int64) (models.Album, error) {
	found, err := s.albumRepository.FindAlbumByID(ctx, id)
	if err != nil {
		return models.Album{}, fmt.Errorf("album search by id failed: %w", err)
	}
	return found, nil
}

// AlbumsOfArtist lists every album credited to the artist.
func (s *albumService) AlbumsOfArtist(ctx context.Context, artistID int64) ([]models.Album, error) {
	return s.albumRepository.FindAlbumsByArtist(ctx, artistID)
}
