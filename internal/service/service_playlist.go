package service

import (
	"context"
	"fmt"

	"github.com/melodia-app/melodia-server/internal/logger"
	"github.com/melodia-app/melodia-server/internal/store"
	"github.com/melodia-app/melodia-server/internal/validators"
	"github.com/melodia-app/melodia-server/models"
)

// playlistService is the concrete implementation of PlaylistService.
type playlistService struct {
	playlistRepository store.PlaylistRepository
	validator          validators.Validator
	logger             *logger.Logger
}

// NewPlaylistService constructs a PlaylistService wired to the given
// repository.
func NewPlaylistService(playlistRepository store.PlaylistRepository, logger *logger.Logger) PlaylistService {
	return &playlistService{
		playlistRepository: playlistRepository,
		validator:          validators.NewCatalogValidator(),
		logger:             logger,
	}
}

// CreatePlaylist validates and persists a new playlist.
func (s *playlistService) CreatePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, playlist); err != nil {
		log.Error().Err(err).Str("func", "*playlistService.CreatePlaylist").Msg("invalid playlist data provided")
		return models.Playlist{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.playlistRepository.CreatePlaylist(ctx, playlist)
	if err != nil {
		log.Err(err).Str("func", "*playlistService.CreatePlaylist").Msg("playlist creation ended with error")
		return models.Playlist{}, fmt.Errorf("playlist creation ended with error: %w", err)
	}

	return created, nil
}

// UpdatePlaylist applies a partial update to an existing playlist.
func (s *playlistService) UpdatePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error) {
	if playlist.PlaylistID <= 0 {
		return models.Playlist{}, ErrInvalidDataProvided
	}

	updated, err := s.playlistRepository.UpdatePlaylist(ctx, playlist)
	if err != nil {
		return models.Playlist{}, fmt.Errorf("playlist update ended with error: %w", err)
	}

	return updated, nil
}

// DeletePlaylist removes a playlist and returns its last stored state.
func (s *playlistService) DeletePlaylist(ctx context.Context, id int64) (models.Playlist, error) {
	deleted, err := s.playlistRepository.DeletePlaylist(ctx, id)
	if err != nil {
		return models.Playlist{}, fmt.Errorf("playlist deletion ended with error: %w", err)
	}
	return deleted, nil
}

// GetPlaylist retrieves a single playlist by id.
func (s *playlistService) GetPlaylist(ctx context.Context, id int64) (models.Playlist, error) {
	found, err := s.playlistRepository.FindPlaylistByID(ctx, id)
	if err != nil {
		return models.Playlist{}, fmt.Errorf("playlist search by id failed: %w", err)
	}
	return found, nil
}

// PlaylistsOfUser lists every playlist owned by the user.
func (s *playlistService) PlaylistsOfUser(ctx context.Context, userID int64) ([]models.Playlist, error) {
	return s.playlistRepository.FindPlaylistsByUser(ctx, userID)
}
