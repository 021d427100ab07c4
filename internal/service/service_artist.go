package service

import (
	"context"
	"fmt"

	"github.com/melodia-app/melodia-server/internal/crypto"
	"github.com/melodia-app/melodia-server/internal/logger"
	"github.com/melodia-app/melodia-server/internal/store"
	"github.com/melodia-app/melodia-server/internal/validators"
	"github.com/melodia-app/melodia-server/models"
)

// artistService is the concrete implementation of ArtistService, mirroring
// the user service for the performer account table.
type artistService struct {
	artistRepository store.ArtistRepository
	hasher           crypto.PasswordHasher
	validator        validators.Validator
	logger           *logger.Logger
}

// NewArtistService constructs an ArtistService wired to the given
// repository and password hasher.
func NewArtistService(artistRepository store.ArtistRepository, hasher crypto.PasswordHasher, logger *logger.Logger) ArtistService {
	return &artistService{
		artistRepository: artistRepository,
		hasher:           hasher,
		validator:        validators.NewAccountValidator(),
		logger:           logger,
	}
}

// RegisterArtist creates a new performer account with a hashed credential.
func (s *artistService) RegisterArtist(ctx context.Context, artist models.Artist) (models.Artist, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, artist); err != nil {
		log.Error().Err(err).Str("func", "*artistService.RegisterArtist").Msg("invalid artist data provided")
		return models.Artist{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := s.hasher.Hash(artist.Password)
	if err != nil {
		log.Err(err).Str("func", "*artistService.RegisterArtist").Msg("password hashing failed")
		return models.Artist{}, fmt.Errorf("password hashing failed: %w", err)
	}
	artist.Password = ""
	artist.PasswordHash = hash

	registered, err := s.artistRepository.CreateArtist(ctx, artist)
	if err != nil {
		log.Err(err).Str("func", "*artistService.RegisterArtist").Msg("artist creation ended with error")
		return models.Artist{}, fmt.Errorf("artist creation ended with error: %w", err)
	}

	return registered, nil
}

// UpdateArtist applies a partial update to an existing account. A supplied
// password is re-hashed; absent fields stay untouched.
func (s *artistService) UpdateArtist(ctx context.Context, artist models.Artist) (models.Artist, error) {
	log := logger.FromContext(ctx)

	if artist.ArtistID <= 0 {
		return models.Artist{}, ErrInvalidDataProvided
	}

	if artist.Password != "" {
		hash, err := s.hasher.Hash(artist.Password)
		if err != nil {
			log.Err(err).Str("func", "*artistService.UpdateArtist").Msg("password hashing failed")
			return models.Artist{}, fmt.Errorf("password hashing failed: %w", err)
		}
		artist.Password = ""
		artist.PasswordHash = hash
	}

	updated, err := s.artistRepository.UpdateArtist(ctx, artist)
	if err != nil {
		log.Err(err).Str("func", "*artistService.UpdateArtist").Msg("artist update ended with error")
		return models.Artist{}, fmt.Errorf("artist update ended with error: %w", err)
	}

	return updated, nil
}

// GetArtist retrieves a single account by id.
func (s *artistService) GetArtist(ctx context.Context, id int64) (models.Artist, error) {
	log := logger.FromContext(ctx)

	found, err := s.artistRepository.FindArtistByID(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*artistService.GetArtist").Int64("id", id).Msg("artist search by id failed")
		return models.Artist{}, fmt.Errorf("artist search by id failed: %w", err)
	}

	return found, nil
}
