package service

import (
	"context"
	"fmt"

	"github.com/melodia-app/melodia-server/internal/logger"
	"github.com/melodia-app/melodia-server/internal/store"
	"github.com/melodia-app/melodia-server/internal/validators"
	"github.com/melodia-app/melodia-server/models"
)

// defaultRandomLimit caps random listings when the caller asks for a
// non-positive count.
const defaultRandomLimit = 10

// songService is the concrete implementation of SongService.
type songService struct {
	songRepository store.SongRepository
	validator      validators.Validator
	logger         *logger.Logger
}

// NewSongService constructs a SongService wired to the given repository.
func NewSongService(songRepository store.SongRepository, logger *logger.Logger) SongService {
	return &songService{
		songRepository: songRepository,
		validator:      validators.NewCatalogValidator(),
		logger:         logger,
	}
}

// CreateSong validates and persists a new track.
func (s *songService) CreateSong(ctx context.Context, song models.Song) (models.Song, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, song); err != nil {
		log.Error().Err(err).Str("func", "*songService.CreateSong").Msg("invalid song data provided")
		return models.Song{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.songRepository.CreateSong(ctx, song)
	if err != nil {
		log.Err(err).Str("func", "*songService.CreateSong").Msg("song creation ended with error")
		return models.Song{}, fmt.Errorf("song creation ended with error: %w", err)
	}

	return created, nil
}

// UpdateSong applies a partial update to an existing track. Only supplied
// fields are validated; the id must identify an existing row.
func (s *songService) UpdateSong(ctx context.Context, song models.Song) (models.Song, error) {
	log := logger.FromContext(ctx)

	if song.SongID <= 0 {
		return models.Song{}, ErrInvalidDataProvided
	}
	if song.Name != "" {
		if err := s.validator.Validate(ctx, song, validators.FieldName); err != nil {
			return models.Song{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}
	if song.GenreID != 0 {
		if err := s.validator.Validate(ctx, song, validators.FieldGenreID); err != nil {
			return models.Song{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}

	updated, err := s.songRepository.UpdateSong(ctx, song)
	if err != nil {
		log.Err(err).Str("func", "*songService.UpdateSong").Msg("song update ended with error")
		return models.Song{}, fmt.Errorf("song update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteSong removes a track and returns its last stored state.
func (s *songService) DeleteSong(ctx context.Context, id int64) (models.Song, error) {
	deleted, err := s.songRepository.DeleteSong(ctx, id)
	if err != nil {
		return models.Song{}, fmt.Errorf("song deletion ended with error: %w", err)
	}
	return deleted, nil
}

// GetSong retrieves a single track by id.
func (s *songService) GetSong(ctx context.Context, id int64) (models.Song, error) {
	found, err := s.songRepository.FindSongByID(ctx, id)
	if err != nil {
		return models.Song{}, fmt.Errorf("song search by id failed: %w", err)
	}
	return found, nil
}

// SongsByGenre lists tracks of a genre.
func (s *songService) SongsByGenre(ctx context.Context, genreID int64) ([]models.Song, error) {
	return s.songRepository.FindSongsByGenre(ctx, genreID)
}

// SearchSongs lists tracks whose name contains the word.
func (s *songService) SearchSongs(ctx context.Context, word string) ([]models.Song, error) {
	if word == "" {
		return nil, ErrInvalidDataProvided
	}
	return s.songRepository.SearchSongs(ctx, word)
}

// RandomSongs lists up to limit tracks in random order, falling back to a
// sane default for non-positive limits.
func (s *songService) RandomSongs(ctx context.Context, limit int) ([]models.Song, error) {
	if limit <= 0 {
		limit = defaultRandomLimit
	}
	return s.songRepository.RandomSongs(ctx, limit)
}

// TopSongs returns the current play-count chart.
func (s *songService) TopSongs(ctx context.Context) ([]models.RankedSong, error) {
	return s.songRepository.TopSongs(ctx)
}

// RefreshTopSongs recomputes the chart. Called by the ranking worker.
func (s *songService) RefreshTopSongs(ctx context.Context) error {
	return s.songRepository.RefreshTopSongs(ctx)
}

// SongsOfPlaylist lists the tracks of a playlist.
func (s *songService) SongsOfPlaylist(ctx context.Context, playlistID int64) ([]models.Song, error) {
	return s.songRepository.SongsFromPlaylist(ctx, playlistID)
}

// SongsOfAlbum lists the tracks of an album.
func (s *songService) SongsOfAlbum(ctx context.Context, albumID int64) ([]models.Song, error) {
	return s.songRepository.SongsFromAlbum(ctx, albumID)
}

// SongsOfArtist lists the tracks credited to an artist.
func (s *songService) SongsOfArtist(ctx context.Context, artistID int64) ([]models.Song, error) {
	return s.songRepository.SongsFromArtist(ctx, artistID)
}

// AddSongToPlaylist links a track to a playlist.
func (s *songService) AddSongToPlaylist(ctx context.Context, songID, playlistID int64) error {
	if songID <= 0 || playlistID <= 0 {
		return ErrInvalidDataProvided
	}
	return s.songRepository.AddSongToPlaylist(ctx, songID, playlistID)
}

// RemoveSongFromPlaylist unlinks a track from a playlist.
func (s *songService) RemoveSongFromPlaylist(ctx context.Context, songID, playlistID int64) error {
	if songID <= 0 || playlistID <= 0 {
		return ErrInvalidDataProvided
	}
	return s.songRepository.RemoveSongFromPlaylist(ctx, songID, playlistID)
}

// AddSongToAlbum links a track to an album.
func (s *songService) AddSongToAlbum(ctx context.Context, songID, albumID int64) error {
	if songID <= 0 || albumID <= 0 {
		return ErrInvalidDataProvided
	}
	return s.songRepository.AddSongToAlbum(ctx, songID, albumID)
}

// RemoveSongFromAlbum unlinks a track from an album.
func (s *songService) RemoveSongFromAlbum(ctx context.Context, songID, albumID int64) error {
	if songID <= 0 || albumID <= 0 {
		return ErrInvalidDataProvided
	}
	return s.songRepository.RemoveSongFromAlbum(ctx, songID, albumID)
}

// AddSongToArtist credits a track to an artist.
func (s *songService) AddSongToArtist(ctx context.Context, songID, artistID int64) error {
	if songID <= 0 || artistID <= 0 {
		return ErrInvalidDataProvided
	}
	return s.songRepository.AddSongToArtist(ctx, songID, artistID)
}

// RemoveSongFromArtist removes a track credit from an artist.
func (s *songService) RemoveSongFromArtist(ctx context.Context, songID, artistID int64) error {
	if songID <= 0 || artistID <= 0 {
		return ErrInvalidDataProvided
	}
	return s.songRepository.RemoveSongFromArtist(ctx, songID, artistID)
}

// ReplaySong records one playback of the track. This is the only write that
// feeds the play-count chart.
func (s *songService) ReplaySong(ctx context.Context, songID int64) error {
	if songID <= 0 {
		return ErrInvalidDataProvided
	}
	return s.songRepository.RecordReplay(ctx, songID)
}
