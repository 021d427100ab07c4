package service

import (
	"context"
	"testing"

	"github.com/melodia-app/melodia-server/internal/logger"
	"github.com/melodia-app/melodia-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.SongRepository
// ─────────────────────────────────────────────

type mockSongRepository struct {
	createFn  func(ctx context.Context, song models.Song) (models.Song, error)
	searchFn  func(ctx context.Context, word string) ([]models.Song, error)
	randomFn  func(ctx context.Context, limit int) ([]models.Song, error)
	topFn     func(ctx context.Context) ([]models.RankedSong, error)
	refreshFn func(ctx context.Context) error
	addFn     func(ctx context.Context, songID, targetID int64) error
	replayFn  func(ctx context.Context, songID int64) error

	refreshHit int
}

func (m *mockSongRepository) CreateSong(ctx context.Context, song models.Song) (models.Song, error) {
	if m.createFn != nil {
		return m.createFn(ctx, song)
	}
	return song, nil
}

func (m *mockSongRepository) UpdateSong(ctx context.Context, song models.Song) (models.Song, error) {
	return song, nil
}

func (m *mockSongRepository) DeleteSong(ctx context.Context, id int64) (models.Song, error) {
	return models.Song{SongID: id}, nil
}

func (m *mockSongRepository) FindSongByID(ctx context.Context, id int64) (models.Song, error) {
	return models.Song{SongID: id}, nil
}

func (m *mockSongRepository) FindSongsByGenre(ctx context.Context, genreID int64) ([]models.Song, error) {
	return nil, nil
}

func (m *mockSongRepository) SearchSongs(ctx context.Context, word string) ([]models.Song, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, word)
	}
	return nil, nil
}

func (m *mockSongRepository) RandomSongs(ctx context.Context, limit int) ([]models.Song, error) {
	if m.randomFn != nil {
		return m.randomFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockSongRepository) SongsFromPlaylist(ctx context.Context, playlistID int64) ([]models.Song, error) {
	return nil, nil
}

func (m *mockSongRepository) SongsFromAlbum(ctx context.Context, albumID int64) ([]models.Song, error) {
	return nil, nil
}

func (m *mockSongRepository) SongsFromArtist(ctx context.Context, artistID int64) ([]models.Song, error) {
	return nil, nil
}

func (m *mockSongRepository) AddSongToPlaylist(ctx context.Context, songID, playlistID int64) error {
	if m.addFn != nil {
		return m.addFn(ctx, songID, playlistID)
	}
	return nil
}

func (m *mockSongRepository) RemoveSongFromPlaylist(ctx context.Context, songID, playlistID int64) error {
	return nil
}

func (m *mockSongRepository) AddSongToAlbum(ctx context.Context, songID, albumID int64) error {
	return nil
}

func (m *mockSongRepository) RemoveSongFromAlbum(ctx context.Context, songID, albumID int64) error {
	return nil
}

func (m *mockSongRepository) AddSongToArtist(ctx context.Context, songID, artistID int64) error {
	return nil
}

func (m *mockSongRepository) RemoveSongFromArtist(ctx context.Context, songID, artistID int64) error {
	return nil
}

func (m *mockSongRepository) RecordReplay(ctx context.Context, songID int64) error {
	if m.replayFn != nil {
		return m.replayFn(ctx, songID)
	}
	return nil
}

func (m *mockSongRepository) TopSongs(ctx context.Context) ([]models.RankedSong, error) {
	if m.topFn != nil {
		return m.topFn(ctx)
	}
	return nil, nil
}

func (m *mockSongRepository) RefreshTopSongs(ctx context.Context) error {
	m.refreshHit++
	if m.refreshFn != nil {
		return m.refreshFn(ctx)
	}
	return nil
}

// ─────────────────────────────────────────────
// Tests: songService
// ─────────────────────────────────────────────

func TestSongService_CreateSong_InvalidPayloadNeverReachesStore(t *testing.T) {
	repo := &mockSongRepository{
		createFn: func(context.Context, models.Song) (models.Song, error) {
			t.Fatal("repository must not be called for an invalid song")
			return models.Song{}, nil
		},
	}
	svc := NewSongService(repo, logger.Nop())

	_, err := svc.CreateSong(context.Background(), models.Song{Name: ""})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSongService_SearchSongs_EmptyWordRejected(t *testing.T) {
	svc := NewSongService(&mockSongRepository{}, logger.Nop())

	_, err := svc.SearchSongs(context.Background(), "")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSongService_RandomSongs_NonPositiveLimitDefaults(t *testing.T) {
	var gotLimit int
	repo := &mockSongRepository{
		randomFn: func(_ context.Context, limit int) ([]models.Song, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	svc := NewSongService(repo, logger.Nop())

	_, err := svc.RandomSongs(context.Background(), -3)

	require.NoError(t, err)
	assert.Equal(t, defaultRandomLimit, gotLimit)
}

func TestSongService_AddSongToPlaylist_RejectsNonPositiveIDs(t *testing.T) {
	repo := &mockSongRepository{
		addFn: func(context.Context, int64, int64) error {
			t.Fatal("repository must not be called with invalid ids")
			return nil
		},
	}
	svc := NewSongService(repo, logger.Nop())

	err := svc.AddSongToPlaylist(context.Background(), 0, 5)

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSongService_TopSongs_PassThrough(t *testing.T) {
	chart := []models.RankedSong{
		{Song: models.Song{SongID: 2, Name: "second"}, PlayCount: 90},
		{Song: models.Song{SongID: 1, Name: "first"}, PlayCount: 120},
	}
	repo := &mockSongRepository{
		topFn: func(context.Context) ([]models.RankedSong, error) {
			return chart, nil
		},
	}
	svc := NewSongService(repo, logger.Nop())

	got, err := svc.TopSongs(context.Background())

	require.NoError(t, err)
	// ordering is the store's responsibility; the service must not reorder
	assert.Equal(t, chart, got)
}

func TestSongService_RefreshTopSongs_Delegates(t *testing.T) {
	repo := &mockSongRepository{}
	svc := NewSongService(repo, logger.Nop())

	require.NoError(t, svc.RefreshTopSongs(context.Background()))
	assert.Equal(t, 1, repo.refreshHit)
}

func TestSongService_ReplaySong_RejectsNonPositiveID(t *testing.T) {
	repo := &mockSongRepository{
		replayFn: func(context.Context, int64) error {
			t.Fatal("repository must not be called with an invalid id")
			return nil
		},
	}
	svc := NewSongService(repo, logger.Nop())

	err := svc.ReplaySong(context.Background(), 0)

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSongService_ReplaySong_Delegates(t *testing.T) {
	var gotSongID int64
	repo := &mockSongRepository{
		replayFn: func(_ context.Context, songID int64) error {
			gotSongID = songID
			return nil
		},
	}
	svc := NewSongService(repo, logger.Nop())

	require.NoError(t, svc.ReplaySong(context.Background(), 41))
	assert.Equal(t, int64(41), gotSongID)
}
