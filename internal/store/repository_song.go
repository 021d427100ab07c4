package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/melodia-app/melodia-server/internal/logger"
	"github.com/melodia-app/melodia-server/models"
)

// songRepository is the PostgreSQL-backed implementation of [SongRepository].
// Catalog listings for playlists, albums and artists are read through their
// dedicated views; the top chart is read from the top_songs materialized
// view, which the ranking worker refreshes periodically.
type songRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSongRepository constructs a [SongRepository] backed by the provided
// database connection and logger.
func NewSongRepository(db *DB, logger *logger.Logger) SongRepository {
	logger.Debug().Msg("creating song repository")
	return &songRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSong persists a new track and returns it with its assigned id.
// A genre id pointing at no row surfaces as [ErrMissingReference].
func (r *songRepository) CreateSong(ctx context.Context, song models.Song) (models.Song, error) {
	log := logger.FromContext(ctx)

	err := r.db.inTransaction(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, createSong,
			song.GenreID, song.Name, song.Lyrics, song.Time, song.Image, song.MP3)

		if err := row.Scan(&song.SongID, &song.GenreID, &song.Name, &song.Lyrics,
			&song.Time, &song.Image, &song.MP3); err != nil {
			log.Err(err).Str("func", "*songRepository.CreateSong").Msg("error: creating song")
			return translatePostgresError(err)
		}
		return nil
	})
	if err != nil {
		return models.Song{}, err
	}

	return song, nil
}

// UpdateSong applies a partial update to the track identified by
// song.SongID. Only non-zero fields are written.
func (r *songRepository) UpdateSong(ctx context.Context, song models.Song) (models.Song, error) {
	log := logger.FromContext(ctx)

	changes := map[string]any{}
	if song.GenreID != 0 {
		changes["genre_id"] = song.GenreID
	}
	if song.Name != "" {
		changes["name"] = song.Name
	}
	if song.Lyrics != "" {
		changes["lyrics"] = song.Lyrics
	}
	if song.Time != "" {
		changes["time"] = song.Time
	}
	if song.Image != "" {
		changes["image"] = song.Image
	}
	if song.MP3 != "" {
		changes["mp3"] = song.MP3
	}
	if len(changes) == 0 {
		return models.Song{}, ErrNothingToUpdate
	}

	query, args, err := sq.Update(song.TableName()).
		PlaceholderFormat(sq.Dollar).
		SetMap(changes).
		Where(sq.Eq{"song_id": song.SongID}).
		Suffix(`RETURNING song_id, genre_id, name, lyrics, time, image, mp3`).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*songRepository.UpdateSong").Msg("error: building update query")
		return models.Song{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Song
	err = r.db.inTransaction(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, query, args...)
		if err := row.Scan(&updated.SongID, &updated.GenreID, &updated.Name, &updated.Lyrics,
			&updated.Time, &updated.Image, &updated.MP3); err != nil {
			log.Err(err).Str("func", "*songRepository.UpdateSong").Msg("error: updating song")
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return translatePostgresError(err)
		}
		return nil
	})
	if err != nil {
		return models.Song{}, err
	}

	return updated, nil
}

// DeleteSong removes the track and returns its last stored state.
// A missing track surfaces as [ErrNotFound].
func (r *songRepository) DeleteSong(ctx context.Context, id int64) (models.Song, error) {
	log := logger.FromContext(ctx)

	var deleted models.Song
	err := r.db.inTransaction(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, deleteSong, id)
		if err := row.Scan(&deleted.SongID, &deleted.GenreID, &deleted.Name, &deleted.Lyrics,
			&deleted.Time, &deleted.Image, &deleted.MP3); err != nil {
			log.Err(err).Str("func", "*songRepository.DeleteSong").Msg("error: deleting song")
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return translatePostgresError(err)
		}
		return nil
	})
	if err != nil {
		return models.Song{}, err
	}

	return deleted, nil
}

// FindSongByID retrieves the single track with the given id, returning
// [ErrNotFound] for zero rows and [ErrMultipleMatches] for several.
func (r *songRepository) FindSongByID(ctx context.Context, id int64) (models.Song, error) {
	found, err := r.listSongs(ctx, "*songRepository.FindSongByID", findSongByID, id)
	if err != nil {
		return models.Song{}, err
	}

	switch len(found) {
	case 0:
		return models.Song{}, ErrNotFound
	case 1:
		return found[0], nil
	default:
		return models.Song{}, ErrMultipleMatches
	}
}

// FindSongsByGenre lists every track in the given genre.
func (r *songRepository) FindSongsByGenre(ctx context.Context, genreID int64) ([]models.Song, error) {
	return r.listSongs(ctx, "*songRepository.FindSongsByGenre", findSongsByGenre, genreID)
}

// SearchSongs lists tracks whose name contains the word, case-insensitively.
func (r *songRepository) SearchSongs(ctx context.Context, word string) ([]models.Song, error) {
	return r.listSongs(ctx, "*songRepository.SearchSongs", searchSongs, word)
}

// RandomSongs returns up to limit tracks in random order. Randomisation
// happens in the database so concurrent calls see independent shuffles.
func (r *songRepository) RandomSongs(ctx context.Context, limit int) ([]models.Song, error) {
	return r.listSongs(ctx, "*songRepository.RandomSongs", randomSongs, limit)
}

// SongsFromPlaylist lists the tracks of a playlist via its catalog view.
func (r *songRepository) SongsFromPlaylist(ctx context.Context, playlistID int64) ([]models.Song, error) {
	return r.listSongs(ctx, "*songRepository.SongsFromPlaylist", songsFromPlaylist, playlistID)
}

// SongsFromAlbum lists the tracks of an album via its catalog view.
func (r *songRepository) SongsFromAlbum(ctx context.Context, albumID int64) ([]models.Song, error) {
	return r.listSongs(ctx, "*songRepository.SongsFromAlbum", songsFromAlbum, albumID)
}

// SongsFromArtist lists the tracks credited to an artist via its catalog view.
func (r *songRepository) SongsFromArtist(ctx context.Context, artistID int64) ([]models.Song, error) {
	return r.listSongs(ctx, "*songRepository.SongsFromArtist", songsFromArtist, artistID)
}

// AddSongToPlaylist links a track to a playlist. A duplicate link surfaces
// as [ErrAlreadyExists]; an unknown song or playlist as [ErrMissingReference].
func (r *songRepository) AddSongToPlaylist(ctx context.Context, songID, playlistID int64) error {
	return r.execAssociation(ctx, "*songRepository.AddSongToPlaylist", addSongToPlaylist, false, songID, playlistID)
}

// RemoveSongFromPlaylist unlinks a track from a playlist. A link that does
// not exist surfaces as [ErrNotFound].
func (r *songRepository) RemoveSongFromPlaylist(ctx context.Context, songID, playlistID int64) error {
	return r.execAssociation(ctx, "*songRepository.RemoveSongFromPlaylist", removeSongFromPlaylist, true, songID, playlistID)
}

// AddSongToAlbum links a track to an album.
func (r *songRepository) AddSongToAlbum(ctx context.Context, songID, albumID int64) error {
	return r.execAssociation(ctx, "*songRepository.AddSongToAlbum", addSongToAlbum, false, songID, albumID)
}

// RemoveSongFromAlbum unlinks a track from an album.
func (r *songRepository) RemoveSongFromAlbum(ctx context.Context, songID, albumID int64) error {
	return r.execAssociation(ctx, "*songRepository.RemoveSongFromAlbum", removeSongFromAlbum, true, songID, albumID)
}

// AddSongToArtist credits a track to an artist. A duplicate credit surfaces
// as [ErrAlreadyExists]; an unknown song or artist as [ErrMissingReference].
func (r *songRepository) AddSongToArtist(ctx context.Context, songID, artistID int64) error {
	return r.execAssociation(ctx, "*songRepository.AddSongToArtist", addSongToArtist, false, songID, artistID)
}

// RemoveSongFromArtist removes a track credit from an artist. A credit that
// does not exist surfaces as [ErrNotFound].
func (r *songRepository) RemoveSongFromArtist(ctx context.Context, songID, artistID int64) error {
	return r.execAssociation(ctx, "*songRepository.RemoveSongFromArtist", removeSongFromArtist, true, songID, artistID)
}

// RecordReplay appends one playback event for the song. An unknown song id
// surfaces as [ErrMissingReference]. Replays accumulate until the next
// top_songs refresh; nothing reads them directly.
func (r *songRepository) RecordReplay(ctx context.Context, songID int64) error {
	return r.execAssociation(ctx, "*songRepository.RecordReplay", recordSongReplay, false, songID)
}

// TopSongs returns the chart rows from the top_songs materialized view,
// already ordered by play count and capped at twenty.
func (r *songRepository) TopSongs(ctx context.Context) ([]models.RankedSong, error) {
	log := logger.FromContext(ctx)

	var found []models.RankedSong
	err := r.db.inTransaction(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, findTopSongs)
		if err != nil {
			log.Err(err).Str("func", "*songRepository.TopSongs").Msg("error: querying top songs")
			return translatePostgresError(err)
		}
		defer rows.Close()

		for rows.Next() {
			var s models.RankedSong
			if err := rows.Scan(&s.SongID, &s.GenreID, &s.Name, &s.Lyrics,
				&s.Time, &s.Image, &s.MP3, &s.PlayCount); err != nil {
				log.Err(err).Str("func", "*songRepository.TopSongs").Msg("error: scanning top songs")
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			found = append(found, s)
		}
		if err := rows.Err(); err != nil {
			return translatePostgresError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// RefreshTopSongs recomputes the top_songs materialized view. The ranking
// worker calls this on its ticker; handlers never do.
func (r *songRepository) RefreshTopSongs(ctx context.Context) error {
	log := logger.FromContext(ctx)

	return r.db.inTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, refreshTopSongs); err != nil {
			log.Err(err).Str("func", "*songRepository.RefreshTopSongs").Msg("error: refreshing top songs view")
			return translatePostgresError(err)
		}
		return nil
	})
}

func (r *songRepository) listSongs(ctx context.Context, funcName, query string, args ...any) ([]models.Song, error) {
	log := logger.FromContext(ctx)

	var found []models.Song
	err := r.db.inTransaction(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error: querying songs")
			return translatePostgresError(err)
		}
		defer rows.Close()

		for rows.Next() {
			var s models.Song
			if err := rows.Scan(&s.SongID, &s.GenreID, &s.Name, &s.Lyrics,
				&s.Time, &s.Image, &s.MP3); err != nil {
				log.Err(err).Str("func", funcName).Msg("error: scanning songs")
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			found = append(found, s)
		}
		if err := rows.Err(); err != nil {
			return translatePostgresError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// execAssociation runs a link or unlink statement on a join table.
// requireRow demands exactly one affected row, which unlink statements use
// to turn a no-op delete into [ErrNotFound].
func (r *songRepository) execAssociation(ctx context.Context, funcName, query string, requireRow bool, args ...any) error {
	log := logger.FromContext(ctx)

	return r.db.inTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error: executing association statement")
			return translatePostgresError(err)
		}

		if requireRow {
			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
			}
			if affected == 0 {
				return ErrNotFound
			}
		}
		return nil
	})
}
