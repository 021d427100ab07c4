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

// playlistRepository is the PostgreSQL-backed implementation of
// [PlaylistRepository], working against the "playlists" table.
type playlistRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPlaylistRepository constructs a [PlaylistRepository] backed by the
// provided database connection and logger.
func NewPlaylistRepository(db *DB, logger *logger.Logger) PlaylistRepository {
	logger.Debug().Msg("creating playlist repository")
	return &playlistRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePlaylist persists a new playlist and returns it with its assigned id
// and creation timestamp. An unknown owning user surfaces as
// [ErrMissingReference].
func (r *playlistRepository) CreatePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error) {
	log := logger.FromContext(ctx)

	err := r.db.inTransaction(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, createPlaylist,
			playlist.UserID, playlist.Name, playlist.IsPublic)

		if err := row.Scan(&playlist.PlaylistID, &playlist.UserID, &playlist.Name,
			&playlist.IsPublic, &playlist.CreatedAt); err != nil {
			log.Err(err).Str("func", "*playlistRepository.CreatePlaylist").Msg("error: creating playlist")
			return translatePostgresError(err)
		}
		return nil
	})
	if err != nil {
		return models.Playlist{}, err
	}

	return playlist, nil
}

// UpdatePlaylist applies a partial update to the playlist identified by
// playlist.PlaylistID. Only the name and visibility can change; ownership is
// fixed at creation. Visibility is always written because false is a valid
// target value.
func (r *playlistRepository) UpdatePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error) {
	log := logger.FromContext(ctx)

	changes := map[string]any{"is_public": playlist.IsPublic}
	if playlist.Name != "" {
		changes["name"] = playlist.Name
	}

	query, args, err := sq.Update(playlist.TableName()).
		PlaceholderFormat(sq.Dollar).
		SetMap(changes).
		Where(sq.Eq{"playlist_id": playlist.PlaylistID}).
		Suffix(`RETURNING playlist_id, user_id, name, is_public, created_at`).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*playlistRepository.UpdatePlaylist").Msg("error: building update query")
		return models.Playlist{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Playlist
	err = r.db.inTransaction(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, query, args...)
		if err := row.Scan(&updated.PlaylistID, &updated.UserID, &updated.Name,
			&updated.IsPublic, &updated.CreatedAt); err != nil {
			log.Err(err).Str("func", "*playlistRepository.UpdatePlaylist").Msg("error: updating playlist")
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return translatePostgresError(err)
		}
		return nil
	})
	if err != nil {
		return models.Playlist{}, err
	}

	return updated, nil
}

// DeletePlaylist removes the playlist and returns its last stored state.
func (r *playlistRepository) DeletePlaylist(ctx context.Context, id int64) (models.Playlist, error) {
	log := logger.FromContext(ctx)

	var deleted models.Playlist
	err := r.db.inTransaction(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, deletePlaylist, id)
		if err := row.Scan(&deleted.PlaylistID, &deleted.UserID, &deleted.Name,
			&deleted.IsPublic, &deleted.CreatedAt); err != nil {
			log.Err(err).Str("func", "*playlistRepository.DeletePlaylist").Msg("error: deleting playlist")
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return translatePostgresError(err)
		}
		return nil
	})
	if err != nil {
		return models.Playlist{}, err
	}

	return deleted, nil
}

// FindPlaylistByID retrieves the single playlist with the given id,
// returning [ErrNotFound] for zero rows and [ErrMultipleMatches] for several.
func (r *playlistRepository) FindPlaylistByID(ctx context.Context, id int64) (models.Playlist, error) {
	found, err := r.listPlaylists(ctx, "*playlistRepository.FindPlaylistByID", findPlaylistByID, id)
	if err != nil {
		return models.Playlist{}, err
	}

	switch len(found) {
	case 0:
		return models.Playlist{}, ErrNotFound
	case 1:
		return found[0], nil
	default:
		return models.Playlist{}, ErrMultipleMatches
	}
}

// FindPlaylistsByUser lists every playlist owned by the user.
func (r *playlistRepository) FindPlaylistsByUser(ctx context.Context, userID int64) ([]models.Playlist, error) {
	return r.listPlaylists(ctx, "*playlistRepository.FindPlaylistsByUser", findPlaylistsByUser, userID)
}

func (r *playlistRepository) listPlaylists(ctx context.Context, funcName, query string, args ...any) ([]models.Playlist, error) {
	log := logger.FromContext(ctx)

	var found []models.Playlist
	err := r.db.inTransaction(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error: querying playlists")
			return translatePostgresError(err)
		}
		defer rows.Close()

		for rows.Next() {
			var p models.Playlist
			if err := rows.Scan(&p.PlaylistID, &p.UserID, &p.Name, &p.IsPublic, &p.CreatedAt); err != nil {
				log.Err(err).Str("func", funcName).Msg("error: scanning playlists")
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			found = append(found, p)
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
