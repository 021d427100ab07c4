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

// albumRepository is the PostgreSQL-backed implementation of
// [AlbumRepository], working against the "albums" table and the
// artists_albums join table for per-artist listings.
type albumRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAlbumRepository constructs an [AlbumRepository] backed by the provided
// database connection and logger.
func NewAlbumRepository(db *DB, logger *logger.Logger) AlbumRepository {
	logger.Debug().Msg("creating album repository")
	return &albumRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAlbum persists a new album and returns it with its assigned id.
func (r *albumRepository) CreateAlbum(ctx context.Context, album models.Album) (models.Album, error) {
	log := logger.FromContext(ctx)

	err := r.db.inTransaction(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, createAlbum,
			album.GenreID, album.Name, album.Description, album.Image)

		if err := row.Scan(&album.AlbumID, &album.GenreID, &album.Name,
			&album.Description, &album.Image); err != nil {
			log.Err(err).Str("func", "*albumRepository.CreateAlbum").Msg("error: creating album")
			return translatePostgresError(err)
		}
		return nil
	})
	if err != nil {
		return models.Album{}, err
	}

	return album, nil
}

// UpdateAlbum applies a partial update to the album identified by
// album.AlbumID. Only non-zero fields are written.
func (r *albumRepository) UpdateAlbum(ctx context.Context, album models.Album) (models.Album, error) {
	log := logger.FromContext(ctx)

	changes := map[string]any{}
	if album.GenreID != 0 {
		changes["genre_id"] = album.GenreID
	}
	if album.Name != "" {
		changes["name"] = album.Name
	}
	if album.Description != "" {
		changes["description"] = album.Description
	}
	if album.Image != "" {
		changes["image"] = album.Image
	}
	if len(changes) == 0 {
		return models.Album{}, ErrNothingToUpdate
	}

	query, args, err := sq.Update(album.TableName()).
		PlaceholderFormat(sq.Dollar).
		SetMap(changes).
		Where(sq.Eq{"album_id": album.AlbumID}).
		Suffix(`RETURNING album_id, genre_id, name, description, image`).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*albumRepository.UpdateAlbum").Msg("error: building update query")
		return models.Album{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Album
	err = r.db.inTransaction(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, query, args...)
		if err := row.Scan(&updated.AlbumID, &updated.GenreID, &updated.Name,
			&updated.Description, &updated.Image); err != nil {
			log.Err(err).Str("func", "*albumRepository.UpdateAlbum").Msg("error: updating album")
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return translatePostgresError(err)
		}
		return nil
	})
	if err != nil {
		return models.Album{}, err
	}

	return updated, nil
}

// DeleteAlbum removes the album and returns its last stored state.
func (r *albumRepository) DeleteAlbum(ctx context.Context, id int64) (models.Album, error) {
	log := logger.FromContext(ctx)

	var deleted models.Album
	err := r.db.inTransaction(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, deleteAlbum, id)
		if err := row.Scan(&deleted.AlbumID, &deleted.GenreID, &deleted.Name,
			&deleted.Description, &deleted.Image); err != nil {
			log.Err(err).Str("func", "*albumRepository.DeleteAlbum").Msg("error: deleting album")
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return translatePostgresError(err)
		}
		return nil
	})
	if err != nil {
		return models.Album{}, err
	}

	return deleted, nil
}

// FindAlbumByID retrieves the single album with the given id, returning
// [ErrNotFound] for zero rows and [ErrMultipleMatches] for several.
func (r *albumRepository) FindAlbumByID(ctx context.Context, id int64) (models.Album, error) {
	found, err := r.listAlbums(ctx, "*albumRepository.FindAlbumByID", findAlbumByID, id)
	if err != nil {
		return models.Album{}, err
	}

	switch len(found) {
	case 0:
		return models.Album{}, ErrNotFound
	case 1:
		return found[0], nil
	default:
		return models.Album{}, ErrMultipleMatches
	}
}

// FindAlbumsByArtist lists every album credited to the artist.
func (r *albumRepository) FindAlbumsByArtist(ctx context.Context, artistID int64) ([]models.Album, error) {
	return r.listAlbums(ctx, "*albumRepository.FindAlbumsByArtist", findAlbumsByArtist, artistID)
}

func (r *albumRepository) listAlbums(ctx context.Context, funcName, query string, args ...any) ([]models.Album, error) {
	log := logger.FromContext(ctx)

	var found []models.Album
	err := r.db.inTransaction(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error: querying albums")
			return translatePostgresError(err)
		}
		defer rows.Close()

		for rows.Next() {
			var a models.Album
			if err := rows.Scan(&a.AlbumID, &a.GenreID, &a.Name, &a.Description, &a.Image); err != nil {
				log.Err(err).Str("func", funcName).Msg("error: scanning albums")
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			found = append(found, a)
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
