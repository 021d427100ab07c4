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

// artistRepository is the PostgreSQL-backed implementation of
// [ArtistRepository], working against the "artists" table. Lookup semantics
// mirror the user repository: email lookups return the full result set,
// id lookups enforce exactly one row.
type artistRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewArtistRepository constructs an [ArtistRepository] backed by the
// provided database connection and logger.
func NewArtistRepository(db *DB, logger *logger.Logger) ArtistRepository {
	logger.Debug().Msg("creating artist repository")
	return &artistRepository{
		db:     db,
		logger: logger,
	}
}

// CreateArtist persists a new performer account and returns it with
// server-assigned fields populated.
func (r *artistRepository) CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error) {
	log := logger.FromContext(ctx)

	err := r.db.inTransaction(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, createArtist,
			artist.Name, artist.Email, artist.PasswordHash, artist.Image, artist.Country)

		if err := row.Scan(&artist.ArtistID, &artist.Name, &artist.Email, &artist.PasswordHash,
			&artist.Image, &artist.Country, &artist.CreatedAt); err != nil {
			log.Err(err).Str("func", "*artistRepository.CreateArtist").Msg("error: creating artist")
			return translatePostgresError(err)
		}

		return nil
	})
	if err != nil {
		return models.Artist{}, err
	}

	return artist, nil
}

// UpdateArtist applies a partial update to the account identified by
// artist.ArtistID. Only non-zero fields are written.
func (r *artistRepository) UpdateArtist(ctx context.Context, artist models.Artist) (models.Artist, error) {
	log := logger.FromContext(ctx)

	changes := map[string]any{}
	if artist.Name != "" {
		changes["name"] = artist.Name
	}
	if artist.Email != "" {
		changes["email"] = artist.Email
	}
	if artist.PasswordHash != "" {
		changes["password"] = artist.PasswordHash
	}
	if artist.Image != "" {
		changes["image"] = artist.Image
	}
	if artist.Country != "" {
		changes["country"] = artist.Country
	}
	if len(changes) == 0 {
		return models.Artist{}, ErrNothingToUpdate
	}

	query, args, err := sq.Update(artist.TableName()).
		PlaceholderFormat(sq.Dollar).
		SetMap(changes).
		Where(sq.Eq{"artist_id": artist.ArtistID}).
		Suffix(`RETURNING artist_id, name, email, password, image, country, created_at`).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*artistRepository.UpdateArtist").Msg("error: building update query")
		return models.Artist{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Artist
	err = r.db.inTransaction(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, query, args...)
		if err := row.Scan(&updated.ArtistID, &updated.Name, &updated.Email, &updated.PasswordHash,
			&updated.Image, &updated.Country, &updated.CreatedAt); err != nil {
			log.Err(err).Str("func", "*artistRepository.UpdateArtist").Msg("error: updating artist")
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return translatePostgresError(err)
		}
		return nil
	})
	if err != nil {
		return models.Artist{}, err
	}

	return updated, nil
}

// FindArtistsByEmail retrieves every account matching the exact email and
// returns the full result set, leaving the cardinality decision to the
// caller.
func (r *artistRepository) FindArtistsByEmail(ctx context.Context, email string) ([]models.Artist, error) {
	log := logger.FromContext(ctx)

	var found []models.Artist
	err := r.db.inTransaction(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, findArtistsByEmail, email)
		if err != nil {
			log.Err(err).Str("func", "*artistRepository.FindArtistsByEmail").Msg("error: querying artists by email")
			return translatePostgresError(err)
		}
		defer rows.Close()

		found, err = scanArtists(rows)
		if err != nil {
			log.Err(err).Str("func", "*artistRepository.FindArtistsByEmail").Msg("error: scanning artists")
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// FindArtistByID retrieves the single account with the given id, returning
// [ErrNotFound] for zero rows and [ErrMultipleMatches] for several.
func (r *artistRepository) FindArtistByID(ctx context.Context, id int64) (models.Artist, error) {
	log := logger.FromContext(ctx)

	var found []models.Artist
	err := r.db.inTransaction(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, findArtistByID, id)
		if err != nil {
			log.Err(err).Str("func", "*artistRepository.FindArtistByID").Msg("error: querying artist by id")
			return translatePostgresError(err)
		}
		defer rows.Close()

		found, err = scanArtists(rows)
		if err != nil {
			log.Err(err).Str("func", "*artistRepository.FindArtistByID").Msg("error: scanning artists")
			return err
		}
		return nil
	})
	if err != nil {
		return models.Artist{}, err
	}

	switch len(found) {
	case 0:
		return models.Artist{}, ErrNotFound
	case 1:
		return found[0], nil
	default:
		return models.Artist{}, ErrMultipleMatches
	}
}

func scanArtists(rows *sql.Rows) ([]models.Artist, error) {
	var artists []models.Artist
	for rows.Next() {
		var a models.Artist
		if err := rows.Scan(&a.ArtistID, &a.Name, &a.Email, &a.PasswordHash,
			&a.Image, &a.Country, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, translatePostgresError(err)
	}
	return artists, nil
}
