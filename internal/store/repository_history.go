package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/melodia-app/melodia-server/internal/logger"
	"github.com/melodia-app/melodia-server/models"
)

// historyRepository is the PostgreSQL-backed implementation of
// [HistoryRepository]. Login events for listeners and performers live in
// separate relations; the role argument selects which one receives the row.
type historyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewHistoryRepository constructs a [HistoryRepository] backed by the
// provided database connection and logger.
func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	logger.Debug().Msg("creating history repository")
	return &historyRepository{
		db:     db,
		logger: logger,
	}
}

// RecordLogin appends one login event to the role-specific history relation
// and returns the stored record with its database-assigned timestamp.
//
// An unknown role is a programming error in the caller and is rejected
// before any statement runs. A failed insert propagates to the caller; the
// login flow treats it as fatal.
func (r *historyRepository) RecordLogin(ctx context.Context, role string, record models.LoginRecord) (models.LoginRecord, error) {
	log := logger.FromContext(ctx)

	var query string
	switch role {
	case models.RoleUser:
		query = recordUserLogin
	case models.RoleArtist:
		query = recordArtistLogin
	default:
		return models.LoginRecord{}, fmt.Errorf("unknown role %q", role)
	}

	err := r.db.inTransaction(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, query, record.OwnerID, record.IP)
		if err := row.Scan(&record.OwnerID, &record.IP, &record.CreatedAt); err != nil {
			log.Err(err).Str("func", "*historyRepository.RecordLogin").Str("role", role).Msg("error: recording login")
			return translatePostgresError(err)
		}
		return nil
	})
	if err != nil {
		return models.LoginRecord{}, err
	}

	return record, nil
}
