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

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles listener account creation, update and lookup against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions, and run their
// statements inside a transaction scoped to the single call.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new listener account and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Two INSERT variants exist: when neither country nor birth is supplied the
// statement omits those columns so their database defaults apply.
//
// Error handling:
//   - unique_violation (duplicate email or username) → [ErrAlreadyExists].
//   - invalid_datetime_format on the birth value → [ErrInvalidDateFormat].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	err := r.db.inTransaction(ctx, func(tx *sql.Tx) error {
		var row *sql.Row
		if user.Country == "" && user.Birth == "" {
			row = tx.QueryRowContext(ctx, createUserNoCountry,
				user.Username, user.Email, user.PasswordHash, user.ProfilePicture, user.Biography)
		} else {
			row = tx.QueryRowContext(ctx, createUser,
				user.Username, user.Email, user.PasswordHash, user.ProfilePicture, user.Biography, user.Country, user.Birth)
		}

		if err := row.Scan(&user.UserID, &user.Username, &user.Email, &user.PasswordHash,
			&user.ProfilePicture, &user.Biography, &user.Country, &user.Birth, &user.CreatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: creating user")
			return translatePostgresError(err)
		}

		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// UpdateUser applies a partial update to the account identified by
// user.UserID. Only non-zero fields are written; when no field is set the
// call fails with [ErrNothingToUpdate] before touching the database.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	changes := map[string]any{}
	if user.Username != "" {
		changes["username"] = user.Username
	}
	if user.Email != "" {
		changes["email"] = user.Email
	}
	if user.PasswordHash != "" {
		changes["password"] = user.PasswordHash
	}
	if user.ProfilePicture != "" {
		changes["profile_picture"] = user.ProfilePicture
	}
	if user.Biography != "" {
		changes["biography"] = user.Biography
	}
	if user.Country != "" {
		changes["country"] = user.Country
	}
	if user.Birth != "" {
		changes["birth"] = sq.Expr("?::date", user.Birth)
	}
	if len(changes) == 0 {
		return models.User{}, ErrNothingToUpdate
	}

	// SetMap orders columns alphabetically, keeping the generated SQL stable.
	query, args, err := sq.Update(user.TableName()).
		PlaceholderFormat(sq.Dollar).
		SetMap(changes).
		Where(sq.Eq{"user_id": user.UserID}).
		Suffix(`RETURNING user_id, username, email, password, profile_picture, biography, country, COALESCE(birth::text, ''), created_at`).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: building update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.User
	err = r.db.inTransaction(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, query, args...)
		if err := row.Scan(&updated.UserID, &updated.Username, &updated.Email, &updated.PasswordHash,
			&updated.ProfilePicture, &updated.Biography, &updated.Country, &updated.Birth, &updated.CreatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: updating user")
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return translatePostgresError(err)
		}
		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	return updated, nil
}

// FindUsersByEmail retrieves every account matching the exact email and
// returns the full result set. Zero rows is not an error here: callers that
// require a single match apply their own cardinality rule.
func (r *userRepository) FindUsersByEmail(ctx context.Context, email string) ([]models.User, error) {
	log := logger.FromContext(ctx)

	var found []models.User
	err := r.db.inTransaction(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, findUsersByEmail, email)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.FindUsersByEmail").Msg("error: querying users by email")
			return translatePostgresError(err)
		}
		defer rows.Close()

		found, err = scanUsers(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.FindUsersByEmail").Msg("error: scanning users")
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// FindUserByID retrieves the single account with the given id.
//
// Error handling:
//   - zero rows → [ErrNotFound].
//   - several rows → [ErrMultipleMatches]; the result is never collapsed by
//     silently picking one of the rows.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var found []models.User
	err := r.db.inTransaction(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, findUserByID, id)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: querying user by id")
			return translatePostgresError(err)
		}
		defer rows.Close()

		found, err = scanUsers(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning users")
			return err
		}
		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	switch len(found) {
	case 0:
		return models.User{}, ErrNotFound
	case 1:
		return found[0], nil
	default:
		return models.User{}, ErrMultipleMatches
	}
}

func scanUsers(rows *sql.Rows) ([]models.User, error) {
	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.UserID, &u.Username, &u.Email, &u.PasswordHash,
			&u.ProfilePicture, &u.Biography, &u.Country, &u.Birth, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, translatePostgresError(err)
	}
	return users, nil
}
