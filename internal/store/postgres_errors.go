package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// translatePostgresError converts a driver-level error into the store's
// typed error set. It is the single point where PostgreSQL error codes are
// inspected; upper layers match the returned sentinels with [errors.Is] and
// never see raw codes.
//
// Mapped codes:
//   - 23505 unique_violation        → [ErrAlreadyExists]
//   - 23503 foreign_key_violation   → [ErrMissingReference]
//   - 22007 invalid_datetime_format → [ErrInvalidDateFormat]
//   - 22008 datetime_field_overflow → [ErrInvalidDateFormat]
//   - 22P02 invalid_text_representation → [ErrInvalidTextValue]
//
// Any other driver error is wrapped as an unexpected DB error; the original
// cause stays in the chain for logging but carries no domain meaning.
func translatePostgresError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrMissingReference, err)
	case pgerrcode.InvalidDatetimeFormat, pgerrcode.DatetimeFieldOverflow:
		return fmt.Errorf("%w: %w", ErrInvalidDateFormat, err)
	case pgerrcode.InvalidTextRepresentation:
		return fmt.Errorf("%w: %w", ErrInvalidTextValue, err)
	}

	return fmt.Errorf("unexpected DB error: %w", err)
}
