package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
//
// Driver-specific error codes never leave this package: they are translated
// into this set exactly once, by [translatePostgresError], at the store
// boundary.
var (
	// ErrNotFound is returned when a single-record lookup produces an empty
	// result set.
	ErrNotFound = errors.New("record was not found")

	// ErrMultipleMatches is returned when a lookup expected to match at most
	// one record produces several rows. The ambiguous result is never
	// collapsed by silently picking one of the rows.
	ErrMultipleMatches = errors.New("more than one record matches")

	// ErrAlreadyExists is returned when an INSERT or UPDATE violates a
	// uniqueness constraint (e.g. duplicate email or username).
	ErrAlreadyExists = errors.New("record already exists")

	// ErrMissingReference is returned when an INSERT or UPDATE points at a
	// row that does not exist (foreign key violation), e.g. creating a song
	// for an unknown genre.
	ErrMissingReference = errors.New("referenced record does not exist")

	// ErrInvalidDateFormat is returned when a supplied date value cannot be
	// parsed or stored by the database (e.g. a malformed birth date).
	ErrInvalidDateFormat = errors.New("wrong date format")

	// ErrInvalidTextValue is returned when a supplied value cannot be
	// converted to the target column type (e.g. a non-boolean is_public).
	ErrInvalidTextValue = errors.New("invalid value representation")

	// ErrNothingToUpdate is returned when an update request carries no
	// fields to change.
	ErrNothingToUpdate = errors.New("no fields to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails for a reason with no domain meaning.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back at this
	// point.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when scanning column values from a result
	// set into a destination struct fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
