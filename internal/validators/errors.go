package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidBirth    = errors.New("invalid birth date")

	ErrInvalidGenreID = errors.New("invalid genre ID")
	ErrInvalidUserID  = errors.New("invalid user ID")
	ErrInvalidSongID  = errors.New("invalid song ID")
)
