package validators

import (
	"context"
	"strings"
	"time"

	"github.com/melodia-app/melodia-server/models"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldUsername = "username"
	FieldName     = "name"
	FieldBirth    = "birth"
)

// AccountValidator checks inbound user and artist payloads before they
// reach the hashing and storage layers. It validates the presence and shape
// of credentials; uniqueness is the database's job.
type AccountValidator struct {
}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.Artist:
		return v.validateArtist(ctx, value, fields...)
	case *models.Artist:
		return v.validateArtist(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword, FieldBirth}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if user.Username == "" {
				return ErrInvalidUsername
			}
		case FieldEmail:
			if !isPlausibleEmail(user.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrInvalidPassword
			}
		case FieldBirth:
			if user.Birth != "" {
				if _, err := time.Parse("2006-01-02", user.Birth); err != nil {
					return ErrInvalidBirth
				}
			}
		}
	}

	return nil
}

func (v *AccountValidator) validateArtist(_ context.Context, artist models.Artist, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if artist.Name == "" {
				return ErrInvalidName
			}
		case FieldEmail:
			if !isPlausibleEmail(artist.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if artist.Password == "" {
				return ErrInvalidPassword
			}
		}
	}

	return nil
}

// isPlausibleEmail applies a minimal shape check. Deliverability is out of
// scope; the check only rejects values that cannot possibly be an address.
func isPlausibleEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}
