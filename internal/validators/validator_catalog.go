package validators

import (
	"context"

	"github.com/melodia-app/melodia-server/models"
)

const (
	FieldGenreID = "genre_id"
	FieldUserID  = "user_id"
)

// CatalogValidator checks inbound song, album and playlist payloads.
type CatalogValidator struct {
}

func NewCatalogValidator() Validator {
	return &CatalogValidator{}
}

func (v *CatalogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Song:
		return v.validateSong(ctx, value, fields...)
	case *models.Song:
		return v.validateSong(ctx, *value, fields...)

	case models.Album:
		return v.validateAlbum(ctx, value, fields...)
	case *models.Album:
		return v.validateAlbum(ctx, *value, fields...)

	case models.Playlist:
		return v.validatePlaylist(ctx, value, fields...)
	case *models.Playlist:
		return v.validatePlaylist(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CatalogValidator) validateSong(_ context.Context, song models.Song, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldGenreID}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if song.Name == "" {
				return ErrInvalidName
			}
		case FieldGenreID:
			if song.GenreID <= 0 {
				return ErrInvalidGenreID
			}
		}
	}

	return nil
}

func (v *CatalogValidator) validateAlbum(_ context.Context, album models.Album, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldGenreID}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if album.Name == "" {
				return ErrInvalidName
			}
		case FieldGenreID:
			if album.GenreID <= 0 {
				return ErrInvalidGenreID
			}
		}
	}

	return nil
}

func (v *CatalogValidator) validatePlaylist(_ context.Context, playlist models.Playlist, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if playlist.Name == "" {
				return ErrInvalidName
			}
		case FieldUserID:
			if playlist.UserID <= 0 {
				return ErrInvalidUserID
			}
		}
	}

	return nil
}
