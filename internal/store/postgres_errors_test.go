package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgerrcode"
)

func TestTranslatePostgresError_Nil(t *testing.T) {
	if err := translatePostgresError(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestTranslatePostgresError_KnownCodes(t *testing.T) {
	cases := []struct {
		name string
		code string
		want error
	}{
		{"unique violation", pgerrcode.UniqueViolation, ErrAlreadyExists},
		{"foreign key violation", pgerrcode.ForeignKeyViolation, ErrMissingReference},
		{"invalid datetime format", pgerrcode.InvalidDatetimeFormat, ErrInvalidDateFormat},
		{"datetime field overflow", pgerrcode.DatetimeFieldOverflow, ErrInvalidDateFormat},
		{"invalid text representation", pgerrcode.InvalidTextRepresentation, ErrInvalidTextValue},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := translatePostgresError(pgError(tc.code))
			if !errors.Is(got, tc.want) {
				t.Errorf("code %s: expected %v, got %v", tc.code, tc.want, got)
			}
		})
	}
}

func TestTranslatePostgresError_UnknownCode(t *testing.T) {
	got := translatePostgresError(pgError(pgerrcode.SerializationFailure))
	if got == nil || !strings.Contains(got.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", got)
	}
}

func TestTranslatePostgresError_NonPostgresError(t *testing.T) {
	cause := errors.New("broken pipe")
	got := translatePostgresError(cause)
	if !errors.Is(got, cause) {
		t.Fatalf("expected cause to stay in the chain, got %v", got)
	}
	if !strings.Contains(got.Error(), "unexpected DB error") {
		t.Fatalf("expected unexpected DB error wrapping, got %v", got)
	}
}
