package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/melodia-app/melodia-server/internal/service"
	"github.com/melodia-app/melodia-server/internal/utils"
	"github.com/melodia-app/melodia-server/models"
)

func validSessionToken(ownerID string, role string) models.Token {
	return models.Token{
		SessionClaims: models.SessionClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: ownerID},
			Username:         "a@b.c",
			Role:             role,
		},
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h := newTestHandler(&mockAuthService{})

	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user/1", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), ErrEmptyAuthorizationHeader.Error()) {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
	if called {
		t.Error("next handler must not run without credentials")
	}
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	h := newTestHandler(&mockAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/user/1", nil)
	req.Header.Set("Authorization", "Bearer")

	rec := httptest.NewRecorder()
	h.auth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("next handler must not run")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(context.Context, string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newTestHandler(auth)

	req := httptest.NewRequest(http.MethodGet, "/api/user/1", nil)
	req.Header.Set("Authorization", "Bearer expired.token.here")

	rec := httptest.NewRecorder()
	h.auth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("next handler must not run for an invalid token")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_PropagatesOwnerAndRole(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != "good-token" {
				t.Errorf("unexpected token string %q", tokenString)
			}
			return validSessionToken("42", models.RoleArtist), nil
		},
	}
	h := newTestHandler(auth)

	req := httptest.NewRequest(http.MethodGet, "/api/artist/42", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	var gotID int64
	var gotRole string
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		var ok bool
		gotID, ok = utils.GetOwnerIDFromContext(r.Context())
		if !ok {
			t.Fatal("owner ID missing from context")
		}
		gotRole, ok = utils.GetRoleFromContext(r.Context())
		if !ok {
			t.Fatal("role missing from context")
		}
	})

	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != 42 {
		t.Errorf("expected owner ID 42, got %d", gotID)
	}
	if gotRole != models.RoleArtist {
		t.Errorf("expected role %q, got %q", models.RoleArtist, gotRole)
	}
}

func TestAuthMiddleware_NonNumericSubject(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(context.Context, string) (models.Token, error) {
			return validSessionToken("not-a-number", models.RoleUser), nil
		},
	}
	h := newTestHandler(auth)

	req := httptest.NewRequest(http.MethodGet, "/api/user/1", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	rec := httptest.NewRecorder()
	h.auth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("next handler must not run")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "scheme only", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "no scheme", header: "abc.def.ghi", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				if err == nil || err.Error() != tt.wantErr.Error() {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
