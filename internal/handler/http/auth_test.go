// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/melodia-app/melodia-server/internal/config"
	"github.com/melodia-app/melodia-server/internal/logger"
	"github.com/melodia-app/melodia-server/internal/service"
	"github.com/melodia-app/melodia-server/models"
	"golang.org/x/time/rate"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	resolveFn    func(ctx context.Context, email, password string) (*models.Identity, error)
	loginFn      func(ctx context.Context, identity models.Identity, clientIP string) (models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Resolve(ctx context.Context, email, password string) (*models.Identity, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, email, password)
	}
	return nil, nil
}

func (m *mockAuthService) Login(ctx context.Context, identity models.Identity, clientIP string) (models.Token, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, identity, clientIP)
	}
	return models.Token{SignedString: "signed"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, nil
}

func newTestHandler(auth service.AuthService) *Handler {
	return &Handler{
		services:     &service.Services{AuthService: auth},
		loginLimiter: rate.NewLimiter(rate.Inf, 0),
		logger:       logger.Nop(),
	}
}

func loginRequest(t *testing.T, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestLoginHandler_Success(t *testing.T) {
	auth := &mockAuthService{
		resolveFn: func(_ context.Context, email, password string) (*models.Identity, error) {
			return &models.Identity{ID: 7, Email: email, Role: models.RoleUser}, nil
		},
		loginFn: func(_ context.Context, identity models.Identity, clientIP string) (models.Token, error) {
			if clientIP == "" {
				t.Error("expected a client IP to be forwarded")
			}
			return models.Token{SignedString: "signed-token", OwnerID: identity.ID}, nil
		},
	}
	h := newTestHandler(auth)

	rec := httptest.NewRecorder()
	h.login(rec, loginRequest(t, `{"email":"a@b.c","password":"secret"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Authorization"); got != "Bearer signed-token" {
		t.Errorf("expected bearer header, got %q", got)
	}

	var resp models.LoginResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.AccessToken != "signed-token" {
		t.Errorf("expected access_token in body, got %q", resp.AccessToken)
	}
}

func TestLoginHandler_ConstantUnauthorizedShape(t *testing.T) {
	// unknown email and wrong password must produce byte-identical bodies
	unknownEmail := &mockAuthService{
		resolveFn: func(context.Context, string, string) (*models.Identity, error) { return nil, nil },
	}
	wrongPassword := &mockAuthService{
		resolveFn: func(context.Context, string, string) (*models.Identity, error) { return nil, nil },
	}

	recA := httptest.NewRecorder()
	newTestHandler(unknownEmail).login(recA, loginRequest(t, `{"email":"ghost@b.c","password":"x"}`))

	recB := httptest.NewRecorder()
	newTestHandler(wrongPassword).login(recB, loginRequest(t, `{"email":"real@b.c","password":"wrong"}`))

	if recA.Code != http.StatusUnauthorized || recB.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", recA.Code, recB.Code)
	}
	if recA.Body.String() != recB.Body.String() {
		t.Errorf("response bodies differ: %q vs %q", recA.Body.String(), recB.Body.String())
	}
}

func TestLoginHandler_InvalidJSON(t *testing.T) {
	h := newTestHandler(&mockAuthService{})

	rec := httptest.NewRecorder()
	h.login(rec, loginRequest(t, `{not json`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLoginHandler_EmptyCredentials(t *testing.T) {
	auth := &mockAuthService{
		resolveFn: func(context.Context, string, string) (*models.Identity, error) {
			return nil, nil
		},
	}
	h := newTestHandler(auth)

	rec := httptest.NewRecorder()
	h.login(rec, loginRequest(t, `{"email":"","password":""}`))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), invalidCredentialsMessage) {
		t.Errorf("expected the shared rejection body, got %q", rec.Body.String())
	}
}

func TestLoginHandler_InfraFailureIsNot401(t *testing.T) {
	auth := &mockAuthService{
		resolveFn: func(context.Context, string, string) (*models.Identity, error) {
			return nil, errors.New("connection refused")
		},
	}
	h := newTestHandler(auth)

	rec := httptest.NewRecorder()
	h.login(rec, loginRequest(t, `{"email":"a@b.c","password":"secret"}`))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Error("internal cause leaked to the client")
	}
}

func TestLoginHandler_HistoryFailureFailsLogin(t *testing.T) {
	auth := &mockAuthService{
		resolveFn: func(_ context.Context, email, _ string) (*models.Identity, error) {
			return &models.Identity{ID: 1, Email: email, Role: models.RoleUser}, nil
		},
		loginFn: func(context.Context, models.Identity, string) (models.Token, error) {
			return models.Token{}, errors.New("recording login history failed: disk full")
		},
	}
	h := newTestHandler(auth)

	rec := httptest.NewRecorder()
	h.login(rec, loginRequest(t, `{"email":"a@b.c","password":"secret"}`))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestLoginHandler_RateLimited(t *testing.T) {
	h := &Handler{
		services:     &service.Services{AuthService: &mockAuthService{}},
		loginLimiter: rate.NewLimiter(rate.Limit(0), 0), // deny everything
		logger:       logger.Nop(),
	}

	rec := httptest.NewRecorder()
	h.login(rec, loginRequest(t, `{"email":"a@b.c","password":"secret"}`))

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestNewHandler_WiresLimiterFromConfig(t *testing.T) {
	h := NewHandler(&service.Services{}, config.App{LoginRatePerSecond: 5, LoginRateBurst: 10}, logger.Nop())
	if h.loginLimiter == nil {
		t.Fatal("expected login limiter to be constructed")
	}
	if got := h.loginLimiter.Burst(); got != 10 {
		t.Errorf("expected burst 10, got %d", got)
	}
}
