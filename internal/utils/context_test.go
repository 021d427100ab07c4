package utils

import (
	"context"
	"testing"

	"github.com/melodia-app/melodia-server/models"
)

func TestGetOwnerIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), OwnerIDCtxKey, int64(42))

	ownerID, ok := GetOwnerIDFromContext(ctx)
	if !ok {
		t.Fatal("expected owner ID to be present")
	}
	if ownerID != 42 {
		t.Errorf("expected 42, got %d", ownerID)
	}
}

func TestGetOwnerIDFromContext_Missing(t *testing.T) {
	if _, ok := GetOwnerIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetOwnerIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), OwnerIDCtxKey, "42")
	if _, ok := GetOwnerIDFromContext(ctx); ok {
		t.Error("expected ok=false for non-int64 value")
	}
}

func TestGetRoleFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), RoleCtxKey, models.RoleArtist)

	role, ok := GetRoleFromContext(ctx)
	if !ok {
		t.Fatal("expected role to be present")
	}
	if role != models.RoleArtist {
		t.Errorf("expected artist role, got %q", role)
	}
}
