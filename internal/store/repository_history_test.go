package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/melodia-app/melodia-server/internal/logger"
	"github.com/melodia-app/melodia-server/models"
)

func newTestHistoryRepo(t *testing.T) (*historyRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &historyRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestRecordLogin_UserRole(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"user_id", "ip", "created_at"}).
		AddRow(5, "203.0.113.7", now)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO histories_user").
		WithArgs(int64(5), "203.0.113.7").
		WillReturnRows(rows)
	mock.ExpectCommit()

	record, err := repo.RecordLogin(ctx, models.RoleUser, models.LoginRecord{OwnerID: 5, IP: "203.0.113.7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.CreatedAt.IsZero() {
		t.Error("expected database-assigned timestamp")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRecordLogin_ArtistRole(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"artist_id", "ip", "created_at"}).
		AddRow(9, "198.51.100.2", time.Now())

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO histories_artist").
		WithArgs(int64(9), "198.51.100.2").
		WillReturnRows(rows)
	mock.ExpectCommit()

	if _, err := repo.RecordLogin(ctx, models.RoleArtist, models.LoginRecord{OwnerID: 9, IP: "198.51.100.2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRecordLogin_UnknownRole(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	_, err := repo.RecordLogin(context.Background(), "admin", models.LoginRecord{OwnerID: 1})
	if err == nil || !strings.Contains(err.Error(), "unknown role") {
		t.Fatalf("expected unknown role error, got %v", err)
	}
	// the statement must never reach the database
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database interaction: %v", err)
	}
}

func TestRecordLogin_InsertFailurePropagates(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO histories_user").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := repo.RecordLogin(context.Background(), models.RoleUser, models.LoginRecord{OwnerID: 5, IP: "203.0.113.7"})
	if err == nil {
		t.Fatal("expected insert failure to propagate, got nil")
	}
}
