package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"portfolio_admin/internal/models"
	"portfolio_admin/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
)

var messageCols = []string{
	"id", "name", "email", "phone", "message", "status", "response", "responded_at", "created_at", "updated_at",
}

func newMessageRepo(t *testing.T) (*repository.MessageSQLite, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	})
	return repository.NewMessageSQLite(db), mock
}

func TestMessageSQLite_Create_DefaultsToUnread(t *testing.T) {
	repo, mock := newMessageRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO contact_messages")).
		WithArgs(sqlmock.AnyArg(), "A", "a@b.com", nil, "hi", "unread", nil, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), models.ContactMessage{Name: "A", Email: "a@b.com", Message: "hi"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
}

func TestMessageSQLite_List_ScansOptionalColumns(t *testing.T) {
	repo, mock := newMessageRepo(t)

	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	responded := now.Add(time.Hour)
	rows := sqlmock.NewRows(messageCols).
		AddRow("m2", "B", "b@c.com", "555-1234", "quote?", "responded", "sure", responded, now, responded).
		AddRow("m1", "A", "a@b.com", nil, "hi", "unread", nil, nil, now.Add(-time.Hour), now.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta("FROM contact_messages ORDER BY created_at DESC")).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(got))
	}
	if got[0].Phone != "555-1234" || got[0].Response != "sure" || got[0].RespondedAt == nil || !got[0].RespondedAt.Equal(responded) {
		t.Fatalf("optional columns not scanned: %+v", got[0])
	}
	if got[1].Phone != "" || got[1].RespondedAt != nil || got[1].Status != models.StatusUnread {
		t.Fatalf("null columns not handled: %+v", got[1])
	}
}

func TestMessageSQLite_Get_NotFound(t *testing.T) {
	repo, mock := newMessageRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM contact_messages WHERE id = ?")).
		WithArgs("x").
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.Get(context.Background(), "x"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMessageSQLite_UpdateStatus(t *testing.T) {
	repo, mock := newMessageRepo(t)
	at := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE contact_messages SET status = ?, updated_at = ?")).
		WithArgs("read", at, "m1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE contact_messages SET status = ?, updated_at = ?")).
		WithArgs("read", at, "gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.UpdateStatus(context.Background(), "m1", models.StatusRead, at); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if err := repo.UpdateStatus(context.Background(), "gone", models.StatusRead, at); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMessageSQLite_SaveResponse(t *testing.T) {
	repo, mock := newMessageRepo(t)
	at := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE contact_messages SET status = ?, response = ?, responded_at = ?")).
		WithArgs("responded", "thanks", at, at, "m1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SaveResponse(context.Background(), "m1", "thanks", at); err != nil {
		t.Fatalf("SaveResponse() error = %v", err)
	}
}

func TestMessageSQLite_CountByStatus(t *testing.T) {
	repo, mock := newMessageRepo(t)

	rows := sqlmock.NewRows([]string{"status", "count"}).
		AddRow("unread", 4).
		AddRow("responded", 1)
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY status")).WillReturnRows(rows)

	got, err := repo.CountByStatus(context.Background())
	if err != nil {
		t.Fatalf("CountByStatus() error = %v", err)
	}
	if got[models.StatusUnread] != 4 || got[models.StatusResponded] != 1 || got[models.StatusRead] != 0 {
		t.Fatalf("unexpected counts: %v", got)
	}
}
