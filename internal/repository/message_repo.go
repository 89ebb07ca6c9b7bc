package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"portfolio_admin/internal/models"

	"github.com/google/uuid"
)

type MessageSQLite struct {
	db *sql.DB
}

func NewMessageSQLite(db *sql.DB) *MessageSQLite { return &MessageSQLite{db: db} }

var _ MessageRepo = (*MessageSQLite)(nil)

const (
	messageColumns = `id, name, email, phone, message, status, response, responded_at, created_at, updated_at`

	insertMessageSQL       = `INSERT INTO contact_messages (` + messageColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	listMessagesSQL        = `SELECT ` + messageColumns + ` FROM contact_messages ORDER BY created_at DESC`
	getMessageSQL          = `SELECT ` + messageColumns + ` FROM contact_messages WHERE id = ?`
	updateMessageStatusSQL = `UPDATE contact_messages SET status = ?, updated_at = ? WHERE id = ?`
	saveResponseSQL        = `UPDATE contact_messages SET status = ?, response = ?, responded_at = ?, updated_at = ? WHERE id = ?`
	countByStatusSQL       = `SELECT status, COUNT(*) FROM contact_messages GROUP BY status`
)

func scanMessage(row rowScanner) (models.ContactMessage, error) {
	var (
		m         models.ContactMessage
		phone     sql.NullString
		status    string
		response  sql.NullString
		responded sql.NullTime
	)
	err := row.Scan(&m.ID, &m.Name, &m.Email, &phone, &m.Message, &status,
		&response, &responded, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return models.ContactMessage{}, err
	}
	m.Phone = phone.String
	m.Status = models.MessageStatus(status)
	m.Response = response.String
	if responded.Valid {
		t := responded.Time.UTC()
		m.RespondedAt = &t
	}
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
	return m, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Create inserts m. Missing ID, status and timestamps are filled in.
func (r *MessageSQLite) Create(ctx context.Context, m models.ContactMessage) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Status == "" {
		m.Status = models.StatusUnread
	}
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = m.CreatedAt
	}
	var responded sql.NullTime
	if m.RespondedAt != nil {
		responded = sql.NullTime{Time: m.RespondedAt.UTC(), Valid: true}
	}
	_, err := r.db.ExecContext(ctx, insertMessageSQL,
		m.ID, m.Name, m.Email, nullString(m.Phone), m.Message, string(m.Status),
		nullString(m.Response), responded, m.CreatedAt.UTC(), m.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert contact message from %q: %w", m.Email, err)
	}
	return nil
}

// List returns all messages, newest first.
func (r *MessageSQLite) List(ctx context.Context) ([]models.ContactMessage, error) {
	rows, err := r.db.QueryContext(ctx, listMessagesSQL)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	out := make([]models.ContactMessage, 0, 32)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact messages: %w", err)
	}
	return out, nil
}

func (r *MessageSQLite) Get(ctx context.Context, id string) (models.ContactMessage, error) {
	m, err := scanMessage(r.db.QueryRowContext(ctx, getMessageSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ContactMessage{}, ErrNotFound
		}
		return models.ContactMessage{}, fmt.Errorf("select contact message %s: %w", id, err)
	}
	return m, nil
}

func (r *MessageSQLite) UpdateStatus(ctx context.Context, id string, status models.MessageStatus, at time.Time) error {
	res, err := r.db.ExecContext(ctx, updateMessageStatusSQL, string(status), at.UTC(), id)
	if err != nil {
		return fmt.Errorf("update status of contact message %s: %w", id, err)
	}
	return requireAffected(res, "update contact message status", id)
}

// SaveResponse marks the message responded and records the reply text.
func (r *MessageSQLite) SaveResponse(ctx context.Context, id, response string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, saveResponseSQL,
		string(models.StatusResponded), response, at.UTC(), at.UTC(), id)
	if err != nil {
		return fmt.Errorf("save response of contact message %s: %w", id, err)
	}
	return requireAffected(res, "save contact message response", id)
}

func (r *MessageSQLite) CountByStatus(ctx context.Context) (map[models.MessageStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, countByStatusSQL)
	if err != nil {
		return nil, fmt.Errorf("count contact messages: %w", err)
	}
	defer rows.Close()

	out := make(map[models.MessageStatus]int, 3)
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		out[models.MessageStatus(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate status counts: %w", err)
	}
	return out, nil
}
