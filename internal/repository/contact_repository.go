package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/alhuda-academy/admissions-api/internal/models"
)

// ContactRepository persists contact form messages.
type ContactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

const contactColumns = `id, name, email, message, ip_address, user_agent, status,
	reply, replied_at, submitted_at`

func (r *ContactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.SubmittedAt.IsZero() {
		msg.SubmittedAt = time.Now().UTC()
	}
	if msg.Status == "" {
		msg.Status = models.ContactStatusNew
	}
	const query = `INSERT INTO contact_messages (` + contactColumns + `)
	VALUES (:id, :name, :email, :message, :ip_address, :user_agent, :status,
	:reply, :replied_at, :submitted_at)`
	if _, err := r.db.NamedExecContext(ctx, query, msg); err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}
	return nil
}

func (r *ContactRepository) List(ctx context.Context, status string) ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	if status != "" {
		query := `SELECT ` + contactColumns + ` FROM contact_messages WHERE status = $1 ORDER BY submitted_at DESC`
		if err := r.db.SelectContext(ctx, &msgs, query, status); err != nil {
			return nil, fmt.Errorf("list contact messages: %w", err)
		}
		return msgs, nil
	}
	query := `SELECT ` + contactColumns + ` FROM contact_messages ORDER BY submitted_at DESC`
	if err := r.db.SelectContext(ctx, &msgs, query); err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return msgs, nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	query := `SELECT ` + contactColumns + ` FROM contact_messages WHERE id = $1`
	var msg models.ContactMessage
	if err := r.db.GetContext(ctx, &msg, query, id); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Reply records a staff reply and marks the message replied.
func (r *ContactRepository) Reply(ctx context.Context, id, reply string) error {
	query := `UPDATE contact_messages SET reply = $1, status = $2, replied_at = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, reply, models.ContactStatusReplied, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("reply contact message: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reply contact message: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *ContactRepository) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE contact_messages SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update contact status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update contact status: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact message: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete contact message: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
