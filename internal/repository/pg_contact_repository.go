package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nchindhamani/portfolio-api/internal/model"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

func (r *PgContactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO contact_messages (id, name, email, subject, message, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message, string(msg.Status), msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, subject, message, status, created_at
		 FROM contact_messages
		 ORDER BY created_at DESC, seq DESC
		 LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Skip,
	)
	if err != nil {
		return nil, fmt.Errorf("query contact messages: %w", err)
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		m, err := scanContactMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *PgContactRepository) FindByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, email, subject, message, status, created_at
		 FROM contact_messages WHERE id = $1`,
		id,
	)
	m, err := scanContactMessage(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// UpdateStatus relies on RowsAffected counting matched rows, so re-applying
// the current status still counts as found.
func (r *PgContactRepository) UpdateStatus(ctx context.Context, id string, status model.MessageStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contact_messages SET status = $2 WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return fmt.Errorf("update contact message %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanContactMessage(row pgx.Row) (*model.ContactMessage, error) {
	var (
		m      model.ContactMessage
		status string
	)
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &status, &m.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan contact message: %w", err)
	}
	m.Status = model.MessageStatus(status)
	m.CreatedAt = m.CreatedAt.UTC()
	return &m, nil
}
