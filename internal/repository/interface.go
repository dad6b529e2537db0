package repository

import (
	"context"

	"github.com/nchindhamani/portfolio-api/internal/model"
)

// DB checks that the backing store is reachable.
type DB interface {
	Ping(ctx context.Context) error
}

// ContactRepository persists contact form submissions.
type ContactRepository interface {
	// Create stores msg as a new record. msg.ID and msg.CreatedAt must be set.
	Create(ctx context.Context, msg *model.ContactMessage) error
	// List returns messages newest first, applying opts.Skip then opts.Limit.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)
	// FindByID returns ErrNotFound when no message has the given id.
	FindByID(ctx context.Context, id string) (*model.ContactMessage, error)
	// UpdateStatus returns ErrNotFound when no message has the given id.
	UpdateStatus(ctx context.Context, id string, status model.MessageStatus) error
}

// PortfolioRepository persists editable copies of portfolio sections.
type PortfolioRepository interface {
	// FindBySection returns ErrNotFound when the section has never been stored.
	FindBySection(ctx context.Context, section model.Section) (*model.PortfolioConfig, error)
	// Upsert replaces the data and timestamp of cfg.Section, inserting it when
	// absent. cfg is updated with the stored record, so cfg.ID reflects the
	// identifier assigned on first insert.
	Upsert(ctx context.Context, cfg *model.PortfolioConfig) error
}
