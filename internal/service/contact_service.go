package service

import (
	"context"

	"github.com/nchindhamani/portfolio-api/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Create validates in and stores it as a new unread message.
	// Constraint violations are reported as *ValidationError before any
	// persistence is attempted.
	Create(ctx context.Context, in model.ContactSubmission) (*model.ContactMessage, error)

	// List returns messages newest first. Limit is clamped to MaxListLimit.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)

	// GetByID returns repository.ErrNotFound for an unknown id.
	GetByID(ctx context.Context, id string) (*model.ContactMessage, error)

	// UpdateStatus returns ErrInvalidStatus for a status outside the allowed
	// set and repository.ErrNotFound for an unknown id.
	UpdateStatus(ctx context.Context, id string, status model.MessageStatus) error
}
