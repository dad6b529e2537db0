package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/nchindhamani/portfolio-api/internal/model"
	"github.com/nchindhamani/portfolio-api/internal/repository"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo     repository.ContactRepository
	validate *validator.Validate
	now      func() time.Time
	newID    func() string
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{
		repo:     repo,
		validate: newValidator(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Create stamps the message with a fresh id, the current UTC time truncated
// to the millisecond (the precision both stores keep) and status unread.
func (s *contactServiceImpl) Create(ctx context.Context, in model.ContactSubmission) (*model.ContactMessage, error) {
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}

	msg := &model.ContactMessage{
		ID:        s.newID(),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
		Status:    model.StatusUnread,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}

	slog.InfoContext(ctx, "contact message created", "contact_id", msg.ID)
	return msg, nil
}

func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	return s.repo.List(ctx, normalizeListOptions(opts))
}

func (s *contactServiceImpl) GetByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *contactServiceImpl) UpdateStatus(ctx context.Context, id string, status model.MessageStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	slog.InfoContext(ctx, "contact message status updated", "contact_id", id, "status", status)
	return nil
}

func normalizeListOptions(opts model.ContactListOptions) model.ContactListOptions {
	switch {
	case opts.Limit <= 0:
		opts.Limit = DefaultListLimit
	case opts.Limit > MaxListLimit:
		opts.Limit = MaxListLimit
	}
	if opts.Skip < 0 {
		opts.Skip = 0
	}
	return opts
}
