package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nchindhamani/portfolio-api/internal/content"
	"github.com/nchindhamani/portfolio-api/internal/model"
	"github.com/nchindhamani/portfolio-api/internal/repository"
)

// itemsKey holds list-shaped sections inside a stored key-value document.
const itemsKey = "items"

type portfolioServiceImpl struct {
	portfolio *content.Portfolio
	repo      repository.PortfolioRepository
	now       func() time.Time
	newID     func() string
}

// NewPortfolioService creates a PortfolioService over the given static content.
// repo backs the stored-section methods.
func NewPortfolioService(portfolio *content.Portfolio, repo repository.PortfolioRepository) PortfolioService {
	return &portfolioServiceImpl{
		portfolio: portfolio,
		repo:      repo,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

func (s *portfolioServiceImpl) GetAll() *content.Portfolio {
	return s.portfolio
}

func (s *portfolioServiceImpl) GetSection(name string) (any, error) {
	data, ok := s.portfolio.Section(model.Section(name))
	if !ok {
		return nil, ErrSectionNotFound
	}
	return data, nil
}

func (s *portfolioServiceImpl) StoredSection(ctx context.Context, name string) (*model.PortfolioConfig, error) {
	section := model.Section(name)
	if !section.Valid() {
		return nil, ErrSectionNotFound
	}
	return s.repo.FindBySection(ctx, section)
}

func (s *portfolioServiceImpl) SaveSection(ctx context.Context, name string, data map[string]any) (*model.PortfolioConfig, error) {
	section := model.Section(name)
	if !section.Valid() {
		return nil, ErrSectionNotFound
	}
	if data == nil {
		data = map[string]any{}
	}

	cfg := &model.PortfolioConfig{
		ID:          s.newID(),
		Section:     section,
		Data:        data,
		LastUpdated: s.now().UTC().Truncate(time.Millisecond),
	}
	if err := s.repo.Upsert(ctx, cfg); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "portfolio section updated", "section", section, "id", cfg.ID)
	return cfg, nil
}

func (s *portfolioServiceImpl) SyncSections(ctx context.Context) ([]*model.PortfolioConfig, error) {
	saved := make([]*model.PortfolioConfig, 0, len(model.Sections))
	for _, section := range model.Sections {
		payload, _ := s.portfolio.Section(section)
		doc, err := sectionDocument(payload)
		if err != nil {
			return saved, fmt.Errorf("encode section %s: %w", section, err)
		}
		cfg, err := s.SaveSection(ctx, string(section), doc)
		if err != nil {
			return saved, fmt.Errorf("save section %s: %w", section, err)
		}
		saved = append(saved, cfg)
	}
	return saved, nil
}

// sectionDocument converts a typed section payload into the key-value form
// stored in portfolio_config, using the same keys the HTTP API emits.
// Non-object payloads are wrapped under itemsKey.
func sectionDocument(payload any) (map[string]any, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	if m, ok := v.(map[string]any); ok {
		return m, nil
	}
	return map[string]any{itemsKey: v}, nil
}
