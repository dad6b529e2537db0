package service

import (
	"context"

	"github.com/nchindhamani/portfolio-api/internal/content"
	"github.com/nchindhamani/portfolio-api/internal/model"
)

// PortfolioService serves the static portfolio content and manages the
// stored section documents kept in the portfolio_config collection.
type PortfolioService interface {
	// GetAll returns the full static payload.
	GetAll() *content.Portfolio

	// GetSection returns ErrSectionNotFound for an unknown section name.
	GetSection(name string) (any, error)

	// StoredSection returns the stored copy of a section. Unknown names
	// yield ErrSectionNotFound; a known section that was never saved yields
	// repository.ErrNotFound.
	StoredSection(ctx context.Context, name string) (*model.PortfolioConfig, error)

	// SaveSection upserts the stored copy of a section.
	SaveSection(ctx context.Context, name string, data map[string]any) (*model.PortfolioConfig, error)

	// SyncSections saves every static section, in site order.
	SyncSections(ctx context.Context) ([]*model.PortfolioConfig, error)
}
