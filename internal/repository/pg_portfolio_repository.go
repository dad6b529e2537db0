package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nchindhamani/portfolio-api/internal/model"
)

// PgPortfolioRepository stores section payloads as JSONB documents.
type PgPortfolioRepository struct {
	pool *pgxpool.Pool
}

func NewPgPortfolioRepository(pool *pgxpool.Pool) *PgPortfolioRepository {
	return &PgPortfolioRepository{pool: pool}
}

var _ PortfolioRepository = (*PgPortfolioRepository)(nil)

func (r *PgPortfolioRepository) FindBySection(ctx context.Context, section model.Section) (*model.PortfolioConfig, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, section, data, last_updated FROM portfolio_config WHERE section = $1`,
		string(section),
	)
	cfg, err := scanPortfolioConfig(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find portfolio section %s: %w", section, err)
	}
	return cfg, nil
}

// Upsert keeps the id of an existing row; only data and last_updated change.
func (r *PgPortfolioRepository) Upsert(ctx context.Context, cfg *model.PortfolioConfig) error {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO portfolio_config (id, section, data, last_updated)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (section) DO UPDATE
		 SET data = EXCLUDED.data, last_updated = EXCLUDED.last_updated
		 RETURNING id, section, data, last_updated`,
		cfg.ID, string(cfg.Section), cfg.Data, cfg.LastUpdated,
	)
	stored, err := scanPortfolioConfig(row)
	if err != nil {
		return fmt.Errorf("upsert portfolio section %s: %w", cfg.Section, err)
	}
	*cfg = *stored
	return nil
}

func scanPortfolioConfig(row pgx.Row) (*model.PortfolioConfig, error) {
	var (
		cfg     model.PortfolioConfig
		section string
	)
	if err := row.Scan(&cfg.ID, &section, &cfg.Data, &cfg.LastUpdated); err != nil {
		return nil, err
	}
	cfg.Section = model.Section(section)
	cfg.LastUpdated = cfg.LastUpdated.UTC()
	return &cfg, nil
}
