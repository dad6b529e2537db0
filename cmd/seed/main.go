package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/nchindhamani/portfolio-api/internal/config"
	"github.com/nchindhamani/portfolio-api/internal/content"
	"github.com/nchindhamani/portfolio-api/internal/logging"
	"github.com/nchindhamani/portfolio-api/internal/repository"
	"github.com/nchindhamani/portfolio-api/internal/service"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: seed [command]

Commands:
  (default)        upsert every static portfolio section into portfolio_config
  show <section>   print the stored copy of a section as JSON`)
	os.Exit(1)
}

func main() {
	cfg, err := config.Load(".env", "../.env")
	if err != nil {
		logging.Fatal("load config failed", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	portfolio, err := content.Load()
	if err != nil {
		logging.Fatal("load portfolio content failed", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := openStore(ctx, cfg)
	if err != nil {
		logging.Fatal("open store failed", "backend", cfg.Backend(), "error", err)
	}
	defer func() { _ = store.Close(context.Background()) }()

	svc := service.NewPortfolioService(portfolio, store.Portfolio)

	args := os.Args[1:]
	switch {
	case len(args) == 0:
		runSync(ctx, svc)
	case args[0] == "show" && len(args) == 2:
		runShow(ctx, svc, args[1])
	default:
		usage()
	}
}

func openStore(ctx context.Context, cfg *config.Config) (*repository.Store, error) {
	if cfg.Backend() == config.BackendPostgres {
		return repository.OpenPostgres(ctx, cfg.DatabaseURL)
	}
	return repository.OpenMongo(ctx, cfg.MongoURL, cfg.DBName)
}

func runSync(ctx context.Context, svc service.PortfolioService) {
	saved, err := svc.SyncSections(ctx)
	for _, c := range saved {
		slog.Info("section saved", "section", c.Section, "id", c.ID)
	}
	if err != nil {
		logging.Fatal("sync sections failed", "saved", len(saved), "error", err)
	}
	slog.Info("sync completed", "count", len(saved))
}

func runShow(ctx context.Context, svc service.PortfolioService, section string) {
	cfg, err := svc.StoredSection(ctx, section)
	switch {
	case errors.Is(err, service.ErrSectionNotFound):
		logging.Fatal("unknown section", "section", section)
	case errors.Is(err, repository.ErrNotFound):
		logging.Fatal("section not stored yet; run seed first", "section", section)
	case err != nil:
		logging.Fatal("read section failed", "section", section, "error", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		logging.Fatal("encode section failed", "error", err)
	}
}
