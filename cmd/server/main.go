package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nchindhamani/portfolio-api/internal/config"
	"github.com/nchindhamani/portfolio-api/internal/content"
	"github.com/nchindhamani/portfolio-api/internal/handler"
	"github.com/nchindhamani/portfolio-api/internal/logging"
	"github.com/nchindhamani/portfolio-api/internal/repository"
	"github.com/nchindhamani/portfolio-api/internal/service"
	"github.com/nchindhamani/portfolio-api/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("load config failed", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	portfolio, err := content.Load()
	if err != nil {
		logging.Fatal("load portfolio content failed", "error", err)
	}

	ctx := context.Background()

	store, err := openStore(ctx, cfg)
	if err != nil {
		logging.Fatal("open store failed", "backend", cfg.Backend(), "error", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			slog.Error("close store failed", "error", err)
		}
	}()

	shutdownTracing, err := telemetry.Init(ctx, cfg.Telemetry)
	if err != nil {
		logging.Fatal("init telemetry failed", "error", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Error("telemetry shutdown failed", "error", err)
		}
	}()

	// Repositories -> Services -> Handlers
	contactService := service.NewContactService(store.Contacts)
	portfolioService := service.NewPortfolioService(portfolio, store.Portfolio)

	h := handler.New(store.DB, cfg.CORSOrigins)
	contactHandler := handler.NewContactHandler(contactService)
	portfolioHandler := handler.NewPortfolioHandler(portfolioService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/{$}", h.Root)
	mux.HandleFunc("GET /api/health", h.Health)

	mux.HandleFunc("GET /api/portfolio", portfolioHandler.GetAll)
	mux.HandleFunc("GET /api/portfolio/{section}", portfolioHandler.GetSection)

	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("GET /api/contact/messages", contactHandler.List)
	mux.HandleFunc("GET /api/contact/messages/{id}", contactHandler.Get)
	mux.HandleFunc("PATCH /api/contact/messages/{id}/status", contactHandler.UpdateStatus)

	// Outermost first: recovery sees panics from everything below it.
	var root http.Handler = mux
	root = h.CORS(root)
	root = handler.SecurityHeaders(root)
	root = telemetry.Middleware(cfg.Telemetry.ServiceName)(root)
	root = handler.RequestLogger(root)
	root = handler.Recovery(root)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      root,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "backend", cfg.Backend())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}

func openStore(ctx context.Context, cfg *config.Config) (*repository.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if cfg.Backend() == config.BackendPostgres {
		return repository.OpenPostgres(ctx, cfg.DatabaseURL)
	}
	return repository.OpenMongo(ctx, cfg.MongoURL, cfg.DBName)
}
