package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cerberus-watch/cerberus/internal/api"
	"github.com/cerberus-watch/cerberus/internal/auth"
	"github.com/cerberus-watch/cerberus/internal/briefing"
	"github.com/cerberus-watch/cerberus/internal/config"
	"github.com/cerberus-watch/cerberus/internal/database"
	"github.com/cerberus-watch/cerberus/internal/feed"
	"github.com/cerberus-watch/cerberus/internal/jsonstore"
	"github.com/cerberus-watch/cerberus/internal/logging"
	"github.com/cerberus-watch/cerberus/internal/metrics"
	"github.com/cerberus-watch/cerberus/internal/server"
	"log/slog"
)

// dataStore is the storage surface main wires together. Both the Postgres
// store and the JSON fixture store provide it.
type dataStore interface {
	api.DataStore
	api.UserStore
	feed.Source
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stdout, nil)).Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stdout, nil)).Error("failed to init logger", "error", err)
		os.Exit(1)
	}

	logger.Info("starting Cerberus Watch")

	// Background context for the poller and session sweeper; cancelled when
	// shutdown begins.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Pick the storage backend: Postgres when DATABASE_URL is set, JSON
	// fixtures otherwise so the dashboard runs without a database.
	var store dataStore
	var sessions auth.SessionStore

	if cfg.Database.URL != "" {
		logger.Info("connecting to database")
		dbCfg := database.DefaultConfig()
		dbCfg.URL = cfg.Database.URL
		db, err := database.Connect(ctx, dbCfg)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		logger.Info("database connected")

		// Run pending migrations (non-fatal to allow app to start even if migrations fail)
		if err := database.RunMigrations(db, "./migrations", logger); err != nil {
			logger.Warn("failed to run migrations, continuing anyway", "error", err)
		}

		pgStore := database.NewStore(db)
		store = pgStore

		// Seed empty tables from the fixture set so a fresh database serves
		// data immediately.
		if err := pgStore.ImportFixtures(ctx, jsonstore.New(cfg.Data.Dir), logger); err != nil {
			logger.Warn("failed to import fixtures, continuing anyway", "error", err)
		}

		sessionRepo := database.NewSessionRepository(db)
		sessions = sessionRepo

		// Expired sessions accumulate otherwise
		go auth.SweepExpiredSessions(ctx, sessionRepo, time.Hour, logger)
	} else {
		logger.Info("no DATABASE_URL set, serving JSON fixtures", "dir", cfg.Data.Dir)
		store = jsonstore.New(cfg.Data.Dir)
		sessions = auth.NewMemorySessionStore()
	}

	// Briefings use OpenAI when a key is configured, a deterministic
	// rule-based generator otherwise.
	var briefer briefing.Generator
	if cfg.OpenAI.APIKey != "" {
		logger.Info("using OpenAI briefing generator", "model", cfg.OpenAI.Model)
		briefer = briefing.NewOpenAIGenerator(cfg.OpenAI.APIKey, cfg.OpenAI.Model, logger)
	} else {
		logger.Info("OPENAI_API_KEY not set, using rule-based briefing generator")
		briefer = briefing.NewRuleBasedGenerator()
	}

	// The notification poller keeps a periodically refreshed feed snapshot.
	poller := feed.NewPoller(store, cfg.Feed.RefreshInterval, logger)
	go poller.Start(ctx)

	mux := http.NewServeMux()

	collector, err := metrics.NewHTTPCollector()
	if err != nil {
		logger.Error("failed to init metrics", "error", err)
		os.Exit(1)
	}
	mux.Handle("/metrics", collector.Handler())

	authConfig := auth.LoadConfigFromEnv()
	logger.Info("auth configured", "jwt_secret_set", authConfig.JWTSecret != "change-this-secret")

	logger.Info("setting up REST API")
	api.SetupRoutes(mux, store, store, sessions, poller, briefer, authConfig, logger)

	// Wrap with SPA middleware to serve frontend for non-API routes
	logger.Info("setting up static file server for web UI")
	handler := server.SPAMiddleware(collector.InstrumentHandler(mux), "./web/dist", "./web/dist/index.html")

	srv := server.New(cfg.Server, logger, handler)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	logger.Info("Cerberus Watch started successfully")
	logger.Info("API available", "url", fmt.Sprintf("http://localhost:%s", cfg.Server.Port))

	waitForSignal(logger)

	logger.Info("shutting down")
	cancel()
	poller.Stop()
	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	logger.Info("shutdown complete")
}

func waitForSignal(logger *slog.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	sig := <-c
	logger.Info("received signal", "signal", sig.String())
	signal.Stop(c)
	close(c)
}
