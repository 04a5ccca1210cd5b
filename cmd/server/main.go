package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"quizowl/internal/config"
	"quizowl/internal/database"
	"quizowl/internal/handlers"
	"quizowl/internal/logger"
	"quizowl/internal/monitoring"
	"quizowl/internal/repository"
	"quizowl/internal/security"
	"quizowl/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(cfg)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(registry)

	store := service.NewSeededIdentityStore()
	deps := service.SessionDeps{
		Store:   store,
		Metrics: metrics,
		Logger:  log,
	}

	// The answer journal is optional; without it answers live in memory only
	if cfg.JournalEnabled {
		db, err := database.InitializeWithConfig(cfg)
		if err != nil {
			log.Fatal("failed to initialize database", zap.Error(err))
		}
		defer db.Close()

		log.Info("database connection established", zap.String("type", cfg.DatabaseType))

		if err := db.RunMigrations(ctx, cfg.MigrationsPath, log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
		deps.Journal = repository.NewJournalRepository(db)
	}

	sessions := service.NewSessionManager(deps, cfg.SessionDuration)

	secret := cfg.SessionSecret
	if secret == "" {
		generated, err := security.GenerateSecret()
		if err != nil {
			log.Fatal("failed to generate session secret", zap.Error(err))
		}
		log.Warn("SESSION_SECRET not set, sessions will not survive a restart")
		secret = generated
	}
	tokens := security.NewTokenIssuer(secret, cfg.SessionDuration)
	limiter := security.NewRateLimiter(cfg.LoginRateLimit, time.Minute)

	email, err := service.NewEmailService(ctx, service.EmailOptions{
		AWSRegion:    cfg.AWSRegion,
		FromEmail:    cfg.SESFromEmail,
		FromName:     cfg.SESFromName,
		SupportEmail: cfg.SupportEmail,
		AppBaseURL:   cfg.AppBaseURL,
		Debug:        cfg.EmailDebug,
	}, log)
	if err != nil {
		log.Fatal("failed to initialize email service", zap.Error(err))
	}

	handler := handlers.NewRouter(handlers.RouterDeps{
		Sessions:  sessions,
		Tokens:    tokens,
		Limiter:   limiter,
		Quiz:      service.NewQuizService(repository.NewDefaultQuestionBank()),
		Accounts:  service.NewAccountService(store, email, log),
		Assistant: service.NewAssistant(),
		Metrics:   metrics,
		Logger:    log,
	})

	// Background cleanup of idle sessions and rate limiter visitors
	go sessions.RunCleanup(ctx, 10*time.Minute)
	go limiter.RunCleanup(ctx, 5*time.Minute)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("addr", "http://localhost"+addr), zap.String("env", cfg.Environment))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
		os.Exit(1)
	}
}
