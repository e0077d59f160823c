package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inforreel_backend/database"
	"inforreel_backend/internal/config"
	"inforreel_backend/internal/handlers"
	"inforreel_backend/internal/logger"
	"inforreel_backend/internal/repositories"
	"inforreel_backend/internal/workers"
	"inforreel_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func Run() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}

	logger.Init(logger.Options{
		Env:        cfg.Server.Env,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	apperrors.SetDebug(cfg.IsDevelopment())
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.PingContext(ctx); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	defer sqlDB.Close()
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	store, err := openSessionStore(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to open session store", "store", cfg.Sessions.Store, "error", err)
	}
	logger.Info("Session store connected", "store", cfg.Sessions.Store)

	sender, err := newSender(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize email sender", "provider", cfg.Email.Provider, "error", err)
	}

	ginRouter, err := SetupRouter(cfg, &Dependencies{
		DB:       gormDB,
		Sessions: store.repo,
		Sender:   sender,
		Checks: map[string]handlers.Pinger{
			"database":         handlers.PingerFunc(sqlDB.PingContext),
			cfg.Sessions.Store: store.ping,
		},
	})
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	workers.NewOTPCleanupWorker(repositories.NewAccountRepository(gormDB), cfg.OTP.CleanupInterval).Start(ctx)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("🚀 Server starting on %s", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server startup error", "error", err)
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	if err := store.close(shutdownCtx); err != nil {
		logger.Error("Failed to close session store", "error", err)
	}
	logger.Info("Server stopped")
}
