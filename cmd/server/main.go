package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/voicebank/voicebank-backend/internal/actions"
	"github.com/voicebank/voicebank-backend/internal/adapter/httpapi"
	"github.com/voicebank/voicebank-backend/internal/adapter/repository/memory"
	"github.com/voicebank/voicebank-backend/internal/config"
	"github.com/voicebank/voicebank-backend/internal/usecase/command"
	"github.com/voicebank/voicebank-backend/internal/usecase/nlu"
	"github.com/voicebank/voicebank-backend/internal/usecase/seeder"
)

func main() {
	// .env is optional; deployed environments set variables directly
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	// 1. Ledger store (process-memory, reset on restart)
	ledger := memory.NewLedgerRepository()

	// 2. Seed demo accounts before serving
	accountSeeder := seeder.NewAccountSeeder(ledger)
	if err := accountSeeder.Seed(context.Background()); err != nil {
		logger.Fatal("failed to seed demo accounts", zap.Error(err))
	}
	logger.Info("demo accounts seeded")

	// 3. Pipeline and collaborators
	classifier := nlu.NewRuleBased()
	pipeline := command.NewService(ledger, classifier, logger)
	executor := actions.NewRemoteExecutor(cfg.AllowRemoteActions, logger)

	// 4. HTTP server
	handler := httpapi.NewHandler(pipeline, ledger, executor)
	router := httpapi.NewRouter(handler)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	waitForShutdown(srv, logger)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(srv *http.Server, logger *zap.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.Info("shutting down gracefully", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	logger.Info("HTTP server stopped")
}
