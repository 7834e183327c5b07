package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/api-sage/branch-ledger/src/internal/adapter/audit"
	"github.com/api-sage/branch-ledger/src/internal/adapter/http/controller"
	"github.com/api-sage/branch-ledger/src/internal/adapter/http/middleware"
	"github.com/api-sage/branch-ledger/src/internal/adapter/http/router"
	"github.com/api-sage/branch-ledger/src/internal/adapter/repository/memory"
	"github.com/api-sage/branch-ledger/src/internal/adapter/repository/postgres"
	"github.com/api-sage/branch-ledger/src/internal/config"
	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/api-sage/branch-ledger/src/internal/logger"
	"github.com/api-sage/branch-ledger/src/internal/usecase"
	"github.com/api-sage/branch-ledger/src/internal/usecase/services"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger.Configure(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sinks := []domain.AuditRepository{audit.NewFileRepository(cfg.AuditLogPath)}

	var db *sql.DB
	if cfg.DatabaseDSN != "" {
		db, err = openAuditStore(ctx, cfg)
		if err != nil {
			log.Fatalf("open audit store: %v", err)
		}
		defer db.Close()
		sinks = append(sinks, postgres.NewAuditRepository(db))
	}

	bank, err := usecase.NewBank(
		memory.NewClientRepository(),
		memory.NewAccountRepository(),
		usecase.WithAgency(cfg.AgencyNumber),
		usecase.WithPolicy(cfg.Policy),
		usecase.WithProcessingDelay(cfg.ProcessingDelay),
		usecase.WithAuditHook(services.NewAuditHook(sinks...)),
	)
	if err != nil {
		log.Fatalf("create bank: %v", err)
	}

	handler := router.New(
		controller.NewClientController(services.NewClientService(bank)),
		controller.NewAccountController(services.NewAccountService(bank)),
		controller.NewTransactionController(services.NewTransactionService(bank)),
		controller.NewHealthController(),
		middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKey),
	)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http server listening", logger.Fields{
			"addr":      cfg.HTTPAddr,
			"agency":    cfg.AgencyNumber.String(),
			"policy":    cfg.Policy.Kind,
			"auditPath": cfg.AuditLogPath,
			"postgres":  db != nil,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", err, nil)
		return
	}
	logger.Info("http server stopped", nil)
}

func openAuditStore(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	openCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	db, err := postgres.Open(openCtx, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if _, err := postgres.RunMigrations(openCtx, db, cfg.MigrationsDir); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
