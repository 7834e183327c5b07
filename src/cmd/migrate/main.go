package main

import (
	"context"
	"log"
	"time"

	"github.com/api-sage/branch-ledger/src/internal/adapter/repository/postgres"
	"github.com/api-sage/branch-ledger/src/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.DatabaseDSN == "" {
		log.Fatalf("DATABASE_DSN is required to run migrations")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	applied, err := postgres.RunMigrations(ctx, db, cfg.MigrationsDir)
	if err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	log.Printf("migrations completed successfully (%d applied)", len(applied))
}
