// Command migrate applies the database schema. Safe to re-run.
package main

import (
	"context"
	"log"
	"time"

	"novellia-pets/internal/adapters/storage/postgres"
	"novellia-pets/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("migrate: config: %v", err)
	}
	if !cfg.HasDatabase() {
		log.Fatal("migrate: DATABASE_URL or DB_USER must be set")
	}

	db, err := postgres.Open(cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("migrate: connect: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	log.Println("migrate: schema applied")
}
