// Command migrate applies the embedded SQL migrations to the configured
// database. It is intended for deployment pipelines; local development can
// use the goose CLI directly against migrations/.
//
// Flags:
//
//	--down  roll back the most recent migration instead of migrating up
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/ideahub/ideahub-backend/internal/app"
	"github.com/ideahub/ideahub-backend/internal/config"
	"github.com/ideahub/ideahub-backend/migrations"
)

func main() {
	downFlag := flag.Bool("down", false, "roll back the most recent migration")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Error("ping database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		logger.Error("create migration provider", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *downFlag {
		result, err := provider.Down(ctx)
		if err != nil {
			logger.Error("migrate down", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("migration rolled back", slog.String("source", result.Source.Path))
		return
	}

	results, err := provider.Up(ctx)
	if err != nil {
		logger.Error("migrate up", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, r := range results {
		logger.Info("migration applied",
			slog.String("source", r.Source.Path),
			slog.Duration("took", r.Duration),
		)
	}
	if len(results) == 0 {
		logger.Info("database is up to date")
	}
}
