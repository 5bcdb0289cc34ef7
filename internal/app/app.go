package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ideahub/ideahub-backend/internal/adapter/postgres"
	evalrepo "github.com/ideahub/ideahub-backend/internal/adapter/postgres/evaluation"
	idearepo "github.com/ideahub/ideahub-backend/internal/adapter/postgres/idea"
	"github.com/ideahub/ideahub-backend/internal/config"
	evalsvc "github.com/ideahub/ideahub-backend/internal/service/evaluation"
	ideasvc "github.com/ideahub/ideahub-backend/internal/service/idea"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App holds the wired application: configuration, logger, database pool, and
// the two services. The HTTP layer lives in a separate deployment unit and
// consumes App through these fields; nothing here owns a listener.
type App struct {
	Cfg         *config.Config
	Log         *slog.Logger
	Pool        *pgxpool.Pool
	Ideas       *ideasvc.Service
	Evaluations *evalsvc.Service
}

// New loads configuration, connects to PostgreSQL, and wires repositories
// into services. Callers must Close the returned App.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	ideas := idearepo.New(pool)
	evaluations := evalrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	return &App{
		Cfg:         cfg,
		Log:         logger,
		Pool:        pool,
		Ideas:       ideasvc.NewService(logger, ideas, cfg.Ideas),
		Evaluations: evalsvc.NewService(logger, ideas, evaluations, tx, cfg.Ideas),
	}, nil
}

// Close releases the database pool.
func (a *App) Close() {
	a.Pool.Close()
}

// Run is the application entry point: it wires the App, logs startup
// information, and blocks until the context is cancelled.
func Run(ctx context.Context) error {
	a, err := New(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	a.Log.Info("application started",
		slog.String("version", BuildVersion()),
		slog.String("log_level", a.Cfg.Log.Level),
	)

	<-ctx.Done()

	a.Log.Info("application stopping")
	return nil
}
