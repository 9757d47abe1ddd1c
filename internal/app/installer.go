package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"live-orders-dispatch/internal/logx"
	"live-orders-dispatch/internal/repository"
)

// InstallerRunner applies the schema migrations and exits.
type InstallerRunner struct {
	runFn func(*dig.Container) error
}

// NewInstallerRunner returns a new InstallerRunner
func NewInstallerRunner() *InstallerRunner {
	return &InstallerRunner{runFn: runInstaller}
}

// MustRun applies the migrations; anything but cancellation panics.
func (r *InstallerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func runInstaller(container *dig.Container) error {
	return container.Invoke(install)
}

func install(ctx context.Context, pool *pgxpool.Pool, logger logx.Logger) error {
	if pool == nil {
		return fmt.Errorf("db pool is nil: installer container misconfigured")
	}
	defer pool.Close()

	files, err := repository.Migrations()
	if err != nil {
		return err
	}
	if err := migrate(ctx, pool); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Info("schema installed", logx.Int("migrations", len(files)), logx.Any("files", files))
	return nil
}
