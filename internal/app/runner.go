package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"live-orders-dispatch/internal/config"
	"live-orders-dispatch/internal/logx"
	"live-orders-dispatch/internal/transport/kafka"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the HTTP service from a built container.
type Runner struct {
	runFn     func(*dig.Container) error
	logFatalf func(string, ...interface{})
}

// NewRunner returns a Runner
func NewRunner() *Runner {
	return &Runner{runFn: run, logFatalf: log.Fatalf}
}

// MustRun starts the HTTP server and blocks until the container context ends
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := containerLogger(container)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		fatalf := r.logFatalf
		if fatalf == nil {
			fatalf = log.Fatalf
		}
		fatalf("run error: %v", err)
	}
}

func containerLogger(container *dig.Container) logx.Logger {
	var logger logx.Logger
	if err := container.Invoke(func(l logx.Logger) { logger = l }); err != nil {
		return logx.Nop()
	}
	return logx.OrNop(logger)
}

type runIn struct {
	dig.In

	Ctx       context.Context
	Cfg       *config.Config
	Logger    logx.Logger
	Pool      *pgxpool.Pool
	Server    *http.Server
	Pprof     *http.Server     `name:"pprof_server" optional:"true"`
	Publisher *kafka.Publisher `optional:"true"`
}

func run(container *dig.Container) error {
	return container.Invoke(serve)
}

func serve(in runIn) error {
	defer closeResources(in.Pool, in.Publisher, in.Logger)

	if in.Cfg != nil && in.Cfg.Migrate {
		if err := migrate(in.Ctx, in.Pool); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		in.Logger.Info("schema migrations applied")
	}

	errCh := make(chan error, 2)
	startServer(in.Server, "api", in.Logger, errCh)
	if in.Pprof != nil {
		startServer(in.Pprof, "pprof", in.Logger, errCh)
	}

	var runErr error
	select {
	case <-in.Ctx.Done():
		in.Logger.Info("shutting down live-orders-dispatch")
	case runErr = <-errCh:
		in.Logger.Error("server stopped unexpectedly", logx.Err(runErr))
	}

	gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
	if in.Pprof != nil {
		gracefulShutdown(in.Pprof, in.Logger, shutdownTimeout)
	}
	return runErr
}

func startServer(server *http.Server, name string, logger logx.Logger, errCh chan<- error) {
	go func() {
		logger.Info("listening", logx.String("server", name), logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("%s server: %w", name, err)
		}
	}()
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Warn("graceful shutdown error", logx.Err(err))
	}
}

func closeResources(pool *pgxpool.Pool, pub *kafka.Publisher, logger logx.Logger) {
	if err := pub.Close(); err != nil {
		logger.Error("kafka publisher close error", logx.Err(err))
	}
	if pool != nil {
		pool.Close()
	}
}
