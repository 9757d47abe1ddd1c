package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"live-orders-dispatch/internal/config"
	"live-orders-dispatch/internal/logx"
	testlog "live-orders-dispatch/internal/testutil"
)

func loggerContainer(t *testing.T, rec *testlog.Recorder) *dig.Container {
	t.Helper()

	c := dig.New()
	require.NoError(t, c.Provide(func() logx.Logger { return rec.Logger() }))
	return c
}

func TestRunner_MustRun_ShutdownRequested(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	r := &Runner{runFn: func(*dig.Container) error { return context.Canceled }}

	r.MustRun(loggerContainer(t, rec))
	require.True(t, rec.HasMsg("shutdown requested, exiting"))
}

func TestRunner_MustRun_StartupTimeout(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	r := &Runner{runFn: func(*dig.Container) error { return context.DeadlineExceeded }}

	r.MustRun(loggerContainer(t, rec))
	require.True(t, rec.HasMsg("startup aborted: startup timeout exceeded"))
}

func TestRunner_MustRun_OtherErrorIsFatal(t *testing.T) {
	t.Parallel()

	var got string
	r := &Runner{
		runFn:     func(*dig.Container) error { return errors.New("boom") },
		logFatalf: func(format string, args ...interface{}) { got = fmt.Sprintf(format, args...) },
	}

	r.MustRun(dig.New())
	require.Equal(t, "run error: boom", got)
}

func TestNewRunner_DefaultFields(t *testing.T) {
	t.Parallel()

	r := NewRunner()
	require.NotNil(t, r.runFn)
	require.NotNil(t, r.logFatalf)
	require.Equal(t, fmt.Sprintf("%p", run), fmt.Sprintf("%p", r.runFn))
}

func newLocalServer() *http.Server {
	return &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
}

func TestServe_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	rec := testlog.New()

	done := make(chan error, 1)
	go func() {
		done <- serve(runIn{
			Ctx:    ctx,
			Cfg:    &config.Config{},
			Logger: rec.Logger(),
			Server: newLocalServer(),
			Pprof:  newLocalServer(),
		})
	}()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
	require.True(t, rec.HasMsg("shutting down live-orders-dispatch"))
}

func TestServe_ListenErrorIsReturned(t *testing.T) {
	t.Parallel()

	err := serve(runIn{
		Ctx:    context.Background(),
		Cfg:    &config.Config{},
		Logger: logx.Nop(),
		Server: &http.Server{Addr: "127.0.0.1:-1", Handler: http.NewServeMux()},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "api server")
}

func TestServe_MigratesWhenAsked(t *testing.T) {
	sentinel := errors.New("migrate failed")
	orig := migrate
	migrate = func(context.Context, *pgxpool.Pool) error { return sentinel }
	t.Cleanup(func() { migrate = orig })

	err := serve(runIn{
		Ctx:    context.Background(),
		Cfg:    &config.Config{Migrate: true},
		Logger: logx.Nop(),
		Server: newLocalServer(),
	})
	require.ErrorIs(t, err, sentinel)
}

func TestRun_InvokesServeViaContainer(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := dig.New()
	require.NoError(t, c.Provide(func() context.Context { return ctx }))
	require.NoError(t, c.Provide(func() *config.Config { return &config.Config{} }))
	require.NoError(t, c.Provide(logx.Nop))
	require.NoError(t, c.Provide(func() *pgxpool.Pool { return nil }))
	require.NoError(t, c.Provide(newLocalServer))

	require.NoError(t, run(c))
}
