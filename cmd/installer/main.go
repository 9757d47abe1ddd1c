package main

import (
	"context"
	"os/signal"
	"syscall"

	"live-orders-dispatch/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	container := app.MustBuildInstallerContainer(ctx)
	app.NewInstallerRunner().MustRun(container)
}
