package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"live-orders-dispatch/internal/config"
	"live-orders-dispatch/internal/http/handlers"
	"live-orders-dispatch/internal/http/middleware/ratelimit"
	"live-orders-dispatch/internal/http/middleware/staffauth"
	"live-orders-dispatch/internal/http/pprofserver"
	"live-orders-dispatch/internal/http/router"
	"live-orders-dispatch/internal/logx"
	"live-orders-dispatch/internal/metrics"
	"live-orders-dispatch/internal/service/directory"
	"live-orders-dispatch/internal/service/dispatch"
	"live-orders-dispatch/internal/service/orders"
)

func registerHTTP(container *dig.Container) error {
	return provideAll(container,
		handlers.New,
		func(l logx.Logger, s *directory.Service) *handlers.DriverHandler { return handlers.NewDriverHandler(l, s) },
		func(l logx.Logger, s *dispatch.Service) *handlers.DispatchHandler { return handlers.NewDispatchHandler(l, s) },
		func(l logx.Logger, s *orders.Service) *handlers.OrdersHandler { return handlers.NewOrdersHandler(l, s) },
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		staffCredentials,
		newRouter,
		newServer,
		newPprofServer,
	)
}

func staffCredentials(cfg *config.Config) staffauth.Credentials {
	return staffauth.Credentials{User: cfg.Auth.User, Pass: cfg.Auth.Pass}
}

type routerIn struct {
	dig.In

	Cfg       *config.Config
	Logger    logx.Logger
	Base      *handlers.Handlers
	Drivers   *handlers.DriverHandler
	Dispatch  *handlers.DispatchHandler
	Orders    *handlers.OrdersHandler
	Staff     staffauth.Credentials
	RateLimit *ratelimit.Middleware
	Requests  *metrics.HTTPRequests
	Gatherer  prometheus.Gatherer
}

func newRouter(in routerIn) http.Handler {
	if !in.Staff.Configured() {
		in.Logger.Warn("staff credentials not configured: /api is closed")
	}
	return router.New(router.Deps{
		Base:           in.Base,
		Drivers:        in.Drivers,
		Dispatch:       in.Dispatch,
		Orders:         in.Orders,
		Staff:          in.Staff,
		RateLimit:      in.RateLimit,
		Observer:       in.Requests,
		Gatherer:       in.Gatherer,
		RequestTimeout: in.Cfg.HTTP.RequestTimeout,
		Logger:         in.Logger,
	})
}

func newServer(cfg *config.Config, mux http.Handler) *http.Server {
	// the write timeout must cover a full provider call plus the commit
	write := cfg.Notify.Timeout + 15*time.Second
	if rt := cfg.HTTP.RequestTimeout + 5*time.Second; rt > write {
		write = rt
	}
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      write,
		IdleTimeout:       60 * time.Second,
	}
}

type pprofOut struct {
	dig.Out

	Server *http.Server `name:"pprof_server"`
}

// newPprofServer yields a nil server when PPROF_ADDR is empty.
func newPprofServer(cfg *config.Config, creds staffauth.Credentials, logger logx.Logger) pprofOut {
	if cfg.PprofAddr == "" {
		return pprofOut{}
	}
	return pprofOut{Server: &http.Server{
		Addr:              cfg.PprofAddr,
		Handler:           pprofserver.Handler(creds, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}}
}
