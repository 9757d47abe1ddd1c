package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"live-orders-dispatch/internal/http/handlers"
	"live-orders-dispatch/internal/http/middleware"
	"live-orders-dispatch/internal/http/middleware/ratelimit"
	"live-orders-dispatch/internal/http/middleware/staffauth"
	"live-orders-dispatch/internal/logx"
)

const defaultRequestTimeout = 20 * time.Second

// Deps is everything the router mounts.
type Deps struct {
	Base     *handlers.Handlers
	Drivers  *handlers.DriverHandler
	Dispatch *handlers.DispatchHandler
	Orders   *handlers.OrdersHandler

	Staff     staffauth.Credentials
	RateLimit *ratelimit.Middleware // nil disables dispatch throttling
	Observer  middleware.RequestObserver
	Gatherer  prometheus.Gatherer // nil serves the default registry

	RequestTimeout time.Duration
	Logger         logx.Logger
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	timeout := d.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	gatherer := d.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Observability(d.Logger, d.Observer))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(timeout))

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.NotFound(d.Base.NotFound)

	r.Route("/api", func(api chi.Router) {
		api.Use(staffauth.Middleware(d.Staff, d.Logger))

		api.Get("/board", d.Orders.Board)

		api.Route("/drivers", func(dr chi.Router) {
			dr.Get("/", d.Drivers.List)
			dr.Post("/", d.Drivers.Create)
			dr.Get("/{id}/areas", d.Drivers.Areas)
			dr.Post("/{id}/areas", d.Drivers.AddAreas)
			dr.Post("/{id}/toggle", d.Drivers.Toggle)
		})

		api.Route("/orders", func(ord chi.Router) {
			ord.Get("/live", d.Orders.Live)

			// every dispatch sends a message, so these are throttled per client
			ord.Group(func(send chi.Router) {
				if d.RateLimit != nil {
					send.Use(d.RateLimit.Handler())
				}
				send.Post("/{id}/assign", d.Dispatch.Assign)
				send.Post("/{id}/auto-assign", d.Dispatch.AutoAssign)
			})
		})
	})

	return r
}
