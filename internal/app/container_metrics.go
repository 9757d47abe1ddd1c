package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/dig"

	"live-orders-dispatch/internal/metrics"
)

type registryOut struct {
	dig.Out

	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

func newRegistry() (registryOut, error) {
	reg := prometheus.NewRegistry()
	if err := metrics.Register(reg,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	); err != nil {
		return registryOut{}, err
	}
	return registryOut{Registerer: reg, Gatherer: reg}, nil
}

type metricsOut struct {
	dig.Out

	Dispatch      *metrics.DispatchAttempts
	Notifications *metrics.Notifications
	HTTP          *metrics.HTTPRequests
	RateLimited   prometheus.Counter `name:"rate_limit_exceeded_total"`
}

func newMetrics(reg prometheus.Registerer) (metricsOut, error) {
	out := metricsOut{
		Dispatch:      metrics.NewDispatchAttempts(),
		Notifications: metrics.NewNotifications(),
		HTTP:          metrics.NewHTTPRequests(),
		RateLimited:   metrics.NewRateLimitExceededTotal(),
	}
	if err := metrics.Register(reg, out.Dispatch, out.Notifications, out.HTTP, out.RateLimited); err != nil {
		return metricsOut{}, err
	}
	return out, nil
}

func registerMetrics(container *dig.Container) error {
	return provideAll(container, newRegistry, newMetrics)
}
