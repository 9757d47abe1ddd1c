package metrics

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"live-orders-dispatch/internal/domain"
)

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// DispatchAttempts counts dispatch attempts by mode, outcome and skip reason.
type DispatchAttempts struct {
	total *prometheus.CounterVec
}

// NewDispatchAttempts returns an unregistered DispatchAttempts collector.
func NewDispatchAttempts() *DispatchAttempts {
	return &DispatchAttempts{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dispatch_attempts_total",
			Help: "Total number of dispatch attempts",
		}, []string{"mode", "outcome", "reason"}),
	}
}

// ObserveAttempt records the outcome of one attempt.
func (m *DispatchAttempts) ObserveAttempt(mode domain.DispatchMode, out domain.Outcome) {
	reason := string(out.Reason)
	if reason == "" {
		reason = "none"
	}
	m.total.WithLabelValues(string(mode), string(out.Status), reason).Inc()
}

// Describe implements prometheus.Collector.
func (m *DispatchAttempts) Describe(ch chan<- *prometheus.Desc) { m.total.Describe(ch) }

// Collect implements prometheus.Collector.
func (m *DispatchAttempts) Collect(ch chan<- prometheus.Metric) { m.total.Collect(ch) }

// Notifications counts provider calls by result and times them.
type Notifications struct {
	total    *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewNotifications returns an unregistered Notifications collector.
func NewNotifications() *Notifications {
	return &Notifications{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Total number of driver notifications by result",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "notification_duration_seconds",
			Help:    "Duration of messaging provider calls.",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15},
		}),
	}
}

// ObserveSend records one provider call.
func (n *Notifications) ObserveSend(ok bool, d time.Duration) {
	result := "failure"
	if ok {
		result = "success"
	}
	n.total.WithLabelValues(result).Inc()
	n.duration.Observe(d.Seconds())
}

// Describe implements prometheus.Collector.
func (n *Notifications) Describe(ch chan<- *prometheus.Desc) {
	n.total.Describe(ch)
	n.duration.Describe(ch)
}

// Collect implements prometheus.Collector.
func (n *Notifications) Collect(ch chan<- prometheus.Metric) {
	n.total.Collect(ch)
	n.duration.Collect(ch)
}

// HTTPRequests counts and times HTTP requests by method, route pattern and status.
type HTTPRequests struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewHTTPRequests returns an unregistered HTTPRequests collector.
func NewHTTPRequests() *HTTPRequests {
	labels := []string{"method", "path", "status"}
	return &HTTPRequests{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, labels),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, labels),
	}
}

// ObserveRequest records one served request.
func (h *HTTPRequests) ObserveRequest(method, path string, status int, d time.Duration) {
	code := strconv.Itoa(status)
	h.total.WithLabelValues(method, path, code).Inc()
	h.duration.WithLabelValues(method, path, code).Observe(d.Seconds())
}

// Describe implements prometheus.Collector.
func (h *HTTPRequests) Describe(ch chan<- *prometheus.Desc) {
	h.total.Describe(ch)
	h.duration.Describe(ch)
}

// Collect implements prometheus.Collector.
func (h *HTTPRequests) Collect(ch chan<- prometheus.Metric) {
	h.total.Collect(ch)
	h.duration.Collect(ch)
}

// Register registers collectors, tolerating ones that are already registered.
func Register(reg prometheus.Registerer, cs ...prometheus.Collector) error {
	for _, c := range cs {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return fmt.Errorf("register collector: %w", err)
		}
	}
	return nil
}
