package app

import (
	"live-orders-dispatch/internal/config"
	"live-orders-dispatch/internal/logx"
	"live-orders-dispatch/internal/metrics"
	"live-orders-dispatch/internal/service/dispatch"
	"live-orders-dispatch/internal/transport/kafka"
)

var newPublisher = kafka.NewPublisher

// newEventPublisher returns nil when no brokers are configured.
func newEventPublisher(cfg *config.Config, logger logx.Logger) (*kafka.Publisher, error) {
	p, err := newPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
	if err != nil {
		return nil, err
	}
	if p == nil {
		logger.Info("dispatch events disabled: no kafka brokers configured")
	}
	return p, nil
}

func dispatchOptions(pub *kafka.Publisher, attempts *metrics.DispatchAttempts) []dispatch.Option {
	opts := make([]dispatch.Option, 0, 2)
	if pub != nil {
		opts = append(opts, dispatch.WithEventPublisher(pub))
	}
	if attempts != nil {
		opts = append(opts, dispatch.WithAttemptObserver(attempts))
	}
	return opts
}
