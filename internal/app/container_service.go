package app

import (
	"time"

	"go.uber.org/dig"

	"live-orders-dispatch/internal/config"
	"live-orders-dispatch/internal/gateway/notify"
	"live-orders-dispatch/internal/logx"
	"live-orders-dispatch/internal/metrics"
	"live-orders-dispatch/internal/repository"
	"live-orders-dispatch/internal/service/directory"
	"live-orders-dispatch/internal/service/dispatch"
	"live-orders-dispatch/internal/service/orders"
	"live-orders-dispatch/internal/transport/kafka"
)

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewDriverRepo,
		repository.NewOrderRepo,
		func(repo *repository.DriverRepo, timeout operationTimeout, logger logx.Logger) *directory.Service {
			return directory.NewService(repo, time.Duration(timeout), logger)
		},
		func(repo *repository.OrderRepo, dir *directory.Service, timeout operationTimeout) *orders.Service {
			return orders.NewService(repo, dir, time.Duration(timeout))
		},
		newNotifier,
		newEventPublisher,
		newDispatchService,
	)
}

func newNotifier(cfg *config.Config, logger logx.Logger, rec *metrics.Notifications) notify.Sender {
	return notify.NewInstrumented(notify.New(cfg.Notify, logger), rec)
}

type dispatchIn struct {
	dig.In

	Orders    *repository.OrderRepo
	Drivers   *repository.DriverRepo
	Notifier  notify.Sender
	Publisher *kafka.Publisher `optional:"true"`
	Attempts  *metrics.DispatchAttempts
	Timeout   operationTimeout
	Logger    logx.Logger
}

func newDispatchService(in dispatchIn) *dispatch.Service {
	return dispatch.NewService(
		in.Orders,
		in.Drivers,
		in.Notifier,
		time.Duration(in.Timeout),
		in.Logger,
		dispatchOptions(in.Publisher, in.Attempts)...,
	)
}
