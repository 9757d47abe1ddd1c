//go:generate mockgen -source=contracts.go -destination=mocks_test.go -package=dispatch_test

package dispatch

import (
	"context"
	"time"

	"live-orders-dispatch/internal/domain"
)

type orderRepository interface {
	Get(ctx context.Context, id int64) (*domain.Order, error)
	RecordAssignment(ctx context.Context, orderID, driverID int64, at time.Time) (bool, error)
}

type driverRepository interface {
	Get(ctx context.Context, id int64) (*domain.Driver, error)
	FindActiveByArea(ctx context.Context, area string) (*domain.Driver, error)
}

// notifier delivers a message to a phone number and reports whether the provider accepted it.
type notifier interface {
	SendMessage(ctx context.Context, toPhone, body string) bool
}

type eventPublisher interface {
	Publish(ctx context.Context, e domain.DispatchEvent) error
}

type attemptObserver interface {
	ObserveAttempt(mode domain.DispatchMode, outcome domain.Outcome)
}
