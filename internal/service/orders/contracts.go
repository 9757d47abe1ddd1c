//go:generate mockgen -source=contracts.go -destination=mocks_test.go -package=orders_test

package orders

import (
	"context"

	"live-orders-dispatch/internal/domain"
)

type liveOrderRepository interface {
	ListLive(ctx context.Context) ([]domain.LiveOrder, error)
}

type driverLister interface {
	ListDriversWithAreas(ctx context.Context) ([]domain.DriverWithAreas, error)
}
