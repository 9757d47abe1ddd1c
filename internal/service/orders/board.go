// Package orders serves the live-operations view: orders awaiting or in dispatch.
package orders

import (
	"context"
	"time"

	"live-orders-dispatch/internal/domain"
)

// Board is everything the live-operations page needs in one read.
type Board struct {
	Orders  []domain.LiveOrder
	Drivers []domain.DriverWithAreas
}

// Service reads the live-operations view.
type Service struct {
	orders           liveOrderRepository
	drivers          driverLister
	operationTimeout time.Duration
}

// NewService creates an orders Service.
func NewService(orders liveOrderRepository, drivers driverLister, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{orders: orders, drivers: drivers, operationTimeout: timeout}
}

// Live returns orders with status new or assigned, newest first.
func (s *Service) Live(ctx context.Context) ([]domain.LiveOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	list, err := s.orders.ListLive(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.LiveOrder{}
	}
	return list, nil
}

// Board returns the live orders together with every driver and its areas.
func (s *Service) Board(ctx context.Context) (Board, error) {
	list, err := s.Live(ctx)
	if err != nil {
		return Board{}, err
	}
	drivers, err := s.drivers.ListDriversWithAreas(ctx)
	if err != nil {
		return Board{}, err
	}
	return Board{Orders: list, Drivers: drivers}, nil
}
