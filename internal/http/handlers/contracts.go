package handlers

import (
	"context"

	"live-orders-dispatch/internal/domain"
	"live-orders-dispatch/internal/service/orders"
)

type directoryUsecase interface {
	AddDriver(ctx context.Context, actor domain.Actor, name, phone string) (int64, domain.Outcome, error)
	SetAreas(ctx context.Context, actor domain.Actor, driverID int64, areas []string) (domain.Outcome, error)
	SetAreasCSV(ctx context.Context, actor domain.Actor, driverID int64, csv string) (domain.Outcome, error)
	ToggleActive(ctx context.Context, actor domain.Actor, driverID int64) (domain.Outcome, error)
	Get(ctx context.Context, driverID int64) (*domain.Driver, error)
	AreasFor(ctx context.Context, driverID int64) ([]string, error)
	ListDriversWithAreas(ctx context.Context) ([]domain.DriverWithAreas, error)
}

type dispatchUsecase interface {
	AssignAndSend(ctx context.Context, actor domain.Actor, orderID, driverID int64) (domain.DispatchResult, error)
	AutoAssignAndSend(ctx context.Context, actor domain.Actor, orderID int64) (domain.DispatchResult, error)
}

type liveOrdersUsecase interface {
	Live(ctx context.Context) ([]domain.LiveOrder, error)
	Board(ctx context.Context) (orders.Board, error)
}
