package dispatch

import (
	"context"
	"time"

	"live-orders-dispatch/internal/domain"
)

// StateMachine guards and records delivery status transitions of orders.
type StateMachine struct {
	orders orderRepository
	now    func() time.Time
}

// NewStateMachine creates a StateMachine over the order store.
func NewStateMachine(orders orderRepository) *StateMachine {
	return &StateMachine{
		orders: orders,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CanDispatch reports whether the order may be (re)assigned to a driver.
func (m *StateMachine) CanDispatch(o *domain.Order) bool {
	return o.DeliveryStatus.CanTransitionTo(domain.DeliveryAssigned)
}

// RecordAssignment moves the order to assigned, stores the driver and stamps the
// notification time in a single write. It must only be called after a successful send.
// ok is false when the order vanished or left the dispatchable states in the meantime.
func (m *StateMachine) RecordAssignment(ctx context.Context, orderID, driverID int64) (at time.Time, ok bool, err error) {
	at = m.now()
	ok, err = m.orders.RecordAssignment(ctx, orderID, driverID, at)
	if err != nil || !ok {
		return time.Time{}, ok, err
	}
	return at, true, nil
}
