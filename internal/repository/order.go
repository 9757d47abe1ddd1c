package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"live-orders-dispatch/internal/domain"
)

const orderColumns = `
    o.id,
    COALESCE(o.address_line1, ''),
    COALESCE(o.address_postcode, ''),
    ROUND(o.total * 100)::bigint,
    COALESCE(o.notes, ''),
    o.delivery_status,
    o.assigned_driver_id,
    o.sent_whatsapp_at,
    o.created_at`

// OrderRepo represents the delivery side of the orders table.
type OrderRepo struct{ db *pgxpool.Pool }

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo { return &OrderRepo{db: db} }

// Get returns order by its ID, or nil if it does not exist.
func (r *OrderRepo) Get(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	err := r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders o WHERE o.id = $1`, id).
		Scan(orderDest(&o)...)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return &o, nil
}

// RecordAssignment marks the order assigned to the driver and stamps the notification time
// in one statement. It reports false when the order is missing or no longer dispatchable.
func (r *OrderRepo) RecordAssignment(ctx context.Context, orderID, driverID int64, at time.Time) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET delivery_status    = $3,
            assigned_driver_id = $2,
            sent_whatsapp_at   = $4
        WHERE id = $1
          AND delivery_status = ANY($5)
    `, orderID, driverID, string(domain.DeliveryAssigned), at, liveStatusStrings())
	if err != nil {
		if IsForeignKeyViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("record assignment of order %d: %w", orderID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// ListLive returns orders awaiting or in dispatch, newest first, with the assigned driver name.
func (r *OrderRepo) ListLive(ctx context.Context) ([]domain.LiveOrder, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+orderColumns+`, COALESCE(d.name, '')
        FROM orders o
        LEFT JOIN drivers d ON d.id = o.assigned_driver_id
        WHERE o.delivery_status = ANY($1)
        ORDER BY o.created_at DESC, o.id DESC
    `, liveStatusStrings())
	if err != nil {
		return nil, fmt.Errorf("list live orders: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LiveOrder, error) {
		var lo domain.LiveOrder
		err := row.Scan(append(orderDest(&lo.Order), &lo.DriverName)...)
		return lo, err
	})
	if err != nil {
		return nil, fmt.Errorf("list live orders: %w", err)
	}
	return out, nil
}

func orderDest(o *domain.Order) []any {
	return []any{
		&o.ID, &o.AddressLine1, &o.Postcode, &o.TotalMinor, &o.Notes,
		&o.DeliveryStatus, &o.AssignedDriverID, &o.NotifiedAt, &o.CreatedAt,
	}
}

func liveStatusStrings() []string {
	live := domain.LiveStatuses()
	out := make([]string, len(live))
	for i, s := range live {
		out[i] = string(s)
	}
	return out
}
