package kafka

import (
	"strconv"
	"time"

	"live-orders-dispatch/internal/domain"
)

// EventDTO is the wire form of domain.DispatchEvent.
type EventDTO struct {
	AttemptID  string     `json:"attempt_id"`
	Mode       string     `json:"mode"`
	Actor      string     `json:"actor"`
	OrderID    int64      `json:"order_id"`
	DriverID   int64      `json:"driver_id,omitempty"`
	Status     string     `json:"status"`
	Reason     string     `json:"reason,omitempty"`
	NotifiedAt *time.Time `json:"notified_at,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// FromDomain converts domain.DispatchEvent to EventDTO.
func FromDomain(e domain.DispatchEvent) EventDTO {
	dto := EventDTO{
		AttemptID:  e.AttemptID,
		Mode:       string(e.Mode),
		Actor:      e.Actor,
		OrderID:    e.OrderID,
		DriverID:   e.DriverID,
		Status:     string(e.Outcome.Status),
		Reason:     string(e.Outcome.Reason),
		OccurredAt: e.OccurredAt.UTC(),
	}
	if !e.NotifiedAt.IsZero() {
		at := e.NotifiedAt.UTC()
		dto.NotifiedAt = &at
	}
	return dto
}

// Key partitions events by order.
func (d EventDTO) Key() string {
	return strconv.FormatInt(d.OrderID, 10)
}
