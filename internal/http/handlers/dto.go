package handlers

import (
	"time"

	"live-orders-dispatch/internal/domain"
)

type outcomeResponse struct {
	Status domain.OutcomeStatus `json:"status"`
	Reason domain.SkipReason    `json:"reason,omitempty"`
}

type driverDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Active    bool      `json:"active"`
	Areas     []string  `json:"areas"`
	CreatedAt time.Time `json:"created_at"`
}

type createDriverRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type createDriverResponse struct {
	outcomeResponse
	ID int64 `json:"id,omitempty"`
}

type addAreasRequest struct {
	Areas    []string `json:"areas,omitempty"`
	AreasCSV string   `json:"areas_csv,omitempty"`
}

type areasResponse struct {
	DriverID int64    `json:"driver_id"`
	Areas    []string `json:"areas"`
}

type toggleResponse struct {
	outcomeResponse
	Active *bool `json:"active,omitempty"`
}

type assignRequest struct {
	DriverID int64 `json:"driver_id"`
}

type dispatchResponse struct {
	outcomeResponse
	AttemptID  string              `json:"attempt_id"`
	Mode       domain.DispatchMode `json:"mode"`
	OrderID    int64               `json:"order_id"`
	DriverID   int64               `json:"driver_id,omitempty"`
	NotifiedAt *time.Time          `json:"notified_at,omitempty"`
}

type liveOrderDTO struct {
	ID         int64                 `json:"id"`
	Address    string                `json:"address"`
	Postcode   string                `json:"postcode"`
	Area       string                `json:"area"`
	Total      string                `json:"total"`
	TotalMinor int64                 `json:"total_minor"`
	Notes      string                `json:"notes"`
	Status     domain.DeliveryStatus `json:"status"`
	DriverID   *int64                `json:"driver_id,omitempty"`
	DriverName string                `json:"driver_name,omitempty"`
	NotifiedAt *time.Time            `json:"notified_at,omitempty"`
	CreatedAt  time.Time             `json:"created_at"`
}

type boardResponse struct {
	Orders  []liveOrderDTO `json:"orders"`
	Drivers []driverDTO    `json:"drivers"`
}
