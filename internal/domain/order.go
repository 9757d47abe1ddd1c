package domain

import (
	"fmt"
	"time"
)

// Order carries the delivery-relevant fields of an order.
type Order struct {
	ID               int64
	AddressLine1     string
	Postcode         string
	TotalMinor       int64 // total in pence
	Notes            string
	DeliveryStatus   DeliveryStatus
	AssignedDriverID *int64
	NotifiedAt       *time.Time
	CreatedAt        time.Time
}

// LiveOrder is an order row of the live-operations view.
type LiveOrder struct {
	Order
	DriverName string
}

// FormatMoney renders an amount in minor units as pounds with two decimals.
func FormatMoney(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s£%d.%02d", sign, minor/100, minor%100)
}
