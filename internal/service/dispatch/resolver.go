package dispatch

import (
	"context"

	"live-orders-dispatch/internal/domain"
)

// Resolver picks the driver covering a postcode.
type Resolver struct {
	drivers driverRepository
}

// NewResolver creates a Resolver over the driver store.
func NewResolver(drivers driverRepository) *Resolver {
	return &Resolver{drivers: drivers}
}

// FindDriverForPostcode returns the active driver with the lowest id whose areas contain the
// postcode's outward code. A nil driver with a nil error means nobody covers the area.
func (r *Resolver) FindDriverForPostcode(ctx context.Context, postcode string) (*domain.Driver, error) {
	area := domain.OutwardCode(postcode)
	if area == "" {
		return nil, nil
	}
	return r.drivers.FindActiveByArea(ctx, area)
}
