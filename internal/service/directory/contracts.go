//go:generate mockgen -source=contracts.go -destination=mocks_test.go -package=directory_test

package directory

import (
	"context"

	"live-orders-dispatch/internal/domain"
)

// driverRepository defines storage operations required by the directory.
type driverRepository interface {
	Create(ctx context.Context, name, phone string) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Driver, error)
	List(ctx context.Context) ([]domain.Driver, error)
	ToggleActive(ctx context.Context, id int64) (bool, error)
	AddAreas(ctx context.Context, driverID int64, areas []string) (int64, error)
	AreasFor(ctx context.Context, driverID int64) ([]string, error)
	AreasByDriver(ctx context.Context, driverIDs []int64) (map[int64][]string, error)
}
