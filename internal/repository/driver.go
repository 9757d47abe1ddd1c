package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"live-orders-dispatch/internal/apperr"
	"live-orders-dispatch/internal/domain"
)

const driverColumns = `d.id, d.name, d.phone, d.active, d.created_at`

// DriverRepo represents driver repository.
type DriverRepo struct{ db *pgxpool.Pool }

// NewDriverRepo creates a new DriverRepo.
func NewDriverRepo(db *pgxpool.Pool) *DriverRepo { return &DriverRepo{db: db} }

// Create inserts an active driver and returns its id.
func (r *DriverRepo) Create(ctx context.Context, name, phone string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO drivers(name, phone, active) VALUES($1, $2, TRUE) RETURNING id`,
		name, phone,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create driver: %w", err)
	}
	return id, nil
}

// Get returns driver by its ID, or nil if it does not exist.
func (r *DriverRepo) Get(ctx context.Context, id int64) (*domain.Driver, error) {
	d, err := scanDriver(r.db.QueryRow(ctx,
		`SELECT `+driverColumns+` FROM drivers d WHERE d.id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver %d: %w", id, err)
	}
	return d, nil
}

// List returns all drivers, active first, then by name.
func (r *DriverRepo) List(ctx context.Context) ([]domain.Driver, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+driverColumns+` FROM drivers d ORDER BY d.active DESC, d.name ASC, d.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Driver, 0)
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("scan driver: %w", err)
		}
		out = append(out, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	return out, nil
}

// ToggleActive flips the active flag and reports whether the driver exists.
func (r *DriverRepo) ToggleActive(ctx context.Context, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `UPDATE drivers SET active = NOT active WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("toggle driver %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// AddAreas attaches area keys to a driver, ignoring pairs that already exist.
// It returns the number of newly attached keys, or apperr.ErrNotFound for an unknown driver.
func (r *DriverRepo) AddAreas(ctx context.Context, driverID int64, areas []string) (int64, error) {
	var added int64
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		var id int64
		err := tx.QueryRow(ctx, `SELECT id FROM drivers WHERE id = $1 FOR SHARE`, driverID).Scan(&id)
		if err != nil {
			if IsNotFound(err) {
				return fmt.Errorf("driver %d: %w", driverID, apperr.ErrNotFound)
			}
			return fmt.Errorf("lock driver %d: %w", driverID, err)
		}

		ct, err := tx.Exec(ctx, `
            INSERT INTO driver_areas (driver_id, area_prefix)
            SELECT $1, a FROM unnest($2::text[]) AS a
            ON CONFLICT (driver_id, area_prefix) DO NOTHING
        `, driverID, areas)
		if err != nil {
			if IsForeignKeyViolation(err) {
				return fmt.Errorf("driver %d: %w", driverID, apperr.ErrNotFound)
			}
			return fmt.Errorf("insert areas for driver %d: %w", driverID, err)
		}
		added = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return added, nil
}

// AreasFor returns the area keys of one driver, alphabetically.
func (r *DriverRepo) AreasFor(ctx context.Context, driverID int64) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT area_prefix FROM driver_areas WHERE driver_id = $1 ORDER BY area_prefix`, driverID)
	if err != nil {
		return nil, fmt.Errorf("areas for driver %d: %w", driverID, err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("areas for driver %d: %w", driverID, err)
	}
	return out, nil
}

// AreasByDriver returns the sorted area keys of the given drivers keyed by driver id.
// Drivers without areas are absent from the map.
func (r *DriverRepo) AreasByDriver(ctx context.Context, driverIDs []int64) (map[int64][]string, error) {
	out := make(map[int64][]string, len(driverIDs))
	if len(driverIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx, `
        SELECT driver_id, area_prefix
        FROM driver_areas
        WHERE driver_id = ANY($1)
        ORDER BY driver_id, area_prefix
    `, driverIDs)
	if err != nil {
		return nil, fmt.Errorf("areas by driver: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   int64
			area string
		)
		if err := rows.Scan(&id, &area); err != nil {
			return nil, fmt.Errorf("scan area: %w", err)
		}
		out[id] = append(out[id], area)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("areas by driver: %w", err)
	}
	return out, nil
}

// FindActiveByArea returns the active driver with the lowest id covering the area key, or nil.
func (r *DriverRepo) FindActiveByArea(ctx context.Context, area string) (*domain.Driver, error) {
	d, err := scanDriver(r.db.QueryRow(ctx, `
        SELECT `+driverColumns+`
        FROM driver_areas a
        JOIN drivers d ON d.id = a.driver_id
        WHERE a.area_prefix = $1 AND d.active
        ORDER BY d.id
        LIMIT 1
    `, area))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find driver for area %q: %w", area, err)
	}
	return d, nil
}

func scanDriver(row pgx.Row) (*domain.Driver, error) {
	var d domain.Driver
	if err := row.Scan(&d.ID, &d.Name, &d.Phone, &d.Active, &d.CreatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}
