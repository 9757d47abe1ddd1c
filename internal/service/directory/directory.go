package directory

import (
	"context"
	"errors"
	"strings"
	"time"

	"live-orders-dispatch/internal/apperr"
	"live-orders-dispatch/internal/domain"
	"live-orders-dispatch/internal/logx"
)

// Service is the registry of drivers and the area keys they cover.
type Service struct {
	repo             driverRepository
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates and configures a directory Service.
func NewService(r driverRepository, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout, logger: logx.OrNop(logger)}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// AddDriver registers an active driver. Blank name or phone is skipped, not an error.
func (s *Service) AddDriver(ctx context.Context, actor domain.Actor, name, phone string) (int64, domain.Outcome, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return 0, domain.Skipped(domain.ReasonEmptyName), nil
	}
	if phone == "" {
		return 0, domain.Skipped(domain.ReasonEmptyPhone), nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	id, err := s.repo.Create(ctx, name, phone)
	if err != nil {
		return 0, domain.Outcome{}, err
	}

	s.logger.Info("driver added",
		logx.Event("driver_added"),
		logx.String("actor", actor.Name),
		logx.Int64("driver_id", id),
	)
	return id, domain.Applied(), nil
}

// SetAreas attaches area keys to a driver. Keys are trimmed and uppercased; keys the
// driver already covers are ignored. Existing keys are never removed.
func (s *Service) SetAreas(ctx context.Context, actor domain.Actor, driverID int64, areas []string) (domain.Outcome, error) {
	if driverID <= 0 {
		return domain.Skipped(domain.ReasonInvalidDriverID), nil
	}
	keys := domain.NormalizeAreas(areas)
	if len(keys) == 0 {
		return domain.Skipped(domain.ReasonNoAreas), nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	added, err := s.repo.AddAreas(ctx, driverID, keys)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return domain.Skipped(domain.ReasonDriverNotFound), nil
		}
		return domain.Outcome{}, err
	}

	s.logger.Info("driver areas added",
		logx.Event("driver_areas_added"),
		logx.String("actor", actor.Name),
		logx.Int64("driver_id", driverID),
		logx.Any("areas", keys),
		logx.Int64("added", added),
	)
	return domain.Applied(), nil
}

// SetAreasCSV is SetAreas for the comma-separated form ("S1, S2,S35").
func (s *Service) SetAreasCSV(ctx context.Context, actor domain.Actor, driverID int64, csv string) (domain.Outcome, error) {
	return s.SetAreas(ctx, actor, driverID, domain.ParseAreaList(csv))
}

// ToggleActive flips the active flag of a driver. Area coverage is left untouched.
func (s *Service) ToggleActive(ctx context.Context, actor domain.Actor, driverID int64) (domain.Outcome, error) {
	if driverID <= 0 {
		return domain.Skipped(domain.ReasonInvalidDriverID), nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ok, err := s.repo.ToggleActive(ctx, driverID)
	if err != nil {
		return domain.Outcome{}, err
	}
	if !ok {
		return domain.Skipped(domain.ReasonDriverNotFound), nil
	}

	s.logger.Info("driver toggled",
		logx.Event("driver_toggled"),
		logx.String("actor", actor.Name),
		logx.Int64("driver_id", driverID),
	)
	return domain.Applied(), nil
}

// Get returns a driver or nil.
func (s *Service) Get(ctx context.Context, driverID int64) (*domain.Driver, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Get(ctx, driverID)
}

// ListDrivers returns all drivers, active first, then by name.
func (s *Service) ListDrivers(ctx context.Context) ([]domain.Driver, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx)
}

// AreasFor returns the driver's area keys in alphabetical order.
func (s *Service) AreasFor(ctx context.Context, driverID int64) ([]string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	areas, err := s.repo.AreasFor(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if areas == nil {
		areas = []string{}
	}
	return areas, nil
}

// ListDriversWithAreas returns drivers in ListDrivers order, each with its area keys.
func (s *Service) ListDriversWithAreas(ctx context.Context) ([]domain.DriverWithAreas, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	drivers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(drivers))
	for i, d := range drivers {
		ids[i] = d.ID
	}
	byDriver, err := s.repo.AreasByDriver(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.DriverWithAreas, len(drivers))
	for i, d := range drivers {
		areas := byDriver[d.ID]
		if areas == nil {
			areas = []string{}
		}
		out[i] = domain.DriverWithAreas{Driver: d, Areas: areas}
	}
	return out, nil
}
