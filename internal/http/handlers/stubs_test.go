package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"

	"live-orders-dispatch/internal/domain"
	"live-orders-dispatch/internal/http/middleware/staffauth"
	"live-orders-dispatch/internal/service/orders"
)

type stubDirectory struct {
	addDriverFn    func(ctx context.Context, actor domain.Actor, name, phone string) (int64, domain.Outcome, error)
	setAreasFn     func(ctx context.Context, actor domain.Actor, driverID int64, areas []string) (domain.Outcome, error)
	setAreasCSVFn  func(ctx context.Context, actor domain.Actor, driverID int64, csv string) (domain.Outcome, error)
	toggleFn       func(ctx context.Context, actor domain.Actor, driverID int64) (domain.Outcome, error)
	getFn          func(ctx context.Context, driverID int64) (*domain.Driver, error)
	areasForFn     func(ctx context.Context, driverID int64) ([]string, error)
	listWithAreasF func(ctx context.Context) ([]domain.DriverWithAreas, error)
}

func (s *stubDirectory) AddDriver(ctx context.Context, actor domain.Actor, name, phone string) (int64, domain.Outcome, error) {
	return s.addDriverFn(ctx, actor, name, phone)
}

func (s *stubDirectory) SetAreas(ctx context.Context, actor domain.Actor, driverID int64, areas []string) (domain.Outcome, error) {
	return s.setAreasFn(ctx, actor, driverID, areas)
}

func (s *stubDirectory) SetAreasCSV(ctx context.Context, actor domain.Actor, driverID int64, csv string) (domain.Outcome, error) {
	return s.setAreasCSVFn(ctx, actor, driverID, csv)
}

func (s *stubDirectory) ToggleActive(ctx context.Context, actor domain.Actor, driverID int64) (domain.Outcome, error) {
	return s.toggleFn(ctx, actor, driverID)
}

func (s *stubDirectory) Get(ctx context.Context, driverID int64) (*domain.Driver, error) {
	return s.getFn(ctx, driverID)
}

func (s *stubDirectory) AreasFor(ctx context.Context, driverID int64) ([]string, error) {
	return s.areasForFn(ctx, driverID)
}

func (s *stubDirectory) ListDriversWithAreas(ctx context.Context) ([]domain.DriverWithAreas, error) {
	return s.listWithAreasF(ctx)
}

type stubDispatch struct {
	assignFn func(ctx context.Context, actor domain.Actor, orderID, driverID int64) (domain.DispatchResult, error)
	autoFn   func(ctx context.Context, actor domain.Actor, orderID int64) (domain.DispatchResult, error)
}

func (s *stubDispatch) AssignAndSend(ctx context.Context, actor domain.Actor, orderID, driverID int64) (domain.DispatchResult, error) {
	return s.assignFn(ctx, actor, orderID, driverID)
}

func (s *stubDispatch) AutoAssignAndSend(ctx context.Context, actor domain.Actor, orderID int64) (domain.DispatchResult, error) {
	return s.autoFn(ctx, actor, orderID)
}

type stubLiveOrders struct {
	liveFn  func(ctx context.Context) ([]domain.LiveOrder, error)
	boardFn func(ctx context.Context) (orders.Board, error)
}

func (s *stubLiveOrders) Live(ctx context.Context) ([]domain.LiveOrder, error) {
	return s.liveFn(ctx)
}

func (s *stubLiveOrders) Board(ctx context.Context) (orders.Board, error) {
	return s.boardFn(ctx)
}

var staff = domain.Actor{Name: "alice"}

// newRequest builds a request as the router would hand it over: staff actor in the
// context and chi URL params set.
func newRequest(method, target, body string, params map[string]string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rc := chi.NewRouteContext()
	for k, v := range params {
		rc.URLParams.Add(k, v)
	}
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rc)
	return r.WithContext(staffauth.WithActor(ctx, staff))
}
