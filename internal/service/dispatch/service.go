package dispatch

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"live-orders-dispatch/internal/domain"
	"live-orders-dispatch/internal/logx"
)

// Service assigns orders to drivers and notifies them: manually with an explicit driver,
// or automatically by resolving the order's postcode.
//
// A dispatch has two phases. The notification is sent first; only when the provider
// accepts it is the assignment committed. A failed send leaves the order untouched and
// safe to retry. Nothing prevents two concurrent attempts on the same order.
type Service struct {
	orders   orderRepository
	drivers  driverRepository
	resolver *Resolver
	states   *StateMachine
	notifier notifier

	events   eventPublisher
	attempts attemptObserver

	operationTimeout time.Duration
	logger           logx.Logger
	newAttemptID     func() string
	now              func() time.Time
}

// Option configures optional collaborators of the Service.
type Option func(*Service)

// WithEventPublisher publishes a DispatchEvent after every attempt.
func WithEventPublisher(p eventPublisher) Option {
	return func(s *Service) {
		if p != nil {
			s.events = p
		}
	}
}

// WithAttemptObserver records the outcome of every attempt.
func WithAttemptObserver(o attemptObserver) Option {
	return func(s *Service) {
		if o != nil {
			s.attempts = o
		}
	}
}

// NewService - creates a new dispatch Service.
func NewService(
	orders orderRepository,
	drivers driverRepository,
	n notifier,
	timeout time.Duration,
	logger logx.Logger,
	opts ...Option,
) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	s := &Service{
		orders:           orders,
		drivers:          drivers,
		resolver:         NewResolver(drivers),
		states:           NewStateMachine(orders),
		notifier:         n,
		events:           nopPublisher{},
		attempts:         nopObserver{},
		operationTimeout: timeout,
		logger:           logx.OrNop(logger),
		newAttemptID:     uuid.NewString,
		now:              func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// attempt carries the identity of one dispatch attempt through both phases.
type attempt struct {
	id      string
	mode    domain.DispatchMode
	actor   domain.Actor
	orderID int64
	log     logx.Logger
}

func (s *Service) begin(actor domain.Actor, mode domain.DispatchMode, orderID int64) *attempt {
	id := s.newAttemptID()
	return &attempt{
		id:      id,
		mode:    mode,
		actor:   actor,
		orderID: orderID,
		log: s.logger.With(
			logx.String("attempt_id", id),
			logx.String("mode", string(mode)),
			logx.String("actor", actor.Name),
			logx.Int64("order_id", orderID),
		),
	}
}

// AssignAndSend notifies the chosen driver about the order and, once the message is
// accepted, records the assignment. A missing order or driver, a non-dispatchable order
// or a failed send yields a skipped outcome with no state change.
func (s *Service) AssignAndSend(ctx context.Context, actor domain.Actor, orderID, driverID int64) (domain.DispatchResult, error) {
	a := s.begin(actor, domain.DispatchManual, orderID)

	if orderID <= 0 {
		return s.finish(ctx, a, 0, domain.Skipped(domain.ReasonInvalidOrderID), time.Time{}), nil
	}
	if driverID <= 0 {
		return s.finish(ctx, a, 0, domain.Skipped(domain.ReasonInvalidDriverID), time.Time{}), nil
	}

	order, driver, err := s.load(ctx, orderID, driverID)
	if err != nil {
		return s.fail(a, driverID, err)
	}
	if order == nil {
		return s.finish(ctx, a, driverID, domain.Skipped(domain.ReasonOrderNotFound), time.Time{}), nil
	}
	if driver == nil {
		return s.finish(ctx, a, driverID, domain.Skipped(domain.ReasonDriverNotFound), time.Time{}), nil
	}
	if !driver.Active {
		a.log.Warn("dispatching to inactive driver", logx.Int64("driver_id", driver.ID))
	}

	return s.send(ctx, a, order, driver)
}

// AutoAssignAndSend resolves the driver covering the order's postcode and dispatches to it.
// An order without a postcode or with no covering active driver stays unassigned.
func (s *Service) AutoAssignAndSend(ctx context.Context, actor domain.Actor, orderID int64) (domain.DispatchResult, error) {
	a := s.begin(actor, domain.DispatchAuto, orderID)

	if orderID <= 0 {
		return s.finish(ctx, a, 0, domain.Skipped(domain.ReasonInvalidOrderID), time.Time{}), nil
	}

	order, driver, err := s.resolve(ctx, orderID)
	if err != nil {
		return s.fail(a, 0, err)
	}
	if order == nil {
		return s.finish(ctx, a, 0, domain.Skipped(domain.ReasonOrderNotFound), time.Time{}), nil
	}
	if strings.TrimSpace(order.Postcode) == "" {
		return s.finish(ctx, a, 0, domain.Skipped(domain.ReasonMissingPostcode), time.Time{}), nil
	}
	if driver == nil {
		a.log.Info("no covering driver", logx.String("area", domain.OutwardCode(order.Postcode)))
		return s.finish(ctx, a, 0, domain.Skipped(domain.ReasonNoCoveringDriver), time.Time{}), nil
	}

	return s.send(ctx, a, order, driver)
}

func (s *Service) load(ctx context.Context, orderID, driverID int64) (*domain.Order, *domain.Driver, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	order, err := s.orders.Get(ctx, orderID)
	if err != nil || order == nil {
		return nil, nil, err
	}
	driver, err := s.drivers.Get(ctx, driverID)
	if err != nil {
		return nil, nil, err
	}
	return order, driver, nil
}

func (s *Service) resolve(ctx context.Context, orderID int64) (*domain.Order, *domain.Driver, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	order, err := s.orders.Get(ctx, orderID)
	if err != nil || order == nil {
		return nil, nil, err
	}
	if strings.TrimSpace(order.Postcode) == "" {
		return order, nil, nil
	}
	driver, err := s.resolver.FindDriverForPostcode(ctx, order.Postcode)
	if err != nil {
		return nil, nil, err
	}
	return order, driver, nil
}

// send runs both phases for a loaded order and driver. Once the notification is issued
// the attempt no longer follows the caller's cancellation.
func (s *Service) send(ctx context.Context, a *attempt, order *domain.Order, driver *domain.Driver) (domain.DispatchResult, error) {
	if !s.states.CanDispatch(order) {
		a.log.Info("order not dispatchable", logx.String("delivery_status", string(order.DeliveryStatus)))
		return s.finish(ctx, a, driver.ID, domain.Skipped(domain.ReasonNotDispatchable), time.Time{}), nil
	}

	detached := context.WithoutCancel(ctx)

	if ok := s.notifier.SendMessage(detached, driver.Phone, ComposeMessage(*order)); !ok {
		a.log.Warn("driver notification failed", logx.Int64("driver_id", driver.ID))
		return s.finish(detached, a, driver.ID, domain.Skipped(domain.ReasonNotificationFailed), time.Time{}), nil
	}

	commitCtx, cancel := s.withTimeout(detached)
	defer cancel()

	at, ok, err := s.states.RecordAssignment(commitCtx, order.ID, driver.ID)
	if err != nil {
		a.log.Error("assignment not recorded after successful send",
			logx.Int64("driver_id", driver.ID),
			logx.Err(err),
		)
		return s.fail(a, driver.ID, err)
	}
	if !ok {
		a.log.Warn("assignment not stored after successful send", logx.Int64("driver_id", driver.ID))
		return s.finish(detached, a, driver.ID, domain.Skipped(domain.ReasonAssignmentNotStored), time.Time{}), nil
	}

	return s.finish(detached, a, driver.ID, domain.Applied(), at), nil
}

func (s *Service) fail(a *attempt, driverID int64, err error) (domain.DispatchResult, error) {
	a.log.Error("dispatch failed", logx.Event("dispatch_failed"), logx.Err(err))
	return domain.DispatchResult{
		AttemptID: a.id,
		Mode:      a.mode,
		OrderID:   a.orderID,
		DriverID:  driverID,
	}, err
}

func (s *Service) finish(ctx context.Context, a *attempt, driverID int64, out domain.Outcome, notifiedAt time.Time) domain.DispatchResult {
	res := domain.DispatchResult{
		Outcome:    out,
		AttemptID:  a.id,
		Mode:       a.mode,
		OrderID:    a.orderID,
		DriverID:   driverID,
		NotifiedAt: notifiedAt,
	}

	if out.IsApplied() {
		a.log.Info("order dispatched",
			logx.Event("dispatch_applied"),
			logx.Int64("driver_id", driverID),
			logx.Time("notified_at", notifiedAt),
		)
	} else {
		a.log.Info("dispatch skipped",
			logx.Event("dispatch_skipped"),
			logx.String("reason", string(out.Reason)),
			logx.Int64("driver_id", driverID),
		)
	}

	s.attempts.ObserveAttempt(a.mode, out)

	ev := domain.DispatchEvent{
		AttemptID:  a.id,
		Mode:       a.mode,
		Actor:      a.actor.Name,
		OrderID:    a.orderID,
		DriverID:   driverID,
		Outcome:    out,
		NotifiedAt: notifiedAt,
		OccurredAt: s.now(),
	}
	pubCtx, cancel := s.withTimeout(context.WithoutCancel(ctx))
	defer cancel()
	if err := s.events.Publish(pubCtx, ev); err != nil {
		a.log.Warn("dispatch event not published", logx.Err(err))
	}

	return res
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, domain.DispatchEvent) error { return nil }

type nopObserver struct{}

func (nopObserver) ObserveAttempt(domain.DispatchMode, domain.Outcome) {}
