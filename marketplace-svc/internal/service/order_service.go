package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
	"unicode/utf8"

	"foodmarket/marketplace-svc/internal/cache"
	"foodmarket/marketplace-svc/internal/domain"
)

const MaxNoteLength = 200

// OrderService runs the order state machine:
//
//	Submitted -> Accepted   (merchant)
//	Submitted -> Cancelled  (customer)
//
// Only Submitted orders can have their note or line items replaced.
type OrderService struct {
	repo        OrderRepository
	restaurants RestaurantGetter
	pricer      PricerInterface
	notifier    Notifier
	qr          QRGenerator
	caches      Caches
	now         func() time.Time
}

func NewOrderService(repo OrderRepository, restaurants RestaurantGetter, pricer PricerInterface, notifier Notifier, qr QRGenerator, caches Caches) *OrderService {
	return &OrderService{
		repo:        repo,
		restaurants: restaurants,
		pricer:      pricer,
		notifier:    notifier,
		qr:          qr,
		caches:      caches,
		now:         time.Now,
	}
}

// WithClock replaces the clock used to decide what "today" is.
func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	s.now = now
	return s
}

func (s *OrderService) Create(ctx context.Context, appuserID int, req domain.OrderCreateRequest) (*domain.Order, error) {
	if req.RestaurantID <= 0 {
		return nil, domain.ValidationError{Field: "restaurant_id", Message: "is required"}
	}
	if err := validateNote(req.Note); err != nil {
		return nil, err
	}
	rest, err := s.restaurants.GetRestaurant(ctx, req.RestaurantID)
	if err != nil {
		return nil, err
	}

	lineItems, total, err := s.pricer.Price(ctx, rest.ID, req.LineItems)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		RestaurantID: rest.ID,
		AppUserID:    appuserID,
		Note:         req.Note,
		Total:        total,
		LineItems:    lineItems,
	}
	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.caches.Orders.SetJSON(ctx, orderOwnerKey(appuserID, order.ID), true, cache.TTLDefault)
	s.notify(ctx, rest.Phone, fmt.Sprintf("New order #%d received. Total: R%s", order.ID, order.Total.StringFixed(2)))

	return order, nil
}

// Update replaces the note and every line item of a Submitted order and
// recomputes its total.
func (s *OrderService) Update(ctx context.Context, orderID int, req domain.OrderUpdateRequest) (*domain.Order, error) {
	if err := validateNote(req.Note); err != nil {
		return nil, err
	}
	current, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if current.Status != domain.StatusSubmitted {
		return nil, updateConflict(current.Status)
	}

	lineItems, total, err := s.pricer.Price(ctx, current.RestaurantID, req.LineItems)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:        current.ID,
		Note:      req.Note,
		Total:     total,
		LineItems: lineItems,
	}
	status, err := s.repo.ReplaceOrderItems(ctx, order, domain.StatusSubmitted)
	if errors.Is(err, domain.ErrStatusMismatch) {
		return nil, updateConflict(status)
	}
	if err != nil {
		return nil, fmt.Errorf("update order %d: %w", orderID, err)
	}
	return order, nil
}

func (s *OrderService) Cancel(ctx context.Context, orderID int) error {
	status, err := s.repo.TransitionStatus(ctx, orderID, domain.StatusSubmitted, domain.StatusCancelled)
	if errors.Is(err, domain.ErrStatusMismatch) {
		switch status {
		case domain.StatusAccepted:
			return domain.StateConflictError{Reason: domain.MsgCannotChangeAccepted}
		case domain.StatusCancelled:
			return domain.StateConflictError{Reason: domain.MsgAlreadyCancelled}
		}
		return domain.StateConflictError{Reason: fmt.Sprintf("cannot cancel order in status %s", status)}
	}
	return err
}

func (s *OrderService) Accept(ctx context.Context, orderID int) error {
	status, err := s.repo.TransitionStatus(ctx, orderID, domain.StatusSubmitted, domain.StatusAccepted)
	if errors.Is(err, domain.ErrStatusMismatch) {
		switch status {
		case domain.StatusCancelled:
			return domain.StateConflictError{Reason: domain.MsgCancelledByCustomer}
		case domain.StatusAccepted:
			return domain.StateConflictError{Reason: domain.MsgAlreadyAccepted}
		}
		return domain.StateConflictError{Reason: fmt.Sprintf("cannot accept order in status %s", status)}
	}
	if err != nil {
		return err
	}

	s.notifyCustomer(ctx, orderID)
	return nil
}

func (s *OrderService) Get(ctx context.Context, orderID int) (*domain.Order, error) {
	return s.repo.GetOrder(ctx, orderID)
}

func (s *OrderService) ListByAppUser(ctx context.Context, appuserID int) ([]domain.Order, error) {
	return s.repo.ListAppUserOrders(ctx, appuserID)
}

func (s *OrderService) TodaysPendingOrders(ctx context.Context, restaurantID int) ([]domain.Order, error) {
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.repo.ListPendingOrders(ctx, restaurantID, midnight)
}

func (s *OrderService) QRCode(ctx context.Context, orderID int) ([]byte, error) {
	if _, err := s.repo.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}
	return s.qr.Generate(orderID)
}

func (s *OrderService) notifyCustomer(ctx context.Context, orderID int) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		log.Printf("[ORDERS] load order %d for notification: %v", orderID, err)
		return
	}
	cellphone, err := s.repo.GetAppUserCellphone(ctx, order.AppUserID)
	if err != nil {
		log.Printf("[ORDERS] load cellphone of appuser %d: %v", order.AppUserID, err)
		return
	}
	s.notify(ctx, cellphone, fmt.Sprintf("Your order #%d has been accepted and is being prepared.", orderID))
}

// notify is best-effort: a failed notification never undoes the order change.
func (s *OrderService) notify(ctx context.Context, destination, message string) {
	if s.notifier == nil || destination == "" {
		return
	}
	if err := s.notifier.Notify(ctx, destination, message); err != nil {
		log.Printf("[ORDERS] %v", domain.DependencyError{Dependency: "notification", Err: err})
	}
}

func updateConflict(status domain.OrderStatus) error {
	switch status {
	case domain.StatusAccepted:
		return domain.StateConflictError{Reason: domain.MsgCannotChangeAccepted}
	case domain.StatusCancelled:
		return domain.StateConflictError{Reason: domain.MsgCannotChangeCancelled}
	}
	return domain.StateConflictError{Reason: fmt.Sprintf("cannot change order in status %s", status)}
}

func validateNote(note string) error {
	if utf8.RuneCountInString(note) > MaxNoteLength {
		return domain.ValidationError{Field: "note", Message: fmt.Sprintf("must be at most %d characters", MaxNoteLength)}
	}
	return nil
}

var _ OrderServiceInterface = (*OrderService)(nil)
