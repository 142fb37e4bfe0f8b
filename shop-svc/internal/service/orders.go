package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"loyalty-storefront/shop-svc/internal/domain"

	"github.com/google/uuid"
)

type OrderService struct {
	repo      OrderRepository
	points    *PointsLedger
	publisher EventPublisher
	qrEncoder QRGenerator
	now       Clock
}

func NewOrderService(repo OrderRepository, points *PointsLedger, publisher EventPublisher, qr QRGenerator, now Clock) *OrderService {
	if now == nil {
		now = time.Now
	}
	return &OrderService{
		repo:      repo,
		points:    points,
		publisher: publisher,
		qrEncoder: qr,
		now:       now,
	}
}

// Create freezes the current catalog name and price of every selected product
// into the new order. Non-positive quantities and unknown products are skipped;
// oversized quantities and totals that overflow are rejected.
func (s *OrderService) Create(ctx context.Context, principal domain.Principal, req domain.CheckoutRequest) (*domain.Order, error) {
	name := strings.TrimSpace(req.CustomerName)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || phone == "" || len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: customer name, phone and at least one product are required", domain.ErrValidation)
	}

	ids := make([]int64, 0, len(req.Items))
	for _, sel := range req.Items {
		if sel.Quantity > domain.MaxLineQuantity {
			return nil, fmt.Errorf("%w: quantity %d exceeds %d per product", domain.ErrValidation, sel.Quantity, domain.MaxLineQuantity)
		}
		if sel.Quantity > 0 {
			ids = append(ids, sel.ProductID)
		}
	}

	order := &domain.Order{
		CustomerName: name,
		Phone:        phone,
		UserID:       principal.UserID,
		Status:       domain.StatusPending,
		CreatedAt:    s.now(),
	}

	err := s.repo.InTx(ctx, func(tx Tx) error {
		products, err := tx.ProductsByID(ctx, ids)
		if err != nil {
			return err
		}

		for _, sel := range req.Items {
			if sel.Quantity <= 0 {
				continue
			}
			product, ok := products[sel.ProductID]
			if !ok {
				continue
			}
			productID := product.ID
			order.Items = append(order.Items, domain.OrderItem{
				ProductID:   &productID,
				ProductName: product.Name,
				Price:       product.Price,
				Quantity:    sel.Quantity,
			})
		}
		if len(order.Items) == 0 {
			return fmt.Errorf("%w: no orderable products in selection", domain.ErrValidation)
		}
		total, err := order.CheckedTotal()
		if err != nil {
			return err
		}
		order.Total = total

		return tx.InsertOrder(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[shop-svc] order %d created with %d items, total=%d", order.ID, len(order.Items), order.Total)
	s.publish(ctx, domain.KafkaMessage{
		Type:    domain.EventOrderCreated,
		OrderID: order.ID,
		UserID:  order.UserID,
		Status:  order.Status,
		Amount:  order.Total,
	})
	return order, nil
}

// Transition moves an order one stage down the fulfillment pipeline. The
// status write and any points bookkeeping commit together or not at all.
func (s *OrderService) Transition(ctx context.Context, principal domain.Principal, orderID int64, target domain.OrderStatus) (*domain.Order, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if !target.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, target)
	}

	var order *domain.Order
	err := s.repo.InTx(ctx, func(tx Tx) error {
		var err error
		order, err = tx.LockOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if err := domain.CheckTransition(order.Status, target); err != nil {
			return err
		}

		now := s.now()
		total := order.ItemsTotal()
		switch target {
		case domain.StatusConfirmed:
			if _, err := s.points.Hold(ctx, tx, order.UserID, total); err != nil {
				return fmt.Errorf("hold points for order %d: %w", order.ID, err)
			}
		case domain.StatusCompleted:
			granted, err := s.points.Accrue(ctx, tx, order.UserID, total)
			if err != nil {
				return fmt.Errorf("accrue points for order %d: %w", order.ID, err)
			}
			order.PointsAccrued = granted
			order.CompletedAt = &now
		}

		order.Status = target
		order.Total = total
		order.UpdatedAt = &now
		return tx.SaveOrderStatus(ctx, order)
	})
	if err != nil {
		if !isBusinessError(err) {
			log.Printf("ERROR: transition order %d to %s: %v", orderID, target, err)
		}
		return nil, err
	}

	log.Printf("[shop-svc] order %d moved to %s", order.ID, order.Status)
	s.publish(ctx, domain.KafkaMessage{
		Type:    domain.EventOrderStatusChanged,
		OrderID: order.ID,
		UserID:  order.UserID,
		Status:  order.Status,
		Amount:  order.Total,
	})
	if order.Status == domain.StatusCompleted {
		s.publish(ctx, domain.KafkaMessage{
			Type:    domain.EventOrderCompleted,
			OrderID: order.ID,
			UserID:  order.UserID,
			Status:  order.Status,
			Amount:  order.Total,
			Points:  order.PointsAccrued,
		})
	}
	return order, nil
}

// Get hides orders of other customers behind ErrNotFound.
func (s *OrderService) Get(ctx context.Context, principal domain.Principal, orderID int64) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !principal.Admin && !principal.Owns(order.UserID) {
		return nil, fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}
	return order, nil
}

func (s *OrderService) ListByUser(ctx context.Context, principal domain.Principal) ([]domain.Order, error) {
	userID, err := requireUser(principal)
	if err != nil {
		return nil, err
	}
	return s.repo.ListOrders(ctx, domain.OrderFilter{UserID: &userID})
}

func (s *OrderService) ListAll(ctx context.Context, principal domain.Principal) ([]domain.Order, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	return s.repo.ListOrders(ctx, domain.OrderFilter{})
}

func (s *OrderService) Board(ctx context.Context, principal domain.Principal) (*domain.OrderBoard, error) {
	orders, err := s.ListAll(ctx, principal)
	if err != nil {
		return nil, err
	}
	board := domain.Board(orders)
	return &board, nil
}

// ReceiptQR follows the visibility rule of Get.
func (s *OrderService) ReceiptQR(ctx context.Context, principal domain.Principal, orderID int64) ([]byte, error) {
	if _, err := s.Get(ctx, principal, orderID); err != nil {
		return nil, err
	}
	if s.qrEncoder == nil {
		return nil, errors.New("qr generator not configured")
	}
	return s.qrEncoder.Generate(orderID)
}

func (s *OrderService) publish(ctx context.Context, msg domain.KafkaMessage) {
	publishEvent(ctx, s.publisher, msg, s.now())
}

func publishEvent(ctx context.Context, publisher EventPublisher, msg domain.KafkaMessage, now time.Time) {
	if publisher == nil {
		return
	}
	msg.ID = uuid.NewString()
	msg.Timestamp = now
	if err := publisher.Publish(ctx, msg); err != nil {
		log.Printf("WARNING: Failed to publish %s event: %v", msg.Type, err)
	}
}

func isBusinessError(err error) bool {
	for _, target := range []error{
		domain.ErrValidation,
		domain.ErrNotFound,
		domain.ErrInvalidTransition,
		domain.ErrInsufficientPoints,
		domain.ErrOutOfStock,
		domain.ErrForbidden,
		domain.ErrUnauthenticated,
		domain.ErrPersistenceConflict,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

var _ OrderServiceInterface = (*OrderService)(nil)
