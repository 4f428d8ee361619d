package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"abc-retail/libs"
	"abc-retail/models"
	"abc-retail/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks/mock_mailer.go -package=mocks abc-retail/services Mailer

// ErrCartNotCleared is returned together with the order id when the order was
// saved but the session cart could not be emptied.
var ErrCartNotCleared = errors.New("order saved but cart not cleared")

type Mailer interface {
	SendOrderConfirmationEmail(toEmail string, details models.OrderDetails) error
}

type CheckoutService struct {
	carts      *CartService
	orders     *repositories.OrderRepository
	queue      libs.Queue
	orderQueue string
	mailer     Mailer
	now        func() time.Time
}

// NewCheckoutService wires checkout; queue and mailer may be nil.
func NewCheckoutService(carts *CartService, orders *repositories.OrderRepository, queue libs.Queue, orderQueue string, mailer Mailer) *CheckoutService {
	return &CheckoutService{
		carts:      carts,
		orders:     orders,
		queue:      queue,
		orderQueue: orderQueue,
		mailer:     mailer,
		now:        time.Now,
	}
}

// Checkout turns the session cart into a persisted order and empties the cart.
// An empty cart returns models.ErrEmptyCart and changes nothing. A failed
// cart reset returns the order id with ErrCartNotCleared.
func (s *CheckoutService) Checkout(ctx context.Context, sessionID, customerEmail string) (string, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if len(cart) == 0 {
		return "", models.ErrEmptyCart
	}

	if customerEmail == "" {
		customerEmail = models.GuestCustomer
	}

	itemsJSON, err := json.Marshal(cart)
	if err != nil {
		return "", fmt.Errorf("encode order items: %w", err)
	}

	order := models.Order{
		PartitionKey:  models.OrdersPartition,
		RowKey:        uuid.NewString(),
		CustomerEmail: customerEmail,
		OrderDate:     s.now().UTC(),
		Status:        models.OrderStatusSuccess,
		TotalAmount:   cart.Total(),
		ItemsJSON:     string(itemsJSON),
	}

	if err := s.orders.Create(ctx, &order); err != nil {
		return "", fmt.Errorf("save order: %w", err)
	}

	s.enqueue(ctx, order)
	s.sendConfirmation(order, cart)

	zap.S().Infow("order placed", "order", order.RowKey, "customer", customerEmail, "total", order.TotalAmount.String())

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		return order.RowKey, fmt.Errorf("%w: order %s: %w", ErrCartNotCleared, order.RowKey, err)
	}
	return order.RowKey, nil
}

func (s *CheckoutService) enqueue(ctx context.Context, order models.Order) {
	if s.queue == nil {
		return
	}

	payload, err := json.Marshal(order)
	if err != nil {
		zap.S().Errorw("failed to encode order message", "order", order.RowKey, "error", err)
		return
	}

	text := base64.StdEncoding.EncodeToString(payload)
	if _, err := s.queue.Send(ctx, s.orderQueue, text); err != nil {
		zap.S().Errorw("failed to enqueue order", "order", order.RowKey, "queue", s.orderQueue, "error", err)
	}
}

func (s *CheckoutService) sendConfirmation(order models.Order, cart models.Cart) {
	if s.mailer == nil {
		return
	}

	details := models.OrderDetails{OrderID: order.RowKey, Items: cart, Total: order.TotalAmount}
	if err := s.mailer.SendOrderConfirmationEmail(order.CustomerEmail, details); err != nil {
		zap.S().Warnw("order confirmation email not sent", "order", order.RowKey, "error", err)
	}
}

// GetOrder decodes the stored items; the total is recomputed from them for display.
func (s *CheckoutService) GetOrder(ctx context.Context, orderID string) (*models.OrderDetails, error) {
	if orderID == "" {
		return nil, models.ErrNotFound
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	var items models.Cart
	if order.ItemsJSON != "" {
		if err := json.Unmarshal([]byte(order.ItemsJSON), &items); err != nil {
			return nil, fmt.Errorf("decode items of order %s: %w", orderID, err)
		}
	}
	if items == nil {
		items = models.Cart{}
	}

	return &models.OrderDetails{OrderID: order.RowKey, Items: items, Total: items.Total()}, nil
}

func (s *CheckoutService) ListOrdersForCustomer(ctx context.Context, email string) ([]models.Order, error) {
	orders, err := s.orders.FindByCustomer(ctx, email)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})
	return orders, nil
}
