package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"time"

	"abc-retail/libs"
	"abc-retail/models"
	"abc-retail/repositories"

	"go.uber.org/zap"
)

const DefaultDrainCount = 32

// OrderAdminService reads pending orders off the order queue for display.
// Messages are never deleted; they reappear after the visibility timeout.
type OrderAdminService struct {
	queue      libs.Queue
	orderQueue string
	visibility time.Duration
	products   *repositories.ProductRepository
}

func NewOrderAdminService(queue libs.Queue, orderQueue string, visibility time.Duration, products *repositories.ProductRepository) *OrderAdminService {
	return &OrderAdminService{queue: queue, orderQueue: orderQueue, visibility: visibility, products: products}
}

func (s *OrderAdminService) DrainPending(ctx context.Context, maxCount int) ([]models.PendingOrder, error) {
	if maxCount <= 0 || maxCount > libs.MaxReceiveCount {
		maxCount = DefaultDrainCount
	}

	messages, err := s.queue.Receive(ctx, s.orderQueue, maxCount, s.visibility)
	if err != nil {
		return nil, err
	}

	pending := make([]models.PendingOrder, 0, len(messages))
	for _, msg := range messages {
		order, err := decodeOrderMessage(msg.Text)
		if err != nil {
			zap.S().Warnw("skipping undecodable order message", "message", msg.ID, "error", err)
			continue
		}
		order.RowKey = msg.ID
		order.Status = models.OrderStatusPending
		pending = append(pending, models.PendingOrder{Order: order, DequeueCount: msg.DequeueCount})
	}

	return pending, nil
}

func decodeOrderMessage(text string) (models.Order, error) {
	var order models.Order
	payload, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return order, err
	}
	err = json.Unmarshal(payload, &order)
	return order, err
}

// ManageOrders pairs the pending orders with the current product inventory.
func (s *OrderAdminService) ManageOrders(ctx context.Context, maxCount int) (*models.ManageOrdersView, error) {
	orders, err := s.DrainPending(ctx, maxCount)
	if err != nil {
		return nil, err
	}

	products, err := s.products.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}

	return &models.ManageOrdersView{Orders: orders, Products: products}, nil
}
