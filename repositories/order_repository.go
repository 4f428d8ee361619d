package repositories

import (
	"context"
	"fmt"
	"time"

	"abc-retail/libs"
	"abc-retail/models"

	"github.com/shopspring/decimal"
)

type orderRecord struct {
	CustomerEmail string          `json:"customer_email"`
	OrderDate     time.Time       `json:"order_date"`
	Status        string          `json:"status"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	ItemsJSON     string          `json:"items_json"`
}

type OrderRepository struct {
	store libs.TableStore
}

func NewOrderRepository(store libs.TableStore) *OrderRepository {
	return &OrderRepository{store: store}
}

func toOrder(entity libs.Entity, record orderRecord) models.Order {
	return models.Order{
		PartitionKey:  entity.PartitionKey,
		RowKey:        entity.RowKey,
		CustomerEmail: record.CustomerEmail,
		OrderDate:     record.OrderDate,
		Status:        record.Status,
		TotalAmount:   record.TotalAmount,
		ItemsJSON:     record.ItemsJSON,
	}
}

// Create inserts an order; orders are never updated afterwards.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	if order.RowKey == "" {
		return fmt.Errorf("%w: order id is required", models.ErrValidation)
	}
	if order.PartitionKey == "" {
		order.PartitionKey = models.OrdersPartition
	}

	entity, err := encodeEntity(order.PartitionKey, order.RowKey, "", orderRecord{
		CustomerEmail: order.CustomerEmail,
		OrderDate:     order.OrderDate,
		Status:        order.Status,
		TotalAmount:   order.TotalAmount,
		ItemsJSON:     order.ItemsJSON,
	})
	if err != nil {
		return err
	}

	_, err = r.store.AddEntity(ctx, TableOrders, entity)
	return translateError(err)
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	entity, record, err := getRecord[orderRecord](ctx, r.store, TableOrders, models.OrdersPartition, id)
	if err != nil {
		return nil, err
	}
	order := toOrder(entity, record)
	return &order, nil
}

func (r *OrderRepository) FindByCustomer(ctx context.Context, email string) ([]models.Order, error) {
	return queryRecords(ctx, r.store, TableOrders, libs.Filter{
		PartitionKey: models.OrdersPartition,
		Property:     "customer_email",
		Value:        email,
	}, toOrder)
}
