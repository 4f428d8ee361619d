package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrdersPartition = "Orders"

	OrderStatusSuccess = "Success"
	OrderStatusPending = "Pending"

	GuestCustomer = "guest"
)

type Order struct {
	PartitionKey  string          `json:"partition_key"`
	RowKey        string          `json:"row_key"`
	CustomerEmail string          `json:"customer_email"`
	OrderDate     time.Time       `json:"order_date"`
	Status        string          `json:"status"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	ItemsJSON     string          `json:"items_json"`
}

// PendingOrder is an order read back from the queue; RowKey holds the message id.
type PendingOrder struct {
	Order
	DequeueCount int64 `json:"dequeue_count"`
}

type OrderDetails struct {
	OrderID string          `json:"order_id"`
	Items   []CartLineItem  `json:"items"`
	Total   decimal.Decimal `json:"total"`
}
