package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ProductsPartition        = "Products"
	ProductMetadataPartition = "Products"

	AllCategories = "All"
)

type Product struct {
	PartitionKey string          `json:"partition_key"`
	RowKey       string          `json:"row_key"`
	ProductName  string          `json:"product_name"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	OutOfStock   bool            `json:"out_of_stock"`
	SellerEmail  string          `json:"seller_email,omitempty"`
	ImageURL     string          `json:"image_url"`
	ETag         string          `json:"-"`
	Timestamp    time.Time       `json:"timestamp"`
}

// ProductMetadata is the slim product record accepted by the table function.
type ProductMetadata struct {
	PartitionKey string          `json:"partition_key"`
	RowKey       string          `json:"row_key"`
	ProductName  string          `json:"product_name"`
	Price        decimal.Decimal `json:"price"`
}
