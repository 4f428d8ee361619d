package repositories

import (
	"context"
	"fmt"
	"strings"

	"abc-retail/libs"
	"abc-retail/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type productRecord struct {
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	OutOfStock  bool            `json:"out_of_stock"`
	SellerEmail string          `json:"seller_email,omitempty"`
	ImageURL    string          `json:"image_url"`
}

func (r productRecord) validate() error {
	if strings.TrimSpace(r.ProductName) == "" {
		return fmt.Errorf("%w: product name is required", models.ErrValidation)
	}
	if r.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", models.ErrValidation)
	}
	if r.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", models.ErrValidation)
	}
	return nil
}

type ProductRepository struct {
	store libs.TableStore
}

func NewProductRepository(store libs.TableStore) *ProductRepository {
	return &ProductRepository{store: store}
}

func toProduct(entity libs.Entity, record productRecord) models.Product {
	return models.Product{
		PartitionKey: entity.PartitionKey,
		RowKey:       entity.RowKey,
		ProductName:  record.ProductName,
		Category:     record.Category,
		Description:  record.Description,
		Price:        record.Price,
		Quantity:     record.Quantity,
		OutOfStock:   record.OutOfStock,
		SellerEmail:  record.SellerEmail,
		ImageURL:     record.ImageURL,
		ETag:         entity.ETag,
		Timestamp:    entity.Timestamp,
	}
}

func newProductRecord(p *models.Product) productRecord {
	return productRecord{
		ProductName: p.ProductName,
		Category:    p.Category,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		OutOfStock:  p.OutOfStock,
		SellerEmail: p.SellerEmail,
		ImageURL:    p.ImageURL,
	}
}

func (r *ProductRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.PartitionKey == "" {
		product.PartitionKey = models.ProductsPartition
	}
	if product.RowKey == "" {
		product.RowKey = uuid.NewString()
	}

	record := newProductRecord(product)
	if err := record.validate(); err != nil {
		return err
	}

	entity, err := encodeEntity(product.PartitionKey, product.RowKey, "", record)
	if err != nil {
		return err
	}
	stored, err := r.store.AddEntity(ctx, TableProducts, entity)
	if err != nil {
		return translateError(err)
	}

	product.ETag = stored.ETag
	product.Timestamp = stored.Timestamp
	return nil
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	entity, record, err := getRecord[productRecord](ctx, r.store, TableProducts, models.ProductsPartition, id)
	if err != nil {
		return nil, err
	}
	product := toProduct(entity, record)
	return &product, nil
}

func (r *ProductRepository) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return queryRecords(ctx, r.store, TableProducts, libs.Filter{PartitionKey: models.ProductsPartition}, toProduct)
}

func (r *ProductRepository) GetProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return queryRecords(ctx, r.store, TableProducts, libs.Filter{
		PartitionKey: models.ProductsPartition,
		Property:     "category",
		Value:        category,
	}, toProduct)
}

// UpdateProduct replaces the stored row; a stale ETag yields models.ErrConflict.
func (r *ProductRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	record := newProductRecord(product)
	if err := record.validate(); err != nil {
		return err
	}

	entity, err := encodeEntity(models.ProductsPartition, product.RowKey, product.ETag, record)
	if err != nil {
		return err
	}
	stored, err := r.store.UpdateEntity(ctx, TableProducts, entity, product.ETag)
	if err != nil {
		return translateError(err)
	}

	product.ETag = stored.ETag
	product.Timestamp = stored.Timestamp
	return nil
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, id string) error {
	return translateError(r.store.DeleteEntity(ctx, TableProducts, models.ProductsPartition, id))
}
