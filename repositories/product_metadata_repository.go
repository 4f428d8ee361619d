package repositories

import (
	"context"

	"abc-retail/libs"
	"abc-retail/models"

	"github.com/shopspring/decimal"
)

type productMetadataRecord struct {
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
}

type ProductMetadataRepository struct {
	store libs.TableStore
}

func NewProductMetadataRepository(store libs.TableStore) *ProductMetadataRepository {
	return &ProductMetadataRepository{store: store}
}

func (r *ProductMetadataRepository) Create(ctx context.Context, meta *models.ProductMetadata) error {
	entity, err := encodeEntity(meta.PartitionKey, meta.RowKey, "", productMetadataRecord{
		ProductName: meta.ProductName,
		Price:       meta.Price,
	})
	if err != nil {
		return err
	}

	_, err = r.store.AddEntity(ctx, TableProductMetadata, entity)
	return translateError(err)
}

func (r *ProductMetadataRepository) FindByID(ctx context.Context, partitionKey, rowKey string) (*models.ProductMetadata, error) {
	entity, record, err := getRecord[productMetadataRecord](ctx, r.store, TableProductMetadata, partitionKey, rowKey)
	if err != nil {
		return nil, err
	}
	return &models.ProductMetadata{
		PartitionKey: entity.PartitionKey,
		RowKey:       entity.RowKey,
		ProductName:  record.ProductName,
		Price:        record.Price,
	}, nil
}
