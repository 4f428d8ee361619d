package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"abc-retail/libs"
	"abc-retail/models"
)

const (
	TableCustomers       = "Customers"
	TableEmployees       = "Employees"
	TableProducts        = "Products"
	TableOrders          = "Orders"
	TableProductMetadata = "ProductMetadata"
)

// translateError maps storage adapter errors onto model sentinels.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, libs.ErrEntityNotFound):
		return fmt.Errorf("%w: %w", models.ErrNotFound, err)
	case errors.Is(err, libs.ErrEntityExists):
		return fmt.Errorf("%w: %w", models.ErrValidation, err)
	case errors.Is(err, libs.ErrETagMismatch):
		return fmt.Errorf("%w: %w", models.ErrConflict, err)
	}
	return err
}

func encodeEntity(partitionKey, rowKey, etag string, record any) (libs.Entity, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return libs.Entity{}, fmt.Errorf("encode %s/%s: %w", partitionKey, rowKey, err)
	}
	return libs.Entity{PartitionKey: partitionKey, RowKey: rowKey, ETag: etag, Data: data}, nil
}

func decodeEntity(entity libs.Entity, record any) error {
	if err := json.Unmarshal(entity.Data, record); err != nil {
		return fmt.Errorf("decode %s/%s: %w", entity.PartitionKey, entity.RowKey, err)
	}
	return nil
}

// queryRecords runs filter against table and decodes every entity through R into M.
func queryRecords[R any, M any](ctx context.Context, store libs.TableStore, table string, filter libs.Filter, convert func(libs.Entity, R) M) ([]M, error) {
	entities, err := store.QueryEntities(ctx, table, filter)
	if err != nil {
		return nil, translateError(err)
	}

	items := make([]M, 0, len(entities))
	for _, entity := range entities {
		var record R
		if err := decodeEntity(entity, &record); err != nil {
			return nil, err
		}
		items = append(items, convert(entity, record))
	}
	return items, nil
}

func getRecord[R any](ctx context.Context, store libs.TableStore, table, partitionKey, rowKey string) (libs.Entity, R, error) {
	var record R
	entity, err := store.GetEntity(ctx, table, partitionKey, rowKey)
	if err != nil {
		return entity, record, translateError(err)
	}
	err = decodeEntity(entity, &record)
	return entity, record, err
}

func first[M any](items []M) (*M, error) {
	if len(items) == 0 {
		return nil, models.ErrNotFound
	}
	return &items[0], nil
}
