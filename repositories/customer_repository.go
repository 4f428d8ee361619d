package repositories

import (
	"context"
	"fmt"
	"strings"

	"abc-retail/libs"
	"abc-retail/models"

	"github.com/google/uuid"
)

type userRecord struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role,omitempty"`
}

func (r userRecord) validate() error {
	if strings.TrimSpace(r.FullName) == "" || strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("%w: full name and email are required", models.ErrValidation)
	}
	if r.PasswordHash == "" {
		return fmt.Errorf("%w: password is required", models.ErrValidation)
	}
	return nil
}

type CustomerRepository struct {
	store libs.TableStore
}

func NewCustomerRepository(store libs.TableStore) *CustomerRepository {
	return &CustomerRepository{store: store}
}

func toCustomer(entity libs.Entity, record userRecord) models.Customer {
	return models.Customer{
		PartitionKey: entity.PartitionKey,
		RowKey:       entity.RowKey,
		FullName:     record.FullName,
		Email:        record.Email,
		PasswordHash: record.PasswordHash,
		ETag:         entity.ETag,
		Timestamp:    entity.Timestamp,
	}
}

func customerRecord(c *models.Customer) userRecord {
	return userRecord{FullName: c.FullName, Email: c.Email, PasswordHash: c.PasswordHash}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	if customer.PartitionKey == "" {
		customer.PartitionKey = models.CustomersPartition
	}
	if customer.RowKey == "" {
		customer.RowKey = uuid.NewString()
	}

	record := customerRecord(customer)
	if err := record.validate(); err != nil {
		return err
	}

	entity, err := encodeEntity(customer.PartitionKey, customer.RowKey, "", record)
	if err != nil {
		return err
	}
	stored, err := r.store.AddEntity(ctx, TableCustomers, entity)
	if err != nil {
		return translateError(err)
	}

	customer.ETag = stored.ETag
	customer.Timestamp = stored.Timestamp
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	entity, record, err := getRecord[userRecord](ctx, r.store, TableCustomers, models.CustomersPartition, id)
	if err != nil {
		return nil, err
	}
	customer := toCustomer(entity, record)
	return &customer, nil
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	customers, err := queryRecords(ctx, r.store, TableCustomers, libs.Filter{
		PartitionKey: models.CustomersPartition,
		Property:     "email",
		Value:        email,
	}, toCustomer)
	if err != nil {
		return nil, err
	}
	return first(customers)
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]models.Customer, error) {
	return queryRecords(ctx, r.store, TableCustomers, libs.Filter{PartitionKey: models.CustomersPartition}, toCustomer)
}

func (r *CustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	record := customerRecord(customer)
	if err := record.validate(); err != nil {
		return err
	}

	entity, err := encodeEntity(models.CustomersPartition, customer.RowKey, customer.ETag, record)
	if err != nil {
		return err
	}
	stored, err := r.store.UpdateEntity(ctx, TableCustomers, entity, customer.ETag)
	if err != nil {
		return translateError(err)
	}

	customer.ETag = stored.ETag
	customer.Timestamp = stored.Timestamp
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	return translateError(r.store.DeleteEntity(ctx, TableCustomers, models.CustomersPartition, id))
}
