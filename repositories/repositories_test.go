package repositories

import (
	"context"
	"testing"

	"abc-retail/libs/libtest"
	"abc-retail/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerRepository_CreateFindUpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository(libtest.NewMemoryTableStore())

	customer := &models.Customer{FullName: "Ann", Email: "ann@x.com", PasswordHash: "digest"}
	require.NoError(t, repo.Create(ctx, customer))
	assert.Equal(t, models.CustomersPartition, customer.PartitionKey)
	assert.NotEmpty(t, customer.RowKey)
	assert.NotEmpty(t, customer.ETag)

	found, err := repo.FindByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, customer.RowKey, found.RowKey)
	assert.Equal(t, "digest", found.PasswordHash)

	_, err = repo.FindByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, models.ErrNotFound)

	found.FullName = "Ann B"
	require.NoError(t, repo.Update(ctx, found))

	stale := *customer
	stale.FullName = "stale"
	assert.ErrorIs(t, repo.Update(ctx, &stale), models.ErrConflict)

	byID, err := repo.FindByID(ctx, customer.RowKey)
	require.NoError(t, err)
	assert.Equal(t, "Ann B", byID.FullName)

	require.NoError(t, repo.Delete(ctx, customer.RowKey))
	assert.ErrorIs(t, repo.Delete(ctx, customer.RowKey), models.ErrNotFound)
}

func TestCustomerRepository_RejectsIncompleteRecord(t *testing.T) {
	repo := NewCustomerRepository(libtest.NewMemoryTableStore())
	err := repo.Create(context.Background(), &models.Customer{FullName: "Ann"})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestEmployeeRepository_DefaultsRole(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(libtest.NewMemoryTableStore())

	employee := &models.Employee{RowKey: "emp001", FullName: "John Smith", Email: "john@abc.com", PasswordHash: "d"}
	require.NoError(t, repo.Create(ctx, employee))

	found, err := repo.FindByID(ctx, "emp001")
	require.NoError(t, err)
	assert.Equal(t, models.RoleEmployee, found.Role)

	err = repo.Create(ctx, &models.Employee{RowKey: "emp001", FullName: "Dup", Email: "d@abc.com", PasswordHash: "d"})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestProductRepository_CategoryFilterAndValidation(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(libtest.NewMemoryTableStore())

	require.NoError(t, repo.CreateProduct(ctx, &models.Product{ProductName: "Widget", Category: "Tools", Price: decimal.RequireFromString("9.99"), Quantity: 3}))
	require.NoError(t, repo.CreateProduct(ctx, &models.Product{ProductName: "Shirt", Category: "Clothing", Price: decimal.RequireFromString("20"), Quantity: 1}))

	tools, err := repo.GetProductsByCategory(ctx, "Tools")
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "Widget", tools[0].ProductName)
	assert.True(t, decimal.RequireFromString("9.99").Equal(tools[0].Price))

	all, err := repo.GetAllProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	err = repo.CreateProduct(ctx, &models.Product{ProductName: "Bad", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, models.ErrValidation)
	err = repo.CreateProduct(ctx, &models.Product{ProductName: "Bad", Quantity: -1})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = repo.GetProductByID(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestOrderRepository_FindByCustomer(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(libtest.NewMemoryTableStore())

	require.NoError(t, repo.Create(ctx, &models.Order{RowKey: "o1", CustomerEmail: "a@x.com", Status: models.OrderStatusSuccess, TotalAmount: decimal.NewFromInt(5), ItemsJSON: "[]"}))
	require.NoError(t, repo.Create(ctx, &models.Order{RowKey: "o2", CustomerEmail: "b@x.com", Status: models.OrderStatusSuccess, ItemsJSON: "[]"}))

	orders, err := repo.FindByCustomer(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].RowKey)
	assert.Equal(t, models.OrdersPartition, orders[0].PartitionKey)

	assert.ErrorIs(t, repo.Create(ctx, &models.Order{}), models.ErrValidation)
}
