package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"abc-retail/libs"
	"abc-retail/models"
	"abc-retail/repositories"
	"abc-retail/services/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCheckoutService_WidgetScenario(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	widget := env.addProduct(t, "Widget", "Tools", "9.99")
	_, _ = env.carts.Add(ctx, "sid", widget.RowKey)
	_, _ = env.carts.Add(ctx, "sid", widget.RowKey)

	orderID, err := env.checkout.Checkout(ctx, "sid", "ann@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, orderID)

	order, err := env.orderRepo.FindByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrdersPartition, order.PartitionKey)
	assert.Equal(t, "ann@x.com", order.CustomerEmail)
	assert.Equal(t, models.OrderStatusSuccess, order.Status)
	assert.True(t, decimal.RequireFromString("19.98").Equal(order.TotalAmount), order.TotalAmount.String())

	var items models.Cart
	require.NoError(t, json.Unmarshal([]byte(order.ItemsJSON), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0].ProductName)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, decimal.RequireFromString("9.99").Equal(items[0].Price))

	cart, err := env.carts.Load(ctx, "sid")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestCheckoutService_EmptyCartChangesNothing(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.checkout.Checkout(ctx, "sid", "ann@x.com")
	assert.ErrorIs(t, err, models.ErrEmptyCart)
	assert.Equal(t, 0, env.store.Count(repositories.TableOrders))

	pending, err := env.admin.DrainPending(ctx, 32)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestCheckoutService_GuestAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	a := env.addProduct(t, "A", "X", "3.50")
	b := env.addProduct(t, "B", "X", "0.25")
	_, _ = env.carts.Add(ctx, "sid", a.RowKey)
	_, _ = env.carts.Add(ctx, "sid", b.RowKey)
	before, err := env.carts.Load(ctx, "sid")
	require.NoError(t, err)

	orderID, err := env.checkout.Checkout(ctx, "sid", "")
	require.NoError(t, err)

	order, err := env.orderRepo.FindByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, models.GuestCustomer, order.CustomerEmail)

	details, err := env.checkout.GetOrder(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, details.Items, len(before))
	for i := range before {
		assert.Equal(t, before[i].RowKey, details.Items[i].RowKey)
		assert.Equal(t, before[i].ProductName, details.Items[i].ProductName)
		assert.Equal(t, before[i].Quantity, details.Items[i].Quantity)
		assert.True(t, before[i].Price.Equal(details.Items[i].Price))
	}
	assert.True(t, decimal.RequireFromString("3.75").Equal(details.Total))
}

func TestCheckoutService_EnqueuesPendingOrder(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	a := env.addProduct(t, "A", "X", "5")
	_, _ = env.carts.Add(ctx, "sid", a.RowKey)

	orderID, err := env.checkout.Checkout(ctx, "sid", "ann@x.com")
	require.NoError(t, err)

	pending, err := env.admin.DrainPending(ctx, 32)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, models.OrderStatusPending, pending[0].Status)
	assert.NotEqual(t, orderID, pending[0].RowKey, "queue message id replaces the row key")
	assert.Equal(t, "ann@x.com", pending[0].CustomerEmail)
	assert.True(t, decimal.NewFromInt(5).Equal(pending[0].TotalAmount))
}

func TestCheckoutService_SendsConfirmationEmail(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	ctrl := gomock.NewController(t)
	mailer := mocks.NewMockMailer(ctrl)
	env.checkout = NewCheckoutService(env.carts, env.orderRepo, env.queue, "ordersqueue", mailer)

	a := env.addProduct(t, "A", "X", "5")
	_, _ = env.carts.Add(ctx, "sid", a.RowKey)

	mailer.EXPECT().
		SendOrderConfirmationEmail("ann@x.com", gomock.Any()).
		DoAndReturn(func(to string, details models.OrderDetails) error {
			assert.Len(t, details.Items, 1)
			assert.True(t, decimal.NewFromInt(5).Equal(details.Total))
			return errors.New("smtp down")
		})

	_, err := env.checkout.Checkout(ctx, "sid", "ann@x.com")
	require.NoError(t, err, "mail failures must not fail checkout")

	cart, err := env.carts.Load(ctx, "sid")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestCheckoutService_GetOrderNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.checkout.GetOrder(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = env.checkout.GetOrder(context.Background(), "")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCheckoutService_ListOrdersNewestFirst(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	a := env.addProduct(t, "A", "X", "1")

	clock := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	env.checkout.now = func() time.Time { return clock }

	var ids []string
	for i := 0; i < 3; i++ {
		_, _ = env.carts.Add(ctx, "sid", a.RowKey)
		id, err := env.checkout.Checkout(ctx, "sid", "ann@x.com")
		require.NoError(t, err)
		ids = append(ids, id)
		clock = clock.Add(time.Hour)
	}
	_, _ = env.carts.Add(ctx, "other", a.RowKey)
	_, err := env.checkout.Checkout(ctx, "other", "bob@x.com")
	require.NoError(t, err)

	orders, err := env.checkout.ListOrdersForCustomer(ctx, "ann@x.com")
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, ids[2], orders[0].RowKey)
	assert.Equal(t, ids[1], orders[1].RowKey)
	assert.Equal(t, ids[0], orders[2].RowKey)
}

type failingSessionStore struct {
	libs.SessionStore
	failSet bool
}

func (s *failingSessionStore) Set(ctx context.Context, sessionID, key, value string) error {
	if s.failSet {
		return errors.New("redis: connection refused")
	}
	return s.SessionStore.Set(ctx, sessionID, key, value)
}

func TestCheckoutService_ReportsCartNotCleared(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	widget := env.addProduct(t, "Widget", "Tools", "9.99")

	sessions := &failingSessionStore{SessionStore: env.sessions}
	carts := NewCartService(sessions, env.productRepo)
	checkout := NewCheckoutService(carts, env.orderRepo, env.queue, "ordersqueue", nil)

	_, err := carts.Add(ctx, "sid", widget.RowKey)
	require.NoError(t, err)

	sessions.failSet = true
	orderID, err := checkout.Checkout(ctx, "sid", "ann@x.com")
	require.ErrorIs(t, err, ErrCartNotCleared)
	require.NotEmpty(t, orderID)

	_, err = env.orderRepo.FindByID(ctx, orderID)
	assert.NoError(t, err, "the order is saved even when the cart reset fails")
}
