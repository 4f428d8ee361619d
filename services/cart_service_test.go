package services

import (
	"context"
	"testing"

	"abc-retail/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddSameProductTwice(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	widget := env.addProduct(t, "Widget", "Tools", "9.99")

	_, err := env.carts.Add(ctx, "sid", widget.RowKey)
	require.NoError(t, err)
	cart, err := env.carts.Add(ctx, "sid", widget.RowKey)
	require.NoError(t, err)

	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, "Widget", cart[0].ProductName)

	view, err := env.carts.View(ctx, "sid")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("19.98").Equal(view.Total), view.Total.String())
}

func TestCartService_TotalIsSumOfSubtotals(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	a := env.addProduct(t, "A", "X", "1.10")
	b := env.addProduct(t, "B", "X", "2.25")

	for _, ref := range []string{a.RowKey, b.RowKey, b.RowKey, b.RowKey} {
		_, err := env.carts.Add(ctx, "sid", ref)
		require.NoError(t, err)
	}

	view, err := env.carts.View(ctx, "sid")
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.True(t, decimal.RequireFromString("7.85").Equal(view.Total), view.Total.String())
}

func TestCartService_UnknownProductLeavesCartUnchanged(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	widget := env.addProduct(t, "Widget", "Tools", "9.99")
	_, err := env.carts.Add(ctx, "sid", widget.RowKey)
	require.NoError(t, err)

	_, err = env.carts.Add(ctx, "sid", "does-not-exist")
	assert.ErrorIs(t, err, models.ErrNotFound)

	cart, err := env.carts.Load(ctx, "sid")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)
}

func TestCartService_RemoveAndClear(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	a := env.addProduct(t, "A", "X", "1")
	b := env.addProduct(t, "B", "X", "2")
	_, _ = env.carts.Add(ctx, "sid", a.RowKey)
	_, _ = env.carts.Add(ctx, "sid", b.RowKey)

	cart, err := env.carts.Remove(ctx, "sid", a.RowKey)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, b.RowKey, cart[0].RowKey)

	cart, err = env.carts.Remove(ctx, "sid", "not-in-cart")
	require.NoError(t, err)
	assert.Len(t, cart, 1)

	require.NoError(t, env.carts.Clear(ctx, "sid"))
	view, err := env.carts.View(ctx, "sid")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.True(t, view.Total.IsZero())
}

func TestCartService_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	a := env.addProduct(t, "A", "X", "1")

	_, err := env.carts.Add(ctx, "sid-1", a.RowKey)
	require.NoError(t, err)

	cart, err := env.carts.Load(ctx, "sid-2")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestCartService_UnreadableCartStartsEmpty(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.sessions.Set(ctx, "sid", models.CartSessionKey, "{not json"))

	cart, err := env.carts.Load(ctx, "sid")
	require.NoError(t, err)
	assert.Empty(t, cart)
}
