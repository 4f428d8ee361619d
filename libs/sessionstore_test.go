package libs

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisSessionStore_GetSetClear(t *testing.T) {
	ctx := context.Background()
	store := NewRedisSessionStore(newTestRedis(t), 30*time.Minute)

	_, ok, err := store.Get(ctx, "sid-1", "Cart")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "sid-1", "Cart", `[]`))
	require.NoError(t, store.Set(ctx, "sid-1", "CustomerEmail", "a@b.com"))

	value, ok, err := store.Get(ctx, "sid-1", "CustomerEmail")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a@b.com", value)

	_, ok, err = store.Get(ctx, "sid-2", "CustomerEmail")
	require.NoError(t, err)
	assert.False(t, ok, "sessions must not share state")

	require.NoError(t, store.Clear(ctx, "sid-1"))
	_, ok, err = store.Get(ctx, "sid-1", "Cart")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisSessionStore_GetSlidesIdleTimeout(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	store := NewRedisSessionStore(client, time.Minute)

	require.NoError(t, store.Set(ctx, "sid-1", "CustomerEmail", "a@b.com"))

	mr.FastForward(50 * time.Second)
	_, ok, err := store.Get(ctx, "sid-1", "CustomerEmail")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, time.Minute, mr.TTL(sessionKey("sid-1")))

	mr.FastForward(50 * time.Second)
	_, ok, err = store.Get(ctx, "sid-1", "CustomerEmail")
	require.NoError(t, err)
	assert.True(t, ok, "a read inside the idle window keeps the session alive")

	mr.FastForward(2 * time.Minute)
	_, ok, err = store.Get(ctx, "sid-1", "CustomerEmail")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisSessionStore_GetReportsConnectionErrors(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })
	store := NewRedisSessionStore(client, time.Minute)

	mr.Close()
	_, _, err := store.Get(context.Background(), "sid-1", "Cart")
	assert.Error(t, err)
}
