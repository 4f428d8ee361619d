package libs

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisQueue_ReceiveEmpty(t *testing.T) {
	q := NewRedisQueue(newTestRedis(t))

	messages, err := q.Receive(context.Background(), "ordersqueue", 32, time.Second)
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}

func TestRedisQueue_SendReceiveFIFO(t *testing.T) {
	ctx := context.Background()
	q := NewRedisQueue(newTestRedis(t))
	clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	q.now = func() time.Time { return clock }

	var sent []string
	for i := 0; i < 10; i++ {
		id, err := q.Send(ctx, "ordersqueue", fmt.Sprintf("order-%d", i))
		require.NoError(t, err)
		sent = append(sent, id)
	}

	messages, err := q.Receive(ctx, "ordersqueue", 32, 30*time.Second)
	require.NoError(t, err)
	require.Len(t, messages, 10)
	for i, msg := range messages {
		assert.Equal(t, sent[i], msg.ID)
		assert.Equal(t, fmt.Sprintf("order-%d", i), msg.Text)
		assert.Equal(t, int64(1), msg.DequeueCount)
	}
}

func TestRedisQueue_RedeliveryKeepsSendOrder(t *testing.T) {
	ctx := context.Background()
	q := NewRedisQueue(newTestRedis(t))
	clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	q.now = func() time.Time { return clock }

	for _, text := range []string{"first", "second"} {
		_, err := q.Send(ctx, "ordersqueue", text)
		require.NoError(t, err)
	}

	claimed, err := q.Receive(ctx, "ordersqueue", 1, 30*time.Second)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.Equal(t, "first", claimed[0].Text)

	_, err = q.Send(ctx, "ordersqueue", "third")
	require.NoError(t, err)

	clock = clock.Add(31 * time.Second)
	messages, err := q.Receive(ctx, "ordersqueue", 32, 30*time.Second)
	require.NoError(t, err)

	var texts []string
	for _, msg := range messages {
		texts = append(texts, msg.Text)
	}
	assert.Equal(t, []string{"first", "second", "third"}, texts)
	assert.Equal(t, int64(2), messages[0].DequeueCount)
}

func TestRedisQueue_VisibilityTimeout(t *testing.T) {
	ctx := context.Background()
	q := NewRedisQueue(newTestRedis(t))
	clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	q.now = func() time.Time { return clock }

	_, err := q.Send(ctx, "ordersqueue", "payload")
	require.NoError(t, err)

	messages, err := q.Receive(ctx, "ordersqueue", 32, 30*time.Second)
	require.NoError(t, err)
	require.Len(t, messages, 1)

	hidden, err := q.Receive(ctx, "ordersqueue", 32, 30*time.Second)
	require.NoError(t, err)
	assert.Empty(t, hidden, "received message must stay invisible inside the window")

	clock = clock.Add(31 * time.Second)
	again, err := q.Receive(ctx, "ordersqueue", 32, 30*time.Second)
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, messages[0].ID, again[0].ID)
	assert.Equal(t, int64(2), again[0].DequeueCount)
}

func TestRedisQueue_ReceiveHonoursMaxCount(t *testing.T) {
	ctx := context.Background()
	q := NewRedisQueue(newTestRedis(t))

	for i := 0; i < 5; i++ {
		_, err := q.Send(ctx, "messages", "m")
		require.NoError(t, err)
	}

	messages, err := q.Receive(ctx, "messages", 2, time.Minute)
	require.NoError(t, err)
	assert.Len(t, messages, 2)

	rest, err := q.Receive(ctx, "messages", 100, time.Minute)
	require.NoError(t, err)
	assert.Len(t, rest, 3)
}
