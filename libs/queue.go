package libs

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultVisibilityTimeout = 30 * time.Second
	MaxReceiveCount          = 32
)

type QueueMessage struct {
	ID           string
	Text         string
	DequeueCount int64
}

// Queue is a durable FIFO of text messages. Received messages stay in the
// queue and become visible again once the visibility timeout elapses.
type Queue interface {
	Send(ctx context.Context, queue, text string) (string, error)
	Receive(ctx context.Context, queue string, maxCount int, visibility time.Duration) ([]QueueMessage, error)
}

// sendScript stores the message and queues it behind every earlier send.
// KEYS: ready, messages, seqs, seq counter. ARGV: id, text.
var sendScript = redis.NewScript(`
local seq = redis.call('INCR', KEYS[4])
redis.call('HSET', KEYS[2], ARGV[1], ARGV[2])
redis.call('HSET', KEYS[3], ARGV[1], seq)
redis.call('ZADD', KEYS[1], seq, ARGV[1])
return seq
`)

// receiveScript first returns expired hidden messages to the ready set at
// their original sequence, then claims up to ARGV[2] ready ids in send order
// and hides them until ARGV[3].
// KEYS: ready, hidden, seqs, dequeues. ARGV: now, max, hidden until.
var receiveScript = redis.NewScript(`
local expired = redis.call('ZRANGEBYSCORE', KEYS[2], '-inf', ARGV[1])
for _, id in ipairs(expired) do
	local seq = redis.call('HGET', KEYS[3], id)
	if seq then
		redis.call('ZADD', KEYS[1], seq, id)
	end
	redis.call('ZREM', KEYS[2], id)
end
local ids = redis.call('ZRANGE', KEYS[1], 0, tonumber(ARGV[2]) - 1)
for _, id in ipairs(ids) do
	redis.call('ZREM', KEYS[1], id)
	redis.call('ZADD', KEYS[2], ARGV[3], id)
	redis.call('HINCRBY', KEYS[4], id, 1)
end
return ids
`)

type RedisQueue struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisQueue(client *redis.Client) *RedisQueue {
	return &RedisQueue{client: client, now: time.Now}
}

type queueKeys struct {
	ready, hidden, messages, seqs, seq, dequeues string
}

func keysFor(queue string) queueKeys {
	prefix := "queue:" + queue
	return queueKeys{
		ready:    prefix + ":ready",
		hidden:   prefix + ":hidden",
		messages: prefix + ":messages",
		seqs:     prefix + ":seqs",
		seq:      prefix + ":seq",
		dequeues: prefix + ":dequeues",
	}
}

func (q *RedisQueue) Send(ctx context.Context, queue, text string) (string, error) {
	keys := keysFor(queue)
	id := uuid.NewString()

	err := sendScript.Run(ctx, q.client,
		[]string{keys.ready, keys.messages, keys.seqs, keys.seq},
		id, text,
	).Err()
	if err != nil {
		return "", errors.Wrapf(err, "send to queue %s", queue)
	}

	return id, nil
}

func (q *RedisQueue) Receive(ctx context.Context, queue string, maxCount int, visibility time.Duration) ([]QueueMessage, error) {
	if maxCount <= 0 || maxCount > MaxReceiveCount {
		maxCount = MaxReceiveCount
	}
	if visibility <= 0 {
		visibility = DefaultVisibilityTimeout
	}

	keys := keysFor(queue)
	now := q.now()
	hiddenUntil := now.Add(visibility).UnixMilli()

	ids, err := receiveScript.Run(ctx, q.client,
		[]string{keys.ready, keys.hidden, keys.seqs, keys.dequeues},
		now.UnixMilli(), maxCount, hiddenUntil,
	).StringSlice()
	if err != nil {
		return nil, errors.Wrapf(err, "receive from queue %s", queue)
	}
	if len(ids) == 0 {
		return []QueueMessage{}, nil
	}

	texts, err := q.client.HMGet(ctx, keys.messages, ids...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "load messages of queue %s", queue)
	}
	counts, err := q.client.HMGet(ctx, keys.dequeues, ids...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "load dequeue counts of queue %s", queue)
	}

	messages := make([]QueueMessage, 0, len(ids))
	for i, id := range ids {
		text, ok := texts[i].(string)
		if !ok {
			continue
		}
		msg := QueueMessage{ID: id, Text: text}
		if raw, ok := counts[i].(string); ok {
			msg.DequeueCount, _ = strconv.ParseInt(raw, 10, 64)
		}
		messages = append(messages, msg)
	}

	return messages, nil
}
