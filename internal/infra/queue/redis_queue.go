package queue

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"time"

	"dining-concierge/internal/infra"
	"dining-concierge/internal/pkg/config"
	"dining-concierge/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisQueue implements the reservation queue on a Redis Stream with a
// consumer group. The group's pending-entries list provides the at-least-once
// contract: an entry read by one consumer stays invisible to the others until
// it is acknowledged or has been idle past the visibility timeout, at which
// point Receive reclaims it.
type RedisQueue struct {
	rdb        *redis.Client
	stream     string
	group      string
	consumer   string
	visibility time.Duration
	block      time.Duration

	groupOnce sync.Once
	groupErr  error
}

func NewRedisQueue(rdb *redis.Client, cfg config.QueueConfig) *RedisQueue {
	consumer := cfg.Consumer
	if consumer == "" {
		hostname, _ := os.Hostname()
		consumer = hostname + "-" + uuid.NewString()[:8]
	}
	return &RedisQueue{
		rdb:        rdb,
		stream:     cfg.Stream,
		group:      cfg.Group,
		consumer:   consumer,
		visibility: cfg.VisibilityTimeout,
		block:      cfg.ReceiveBlock,
	}
}

func (q *RedisQueue) Enqueue(ctx context.Context, body []byte) error {
	err := q.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: q.stream,
		Values: map[string]any{"body": body},
	}).Err()
	if err != nil {
		return infra.WrapErr("failed to enqueue reservation message", err, infra.KindQueueFailure)
	}
	return nil
}

// Receive returns at most one message: first a delivery reclaimed from another
// consumer's expired claim, otherwise the next new entry. An empty queue is an
// empty result, not an error.
func (q *RedisQueue) Receive(ctx context.Context) ([]commands.QueueMessage, error) {
	if err := q.ensureGroup(ctx); err != nil {
		return nil, infra.WrapErr("failed to create consumer group", err, infra.KindQueueFailure)
	}

	claimed, _, err := q.rdb.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   q.stream,
		Group:    q.group,
		Consumer: q.consumer,
		MinIdle:  q.visibility,
		Start:    "0-0",
		Count:    1,
	}).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, infra.WrapErr("failed to reclaim pending messages", err, infra.KindQueueFailure)
	}
	if msgs := toQueueMessages(claimed); len(msgs) > 0 {
		return msgs, nil
	}

	streams, err := q.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    q.group,
		Consumer: q.consumer,
		Streams:  []string{q.stream, ">"},
		Count:    1,
		Block:    q.block,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, infra.WrapErr("failed to receive reservation messages", err, infra.KindQueueFailure)
	}

	var out []commands.QueueMessage
	for _, stream := range streams {
		out = append(out, toQueueMessages(stream.Messages)...)
	}
	return out, nil
}

// Delete acknowledges one delivery and drops the entry from the stream.
func (q *RedisQueue) Delete(ctx context.Context, receiptToken string) error {
	if err := q.rdb.XAck(ctx, q.stream, q.group, receiptToken).Err(); err != nil {
		return infra.WrapErr("failed to ack reservation message", err, infra.KindQueueFailure)
	}
	if err := q.rdb.XDel(ctx, q.stream, receiptToken).Err(); err != nil {
		return infra.WrapErr("failed to delete reservation message", err, infra.KindQueueFailure)
	}
	return nil
}

func (q *RedisQueue) ensureGroup(ctx context.Context) error {
	q.groupOnce.Do(func() {
		err := q.rdb.XGroupCreateMkStream(ctx, q.stream, q.group, "0").Err()
		if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
			q.groupErr = err
		}
	})
	return q.groupErr
}

func toQueueMessages(msgs []redis.XMessage) []commands.QueueMessage {
	var out []commands.QueueMessage
	for _, m := range msgs {
		body, ok := m.Values["body"].(string)
		if !ok {
			continue
		}
		out = append(out, commands.QueueMessage{
			Body:         []byte(body),
			ReceiptToken: m.ID,
		})
	}
	return out
}
