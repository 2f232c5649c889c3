package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// dedup:{service}:{id}
	KeyDedup = "dedup:%s:%s"

	ServicePaymentWebhook = "payment-webhook"
)

var TTLDedup = 48 * time.Hour

type (
	// Deduper is a fast path in front of the database event ledger.
	Deduper interface {
		Seen(ctx context.Context, service, id string) (bool, error)
		Mark(ctx context.Context, service, id string) error
	}

	redisDeduper struct {
		rdb *redis.Client
		ttl time.Duration
	}

	noopDeduper struct{}
)

func NewRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
}

func NewRedisDeduper(rdb *redis.Client) Deduper {
	return &redisDeduper{rdb: rdb, ttl: TTLDedup}
}

func NewNoopDeduper() Deduper { return noopDeduper{} }

func DedupKey(service, id string) string {
	return fmt.Sprintf(KeyDedup, service, id)
}

func (d *redisDeduper) Seen(ctx context.Context, service, id string) (bool, error) {
	n, err := d.rdb.Exists(ctx, DedupKey(service, id)).Result()
	return n > 0, err
}

func (d *redisDeduper) Mark(ctx context.Context, service, id string) error {
	return d.rdb.Set(ctx, DedupKey(service, id), "1", d.ttl).Err()
}

func (noopDeduper) Seen(context.Context, string, string) (bool, error) { return false, nil }

func (noopDeduper) Mark(context.Context, string, string) error { return nil }
