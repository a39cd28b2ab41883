package redisx

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ariefcatur/go-storefront/internal/shop"
	"github.com/redis/go-redis/v9"
)

// CartCache stores rendered cart views as JSON. Entries are dropped on every
// cart mutation and otherwise expire after TTL.
type CartCache struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewCartCache(rdb *redis.Client, ttl time.Duration) *CartCache {
	if ttl <= 0 {
		ttl = TTLCartView
	}
	return &CartCache{Redis: rdb, TTL: ttl}
}

func cartKey(sid shop.SessionID) string { return fmt.Sprintf(KeyCartView, sid) }

func (c *CartCache) Get(ctx context.Context, sid shop.SessionID) (*shop.CartView, bool, error) {
	s, err := c.Redis.Get(ctx, cartKey(sid)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var v shop.CartView
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false, fmt.Errorf("decode cart view: %w", err)
	}
	return &v, true, nil
}

func (c *CartCache) Set(ctx context.Context, sid shop.SessionID, v *shop.CartView) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Redis.Set(ctx, cartKey(sid), b, c.TTL).Err()
}

func (c *CartCache) Invalidate(ctx context.Context, sid shop.SessionID) error {
	return c.Redis.Del(ctx, cartKey(sid)).Err()
}

var _ shop.CartViewCache = (*CartCache)(nil)
