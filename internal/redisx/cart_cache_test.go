package redisx

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ariefcatur/go-storefront/internal/shop"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})
	return mr, client
}

func TestCartCacheRoundTrip(t *testing.T) {
	_, rdb := setupTestRedis(t)
	c := NewCartCache(rdb, time.Minute)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "sess")
	require.NoError(t, err)
	assert.False(t, ok)

	view := &shop.CartView{
		Items: []shop.CartLine{{
			LineItem: shop.LineItem{ID: "l1", SessionID: "sess", ProductID: "p1", Quantity: 2},
			Product:  shop.Product{ID: "p1", Name: "Dates", Price: 5500},
		}},
		Count: 2,
	}
	require.NoError(t, c.Set(ctx, "sess", view))

	got, ok, err := c.Get(ctx, "sess")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, view, got)

	require.NoError(t, c.Invalidate(ctx, "sess"))
	_, ok, err = c.Get(ctx, "sess")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCartCacheExpires(t *testing.T) {
	mr, rdb := setupTestRedis(t)
	c := NewCartCache(rdb, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "sess", &shop.CartView{Items: []shop.CartLine{}}))
	mr.FastForward(2 * time.Minute)

	_, ok, err := c.Get(ctx, "sess")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCartCacheWithEngine(t *testing.T) {
	_, rdb := setupTestRedis(t)
	ctx := context.Background()
	store := shop.NewMemStore()
	require.NoError(t, store.CreateProduct(ctx, &shop.Product{ID: "p1", Name: "Chili", Price: 1500}))
	e := shop.NewCartEngine(store, NewCartCache(rdb, time.Minute), nil)

	v, err := e.View(ctx, "sess")
	require.NoError(t, err)
	assert.Zero(t, v.Count)

	n, err := rdb.Exists(ctx, "cart:view:sess").Result()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = e.Add(ctx, "sess", "p1", 3)
	require.NoError(t, err)

	n, err = rdb.Exists(ctx, "cart:view:sess").Result()
	require.NoError(t, err)
	assert.Zero(t, n)

	v, err = e.View(ctx, "sess")
	require.NoError(t, err)
	assert.Equal(t, 3, v.Count)
}

func TestMarkOnce(t *testing.T) {
	_, rdb := setupTestRedis(t)
	ctx := context.Background()

	first, err := MarkOnce(ctx, rdb, "dedup:x:1", time.Hour)
	require.NoError(t, err)
	assert.True(t, first)

	second, err := MarkOnce(ctx, rdb, "dedup:x:1", time.Hour)
	require.NoError(t, err)
	assert.False(t, second)
}
