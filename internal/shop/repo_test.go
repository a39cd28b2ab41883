package shop_test

import (
	"context"
	"os"
	"testing"

	"github.com/ariefcatur/go-storefront/internal/postgres"
	"github.com/ariefcatur/go-storefront/internal/shop"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real database when POSTGRES_TEST_DSN is set.
func newTestRepo(t *testing.T) *shop.Repo {
	t.Helper()
	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}
	ctx := context.Background()
	pool, err := postgres.Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, postgres.Migrate(ctx, pool))
	return &shop.Repo{DB: pool}
}

func TestRepoCartAndOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	sid := shop.SessionID("it-" + uuid.NewString())

	pid := uuid.NewString()
	require.NoError(t, repo.CreateProduct(ctx, &shop.Product{ID: pid, Name: "Hibiscus", Price: 4500, Category: "drinks", InStock: true}))

	e := shop.NewCartEngine(repo, nil, nil)
	_, err := e.Add(ctx, sid, pid, 1)
	require.NoError(t, err)
	it, err := e.Add(ctx, sid, pid, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, it.Quantity)

	lines, err := e.List(ctx, sid)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Hibiscus", lines[0].Product.Name)

	require.NoError(t, e.Remove(ctx, uuid.NewString()))

	a := shop.NewOrderAssembler(repo, e, nil, shop.DefaultShippingFee, "it", nil)
	o, err := a.PlaceOrder(ctx, shop.PlaceOrderInput{SessionID: sid, Name: "n", Phone: "p", Address: "a"})
	require.NoError(t, err)
	assert.Equal(t, 3*4500+shop.DefaultShippingFee, o.Total)

	got, err := a.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, shop.StatusPending, got.Status)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 3, got.Items[0].Quantity)

	n, err := e.Count(ctx, sid)
	require.NoError(t, err)
	assert.Zero(t, n)

	list, err := repo.ListOrders(ctx, sid)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
