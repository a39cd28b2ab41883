package shop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	c := NewCatalog(NewMemStore(), nil)

	seeded, err := c.Seed(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	products, err := c.ListProducts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, products, len(seedProducts))

	seeded, err = c.Seed(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	again, err := c.ListProducts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, again, len(products))

	cats, err := c.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, len(seedCategories))
	assert.Equal(t, "spices", cats[0].ID)
}

func TestSeedSkipsNonEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	seedProduct(t, s, "existing", 100)

	seeded, err := NewCatalog(s, nil).Seed(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	cats, _ := s.ListCategories(ctx)
	assert.Empty(t, cats)
}

func TestListProductsByCategory(t *testing.T) {
	ctx := context.Background()
	c := NewCatalog(NewMemStore(), nil)
	_, err := c.Seed(ctx)
	require.NoError(t, err)

	spices, err := c.ListProducts(ctx, "spices")
	require.NoError(t, err)
	require.Len(t, spices, 3)
	for _, p := range spices {
		assert.Equal(t, "spices", p.Category)
	}

	none, err := c.ListProducts(ctx, "Spices")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetProduct(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	seedProduct(t, s, "p1", 1000)
	c := NewCatalog(s, nil)

	p, err := c.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1000, p.Price)

	_, err = c.GetProduct(ctx, "p2")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, MsgProductNotFound, nf.MessageID())
}
