package shop

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Catalog struct {
	Store CatalogStore
	Log   *zap.Logger
}

func NewCatalog(store CatalogStore, log *zap.Logger) *Catalog {
	if log == nil {
		log = zap.NewNop()
	}
	return &Catalog{Store: store, Log: log}
}

// ListProducts returns every product, or only those whose category equals
// categoryID exactly when it is non-empty.
func (c *Catalog) ListProducts(ctx context.Context, categoryID string) ([]Product, error) {
	if categoryID != "" {
		return c.Store.ListProductsByCategory(ctx, categoryID)
	}
	return c.Store.ListProducts(ctx)
}

func (c *Catalog) GetProduct(ctx context.Context, id string) (*Product, error) {
	p, err := c.Store.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, &NotFoundError{Resource: "product", ID: id}
	}
	return p, nil
}

func (c *Catalog) ListCategories(ctx context.Context) ([]Category, error) {
	return c.Store.ListCategories(ctx)
}

// Seed loads the reference catalog only when there are no products yet.
// It reports whether anything was written.
func (c *Catalog) Seed(ctx context.Context) (bool, error) {
	n, err := c.Store.CountProducts(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	for _, cat := range seedCategories {
		cat := cat
		if err := c.Store.CreateCategory(ctx, &cat); err != nil {
			return false, err
		}
	}
	for _, p := range seedProducts {
		p := p
		p.ID = uuid.NewString()
		if err := c.Store.CreateProduct(ctx, &p); err != nil {
			return false, err
		}
	}
	c.Log.Info("catalog seeded",
		zap.Int("categories", len(seedCategories)), zap.Int("products", len(seedProducts)))
	return true, nil
}
