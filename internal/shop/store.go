package shop

import "context"

// Store is the persistence handle shared by Catalog, CartEngine and
// OrderAssembler. Lookups of a single row return (nil, nil) when absent.
type Store interface {
	CatalogStore
	CartStore
	OrderStore
}

type CatalogStore interface {
	ListProducts(ctx context.Context) ([]Product, error)
	ListProductsByCategory(ctx context.Context, categoryID string) ([]Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	CountProducts(ctx context.Context) (int, error)
	CreateProduct(ctx context.Context, p *Product) error
	ListCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, c *Category) error
}

type CartStore interface {
	ListCartItems(ctx context.Context, sid SessionID) ([]LineItem, error)
	GetCartItem(ctx context.Context, id string) (*LineItem, error)
	FindCartItem(ctx context.Context, sid SessionID, productID string) (*LineItem, error)
	InsertCartItem(ctx context.Context, it *LineItem) error
	// SetCartItemQuantity returns nil when the id does not exist.
	SetCartItemQuantity(ctx context.Context, id string, qty int) (*LineItem, error)
	// DeleteCartItem returns the removed row, or nil when nothing matched.
	DeleteCartItem(ctx context.Context, id string) (*LineItem, error)
	DeleteCartItems(ctx context.Context, sid SessionID) error
}

type OrderStore interface {
	// InsertOrder persists the order and its lines atomically.
	InsertOrder(ctx context.Context, o *Order) error
	GetOrder(ctx context.Context, id string) (*Order, error)
	ListOrders(ctx context.Context, sid SessionID) ([]Order, error)
}
