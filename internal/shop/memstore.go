package shop

import (
	"context"
	"sort"
	"sync"
)

// MemStore is an in-process Store. Rows keep insertion order so listings are
// stable. The mutex only protects the maps; it does not serialize cart
// read-modify-write sequences issued by the engine.
type MemStore struct {
	mu         sync.RWMutex
	seq        int64
	products   map[string]Product
	categories map[string]Category
	cart       map[string]LineItem
	orders     map[string]Order
	seqOf      map[string]int64 // row id -> insertion seq
}

func NewMemStore() *MemStore {
	return &MemStore{
		products:   map[string]Product{},
		categories: map[string]Category{},
		cart:       map[string]LineItem{},
		orders:     map[string]Order{},
		seqOf:      map[string]int64{},
	}
}

func (m *MemStore) touch(id string) {
	if _, ok := m.seqOf[id]; !ok {
		m.seq++
		m.seqOf[id] = m.seq
	}
}

func (m *MemStore) sortByInsertion(ids []string) {
	sort.Slice(ids, func(i, j int) bool { return m.seqOf[ids[i]] < m.seqOf[ids[j]] })
}

func (m *MemStore) ListProducts(ctx context.Context) ([]Product, error) {
	return m.filterProducts(func(Product) bool { return true }), nil
}

func (m *MemStore) ListProductsByCategory(ctx context.Context, categoryID string) ([]Product, error) {
	return m.filterProducts(func(p Product) bool { return p.Category == categoryID }), nil
}

func (m *MemStore) filterProducts(keep func(Product) bool) []Product {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.products))
	for id, p := range m.products {
		if keep(p) {
			ids = append(ids, id)
		}
	}
	m.sortByInsertion(ids)
	out := make([]Product, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.products[id])
	}
	return out
}

func (m *MemStore) GetProduct(ctx context.Context, id string) (*Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *MemStore) CountProducts(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.products), nil
}

func (m *MemStore) CreateProduct(ctx context.Context, p *Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[p.ID] = *p
	m.touch(p.ID)
	return nil
}

// DeleteProduct has no counterpart in Store: products are immutable after
// seeding. It exists to produce orphaned cart lines in tests.
func (m *MemStore) DeleteProduct(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.products, id)
}

func (m *MemStore) ListCategories(ctx context.Context) ([]Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.categories))
	for id := range m.categories {
		ids = append(ids, id)
	}
	m.sortByInsertion(ids)
	out := make([]Category, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.categories[id])
	}
	return out, nil
}

func (m *MemStore) CreateCategory(ctx context.Context, c *Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories[c.ID] = *c
	m.touch(c.ID)
	return nil
}

func (m *MemStore) ListCartItems(ctx context.Context, sid SessionID) ([]LineItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0)
	for id, it := range m.cart {
		if it.SessionID == sid {
			ids = append(ids, id)
		}
	}
	m.sortByInsertion(ids)
	out := make([]LineItem, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.cart[id])
	}
	return out, nil
}

func (m *MemStore) GetCartItem(ctx context.Context, id string) (*LineItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	it, ok := m.cart[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (m *MemStore) FindCartItem(ctx context.Context, sid SessionID, productID string) (*LineItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, it := range m.cart {
		if it.SessionID == sid && it.ProductID == productID {
			found := it
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MemStore) InsertCartItem(ctx context.Context, it *LineItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cart[it.ID] = *it
	m.touch(it.ID)
	return nil
}

func (m *MemStore) SetCartItemQuantity(ctx context.Context, id string, qty int) (*LineItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.cart[id]
	if !ok {
		return nil, nil
	}
	it.Quantity = qty
	m.cart[id] = it
	return &it, nil
}

func (m *MemStore) DeleteCartItem(ctx context.Context, id string) (*LineItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.cart[id]
	if !ok {
		return nil, nil
	}
	delete(m.cart, id)
	return &it, nil
}

func (m *MemStore) DeleteCartItems(ctx context.Context, sid SessionID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, it := range m.cart {
		if it.SessionID == sid {
			delete(m.cart, id)
		}
	}
	return nil
}

func (m *MemStore) InsertOrder(ctx context.Context, o *Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *o
	cp.Items = append([]OrderLine(nil), o.Items...)
	m.orders[o.ID] = cp
	m.touch(o.ID)
	return nil
}

func (m *MemStore) GetOrder(ctx context.Context, id string) (*Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (m *MemStore) ListOrders(ctx context.Context, sid SessionID) ([]Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0)
	for id, o := range m.orders {
		if o.SessionID == sid {
			ids = append(ids, id)
		}
	}
	m.sortByInsertion(ids)
	out := make([]Order, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.orders[id])
	}
	return out, nil
}

var _ Store = (*MemStore)(nil)
