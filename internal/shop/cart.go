package shop

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CartViewCache holds rendered cart views per session.
type CartViewCache interface {
	Get(ctx context.Context, sid SessionID) (*CartView, bool, error)
	Set(ctx context.Context, sid SessionID, v *CartView) error
	Invalidate(ctx context.Context, sid SessionID) error
}

// CartEngine owns the per-session cart lines. It takes no locks: two
// concurrent mutations of the same session may lose an update.
type CartEngine struct {
	Store CartCatalogStore
	Cache CartViewCache // optional
	Log   *zap.Logger
}

// CartCatalogStore is the slice of Store the cart needs.
type CartCatalogStore interface {
	CartStore
	GetProduct(ctx context.Context, id string) (*Product, error)
}

func NewCartEngine(store CartCatalogStore, cache CartViewCache, log *zap.Logger) *CartEngine {
	if log == nil {
		log = zap.NewNop()
	}
	return &CartEngine{Store: store, Cache: cache, Log: log}
}

// List joins each line with its product. Lines whose product is gone are
// skipped.
func (e *CartEngine) List(ctx context.Context, sid SessionID) ([]CartLine, error) {
	items, err := e.Store.ListCartItems(ctx, sid)
	if err != nil {
		return nil, err
	}
	out := make([]CartLine, 0, len(items))
	for _, it := range items {
		p, err := e.Store.GetProduct(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}
		out = append(out, CartLine{LineItem: it, Product: *p})
	}
	return out, nil
}

// Add merges qty into the session's line for productID, creating the line
// when none exists. qty <= 0 counts as 1.
func (e *CartEngine) Add(ctx context.Context, sid SessionID, productID string, qty int) (*LineItem, error) {
	if qty <= 0 {
		qty = 1
	}
	existing, err := e.Store.FindCartItem(ctx, sid, productID)
	if err != nil {
		return nil, err
	}

	var it *LineItem
	if existing != nil {
		it, err = e.Store.SetCartItemQuantity(ctx, existing.ID, existing.Quantity+qty)
		if err != nil {
			return nil, err
		}
		if it == nil {
			return nil, &NotFoundError{Resource: "cart item", ID: existing.ID}
		}
	} else {
		it = &LineItem{ID: uuid.NewString(), SessionID: sid, ProductID: productID, Quantity: qty}
		if err := e.Store.InsertCartItem(ctx, it); err != nil {
			return nil, err
		}
	}
	e.invalidate(ctx, sid)
	return it, nil
}

// UpdateQuantity sets the quantity unconditionally; callers reject qty < 1.
func (e *CartEngine) UpdateQuantity(ctx context.Context, id string, qty int) (*LineItem, error) {
	it, err := e.Store.SetCartItemQuantity(ctx, id, qty)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, &NotFoundError{Resource: "cart item", ID: id}
	}
	e.invalidate(ctx, it.SessionID)
	return it, nil
}

// Increment adds one unit to an existing line.
func (e *CartEngine) Increment(ctx context.Context, id string) (*LineItem, error) {
	it, err := e.Store.GetCartItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, &NotFoundError{Resource: "cart item", ID: id}
	}
	return e.UpdateQuantity(ctx, id, it.Quantity+1)
}

// Decrement removes one unit. A line at quantity 1 is deleted instead, in
// which case the returned item is nil.
func (e *CartEngine) Decrement(ctx context.Context, id string) (*LineItem, error) {
	it, err := e.Store.GetCartItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, &NotFoundError{Resource: "cart item", ID: id}
	}
	if it.Quantity <= 1 {
		return nil, e.Remove(ctx, id)
	}
	return e.UpdateQuantity(ctx, id, it.Quantity-1)
}

// Remove is idempotent: unknown ids are a no-op.
func (e *CartEngine) Remove(ctx context.Context, id string) error {
	it, err := e.Store.DeleteCartItem(ctx, id)
	if err != nil {
		return err
	}
	if it != nil {
		e.invalidate(ctx, it.SessionID)
	}
	return nil
}

func (e *CartEngine) Clear(ctx context.Context, sid SessionID) error {
	if err := e.Store.DeleteCartItems(ctx, sid); err != nil {
		return err
	}
	e.invalidate(ctx, sid)
	return nil
}

// RemoveOrdered takes an order's snapshot out of the cart: each ordered
// quantity is subtracted from the matching line, and the line is deleted only
// when nothing would be left. Lines the order did not cover are untouched.
func (e *CartEngine) RemoveOrdered(ctx context.Context, sid SessionID, ordered []OrderLine) error {
	defer e.invalidate(ctx, sid)
	for _, l := range ordered {
		it, err := e.Store.FindCartItem(ctx, sid, l.ProductID)
		if err != nil {
			return err
		}
		if it == nil {
			continue
		}
		if it.Quantity > l.Quantity {
			_, err = e.Store.SetCartItemQuantity(ctx, it.ID, it.Quantity-l.Quantity)
		} else {
			_, err = e.Store.DeleteCartItem(ctx, it.ID)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Count is the total number of units, not the number of lines.
func (e *CartEngine) Count(ctx context.Context, sid SessionID) (int, error) {
	items, err := e.Store.ListCartItems(ctx, sid)
	if err != nil {
		return 0, err
	}
	return sumQuantities(items), nil
}

// View is the cart payload for a session, served from the cache when present.
func (e *CartEngine) View(ctx context.Context, sid SessionID) (*CartView, error) {
	if e.Cache != nil {
		v, ok, err := e.Cache.Get(ctx, sid)
		if err != nil {
			e.Log.Warn("cart cache read failed", zap.String("session_id", string(sid)), zap.Error(err))
		} else if ok {
			return v, nil
		}
	}

	lines, err := e.List(ctx, sid)
	if err != nil {
		return nil, err
	}
	count, err := e.Count(ctx, sid)
	if err != nil {
		return nil, err
	}
	v := &CartView{Items: lines, Count: count}

	if e.Cache != nil {
		if err := e.Cache.Set(ctx, sid, v); err != nil {
			e.Log.Warn("cart cache write failed", zap.String("session_id", string(sid)), zap.Error(err))
		}
	}
	return v, nil
}

func (e *CartEngine) invalidate(ctx context.Context, sid SessionID) {
	if e.Cache == nil {
		return
	}
	if err := e.Cache.Invalidate(ctx, sid); err != nil {
		e.Log.Warn("cart cache invalidate failed", zap.String("session_id", string(sid)), zap.Error(err))
	}
}

func sumQuantities(items []LineItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
