package shop

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

// Repo is the Postgres Store.
type Repo struct{ DB *pgxpool.Pool }

const productColumns = `id, name, COALESCE(name_en, ''), COALESCE(description, ''), price,
	COALESCE(image, ''), category, COALESCE(rating, 0), COALESCE(reviews, 0), badge, COALESCE(in_stock, true)`

func scanProduct(row pgx.Row) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.NameEn, &p.Description, &p.Price,
		&p.Image, &p.Category, &p.Rating, &p.Reviews, &p.Badge, &p.InStock)
	return p, err
}

func (r *Repo) queryProducts(ctx context.Context, sql string, args ...any) ([]Product, error) {
	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query products")
	}
	defer rows.Close()

	out := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan product")
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) ListProducts(ctx context.Context) ([]Product, error) {
	return r.queryProducts(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at, id`)
}

func (r *Repo) ListProductsByCategory(ctx context.Context, categoryID string) ([]Product, error) {
	return r.queryProducts(ctx, `SELECT `+productColumns+` FROM products WHERE category=$1 ORDER BY created_at, id`, categoryID)
}

func (r *Repo) GetProduct(ctx context.Context, id string) (*Product, error) {
	p, err := scanProduct(r.DB.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get product %s", id)
	}
	return &p, nil
}

func (r *Repo) CountProducts(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "count products")
	}
	return n, nil
}

func (r *Repo) CreateProduct(ctx context.Context, p *Product) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO products(id, name, name_en, description, price, image, category, rating, reviews, badge, in_stock)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		p.ID, p.Name, p.NameEn, p.Description, p.Price, p.Image, p.Category, p.Rating, p.Reviews, p.Badge, p.InStock)
	return errors.Wrapf(err, "insert product %s", p.ID)
}

func (r *Repo) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, name, COALESCE(icon, '') FROM categories ORDER BY created_at, id`)
	if err != nil {
		return nil, errors.Wrap(err, "query categories")
	}
	defer rows.Close()

	out := []Category{}
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon); err != nil {
			return nil, errors.Wrap(err, "scan category")
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) CreateCategory(ctx context.Context, c *Category) error {
	_, err := r.DB.Exec(ctx, `INSERT INTO categories(id, name, icon) VALUES ($1,$2,$3)`, c.ID, c.Name, c.Icon)
	return errors.Wrapf(err, "insert category %s", c.ID)
}

func scanLineItem(row pgx.Row) (*LineItem, error) {
	var it LineItem
	var sid string
	if err := row.Scan(&it.ID, &sid, &it.ProductID, &it.Quantity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	it.SessionID = SessionID(sid)
	return &it, nil
}

func (r *Repo) ListCartItems(ctx context.Context, sid SessionID) ([]LineItem, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, session_id, product_id, quantity
	                              FROM cart_items WHERE session_id=$1 ORDER BY created_at, id`, string(sid))
	if err != nil {
		return nil, errors.Wrap(err, "query cart items")
	}
	defer rows.Close()

	out := []LineItem{}
	for rows.Next() {
		it, err := scanLineItem(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan cart item")
		}
		out = append(out, *it)
	}
	return out, rows.Err()
}

func (r *Repo) GetCartItem(ctx context.Context, id string) (*LineItem, error) {
	it, err := scanLineItem(r.DB.QueryRow(ctx,
		`SELECT id, session_id, product_id, quantity FROM cart_items WHERE id=$1`, id))
	return it, errors.Wrapf(err, "get cart item %s", id)
}

func (r *Repo) FindCartItem(ctx context.Context, sid SessionID, productID string) (*LineItem, error) {
	it, err := scanLineItem(r.DB.QueryRow(ctx,
		`SELECT id, session_id, product_id, quantity FROM cart_items WHERE session_id=$1 AND product_id=$2`,
		string(sid), productID))
	return it, errors.Wrap(err, "find cart item")
}

func (r *Repo) InsertCartItem(ctx context.Context, it *LineItem) error {
	_, err := r.DB.Exec(ctx, `INSERT INTO cart_items(id, session_id, product_id, quantity) VALUES ($1,$2,$3,$4)`,
		it.ID, string(it.SessionID), it.ProductID, it.Quantity)
	return errors.Wrap(err, "insert cart item")
}

func (r *Repo) SetCartItemQuantity(ctx context.Context, id string, qty int) (*LineItem, error) {
	it, err := scanLineItem(r.DB.QueryRow(ctx, `
		UPDATE cart_items SET quantity=$2 WHERE id=$1
		RETURNING id, session_id, product_id, quantity`, id, qty))
	return it, errors.Wrapf(err, "update cart item %s", id)
}

func (r *Repo) DeleteCartItem(ctx context.Context, id string) (*LineItem, error) {
	it, err := scanLineItem(r.DB.QueryRow(ctx, `
		DELETE FROM cart_items WHERE id=$1
		RETURNING id, session_id, product_id, quantity`, id))
	return it, errors.Wrapf(err, "delete cart item %s", id)
}

func (r *Repo) DeleteCartItems(ctx context.Context, sid SessionID) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM cart_items WHERE session_id=$1`, string(sid))
	return errors.Wrap(err, "clear cart")
}

// InsertOrder writes the order row and its line snapshot in one transaction.
func (r *Repo) InsertOrder(ctx context.Context, o *Order) error {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return errors.Wrap(err, "begin order tx")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
		INSERT INTO orders(id, session_id, total, shipping_fee, status, name, phone, address, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		o.ID, string(o.SessionID), o.Total, o.ShippingFee, string(o.Status), o.Name, o.Phone, o.Address, o.CreatedAt,
	); err != nil {
		return errors.Wrap(err, "insert order")
	}

	for i, l := range o.Items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_items(order_id, position, product_id, name, unit_price, quantity)
			VALUES ($1,$2,$3,$4,$5,$6)`,
			o.ID, i, l.ProductID, l.Name, l.UnitPrice, l.Quantity,
		); err != nil {
			return errors.Wrap(err, "insert order item")
		}
	}
	return errors.Wrap(tx.Commit(ctx), "commit order")
}

const orderColumns = `id, session_id, total, shipping_fee, status, COALESCE(name, ''), COALESCE(phone, ''),
	COALESCE(address, ''), created_at`

func scanOrder(row pgx.Row) (Order, error) {
	var o Order
	var sid, status string
	if err := row.Scan(&o.ID, &sid, &o.Total, &o.ShippingFee, &status, &o.Name, &o.Phone, &o.Address, &o.CreatedAt); err != nil {
		return o, err
	}
	o.SessionID = SessionID(sid)
	o.Status = Status(status)
	if !o.Status.Valid() {
		return o, errors.Errorf("order %s has unknown status %q", o.ID, status)
	}
	return o, nil
}

func (r *Repo) orderItems(ctx context.Context, orderID string) ([]OrderLine, error) {
	rows, err := r.DB.Query(ctx, `SELECT product_id, name, unit_price, quantity
	                              FROM order_items WHERE order_id=$1 ORDER BY position`, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "query order items")
	}
	defer rows.Close()

	out := []OrderLine{}
	for rows.Next() {
		var l OrderLine
		if err := rows.Scan(&l.ProductID, &l.Name, &l.UnitPrice, &l.Quantity); err != nil {
			return nil, errors.Wrap(err, "scan order item")
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *Repo) GetOrder(ctx context.Context, id string) (*Order, error) {
	o, err := scanOrder(r.DB.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get order %s", id)
	}
	if o.Items, err = r.orderItems(ctx, o.ID); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repo) ListOrders(ctx context.Context, sid SessionID) ([]Order, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+orderColumns+` FROM orders WHERE session_id=$1 ORDER BY created_at`, string(sid))
	if err != nil {
		return nil, errors.Wrap(err, "query orders")
	}
	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			rows.Close()
			return nil, errors.Wrap(err, "scan order")
		}
		out = append(out, o)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		if out[i].Items, err = r.orderItems(ctx, out[i].ID); err != nil {
			return nil, err
		}
	}
	if out == nil {
		out = []Order{}
	}
	return out, nil
}

var _ Store = (*Repo)(nil)
