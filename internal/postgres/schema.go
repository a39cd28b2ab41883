package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		icon       TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		name_en     TEXT,
		description TEXT,
		price       INTEGER NOT NULL,
		image       TEXT,
		category    TEXT NOT NULL,
		rating      REAL DEFAULT 0,
		reviews     INTEGER DEFAULT 0,
		badge       TEXT,
		in_stock    BOOLEAN DEFAULT true,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS products_category_idx ON products(category)`,
	// no FK to products: cart lines may outlive their product and are dropped on read.
	`CREATE TABLE IF NOT EXISTS cart_items (
		id         TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		quantity   INTEGER NOT NULL DEFAULT 1 CHECK (quantity >= 1),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (session_id, product_id)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id           TEXT PRIMARY KEY,
		session_id   TEXT NOT NULL,
		total        INTEGER NOT NULL,
		shipping_fee INTEGER NOT NULL DEFAULT 0,
		status       TEXT NOT NULL DEFAULT 'pending',
		name         TEXT,
		phone        TEXT,
		address      TEXT,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS orders_session_idx ON orders(session_id)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		order_id   TEXT NOT NULL REFERENCES orders(id),
		position   INTEGER NOT NULL,
		product_id TEXT NOT NULL,
		name       TEXT NOT NULL,
		unit_price INTEGER NOT NULL,
		quantity   INTEGER NOT NULL,
		PRIMARY KEY (order_id, position)
	)`,
}

// Migrate creates the storefront tables when they do not exist yet.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return errors.Wrap(err, "migrate")
		}
	}
	return nil
}
