package shop

import "time"

// SessionID is the opaque, client-chosen key grouping a cart's lines.
// It is a correlation key, not a credential.
type SessionID string

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	NameEn      string  `json:"nameEn,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       int     `json:"price"` // minor units
	Image       string  `json:"image,omitempty"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Badge       *string `json:"badge"`
	InStock     bool    `json:"inStock"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

type LineItem struct {
	ID        string    `json:"id"`
	SessionID SessionID `json:"sessionId"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// CartLine is a line item joined with its product.
type CartLine struct {
	LineItem
	Product Product `json:"product"`
}

type CartView struct {
	Items []CartLine `json:"items"`
	Count int        `json:"count"`
}

type Order struct {
	ID          string      `json:"id"`
	SessionID   SessionID   `json:"sessionId"`
	Total       int         `json:"total"`
	ShippingFee int         `json:"shippingFee"`
	Status      Status      `json:"status"`
	Name        string      `json:"name"`
	Phone       string      `json:"phone"`
	Address     string      `json:"address"`
	CreatedAt   time.Time   `json:"createdAt"`
	Items       []OrderLine `json:"items"`
}

// OrderLine is the price snapshot of one cart line at placement time.
type OrderLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int    `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}
