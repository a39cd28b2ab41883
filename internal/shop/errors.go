package shop

import (
	"errors"
	"fmt"
)

// Message ids shared with the locale bundle.
const (
	MsgFieldsRequired    = "fields_required"
	MsgProductIDRequired = "product_id_required"
	MsgInvalidQuantity   = "invalid_quantity"
	MsgCartEmpty         = "cart_empty"
	MsgProductNotFound   = "product_not_found"
	MsgCartItemNotFound  = "cart_item_not_found"
	MsgOrderNotFound     = "order_not_found"
	MsgInternal          = "internal_error"
)

// ValidationError reports malformed or missing client input.
type ValidationError struct {
	Field     string
	MessageID string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s (%s)", e.Field, e.MessageID)
}

// NotFoundError reports an id that does not resolve.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// MessageID maps the resource to its localized message.
func (e *NotFoundError) MessageID() string {
	switch e.Resource {
	case "product":
		return MsgProductNotFound
	case "cart item":
		return MsgCartItemNotFound
	case "order":
		return MsgOrderNotFound
	}
	return MsgInternal
}

// ErrEmptyCart is returned when an order is placed on a cart with no lines.
var ErrEmptyCart = errors.New("cart is empty")

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
