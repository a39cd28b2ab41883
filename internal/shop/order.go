package shop

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// DefaultShippingFee is the flat fee added to every non-empty order.
const DefaultShippingFee = 1500

// Publisher matches kafka.Producer.Publish.
type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

type PlaceOrderInput struct {
	SessionID SessionID `json:"sessionId"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
}

func (in PlaceOrderInput) validate() error {
	fields := []struct{ name, value string }{
		{"sessionId", string(in.SessionID)},
		{"name", in.Name},
		{"phone", in.Phone},
		{"address", in.Address},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name, MessageID: MsgFieldsRequired}
		}
	}
	return nil
}

// OrderAssembler turns a session's cart into an Order.
type OrderAssembler struct {
	Store       OrderStore
	Cart        *CartEngine
	Publisher   Publisher // optional
	ShippingFee int
	ServiceName string
	Log         *zap.Logger
	Now         func() time.Time
}

func NewOrderAssembler(store OrderStore, cart *CartEngine, pub Publisher, shippingFee int, service string, log *zap.Logger) *OrderAssembler {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderAssembler{
		Store:       store,
		Cart:        cart,
		Publisher:   pub,
		ShippingFee: shippingFee,
		ServiceName: service,
		Log:         log,
		Now:         time.Now,
	}
}

// PlaceOrder persists a pending order priced from the current cart, then
// clears the cart.
//
// Persisting the order is the commit point. The clear that follows is
// best-effort: if it fails the order is still returned as placed and the
// cart may briefly show stale lines; callers must not resubmit on that basis.
// The OrderPlaced event lets the cart sweeper finish the clear. Nothing guards
// against two submissions racing on the same cart.
func (a *OrderAssembler) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*Order, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	lines, err := a.Cart.List(ctx, in.SessionID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	snapshot, subtotal := snapshotLines(lines)
	o := &Order{
		ID:          uuid.NewString(),
		SessionID:   in.SessionID,
		Total:       subtotal + a.ShippingFee,
		ShippingFee: a.ShippingFee,
		Status:      StatusPending,
		Name:        strings.TrimSpace(in.Name),
		Phone:       strings.TrimSpace(in.Phone),
		Address:     strings.TrimSpace(in.Address),
		CreatedAt:   a.Now().UTC(),
		Items:       snapshot,
	}
	if err := a.Store.InsertOrder(ctx, o); err != nil {
		return nil, err
	}

	cleared := true
	if err := a.Cart.Clear(ctx, in.SessionID); err != nil {
		cleared = false
		a.Log.Warn("order placed but cart clear failed",
			zap.String("order_id", o.ID), zap.String("session_id", string(in.SessionID)), zap.Error(err))
	}

	a.publishPlaced(ctx, o, cleared)
	a.Log.Info("order placed",
		zap.String("order_id", o.ID), zap.String("session_id", string(o.SessionID)),
		zap.Int("total", o.Total), zap.Int("lines", len(o.Items)))
	return o, nil
}

func snapshotLines(lines []CartLine) ([]OrderLine, int) {
	out := make([]OrderLine, 0, len(lines))
	subtotal := 0
	for _, l := range lines {
		out = append(out, OrderLine{
			ProductID: l.ProductID,
			Name:      l.Product.Name,
			UnitPrice: l.Product.Price,
			Quantity:  l.Quantity,
		})
		subtotal += l.Product.Price * l.Quantity
	}
	return out, subtotal
}

func (a *OrderAssembler) publishPlaced(ctx context.Context, o *Order, cleared bool) {
	if a.Publisher == nil {
		return
	}
	payload, err := json.Marshal(OrderPlacedPayload{
		OrderID:     o.ID,
		SessionID:   o.SessionID,
		Total:       o.Total,
		Items:       o.Items,
		CartCleared: cleared,
	})
	if err != nil {
		a.Log.Error("encode order placed payload", zap.Error(err))
		return
	}
	ev := Envelope{
		EventID:       uuid.NewString(),
		EventType:     EventOrderPlaced,
		EventVersion:  1,
		OccurredAt:    a.Now().UTC(),
		Producer:      a.ServiceName,
		TraceID:       traceIDFrom(ctx),
		CorrelationID: o.ID,
		Payload:       payload,
	}
	value, err := json.Marshal(ev)
	if err != nil {
		a.Log.Error("encode order placed event", zap.Error(err))
		return
	}
	a.Publisher.Publish(PartitionKey(o.SessionID), value,
		kafkago.Header{Key: "x-event-type", Value: []byte(EventOrderPlaced)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

func (a *OrderAssembler) GetOrder(ctx context.Context, id string) (*Order, error) {
	o, err := a.Store.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, &NotFoundError{Resource: "order", ID: id}
	}
	return o, nil
}

func (a *OrderAssembler) ListOrders(ctx context.Context, sid SessionID) ([]Order, error) {
	return a.Store.ListOrders(ctx, sid)
}

type traceKey struct{}

// WithTraceID attaches a request id that is copied into published events.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceKey{}, id)
}

func traceIDFrom(ctx context.Context) string {
	s, _ := ctx.Value(traceKey{}).(string)
	return s
}
