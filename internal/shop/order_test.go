package shop

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	keys   [][]byte
	values [][]byte
}

func (p *recordingPublisher) Publish(key, value []byte, _ ...kafkago.Header) {
	p.keys = append(p.keys, key)
	p.values = append(p.values, value)
}

// clearFailingStore fails every DeleteCartItems call.
type clearFailingStore struct{ *MemStore }

func (clearFailingStore) DeleteCartItems(context.Context, SessionID) error {
	return errors.New("connection reset")
}

func fillCart(t *testing.T, s *MemStore, e *CartEngine, sid SessionID) {
	t.Helper()
	ctx := context.Background()
	seedProduct(t, s, "a", 1000)
	seedProduct(t, s, "b", 2000)
	seedProduct(t, s, "c", 500)
	for _, add := range []struct {
		id  string
		qty int
	}{{"a", 2}, {"b", 1}, {"c", 3}} {
		_, err := e.Add(ctx, sid, add.id, add.qty)
		require.NoError(t, err)
	}
}

func validInput(sid SessionID) PlaceOrderInput {
	return PlaceOrderInput{SessionID: sid, Name: "Amna", Phone: "0912345678", Address: "Khartoum"}
}

func TestPlaceOrderTotalsAndClearsCart(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	e := NewCartEngine(s, nil, nil)
	fillCart(t, s, e, "sess")

	pub := &recordingPublisher{}
	a := NewOrderAssembler(s, e, pub, DefaultShippingFee, "test", nil)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	a.Now = func() time.Time { return fixed }

	o, err := a.PlaceOrder(ctx, validInput("sess"))
	require.NoError(t, err)

	assert.Equal(t, 7500+DefaultShippingFee, o.Total)
	assert.Equal(t, DefaultShippingFee, o.ShippingFee)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, fixed, o.CreatedAt)
	assert.Len(t, o.Items, 3)

	n, err := e.Count(ctx, "sess")
	require.NoError(t, err)
	assert.Zero(t, n)

	stored, err := a.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.Total, stored.Total)

	require.Len(t, pub.values, 1)
	assert.Equal(t, []byte("sess"), pub.keys[0])
	var ev Envelope
	require.NoError(t, json.Unmarshal(pub.values[0], &ev))
	assert.Equal(t, EventOrderPlaced, ev.EventType)
	assert.Equal(t, o.ID, ev.CorrelationID)
	var payload OrderPlacedPayload
	require.NoError(t, json.Unmarshal(ev.Payload, &payload))
	assert.True(t, payload.CartCleared)
	assert.Equal(t, SessionID("sess"), payload.SessionID)
}

func TestPlaceOrderCustomShippingFee(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	e := NewCartEngine(s, nil, nil)
	fillCart(t, s, e, "sess")

	o, err := NewOrderAssembler(s, e, nil, 0, "test", nil).PlaceOrder(ctx, validInput("sess"))
	require.NoError(t, err)
	assert.Equal(t, 7500, o.Total)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	e := NewCartEngine(s, nil, nil)
	a := NewOrderAssembler(s, e, nil, DefaultShippingFee, "test", nil)

	_, err := a.PlaceOrder(ctx, validInput("sess"))
	assert.ErrorIs(t, err, ErrEmptyCart)

	orders, err := a.ListOrders(ctx, "sess")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestPlaceOrderMissingFields(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	e := NewCartEngine(s, nil, nil)
	fillCart(t, s, e, "sess")
	a := NewOrderAssembler(s, e, nil, DefaultShippingFee, "test", nil)

	cases := map[string]PlaceOrderInput{
		"sessionId": {Name: "n", Phone: "p", Address: "a"},
		"name":      {SessionID: "sess", Phone: "p", Address: "a"},
		"phone":     {SessionID: "sess", Name: "n", Address: "a"},
		"address":   {SessionID: "sess", Name: "n", Phone: "p", Address: "   "},
	}
	for field, in := range cases {
		t.Run(field, func(t *testing.T) {
			_, err := a.PlaceOrder(ctx, in)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, field, ve.Field)
			assert.Equal(t, MsgFieldsRequired, ve.MessageID)
		})
	}

	n, _ := e.Count(ctx, "sess")
	assert.Equal(t, 6, n)
}

func TestPlaceOrderSurvivesClearFailure(t *testing.T) {
	ctx := context.Background()
	mem := NewMemStore()
	seeder := NewCartEngine(mem, nil, nil)
	fillCart(t, mem, seeder, "sess")

	failing := clearFailingStore{mem}
	e := NewCartEngine(failing, nil, nil)
	pub := &recordingPublisher{}
	a := NewOrderAssembler(failing, e, pub, DefaultShippingFee, "test", nil)

	o, err := a.PlaceOrder(ctx, validInput("sess"))
	require.NoError(t, err)
	require.NotNil(t, o)

	stored, err := a.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, stored.ID)

	// stale lines remain until the sweeper clears them
	n, _ := e.Count(ctx, "sess")
	assert.Equal(t, 6, n)

	var ev Envelope
	require.NoError(t, json.Unmarshal(pub.values[0], &ev))
	var payload OrderPlacedPayload
	require.NoError(t, json.Unmarshal(ev.Payload, &payload))
	assert.False(t, payload.CartCleared)
}

func TestPlaceOrderIgnoresOrphanedLines(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	e := NewCartEngine(s, nil, nil)
	fillCart(t, s, e, "sess")
	s.DeleteProduct("a")

	o, err := NewOrderAssembler(s, e, nil, DefaultShippingFee, "test", nil).PlaceOrder(ctx, validInput("sess"))
	require.NoError(t, err)
	assert.Equal(t, 2000+1500+DefaultShippingFee, o.Total)
}

func TestGetOrderNotFound(t *testing.T) {
	a := NewOrderAssembler(NewMemStore(), nil, nil, DefaultShippingFee, "test", nil)
	_, err := a.GetOrder(context.Background(), "nope")
	assert.True(t, IsNotFound(err))
}

func TestTraceIDPropagatesIntoEvent(t *testing.T) {
	ctx := WithTraceID(context.Background(), "req-1")
	s := NewMemStore()
	e := NewCartEngine(s, nil, nil)
	fillCart(t, s, e, "sess")
	pub := &recordingPublisher{}

	_, err := NewOrderAssembler(s, e, pub, DefaultShippingFee, "test", nil).PlaceOrder(ctx, validInput("sess"))
	require.NoError(t, err)

	var ev Envelope
	require.NoError(t, json.Unmarshal(pub.values[0], &ev))
	assert.Equal(t, "req-1", ev.TraceID)
	assert.Equal(t, "test", ev.Producer)
}
