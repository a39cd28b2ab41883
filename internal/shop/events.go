package shop

import (
	"encoding/json"
	"time"
)

const EventOrderPlaced = "OrderPlaced"

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // order id
	Payload       json.RawMessage `json:"payload"`
}

type OrderPlacedPayload struct {
	OrderID   string      `json:"order_id"`
	SessionID SessionID   `json:"session_id"`
	Total     int         `json:"total"`
	Items     []OrderLine `json:"items"`
	// CartCleared is false when the post-order clear failed and a consumer
	// should retry it.
	CartCleared bool `json:"cart_cleared"`
}
