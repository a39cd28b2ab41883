package kafka

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	OrderID string `json:"order_id"`
	Total   int    `json:"total"`
}

func TestUnwrapPayload(t *testing.T) {
	raw, err := json.Marshal(samplePayload{OrderID: "o1", Total: 9000})
	require.NoError(t, err)

	p, err := UnwrapPayload[samplePayload](raw)
	require.NoError(t, err)
	assert.Equal(t, "o1", p.OrderID)
	assert.Equal(t, 9000, p.Total)
}

func TestUnwrapPayloadRejectsGarbage(t *testing.T) {
	_, err := UnwrapPayload[samplePayload](json.RawMessage(`{"order_id": 5`))
	assert.ErrorContains(t, err, "decode payload")
}

