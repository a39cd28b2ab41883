// Package sweeper finishes the post-order cart clear out of band.
package sweeper

import (
	"context"
	"encoding/json"
	"fmt"

	kafkax "github.com/ariefcatur/go-storefront/internal/kafka"
	"github.com/ariefcatur/go-storefront/internal/redisx"
	"github.com/ariefcatur/go-storefront/internal/shop"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// OrderedRemover is satisfied by *shop.CartEngine.
type OrderedRemover interface {
	RemoveOrdered(ctx context.Context, sid shop.SessionID, ordered []shop.OrderLine) error
}

type Service struct {
	Cart        OrderedRemover
	Redis       *redis.Client // optional; nil disables dedup
	ServiceName string
	Log         *zap.Logger
}

// HandleOrderPlaced takes the ordered lines out of the session's cart when
// the clear at order time failed. Lines added after the order stay.
// Subtraction is not idempotent, so each event id is applied once.
func (s *Service) HandleOrderPlaced(ctx context.Context, m kafkago.Message) error {
	var env shop.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		s.Log.Warn("dropping undecodable message", zap.Int64("offset", m.Offset), zap.Error(err))
		return nil
	}
	if env.EventType != shop.EventOrderPlaced {
		return nil
	}

	p, err := kafkax.UnwrapPayload[shop.OrderPlacedPayload](env.Payload)
	if err != nil {
		s.Log.Warn("dropping malformed payload", zap.String("event_id", env.EventID), zap.Error(err))
		return nil
	}
	if p.CartCleared || p.SessionID == "" || len(p.Items) == 0 {
		return nil
	}

	key := fmt.Sprintf(redisx.KeyDedup, s.ServiceName, env.EventID)
	if s.Redis != nil {
		first, err := redisx.MarkOnce(ctx, s.Redis, key, redisx.TTLDedup)
		if err != nil {
			return fmt.Errorf("dedup %s: %w", env.EventID, err)
		}
		if !first {
			return nil
		}
	}

	if err := s.Cart.RemoveOrdered(ctx, p.SessionID, p.Items); err != nil {
		if s.Redis != nil {
			_ = s.Redis.Del(ctx, key).Err()
		}
		return fmt.Errorf("sweep cart %s: %w", p.SessionID, err)
	}
	s.Log.Info("cart swept",
		zap.String("order_id", p.OrderID),
		zap.String("session_id", string(p.SessionID)),
		zap.Int("lines", len(p.Items)))
	return nil
}
