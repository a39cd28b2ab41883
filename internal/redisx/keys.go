package redisx

import "time"

const (
	// Rendered cart per session: cart:view:{session_id} -> {"items": [...], "count": n}
	KeyCartView = "cart:view:%s"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLCartView = 5 * time.Minute
	TTLDedup    = 48 * time.Hour
)
