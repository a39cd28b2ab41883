package httpx

import (
	"net/http"

	"github.com/ariefcatur/go-storefront/internal/shop"
	"github.com/google/uuid"
)

const SessionHeader = "X-Session-Id"

// sessionID reads the client's session id. When absent a throwaway id is
// generated for this request only; the client owns persistence.
func sessionID(r *http.Request) shop.SessionID {
	if sid := r.Header.Get(SessionHeader); sid != "" {
		return shop.SessionID(sid)
	}
	return shop.SessionID(uuid.NewString())
}
