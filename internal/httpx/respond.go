package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ariefcatur/go-storefront/internal/locale"
	"github.com/ariefcatur/go-storefront/internal/shop"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type messageResp struct {
	Message string `json:"message"`
}

// responder turns domain errors into localized {"message": ...} bodies.
type responder struct {
	Locale *locale.Translator
	Log    *zap.Logger
}

func (rs *responder) message(w http.ResponseWriter, r *http.Request, code int, id string) {
	writeJSON(w, code, messageResp{Message: rs.Locale.Message(r.Header.Get("Accept-Language"), id)})
}

func (rs *responder) fail(w http.ResponseWriter, r *http.Request, err error) {
	var ve *shop.ValidationError
	var nf *shop.NotFoundError
	switch {
	case errors.As(err, &ve):
		rs.message(w, r, http.StatusBadRequest, ve.MessageID)
	case errors.Is(err, shop.ErrEmptyCart):
		rs.message(w, r, http.StatusBadRequest, shop.MsgCartEmpty)
	case errors.As(err, &nf):
		rs.message(w, r, http.StatusNotFound, nf.MessageID())
	default:
		rs.Log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		rs.message(w, r, http.StatusInternalServerError, shop.MsgInternal)
	}
}
