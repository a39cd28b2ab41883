package httpx

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ariefcatur/go-storefront/internal/shop"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	responder
	Cart *shop.CartEngine
}

type addToCartReq struct {
	ProductID string         `json:"productId"`
	Quantity  *int           `json:"quantity"`
	SessionID shop.SessionID `json:"sessionId"`
}

type cartResp struct {
	Items     []shop.CartLine `json:"items"`
	Count     int             `json:"count"`
	SessionID shop.SessionID  `json:"sessionId"`
}

type addToCartResp struct {
	Item      *shop.LineItem `json:"item"`
	Count     int            `json:"count"`
	SessionID shop.SessionID `json:"sessionId"`
}

type updateQuantityReq struct {
	Quantity *int `json:"quantity"`
}

type decrementResp struct {
	Item    *shop.LineItem `json:"item"`
	Removed bool           `json:"removed"`
}

func (h *CartHandler) Register(r chi.Router) {
	r.Get("/cart", h.getCart)
	r.Get("/cart/count", h.getCount)
	r.Post("/cart", h.addToCart)
	r.Patch("/cart/{id}", h.updateQuantity)
	r.Post("/cart/{id}/increment", h.increment)
	r.Post("/cart/{id}/decrement", h.decrement)
	r.Delete("/cart/{id}", h.remove)
}

func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	v, err := h.Cart.View(r.Context(), sid)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cartResp{Items: v.Items, Count: v.Count, SessionID: sid})
}

func (h *CartHandler) getCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.Cart.Count(r.Context(), sessionID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": n})
}

func (h *CartHandler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, r, &shop.ValidationError{Field: "body", MessageID: shop.MsgProductIDRequired})
		return
	}
	if strings.TrimSpace(req.ProductID) == "" {
		h.fail(w, r, &shop.ValidationError{Field: "productId", MessageID: shop.MsgProductIDRequired})
		return
	}
	qty := 1
	if req.Quantity != nil && *req.Quantity != 0 {
		if *req.Quantity < 0 {
			h.fail(w, r, &shop.ValidationError{Field: "quantity", MessageID: shop.MsgInvalidQuantity})
			return
		}
		qty = *req.Quantity
	}

	sid := req.SessionID
	if sid == "" {
		sid = sessionID(r)
	}

	item, err := h.Cart.Add(r.Context(), sid, req.ProductID, qty)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	count, err := h.Cart.Count(r.Context(), sid)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, addToCartResp{Item: item, Count: count, SessionID: sid})
}

func (h *CartHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Quantity == nil || *req.Quantity < 1 {
		h.fail(w, r, &shop.ValidationError{Field: "quantity", MessageID: shop.MsgInvalidQuantity})
		return
	}
	item, err := h.Cart.UpdateQuantity(r.Context(), chi.URLParam(r, "id"), *req.Quantity)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *CartHandler) increment(w http.ResponseWriter, r *http.Request) {
	item, err := h.Cart.Increment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *CartHandler) decrement(w http.ResponseWriter, r *http.Request) {
	item, err := h.Cart.Decrement(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, decrementResp{Item: item, Removed: item == nil})
}

func (h *CartHandler) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.Cart.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
