package httpx

import (
	"net/http"

	"github.com/ariefcatur/go-storefront/internal/locale"
	"github.com/ariefcatur/go-storefront/internal/shop"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	responder
	Catalog *shop.Catalog
}

type seedResp struct {
	Message string `json:"message"`
	Seeded  bool   `json:"seeded"`
}

func (h *CatalogHandler) Register(r chi.Router) {
	r.Get("/products", h.listProducts)
	r.Get("/products/{id}", h.getProduct)
	r.Get("/categories", h.listCategories)
	r.Post("/seed", h.seed)
}

func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	ps, err := h.Catalog.ListProducts(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.Catalog.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	cs, err := h.Catalog.ListCategories(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cs)
}

func (h *CatalogHandler) seed(w http.ResponseWriter, r *http.Request) {
	seeded, err := h.Catalog.Seed(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	msg := locale.MsgAlreadySeeded
	if seeded {
		msg = locale.MsgSeeded
	}
	writeJSON(w, http.StatusOK, seedResp{
		Message: h.Locale.Message(r.Header.Get("Accept-Language"), msg),
		Seeded:  seeded,
	})
}
