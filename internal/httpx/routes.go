package httpx

import (
	"github.com/ariefcatur/go-storefront/internal/locale"
	"github.com/ariefcatur/go-storefront/internal/shop"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Deps struct {
	Catalog *shop.Catalog
	Cart    *shop.CartEngine
	Orders  *shop.OrderAssembler
	Locale  *locale.Translator
	Log     *zap.Logger
}

// Mount registers every storefront endpoint under /api.
func Mount(r chi.Router, d Deps) {
	rs := responder{Locale: d.Locale, Log: d.Log}
	r.Route("/api", func(api chi.Router) {
		(&CatalogHandler{responder: rs, Catalog: d.Catalog}).Register(api)
		(&CartHandler{responder: rs, Cart: d.Cart}).Register(api)
		(&OrdersHandler{responder: rs, Orders: d.Orders}).Register(api)
	})
}
