package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ramenku/ramenku/internal/account"
	"github.com/ramenku/ramenku/internal/admin"
	"github.com/ramenku/ramenku/internal/cart"
	"github.com/ramenku/ramenku/internal/catalog"
	"github.com/ramenku/ramenku/internal/order"
)

// NewRouter wires every handler onto one chi router. Menu and auth are
// public; cart, checkout and order history need a session; the admin board
// additionally needs the admin role.
func NewRouter(
	menu *catalog.Catalog,
	accounts account.Service,
	carts *cart.Registry,
	orders *order.Ledger,
	checkout order.Service,
	adminService admin.Service,
) chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	auth := NewAuth(accounts)

	NewAuthHandler(accounts).RegisterRoutes(router)
	NewMenuHandler(menu).RegisterRoutes(router)

	router.Group(func(r chi.Router) {
		r.Use(auth.RequireSession)
		NewCartHandler(menu, carts).RegisterRoutes(r)
		NewOrderHandler(checkout, orders, carts).RegisterRoutes(r)
	})

	router.Route("/admin", func(r chi.Router) {
		r.Use(auth.RequireSession)
		r.Use(auth.RequireAdmin)
		NewAdminHandler(adminService).RegisterRoutes(r)
	})

	return router
}
