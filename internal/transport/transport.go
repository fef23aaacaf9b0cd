package transport

import (
	"net/http"

	"loja-be/internal/address"
	"loja-be/internal/cart"
	"loja-be/internal/category"
	"loja-be/internal/middleware"
	"loja-be/internal/order"
	"loja-be/internal/product"
	"loja-be/internal/user"

	"github.com/bmizerany/pat"
)

// Handler wires every service behind the HTTP surface.
type Handler struct {
	Users      user.Service
	Categories category.Service
	Products   product.Service
	Cart       cart.Service
	Orders     order.Service
	Addresses  address.Service
}

func NewHandler(
	users user.Service,
	categories category.Service,
	products product.Service,
	cartSvc cart.Service,
	orders order.Service,
	addresses address.Service,
) *Handler {
	return &Handler{
		Users:      users,
		Categories: categories,
		Products:   products,
		Cart:       cartSvc,
		Orders:     orders,
		Addresses:  addresses,
	}
}

// Routes builds the router. Auth-required routes sit behind
// RequireAuth; catalog writes behind RequireAdmin as well.
func (h *Handler) Routes() http.Handler {
	mux := pat.New()

	authed := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(fn)
	}
	admin := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(middleware.RequireAdmin(fn))
	}

	mux.Get("/status", http.HandlerFunc(h.status))

	// account
	mux.Post("/register", http.HandlerFunc(h.register))
	mux.Post("/login", http.HandlerFunc(h.login))
	mux.Get("/profile", authed(h.getProfile))
	mux.Put("/profile", authed(h.updateProfile))
	mux.Post("/password", authed(h.changePassword))

	// catalog
	mux.Get("/categories", http.HandlerFunc(h.listCategories))
	mux.Post("/categories", admin(h.createCategory))
	mux.Del("/categories/:id", admin(h.deleteCategory))
	mux.Get("/products", http.HandlerFunc(h.listProducts))
	mux.Get("/products/:slug", http.HandlerFunc(h.getProduct))
	mux.Post("/products", admin(h.createProduct))
	mux.Del("/products/:id", admin(h.deleteProduct))

	// cart
	mux.Get("/cart", http.HandlerFunc(h.viewCart))
	mux.Post("/cart", http.HandlerFunc(h.addToCart))
	mux.Del("/cart/:productID", http.HandlerFunc(h.removeFromCart))

	// orders
	mux.Post("/orders", authed(h.placeOrder))
	mux.Get("/orders", authed(h.listOrders))
	mux.Get("/orders/:id", authed(h.getOrder))

	// addresses
	mux.Get("/addresses", authed(h.listAddresses))
	mux.Post("/addresses", authed(h.createAddress))
	mux.Put("/addresses/:id", authed(h.updateAddress))
	mux.Del("/addresses/:id", authed(h.deleteAddress))
	mux.Post("/addresses/:id/default", authed(h.setDefaultAddress))

	return mux
}
