package transport

import (
	"net/http"

	"loja-be/internal/utils"
)

type addToCartRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

func (h *Handler) viewCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.Cart.View(r.Context())
	if err != nil {
		respondError(r, w, err)
		return
	}

	respond(w, http.StatusOK, view)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if _, err := h.Cart.Add(r.Context(), req.ProductID, req.Quantity); err != nil {
		respondError(r, w, err)
		return
	}

	view, err := h.Cart.View(r.Context())
	if err != nil {
		respondError(r, w, err)
		return
	}

	respond(w, http.StatusOK, view)
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	productID, err := utils.ToUint(r.URL.Query().Get(":productID"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.Cart.Remove(r.Context(), productID); err != nil {
		respondError(r, w, err)
		return
	}

	view, err := h.Cart.View(r.Context())
	if err != nil {
		respondError(r, w, err)
		return
	}

	respond(w, http.StatusOK, view)
}
