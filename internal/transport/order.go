package transport

import (
	"net/http"

	"loja-be/internal/utils"
)

type placeOrderRequest struct {
	AddressID string `json:"address_id"`
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	placed, err := h.Orders.Place(r.Context(), req.AddressID)
	if err != nil {
		respondError(r, w, err)
		return
	}

	respond(w, http.StatusCreated, placed)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListForUser(r.Context())
	if err != nil {
		respondError(r, w, err)
		return
	}

	respond(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(r.URL.Query().Get(":id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid order id")
		return
	}

	o, err := h.Orders.GetForUser(r.Context(), id)
	if err != nil {
		respondError(r, w, err)
		return
	}

	respond(w, http.StatusOK, o)
}
