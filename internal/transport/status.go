package transport

import (
	"net/http"

	"loja-be/internal/metrics"
)

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]any{
		"status":        "ok",
		"orders_placed": metrics.OrdersPlaced.Load(),
		"orders_failed": metrics.OrdersFailed.Load(),
	})
}
