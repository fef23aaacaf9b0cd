package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"loja-be/internal/address"
	"loja-be/internal/cart"
	"loja-be/internal/category"
	"loja-be/internal/logger"
	"loja-be/internal/order"
	"loja-be/internal/product"
	"loja-be/internal/user"

	"go.uber.org/zap"
)

func respond(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func respondMessage(w http.ResponseWriter, code int, message string) {
	respond(w, code, map[string]string{"error": message})
}

// respondError maps domain errors to HTTP status codes. Anything
// unexpected is logged and hidden behind a generic 500.
func respondError(r *http.Request, w http.ResponseWriter, err error) {
	var stockErr *order.InsufficientStockError
	if errors.As(err, &stockErr) {
		respond(w, http.StatusConflict, map[string]any{
			"error":      stockErr.Error(),
			"product_id": stockErr.ProductID,
			"available":  stockErr.Available,
		})
		return
	}

	switch {
	case errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, category.ErrCategoryNotFound),
		errors.Is(err, address.ErrAddressNotFound),
		errors.Is(err, order.ErrAddressNotFound),
		errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, user.ErrUserNotFound):
		respondMessage(w, http.StatusNotFound, err.Error())

	case errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, order.ErrInvalidAddress),
		errors.Is(err, address.ErrInvalidID),
		errors.Is(err, address.ErrInvalidState),
		errors.Is(err, address.ErrInvalidPostal),
		errors.Is(err, category.ErrEmptyName),
		errors.Is(err, product.ErrInvalidPrice),
		errors.Is(err, user.ErrInvalidEmail),
		errors.Is(err, user.ErrWeakPassword),
		errors.Is(err, user.ErrWrongPassword):
		respondMessage(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, cart.ErrProductUnavailable),
		errors.Is(err, category.ErrNameTaken),
		errors.Is(err, product.ErrSlugTaken),
		errors.Is(err, product.ErrProductReferenced),
		errors.Is(err, user.ErrEmailExists):
		respondMessage(w, http.StatusConflict, err.Error())

	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, order.ErrUnauthenticated),
		errors.Is(err, address.ErrUnauthenticated):
		respondMessage(w, http.StatusUnauthorized, err.Error())

	case errors.Is(err, order.ErrTransactionFailed):
		respondMessage(w, http.StatusInternalServerError,
			"order could not be processed, please try again")

	default:
		logger.FromCtx(r.Context()).Error("unhandled error", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
