package transport

import (
	"net/http"

	"loja-be/internal/address"

	"github.com/google/uuid"
)

type addressRequest struct {
	Street       string  `json:"street"`
	Number       string  `json:"number"`
	Complement   *string `json:"complement"`
	Neighborhood string  `json:"neighborhood"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	PostalCode   string  `json:"postal_code"`
	SetAsDefault bool    `json:"set_as_default"`
}

func (h *Handler) listAddresses(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.Addresses.List(r.Context())
	if err != nil {
		respondError(r, w, err)
		return
	}

	respond(w, http.StatusOK, addresses)
}

func (h *Handler) createAddress(w http.ResponseWriter, r *http.Request) {
	var req addressRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.Addresses.Create(r.Context(), address.CreateAddressInput{
		Street:       req.Street,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		SetAsDefault: req.SetAsDefault,
	})
	if err != nil {
		respondError(r, w, err)
		return
	}

	respond(w, http.StatusCreated, a)
}

func (h *Handler) updateAddress(w http.ResponseWriter, r *http.Request) {
	var req addressRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.Addresses.Update(r.Context(), address.UpdateAddressInput{
		AddressID:    r.URL.Query().Get(":id"),
		Street:       req.Street,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		SetAsDefault: req.SetAsDefault,
	})
	if err != nil {
		respondError(r, w, err)
		return
	}

	respond(w, http.StatusOK, a)
}

func (h *Handler) deleteAddress(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.URL.Query().Get(":id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, address.ErrInvalidID.Error())
		return
	}

	if err := h.Addresses.Delete(r.Context(), id); err != nil {
		respondError(r, w, err)
		return
	}

	respond(w, http.StatusNoContent, nil)
}

func (h *Handler) setDefaultAddress(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.URL.Query().Get(":id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, address.ErrInvalidID.Error())
		return
	}

	if err := h.Addresses.SetDefaultAddress(r.Context(), id); err != nil {
		respondError(r, w, err)
		return
	}

	respond(w, http.StatusOK, map[string]string{"status": "default address set"})
}
