package transport

import (
	"net/http"

	"loja-be/internal/user"
)

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string    `json:"token"`
	User  user.User `json:"user"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, u, err := h.Users.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		respondError(r, w, err)
		return
	}

	setAuthCookie(w, token)
	respond(w, http.StatusCreated, authResponse{Token: token, User: u})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, u, err := h.Users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(r, w, err)
		return
	}

	setAuthCookie(w, token)
	respond(w, http.StatusOK, authResponse{Token: token, User: u})
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	u, err := h.Users.GetProfile(r.Context())
	if err != nil {
		respondError(r, w, err)
		return
	}

	respond(w, http.StatusOK, u)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var params user.UpdateProfileParams
	if err := decodeJSON(r, &params); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.Users.UpdateProfile(r.Context(), params)
	if err != nil {
		respondError(r, w, err)
		return
	}

	respond(w, http.StatusOK, u)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Users.ChangePassword(r.Context(), req.CurrentPassword, req.NewPassword); err != nil {
		respondError(r, w, err)
		return
	}

	respond(w, http.StatusOK, map[string]string{"status": "password changed"})
}

func setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
