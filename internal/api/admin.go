package api

import (
	"errors"
	"net/http"

	"noir-be/internal/admin"
	"noir-be/internal/httpx"
)

type adminHandler struct {
	auth *admin.Auth
}

type loginRequest struct {
	Password string `json:"password"`
}

func (h *adminHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.auth.Login(req.Password)
	if err != nil {
		if errors.Is(err, admin.ErrNotConfigured) {
			httpx.WriteError(w, http.StatusServiceUnavailable, "admin access not configured")
			return
		}
		httpx.WriteError(w, http.StatusUnauthorized, "invalid password")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "admin_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"token": token})
}
