package api

import (
	"errors"
	"net/http"

	"noir-be/internal/httpx"
	"noir-be/internal/signup"
)

type signupHandler struct {
	signup signup.Service
}

type signupRequest struct {
	Email string `json:"email"`
}

func (h *signupHandler) register(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.signup.Register(r.Context(), req.Email); err != nil {
		if errors.Is(err, signup.ErrInvalidEmail) {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "failed to register signup")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *signupHandler) list(w http.ResponseWriter, r *http.Request) {
	signups, err := h.signup.List(r.Context())
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "failed to list signups")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{"signups": signups})
}
