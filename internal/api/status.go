package api

import (
	"net/http"

	"noir-be/internal/httpx"
	"noir-be/internal/mode"
)

type statusHandler struct {
	mode mode.Service
}

type statusResponse struct {
	IsDropActive bool  `json:"isDropActive"`
	Revision     int64 `json:"revision"`
}

// get reads the flag with no-cache headers so every visitor sees the
// latest state. Reads never fail the page: the service falls back to
// the last known value.
func (h *statusHandler) get(w http.ResponseWriter, r *http.Request) {
	settings := h.mode.GetSettings(r.Context())

	w.Header().Set("Cache-Control", "no-store, max-age=0")
	httpx.WriteJSON(w, http.StatusOK, statusResponse{
		IsDropActive: settings.IsDropActive,
		Revision:     settings.Revision,
	})
}

type setStatusRequest struct {
	IsDropActive *bool `json:"isDropActive"`
}

// set overwrites the flag. Administrator-only; a malformed body is a
// 400.
func (h *statusHandler) set(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.IsDropActive == nil {
		httpx.WriteError(w, http.StatusBadRequest, "expected body {\"isDropActive\": bool}")
		return
	}

	settings, err := h.mode.SetMode(r.Context(), mode.FromBool(*req.IsDropActive))
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "failed to update homepage mode")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, statusResponse{
		IsDropActive: settings.IsDropActive,
		Revision:     settings.Revision,
	})
}
