package api

import (
	"errors"
	"net/http"
	"strconv"

	"noir-be/internal/catalog"
	"noir-be/internal/httpx"

	"github.com/go-chi/chi/v5"
)

type productHandler struct {
	catalog catalog.Service
}

// productView is the catalog product plus the derived size/color
// convenience lists the storefront renders selectors from.
type productView struct {
	catalog.Product
	Sizes  []string `json:"sizes"`
	Colors []string `json:"colors"`
}

func toView(p catalog.Product) productView {
	return productView{
		Product: p,
		Sizes:   p.Sizes(),
		Colors:  p.Colors(),
	}
}

// writeCommerceError maps upstream failures to user-facing fallbacks:
// the page renders "please check back later", never a raw error.
func writeCommerceError(w http.ResponseWriter, err error) {
	if errors.Is(err, catalog.ErrProductNotFound) {
		httpx.WriteError(w, http.StatusNotFound, "product not found")
		return
	}
	httpx.WriteError(w, http.StatusServiceUnavailable, "store temporarily unavailable, please check back later")
}

func (h *productHandler) list(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil {
		httpx.WriteError(w, http.StatusServiceUnavailable, "store is not configured")
		return
	}

	first := 20
	if v := r.URL.Query().Get("first"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			first = n
		}
	}

	products, err := h.catalog.GetList(r.Context(), first)
	if err != nil {
		writeCommerceError(w, err)
		return
	}

	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, toView(p))
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{"products": views})
}

func (h *productHandler) detail(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil {
		httpx.WriteError(w, http.StatusServiceUnavailable, "store is not configured")
		return
	}

	product, err := h.catalog.GetByHandle(r.Context(), chi.URLParam(r, "handle"))
	if err != nil {
		writeCommerceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toView(*product))
}

type resolveRequest struct {
	Selections map[string]string `json:"selections"`
	Quantity   int               `json:"quantity"`
}

type resolveResponse struct {
	Resolved       bool                       `json:"resolved"`
	Variant        *catalog.Variant           `json:"variant,omitempty"`
	Price          catalog.Money              `json:"price"`
	CompareAtPrice *catalog.Money             `json:"compare_at_price,omitempty"`
	Availability   map[string]map[string]bool `json:"availability"`
}

// resolve maps the current option selections to a variant, the price to
// display, and per-value availability for greying out combinations.
func (h *productHandler) resolve(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil {
		httpx.WriteError(w, http.StatusServiceUnavailable, "store is not configured")
		return
	}

	var req resolveRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.catalog.GetByHandle(r.Context(), chi.URLParam(r, "handle"))
	if err != nil {
		writeCommerceError(w, err)
		return
	}

	sel := catalog.Selection(req.Selections)
	price, compareAt := catalog.DisplayPrice(product, sel)

	availability := make(map[string]map[string]bool, len(product.Options))
	for _, opt := range product.Options {
		values := make(map[string]bool, len(opt.Values))
		for _, value := range opt.Values {
			values[value] = catalog.IsValueAvailable(product, opt.Name, value, sel)
		}
		availability[opt.Name] = values
	}

	variant := catalog.Resolve(product, sel)
	httpx.WriteJSON(w, http.StatusOK, resolveResponse{
		Resolved:       variant != nil,
		Variant:        variant,
		Price:          price,
		CompareAtPrice: compareAt,
		Availability:   availability,
	})
}
