package api

import (
	"errors"
	"net/http"

	"noir-be/internal/cart"
	"noir-be/internal/catalog"
	"noir-be/internal/checkout"
	"noir-be/internal/httpx"

	"github.com/go-chi/chi/v5"
)

type cartHandler struct {
	catalog  catalog.Service
	carts    *cart.Manager
	checkout checkout.Service
}

type cartResponse struct {
	Items     []cart.Item `json:"items"`
	ItemCount int         `json:"item_count"`
	Total     float64     `json:"total"`
}

func (h *cartHandler) storeFor(w http.ResponseWriter, r *http.Request) *cart.Store {
	key := cart.SessionKey(w, r)
	return h.carts.StoreFor(r.Context(), key)
}

func writeCart(w http.ResponseWriter, store *cart.Store) {
	httpx.WriteJSON(w, http.StatusOK, cartResponse{
		Items:     store.Items(),
		ItemCount: store.ItemCount(),
		Total:     store.Total(),
	})
}

func (h *cartHandler) get(w http.ResponseWriter, r *http.Request) {
	writeCart(w, h.storeFor(w, r))
}

type addItemRequest struct {
	Handle     string            `json:"handle"`
	Selections map[string]string `json:"selections"`
	Quantity   int               `json:"quantity"`
}

// addItem resolves the selection server-side and snapshots the variant
// into the cart. The add is only permitted when a unique, sellable
// variant is identified; the response names the failed precondition
// otherwise.
func (h *cartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil {
		httpx.WriteError(w, http.StatusServiceUnavailable, "store is not configured")
		return
	}

	var req addItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 1 {
		httpx.WriteError(w, http.StatusBadRequest, cart.ErrInvalidQuantity.Error())
		return
	}

	product, err := h.catalog.GetByHandle(r.Context(), req.Handle)
	if err != nil {
		writeCommerceError(w, err)
		return
	}

	sel := catalog.Selection(req.Selections)
	variant, err := catalog.CheckAddToCart(product, sel)
	if err != nil {
		var precondition *catalog.PreconditionError
		if errors.As(err, &precondition) {
			httpx.WriteJSON(w, http.StatusUnprocessableEntity, map[string]string{
				"error":     precondition.Error(),
				"reason":    precondition.Reason,
				"dimension": precondition.Dimension,
			})
			return
		}
		httpx.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}

	size, _ := catalog.Selection(req.Selections).ValueForAliases(catalog.SizeAliases())
	color, _ := catalog.Selection(req.Selections).ValueForAliases(catalog.ColorAliases())

	store := h.storeFor(w, r)
	if err := store.AddItem(r.Context(), cart.Item{
		VariantID: variant.ID,
		ProductID: product.ID,
		Name:      product.Title,
		Price:     variant.Price.Amount,
		Quantity:  req.Quantity,
		Image:     image,
		Size:      size,
		Color:     color,
	}); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeCart(w, store)
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *cartHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	store := h.storeFor(w, r)
	store.UpdateQuantity(r.Context(), chi.URLParam(r, "variantID"), req.Quantity)
	writeCart(w, store)
}

func (h *cartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	store := h.storeFor(w, r)
	store.RemoveItem(r.Context(), chi.URLParam(r, "variantID"))
	writeCart(w, store)
}

func (h *cartHandler) clear(w http.ResponseWriter, r *http.Request) {
	store := h.storeFor(w, r)
	store.Clear(r.Context())
	writeCart(w, store)
}

func (h *cartHandler) checkoutURL(w http.ResponseWriter, r *http.Request) {
	if h.checkout == nil {
		httpx.WriteError(w, http.StatusServiceUnavailable, "store is not configured")
		return
	}

	store := h.storeFor(w, r)
	url, err := h.checkout.CheckoutURL(r.Context(), store.Items())
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		httpx.WriteError(w, http.StatusServiceUnavailable, "checkout temporarily unavailable, please try again")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"checkoutUrl": url})
}
