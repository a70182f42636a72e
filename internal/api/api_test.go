package api

import (
	"context"
	"net/http"
	"testing"

	"noir-be/internal/admin"
	"noir-be/internal/cart"
	"noir-be/internal/catalog"
	"noir-be/internal/checkout"
	"noir-be/internal/mode"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// fakeCatalog serves products from a map, like the real service does
// from the commerce API.
type fakeCatalog struct {
	products map[string]catalog.Product
}

func (f *fakeCatalog) GetList(ctx context.Context, first int) ([]catalog.Product, error) {
	list := make([]catalog.Product, 0, len(f.products))
	for _, p := range f.products {
		list = append(list, p)
	}
	return list, nil
}

func (f *fakeCatalog) GetByHandle(ctx context.Context, handle string) (*catalog.Product, error) {
	p, ok := f.products[handle]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	return &p, nil
}

// fakeMode keeps the flag in memory.
type fakeMode struct {
	settings mode.Settings
}

func (f *fakeMode) GetSettings(context.Context) mode.Settings { return f.settings }

func (f *fakeMode) GetMode(context.Context) mode.Mode {
	return mode.FromBool(f.settings.IsDropActive)
}

func (f *fakeMode) SetMode(_ context.Context, m mode.Mode) (mode.Settings, error) {
	f.settings.IsDropActive = m.IsDrop()
	f.settings.Revision++
	return f.settings, nil
}

func (f *fakeMode) Toggle(ctx context.Context) (mode.Settings, error) {
	return f.SetMode(ctx, mode.FromBool(!f.settings.IsDropActive))
}

type fakeCheckout struct {
	url string
}

func (f *fakeCheckout) CheckoutURL(_ context.Context, items []cart.Item) (string, error) {
	if len(items) == 0 {
		return "", checkout.ErrEmptyCart
	}
	return f.url, nil
}

func testProduct() catalog.Product {
	variant := func(id, size, color string, available bool) catalog.Variant {
		return catalog.Variant{
			ID:               id,
			AvailableForSale: available,
			Price:            catalog.Money{Amount: 50, Currency: "USD"},
			SelectedOptions: []catalog.SelectedOption{
				{Name: "Size", Value: size},
				{Name: "Color", Value: color},
			},
		}
	}

	return catalog.Product{
		ID:     "p1",
		Handle: "cinematic-hoodie",
		Title:  "Cinematic Hoodie",
		Images: []string{"https://cdn.example/front.jpg"},
		Price:  catalog.Money{Amount: 50, Currency: "USD"},
		Options: []catalog.Option{
			{Name: "Size", Values: []string{"S", "M"}},
			{Name: "Color", Values: []string{"Red", "Blue"}},
		},
		Variants: []catalog.Variant{
			variant("v-s-red", "S", "Red", false),
			variant("v-s-blue", "S", "Blue", true),
			variant("v-m-red", "M", "Red", true),
			variant("v-m-blue", "M", "Blue", true),
		},
		AvailableForSale: true,
	}
}

func testAuth(t *testing.T) *admin.Auth {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	assert.NoError(t, err)
	return admin.NewAuth(string(hash), "test-secret")
}

func newTestRouter(t *testing.T) (http.Handler, *fakeMode, *admin.Auth) {
	t.Helper()

	modeSvc := &fakeMode{}
	auth := testAuth(t)

	router := NewRouter(Deps{
		Catalog: &fakeCatalog{products: map[string]catalog.Product{
			"cinematic-hoodie": testProduct(),
		}},
		Carts:      cart.NewManager(cart.NewMemoryStorage()),
		Mode:       modeSvc,
		Checkout:   &fakeCheckout{url: "https://noir.myshopify.com/checkout/c1"},
		Auth:       auth,
		CORSOrigin: "http://localhost:3000",
	})

	return router, modeSvc, auth
}

func adminToken(t *testing.T, auth *admin.Auth) string {
	t.Helper()
	token, err := auth.Login("hunter2")
	assert.NoError(t, err)
	return token
}
