package checkout

import (
	"context"
	"errors"
	"testing"

	"noir-be/internal/cart"
	"noir-be/internal/shopify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCommerce is a mock implementation of the Commerce interface.
type MockCommerce struct {
	mock.Mock
}

func (m *MockCommerce) CreateCart(ctx context.Context, lines []shopify.CartLine) (string, error) {
	args := m.Called(ctx, lines)
	return args.String(0), args.Error(1)
}

func TestService_CheckoutURL(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyCart", func(t *testing.T) {
		commerce := new(MockCommerce)
		svc := NewService(commerce)

		_, err := svc.CheckoutURL(ctx, nil)
		assert.ErrorIs(t, err, ErrEmptyCart)
		commerce.AssertNotCalled(t, "CreateCart")
	})

	t.Run("MapsLines", func(t *testing.T) {
		commerce := new(MockCommerce)
		commerce.On("CreateCart", mock.Anything, []shopify.CartLine{
			{MerchandiseID: "v1", Quantity: 2},
			{MerchandiseID: "v2", Quantity: 1},
		}).Return("https://noir.myshopify.com/checkout/c1", nil)

		svc := NewService(commerce)
		url, err := svc.CheckoutURL(ctx, []cart.Item{
			{VariantID: "v1", Quantity: 2, Price: 50},
			{VariantID: "v2", Quantity: 1, Price: 19.99},
		})
		assert.NoError(t, err)
		assert.Equal(t, "https://noir.myshopify.com/checkout/c1", url)
		commerce.AssertExpectations(t)
	})

	t.Run("UpstreamFailure", func(t *testing.T) {
		commerce := new(MockCommerce)
		commerce.On("CreateCart", mock.Anything, mock.Anything).
			Return("", errors.New("cart create failed"))

		svc := NewService(commerce)
		_, err := svc.CheckoutURL(ctx, []cart.Item{{VariantID: "v1", Quantity: 1}})
		assert.Error(t, err)
	})
}
