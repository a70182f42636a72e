package checkout

import (
	"context"
	"errors"
	"time"

	"noir-be/internal/cart"
	"noir-be/internal/logger"
	"noir-be/internal/shopify"

	"go.uber.org/zap"
)

var ErrEmptyCart = errors.New("cart is empty")

// Commerce is the slice of the shopify client checkout needs.
type Commerce interface {
	CreateCart(ctx context.Context, lines []shopify.CartLine) (string, error)
}

// Service turns the session cart into an external checkout URL. Payment
// happens entirely on the other side of that redirect.
type Service interface {
	CheckoutURL(ctx context.Context, items []cart.Item) (string, error)
}

type service struct {
	commerce Commerce
}

func NewService(commerce Commerce) Service {
	return &service{commerce: commerce}
}

func (s *service) CheckoutURL(ctx context.Context, items []cart.Item) (string, error) {
	if len(items) == 0 {
		return "", ErrEmptyCart
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CheckoutURL"),
		zap.Int("lines", len(items)),
	)

	start := time.Now()

	lines := make([]shopify.CartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, shopify.CartLine{
			MerchandiseID: item.VariantID,
			Quantity:      item.Quantity,
		})
	}

	url, err := s.commerce.CreateCart(ctx, lines)
	if err != nil {
		log.Error("checkout creation failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return "", err
	}

	log.Info("checkout created", zap.Duration("duration", time.Since(start)))
	return url, nil
}
