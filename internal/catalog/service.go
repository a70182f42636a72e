package catalog

import (
	"context"
	"time"

	"noir-be/internal/logger"
	"noir-be/internal/shopify"

	"go.uber.org/zap"
)

// Commerce is the slice of the shopify client the catalog needs.
type Commerce interface {
	ListProducts(ctx context.Context, first int) ([]shopify.ProductNode, error)
	ProductByHandle(ctx context.Context, handle string) (*shopify.ProductNode, error)
}

// Service exposes typed catalog reads over the commerce API.
type Service interface {
	GetList(ctx context.Context, first int) ([]Product, error)
	GetByHandle(ctx context.Context, handle string) (*Product, error)
}

type service struct {
	commerce Commerce
}

func NewService(commerce Commerce) Service {
	return &service{commerce: commerce}
}

func (s *service) GetList(ctx context.Context, first int) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetProductList"),
	)

	start := time.Now()

	if first <= 0 {
		first = 20
	} else if first > 100 {
		first = 100
	}

	nodes, err := s.commerce.ListProducts(ctx, first)
	if err != nil {
		log.Error("failed to fetch product list",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	products := make([]Product, 0, len(nodes))
	for i := range nodes {
		products = append(products, FromShopifyProduct(&nodes[i]))
	}

	log.Info("get product list success",
		zap.Int("count", len(products)),
		zap.Duration("duration", time.Since(start)),
	)

	return products, nil
}

func (s *service) GetByHandle(ctx context.Context, handle string) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetProductByHandle"),
		zap.String("handle", handle),
	)

	node, err := s.commerce.ProductByHandle(ctx, handle)
	if err != nil {
		log.Error("failed to fetch product", zap.Error(err))
		return nil, err
	}
	if node == nil {
		log.Warn("product not found upstream")
		return nil, ErrProductNotFound
	}

	product := FromShopifyProduct(node)
	return &product, nil
}
