package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"noir-be/internal/config"
	"noir-be/internal/logger"

	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

// Client issues queries against the Shopify Storefront GraphQL API.
// One request/response cycle per call; callers decide about retries.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// NewClient fails with ErrMissingCredentials when the store domain or
// access token is absent, before any network call is made.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.ShopifyDomain == "" || cfg.ShopifyToken == "" {
		return nil, ErrMissingCredentials
	}

	return &Client{
		endpoint: fmt.Sprintf("https://%s/api/%s/graphql.json", cfg.ShopifyDomain, cfg.ShopifyAPIVersion),
		token:    cfg.ShopifyToken,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}, nil
}

type graphQLError struct {
	Message string `json:"message"`
	Path    []any  `json:"path"`
}

type graphQLEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// fetch POSTs {query, variables} and decodes the data payload into out.
// A GraphQL-level error array surfaces its first entry as *QueryError.
func (c *Client) fetch(ctx context.Context, doc *ast.QueryDocument, query string, variables map[string]any, out any) error {
	op := operationName(doc)
	log := logger.FromCtx(ctx).With(zap.String("operation", op))

	body, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Storefront-Access-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("shopify request failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read shopify response", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	var envelope graphQLEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		log.Error("shopify returned non-JSON body",
			zap.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	if len(envelope.Errors) > 0 {
		first := envelope.Errors[0]
		log.Error("shopify query error",
			zap.String("message", first.Message),
			zap.Any("path", first.Path),
		)
		return &QueryError{Message: first.Message, Path: first.Path}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error("shopify returned non-success status",
			zap.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed decoding shopify data: %w", err)
	}

	log.Debug("shopify request succeeded")
	return nil
}

// ListProducts fetches the first n products for listing pages.
func (c *Client) ListProducts(ctx context.Context, first int) ([]ProductNode, error) {
	if first <= 0 {
		first = 20
	}

	var res productsResponse
	if err := c.fetch(ctx, productsDoc, productsQuery, map[string]any{"first": first}, &res); err != nil {
		return nil, err
	}

	products := make([]ProductNode, 0, len(res.Products.Edges))
	for _, edge := range res.Products.Edges {
		products = append(products, edge.Node)
	}
	return products, nil
}

// ProductByHandle fetches one product with its full option and variant
// lists. A missing product returns (nil, nil).
func (c *Client) ProductByHandle(ctx context.Context, handle string) (*ProductNode, error) {
	var res productByHandleResponse
	if err := c.fetch(ctx, productByHandleDoc, productByHandleQuery, map[string]any{"handle": handle}, &res); err != nil {
		return nil, err
	}
	return res.Product, nil
}

// CreateCart runs the cartCreate mutation and returns the external
// checkout URL. The application's only contract with checkout is
// redirecting the browser there.
func (c *Client) CreateCart(ctx context.Context, lines []CartLine) (string, error) {
	var res cartCreateResponse
	if err := c.fetch(ctx, cartCreateDoc, cartCreateMutation, map[string]any{"lines": lines}, &res); err != nil {
		return "", err
	}

	if len(res.CartCreate.UserErrors) > 0 {
		first := res.CartCreate.UserErrors[0]
		return "", &QueryError{Message: first.Message}
	}
	if res.CartCreate.Cart == nil {
		return "", &QueryError{Message: "cartCreate returned no cart"}
	}

	return res.CartCreate.Cart.CheckoutURL, nil
}
