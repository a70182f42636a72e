package shopify

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredentials means the store domain or storefront access
	// token is absent from configuration. Raised before any network call.
	ErrMissingCredentials = errors.New("missing shopify credentials")

	// ErrUpstreamUnavailable covers transport failures and non-2xx
	// responses without a usable GraphQL body.
	ErrUpstreamUnavailable = errors.New("shopify unavailable")
)

// QueryError is a GraphQL-level error returned inside a 200 response.
type QueryError struct {
	Message string
	Path    []any
}

func (e *QueryError) Error() string {
	if len(e.Path) > 0 {
		return fmt.Sprintf("shopify query error at %v: %s", e.Path, e.Message)
	}
	return "shopify query error: " + e.Message
}
