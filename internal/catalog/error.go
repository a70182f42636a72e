package catalog

import "errors"

var (
	// ErrProductNotFound means the handle has no product upstream.
	ErrProductNotFound = errors.New("product not found")
)
