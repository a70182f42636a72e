package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidQuantity = errors.New("invalid cart quantity")

	// -- Persistence --
	ErrPersistenceUnavailable = errors.New("cart persistence unavailable")
)
