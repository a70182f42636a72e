package signup

import "errors"

var (
	ErrInvalidEmail = errors.New("invalid email address")
)
