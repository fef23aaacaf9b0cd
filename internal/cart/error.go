package cart

import "errors"

var (
	ErrProductUnavailable = errors.New("product is not available for sale")
	ErrInvalidQuantity    = errors.New("quantity must be at least one")
)
