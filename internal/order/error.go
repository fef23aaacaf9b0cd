package order

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidAddress    = errors.New("invalid address id")
	ErrAddressNotFound   = errors.New("address not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrTransactionFailed = errors.New("order could not be processed")
)

// InsufficientStockError names the product that came up short and how
// many units are actually available, so the shopper can fix the cart.
type InsufficientStockError struct {
	ProductID uint
	Name      string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf(
		"insufficient stock for %q (product %d): %d available",
		e.Name, e.ProductID, e.Available,
	)
}
