package order

import (
	"time"

	"loja-be/internal/address"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

type Order struct {
	ID        uint            `json:"id"`
	UserID    uint            `json:"user_id"`
	AddressID *uuid.UUID      `json:"address_id,omitempty"`
	Total     decimal.Decimal `json:"total"`
	Status    Status          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`

	Items   []Item           `json:"items,omitempty"`
	Address *address.Address `json:"address,omitempty"`
}

// Item is one line of a placed order. Price is the cart snapshot, not
// the catalog price at placement time. Immutable once written.
type Item struct {
	ID        uint            `json:"id"`
	OrderID   uint            `json:"order_id"`
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// StockLevel is a live stock reading used by the verification pass.
type StockLevel struct {
	Name  string
	Stock int
}
