package product

import "github.com/shopspring/decimal"

type Product struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  uint            `json:"category_id"`
	Stock       int             `json:"stock"`
	Available   bool            `json:"available"`
	ImageURL    *string         `json:"image_url,omitempty"`
}

type NewProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  uint
	Stock       int
	Available   bool
	ImageURL    *string
}

type ListOptions struct {
	CategorySlug  *string
	Search        *string
	OnlyAvailable bool
	Limit         *int32
	Page          *int32
}
