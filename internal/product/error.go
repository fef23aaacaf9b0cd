package product

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductReferenced = errors.New("product is referenced by order items")
	ErrSlugTaken         = errors.New("product slug already exists")
	ErrInvalidPrice      = errors.New("price must be greater than zero")
)

const (
	PgUniqueViolation     = "23505"
	PgForeignKeyViolation = "23503"
)
