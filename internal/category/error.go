package category

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrNameTaken        = errors.New("category name already exists")
	ErrEmptyName        = errors.New("category name cannot be empty")
)

// Postgres error codes we branch on.
const PgUniqueViolation = "23505"
