package address

import "errors"

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrAddressNotFound = errors.New("address not found")
	ErrInvalidID       = errors.New("invalid address id")
	ErrInvalidState    = errors.New("state must be a 2-letter code")
	ErrInvalidPostal   = errors.New("postal code must look like 00000-000")
)
