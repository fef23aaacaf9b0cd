package address

import (
	"github.com/google/uuid"
)

type Address struct {
	ID     uuid.UUID
	UserID uint

	Street       string
	Number       string
	Complement   *string
	Neighborhood string
	City         string
	State        string
	PostalCode   string

	IsDefault bool
}

type CreateAddressInput struct {
	Street       string
	Number       string
	Complement   *string
	Neighborhood string
	City         string
	State        string
	PostalCode   string
	SetAsDefault bool
}

type UpdateAddressInput struct {
	AddressID    string
	Street       string
	Number       string
	Complement   *string
	Neighborhood string
	City         string
	State        string
	PostalCode   string
	SetAsDefault bool
}
