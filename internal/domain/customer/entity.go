package customer

import "github.com/google/uuid"

// CustomerEntity is the persisted form of a customer.
type CustomerEntity struct {
	CustomerID   uuid.UUID
	FirstName    string
	LastName     string
	EmailAddress string
	PhoneNumber  string
	Address      string
}

// NewCustomerEntity returns an entity with a freshly generated identity.
func NewCustomerEntity(firstName, lastName, emailAddress, phoneNumber, address string) *CustomerEntity {
	return &CustomerEntity{
		CustomerID:   uuid.New(),
		FirstName:    firstName,
		LastName:     lastName,
		EmailAddress: emailAddress,
		PhoneNumber:  phoneNumber,
		Address:      address,
	}
}
