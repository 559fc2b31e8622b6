package customer

import (
	"customer-service/internal/pkg/apperrors"
	"fmt"

	"github.com/google/uuid"
)

// ParseCustomerID converts the string form of an id into its UUID.
func ParseCustomerID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidArgument,
			&apperrors.ValidationError{Field: "customerId", Message: fmt.Sprintf("invalid customer id format: %q", id), Cause: err})
	}
	return parsed, nil
}

func ToModel(entity *CustomerEntity) *Customer {
	if entity == nil {
		return nil
	}
	return &Customer{
		CustomerID:   entity.CustomerID.String(),
		FirstName:    entity.FirstName,
		LastName:     entity.LastName,
		EmailAddress: entity.EmailAddress,
		PhoneNumber:  entity.PhoneNumber,
		Address:      entity.Address,
	}
}

// ToEntity maps a model onto an entity. An empty CustomerID maps to uuid.Nil.
func ToEntity(model *Customer) (*CustomerEntity, error) {
	if model == nil {
		return nil, nil
	}

	id := uuid.Nil
	if model.CustomerID != "" {
		parsed, err := ParseCustomerID(model.CustomerID)
		if err != nil {
			return nil, err
		}
		id = parsed
	}

	return &CustomerEntity{
		CustomerID:   id,
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		EmailAddress: model.EmailAddress,
		PhoneNumber:  model.PhoneNumber,
		Address:      model.Address,
	}, nil
}
