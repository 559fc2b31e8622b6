package customer

import (
	"context"

	"github.com/google/uuid"
)

// CustomerRepository persists customer entities. Lookups that match nothing
// return apperrors.ErrNotFound.
type CustomerRepository interface {
	FindAll(ctx context.Context) ([]*CustomerEntity, error)

	FindByID(ctx context.Context, customerID uuid.UUID) (*CustomerEntity, error)

	FindByEmailAddress(ctx context.Context, emailAddress string) (*CustomerEntity, error)

	Save(ctx context.Context, entity *CustomerEntity) (*CustomerEntity, error)

	DeleteByID(ctx context.Context, customerID uuid.UUID) error
}
