package customer

import "customer-service/internal/pkg/apperrors"

var (
	ErrCustomerNotFound error = apperrors.NewNotFoundError("customer not found with id")

	ErrCustomerEmailNotFound error = apperrors.NewNotFoundError("customer not found with email")

	ErrEmailAlreadyExists error = apperrors.NewConflictError("customer with email already exists")
)
