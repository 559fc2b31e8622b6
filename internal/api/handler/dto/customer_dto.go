package dto

import (
	"customer-service/internal/domain/customer"
	"customer-service/internal/pkg/apperrors"
	"strings"
)

type CreateCustomerRequest struct {
	FirstName    string `json:"firstName" example:"Cally"`
	LastName     string `json:"lastName" example:"Reynolds"`
	EmailAddress string `json:"emailAddress" example:"creynolds@example.com"`
	PhoneNumber  string `json:"phoneNumber,omitempty" example:"(234) 392-3248"`
	Address      string `json:"address,omitempty" example:"4 Westport Street"`
}

func (r *CreateCustomerRequest) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" {
		return apperrors.NewValidationError("firstName", "first name cannot be empty")
	}
	if strings.TrimSpace(r.LastName) == "" {
		return apperrors.NewValidationError("lastName", "last name cannot be empty")
	}
	if strings.TrimSpace(r.EmailAddress) == "" {
		return apperrors.NewValidationError("emailAddress", "email address cannot be empty")
	}
	if !strings.Contains(r.EmailAddress, "@") {
		return apperrors.NewValidationError("emailAddress", "email address must contain '@'")
	}
	return nil
}

func (r *CreateCustomerRequest) ToModel() *customer.Customer {
	return &customer.Customer{
		FirstName:    strings.TrimSpace(r.FirstName),
		LastName:     strings.TrimSpace(r.LastName),
		EmailAddress: strings.TrimSpace(r.EmailAddress),
		PhoneNumber:  strings.TrimSpace(r.PhoneNumber),
		Address:      strings.TrimSpace(r.Address),
	}
}

type CustomerResponse struct {
	CustomerID   string `json:"customerId" example:"054b145c-ddbc-4136-a2bd-7bf45ed1bef7"`
	FirstName    string `json:"firstName" example:"Cally"`
	LastName     string `json:"lastName" example:"Reynolds"`
	EmailAddress string `json:"emailAddress" example:"creynolds@example.com"`
	PhoneNumber  string `json:"phoneNumber" example:"(234) 392-3248"`
	Address      string `json:"address" example:"4 Westport Street"`
}

func NewCustomerResponse(cust *customer.Customer) CustomerResponse {
	if cust == nil {
		return CustomerResponse{}
	}

	return CustomerResponse{
		CustomerID:   cust.CustomerID,
		FirstName:    cust.FirstName,
		LastName:     cust.LastName,
		EmailAddress: cust.EmailAddress,
		PhoneNumber:  cust.PhoneNumber,
		Address:      cust.Address,
	}
}

func NewCustomerListResponse(customers []*customer.Customer) []CustomerResponse {
	resp := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		resp = append(resp, NewCustomerResponse(c))
	}
	return resp
}

type ErrorDetail struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
