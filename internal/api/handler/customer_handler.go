package handler

import (
	"customer-service/internal/api/handler/dto"
	"customer-service/internal/domain/customer"
	"customer-service/internal/pkg/apperrors"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type CustomerHandler struct {
	service customer.CustomerService
	logger  *slog.Logger
}

func NewCustomerHandler(s customer.CustomerService, l *slog.Logger) *CustomerHandler {
	if s == nil {
		panic("customer service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CustomerHandler{
		service: s,
		logger:  l.With("component", "CustomerHandler"),
	}
}

func getCustomerIDFromURL(r *http.Request) (string, error) {
	id := chi.URLParam(r, "customerID")
	if id == "" {
		return "", fmt.Errorf("%w: customerID not found in URL path", apperrors.ErrInvalidArgument)
	}
	return id, nil
}

// serviceErrorLevel keeps expected client-side failures out of the error log.
func serviceErrorLevel(err error) slog.Level {
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrConflict) ||
		errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrInvalidArgument) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// CreateCustomer handles POST /customers
// @Summary Create a new customer
// @Description Creates a new customer. The email address must not belong to another customer.
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body dto.CreateCustomerRequest true "Customer creation request"
// @Success 201 {object} dto.CustomerResponse "Customer successfully created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload"
// @Failure 409 {object} dto.ErrorResponse "Email address already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error during creation"
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received create customer request")

	var req dto.CreateCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Request validation failed", slog.Any("error", err))
		respondError(w, err)
		return
	}
	h.logger.DebugContext(r.Context(), "Request validation passed")

	h.logger.DebugContext(r.Context(), "Calling customer service AddCustomer")
	created, err := h.service.AddCustomer(r.Context(), req.ToModel())
	if err != nil {
		h.logger.Log(r.Context(), serviceErrorLevel(err), "Service failed to create customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.NewCustomerResponse(created)
	h.logger.InfoContext(r.Context(), "Customer created successfully", slog.String("customerID", resp.CustomerID))
	respondJSON(w, http.StatusCreated, resp)
}

// GetCustomer handles GET /customers/{customerID}
// @Summary Retrieve customer details
// @Description Retrieves a customer by their UUID.
// @Tags Customers
// @Produce json
// @Param customerID path string true "Customer ID" Format(uuid)
// @Success 200 {object} dto.CustomerResponse "Customer details retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid customer ID format"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/{customerID} [get]
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	logger := h.logger.With(slog.String("customerID", customerID))
	logger.DebugContext(r.Context(), "Calling customer service GetCustomer")
	found, err := h.service.GetCustomer(r.Context(), customerID)
	if err != nil {
		logger.Log(r.Context(), serviceErrorLevel(err), "Service failed to get customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	logger.InfoContext(r.Context(), "Customer retrieved successfully")
	respondJSON(w, http.StatusOK, dto.NewCustomerResponse(found))
}

// ListCustomers handles GET /customers
// @Summary List customers
// @Description Lists every customer. With the email query parameter, returns the single customer holding that address.
// @Tags Customers
// @Produce json
// @Param email query string false "Email address to look up" Example(creynolds@example.com)
// @Success 200 {array} dto.CustomerResponse "List of customers"
// @Failure 400 {object} dto.ErrorResponse "Blank email address"
// @Failure 404 {object} dto.ErrorResponse "No customer with that email address"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("email") {
		h.FindCustomerByEmail(w, r)
		return
	}

	h.logger.DebugContext(r.Context(), "Calling customer service GetAllCustomers")
	customers, err := h.service.GetAllCustomers(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list customers", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customers listed successfully", slog.Int("count", len(customers)))
	respondJSON(w, http.StatusOK, dto.NewCustomerListResponse(customers))
}

// FindCustomerByEmail serves GET /customers?email=...
func (h *CustomerHandler) FindCustomerByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	h.logger.DebugContext(r.Context(), "Calling customer service FindByEmailAddress")
	found, err := h.service.FindByEmailAddress(r.Context(), email)
	if err != nil {
		h.logger.Log(r.Context(), serviceErrorLevel(err), "Service failed to find customer by email address", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer found by email address", slog.String("customerID", found.CustomerID))
	respondJSON(w, http.StatusOK, dto.NewCustomerResponse(found))
}

// DeleteCustomer handles DELETE /customers/{customerID}
// @Summary Delete a customer
// @Description Removes a customer by their UUID.
// @Tags Customers
// @Param customerID path string true "Customer ID" Format(uuid)
// @Success 204 "Customer deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid customer ID format"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/{customerID} [delete]
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	logger := h.logger.With(slog.String("customerID", customerID))
	logger.DebugContext(r.Context(), "Calling customer service DeleteCustomer")
	if err := h.service.DeleteCustomer(r.Context(), customerID); err != nil {
		logger.Log(r.Context(), serviceErrorLevel(err), "Service failed to delete customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	logger.InfoContext(r.Context(), "Customer deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}
