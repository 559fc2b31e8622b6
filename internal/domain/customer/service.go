package customer

import (
	"context"
	"customer-service/internal/event"
	"customer-service/internal/infrastructure/monitoring"
	"customer-service/internal/pkg/apperrors"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

const (
	inputValidationPassed = "Input validation passed"
	customerNotFound      = "Customer not found by repository"
)

type CustomerService interface {
	GetAllCustomers(ctx context.Context) ([]*Customer, error)
	GetCustomer(ctx context.Context, customerID string) (*Customer, error)
	FindByEmailAddress(ctx context.Context, emailAddress string) (*Customer, error)
	AddCustomer(ctx context.Context, customer *Customer) (*Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) error
}

var _ CustomerService = (*customerService)(nil)

type customerService struct {
	repo   CustomerRepository
	pub    event.EventPublisher
	logger *slog.Logger
}

func NewCustomerService(repo CustomerRepository, eventPublisher event.EventPublisher, logger *slog.Logger) CustomerService {
	if repo == nil {
		panic("customer repository cannot be nil")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerService, using default stderr handler")
	}

	if eventPublisher == nil {
		eventPublisher = event.NoopPublisher{}
	}

	return &customerService{
		repo:   repo,
		pub:    eventPublisher,
		logger: logger.With(slog.String("component", "customerService")),
	}
}

func NewCustomerEventPayload(cust *Customer) event.CustomerEventPayload {
	if cust == nil {
		return event.CustomerEventPayload{}
	}
	return event.CustomerEventPayload{
		CustomerID:   cust.CustomerID,
		FirstName:    cust.FirstName,
		LastName:     cust.LastName,
		EmailAddress: cust.EmailAddress,
		PhoneNumber:  cust.PhoneNumber,
		Address:      cust.Address,
	}
}

func (s *customerService) GetAllCustomers(ctx context.Context) ([]*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to list all customers")

	s.logger.InfoContext(ctx, "Calling repository FindAll")
	entities, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing customers", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	customers := make([]*Customer, 0, len(entities))
	for _, entity := range entities {
		customers = append(customers, ToModel(entity))
	}

	s.logger.InfoContext(ctx, "Successfully retrieved customers", slog.Int("count", len(customers)))
	return customers, nil
}

func (s *customerService) GetCustomer(ctx context.Context, customerID string) (*Customer, error) {
	logger := s.logger.With(slog.String("customerID", customerID))
	logger.InfoContext(ctx, "Attempting to get customer by ID")

	id, err := ParseCustomerID(customerID)
	if err != nil {
		logger.WarnContext(ctx, "Validation failed: malformed customer ID", slog.Any("error", err))
		return nil, err
	}

	logger.InfoContext(ctx, "Calling repository FindByID")
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.WarnContext(ctx, customerNotFound)
			return nil, ErrCustomerNotFound
		}

		logger.ErrorContext(ctx, "Repository error finding customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get customer %s: %w", customerID, err)
	}
	if entity == nil {
		logger.WarnContext(ctx, customerNotFound)
		return nil, ErrCustomerNotFound
	}

	logger.InfoContext(ctx, "Successfully retrieved customer")
	return ToModel(entity), nil
}

func (s *customerService) FindByEmailAddress(ctx context.Context, emailAddress string) (*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to find customer by email address")

	emailAddress = strings.TrimSpace(emailAddress)
	if emailAddress == "" {
		s.logger.WarnContext(ctx, "Validation failed: email address is empty")
		return nil, apperrors.NewValidationError("emailAddress", "email address cannot be empty")
	}

	s.logger.InfoContext(ctx, "Calling repository FindByEmailAddress")
	entity, err := s.repo.FindByEmailAddress(ctx, emailAddress)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, "Customer not found by repository for this email address")
			return nil, ErrCustomerEmailNotFound
		}
		s.logger.ErrorContext(ctx, "Repository error finding customer by email address", slog.Any("error", err))
		return nil, fmt.Errorf("failed to find customer by email address: %w", err)
	}
	if entity == nil {
		s.logger.WarnContext(ctx, "Customer not found by repository for this email address")
		return nil, ErrCustomerEmailNotFound
	}

	s.logger.InfoContext(ctx, "Successfully found customer by email address", slog.String("found_customerID", entity.CustomerID.String()))
	return ToModel(entity), nil
}

func (s *customerService) AddCustomer(ctx context.Context, customer *Customer) (*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to create new customer")

	if customer == nil {
		s.logger.WarnContext(ctx, "Validation failed: customer is nil")
		return nil, apperrors.NewValidationError("", "customer cannot be nil")
	}

	firstName := strings.TrimSpace(customer.FirstName)
	lastName := strings.TrimSpace(customer.LastName)
	emailAddress := strings.TrimSpace(customer.EmailAddress)
	if firstName == "" {
		s.logger.WarnContext(ctx, "Validation failed: first name is empty")
		return nil, apperrors.NewValidationError("firstName", "first name cannot be empty")
	}
	if lastName == "" {
		s.logger.WarnContext(ctx, "Validation failed: last name is empty")
		return nil, apperrors.NewValidationError("lastName", "last name cannot be empty")
	}
	if emailAddress == "" {
		s.logger.WarnContext(ctx, "Validation failed: email address is empty")
		return nil, apperrors.NewValidationError("emailAddress", "email address cannot be empty")
	}

	logger := s.logger.With(slog.String("validated_email", emailAddress))
	logger.InfoContext(ctx, inputValidationPassed)

	logger.InfoContext(ctx, "Calling repository FindByEmailAddress to check uniqueness")
	existing, err := s.repo.FindByEmailAddress(ctx, emailAddress)
	switch {
	case err == nil && existing != nil:
		logger.WarnContext(ctx, "Business rule failed: email address already in use",
			slog.String("existing_customerID", existing.CustomerID.String()))
		monitoring.RecordCustomerConflict()
		return nil, ErrEmailAlreadyExists
	case err != nil && !errors.Is(err, apperrors.ErrNotFound):
		logger.ErrorContext(ctx, "Repository error checking email uniqueness", slog.Any("error", err))
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	entity := NewCustomerEntity(firstName, lastName, emailAddress,
		strings.TrimSpace(customer.PhoneNumber), strings.TrimSpace(customer.Address))
	logger = logger.With(slog.String("customerID", entity.CustomerID.String()))
	logger.InfoContext(ctx, "Customer entity created")

	logger.InfoContext(ctx, "Calling repository Save")
	saved, err := s.repo.Save(ctx, entity)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			logger.WarnContext(ctx, "Unique constraint violation on save, email address already in use")
			monitoring.RecordCustomerConflict()
			return nil, ErrEmailAlreadyExists
		}
		logger.ErrorContext(ctx, "Repository failed to save new customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save new customer: %w", err)
	}
	if saved == nil {
		saved = entity
	}

	created := ToModel(saved)
	monitoring.RecordCustomerCreated()

	logger.InfoContext(ctx, "Successfully saved new customer, publishing creation event")
	createdEvent := event.CustomerCreatedEvent{
		Timestamp: time.Now(),
		Payload:   NewCustomerEventPayload(created),
	}
	if pubErr := s.pub.PublishCustomerCreated(ctx, createdEvent); pubErr != nil {
		logger.ErrorContext(ctx, "Customer created, but FAILED to publish creation event", slog.Any("error", pubErr))
	} else {
		logger.InfoContext(ctx, "Successfully published customer creation event")
	}

	logger.InfoContext(ctx, "Successfully created new customer")
	return created, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) error {
	logger := s.logger.With(slog.String("customerID", customerID))
	logger.InfoContext(ctx, "Attempting to delete customer")

	id, err := ParseCustomerID(customerID)
	if err != nil {
		logger.WarnContext(ctx, "Validation failed: malformed customer ID", slog.Any("error", err))
		return err
	}

	logger.InfoContext(ctx, "Calling repository DeleteByID")
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.WarnContext(ctx, customerNotFound)
			return ErrCustomerNotFound
		}
		logger.ErrorContext(ctx, "Repository error deleting customer", slog.Any("error", err))
		return fmt.Errorf("failed to delete customer %s: %w", customerID, err)
	}
	monitoring.RecordCustomerDeleted()

	logger.InfoContext(ctx, "Successfully deleted customer, publishing deletion event")
	deletedEvent := event.CustomerDeletedEvent{
		Timestamp:  time.Now(),
		CustomerID: id.String(),
	}
	if pubErr := s.pub.PublishCustomerDeleted(ctx, deletedEvent); pubErr != nil {
		logger.ErrorContext(ctx, "Customer deleted, but FAILED to publish deletion event", slog.Any("error", pubErr))
	}

	logger.InfoContext(ctx, "Successfully deleted customer")
	return nil
}
