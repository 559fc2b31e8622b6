package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"customer-service/internal/domain/customer"
	"customer-service/internal/infrastructure/monitoring"
	"customer-service/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	findAllCustomersQuery = `
        SELECT id, first_name, last_name, email_address, phone_number, address
        FROM customers
        ORDER BY created_at ASC, id ASC`

	findCustomerByIDQuery = `
        SELECT id, first_name, last_name, email_address, phone_number, address
        FROM customers
        WHERE id = $1`

	findCustomerByEmailQuery = `
        SELECT id, first_name, last_name, email_address, phone_number, address
        FROM customers
        WHERE email_address = $1`

	upsertCustomerQuery = `
        INSERT INTO customers (id, first_name, last_name, email_address, phone_number, address, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
        ON CONFLICT (id) DO UPDATE
        SET first_name = EXCLUDED.first_name,
            last_name = EXCLUDED.last_name,
            email_address = EXCLUDED.email_address,
            phone_number = EXCLUDED.phone_number,
            address = EXCLUDED.address,
            updated_at = NOW()
        RETURNING id, first_name, last_name, email_address, phone_number, address`

	deleteCustomerQuery = `DELETE FROM customers WHERE id = $1`
)

type CustomerRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ customer.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db DBPool, logger *slog.Logger) *CustomerRepository {
	if db == nil {
		panic("DBPool cannot be nil for CustomerRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerRepository, using default stderr handler")
	}
	return &CustomerRepository{
		db:     db,
		logger: logger.With("component", "CustomerRepository"),
	}
}

func (r *CustomerRepository) FindAll(ctx context.Context) (customers []*customer.CustomerEntity, err error) {
	defer monitoring.ObserveDBQuery("find_all_customers")(&err)

	r.logger.InfoContext(ctx, "Attempting to find all customers")

	rows, err := r.db.Query(ctx, findAllCustomersQuery)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query customers", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query customers: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	customers = make([]*customer.CustomerEntity, 0)
	for rows.Next() {
		entity, scanErr := scanCustomer(rows)
		if scanErr != nil {
			r.logger.ErrorContext(ctx, "Failed to scan customer row", slog.Any("error", scanErr))
			return nil, fmt.Errorf("%w: failed to scan customer row: %w", apperrors.ErrDatabase, scanErr)
		}
		customers = append(customers, entity)
	}

	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating customer rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating customer rows: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Finished finding customers", slog.Int("count", len(customers)))
	return customers, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, customerID uuid.UUID) (entity *customer.CustomerEntity, err error) {
	defer monitoring.ObserveDBQuery("find_customer_by_id")(&err)

	logger := r.logger.With(slog.String("customerID", customerID.String()))
	logger.InfoContext(ctx, "Attempting to find customer by ID")

	entity, err = scanCustomer(r.db.QueryRow(ctx, findCustomerByIDQuery, customerID.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.WarnContext(ctx, "Customer not found")
			return nil, apperrors.ErrNotFound
		}
		logger.ErrorContext(ctx, "Failed to query/scan customer by ID", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get customer by ID: %w", apperrors.ErrDatabase, err)
	}

	logger.InfoContext(ctx, "Customer found successfully")
	return entity, nil
}

func (r *CustomerRepository) FindByEmailAddress(ctx context.Context, emailAddress string) (entity *customer.CustomerEntity, err error) {
	defer monitoring.ObserveDBQuery("find_customer_by_email")(&err)

	r.logger.InfoContext(ctx, "Attempting to find customer by email address")

	entity, err = scanCustomer(r.db.QueryRow(ctx, findCustomerByEmailQuery, emailAddress))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Customer not found for the given email address")
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan customer by email address", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get customer by email address: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Customer found successfully by email address", slog.String("customerID", entity.CustomerID.String()))
	return entity, nil
}

// Save inserts the entity, or updates the row that already holds its id.
// An entity without an id is given a new one.
func (r *CustomerRepository) Save(ctx context.Context, entity *customer.CustomerEntity) (saved *customer.CustomerEntity, err error) {
	if entity == nil {
		return nil, fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}
	defer monitoring.ObserveDBQuery("save_customer")(&err)

	if entity.CustomerID == uuid.Nil {
		entity.CustomerID = uuid.New()
	}

	logger := r.logger.With(slog.String("customerID", entity.CustomerID.String()))
	logger.InfoContext(ctx, "Attempting to save customer")

	saved, err = scanCustomer(r.db.QueryRow(ctx, upsertCustomerQuery,
		entity.CustomerID.String(),
		entity.FirstName,
		entity.LastName,
		entity.EmailAddress,
		entity.PhoneNumber,
		entity.Address,
	))
	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) {
			logger.WarnContext(ctx, "Failed to save customer due to unique constraint violation", slog.Any("error", err))
			return nil, translatedErr
		}
		logger.ErrorContext(ctx, "Failed to save customer", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to save customer: %w", apperrors.ErrDatabase, err)
	}

	logger.InfoContext(ctx, "Customer saved successfully")
	return saved, nil
}

func (r *CustomerRepository) DeleteByID(ctx context.Context, customerID uuid.UUID) (err error) {
	defer monitoring.ObserveDBQuery("delete_customer")(&err)

	logger := r.logger.With(slog.String("customerID", customerID.String()))
	logger.InfoContext(ctx, "Attempting to delete customer")

	cmdTag, err := r.db.Exec(ctx, deleteCustomerQuery, customerID.String())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to execute delete customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to delete customer: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		logger.WarnContext(ctx, "Delete affected zero rows, customer likely not found")
		return apperrors.ErrNotFound
	}

	logger.InfoContext(ctx, "Customer deleted successfully")
	return nil
}

func scanCustomer(row pgx.Row) (*customer.CustomerEntity, error) {
	var (
		id     string
		entity customer.CustomerEntity
	)
	err := row.Scan(
		&id,
		&entity.FirstName,
		&entity.LastName,
		&entity.EmailAddress,
		&entity.PhoneNumber,
		&entity.Address,
	)
	if err != nil {
		return nil, err
	}

	entity.CustomerID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid customer id %q in row: %w", id, err)
	}
	return &entity, nil
}
