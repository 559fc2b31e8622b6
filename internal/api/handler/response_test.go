package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"customer-service/internal/api/handler/dto"
	"customer-service/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
		expectedField   string
	}{
		{
			name:            "Typed not found",
			err:             fmt.Errorf("lookup: %w", apperrors.NewNotFoundError("customer not found with id")),
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "customer not found with id",
		},
		{
			name:            "Bare not found",
			err:             apperrors.ErrNotFound,
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Resource not found.",
		},
		{
			name:            "Typed conflict",
			err:             apperrors.NewConflictError("customer with email already exists"),
			expectedStatus:  http.StatusConflict,
			expectedMessage: "customer with email already exists",
		},
		{
			name:            "Store level duplicate",
			err:             fmt.Errorf("%w: customers_email_address_key", apperrors.ErrAlreadyExists),
			expectedStatus:  http.StatusConflict,
			expectedMessage: "Resource already exists.",
		},
		{
			name:            "Validation error keeps field",
			err:             apperrors.NewValidationError("lastName", "last name cannot be empty"),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "last name cannot be empty",
			expectedField:   "lastName",
		},
		{
			name:            "Invalid argument",
			err:             fmt.Errorf("%w: bad body", apperrors.ErrInvalidArgument),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "invalid argument: bad body",
		},
		{
			name:            "Database error",
			err:             apperrors.WrapDatabaseError(errors.New("reset"), "failed to load customers"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "[DB_ERROR] failed to load customers",
		},
		{
			name:            "Unknown error",
			err:             errors.New("boom"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "An unexpected error occurred.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondError(rec, tt.err)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMessage, resp.Error.Message)
			assert.Equal(t, tt.expectedField, resp.Error.Field)
		})
	}
}
