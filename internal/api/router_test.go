package api

import (
	"context"
	"customer-service/internal/api/middleware"
	"customer-service/internal/config"
	"customer-service/internal/domain/customer"
	"customer-service/internal/pkg/apperrors"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepository is a map backed customer.CustomerRepository.
type memoryRepository struct {
	byID map[uuid.UUID]*customer.CustomerEntity
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{byID: make(map[uuid.UUID]*customer.CustomerEntity)}
}

func (m *memoryRepository) FindAll(ctx context.Context) ([]*customer.CustomerEntity, error) {
	all := make([]*customer.CustomerEntity, 0, len(m.byID))
	for _, e := range m.byID {
		all = append(all, e)
	}
	return all, nil
}

func (m *memoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.CustomerEntity, error) {
	if e, ok := m.byID[id]; ok {
		return e, nil
	}
	return nil, apperrors.ErrNotFound
}

func (m *memoryRepository) FindByEmailAddress(ctx context.Context, email string) (*customer.CustomerEntity, error) {
	for _, e := range m.byID {
		if e.EmailAddress == email {
			return e, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memoryRepository) Save(ctx context.Context, e *customer.CustomerEntity) (*customer.CustomerEntity, error) {
	stored := *e
	m.byID[e.CustomerID] = &stored
	return &stored, nil
}

func (m *memoryRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.byID[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func newTestRouter(t *testing.T, rlCfg config.RateLimitConfig) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Metrics: config.MetricsConfig{Path: "/metrics"}}

	rl := middleware.NewRateLimiterMiddleware(rlCfg, logger)
	t.Cleanup(rl.Close)

	svc := customer.NewCustomerService(newMemoryRepository(), nil, logger)
	return SetupRouter(svc, rl, cfg, logger)
}

func doRequest(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = "192.0.2.1:5555"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, config.RateLimitConfig{})

	rec := doRequest(router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t, config.RateLimitConfig{})

	doRequest(router, http.MethodGet, "/health", "")
	rec := doRequest(router, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "customer_service_http_requests_total")
}

func TestSwaggerRedirect(t *testing.T) {
	router := newTestRouter(t, config.RateLimitConfig{})

	rec := doRequest(router, http.MethodGet, "/swagger", "")

	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/swagger/index.html", rec.Header().Get("Location"))
}

func TestCustomerLifecycle(t *testing.T) {
	router := newTestRouter(t, config.RateLimitConfig{})

	rec := doRequest(router, http.MethodPost, "/customers",
		`{"firstName":"Cally","lastName":"Reynolds","emailAddress":"creynolds@example.com","address":"4 Westport Street"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id := created["customerId"]
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	rec = doRequest(router, http.MethodGet, "/customers/"+id, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"firstName":"Cally"`)

	rec = doRequest(router, http.MethodGet, "/customers?email=creynolds@example.com", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), id)

	rec = doRequest(router, http.MethodPost, "/customers",
		`{"firstName":"Other","lastName":"Person","emailAddress":"creynolds@example.com"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "customer with email already exists")

	rec = doRequest(router, http.MethodGet, "/customers", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rec = doRequest(router, http.MethodDelete, "/customers/"+id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(router, http.MethodGet, "/customers/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "customer not found with id")

	rec = doRequest(router, http.MethodDelete, "/customers/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMalformedCustomerID(t *testing.T) {
	router := newTestRouter(t, config.RateLimitConfig{})

	rec := doRequest(router, http.MethodGet, "/customers/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp map[string]map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "customerId", resp["error"]["field"])
}

func TestRateLimitApplied(t *testing.T) {
	router := newTestRouter(t, config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 1})

	first := doRequest(router, http.MethodGet, "/health", "")
	second := doRequest(router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
