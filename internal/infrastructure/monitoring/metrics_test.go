package monitoring

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBusinessCounters(t *testing.T) {
	created := testutil.ToFloat64(Business.CustomersCreatedTotal)
	deleted := testutil.ToFloat64(Business.CustomersDeletedTotal)
	conflicts := testutil.ToFloat64(Business.CustomerConflictsTotal)

	RecordCustomerCreated()
	RecordCustomerDeleted()
	RecordCustomerConflict()
	RecordCustomerConflict()

	assert.Equal(t, created+1, testutil.ToFloat64(Business.CustomersCreatedTotal))
	assert.Equal(t, deleted+1, testutil.ToFloat64(Business.CustomersDeletedTotal))
	assert.Equal(t, conflicts+2, testutil.ToFloat64(Business.CustomerConflictsTotal))
}

func TestObserveDBQuery(t *testing.T) {
	DB.QueryDuration.Reset()

	var okErr error
	ObserveDBQuery("find_all")(&okErr)

	failErr := errors.New("boom")
	ObserveDBQuery("find_all")(&failErr)
	ObserveDBQuery("find_all")(&failErr)

	assert.Equal(t, 2, testutil.CollectAndCount(DB.QueryDuration))
}
