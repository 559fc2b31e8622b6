package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type DBMetrics struct {
	QueryDuration *prometheus.HistogramVec
}

type BusinessMetrics struct {
	CustomersCreatedTotal  prometheus.Counter
	CustomersDeletedTotal  prometheus.Counter
	CustomerConflictsTotal prometheus.Counter
}

var (
	DB = DBMetrics{
		QueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "customer_service_db_query_duration_seconds",
				Help:    "Histogram of database query latencies.",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"query_name", "status"},
		),
	}

	Business = BusinessMetrics{
		CustomersCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "customer_service_customers_created_total",
				Help: "Total number of customers successfully created.",
			},
		),
		CustomersDeletedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "customer_service_customers_deleted_total",
				Help: "Total number of customers successfully deleted.",
			},
		),
		CustomerConflictsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "customer_service_customer_conflicts_total",
				Help: "Total number of customer creations rejected for a duplicate email address.",
			},
		),
	}
)

func RecordDBQuery(queryName, status string, duration time.Duration) {
	DB.QueryDuration.WithLabelValues(queryName, status).Observe(duration.Seconds())
}

// ObserveDBQuery returns a func that records the query once its outcome is
// known. Typical use: defer done(&err).
func ObserveDBQuery(queryName string) func(errp *error) {
	start := time.Now()
	return func(errp *error) {
		status := "ok"
		if errp != nil && *errp != nil {
			status = "error"
		}
		RecordDBQuery(queryName, status, time.Since(start))
	}
}

func RecordCustomerCreated() {
	Business.CustomersCreatedTotal.Inc()
}

func RecordCustomerDeleted() {
	Business.CustomersDeletedTotal.Inc()
}

func RecordCustomerConflict() {
	Business.CustomerConflictsTotal.Inc()
}
