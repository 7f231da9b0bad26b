package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the ledger's Prometheus metrics.
type Metrics struct {
	// Ledger metrics
	TransactionsCreated prometheus.Counter
	TransactionsUpdated prometheus.Counter
	TransactionsDeleted prometheus.Counter
	TransactionErrors   *prometheus.CounterVec

	// Category metrics
	CategoriesCreated prometheus.Counter

	// Authentication metrics
	LoginAttempts *prometheus.CounterVec

	// Database metrics
	DBErrors *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		TransactionsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "catatan_transactions_created_total",
			Help: "Total number of transactions created",
		}),
		TransactionsUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "catatan_transactions_updated_total",
			Help: "Total number of transactions updated",
		}),
		TransactionsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "catatan_transactions_deleted_total",
			Help: "Total number of transactions deleted",
		}),
		TransactionErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catatan_transaction_errors_total",
				Help: "Total number of rejected transaction mutations by error kind",
			},
			[]string{"kind"},
		),
		CategoriesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "catatan_categories_created_total",
			Help: "Total number of categories created lazily by transaction writes",
		}),
		LoginAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catatan_login_attempts_total",
				Help: "Total login attempts by outcome",
			},
			[]string{"status"},
		),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catatan_db_errors_total",
				Help: "Total database errors by operation",
			},
			[]string{"operation"},
		),
	}
}
