package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "basecalc_operations_total",
		Help: "Number of arithmetic operations computed, labeled by engine and operator.",
	}, []string{"engine", "operator"})

	operationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "basecalc_operation_errors_total",
		Help: "Number of operations that returned an error, labeled by engine.",
	}, []string{"engine"})

	truncationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "basecalc_truncations_total",
		Help: "Number of results truncated by a carry or borrow overflowing the destination buffer.",
	})
)

// RecordOperation counts one computed operation for the given engine and
// operator symbol.
func RecordOperation(engine string, operator byte) {
	operationsTotal.WithLabelValues(engine, string(operator)).Inc()
}

// RecordOperationError counts one failed operation for the given engine.
func RecordOperationError(engine string) {
	operationErrorsTotal.WithLabelValues(engine).Inc()
}

// RecordTruncation counts one carry/borrow truncation.
func RecordTruncation() {
	truncationsTotal.Inc()
}
