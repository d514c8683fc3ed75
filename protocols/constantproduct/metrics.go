package constantproduct

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Neocryptoquant/solana-security-template/protocols/constantproduct/calculator"
)

// Metrics holds the instrumentation for the system layer. All collectors are
// registered on the registerer injected through SystemConfig.
type Metrics struct {
	swapDuration prometheus.Histogram
	swapsTotal   *prometheus.CounterVec
	poolsCreated prometheus.Counter
}

// NewMetrics creates and registers the system collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		swapDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "constantproduct",
			Name:      "swap_duration_seconds",
			Help:      "Time spent pricing and committing a swap.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 8),
		}),
		swapsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "constantproduct",
			Name:      "swaps_total",
			Help:      "Swap attempts by outcome.",
		}, []string{"outcome"}),
		poolsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "constantproduct",
			Name:      "pools_created_total",
			Help:      "Number of pools created.",
		}),
	}
	reg.MustRegister(m.swapDuration, m.swapsTotal, m.poolsCreated)
	return m
}

// outcomeLabel maps a swap error to its metric label. A nil error is a success.
func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrStalePool):
		return "stale_pool"
	case errors.Is(err, ErrPoolNotFound):
		return "pool_not_found"
	case errors.Is(err, ErrUnknownDirection):
		return "unknown_direction"
	case errors.Is(err, calculator.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, calculator.ErrInvalidFee):
		return "invalid_fee"
	case errors.Is(err, calculator.ErrMathOverflow):
		return "math_overflow"
	case errors.Is(err, calculator.ErrMathUnderflow):
		return "math_underflow"
	case errors.Is(err, calculator.ErrSlippageExceeded):
		return "slippage_exceeded"
	case errors.Is(err, calculator.ErrInsufficientReserves):
		return "insufficient_reserves"
	default:
		return "error"
	}
}
