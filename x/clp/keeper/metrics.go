package keeper

import (
	"math/big"
	"sync"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Swap direction labels.
const (
	directionNearToToken  = "near_to_token"
	directionTokenToNear  = "token_to_near"
	directionTokenToToken = "token_to_token"
)

// Metrics holds the Prometheus collectors of the clp module. A single
// instance is registered on the default registry regardless of how many
// keepers exist in the process.
type Metrics struct {
	SwapsTotal        *prometheus.CounterVec
	SwapVolume        *prometheus.CounterVec
	LiquidityAdded    prometheus.Counter
	LiquidityRemoved  prometheus.Counter
	PoolsTotal        prometheus.Gauge
	TransferRollbacks prometheus.Counter
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// NewMetrics returns the process-wide metrics singleton.
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			SwapsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "nearswap",
				Subsystem: "clp",
				Name:      "swaps_total",
				Help:      "Number of committed swaps by direction.",
			}, []string{"direction"}),
			SwapVolume: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "nearswap",
				Subsystem: "clp",
				Name:      "swap_volume",
				Help:      "Committed swap input volume by direction.",
			}, []string{"direction"}),
			LiquidityAdded: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "nearswap",
				Subsystem: "clp",
				Name:      "liquidity_added_total",
				Help:      "Number of committed liquidity deposits.",
			}),
			LiquidityRemoved: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "nearswap",
				Subsystem: "clp",
				Name:      "liquidity_removed_total",
				Help:      "Number of liquidity withdrawals.",
			}),
			PoolsTotal: promauto.NewGauge(prometheus.GaugeOpts{
				Namespace: "nearswap",
				Subsystem: "clp",
				Name:      "pools_total",
				Help:      "Number of registered pools.",
			}),
			TransferRollbacks: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "nearswap",
				Subsystem: "clp",
				Name:      "transfer_rollbacks_total",
				Help:      "Number of failed transfers that triggered a state rollback.",
			}),
		}
	})
	return metrics
}

// amountFloat converts a balance to a float64 sample. Balances exceed
// int64, so the conversion goes through big.Float.
func amountFloat(v math.Int) float64 {
	f, _ := new(big.Float).SetInt(v.BigInt()).Float64()
	return f
}
