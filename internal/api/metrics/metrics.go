// Package metrics defines and registers all custom Prometheus metrics for the
// sweet shop inventory API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sweetshop"

// ── Inventory metrics ─────────────────────────────────────────────────────────

// PurchasesTotal counts successful single-unit purchases.
// Label:
//   - category: the purchased sweet's category
var PurchasesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_total",
		Help:      "Total number of successful purchases, by sweet category.",
	},
	[]string{"category"},
)

// OutOfStockTotal counts purchase attempts rejected for exhausted stock.
var OutOfStockTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "out_of_stock_total",
		Help:      "Total number of purchase attempts rejected because the sweet was out of stock.",
	},
)

// RestocksTotal counts successful restock operations.
// Label:
//   - category: the restocked sweet's category
var RestocksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "restocks_total",
		Help:      "Total number of restock operations, by sweet category.",
	},
	[]string{"category"},
)

// SweetsCreatedTotal counts catalog records created.
var SweetsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sweets_created_total",
		Help:      "Total number of sweets added to the catalog.",
	},
)

// ── Audit trail metrics ───────────────────────────────────────────────────────

// MovementQueueDepth tracks the number of stock movements waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var MovementQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "movement_queue_depth",
		Help:      "Current number of stock movements pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// MovementsDroppedTotal counts audit records dropped because a worker channel
// was full.
var MovementsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "movements_dropped_total",
		Help:      "Total number of stock movement audit records dropped under backpressure.",
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginFailuresTotal counts rejected login attempts. The counter carries no
// reason label; which check failed is not exposed.
var LoginFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_failures_total",
		Help:      "Total number of rejected login attempts.",
	},
)
