// Package metrics defines and registers all custom Prometheus metrics for the
// case-management API. It is the single source of truth for metric names,
// labels, and help strings. HTTP-level metrics (request counts, latencies)
// come from the echoprometheus middleware and are not declared here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lawconnect"

// EntitiesCreatedTotal counts successfully created records.
// Label:
//   - entity: "client", "case", "appointment", or "user"
var EntitiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_created_total",
		Help:      "Total number of records created, by entity type.",
	},
	[]string{"entity"},
)

// AuthLoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid", or "throttled"
var AuthLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// NotificationsProcessedTotal counts notifications that were persisted.
// Label:
//   - type: "appointment" or "case"
var NotificationsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_processed_total",
		Help:      "Total number of notification events successfully processed.",
	},
	[]string{"type"},
)

// NotificationsErrorsTotal counts notification events that failed processing.
var NotificationsErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_errors_total",
		Help:      "Total number of notification events that failed processing.",
	},
)

// NotificationQueueDepth tracks the events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
