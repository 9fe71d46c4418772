// Package metrics defines the custom Prometheus metrics for the studio
// portal API. It is the single source of truth for metric names, labels,
// and help strings; promauto registers everything with the default registry
// at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "studio"

// SubmissionsTotal counts accepted public form submissions.
// Label:
//   - form: "contact" or "request"
var SubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Total number of public form submissions stored.",
	},
	[]string{"form"},
)

// SubmissionsRejectedTotal counts rejected public form submissions.
// Labels:
//   - form: "contact" or "request"
//   - reason: short description of the rejection (e.g. "duplicate", "invalid")
var SubmissionsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_rejected_total",
		Help:      "Total number of public form submissions rejected before storage.",
	},
	[]string{"form", "reason"},
)

// SearchRequestsTotal counts global search invocations.
var SearchRequestsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_requests_total",
		Help:      "Total number of global search requests.",
	},
)

// TicketsOpenedTotal counts newly opened support tickets by priority.
var TicketsOpenedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tickets_opened_total",
		Help:      "Total number of support tickets opened, by priority.",
	},
	[]string{"priority"},
)

// LicensesIssuedTotal counts issued licenses.
var LicensesIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "licenses_issued_total",
		Help:      "Total number of licenses issued.",
	},
)
