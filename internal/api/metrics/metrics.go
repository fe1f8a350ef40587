// Package metrics defines and registers all custom Prometheus metrics for
// the to-do list API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "todo"

// RegistrationsTotal counts successfully registered accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user accounts successfully registered.",
	},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure". Failure reasons are intentionally not
//     broken out further to mirror the API's anti-enumeration stance.
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer token verifications performed by the
// request authenticator.
// Label:
//   - result: "valid", "invalid", or "missing"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, labelled by result.",
	},
	[]string{"result"},
)

// TasksCreatedTotal counts created tasks.
// Label:
//   - status: initial task status ("pending", "in progress", "completed")
var TasksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created, by initial status.",
	},
	[]string{"status"},
)
