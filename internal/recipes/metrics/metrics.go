// Package metrics defines and registers the Prometheus metrics exposed on
// /metrics. It is the single source of truth for metric names, labels, and
// help strings; promauto registers everything with the default registry at
// package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "potluck"

// SignupsTotal counts signup attempts.
// Label:
//   - result: "created", "rejected" (validation or duplicate username)
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (one bucket for unknown user and wrong
//     password, mirroring the uniform API error)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RecipesCreatedTotal counts successfully created recipes.
var RecipesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recipes_created_total",
		Help:      "Total number of recipes created.",
	},
)

// RecipesRejectedTotal counts recipe submissions rejected by validation.
var RecipesRejectedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recipes_rejected_total",
		Help:      "Total number of recipe submissions rejected by validation.",
	},
)
