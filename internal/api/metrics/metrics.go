// Package metrics defines the portal's custom Prometheus metrics. It is the
// single source of truth for metric names, labels, and help strings; the
// default registry picks everything up via promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "agriportal"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (all failure causes collapse together,
//     mirroring the single boolean the API reports)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SignupsTotal counts signup attempts.
// Label:
//   - result: "success" or "failure"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// LogoutsTotal counts logout calls. Logout cannot fail, so there is no label.
var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of logout calls.",
	},
)

// GateDecisionsTotal counts access-gate outcomes on role-scoped routes.
// Label:
//   - outcome: "allow", "redirect_landing" or "redirect_home"
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of access gate decisions, by outcome.",
	},
	[]string{"outcome"},
)

// AuthDuration measures the wall time of login/signup including the
// simulated identity-provider round trip.
// Label:
//   - operation: "login" or "signup"
var AuthDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "auth_duration_seconds",
		Help:      "Duration of authentication operations end-to-end.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)
