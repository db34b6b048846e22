// Package metrics defines the custom Prometheus metrics for the jobs API.
// It is the single source of truth for metric names, labels, and help
// strings. Metrics register with the default registry at import time; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobly"

// TokensIssuedTotal counts credential tokens issued.
// Label:
//   - source: "register" or "login"
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of credential tokens issued, by source.",
	},
	[]string{"source"},
)

// AuthDeniedTotal counts requests rejected by an authorization gate.
// Label:
//   - gate: "authenticated", "admin", or "same_user"
var AuthDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denied_total",
		Help:      "Total number of requests rejected by an authorization gate.",
	},
	[]string{"gate"},
)
