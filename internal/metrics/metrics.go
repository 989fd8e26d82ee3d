// Package metrics provides Prometheus metrics for the league analysis server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamRequests counts calls against the FPL API by endpoint and
	// outcome ("ok", "error", "cache").
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fpl_league",
		Subsystem: "fetch",
		Name:      "upstream_requests_total",
		Help:      "FPL API requests by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	// UpstreamDuration observes wall time of network fetches (cache hits
	// are not observed).
	UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fpl_league",
		Subsystem: "fetch",
		Name:      "upstream_request_seconds",
		Help:      "FPL API request duration in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})

	// ToolCalls counts MCP tool invocations by tool and outcome.
	ToolCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fpl_league",
		Subsystem: "mcp",
		Name:      "tool_calls_total",
		Help:      "MCP tool calls by tool name and outcome.",
	}, []string{"tool", "outcome"})
)
