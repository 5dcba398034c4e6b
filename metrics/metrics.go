// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AskRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "askpdf",
		Name:      "ask_requests_total",
		Help:      "Question relay requests by HTTP status.",
	}, []string{"status"})

	UpstreamCalls = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "askpdf",
		Name:      "upstream_calls_total",
		Help:      "Outbound chat-completion calls.",
	})

	UpstreamLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "askpdf",
		Name:      "upstream_duration_seconds",
		Help:      "Latency of outbound chat-completion calls.",
		Buckets:   prometheus.DefBuckets,
	})

	DocumentsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "askpdf",
		Name:      "documents_generated_total",
		Help:      "PDF documents produced, by variant and result.",
	}, []string{"variant", "result"})
)
