package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	analyzeTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "soundings_analyze_requests_total",
		Help: "Total analyze requests handled.",
	})
	inferTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "soundings_infer_requests_total",
		Help: "Total infer requests handled.",
	})
	extractDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "soundings_extract_duration_seconds",
		Help:    "Latency of feature extraction per request.",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	})
	stateUpserts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "soundings_state_upserts_total",
		Help: "State upserts by source.",
	}, []string{"source"})
)
