package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendationsServedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Count of recommendations served, by media type.",
		},
		[]string{"media_type"},
	)

	RecommendationsExhaustedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_exhausted_total",
			Help: "Count of requests that ended in the no-candidates outcome, by media type.",
		},
		[]string{"media_type"},
	)

	CatalogDegradedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_queries_degraded_total",
			Help: "Count of catalog queries that failed and degraded to zero candidates, by media type.",
		},
		[]string{"media_type"},
	)
)

func init() {
	prometheus.MustRegister(
		RecommendationsServedTotal,
		RecommendationsExhaustedTotal,
		CatalogDegradedTotal,
	)
}
