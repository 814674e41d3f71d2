package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProviderCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aeris_provider_calls_total",
			Help: "Total forecast provider calls by outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	ProviderLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aeris_provider_latency_seconds",
			Help:    "Forecast provider call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	ForecastCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aeris_forecast_cache_lookups_total",
			Help: "Forecast cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)

	GeolocationLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aeris_geolocation_lookups_total",
			Help: "Geolocation lookups by outcome",
		},
		[]string{"outcome"},
	)
)
