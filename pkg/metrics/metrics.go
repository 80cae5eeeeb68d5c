// Package metrics provides Prometheus instruments for the control tower
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Dataset load metrics
	RowsLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "controltower_rows_loaded_total",
			Help: "Total number of rows loaded per source table",
		},
		[]string{"table"},
	)

	WarehouseBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "controltower_warehouse_build_duration_seconds",
			Help:    "Time taken to assemble the warehouse table from the source CSVs",
			Buckets: prometheus.DefBuckets,
		},
	)

	DatasetWarnings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "controltower_dataset_warnings_total",
			Help: "Consistency warnings found while loading the dataset",
		},
	)

	// Analysis metrics
	AnalysesServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "controltower_analyses_served_total",
			Help: "Total number of analyses computed, by analysis tab",
		},
		[]string{"analysis"},
	)

	// HTTP metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "controltower_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status code",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "status"},
	)
)
