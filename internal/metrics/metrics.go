package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Generation Metrics
var (
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGenerationsTotal,
			Help: HelpTextGenerationsTotal,
		},
		[]string{LabelClass, LabelOutcome},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameGenerationDuration,
			Help:    HelpTextGenerationDuration,
			Buckets: GenerationLatencyBuckets,
		},
		[]string{LabelClass},
	)

	CombinationsChecked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCombinationsChecked,
			Help: HelpTextCombinationsChecked,
		},
	)

	BuildsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBuildsRejected,
			Help: HelpTextBuildsRejected,
		},
		[]string{LabelReason},
	)

	GenerationsTruncated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGenerationsTruncated,
			Help: HelpTextGenerationsTruncated,
		},
	)

	BuildsReturned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBuildsReturned,
			Help: HelpTextBuildsReturned,
		},
	)
)

// Catalog Metrics
var (
	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogItems,
			Help: HelpTextCatalogItems,
		},
	)

	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogReloads,
			Help: HelpTextCatalogReloads,
		},
		[]string{LabelOutcome},
	)

	ItemSearches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemSearches,
			Help: HelpTextItemSearches,
		},
	)

	SearchCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSearchCacheHits,
			Help: HelpTextSearchCacheHits,
		},
	)

	SearchCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSearchCacheMisses,
			Help: HelpTextSearchCacheMisses,
		},
	)

	ItemLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemLookups,
			Help: HelpTextItemLookups,
		},
		[]string{LabelOutcome},
	)
)

// Export Metrics
var (
	BuildsExported = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBuildsExported,
			Help: HelpTextBuildsExported,
		},
		[]string{LabelFormat},
	)
)
