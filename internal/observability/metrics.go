package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// catalog service.
type Metrics struct {
	// Feed metrics.
	FeedRequests        *prometheus.CounterVec // labels: outcome={success,error}
	FeedRequestDuration prometheus.Histogram
	CatalogRecords      prometheus.Gauge

	// Refresh cycle metrics.
	RefreshTotal *prometheus.CounterVec // labels: outcome={success,error}
	LastRefresh  prometheus.Gauge
	ServiceReady prometheus.Gauge

	// Output metrics.
	ChartsRendered     *prometheus.CounterVec // labels: chart={average_magnitude,quakes_per_year}
	SummariesPublished prometheus.Counter
	PublishEnabled     prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FeedRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quakes",
			Name:      "feed_requests_total",
			Help:      "USGS feed requests by outcome.",
		}, []string{"outcome"}),
		FeedRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quakes",
			Name:      "feed_request_duration_seconds",
			Help:      "USGS feed request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		CatalogRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quakes",
			Name:      "catalog_records",
			Help:      "Records decoded from the most recent catalog fetch.",
		}),
		RefreshTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quakes",
			Name:      "refresh_total",
			Help:      "Catalog refresh cycles by outcome.",
		}, []string{"outcome"}),
		LastRefresh: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quakes",
			Name:      "last_refresh_timestamp_seconds",
			Help:      "Unix time of the last successful refresh.",
		}),
		ServiceReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quakes",
			Name:      "service_ready",
			Help:      "1 once a summary is available to serve, 0 before.",
		}),
		ChartsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quakes",
			Name:      "charts_rendered_total",
			Help:      "Chart renderings by chart kind.",
		}, []string{"chart"}),
		SummariesPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quakes",
			Name:      "summaries_published_total",
			Help:      "Summaries published to the Kafka topic.",
		}),
		PublishEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quakes",
			Name:      "publish_enabled",
			Help:      "1 when summary publishing is enabled, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.FeedRequests,
		m.FeedRequestDuration,
		m.CatalogRecords,
		m.RefreshTotal,
		m.LastRefresh,
		m.ServiceReady,
		m.ChartsRendered,
		m.SummariesPublished,
		m.PublishEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FeedRequests:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "quakes", Name: "feed_requests_total"}, []string{"outcome"}),
		FeedRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "quakes", Name: "feed_request_duration_seconds"}),
		CatalogRecords:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "quakes", Name: "catalog_records"}),
		RefreshTotal:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "quakes", Name: "refresh_total"}, []string{"outcome"}),
		LastRefresh:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "quakes", Name: "last_refresh_timestamp_seconds"}),
		ServiceReady:        prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "quakes", Name: "service_ready"}),
		ChartsRendered:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "quakes", Name: "charts_rendered_total"}, []string{"chart"}),
		SummariesPublished:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "quakes", Name: "summaries_published_total"}),
		PublishEnabled:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "quakes", Name: "publish_enabled"}),
	}
}
