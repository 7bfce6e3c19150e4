package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	ArchiveRunsTotal *prometheus.CounterVec
	ArchiveDuration  prometheus.Histogram

	SearchRequestsTotal   *prometheus.CounterVec
	SearchRequestDuration prometheus.Histogram

	ArticlesStoredTotal    prometheus.Counter
	ArticlesDuplicateTotal prometheus.Counter

	DigestsSentTotal *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		ArchiveRunsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "newsvault_archive_runs_total",
				Help: "Total number of archive passes",
			},
			[]string{"status"},
		),
		ArchiveDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "newsvault_archive_duration_seconds",
				Help:    "Archive pass duration in seconds",
				Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
			},
		),

		SearchRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "newsvault_search_requests_total",
				Help: "Total number of content API requests",
			},
			[]string{"status"},
		),
		SearchRequestDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "newsvault_search_request_duration_seconds",
				Help:    "Content API request duration in seconds",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
			},
		),

		ArticlesStoredTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "newsvault_articles_stored_total",
				Help: "Total number of newly archived articles",
			},
		),
		ArticlesDuplicateTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "newsvault_articles_duplicate_total",
				Help: "Total number of articles skipped as already archived",
			},
		),

		DigestsSentTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "newsvault_digests_sent_total",
				Help: "Total number of digest notifications sent",
			},
			[]string{"status"},
		),
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func (m *Metrics) RecordArchiveRun(status string, duration time.Duration) {
	m.ArchiveRunsTotal.WithLabelValues(status).Inc()
	m.ArchiveDuration.Observe(duration.Seconds())
}

func (m *Metrics) RecordSearchRequest(status string, duration time.Duration) {
	m.SearchRequestsTotal.WithLabelValues(status).Inc()
	m.SearchRequestDuration.Observe(duration.Seconds())
}

func (m *Metrics) RecordArticleStored() {
	m.ArticlesStoredTotal.Inc()
}

func (m *Metrics) RecordArticleDuplicate() {
	m.ArticlesDuplicateTotal.Inc()
}

func (m *Metrics) RecordDigestSent(status string) {
	m.DigestsSentTotal.WithLabelValues(status).Inc()
}
