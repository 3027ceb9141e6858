// Package metrics defines the prometheus collectors exported at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PageRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_page_renders_total",
		Help: "Total number of page renders by page and outcome",
	}, []string{"page", "status"})

	PageRenderSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "website_page_render_seconds",
		Help:    "Time spent rendering a page",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"page"})
)

// ObserveRender records one render of page that started at start.
func ObserveRender(page string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	PageRenders.WithLabelValues(page, status).Inc()
	PageRenderSeconds.WithLabelValues(page).Observe(time.Since(start).Seconds())
}
