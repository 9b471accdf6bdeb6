// Package metrics contains Prometheus metrics for the news bot
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Fetch results
const (
	FetchResultOK     = "ok"
	FetchResultAbsent = "absent"
	FetchResultError  = "error"
)

// Metrics holds all Prometheus metrics for the news bot
type Metrics struct {
	registry *prometheus.Registry

	FetchTotal    *prometheus.CounterVec
	FetchDuration prometheus.Histogram

	UpdatesTotal  *prometheus.CounterVec
	RepliesTotal  *prometheus.CounterVec
	ReplyErrors   *prometheus.CounterVec
	HandlerPanics prometheus.Counter
}

// NewMetrics creates a new Metrics instance on its own registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		FetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "newsbot_fetch_total",
				Help: "Total number of news fetches by result",
			},
			[]string{"result"},
		),
		FetchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "newsbot_fetch_duration_seconds",
			Help:    "Duration of news fetches in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),

		UpdatesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "newsbot_updates_total",
				Help: "Total number of handled Telegram updates by handler",
			},
			[]string{"handler"},
		),
		RepliesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "newsbot_replies_total",
				Help: "Total number of replies sent by kind",
			},
			[]string{"kind"},
		),
		ReplyErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "newsbot_reply_errors_total",
				Help: "Total number of failed replies by kind",
			},
			[]string{"kind"},
		),
		HandlerPanics: factory.NewCounter(prometheus.CounterOpts{
			Name: "newsbot_handler_panics_total",
			Help: "Total number of recovered panics in update handlers",
		}),
	}
}

// RecordFetch records a finished fetch
func (m *Metrics) RecordFetch(result string, duration time.Duration) {
	m.FetchTotal.WithLabelValues(result).Inc()
	m.FetchDuration.Observe(duration.Seconds())
}

// RecordUpdate records a dispatched update
func (m *Metrics) RecordUpdate(handler string) {
	m.UpdatesTotal.WithLabelValues(handler).Inc()
}

// RecordReply records a reply send attempt
func (m *Metrics) RecordReply(kind string, err error) {
	if err != nil {
		m.ReplyErrors.WithLabelValues(kind).Inc()
		return
	}
	m.RepliesTotal.WithLabelValues(kind).Inc()
}

// RecordPanic records a recovered handler panic
func (m *Metrics) RecordPanic() {
	m.HandlerPanics.Inc()
}

// Handler returns the HTTP handler exposing the registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
