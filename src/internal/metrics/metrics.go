// Package metrics exposes Prometheus metrics of blocklist generation runs.
//
// A nil *Metrics is valid and records nothing, so components can take an
// optional metrics value without checking it.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "blocklist_gen"

type Metrics struct {
	registry *prometheus.Registry

	runs            *prometheus.CounterVec
	sources         *prometheus.CounterVec
	fetchDuration   prometheus.Histogram
	extracted       prometheus.Counter
	uniqueDomains   prometheus.Gauge
	lastRunTime     prometheus.Gauge
	lastRunDuration prometheus.Gauge
}

// New creates metrics registered on a dedicated registry together with the
// Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total blocklist generation runs by result",
			},
			[]string{"result"},
		),
		sources: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sources_total",
				Help:      "Total processed blocklist sources by result",
			},
			[]string{"result"},
		),
		fetchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "source_fetch_duration_seconds",
				Help:      "Blocklist source download duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
		extracted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "domains_extracted_total",
				Help:      "Total domains extracted from all sources, before deduplication",
			},
		),
		uniqueDomains: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "unique_domains",
				Help:      "Unique domains in the last generated blocklist",
			},
		),
		lastRunTime: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_run_timestamp_seconds",
				Help:      "Unix time of the last finished run",
			},
		),
		lastRunDuration: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_run_duration_seconds",
				Help:      "Duration of the last finished run in seconds",
			},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.runs, m.sources, m.fetchDuration, m.extracted,
		m.uniqueDomains, m.lastRunTime, m.lastRunDuration,
	)

	return m
}

// Registry returns the registry holding all metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler returns the HTTP handler exposing the metrics.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveSource records the outcome of one source.
func (m *Metrics) ObserveSource(ok bool, extracted int, duration time.Duration) {
	if m == nil {
		return
	}
	m.sources.WithLabelValues(result(ok, "ok")).Inc()
	m.fetchDuration.Observe(duration.Seconds())
	m.extracted.Add(float64(extracted))
}

// ObserveRun records a finished run.
func (m *Metrics) ObserveRun(ok bool, uniqueDomains int, finishedAt time.Time, duration time.Duration) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(result(ok, "success")).Inc()
	if !ok {
		return
	}
	m.uniqueDomains.Set(float64(uniqueDomains))
	m.lastRunTime.Set(float64(finishedAt.Unix()))
	m.lastRunDuration.Set(duration.Seconds())
}

func result(ok bool, success string) string {
	if ok {
		return success
	}
	return "failed"
}
