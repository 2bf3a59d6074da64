package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector is safe to use as a nil pointer, in which case nothing is recorded
type Collector struct {
	reg *prometheus.Registry

	TrainsProcessed *prometheus.CounterVec // direction
	TrainsSkipped   *prometheus.CounterVec // direction, reason: cancelled|stale|duplicate|error
	RecordsEmitted  *prometheus.CounterVec // direction

	UpstreamErrors   *prometheus.CounterVec // operation
	UpstreamDuration *prometheus.HistogramVec
	ComputeDuration  prometheus.Histogram
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		TrainsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bridgetimes_trains_processed_total",
			Help: "Trains read from departure boards.",
		}, []string{"direction"}),
		TrainsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bridgetimes_trains_skipped_total",
			Help: "Trains that did not produce a bridge crossing.",
		}, []string{"direction", "reason"}),
		RecordsEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bridgetimes_records_emitted_total",
			Help: "Bridge crossing records returned.",
		}, []string{"direction"}),
		UpstreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bridgetimes_upstream_errors_total",
			Help: "Failed calls to the schedule source.",
		}, []string{"operation"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bridgetimes_upstream_duration_seconds",
			Help:    "Duration of calls to the schedule source.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}, []string{"operation"}),
		ComputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bridgetimes_compute_duration_seconds",
			Help:    "Duration of a full crossing computation including upstream calls.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
	}

	reg.MustRegister(
		c.TrainsProcessed, c.TrainsSkipped, c.RecordsEmitted,
		c.UpstreamErrors, c.UpstreamDuration, c.ComputeDuration,
	)

	return c
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.reg
}

func (c *Collector) TrainProcessed(direction string) {
	if c == nil {
		return
	}
	c.TrainsProcessed.WithLabelValues(direction).Inc()
}

func (c *Collector) TrainSkipped(direction string, reason string) {
	if c == nil {
		return
	}
	c.TrainsSkipped.WithLabelValues(direction, reason).Inc()
}

func (c *Collector) RecordEmitted(direction string) {
	if c == nil {
		return
	}
	c.RecordsEmitted.WithLabelValues(direction).Inc()
}

func (c *Collector) ObserveUpstream(operation string, start time.Time, err error) {
	if c == nil {
		return
	}
	c.UpstreamDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		c.UpstreamErrors.WithLabelValues(operation).Inc()
	}
}

func (c *Collector) ObserveCompute(start time.Time) {
	if c == nil {
		return
	}
	c.ComputeDuration.Observe(time.Since(start).Seconds())
}
