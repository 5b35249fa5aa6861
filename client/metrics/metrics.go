// Package metrics exposes Prometheus collectors describing fetch
// outcomes and latency.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "netreq"

// Collector counts fetches and observes their latency, both labelled
// by HTTP method and outcome. A nil *Collector discards observations.
type Collector struct {
	fetches  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates a Collector and registers it on reg, reusing the
// collectors of an earlier Collector on the same registry.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		fetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fetches_total",
				Help:      "Total number of fetches by method and outcome.",
			},
			[]string{"method", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "fetch_duration_seconds",
				Help:      "Time from issuing a fetch to its classified outcome.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "outcome"},
		),
	}

	var err error
	if c.fetches, err = register(reg, c.fetches); err != nil {
		return nil, err
	}
	if c.duration, err = register(reg, c.duration); err != nil {
		return nil, err
	}

	return c, nil
}

// register adds col to reg. When an identical collector is already
// registered, that one is returned instead so several Collectors can
// share a registry.
func register[C prometheus.Collector](reg prometheus.Registerer, col C) (C, error) {
	if err := reg.Register(col); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}

		var zero C
		return zero, fmt.Errorf("registering collector: %w", err)
	}

	return col, nil
}

// Observe records one completed fetch.
func (c *Collector) Observe(method, outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}

	c.fetches.WithLabelValues(method, outcome).Inc()
	c.duration.WithLabelValues(method, outcome).Observe(elapsed.Seconds())
}
