package observability

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/aretw0/sprout/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics collects engine and mapper activity.
type Metrics struct {
	registry    *prometheus.Registry
	generations *prometheus.CounterVec
	fixedPoints *prometheus.CounterVec
	resets      *prometheus.CounterVec
	length      *prometheus.GaugeVec
	expanded    *prometheus.HistogramVec
	lines       *prometheus.CounterVec
	markers     *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sprout_generations_total",
				Help: "Total number of rewrite passes that expanded at least one symbol",
			},
			[]string{"grammar"},
		),
		fixedPoints: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sprout_fixed_points_total",
				Help: "Total number of rewrite passes that found no symbol to expand",
			},
			[]string{"grammar"},
		),
		resets: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sprout_resets_total",
				Help: "Total number of engine resets",
			},
			[]string{"grammar"},
		),
		length: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sprout_state_length_symbols",
				Help: "Length of the grammar state after the last rewrite pass",
			},
			[]string{"grammar"},
		),
		expanded: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sprout_expanded_symbols",
				Help:    "Number of symbols expanded per rewrite pass",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"grammar"},
		),
		lines: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sprout_lines_total",
				Help: "Total number of line segments emitted by the mapper",
			},
			[]string{"grammar", "dimension"},
		),
		markers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sprout_markers_total",
				Help: "Total number of markers emitted by the mapper",
			},
			[]string{"grammar", "dimension"},
		),
	}
	m.registry.MustRegister(
		m.generations,
		m.fixedPoints,
		m.resets,
		m.length,
		m.expanded,
		m.lines,
		m.markers,
	)
	return m
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnGeneration: func(_ context.Context, e *domain.GenerationEvent) {
			m.generations.WithLabelValues(e.Grammar).Inc()
			m.length.WithLabelValues(e.Grammar).Set(float64(e.Length))
			m.expanded.WithLabelValues(e.Grammar).Observe(float64(e.Expanded))
		},
		OnFixedPoint: func(_ context.Context, e *domain.GenerationEvent) {
			m.fixedPoints.WithLabelValues(e.Grammar).Inc()
		},
		OnReset: func(_ context.Context, e *domain.EventBase) {
			m.resets.WithLabelValues(e.Grammar).Inc()
		},
		OnMap: func(_ context.Context, e *domain.MapEvent) {
			dim := strconv.Itoa(int(e.Dimension)) + "d"
			m.lines.WithLabelValues(e.Grammar, dim).Add(float64(e.Lines))
			m.markers.WithLabelValues(e.Grammar, dim).Add(float64(e.Markers))
		},
	}
}

// Registry exposes the underlying registry, e.g. for promhttp in a host application.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteText writes every gathered metric family in the Prometheus text exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to encode metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
