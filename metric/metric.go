// Package metric holds the Prometheus instruments of a ring-perception run.
//
// A *Metrics is optional everywhere it is accepted: every recording method
// is safe on a nil receiver, so library callers that do not care about
// metrics pass nothing and pay nothing.
package metric

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "vitrite"

// Metrics contains the counters and histograms for ring search and hull assembly.
type Metrics struct {
	// Ring search
	SeedsSearched   prometheus.Counter
	Closures        prometheus.Counter
	Reducible       prometheus.Counter
	RingsFound      *prometheus.CounterVec
	CrossingRemoved prometheus.Counter

	// Hull assembly
	HullSteps      prometheus.Counter
	HullBacktracks prometheus.Counter
	HullOutcomes   *prometheus.CounterVec

	// Stage timing
	StageDuration *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance under namespace.
// An empty namespace falls back to DefaultNamespace.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &Metrics{
		SeedsSearched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rings",
			Name:      "seeds_searched_total",
			Help:      "Total number of three-vertex seeds searched",
		}),
		Closures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rings",
			Name:      "closures_total",
			Help:      "Total number of closed candidate cycles examined",
		}),
		Reducible: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rings",
			Name:      "reducible_total",
			Help:      "Total number of closed candidates rejected by the shortcut test",
		}),
		RingsFound: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "rings",
				Name:      "found_total",
				Help:      "Total number of distinct rings reported, by ring size",
			},
			[]string{"size"},
		),
		CrossingRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rings",
			Name:      "crossing_removed_total",
			Help:      "Total number of rings dropped as sums of smaller rings",
		}),
		HullSteps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "hull",
			Name:      "steps_total",
			Help:      "Total number of ring placements tried during hull assembly",
		}),
		HullBacktracks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "hull",
			Name:      "backtracks_total",
			Help:      "Total number of ring placements undone during hull assembly",
		}),
		HullOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "hull",
				Name:      "outcomes_total",
				Help:      "Hull assembly results by final state",
			},
			[]string{"state"},
		),
		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "analysis",
				Name:      "stage_duration_seconds",
				Help:      "Wall time of each analysis stage in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
	}
}

// Collectors lists every instrument, in registration order.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.SeedsSearched,
		m.Closures,
		m.Reducible,
		m.RingsFound,
		m.CrossingRemoved,
		m.HullSteps,
		m.HullBacktracks,
		m.HullOutcomes,
		m.StageDuration,
	}
}

// Register adds every instrument to reg. Collectors that are already
// registered with an identical descriptor are tolerated, so one Metrics can
// be registered twice on the same registry.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	if reg == nil {
		return errors.New("metric: nil registerer")
	}
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}

			return fmt.Errorf("metric: register: %w", err)
		}
	}

	return nil
}

// RecordSearch adds the counters of one FindRings call.
func (m *Metrics) RecordSearch(seeds, closures, reducible int) {
	if m == nil {
		return
	}
	m.SeedsSearched.Add(float64(seeds))
	m.Closures.Add(float64(closures))
	m.Reducible.Add(float64(reducible))
}

// RecordRings counts reported rings by size.
func (m *Metrics) RecordRings(sizes map[int]int) {
	if m == nil {
		return
	}
	for size, n := range sizes {
		m.RingsFound.WithLabelValues(fmt.Sprint(size)).Add(float64(n))
	}
}

// RecordCrossing counts rings removed by the crossing filter.
func (m *Metrics) RecordCrossing(removed int) {
	if m == nil {
		return
	}
	m.CrossingRemoved.Add(float64(removed))
}

// RecordHull adds the search counters and final state of one assembly.
func (m *Metrics) RecordHull(state string, steps, backtracks int) {
	if m == nil {
		return
	}
	m.HullSteps.Add(float64(steps))
	m.HullBacktracks.Add(float64(backtracks))
	m.HullOutcomes.WithLabelValues(state).Inc()
}

// ObserveStage records how long stage took.
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}
