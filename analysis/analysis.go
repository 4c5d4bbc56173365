// Package analysis runs the complete ring pipeline on one graph:
//
//  1. Snapshot: freeze the adjacency once; later edits to the Graph do not
//     affect the run. Directed graphs are reduced to their underlying
//     simple undirected graph first (antiparallel arcs merge, loops drop).
//     Undirected graphs with loops or parallel edges fail with
//     core.ErrInvalidGraph.
//  2. Rings: FindRings up to Config.MaxRingSize (already deduplicated).
//  3. Crossing: optional RemoveCrossingRings.
//  4. Hull: optional AssembleHull, or Polyhedra when Config.Hull.Polyhedra.
//
// Every run carries a random ID that tags its log records, and a Report
// with the duration of each stage.
//
// Usage:
//
//	cfg, err := config.DecodeString(doc)
//	rep, err := analysis.Run(ctx, g, cfg, analysis.WithLogger(logger))
//	fmt.Println(rep.Rings.Histogram())
package analysis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/vitrite/config"
	"github.com/katalvlaran/vitrite/core"
	"github.com/katalvlaran/vitrite/hull"
	"github.com/katalvlaran/vitrite/metric"
	"github.com/katalvlaran/vitrite/rings"
)

// Stage names used in Report.Durations and the stage histogram.
const (
	StageRings     = "rings"
	StageCrossing  = "crossing"
	StageHull      = "hull"
	StagePolyhedra = "polyhedra"
)

// ErrGraphNil is returned when Run receives a nil graph.
var ErrGraphNil = errors.New("analysis: graph is nil")

// Report is the outcome of one run.
type Report struct {
	// RunID identifies the run in logs.
	RunID string

	// Rings after the optional crossing filter, canonical and sorted.
	Rings rings.RingSet

	// Removed counts rings dropped by the crossing filter.
	Removed int

	// Hull is set when the hull stage ran in assembly mode.
	Hull *hull.Result

	// Polyhedra is set when the hull stage ran in enumeration mode.
	Polyhedra []*hull.Hull

	// PolyhedraTruncated reports that the step budget cut the enumeration.
	PolyhedraTruncated bool

	// Durations per stage name.
	Durations map[string]time.Duration
}

// Option configures Run.
type Option func(*runner)

// WithLogger routes progress records to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(r *runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics records every stage on m.
func WithMetrics(m *metric.Metrics) Option {
	return func(r *runner) {
		r.metrics = m
	}
}

type runner struct {
	logger  *log.Logger
	metrics *metric.Metrics
}

// Run analyses g according to cfg.
func Run(ctx context.Context, g *core.Graph, cfg config.Config, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &runner{logger: log.NewWithOptions(io.Discard, log.Options{})}
	for _, fn := range opts {
		fn(r)
	}

	rep := &Report{
		RunID:     uuid.NewString(),
		Durations: make(map[string]time.Duration),
	}
	logger := r.logger.With("run", rep.RunID)
	if g.Directed() {
		// rings live on the underlying simple undirected graph
		arcs := g.Size()
		g = core.UndirectedView(g)
		if dropped := arcs - g.Size(); dropped > 0 {
			logger.Warn("directed graph reduced to undirected", "arcs", arcs,
				"edges", g.Size(), "dropped", dropped)
		}
	}
	s := g.Snapshot()
	logger.Info("analysis started", "vertices", s.Order(), "edges", s.Size(),
		"max_ring_size", cfg.MaxRingSize)

	start := time.Now()
	ringOpts := append(cfg.RingOptions(), rings.WithLogger(logger), rings.WithMetrics(r.metrics))
	rs, err := rings.FindRings(ctx, s, cfg.MaxRingSize, ringOpts...)
	if err != nil {
		return nil, fmt.Errorf("analysis: %s: %w", StageRings, err)
	}
	r.finish(rep, StageRings, start)
	logger.Info("rings found", "rings", len(rs), "sizes", rs.Histogram())

	if cfg.RemoveCrossing {
		start = time.Now()
		kept := rings.RemoveCrossingRings(rs)
		rep.Removed = len(rs) - len(kept)
		rs = kept
		r.metrics.RecordCrossing(rep.Removed)
		r.finish(rep, StageCrossing, start)
		logger.Info("crossing rings removed", "removed", rep.Removed, "rings", len(rs))
	}
	rep.Rings = rs

	if !cfg.Hull.Enabled {
		return rep, nil
	}
	hullOpts := append(cfg.HullOptions(), hull.WithLogger(logger), hull.WithMetrics(r.metrics))
	start = time.Now()
	if cfg.Hull.Polyhedra {
		ps, err := hull.Polyhedra(ctx, s, rs, hullOpts...)
		switch {
		case errors.Is(err, hull.ErrBudgetExhausted):
			rep.PolyhedraTruncated = true
			logger.Warn("polyhedra enumeration truncated", "max_steps", cfg.Hull.MaxSteps)
		case err != nil:
			return nil, fmt.Errorf("analysis: %s: %w", StagePolyhedra, err)
		}
		rep.Polyhedra = ps
		r.finish(rep, StagePolyhedra, start)
		logger.Info("polyhedra enumerated", "polyhedra", len(ps))

		return rep, nil
	}

	res, err := hull.AssembleHull(ctx, s, rs, hullOpts...)
	if err != nil {
		return nil, fmt.Errorf("analysis: %s: %w", StageHull, err)
	}
	rep.Hull = res
	r.finish(rep, StageHull, start)
	logger.Info("hull assembled", "state", res.State, "steps", res.Stats.Steps)

	return rep, nil
}

// finish records the duration of stage.
func (r *runner) finish(rep *Report, stage string, start time.Time) {
	d := time.Since(start)
	rep.Durations[stage] = d
	r.metrics.ObserveStage(stage, d)
}
