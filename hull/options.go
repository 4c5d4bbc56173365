// File: options.go
// Role: AssembleHull / Polyhedra configuration (functional options).

package hull

import (
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/vitrite/metric"
)

// Defaults for the search budgets.
const (
	DefaultMaxFaces          = 20
	DefaultMaxSteps          = 1_000_000
	DefaultMaxFacesPerVertex = 3
)

// Option configures hull assembly.
type Option func(*Options)

// Options holds the resolved assembly configuration.
type Options struct {
	// MaxFaces bounds the number of faces of one hull.
	MaxFaces int

	// MaxSteps bounds ring placements per connected component.
	MaxSteps int

	// MaxFacesPerVertex bounds how many faces may share a vertex.
	MaxFacesPerVertex int

	// Workers bounds how many components are searched concurrently.
	Workers int

	// OnState, if non-nil, observes every state change of every search:
	// the new state and the number of faces placed at that moment.
	// Components run concurrently, so it must be safe for concurrent use.
	OnState func(s State, faces int)

	// Logger receives progress records. Defaults to a discarding logger.
	Logger *log.Logger

	// Metrics, if non-nil, receives step counters and outcomes.
	Metrics *metric.Metrics

	err error
}

// DefaultOptions returns the documented budgets, GOMAXPROCS workers and a
// silent logger.
func DefaultOptions() Options {
	return Options{
		MaxFaces:          DefaultMaxFaces,
		MaxSteps:          DefaultMaxSteps,
		MaxFacesPerVertex: DefaultMaxFacesPerVertex,
		Workers:           runtime.GOMAXPROCS(0),
		Logger:            log.NewWithOptions(io.Discard, log.Options{}),
	}
}

// WithMaxFaces bounds the hull size; n must be at least 2.
func WithMaxFaces(n int) Option {
	return func(o *Options) {
		if n < 2 {
			o.err = fmt.Errorf("%w: max faces=%d", ErrOptionViolation, n)
			return
		}
		o.MaxFaces = n
	}
}

// WithMaxSteps bounds ring placements per component; n must be positive.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: max steps=%d", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithMaxFacesPerVertex bounds vertex sharing; n must be at least 2.
// Raise it to 4 or 5 for octahedral or icosahedral cells.
func WithMaxFacesPerVertex(n int) Option {
	return func(o *Options) {
		if n < 2 {
			o.err = fmt.Errorf("%w: max faces per vertex=%d", ErrOptionViolation, n)
			return
		}
		o.MaxFacesPerVertex = n
	}
}

// WithWorkers bounds concurrent component searches; 0 keeps the default.
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: workers=%d", ErrOptionViolation, n)
		case n > 0:
			o.Workers = n
		}
	}
}

// WithOnState installs a state observer.
func WithOnState(fn func(s State, faces int)) Option {
	return func(o *Options) {
		o.OnState = fn
	}
}

// WithLogger routes progress records to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records step counters and outcomes on m.
func WithMetrics(m *metric.Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o, o.err
}
