// File: options.go
// Role: FindRings configuration (functional options).
// Concurrency:
//   - Options are resolved once per call; nothing is shared between calls.

package rings

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/vitrite/core"
	"github.com/katalvlaran/vitrite/metric"
)

var (
	// ErrGraphNil is returned when a nil snapshot is passed to FindRings.
	ErrGraphNil = errors.New("rings: graph is nil")

	// ErrOptionViolation indicates an invalid argument or option value,
	// such as maxSize < 3 or a negative worker count.
	ErrOptionViolation = errors.New("rings: invalid option value")

	// ErrInvalidGraph re-exports core.ErrInvalidGraph for callers that only
	// import this package.
	ErrInvalidGraph = core.ErrInvalidGraph
)

// MinRingSize is the smallest possible ring (a triangle).
const MinRingSize = 3

// Option configures FindRings.
type Option func(*Options)

// Options holds the resolved FindRings configuration.
type Options struct {
	// Workers is the number of concurrent seed searchers; 0 means GOMAXPROCS.
	Workers int

	// Logger receives progress records. Defaults to a discarding logger.
	Logger *log.Logger

	// Metrics, if non-nil, receives search counters.
	Metrics *metric.Metrics

	err error
}

// DefaultOptions returns GOMAXPROCS workers, a silent logger and no metrics.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  log.NewWithOptions(io.Discard, log.Options{}),
	}
}

// WithWorkers sets the number of concurrent seed searchers.
// 0 keeps the default; negative values are rejected.
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

// WithLogger routes progress records to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records search counters on m.
func WithMetrics(m *metric.Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// resolve applies opts over the defaults.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o, o.err
}
