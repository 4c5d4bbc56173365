// Package config holds the TOML-decodable settings of one ring analysis.
//
// A minimal file:
//
//	max_ring_size = 8
//	remove_crossing = true
//
//	[hull]
//	enabled = true
//	max_faces_per_vertex = 3
//
// Omitted keys keep the values of Default. Unknown keys are rejected so a
// typo never silently falls back to a default. The package never opens
// files; callers pass a reader or a string.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/vitrite/hull"
	"github.com/katalvlaran/vitrite/rings"
)

// ErrInvalidConfig is returned for undecodable or out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DefaultMaxRingSize covers the rings of ice polymorphs and liquid water.
const DefaultMaxRingSize = 8

// Config is one analysis configuration.
type Config struct {
	// MaxRingSize is the largest ring searched for.
	MaxRingSize int `toml:"max_ring_size"`
	// RemoveCrossing drops rings that are sums of strictly smaller rings.
	RemoveCrossing bool `toml:"remove_crossing"`
	// Workers bounds parallelism; 0 means GOMAXPROCS.
	Workers int `toml:"workers"`

	Hull Hull `toml:"hull"`
}

// Hull configures the hull stage.
type Hull struct {
	Enabled           bool `toml:"enabled"`
	MaxFaces          int  `toml:"max_faces"`
	MaxSteps          int  `toml:"max_steps"`
	MaxFacesPerVertex int  `toml:"max_faces_per_vertex"`
	// Polyhedra enumerates every cell instead of assembling one hull.
	Polyhedra bool `toml:"polyhedra"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		MaxRingSize: DefaultMaxRingSize,
		Hull: Hull{
			MaxFaces:          hull.DefaultMaxFaces,
			MaxSteps:          hull.DefaultMaxSteps,
			MaxFacesPerVertex: hull.DefaultMaxFacesPerVertex,
		},
	}
}

// Decode reads TOML from r over Default and validates the result.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return Config{}, fmt.Errorf("%w: parsing TOML: %w", ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err = c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// DecodeString is Decode over a string.
func DecodeString(s string) (Config, error) {
	return Decode(strings.NewReader(s))
}

// Validate checks every field against the bounds the stages accept.
func (c Config) Validate() error {
	switch {
	case c.MaxRingSize < rings.MinRingSize:
		return fmt.Errorf("%w: max_ring_size=%d, need at least %d", ErrInvalidConfig, c.MaxRingSize, rings.MinRingSize)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers=%d", ErrInvalidConfig, c.Workers)
	case c.Hull.MaxFaces < 2:
		return fmt.Errorf("%w: hull.max_faces=%d", ErrInvalidConfig, c.Hull.MaxFaces)
	case c.Hull.MaxSteps < 1:
		return fmt.Errorf("%w: hull.max_steps=%d", ErrInvalidConfig, c.Hull.MaxSteps)
	case c.Hull.MaxFacesPerVertex < 2:
		return fmt.Errorf("%w: hull.max_faces_per_vertex=%d", ErrInvalidConfig, c.Hull.MaxFacesPerVertex)
	}

	return nil
}

// RingOptions translates c into FindRings options.
func (c Config) RingOptions() []rings.Option {
	return []rings.Option{rings.WithWorkers(c.Workers)}
}

// HullOptions translates c into AssembleHull / Polyhedra options.
func (c Config) HullOptions() []hull.Option {
	return []hull.Option{
		hull.WithWorkers(c.Workers),
		hull.WithMaxFaces(c.Hull.MaxFaces),
		hull.WithMaxSteps(c.Hull.MaxSteps),
		hull.WithMaxFacesPerVertex(c.Hull.MaxFacesPerVertex),
	}
}
