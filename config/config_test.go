package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vitrite/config"
	"github.com/katalvlaran/vitrite/hull"
)

func TestDefault(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, config.DefaultMaxRingSize, c.MaxRingSize)
	assert.False(t, c.RemoveCrossing)
	assert.False(t, c.Hull.Enabled)
	assert.Equal(t, hull.DefaultMaxFaces, c.Hull.MaxFaces)
	assert.Equal(t, hull.DefaultMaxSteps, c.Hull.MaxSteps)
	assert.Equal(t, hull.DefaultMaxFacesPerVertex, c.Hull.MaxFacesPerVertex)
}

func TestDecode(t *testing.T) {
	c, err := config.Decode(strings.NewReader(`
max_ring_size = 6
remove_crossing = true
workers = 4

[hull]
enabled = true
max_faces_per_vertex = 4
polyhedra = true
`))
	require.NoError(t, err)
	assert.Equal(t, 6, c.MaxRingSize)
	assert.True(t, c.RemoveCrossing)
	assert.Equal(t, 4, c.Workers)
	assert.True(t, c.Hull.Enabled)
	assert.True(t, c.Hull.Polyhedra)
	assert.Equal(t, 4, c.Hull.MaxFacesPerVertex)
	// omitted keys keep their defaults
	assert.Equal(t, hull.DefaultMaxFaces, c.Hull.MaxFaces)
	assert.Equal(t, hull.DefaultMaxSteps, c.Hull.MaxSteps)

	assert.Len(t, c.RingOptions(), 1)
	assert.Len(t, c.HullOptions(), 4)
}

func TestDecodeString_Empty(t *testing.T) {
	c, err := config.DecodeString("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestDecode_Invalid(t *testing.T) {
	tests := map[string]string{
		"syntax":          "max_ring_size = ",
		"type":            `max_ring_size = "six"`,
		"unknown key":     "max_ring = 6",
		"unknown table":   "[hul]\nenabled = true",
		"small ring":      "max_ring_size = 2",
		"negative worker": "workers = -1",
		"max faces":       "[hull]\nmax_faces = 1",
		"max steps":       "[hull]\nmax_steps = 0",
		"per vertex":      "[hull]\nmax_faces_per_vertex = 1",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.DecodeString(doc)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}
