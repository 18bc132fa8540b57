// Package heightfield defines options, sentinel errors, and the Field
// type for the heightfield subpackage of github.com/katalvlaran/surfmod.
package heightfield

import (
	"errors"
)

// Sentinel errors for heightfield operations.
var (
	// ErrNilModulation indicates Sample was given a nil modulation.
	ErrNilModulation = errors.New("heightfield: modulation must be non-nil")
	// ErrBadResolution indicates a requested resolution below 2 samples per axis.
	ErrBadResolution = errors.New("heightfield: width and height must be at least 2")
)

// Options contains tunable parameters for sampling.
type Options struct {
	// Width is the number of samples along u, inclusive of u=0 and u=1.
	Width int
	// Height is the number of samples along v, inclusive of v=0 and v=1.
	Height int
}

// DefaultOptions returns an Options with default settings:
// Width=64, Height=64.
func DefaultOptions() Options {
	return Options{
		Width:  64,
		Height: 64,
	}
}

// Field holds the sampled offsets of a modulation over the unit square.
// It is immutable once built. Width and Height define dimensions; values
// are stored row-major, and min/max record the extrema seen while sampling.
type Field struct {
	Width, Height int
	values        []float64
	min, max      float64
}
