// Package heightfield samples modulations into immutable row-major grids.
// Lattice points cover [0,1]² inclusively: u = x/(Width-1), v = y/(Height-1).
package heightfield

import (
	"github.com/katalvlaran/surfmod/modulation"
)

// Sample evaluates m at every lattice point of a Width×Height grid over
// the unit square and returns the resulting Field.
// Returns ErrNilModulation if m is nil,
// ErrBadResolution if opts.Width or opts.Height is below 2.
// Algorithmic complexity: O(W×H × cost(Offset)) time, O(W×H) memory.
func Sample(m modulation.Modulation, opts Options) (*Field, error) {
	if m == nil {
		return nil, ErrNilModulation
	}
	if opts.Width < 2 || opts.Height < 2 {
		return nil, ErrBadResolution
	}

	values := make([]float64, opts.Width*opts.Height)
	lo, hi := m.Offset(0, 0), m.Offset(0, 0)
	for y := 0; y < opts.Height; y++ {
		v := float64(y) / float64(opts.Height-1)
		for x := 0; x < opts.Width; x++ {
			u := float64(x) / float64(opts.Width-1)
			off := m.Offset(u, v)
			values[y*opts.Width+x] = off
			if off < lo {
				lo = off
			}
			if off > hi {
				hi = off
			}
		}
	}

	return &Field{
		Width:  opts.Width,
		Height: opts.Height,
		values: values,
		min:    lo,
		max:    hi,
	}, nil
}

// InBounds reports whether (x,y) lies within the field boundaries.
// Complexity: O(1).
func (f *Field) InBounds(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

// At returns the sampled offset at cell (x,y). The cell must satisfy
// InBounds; out-of-range cells are a programming error.
// Complexity: O(1).
func (f *Field) At(x, y int) float64 {
	return f.values[f.index(x, y)]
}

// UV returns the surface coordinates that cell (x,y) was sampled at.
// Complexity: O(1).
func (f *Field) UV(x, y int) (u, v float64) {
	return float64(x) / float64(f.Width-1), float64(y) / float64(f.Height-1)
}

// Min returns the smallest offset observed while sampling.
// Complexity: O(1).
func (f *Field) Min() float64 {
	return f.min
}

// Max returns the largest offset observed while sampling.
// Complexity: O(1).
func (f *Field) Max() float64 {
	return f.max
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (f *Field) index(x, y int) int {
	return y*f.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (f *Field) Coordinate(idx int) (x, y int) {
	return idx % f.Width, idx / f.Width
}

// Normalized returns a copy of the field rescaled affinely onto [0,1]:
// the minimum maps to 0 and the maximum to 1. A flat field (max == min)
// normalizes to all zeros. The receiver is left untouched.
// Complexity: O(W×H) time and memory.
func (f *Field) Normalized() *Field {
	values := make([]float64, len(f.values))
	span := f.max - f.min
	if span > 0 {
		// Division keeps the extremes exact: (max-min)/span == 1.
		for i, off := range f.values {
			values[i] = (off - f.min) / span
		}
	}

	nf := &Field{
		Width:  f.Width,
		Height: f.Height,
		values: values,
	}
	if span > 0 {
		nf.max = 1
	}

	return nf
}
