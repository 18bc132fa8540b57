package heightfield_test

import (
	"testing"

	"github.com/katalvlaran/surfmod/heightfield"
	"github.com/katalvlaran/surfmod/modulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSample_NilModulation verifies that Sample rejects a nil modulation
// with ErrNilModulation.
func TestSample_NilModulation(t *testing.T) {
	_, err := heightfield.Sample(nil, heightfield.DefaultOptions())
	assert.ErrorIs(t, err, heightfield.ErrNilModulation, "nil modulation must error")
}

// TestSample_BadResolution ensures resolutions below 2 samples per axis
// trigger ErrBadResolution: both edges of [0,1] must be representable.
func TestSample_BadResolution(t *testing.T) {
	m := modulation.NewSineWave(1, 1)

	_, err := heightfield.Sample(m, heightfield.Options{Width: 1, Height: 8})
	assert.ErrorIs(t, err, heightfield.ErrBadResolution, "Width < 2 must error")

	_, err = heightfield.Sample(m, heightfield.Options{Width: 8, Height: 0})
	assert.ErrorIs(t, err, heightfield.ErrBadResolution, "Height < 2 must error")
}

// TestSample_DefaultOptions verifies the default 64×64 resolution.
func TestSample_DefaultOptions(t *testing.T) {
	f, err := heightfield.Sample(modulation.NewNoOp(), heightfield.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 64, f.Width, "default width")
	assert.Equal(t, 64, f.Height, "default height")
}

// TestSample_MatchesModulation verifies the core contract: every cell
// holds exactly the modulation's offset at that cell's UV coordinates.
func TestSample_MatchesModulation(t *testing.T) {
	m := modulation.NewComposite(modulation.NewSineWave(2, 3), modulation.NewTriangleWave(1, 1))
	f, err := heightfield.Sample(m, heightfield.Options{Width: 9, Height: 7})
	require.NoError(t, err)

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			u, v := f.UV(x, y)
			assert.Equal(t, m.Offset(u, v), f.At(x, y),
				"cell (%d,%d) must hold the offset sampled at (%v,%v)", x, y, u, v)
		}
	}
}

// TestSample_EdgesInclusive verifies that the lattice covers both edges
// of the unit square: the corner cells sit exactly at u,v ∈ {0,1}.
func TestSample_EdgesInclusive(t *testing.T) {
	f, err := heightfield.Sample(modulation.NewNoOp(), heightfield.Options{Width: 5, Height: 4})
	require.NoError(t, err)

	u, v := f.UV(0, 0)
	assert.Equal(t, 0.0, u)
	assert.Equal(t, 0.0, v)
	u, v = f.UV(f.Width-1, f.Height-1)
	assert.Equal(t, 1.0, u)
	assert.Equal(t, 1.0, v)
}

// TestField_MinMax verifies the extrema on a known surface: a unit cosine
// wave sampled at quarter steps touches 0 at the center and 1 at the
// corners, exactly.
func TestField_MinMax(t *testing.T) {
	f, err := heightfield.Sample(modulation.NewCosineWave(1, 1), heightfield.Options{Width: 5, Height: 5})
	require.NoError(t, err)

	assert.Equal(t, 0.0, f.Min(), "cos(π) on both axes must reach 0")
	assert.Equal(t, 1.0, f.Max(), "cos(0) on both axes must reach 1")
	assert.Equal(t, 1.0, f.At(0, 0), "corner cell holds the maximum")
	assert.Equal(t, 0.0, f.At(2, 2), "center cell holds the minimum")
}

// TestField_CoordinateRoundTrip verifies the row-major index mapping:
// Coordinate inverts the internal layout for every cell.
func TestField_CoordinateRoundTrip(t *testing.T) {
	f, err := heightfield.Sample(modulation.NewNoOp(), heightfield.Options{Width: 6, Height: 3})
	require.NoError(t, err)

	for idx := 0; idx < f.Width*f.Height; idx++ {
		x, y := f.Coordinate(idx)
		assert.True(t, f.InBounds(x, y), "index %d must map inside the field", idx)
		assert.Equal(t, idx, y*f.Width+x, "Coordinate must invert the row-major layout")
	}
	assert.False(t, f.InBounds(-1, 0), "negative x is out of bounds")
	assert.False(t, f.InBounds(0, 3), "y == Height is out of bounds")
}

// TestField_Normalized verifies the affine rescale: the minimum maps to
// 0, the maximum to 1, and interior cells keep their relative position.
func TestField_Normalized(t *testing.T) {
	f, err := heightfield.Sample(modulation.NewCombinedSineWave(4, 4, 0, 0), heightfield.Options{Width: 33, Height: 33})
	require.NoError(t, err)
	require.Greater(t, f.Max(), 1.0, "four harmonics must escape the unit range before normalizing")

	n := f.Normalized()
	assert.Equal(t, 0.0, n.Min(), "normalized minimum")
	assert.Equal(t, 1.0, n.Max(), "normalized maximum")

	span := f.Max() - f.Min()
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			assert.InDelta(t, (f.At(x, y)-f.Min())/span, n.At(x, y), 1e-12,
				"cell (%d,%d) must be rescaled affinely", x, y)
		}
	}
}

// TestField_NormalizedFlat verifies the degenerate case: a flat field has
// no span to rescale and normalizes to all zeros.
func TestField_NormalizedFlat(t *testing.T) {
	f, err := heightfield.Sample(modulation.NewNoOp(), heightfield.Options{Width: 4, Height: 4})
	require.NoError(t, err)

	n := f.Normalized()
	for y := 0; y < n.Height; y++ {
		for x := 0; x < n.Width; x++ {
			assert.Zero(t, n.At(x, y), "flat field must normalize to 0 at (%d,%d)", x, y)
		}
	}
}

// TestField_NormalizedLeavesReceiver verifies immutability: normalizing
// returns a copy and the original field keeps its values and extrema.
func TestField_NormalizedLeavesReceiver(t *testing.T) {
	f, err := heightfield.Sample(modulation.NewCosineWave(1, 1), heightfield.Options{Width: 5, Height: 5})
	require.NoError(t, err)

	before := f.At(0, 0)
	_ = f.Normalized()
	assert.Equal(t, before, f.At(0, 0), "receiver cell must be untouched")
	assert.Equal(t, 1.0, f.Max(), "receiver extrema must be untouched")
}
