package modulation

import "math"

// twoPi is the angular span of one full cycle.
const twoPi = 2 * math.Pi

// sineTerm maps one axis through a sine cycle into [0,0.5]:
// (sin(coord·2π·repeat)+1)·0.25. Shared by SineWave and CombinedSineWave.
// Complexity: O(1).
func sineTerm(coord float64, repeat int) float64 {
	return (math.Sin(coord*twoPi*float64(repeat)) + 1) * 0.25
}

// Offset always returns 0.
func (NoOp) Offset(_, _ float64) float64 {
	return 0
}

// Offset returns the summed sine terms of both axes.
//
// Formula: (sin(u·2π·RepeatU)+1)·0.25 + (sin(v·2π·RepeatV)+1)·0.25.
// Each periodic term is mapped from [-1,1] into [0,0.5] so the two-axis
// sum lands in [0,1].
// Complexity: O(1).
func (s SineWave) Offset(u, v float64) float64 {
	return sineTerm(u, s.RepeatU) + sineTerm(v, s.RepeatV)
}

// Offset returns the summed cosine terms of both axes.
//
// Formula: (cos(u·2π·RepeatU)+1)·0.25 + (cos(v·2π·RepeatV)+1)·0.25.
// Same affine mapping as SineWave; Offset(0,0) peaks at 1 since cos(0)=1
// on both axes.
// Complexity: O(1).
func (c CosineWave) Offset(u, v float64) float64 {
	angleU := u * twoPi * float64(c.RepeatU)
	angleV := v * twoPi * float64(c.RepeatV)

	return (math.Cos(angleU)+1)*0.25 + (math.Cos(angleV)+1)*0.25
}

// Offset returns the summed folded-sine terms of both axes.
//
// Formula: (|sin(u·2π·RepeatU)|+1)·0.25 + (|sin(v·2π·RepeatV)|+1)·0.25.
// Folding through the absolute value doubles the apparent frequency and
// restricts each axis term to [0.25,0.5], so Offset ∈ [0.5,1].
// Complexity: O(1).
func (t TriangleWave) Offset(u, v float64) float64 {
	angleU := u * twoPi * float64(t.RepeatU)
	angleV := v * twoPi * float64(t.RepeatV)

	return (math.Abs(math.Sin(angleU))+1)*0.25 + (math.Abs(math.Sin(angleV))+1)*0.25
}
