// Package modulation defines the Modulation capability and its concrete
// wave variants for the surfmod library.
package modulation

// Modulation computes a scalar height offset at a normalized surface
// coordinate pair. Implementations are immutable value types: Offset is a
// pure function of (u, v) and the construction-time parameters, safe for
// unsynchronized concurrent use.
//
// u and v are conventionally in [0,1]; values outside that range are
// accepted and wrap through the underlying periodic formulas. The returned
// offset is nominally normalized to [0,1] — see each variant for its exact
// range.
type Modulation interface {
	// Offset returns the height offset at (u, v).
	Offset(u, v float64) float64
}

// NoOp is the zero modulation: Offset always returns 0.
// Useful as a neutral layer when composing.
type NoOp struct{}

// NewNoOp returns the zero modulation.
func NewNoOp() NoOp {
	return NoOp{}
}

// SineWave offsets the surface by a sine wave along each axis.
// RepeatU and RepeatV set how many full cycles span the [0,1] range of u
// and v respectively. Each axis term lies in [0,0.5], so Offset ∈ [0,1].
type SineWave struct {
	RepeatU, RepeatV int
}

// NewSineWave returns a SineWave with the given per-axis repeat counts.
func NewSineWave(repeatU, repeatV int) SineWave {
	return SineWave{RepeatU: repeatU, RepeatV: repeatV}
}

// CosineWave offsets the surface by a cosine wave along each axis.
// Identical in shape to SineWave, phase-shifted by a quarter cycle;
// Offset ∈ [0,1].
type CosineWave struct {
	RepeatU, RepeatV int
}

// NewCosineWave returns a CosineWave with the given per-axis repeat counts.
func NewCosineWave(repeatU, repeatV int) CosineWave {
	return CosineWave{RepeatU: repeatU, RepeatV: repeatV}
}

// TriangleWave approximates a triangle wave along each axis by folding a
// sine through its absolute value. Each axis term lies in [0.25,0.5], so
// Offset ∈ [0.5,1].
type TriangleWave struct {
	RepeatU, RepeatV int
}

// NewTriangleWave returns a TriangleWave with the given per-axis repeat counts.
func NewTriangleWave(repeatU, repeatV int) TriangleWave {
	return TriangleWave{RepeatU: repeatU, RepeatV: repeatV}
}

// Composite sums the offsets of two modulations. A and B are held as
// shared, read-only references: the same child may participate in any
// number of composites (or be used on its own) at the same time.
type Composite struct {
	A, B Modulation
}

// NewComposite returns a Composite summing a and b. Both children must
// already exist; they are referenced, not copied.
func NewComposite(a, b Modulation) Composite {
	return Composite{A: a, B: b}
}

// CombinedSineWave layers a per-axis harmonic series: RepeatU (resp.
// RepeatV) sine harmonics of decaying amplitude 1/(i+1) along u (resp. v),
// approximating a richer, less purely periodic surface texture.
//
// Unlike the basic waves, the result is NOT bounded by 1 once a repeat
// count exceeds 1: harmonic terms accumulate without renormalization.
//
// RepeatU2 and RepeatV2 are stored but do not participate in the formula.
// TODO(katalvlaran): decide whether the secondary counts should drive a
// second harmonic series or be removed; kept as-is to preserve the
// established output of existing callers.
type CombinedSineWave struct {
	RepeatU, RepeatV   int
	RepeatU2, RepeatV2 int
}

// NewCombinedSineWave returns a CombinedSineWave with the given harmonic
// counts. See the type docs for the role (and non-role) of each parameter.
func NewCombinedSineWave(repeatU, repeatV, repeatU2, repeatV2 int) CombinedSineWave {
	return CombinedSineWave{
		RepeatU:  repeatU,
		RepeatV:  repeatV,
		RepeatU2: repeatU2,
		RepeatV2: repeatV2,
	}
}
