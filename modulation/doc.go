// Package modulation computes scalar height offsets over normalized (u,v)
// surface coordinates, for procedurally perturbing parametric surfaces.
//
// 🚀 What is a modulation?
//
//	A pure function Offset(u, v) → float64. Each variant is an immutable
//	value type configured at construction; evaluating it has no side
//	effects and no failure modes. Widely useful for:
//	  • Terrain & heightmap perturbation
//	  • Displacement of procedural meshes
//	  • Animated surface ripple fields (drive u or v with time)
//	  • Layered, Fourier-style surface texture
//
// ✨ Key features:
//   - SineWave / CosineWave / TriangleWave: periodic offsets in [0,1]
//   - CombinedSineWave: per-axis harmonic series of decaying amplitude
//   - Composite: sum two modulations (children may be shared freely)
//   - NoOp: the zero modulation, handy as a neutral layer
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/surfmod/modulation"
//
//	ripple := modulation.NewSineWave(4, 4)
//	swell := modulation.NewCosineWave(1, 1)
//	height := modulation.NewComposite(ripple, swell)
//
//	h := height.Offset(0.25, 0.75) // sum of both layers at (u,v)
//
// Conventions:
//
//   - u and v are conventionally in [0,1]; no clamping is performed.
//     Out-of-range inputs simply wrap through the periodic formulas.
//   - Repeat counts set how many full cycles span the [0,1] range.
//   - Non-finite inputs propagate through math.Sin/math.Cos as usual
//     (typically NaN); they are not treated specially.
//
// Ranges:
//
//   - SineWave and CosineWave return values in [0,1] (each axis term
//     contributes [0,0.5]). TriangleWave returns values in [0.5,1].
//   - CombinedSineWave is NOT bounded by 1 once a repeat count exceeds 1:
//     harmonic terms accumulate without renormalization. Rescale on the
//     consumer side if a normalized range is required (see the
//     heightfield package's Normalized).
//
// Concurrency:
//
//	Every variant is stateless after construction. Any number of
//	goroutines may call Offset on the same value, including through a
//	shared Composite, without synchronization.
//
// Complexity:
//
//   - Offset: O(1) for all variants except CombinedSineWave, which is
//     O(RepeatU + RepeatV).
//
// See examples in example_test.go and runnable scenarios in examples/.
package modulation
