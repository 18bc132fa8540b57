// Package heightfield samples a modulation over a discrete W×H grid,
// producing an immutable in-memory height field.
//
// What:
//
//   - Sample evaluates a modulation.Modulation at every lattice point of
//     the unit square, inclusive of both edges: u = x/(W-1), v = y/(H-1).
//   - Field stores the results row-major with O(1) accessors and the
//     extrema observed during sampling.
//   - Normalized rescales a field affinely onto [0,1] — the consumer-side
//     remedy for modulations whose range escapes the unit interval.
//
// Why:
//
//   - Terrain tiles: bake a layered modulation into a reusable grid.
//   - Inspection: Min/Max expose the actual dynamic range of a stack.
//   - Downstream displacement: a plain []float64 grid is the natural
//     hand-off point to whatever consumes the heights.
//
// Complexity:
//
//   - Sample:     O(W×H × cost(Offset)), Memory: O(W×H).
//   - At/UV:      O(1).
//   - Normalized: O(W×H), Memory: O(W×H).
//
// Options:
//
//   - Options.Width, Options.Height: samples per axis, minimum 2 each
//     (both edges of [0,1] are included).
//
// Errors:
//
//   - ErrNilModulation: Sample received a nil modulation.
//   - ErrBadResolution: Width or Height below 2.
//
// See examples in example_test.go.
package heightfield
