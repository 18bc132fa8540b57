// Package surfmod is a small toolkit for procedurally perturbing parametric
// surfaces — stateless wave evaluators over normalized (u,v) coordinates,
// plus a discrete sampling layer for turning them into height grids.
//
// 🚀 What is surfmod?
//
//	A tiny, thread-safe library that brings together:
//		• Wave modulations: sine, cosine, triangle — normalized height offsets
//		• Harmonic layering: CombinedSineWave, a partial Fourier-style sum
//		• Composition: sum any two modulations with Composite
//		• Sampling: evaluate a modulation over a W×H grid into a Field
//
// ✨ Why choose surfmod?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable value types, safe under concurrency
//   - Pure Go – no cgo, no hidden deps
//   - Predictable ranges – basic waves land in [0,1]; see each type's docs
//
// Under the hood, everything is organized under two subpackages:
//
//	modulation/  — the Modulation interface and its wave variants
//	heightfield/ — grid sampling of a Modulation into an immutable Field
//
// Quick ASCII example:
//
//	offset
//	1.0 ┤  ╭─╮       ╭─╮
//	    │ ╱   ╲     ╱   ╲
//	0.5 ┼╱─────╲───╱─────╲▶ u
//	    0      0.5       1
//
//	one axis of SineWave with RepeatU=2: two full cycles across [0,1].
//
// Dive into examples/ for runnable scenarios: layered terrain offsets and
// grid sampling with normalization.
//
//	go get github.com/katalvlaran/surfmod/modulation
package surfmod
