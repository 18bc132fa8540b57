package modulation

// Offset returns the per-axis harmonic sums.
//
// Algorithm outline:
//  1. For i = 0..RepeatU-1: accumulate (sin(u·2π·(i+1))+1)·0.25/(i+1).
//  2. For i = 0..RepeatV-1: accumulate (sin(v·2π·(i+1))+1)·0.25/(i+1).
//  3. Return the total.
//
// Harmonic i+1 runs i+1 full cycles across [0,1] at amplitude 1/(i+1) — a
// partial Fourier-style series per axis. With RepeatU=RepeatV=1 this
// degenerates to the plain SineWave formula. The accumulated total is not
// renormalized by the series weight, so results exceed 1 once either
// repeat count does. RepeatU2 and RepeatV2 are never read here (see the
// type docs).
//
// Complexity: O(RepeatU + RepeatV).
func (w CombinedSineWave) Offset(u, v float64) float64 {
	var total float64
	for i := 0; i < w.RepeatU; i++ {
		total += sineTerm(u, i+1) / float64(i+1)
	}
	for i := 0; i < w.RepeatV; i++ {
		total += sineTerm(v, i+1) / float64(i+1)
	}

	return total
}
