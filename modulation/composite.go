package modulation

// Offset returns A.Offset(u,v) + B.Offset(u,v), exactly.
//
// The range of the sum is the sum of the children's ranges; composing two
// basic waves therefore lands in [0,2], not [0,1]. Rescale on the consumer
// side if a normalized range is required.
// Complexity: O(cost(A) + cost(B)).
func (c Composite) Offset(u, v float64) float64 {
	return c.A.Offset(u, v) + c.B.Offset(u, v)
}
