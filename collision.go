package orbital

const (
	// surfaceBuffer relocates a collided object slightly above the surface so
	// the contact does not re-trigger on the next tick.
	surfaceBuffer = 1.01
	// reboundDamping is the default velocity damping of a surface rebound.
	reboundDamping = 0.5
)

// ResolveCollision checks the position against the surface of the central
// body and, on interpenetration, returns the rebound state: the object is
// relocated to surfaceBuffer times the body radius along the surface normal
// and its velocity is reflected about that normal, damped by the given
// factor (pass a negative damping to use the default).
//
// A collision is an expected, recoverable event, not an error. It is however
// an impulsive velocity change: the caller must invalidate any cached orbital
// elements and propagate numerically afterwards.
func ResolveCollision(R, V []float64, body CelestialObject, damping float64) (newR, newV []float64, collided bool) {
	if norm(R) >= body.Radius {
		return nil, nil, false
	}
	if damping < 0 {
		damping = reboundDamping
	}
	n := unit(R)
	newR = scaled(n, body.Radius*surfaceBuffer)
	// v' = v - 2(v·n̂)n̂, then damp.
	vDotN := dot(V, n)
	newV = make([]float64, 3)
	for k := 0; k < 3; k++ {
		newV[k] = (V[k] - 2*vDotN*n[k]) * damping
	}
	return newR, newV, true
}
