package orbital

import "math"

// GravitationalForce returns the force in Newtons exerted on object 1 by
// object 2, with magnitude G*m1*m2/r^2 and direction from 1 toward 2.
// Pure function. If the positions coincide the result is NaN: the caller must
// guard against coincident bodies, this is not a recoverable condition.
func GravitationalForce(mass1, mass2 float64, pos1, pos2 []float64) []float64 {
	sep := []float64{pos2[0] - pos1[0], pos2[1] - pos1[1], pos2[2] - pos1[2]}
	r := norm(sep)
	mag := G * mass1 * mass2 / (r * r)
	return scaled(sep, mag/r)
}

// GravityAccel returns the two-body gravitational acceleration -μ/r^3 * R for
// a position R relative to the center of the given body.
func GravityAccel(body CelestialObject, R []float64) []float64 {
	r := norm(R)
	return scaled(R, -body.GM()/(r*r*r))
}

// VisViva returns the orbital speed at radius r for an orbit of semi-major
// axis a around the given body.
func VisViva(body CelestialObject, r, a float64) float64 {
	return math.Sqrt(body.GM() * (2/r - 1/a))
}
