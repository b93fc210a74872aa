package orbital

import (
	"errors"
	"fmt"
	"math"

	"github.com/gonum/floats"
)

const (
	// eccentricityε is the threshold below which an orbit is treated as circular.
	eccentricityε = 1e-6
	// parabolicε is the half-width of the band around e=1 treated as parabolic.
	parabolicε = 1e-4
	// nodeε is the threshold on the normalized node vector length below which
	// an orbit is treated as equatorial.
	nodeε = 1e-6
	// angleε is the angular comparison tolerance (0.005 degrees).
	angleε = (5e-3 / 360) * (2 * math.Pi)
	// distanceε is the semi-major axis comparison tolerance (20 km).
	distanceε = 2e4
	// velocityε is the velocity comparison tolerance in m/s.
	velocityε = 1e-3
)

// Orbit defines an orbit via its orbital elements around a given origin body.
// The semi-parameter is stored alongside the classical elements so that the
// geometry stays finite for parabolic orbits (a = +Inf).
type Orbit struct {
	a, e, i, Ω, ω, ν float64
	p                float64
	Origin           CelestialObject
	cacheHash        float64
	cachedR, cachedV []float64
}

// Eccentricity returns the eccentricity, always >= 0.
func (o Orbit) Eccentricity() float64 {
	return o.e
}

// SemiMajorAxis returns the semi-major axis in meters. It is +Inf for a
// parabolic orbit and negative for a hyperbolic one.
func (o Orbit) SemiMajorAxis() float64 {
	return o.a
}

// Inclination returns the inclination in radians.
func (o Orbit) Inclination() float64 {
	return o.i
}

// RAAN returns the longitude of the ascending node in radians.
func (o Orbit) RAAN() float64 {
	return o.Ω
}

// ArgPeriapsis returns the argument of periapsis in radians.
func (o Orbit) ArgPeriapsis() float64 {
	return o.ω
}

// TrueAnomaly returns the true anomaly in [0, 2π).
func (o Orbit) TrueAnomaly() float64 {
	return o.ν
}

// Energyξ returns the specific mechanical energy ξ in J/kg. It is zero for a
// parabolic orbit and positive for a hyperbolic one.
func (o Orbit) Energyξ() float64 {
	return -o.Origin.μ / (2 * o.a)
}

// SemiParameter returns the semi-parameter (semi-latus rectum) in meters.
func (o Orbit) SemiParameter() float64 {
	return o.p
}

// Periapsis returns the periapsis radius in meters. The p/(1+e) form holds
// for all conics, unlike a(1-e).
func (o Orbit) Periapsis() float64 {
	return o.p / (1 + o.e)
}

// Apoapsis returns the apoapsis radius in meters, +Inf for parabolic and
// hyperbolic orbits.
func (o Orbit) Apoapsis() float64 {
	if o.e >= 1-parabolicε {
		return math.Inf(1)
	}
	return o.p / (1 - o.e)
}

// Period returns the orbital period in seconds, +Inf for non-elliptical orbits.
func (o Orbit) Period() float64 {
	if o.e >= 1-parabolicε || math.IsInf(o.a, 0) {
		return math.Inf(1)
	}
	return 2 * math.Pi * math.Sqrt(math.Pow(o.a, 3)/o.Origin.μ)
}

// MeanMotion returns the mean motion n in rad/s. Only meaningful for
// elliptical orbits.
func (o Orbit) MeanMotion() float64 {
	return math.Sqrt(o.Origin.μ / math.Pow(o.a, 3))
}

// Tildeω returns the longitude of periapsis.
func (o Orbit) Tildeω() float64 {
	return normAngle(o.ω + o.Ω)
}

// TrueLongλ returns the approximate true longitude, measured from the x-axis.
// NOTE: One should only need this for equatorial orbits.
func (o Orbit) TrueLongλ() float64 {
	return normAngle(o.ω + o.Ω + o.ν)
}

// ArgLatitudeU returns the argument of latitude.
func (o Orbit) ArgLatitudeU() float64 {
	return normAngle(o.ν + o.ω)
}

// H returns the orbital angular momentum vector in m^2/s.
func (o *Orbit) H() []float64 {
	return cross(o.RV())
}

// HNorm returns the norm of the orbital angular momentum without computing
// the vector itself.
func (o Orbit) HNorm() float64 {
	return math.Sqrt(o.Origin.μ * o.p)
}

// EVector returns the eccentricity vector, pointing from the focus toward
// periapsis with magnitude e.
func (o Orbit) EVector() []float64 {
	return PQW2ECI(o.i, o.ω, o.Ω, []float64{o.e, 0, 0})
}

// PlaneNormal returns the unit normal of the orbital plane.
func (o Orbit) PlaneNormal() []float64 {
	return PQW2ECI(o.i, o.ω, o.Ω, []float64{0, 0, 1})
}

// RV returns the radius and velocity vectors in the reference frame, reusing
// the cache when the elements have not changed since the last call.
func (o *Orbit) RV() ([]float64, []float64) {
	if o.hashValid() {
		return o.cachedR, o.cachedV
	}
	sinν, cosν := math.Sincos(o.ν)
	r := o.p / (1 + o.e*cosν)
	R := PQW2ECI(o.i, o.ω, o.Ω, []float64{r * cosν, r * sinν, 0})

	vFact := math.Sqrt(o.Origin.μ / o.p)
	V := PQW2ECI(o.i, o.ω, o.Ω, []float64{-vFact * sinν, vFact * (o.e + cosν), 0})

	o.cachedR = R
	o.cachedV = V
	o.computeHash()
	return R, V
}

// R returns the radius vector.
func (o *Orbit) R() (R []float64) {
	R, _ = o.RV()
	return R
}

// RNorm returns the norm of the radius vector, but without computing the
// radius vector. If only the norm is needed, use this instead of norm(o.R()).
func (o Orbit) RNorm() float64 {
	return o.p / (1 + o.e*math.Cos(o.ν))
}

// V returns the velocity vector.
func (o *Orbit) V() (V []float64) {
	_, V = o.RV()
	return V
}

// VNorm returns the norm of the velocity vector, but without computing the
// velocity vector. If only the norm is needed, use this instead of norm(o.V()).
func (o Orbit) VNorm() float64 {
	if floats.EqualWithinAbs(o.e, 0, eccentricityε) {
		return math.Sqrt(o.Origin.μ / o.RNorm())
	}
	if floats.EqualWithinAbs(o.e, 1, parabolicε) {
		return math.Sqrt(2 * o.Origin.μ / o.RNorm())
	}
	return math.Sqrt(2 * (o.Origin.μ/o.RNorm() + o.Energyξ()))
}

// Elements returns the six classical orbital elements.
func (o *Orbit) Elements() (a, e, i, Ω, ω, ν float64) {
	return o.a, o.e, o.i, o.Ω, o.ω, o.ν
}

func (o *Orbit) computeHash() {
	o.cacheHash = o.ω + o.ν + o.Ω + o.i + o.e + o.p
}

func (o Orbit) hashValid() bool {
	return o.cacheHash == o.ω+o.ν+o.Ω+o.i+o.e+o.p
}

// String implements the stringer interface (hence the value receiver).
func (o Orbit) String() string {
	if o.e < eccentricityε {
		if o.i > angleε {
			return fmt.Sprintf("a=%.0f e=%.6f i=%.3f Ω=%.3f u=%.3f", o.a, o.e, Rad2deg(o.i), Rad2deg(o.Ω), Rad2deg(o.ArgLatitudeU()))
		}
		return fmt.Sprintf("a=%.0f e=%.6f i=%.3f λ=%.3f", o.a, o.e, Rad2deg(o.i), Rad2deg(o.TrueLongλ()))
	}
	return fmt.Sprintf("a=%.0f e=%.6f i=%.3f Ω=%.3f ω=%.3f ν=%.3f", o.a, o.e, Rad2deg(o.i), Rad2deg(o.Ω), Rad2deg(o.ω), Rad2deg(o.ν))
}

// Equals returns whether two orbits are identical with free true anomaly.
// Use StrictlyEquals to also check true anomaly.
func (o Orbit) Equals(o1 Orbit) (bool, error) {
	if !o.Origin.Equals(o1.Origin) {
		return false, errors.New("different origin")
	}
	if !floats.EqualWithinAbs(o.a, o1.a, distanceε) {
		return false, errors.New("semi-major axis invalid")
	}
	if !floats.EqualWithinAbs(o.e, o1.e, 5e-5) {
		return false, errors.New("eccentricity invalid")
	}
	if !floats.EqualWithinAbs(o.i, o1.i, angleε) {
		return false, errors.New("inclination invalid")
	}
	if o.i > angleε && !floats.EqualWithinAbs(o.Ω, o1.Ω, angleε) {
		return false, errors.New("RAAN invalid")
	}
	if o.e < eccentricityε {
		// Circular: the argument of periapsis is undefined, compare the
		// argument of latitude instead.
		if !floats.EqualWithinAbs(o.ArgLatitudeU(), o1.ArgLatitudeU(), angleε) {
			return false, errors.New("argument of latitude invalid")
		}
	} else if !floats.EqualWithinAbs(o.ω, o1.ω, angleε) {
		return false, errors.New("argument of periapsis invalid")
	}
	return true, nil
}

// StrictlyEquals returns whether two orbits are identical.
func (o Orbit) StrictlyEquals(o1 Orbit) (bool, error) {
	if o.e > eccentricityε && !floats.EqualWithinAbs(o.ν, o1.ν, angleε) {
		return false, errors.New("true anomaly invalid")
	}
	return o.Equals(o1)
}

// NewOrbitFromOE creates an orbit from the classical orbital elements.
// WARNING: Angles must be in degrees not radians.
func NewOrbitFromOE(a, e, i, Ω, ω, ν float64, c CelestialObject) *Orbit {
	orbit := Orbit{a, e, Deg2rad(i), Deg2rad(Ω), Deg2rad(ω), Deg2rad(ν), a * (1 - e*e), c, 0.0, nil, nil}
	orbit.RV()
	return &orbit
}

// NewOrbitFromRV returns the orbital elements from the radius and velocity
// vectors, relative to the center of the origin body (Vallado's RV2COE).
// Circular and equatorial orbits fall back to measuring the undefined angles
// from the node line or the x-axis; an eccentricity within parabolicε of 1
// yields a = +Inf.
func NewOrbitFromRV(R, V []float64, c CelestialObject) *Orbit {
	μ := c.μ
	hVec := cross(R, V)
	h := norm(hVec)
	r := norm(R)
	v := norm(V)

	ξ := v*v/2 - μ/r
	a := -μ / (2 * ξ)
	p := h * h / μ

	// Eccentricity vector e = (v × h)/μ − r̂.
	vxh := cross(V, hVec)
	eVec := make([]float64, 3)
	for k := 0; k < 3; k++ {
		eVec[k] = vxh[k]/μ - R[k]/r
	}
	e := norm(eVec)
	if math.Abs(e-1) < parabolicε {
		a = math.Inf(1)
	}

	i := math.Acos(hVec[2] / h)
	nVec := cross([]float64{0, 0, 1}, unit(hVec))
	nNorm := norm(nVec)

	var Ω, ω, ν float64
	circular := e < eccentricityε
	equatorial := nNorm < nodeε
	switch {
	case circular && equatorial:
		// Both the node line and the periapsis direction are undefined:
		// measure the true anomaly from the x-axis.
		ν = math.Atan2(R[1], R[0])
	case circular:
		// Periapsis undefined: measure the true anomaly from the node.
		Ω = math.Acos(nVec[0] / nNorm)
		if nVec[1] < 0 {
			Ω = 2*math.Pi - Ω
		}
		cosu := dot(nVec, R) / (nNorm * r)
		if math.Abs(cosu) > 1 {
			cosu = sign(cosu)
		}
		ν = math.Acos(cosu)
		if R[2] < 0 {
			ν = 2*math.Pi - ν
		}
	case equatorial:
		// Node undefined: measure the argument of periapsis from the x-axis.
		ω = math.Atan2(eVec[1], eVec[0])
		ν = trueAnomalyFromEVec(eVec, R, V, e, r)
	default:
		Ω = math.Acos(nVec[0] / nNorm)
		if nVec[1] < 0 {
			Ω = 2*math.Pi - Ω
		}
		cosω := dot(nVec, eVec) / (nNorm * e)
		if math.Abs(cosω) > 1 {
			cosω = sign(cosω)
		}
		ω = math.Acos(cosω)
		if eVec[2] < 0 {
			ω = 2*math.Pi - ω
		}
		ν = trueAnomalyFromEVec(eVec, R, V, e, r)
	}

	orbit := Orbit{a, e, normAngle(i), normAngle(Ω), normAngle(ω), normAngle(ν), p, c, 0.0, R, V}
	orbit.computeHash()
	return &orbit
}

// trueAnomalyFromEVec returns the angle between the eccentricity vector and
// the radius vector, reflected into the upper half of [0, 2π) when the
// spacecraft is past apoapsis (r·v < 0).
func trueAnomalyFromEVec(eVec, R, V []float64, e, r float64) float64 {
	cosν := dot(eVec, R) / (e * r)
	if abscosν := math.Abs(cosν); abscosν > 1 && floats.EqualWithinAbs(abscosν, 1, 1e-12) {
		// Rounding can push the cosine barely out of [-1, 1], which turns
		// math.Acos into NaN.
		cosν = sign(cosν)
	}
	ν := math.Acos(cosν)
	if dot(R, V) < 0 {
		ν = 2*math.Pi - ν
	}
	return ν
}

// Helper functions go here.

// Radii2ae returns the semi-major axis and the eccentricity from the radii.
func Radii2ae(rA, rP float64) (a, e float64) {
	if rA < rP {
		panic("periapsis cannot be greater than apoapsis")
	}
	a = (rP + rA) / 2
	e = (rA - rP) / (rA + rP)
	return
}
