package orbital

import (
	kitlog "github.com/go-kit/kit/log"
)

// Spacecraft defines a vehicle orbiting a central body. It owns the Cartesian
// state and a lazily computed orbital-element cache.
//
// The element cache is only valid for the origin body it was computed
// against: every direct mutation of position or velocity (thrust impulse,
// manual reposition, collision rebound) goes through SetState and marks it
// dirty. The one exception is the Keplerian propagator's own true-anomaly
// update, written back via setKeplerState.
type Spacecraft struct {
	Name     string
	DryMass  float64 // kg
	FuelMass float64 // kg
	R        []float64
	V        []float64

	orbit      *Orbit
	orbitValid bool
	logger     kitlog.Logger
}

// NewSpacecraft returns a spacecraft from an initial state.
func NewSpacecraft(name string, dryMass, fuelMass float64, R, V []float64, logger kitlog.Logger) *Spacecraft {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	logger = kitlog.With(logger, "spacecraft", name)
	return &Spacecraft{Name: name, DryMass: dryMass, FuelMass: fuelMass, R: R, V: V, logger: logger}
}

// Mass returns the total wet mass in kg.
func (s *Spacecraft) Mass() float64 {
	return s.DryMass + s.FuelMass
}

// SetState overwrites position and velocity and invalidates the cached
// orbital elements.
func (s *Spacecraft) SetState(R, V []float64) {
	s.R = R
	s.V = V
	s.orbitValid = false
}

// setKeplerState carries the analytically propagated state back without
// invalidating the cache: the propagator already updated the true anomaly of
// the cached orbit, so elements and state agree.
func (s *Spacecraft) setKeplerState(R, V []float64) {
	s.R = R
	s.V = V
}

// Elements returns the orbital elements for the current state around the
// given body, recomputing them only when the cache is dirty or the body
// changed.
func (s *Spacecraft) Elements(body CelestialObject) *Orbit {
	if s.orbitValid && s.orbit.Origin.Equals(body) {
		return s.orbit
	}
	s.orbit = NewOrbitFromRV(s.R, s.V, body)
	s.orbitValid = true
	return s.orbit
}

// InvalidateOrbit marks the cached elements dirty. Exposed for callers which
// mutate R or V in place.
func (s *Spacecraft) InvalidateOrbit() {
	s.orbitValid = false
}
