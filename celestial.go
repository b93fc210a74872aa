package orbital

import (
	"fmt"
	"strings"
)

const (
	// G is the universal gravitational constant in m^3/(kg*s^2) (CODATA 2018).
	G = 6.6743e-11
	// AU is one astronomical unit in meters.
	AU = 1.49597870700e11
	// EarthRotationRate is the average Earth rotation rate in radians per second.
	EarthRotationRate = 7.2921158553e-5
)

// CelestialObject defines a celestial object acting as the gravitating central
// body of a simulation. Its position is pinned to the origin of the reference
// frame; the rotation rate is cosmetic and does not affect gravity.
type CelestialObject struct {
	Name     string
	Radius   float64 // Mean equatorial radius in meters
	Mass     float64 // Mass in kg
	μ        float64 // Standard gravitational parameter in m^3/s^2
	RotRate  float64 // Rotation rate in rad/s
	tilt     float64 // Axial tilt in degrees
}

// GM returns μ (which is unexported because it's a lowercase letter).
func (c CelestialObject) GM() float64 {
	return c.μ
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// Equals returns whether the provided celestial object is the same.
func (c *CelestialObject) Equals(b CelestialObject) bool {
	return c.Name == b.Name && c.Radius == b.Radius && c.Mass == b.Mass && c.μ == b.μ
}

// NewBody returns a custom celestial object whose gravitational parameter is
// derived from its mass. Use this for bodies not in the catalog below; the
// catalog bodies carry their published μ instead, which is known to far better
// precision than G times their mass.
func NewBody(name string, mass, radius float64) CelestialObject {
	return CelestialObject{name, radius, mass, G * mass, 0, 0}
}

// CelestialObjectFromString returns the object from its name.
func CelestialObjectFromString(name string) (CelestialObject, error) {
	switch strings.ToLower(name) {
	case "earth":
		return Earth, nil
	case "moon":
		return Moon, nil
	case "mars":
		return Mars, nil
	case "sun":
		return Sun, nil
	default:
		return CelestialObject{}, fmt.Errorf("undefined body '%s'", name)
	}
}

/* Definitions. All values in SI units. */

// Sun is our closest star.
var Sun = CelestialObject{"Sun", 6.957e8, 1.98892e30, 1.32712440018e20, 2.865e-6, 0}

// Earth is home.
var Earth = CelestialObject{"Earth", 6.3781363e6, 5.97219e24, 3.986004418e14, EarthRotationRate, 23.4}

// Moon is Earth's satellite (and not a planet, whatever one may say).
var Moon = CelestialObject{"Moon", 1.7374e6, 7.342e22, 4.9048695e12, 2.6617e-6, 6.68}

// Mars is the vacation place.
var Mars = CelestialObject{"Mars", 3.39619e6, 6.4171e23, 4.282837e13, 7.088218e-5, 25.19}
