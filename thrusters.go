package orbital

// Thruster defines an engine which supplies an impulsive thrust to the
// propagation controller.
type Thruster interface {
	// Thrust returns the rated thrust in Newtons.
	Thrust() float64
	// Isp returns the specific impulse in seconds.
	Isp() float64
}

/* Available thrusters */

// R4D is the Aerojet R-4D bipropellant apogee engine.
type R4D struct{}

// Thrust implements the Thruster interface.
func (t *R4D) Thrust() float64 {
	return 490
}

// Isp implements the Thruster interface.
func (t *R4D) Isp() float64 {
	return 312
}

// Merlin1D is the SpaceX Merlin 1D vacuum variant.
type Merlin1D struct{}

// Thrust implements the Thruster interface.
func (t *Merlin1D) Thrust() float64 {
	return 981e3
}

// Isp implements the Thruster interface.
func (t *Merlin1D) Isp() float64 {
	return 348
}

// GenericThruster is a catch-all engine.
type GenericThruster struct {
	thrust float64
	isp    float64
}

// Thrust implements the Thruster interface.
func (t *GenericThruster) Thrust() float64 {
	return t.thrust
}

// Isp implements the Thruster interface.
func (t *GenericThruster) Isp() float64 {
	return t.isp
}

// NewGenericThruster returns a generic engine of the given thrust (N) and
// specific impulse (s).
func NewGenericThruster(thrust, isp float64) *GenericThruster {
	return &GenericThruster{thrust, isp}
}

// Command builds a ThrustCommand firing the given thruster along the
// direction unit vector.
func Command(t Thruster, direction []float64) ThrustCommand {
	return ThrustCommand{Engaged: true, Magnitude: t.Thrust(), Direction: direction}
}
