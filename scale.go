package orbital

// UnitScale converts between real-world SI quantities and the display units
// of the consuming render loop. It is one linear factor applied uniformly to
// lengths, velocities, accelerations and forces; the controller takes it as
// an explicit dependency, never as ambient global state.
type UnitScale struct {
	MetersPerSimUnit float64
}

// IdentityScale maps one simulation unit to one meter.
var IdentityScale = UnitScale{1}

// ToSim converts a real-world scalar to simulation units.
func (u UnitScale) ToSim(real float64) float64 {
	return real / u.MetersPerSimUnit
}

// ToReal converts a simulation-unit scalar to real-world units.
func (u UnitScale) ToReal(sim float64) float64 {
	return sim * u.MetersPerSimUnit
}

// ToSimVec converts a real-world vector to simulation units.
func (u UnitScale) ToSimVec(real []float64) []float64 {
	return scaled(real, 1/u.MetersPerSimUnit)
}

// ToRealVec converts a simulation-unit vector to real-world units.
func (u UnitScale) ToRealVec(sim []float64) []float64 {
	return scaled(sim, u.MetersPerSimUnit)
}
