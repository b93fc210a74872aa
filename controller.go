package orbital

import (
	kitlog "github.com/go-kit/kit/log"
)

// PropagationMode defines an enum of propagation models.
type PropagationMode uint8

const (
	// Idle means no central body is attached, nothing moves.
	Idle PropagationMode = iota
	// Numerical integrates gravity (and thrust) with semi-implicit Euler.
	Numerical
	// Keplerian advances the orbit analytically via Kepler's equation.
	Keplerian
)

func (m PropagationMode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Numerical:
		return "numerical"
	case Keplerian:
		return "keplerian"
	}
	panic("cannot stringify unknown propagation mode")
}

// TimeWarpLevels is the default ascending set of time-acceleration factors.
var TimeWarpLevels = []float64{1, 2, 5, 10, 50, 100, 1000}

// ThrustCommand is the per-tick thrust input from the vehicle model: whether
// the engine is lit, its thrust in Newtons, and the vehicle's forward-axis
// unit vector in the reference frame.
type ThrustCommand struct {
	Engaged   bool
	Magnitude float64
	Direction []float64
}

// PropagationController orchestrates the per-tick physics of one spacecraft
// around one central body: it picks the analytic or the numerical model,
// substeps thrust under time acceleration, and resolves surface collisions.
//
// Single-threaded by design: one call to Tick per rendered frame, which runs
// the full read-compute-write sequence before returning. Callers driving it
// from several goroutines must serialize Tick and the setters themselves.
type PropagationController struct {
	sc    *Spacecraft
	body  *CelestialObject
	scale UnitScale
	cfg   Config
	kp    *KeplerianPropagator

	warp   float64
	thrust ThrustCommand
	mode   PropagationMode
	logger kitlog.Logger
}

// NewPropagationController wires a controller from its collaborators. A nil
// body leaves the controller in Idle until SetCentralBody is called.
func NewPropagationController(sc *Spacecraft, body *CelestialObject, scale UnitScale, cfg Config, logger kitlog.Logger) *PropagationController {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &PropagationController{
		sc:     sc,
		body:   body,
		scale:  scale,
		cfg:    cfg,
		kp:     NewKeplerianPropagator(logger),
		warp:   1,
		mode:   Idle,
		logger: logger,
	}
}

// SetCentralBody attaches (or replaces) the gravitating body. The element
// cache of the spacecraft is invalidated since it was computed against the
// previous frame.
func (c *PropagationController) SetCentralBody(body *CelestialObject) {
	c.body = body
	c.sc.InvalidateOrbit()
	c.mode = Numerical
}

// SetTimeWarp sets the time-acceleration factor, effective from the next
// tick. Factors below 1 are clamped to 1.
func (c *PropagationController) SetTimeWarp(factor float64) {
	if factor < 1 {
		factor = 1
	}
	c.warp = factor
}

// TimeWarp returns the current time-acceleration factor.
func (c *PropagationController) TimeWarp() float64 {
	return c.warp
}

// SetThrust sets the thrust command consumed by subsequent ticks.
func (c *PropagationController) SetThrust(cmd ThrustCommand) {
	c.thrust = cmd
}

// Mode returns the propagation mode after the last tick.
func (c *PropagationController) Mode() PropagationMode {
	return c.mode
}

// DisplayState returns the current position and velocity in display units
// for the render layer.
func (c *PropagationController) DisplayState() (R, V []float64) {
	return c.scale.ToSimVec(c.sc.R), c.scale.ToSimVec(c.sc.V)
}

// Elements exposes the current orbital elements for the display layer,
// recomputing them if the cache is dirty.
func (c *PropagationController) Elements() *Orbit {
	return c.sc.Elements(*c.body)
}

// Tick advances the simulation by dt seconds of wall-clock time, scaled by
// the time-warp factor. The collision check runs on every tick regardless of
// mode; a collision overwrites the state and forces subsequent ticks into
// the numerical model.
func (c *PropagationController) Tick(dt float64) {
	if c.body == nil {
		c.mode = Idle
		return
	}
	warped := dt * c.warp

	// Keplerian propagation only applies when coasting under time
	// acceleration, and only to elliptical orbits.
	if !c.thrust.Engaged && c.warp > 1 {
		o := c.sc.Elements(*c.body)
		if R, V, err := c.kp.Propagate(o, warped); err == nil {
			c.setMode(Keplerian)
			c.sc.setKeplerState(R, V)
			c.checkCollision()
			return
		}
		// Not applicable (non-elliptical): integrate below instead.
	}

	c.setMode(Numerical)
	c.integrate(warped)
	c.checkCollision()
}

// integrate advances the state with semi-implicit Euler: v += a·h then
// x += v·h. Under time acceleration the warped delta is subdivided into
// equal substeps (capped by Config.MaxSubsteps) and the thrust impulse is
// applied on the first substep only, so a per-second thrust rate is not
// multiplied across a compressed timestep.
func (c *PropagationController) integrate(warped float64) {
	steps := 1
	if c.warp > 1 && c.cfg.MaxSubsteps > 1 {
		steps = c.cfg.MaxSubsteps
	}
	h := warped / float64(steps)

	R := append([]float64(nil), c.sc.R...)
	V := append([]float64(nil), c.sc.V...)
	for k := 0; k < steps; k++ {
		if k == 0 && c.thrust.Engaged && c.sc.Mass() > 0 {
			aThrust := c.thrust.Magnitude / c.sc.Mass()
			V = added(V, scaled(unit(c.thrust.Direction), aThrust*h))
		}
		V = added(V, scaled(GravityAccel(*c.body, R), h))
		R = added(R, scaled(V, h))
	}
	c.sc.SetState(R, V)
}

func (c *PropagationController) checkCollision() {
	newR, newV, collided := ResolveCollision(c.sc.R, c.sc.V, *c.body, c.cfg.ReboundDamping)
	if !collided {
		return
	}
	// The rebound is an impulsive velocity change: the elliptical-orbit
	// assumption no longer holds, so SetState invalidates the elements and
	// the mode drops to numerical.
	c.sc.SetState(newR, newV)
	c.setMode(Numerical)
	c.logger.Log("level", "critical", "subsys", "astro", "collided", c.body.Name, "r", norm(newR), "radius", c.body.Radius)
}

func (c *PropagationController) setMode(m PropagationMode) {
	if c.mode == m {
		return
	}
	c.logger.Log("level", "info", "subsys", "astro", "mode", m, "from", c.mode)
	c.mode = m
}
