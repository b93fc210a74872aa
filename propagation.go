package orbital

import (
	"fmt"
	"math"
	"sync"
	"time"

	kitlog "github.com/go-kit/kit/log"
)

const (
	// StepSize is the default step size of offline propagation.
	StepSize = 10 * time.Second
)

/* Handles the offline (headless) astrodynamical propagations. */

// Propagation propagates a spacecraft around its central body over a fixed
// time window with RK4, independently of any render loop. Thrust, when set,
// is held constant over the window. Collisions with the central body are
// resolved with the same rebound model as the frame-driven controller.
type Propagation struct {
	Vehicle                    *Spacecraft // As pointer because the SC state is altered during propagation.
	Orbit                      *Orbit      // As pointer because the orbit changes during propagation.
	Body                       CelestialObject
	StartDT, StopDT, CurrentDT time.Time
	Thrust                     ThrustCommand
	Damping                    float64

	step     time.Duration
	stopChan chan (bool)
	histChan chan<- (State)
	wg       sync.WaitGroup
	done     bool
	logger   kitlog.Logger
}

// State stores a propagated state.
type State struct {
	DT    time.Time
	SC    Spacecraft
	Orbit Orbit
}

// NewPropagation returns a new Propagation instance with the default step size.
func NewPropagation(s *Spacecraft, body CelestialObject, start, end time.Time, conf ExportConfig) *Propagation {
	return NewPrecisePropagation(s, body, start, end, StepSize, conf)
}

// NewPrecisePropagation returns a new Propagation instance with a custom time step.
func NewPrecisePropagation(s *Spacecraft, body CelestialObject, start, end time.Time, step time.Duration, conf ExportConfig) *Propagation {
	p := &Propagation{
		Vehicle:   s,
		Orbit:     NewOrbitFromRV(s.R, s.V, body),
		Body:      body,
		StartDT:   start,
		StopDT:    end,
		CurrentDT: start,
		Damping:   reboundDamping,
		step:      step,
		stopChan:  make(chan (bool), 1),
		logger:    s.logger,
	}
	// If no filename is provided, then no output will be written.
	if !conf.IsUseless() {
		histChan := make(chan (State), 1000) // a 1k entry buffer
		p.histChan = histChan
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			StreamStates(conf, histChan)
		}()
		histChan <- State{p.CurrentDT, *s, *p.Orbit}
	}
	if end.Before(start) {
		p.logger.Log("level", "warning", "subsys", "astro", "message", "no end date")
	}
	return p
}

// LogStatus logs the status of the propagation and vehicle.
func (p *Propagation) LogStatus() {
	p.logger.Log("level", "info", "subsys", "astro", "date", p.CurrentDT, "orbit", p.Orbit)
}

// PropagateUntil propagates until the given time is reached.
func (p *Propagation) PropagateUntil(dt time.Time) {
	p.StopDT = dt
	p.Propagate()
}

// Propagate starts the propagation. Blocking.
func (p *Propagation) Propagate() {
	p.LogStatus()
	vInit := p.Orbit.VNorm()
	NewRK4(0, p.step.Seconds(), p).Solve() // Blocking.
	p.done = true
	vFinal := p.Orbit.VNorm()
	duration := p.CurrentDT.Sub(p.StartDT)
	durStr := duration.String()
	if duration.Hours() > 24 {
		durStr += fmt.Sprintf(" (~%.3fd)", duration.Hours()/24)
	}
	p.logger.Log("level", "notice", "subsys", "astro", "status", "finished", "duration", durStr, "Δv(m/s)", math.Abs(vFinal-vInit))
	p.LogStatus()
	p.wg.Wait() // Don't return until we're done writing all the files.
}

// StopPropagation is used to stop the propagation before it is completed.
func (p *Propagation) StopPropagation() {
	p.stopChan <- true
}

// Stop implements the stop call of the integrator.
func (p *Propagation) Stop(i uint64) bool {
	select {
	case <-p.stopChan:
		if p.histChan != nil {
			close(p.histChan)
		}
		return true // Stop because there is a request to stop.
	default:
		p.CurrentDT = p.CurrentDT.Add(p.step)
		if p.CurrentDT.Sub(p.StopDT).Nanoseconds() > 0 {
			if p.histChan != nil {
				close(p.histChan)
			}
			return true // We've reached the end of the simulation window.
		}
	}
	return false
}

// GetState returns the state for the integrator.
func (p *Propagation) GetState() (s []float64) {
	s = make([]float64, 6)
	for i := 0; i < 3; i++ {
		s[i] = p.Vehicle.R[i]
		s[i+3] = p.Vehicle.V[i]
	}
	return
}

// SetState sets the updated state.
func (p *Propagation) SetState(i uint64, s []float64) {
	R := []float64{s[0], s[1], s[2]}
	V := []float64{s[3], s[4], s[5]}

	if newR, newV, collided := ResolveCollision(R, V, p.Body, p.Damping); collided {
		p.logger.Log("level", "critical", "subsys", "astro", "collided", p.Body.Name, "dt", p.CurrentDT, "r", norm(R), "radius", p.Body.Radius)
		R, V = newR, newV
	}

	p.Vehicle.SetState(R, V)
	*p.Orbit = *NewOrbitFromRV(R, V, p.Body) // Deref is important.

	if p.histChan != nil {
		p.histChan <- State{p.CurrentDT, *p.Vehicle, *p.Orbit}
	}
}

// Func is the two-body ODE function with constant thrust.
func (p *Propagation) Func(t float64, f []float64) (fDot []float64) {
	fDot = make([]float64, 6)
	R := []float64{f[0], f[1], f[2]}
	r := norm(R)
	bodyAcc := -p.Body.GM() / (r * r * r)
	var thrustAcc []float64
	if p.Thrust.Engaged && p.Vehicle.Mass() > 0 {
		thrustAcc = scaled(unit(p.Thrust.Direction), p.Thrust.Magnitude/p.Vehicle.Mass())
	} else {
		thrustAcc = []float64{0, 0, 0}
	}
	// d\vec{R}/dt
	fDot[0] = f[3]
	fDot[1] = f[4]
	fDot[2] = f[5]
	// d\vec{V}/dt
	fDot[3] = bodyAcc*f[0] + thrustAcc[0]
	fDot[4] = bodyAcc*f[1] + thrustAcc[1]
	fDot[5] = bodyAcc*f[2] + thrustAcc[2]
	for i := 0; i < 6; i++ {
		if math.IsNaN(fDot[i]) {
			panic(fmt.Errorf("fDot[%d]=NaN @ dt=%s\norbit:%s\nR=%+v\tV=%+v", i, p.CurrentDT, p.Orbit, R, f[3:]))
		}
	}
	return
}
