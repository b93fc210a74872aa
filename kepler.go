package orbital

import (
	"errors"
	"math"

	kitlog "github.com/go-kit/kit/log"
)

const (
	// keplerTol is the Newton-Raphson convergence tolerance on the step size.
	keplerTol = 1e-10
	// keplerMaxIter caps the Newton-Raphson iterations.
	keplerMaxIter = 30
)

// ErrKeplerNotConverged is returned by SolveKepler along with the best
// estimate when Newton-Raphson did not converge. It is non-fatal: propagation
// continues with the approximate eccentric anomaly.
var ErrKeplerNotConverged = errors.New("kepler equation did not converge")

// ErrNonElliptical signals that an orbit cannot be propagated analytically
// (parabolic or hyperbolic, or a degenerate semi-major axis). The caller must
// fall back to numerical integration.
var ErrNonElliptical = errors.New("orbit is not elliptical")

// TrueToMean converts the true anomaly to the mean anomaly via the eccentric
// anomaly, normalized to [0, 2π).
func TrueToMean(ν, e float64) float64 {
	sinν, cosν := math.Sincos(ν)
	E := math.Atan2(math.Sqrt(1-e*e)*sinν, e+cosν)
	return normAngle(E - e*math.Sin(E))
}

// EccentricToTrue converts the eccentric anomaly to the true anomaly,
// normalized to [0, 2π).
func EccentricToTrue(E, e float64) float64 {
	sinE, cosE := math.Sincos(E)
	return normAngle(math.Atan2(math.Sqrt(1-e*e)*sinE, cosE-e))
}

// SolveKepler solves E - e·sin(E) = M for the eccentric anomaly E via
// Newton-Raphson. The initial guess is M, or π when e > 0.8 (which keeps the
// iteration from diverging at high eccentricities, cf. Vallado alg. 2).
// On non-convergence the best estimate is returned with ErrKeplerNotConverged.
func SolveKepler(M, e float64) (float64, error) {
	M = normAngle(M)
	E := M
	if e > 0.8 {
		E = math.Pi
	}
	for iter := 0; iter < keplerMaxIter; iter++ {
		ΔE := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= ΔE
		if math.Abs(ΔE) < keplerTol {
			return normAngle(E), nil
		}
	}
	return normAngle(E), ErrKeplerNotConverged
}

// KeplerianPropagator advances orbits analytically via Kepler's equation.
type KeplerianPropagator struct {
	logger kitlog.Logger
}

// NewKeplerianPropagator returns an analytical propagator which logs solver
// diagnostics to the provided logger.
func NewKeplerianPropagator(logger kitlog.Logger) *KeplerianPropagator {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &KeplerianPropagator{logger}
}

// Propagate advances the orbit by Δt seconds and returns the new radius and
// velocity vectors. The true anomaly of the orbit is updated in place (the
// phase carry: a and e are untouched, so the element cache stays warm), which
// is the one mutation path which does not invalidate a spacecraft's cached
// elements. Returns ErrNonElliptical for orbits this model cannot advance;
// the caller must then integrate numerically instead.
func (kp *KeplerianPropagator) Propagate(o *Orbit, Δt float64) (R, V []float64, err error) {
	if o.e >= 1-parabolicε || math.IsInf(o.a, 0) || o.a <= 0 {
		return nil, nil, ErrNonElliptical
	}
	M := TrueToMean(o.ν, o.e) + o.MeanMotion()*Δt
	E, err := SolveKepler(M, o.e)
	if err != nil {
		// Non-fatal: keep going with the best estimate.
		kp.logger.Log("level", "warning", "subsys", "kepler", "message", err, "M", M, "e", o.e)
	}
	o.ν = EccentricToTrue(E, o.e)
	R, V = o.RV()
	return R, V, nil
}
