package orbital

import (
	"math"
	"testing"
)

func TestRxBasics(t *testing.T) {
	x := []float64{1, 0, 0}
	y := []float64{0, 1, 0}
	z := []float64{0, 0, 1}
	// Frame rotations: R3(π/2) maps the x axis onto -y.
	if !vectorsEqualAbs(MxV33(R3(math.Pi/2), x), []float64{0, -1, 0}, 1e-12) {
		t.Fatal("R3(π/2)x != -y")
	}
	if !vectorsEqualAbs(MxV33(R1(math.Pi/2), y), []float64{0, 0, -1}, 1e-12) {
		t.Fatal("R1(π/2)y != -z")
	}
	if !vectorsEqualAbs(MxV33(R2(math.Pi/2), x), []float64{0, 0, 1}, 1e-12) {
		t.Fatal("R2(π/2)x != z")
	}
	// Rotating about the axis itself is a no-op.
	if !vectorsEqualAbs(MxV33(R3(1.2345), z), z, 1e-12) {
		t.Fatal("R3 moved the z axis")
	}
}

func TestRot313(t *testing.T) {
	// The combined 3-1-3 matrix must match the sequential single-axis rotations.
	θ1, θ2, θ3 := 0.2, 1.1, -0.7
	v := []float64{1.5, -2.5, 3.5}
	seq := MxV33(R3(θ3), MxV33(R1(θ2), MxV33(R3(θ1), v)))
	if !vectorsEqualAbs(Rot313Vec(θ1, θ2, θ3, v), seq, 1e-12) {
		t.Fatalf("313 combined matrix differs from the sequence: %+v != %+v", Rot313Vec(θ1, θ2, θ3, v), seq)
	}
	// Zero angles: identity.
	if !vectorsEqualAbs(Rot313Vec(0, 0, 0, v), v, 1e-12) {
		t.Fatal("313 rotation with zero angles is not the identity")
	}
}

func TestPQW2ECI(t *testing.T) {
	// From Vallado.
	i := Deg2rad(87.87)
	ω := Deg2rad(53.38)
	Ω := Deg2rad(227.89)
	R := PQW2ECI(i, ω, Ω, []float64{-466.7639e3, 11447.0219e3, 0})
	if !vectorsEqual(R, []float64{6525.368e3, 6861.532e3, 6449.119e3}) {
		t.Fatalf("PQW2ECI returned %+v", R)
	}
	// With all angles zero the perifocal frame IS the reference frame.
	v := []float64{1, 2, 3}
	if !vectorsEqualAbs(PQW2ECI(0, 0, 0, v), v, 1e-12) {
		t.Fatal("PQW2ECI with zero angles is not the identity")
	}
	// ω=90° on an equatorial orbit puts periapsis on the +y axis.
	if !vectorsEqualAbs(PQW2ECI(0, math.Pi/2, 0, []float64{1, 0, 0}), []float64{0, 1, 0}, 1e-12) {
		t.Fatal("periapsis direction incorrect for ω=90°")
	}
}
