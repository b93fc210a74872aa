package orbital

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestCross(t *testing.T) {
	i := []float64{1, 0, 0}
	j := []float64{0, 1, 0}
	k := []float64{0, 0, 1}
	if !vectorsEqual(cross(i, j), k) {
		t.Fatal("i x j != k")
	}
	if !vectorsEqual(cross(j, k), i) {
		t.Fatal("j x k != i")
	}
	if !vectorsEqual(cross([]float64{2, 3, 4}, []float64{5, 6, 7}), []float64{-3, 6, -3}) {
		t.Fatal("cross fail")
	}
	// From Vallado.
	if !vectorsEqual(cross([]float64{6524.834, 6862.875, 6448.296}, []float64{4.901327, 5.533756, -1.976341}), []float64{-4.924667792015100e4, 4.450050424118601e4, 0.246964476137900e4}) {
		t.Fatal("cross fail")
	}
}

func TestNormUnit(t *testing.T) {
	v := []float64{3, 4, 0}
	if norm(v) != 5 {
		t.Fatalf("norm([3 4 0]) = %f", norm(v))
	}
	u := unit(v)
	if !floats.EqualWithinAbs(norm(u), 1, 1e-12) {
		t.Fatal("unit vector does not have norm 1")
	}
	if !vectorsEqual(unit([]float64{0, 0, 0}), []float64{0, 0, 0}) {
		t.Fatal("unit of a zero vector should be a zero vector")
	}
}

func TestDot(t *testing.T) {
	if dot([]float64{1, 2, 3}, []float64{4, 5, 6}) != 32 {
		t.Fatal("dot product fail")
	}
	if dot([]float64{1, 0, 0}, []float64{0, 1, 0}) != 0 {
		t.Fatal("orthogonal vectors have a non-zero dot product")
	}
}

func TestScaledAdded(t *testing.T) {
	a := []float64{1, -2, 3}
	b := scaled(a, 2)
	if !vectorsEqual(b, []float64{2, -4, 6}) {
		t.Fatal("scaled fail")
	}
	// scaled must not mutate its input.
	if !vectorsEqual(a, []float64{1, -2, 3}) {
		t.Fatal("scaled mutated its input")
	}
	if !vectorsEqual(added(a, b), []float64{3, -6, 9}) {
		t.Fatal("added fail")
	}
}

func TestSign(t *testing.T) {
	if sign(10) != 1 {
		t.Fatal("sign of 10 is not 1")
	}
	if sign(-0.1) != -1 {
		t.Fatal("sign of -0.1 is not -1")
	}
	if sign(0) != 1 {
		t.Fatal("sign of 0 should be 1")
	}
}

func TestNormAngle(t *testing.T) {
	if !floats.EqualWithinAbs(normAngle(-math.Pi/2), 3*math.Pi/2, 1e-12) {
		t.Fatal("normAngle(-π/2) != 3π/2")
	}
	if !floats.EqualWithinAbs(normAngle(5*math.Pi), math.Pi, 1e-12) {
		t.Fatal("normAngle(5π) != π")
	}
	if normAngle(0) != 0 {
		t.Fatal("normAngle(0) != 0")
	}
}

func TestDegRad(t *testing.T) {
	for _, deg := range []float64{0, 30, 90, 180, 270, 359.5} {
		if !floats.EqualWithinAbs(Rad2deg(Deg2rad(deg)), deg, 1e-10) {
			t.Fatalf("%f degrees does not round trip", deg)
		}
	}
	if !floats.EqualWithinAbs(Deg2rad(-90), 3*math.Pi/2, 1e-12) {
		t.Fatal("Deg2rad(-90) != 3π/2")
	}
	if !floats.EqualWithinAbs(Rad2deg(-math.Pi/2), 270, 1e-10) {
		t.Fatal("Rad2deg(-π/2) != 270")
	}
}
