package orbital

import (
	"testing"

	"github.com/gonum/floats"
)

func TestResolveCollision(t *testing.T) {
	// Radial impact halfway below the surface.
	R := []float64{Earth.Radius * 0.5, 0, 0}
	V := []float64{-100, 0, 0}
	newR, newV, collided := ResolveCollision(R, V, Earth, 0.5)
	if !collided {
		t.Fatal("no collision detected below the surface")
	}
	if !floats.EqualWithinRel(norm(newR), Earth.Radius*1.01, 1e-12) {
		t.Fatalf("rebound distance %f", norm(newR))
	}
	// Relocated along the surface normal.
	if !vectorsEqualAbs(unit(newR), []float64{1, 0, 0}, 1e-12) {
		t.Fatal("rebound not along the surface normal")
	}
	// Reflected and damped: -100 radial in becomes +50 radial out.
	if !vectorsEqualAbs(newV, []float64{50, 0, 0}, 1e-9) {
		t.Fatalf("rebound velocity %+v", newV)
	}
}

func TestResolveCollisionTangential(t *testing.T) {
	// A grazing velocity has no component along the normal: only damping applies.
	R := []float64{Earth.Radius - 1000, 0, 0}
	V := []float64{0, 200, 0}
	_, newV, collided := ResolveCollision(R, V, Earth, 0.5)
	if !collided {
		t.Fatal("no collision detected below the surface")
	}
	if !vectorsEqualAbs(newV, []float64{0, 100, 0}, 1e-9) {
		t.Fatalf("tangential rebound velocity %+v", newV)
	}
}

func TestResolveCollisionDefaults(t *testing.T) {
	R := []float64{Earth.Radius * 0.5, 0, 0}
	V := []float64{-100, 0, 0}
	// Negative damping selects the default factor.
	_, newV, collided := ResolveCollision(R, V, Earth, -1)
	if !collided {
		t.Fatal("no collision detected below the surface")
	}
	if !floats.EqualWithinAbs(newV[0], 100*reboundDamping, 1e-9) {
		t.Fatalf("default damping not applied: %+v", newV)
	}
}

func TestResolveCollisionNoOp(t *testing.T) {
	R := []float64{Earth.Radius + 1, 0, 0}
	V := []float64{0, 7546, 0}
	if _, _, collided := ResolveCollision(R, V, Earth, 0.5); collided {
		t.Fatal("collision detected above the surface")
	}
}
