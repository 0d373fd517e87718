package intersect

import (
	"testing"

	"github.com/Cheeseborgers/quik-math/vec"
)

func TestSphereSphere(t *testing.T) {
	a := vec.V3(0, 0, 0)
	b := vec.V3(3, 0, 0)
	if !SphereSphere(a, 2, b, 2) {
		t.Fatal("overlapping spheres reported disjoint")
	}
	if SphereSphere(a, 1, b, 1) {
		t.Fatal("disjoint spheres reported overlapping")
	}
	// Touching counts.
	if !SphereSphere(a, 1.5, b, 1.5) {
		t.Fatal("touching spheres reported disjoint")
	}
}

func TestAABB(t *testing.T) {
	if !AABB(vec.V3(0, 0, 0), vec.V3(2, 2, 2), vec.V3(1, 1, 1), vec.V3(3, 3, 3)) {
		t.Fatal("overlapping boxes reported disjoint")
	}
	if AABB(vec.V3(0, 0, 0), vec.V3(1, 1, 1), vec.V3(2, 0, 0), vec.V3(3, 1, 1)) {
		t.Fatal("disjoint boxes reported overlapping")
	}
	// Separation on a single axis is enough.
	if AABB(vec.V3(0, 0, 0), vec.V3(5, 5, 1), vec.V3(0, 0, 2), vec.V3(5, 5, 3)) {
		t.Fatal("z-separated boxes reported overlapping")
	}
}

func TestRaySphere(t *testing.T) {
	origin := vec.V3(0, 0, 0)
	forward := vec.V3(1, 0, 0)
	if !RaySphere(origin, forward, vec.V3(5, 0, 0), 1) {
		t.Fatal("ray through center missed")
	}
	if !RaySphere(origin, forward, vec.V3(5, 0.5, 0), 1) {
		t.Fatal("ray within radius missed")
	}
	if RaySphere(origin, forward, vec.V3(5, 3, 0), 1) {
		t.Fatal("ray outside radius hit")
	}
	// Sphere behind the ray origin.
	if RaySphere(origin, forward, vec.V3(-5, 0, 0), 1) {
		t.Fatal("sphere behind origin hit")
	}
}
