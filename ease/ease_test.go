package ease

import (
	"testing"

	"github.com/Cheeseborgers/quik-math/maths"
)

var allTypes = []Type{
	Linear, InQuad, OutQuad, InOutQuad,
	InCubic, OutCubic, InOutCubic,
	InQuartic, OutQuartic, InOutQuartic,
	InQuintic, OutQuintic, InOutQuintic,
	Elastic, Bounce,
}

func TestEndpoints(t *testing.T) {
	for _, typ := range allTypes {
		f := typ.Func()
		if got := f(0); !maths.Compare(got, 0) {
			t.Errorf("%v(0) = %v, want 0", typ, got)
		}
		if got := f(1); !maths.Compare(got, 1) {
			t.Errorf("%v(1) = %v, want 1", typ, got)
		}
	}
}

func TestMidpoints(t *testing.T) {
	cases := []struct {
		typ  Type
		want float32
	}{
		{Linear, 0.5},
		{InQuad, 0.25},
		{OutQuad, 0.75},
		{InOutQuad, 0.5},
		{InCubic, 0.125},
		{OutCubic, 0.875},
		{InOutCubic, 0.5},
		{InQuartic, 0.0625},
		{OutQuartic, 0.9375},
		{InQuintic, 0.03125},
		{OutQuintic, 0.96875},
	}
	for _, c := range cases {
		if got := c.typ.Apply(0.5); !maths.Compare(got, c.want) {
			t.Errorf("%v(0.5) = %v, want %v", c.typ, got, c.want)
		}
	}
}

func TestInVariantsMonotonic(t *testing.T) {
	for _, typ := range []Type{Linear, InQuad, InCubic, InQuartic, InQuintic} {
		f := typ.Func()
		var prev float32 = -1
		for i := 0; i <= 100; i++ {
			v := f(float32(i) / 100)
			if v < prev {
				t.Fatalf("%v not monotonic at t=%v", typ, float32(i)/100)
			}
			prev = v
		}
	}
}

func TestUnknownTypeFallsBackToLinear(t *testing.T) {
	var typ Type = 99
	if got := typ.Apply(0.37); got != 0.37 {
		t.Fatalf("unknown type applied %v, want linear", got)
	}
	if typ.String() != "Unknown" {
		t.Fatalf("String = %q", typ.String())
	}
}

func TestBounceStaysInRange(t *testing.T) {
	for i := 0; i <= 100; i++ {
		v := Bounce.Apply(float32(i) / 100)
		if v < 0 || v > 1.0001 {
			t.Fatalf("Bounce(%v) = %v out of range", float32(i)/100, v)
		}
	}
}
