// Package ease implements easing curves for animation interpolation.
// Every curve maps t in [0, 1] to [0, 1] with f(0) = 0 and f(1) = 1.
package ease

import "github.com/Cheeseborgers/quik-math/maths"

// Type selects an easing curve.
type Type int

const (
	Linear Type = iota
	InQuad
	OutQuad
	InOutQuad
	InCubic
	OutCubic
	InOutCubic
	InQuartic
	OutQuartic
	InOutQuartic
	InQuintic
	OutQuintic
	InOutQuintic
	Elastic
	Bounce
)

func (t Type) String() string {
	switch t {
	case Linear:
		return "Linear"
	case InQuad:
		return "InQuad"
	case OutQuad:
		return "OutQuad"
	case InOutQuad:
		return "InOutQuad"
	case InCubic:
		return "InCubic"
	case OutCubic:
		return "OutCubic"
	case InOutCubic:
		return "InOutCubic"
	case InQuartic:
		return "InQuartic"
	case OutQuartic:
		return "OutQuartic"
	case InOutQuartic:
		return "InOutQuartic"
	case InQuintic:
		return "InQuintic"
	case OutQuintic:
		return "OutQuintic"
	case InOutQuintic:
		return "InOutQuintic"
	case Elastic:
		return "Elastic"
	case Bounce:
		return "Bounce"
	default:
		return "Unknown"
	}
}

// Func returns the curve for a Type; unknown values ease linearly.
func (t Type) Func() func(float32) float32 {
	switch t {
	case InQuad:
		return inQuad
	case OutQuad:
		return outQuad
	case InOutQuad:
		return inOutQuad
	case InCubic:
		return inCubic
	case OutCubic:
		return outCubic
	case InOutCubic:
		return inOutCubic
	case InQuartic:
		return inQuartic
	case OutQuartic:
		return outQuartic
	case InOutQuartic:
		return inOutQuartic
	case InQuintic:
		return inQuintic
	case OutQuintic:
		return outQuintic
	case InOutQuintic:
		return inOutQuintic
	case Elastic:
		return elastic
	case Bounce:
		return bounce
	default:
		return linear
	}
}

// Apply evaluates the curve at t.
func (t Type) Apply(x float32) float32 {
	return t.Func()(x)
}

func linear(t float32) float32 { return t }

func inQuad(t float32) float32 { return t * t }

func outQuad(t float32) float32 { return 1 - (1-t)*(1-t) }

func inOutQuad(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - maths.Pow(-2*t+2, 2)/2
}

func inCubic(t float32) float32 { return t * t * t }

func outCubic(t float32) float32 { return 1 - maths.Pow(1-t, 3) }

func inOutCubic(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - maths.Pow(-2*t+2, 3)/2
}

func inQuartic(t float32) float32 { return t * t * t * t }

func outQuartic(t float32) float32 { return 1 - maths.Pow(1-t, 4) }

func inOutQuartic(t float32) float32 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	return 1 - maths.Pow(-2*t+2, 4)/2
}

func inQuintic(t float32) float32 { return t * t * t * t * t }

func outQuintic(t float32) float32 { return 1 - maths.Pow(1-t, 5) }

func inOutQuintic(t float32) float32 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	return 1 - maths.Pow(-2*t+2, 5)/2
}

func elastic(t float32) float32 {
	const c4 = (2 * maths.Pi) / 3
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	default:
		return maths.Pow(2, -10*t)*maths.Sin((t*10-0.75)*c4) + 1
	}
}

func bounce(t float32) float32 {
	const n1 = 7.5625
	const d1 = 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}
