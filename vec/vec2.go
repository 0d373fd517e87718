// Package vec implements fixed-size float32 vectors with 2, 3 and 4
// components. All methods are value receivers returning new values.
package vec

import (
	"fmt"

	"github.com/Cheeseborgers/quik-math/maths"
)

type Vec2 struct {
	X, Y float32
}

func V2(x, y float32) Vec2 { return Vec2{x, y} }

func Zero2() Vec2 { return Vec2{} }

func One2() Vec2 { return Vec2{1, 1} }

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }

func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

func (a Vec2) Mul(b Vec2) Vec2 { return Vec2{a.X * b.X, a.Y * b.Y} }

func (a Vec2) Scale(s float32) Vec2 { return Vec2{a.X * s, a.Y * s} }

func (a Vec2) Div(s float32) Vec2 {
	inv := 1 / s
	return Vec2{a.X * inv, a.Y * inv}
}

func (a Vec2) Neg() Vec2 { return Vec2{-a.X, -a.Y} }

func (a Vec2) Dot(b Vec2) float32 { return a.X*b.X + a.Y*b.Y }

func (a Vec2) LengthSquared() float32 { return a.Dot(a) }

func (a Vec2) Length() float32 { return maths.Sqrt(a.Dot(a)) }

// Normalized returns the unit vector; the zero vector is returned
// unchanged.
func (a Vec2) Normalized() Vec2 {
	l := a.Length()
	if l == 0 {
		return a
	}
	return a.Div(l)
}

func (a Vec2) Lerp(b Vec2, t float32) Vec2 {
	return Vec2{maths.Lerp(a.X, b.X, t), maths.Lerp(a.Y, b.Y, t)}
}

func (a Vec2) Clamp(min, max Vec2) Vec2 {
	return Vec2{maths.Clamp(a.X, min.X, max.X), maths.Clamp(a.Y, min.Y, max.Y)}
}

func (a Vec2) Equals(b Vec2) bool {
	return maths.Compare(a.X, b.X) && maths.Compare(a.Y, b.Y)
}

// At returns component i in x, y order.
func (a Vec2) At(i int) float32 {
	switch i {
	case 0:
		return a.X
	default:
		return a.Y
	}
}

func (a Vec2) String() string {
	return fmt.Sprintf("Vec2(%g, %g)", a.X, a.Y)
}
