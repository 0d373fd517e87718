package vec

import (
	"fmt"

	"github.com/Cheeseborgers/quik-math/maths"
)

type Vec4 struct {
	X, Y, Z, W float32
}

func V4(x, y, z, w float32) Vec4 { return Vec4{x, y, z, w} }

func Zero4() Vec4 { return Vec4{} }

func One4() Vec4 { return Vec4{1, 1, 1, 1} }

func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

func (a Vec4) Mul(b Vec4) Vec4 {
	return Vec4{a.X * b.X, a.Y * b.Y, a.Z * b.Z, a.W * b.W}
}

func (a Vec4) Scale(s float32) Vec4 {
	return Vec4{a.X * s, a.Y * s, a.Z * s, a.W * s}
}

func (a Vec4) Div(s float32) Vec4 {
	inv := 1 / s
	return Vec4{a.X * inv, a.Y * inv, a.Z * inv, a.W * inv}
}

func (a Vec4) Neg() Vec4 { return Vec4{-a.X, -a.Y, -a.Z, -a.W} }

func (a Vec4) Dot(b Vec4) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

func (a Vec4) LengthSquared() float32 { return a.Dot(a) }

func (a Vec4) Length() float32 { return maths.Sqrt(a.Dot(a)) }

// Normalized returns the unit vector; the zero vector is returned
// unchanged.
func (a Vec4) Normalized() Vec4 {
	l := a.Length()
	if l == 0 {
		return a
	}
	return a.Div(l)
}

func (a Vec4) Lerp(b Vec4, t float32) Vec4 {
	return Vec4{
		maths.Lerp(a.X, b.X, t),
		maths.Lerp(a.Y, b.Y, t),
		maths.Lerp(a.Z, b.Z, t),
		maths.Lerp(a.W, b.W, t),
	}
}

func (a Vec4) Equals(b Vec4) bool {
	return maths.Compare(a.X, b.X) && maths.Compare(a.Y, b.Y) &&
		maths.Compare(a.Z, b.Z) && maths.Compare(a.W, b.W)
}

// XY truncates to the first two components.
func (a Vec4) XY() Vec2 { return Vec2{a.X, a.Y} }

// XYZ truncates to the first three components.
func (a Vec4) XYZ() Vec3 { return Vec3{a.X, a.Y, a.Z} }

func (a Vec4) At(i int) float32 {
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	case 2:
		return a.Z
	default:
		return a.W
	}
}

func (a Vec4) String() string {
	return fmt.Sprintf("Vec4(%g, %g, %g, %g)", a.X, a.Y, a.Z, a.W)
}
