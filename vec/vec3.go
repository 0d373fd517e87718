package vec

import (
	"fmt"

	"github.com/Cheeseborgers/quik-math/maths"
)

type Vec3 struct {
	X, Y, Z float32
}

func V3(x, y, z float32) Vec3 { return Vec3{x, y, z} }

func Zero3() Vec3 { return Vec3{} }

func One3() Vec3 { return Vec3{1, 1, 1} }

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

func (a Vec3) Mul(b Vec3) Vec3 { return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z} }

func (a Vec3) Scale(s float32) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }

func (a Vec3) Div(s float32) Vec3 {
	inv := 1 / s
	return Vec3{a.X * inv, a.Y * inv, a.Z * inv}
}

func (a Vec3) Neg() Vec3 { return Vec3{-a.X, -a.Y, -a.Z} }

func (a Vec3) Dot(b Vec3) float32 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) LengthSquared() float32 { return a.Dot(a) }

func (a Vec3) Length() float32 { return maths.Sqrt(a.Dot(a)) }

// Normalized returns the unit vector; the zero vector is returned
// unchanged.
func (a Vec3) Normalized() Vec3 {
	l := a.Length()
	if l == 0 {
		return a
	}
	return a.Div(l)
}

func (a Vec3) Lerp(b Vec3, t float32) Vec3 {
	return Vec3{
		maths.Lerp(a.X, b.X, t),
		maths.Lerp(a.Y, b.Y, t),
		maths.Lerp(a.Z, b.Z, t),
	}
}

func (a Vec3) Equals(b Vec3) bool {
	return maths.Compare(a.X, b.X) && maths.Compare(a.Y, b.Y) && maths.Compare(a.Z, b.Z)
}

// XY truncates to the first two components.
func (a Vec3) XY() Vec2 { return Vec2{a.X, a.Y} }

func (a Vec3) At(i int) float32 {
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	default:
		return a.Z
	}
}

func (a Vec3) String() string {
	return fmt.Sprintf("Vec3(%g, %g, %g)", a.X, a.Y, a.Z)
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec3) float32 {
	return b.Sub(a).Length()
}
