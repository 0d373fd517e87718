// Package rect implements an axis-aligned rectangle in a y-up
// coordinate system: Top is the larger y value.
package rect

import (
	"fmt"

	"github.com/Cheeseborgers/quik-math/maths"
	"github.com/Cheeseborgers/quik-math/vec"
)

type Rect struct {
	Top    float32
	Bottom float32
	Left   float32
	Right  float32
}

func New(top, bottom, left, right float32) Rect {
	return Rect{Top: top, Bottom: bottom, Left: left, Right: right}
}

// FromCorners builds a rectangle from its top-left and bottom-right
// corners.
func FromCorners(topLeft, bottomRight vec.Vec2) Rect {
	return Rect{Top: topLeft.Y, Bottom: bottomRight.Y, Left: topLeft.X, Right: bottomRight.X}
}

// FromVec4 reads components in top, bottom, left, right order.
func FromVec4(v vec.Vec4) Rect {
	return Rect{Top: v.X, Bottom: v.Y, Left: v.Z, Right: v.W}
}

func (r Rect) TopLeft() vec.Vec2 { return vec.V2(r.Left, r.Top) }

func (r Rect) TopRight() vec.Vec2 { return vec.V2(r.Right, r.Top) }

func (r Rect) BottomLeft() vec.Vec2 { return vec.V2(r.Left, r.Bottom) }

func (r Rect) BottomRight() vec.Vec2 { return vec.V2(r.Right, r.Bottom) }

func (r Rect) Area() float32 {
	return (r.Right - r.Left) * (r.Top - r.Bottom)
}

func (r Rect) Intersects(other Rect) bool {
	return !(r.Right < other.Left || r.Left > other.Right ||
		r.Top < other.Bottom || r.Bottom > other.Top)
}

// Union returns the smallest rectangle containing both.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Top:    maths.Max(r.Top, other.Top),
		Bottom: maths.Min(r.Bottom, other.Bottom),
		Left:   maths.Min(r.Left, other.Left),
		Right:  maths.Max(r.Right, other.Right),
	}
}

func (r Rect) Contains(point vec.Vec2) bool {
	return point.X >= r.Left && point.X <= r.Right &&
		point.Y >= r.Bottom && point.Y <= r.Top
}

// ClampPoint moves a point to the nearest position inside the
// rectangle.
func (r Rect) ClampPoint(point vec.Vec2) vec.Vec2 {
	return vec.V2(
		maths.Clamp(point.X, r.Left, r.Right),
		maths.Clamp(point.Y, r.Bottom, r.Top),
	)
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(Top: %g, Bottom: %g, Left: %g, Right: %g)", r.Top, r.Bottom, r.Left, r.Right)
}
