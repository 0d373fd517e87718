// Package intersect provides primitive intersection tests over Vec3.
package intersect

import "github.com/Cheeseborgers/quik-math/vec"

// SphereSphere reports whether two spheres overlap or touch.
func SphereSphere(center1 vec.Vec3, radius1 float32, center2 vec.Vec3, radius2 float32) bool {
	return vec.Distance(center1, center2) <= radius1+radius2
}

// AABB reports whether two axis-aligned boxes overlap on every axis.
func AABB(min1, max1, min2, max2 vec.Vec3) bool {
	xOverlap := min1.X <= max2.X && max1.X >= min2.X
	yOverlap := min1.Y <= max2.Y && max1.Y >= min2.Y
	zOverlap := min1.Z <= max2.Z && max1.Z >= min2.Z
	return xOverlap && yOverlap && zOverlap
}

// RaySphere reports whether a ray with unit direction passes within
// radius of the sphere center. The closest approach is clamped to the
// ray origin, so spheres entirely behind the origin do not intersect.
func RaySphere(origin, direction, center vec.Vec3, radius float32) bool {
	toCenter := center.Sub(origin)
	t := toCenter.Dot(direction)
	if t < 0 {
		t = 0
	}
	closest := origin.Add(direction.Scale(t))
	return vec.Distance(center, closest) <= radius
}
