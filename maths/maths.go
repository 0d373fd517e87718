// Package maths provides the scalar helpers and constants shared by the
// vector, matrix, colour and easing packages. Trigonometric helpers are
// thin float32 wrappers over the standard math package.
package maths

import (
	"math"

	"golang.org/x/exp/constraints"
)

const Pi float32 = math.Pi

// Epsilon is the float32 machine epsilon.
const Epsilon float32 = 1.1920929e-07

type Number interface {
	constraints.Integer | constraints.Float
}

func IsNaN(x float32) bool {
	return math.IsNaN(float64(x))
}

func IsInf(x float32) bool {
	return math.IsInf(float64(x), 0)
}

func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func Sin(angle float32) float32 {
	return float32(math.Sin(float64(angle)))
}

func Cos(angle float32) float32 {
	return float32(math.Cos(float64(angle)))
}

func Tan(angle float32) float32 {
	return float32(math.Tan(float64(angle)))
}

func Pow(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}

func Abs[T constraints.Signed | constraints.Float](value T) T {
	if value < 0 {
		return -value
	}
	return value
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// MaxOf returns the largest of the given values.
func MaxOf[T constraints.Ordered](values ...T) T {
	var result = values[0]
	for _, v := range values[1:] {
		if v > result {
			result = v
		}
	}
	return result
}

// MinOf returns the smallest of the given values.
func MinOf[T constraints.Ordered](values ...T) T {
	var result = values[0]
	for _, v := range values[1:] {
		if v < result {
			result = v
		}
	}
	return result
}

func Clamp[T constraints.Ordered](value, minVal, maxVal T) T {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}

// Percentage returns value as a percentage of total, or 0 when total is
// zero.
func Percentage[T constraints.Float](value, total T) T {
	if total == 0 {
		return 0
	}
	return (value / total) * 100
}

// Lerp linearly interpolates from a to b by t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// CorrectDegrees wraps an angle into (-360, 360).
func CorrectDegrees(degrees float32) float32 {
	return float32(math.Mod(float64(degrees), 360))
}

func RadiansToDegrees(radians float32) float32 {
	return radians * (180 / Pi)
}

func DegreesToRadians(degrees float32) float32 {
	return degrees * (Pi / 180)
}

// Compare reports whether two floats are equal within machine epsilon,
// scaled by the larger magnitude.
func Compare(x, y float32) bool {
	return Abs(x-y) <= Epsilon*MaxOf(1, Abs(x), Abs(y))
}

// Distance returns the Euclidean distance between two 3D points.
func Distance(x1, y1, z1, x2, y2, z2 float32) float32 {
	dx := x2 - x1
	dy := y2 - y1
	dz := z2 - z1
	return Sqrt(dx*dx + dy*dy + dz*dz)
}

// KB converts kilobytes to bytes.
func KB[T constraints.Integer](x T) uint64 {
	return 1024 * uint64(x)
}

// MB converts megabytes to bytes.
func MB[T constraints.Integer](x T) uint64 {
	return 1024 * KB(x)
}

// GB converts gigabytes to bytes.
func GB[T constraints.Integer](x T) uint64 {
	return 1024 * MB(x)
}
