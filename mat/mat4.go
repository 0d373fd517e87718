// Package mat implements a 4x4 float32 matrix using the column-vector
// convention: transforms apply as M * v.
package mat

import (
	"fmt"
	"strings"

	"github.com/Cheeseborgers/quik-math/maths"
	"github.com/Cheeseborgers/quik-math/vec"
)

// Mat4 is stored row by row; At(row, col) addresses elements.
type Mat4 [4][4]float32

func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// FromSlice builds a matrix from 16 values in row-major order.
func FromSlice(data []float32) Mat4 {
	var m Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			m[row][col] = data[row*4+col]
		}
	}
	return m
}

func (m Mat4) At(row, col int) float32 { return m[row][col] }

func (m *Mat4) Set(row, col int, value float32) { m[row][col] = value }

func (m Mat4) Add(other Mat4) Mat4 {
	var result Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][col] + other[row][col]
		}
	}
	return result
}

func (m Mat4) Sub(other Mat4) Mat4 {
	var result Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][col] - other[row][col]
		}
	}
	return result
}

func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for i := 0; i < 4; i++ {
				sum += other[i][col] * m[row][i]
			}
			result[row][col] = sum
		}
	}
	return result
}

func (m Mat4) MulScalar(scalar float32) Mat4 {
	var result Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][col] * scalar
		}
	}
	return result
}

func (m Mat4) MulVec4(v vec.Vec4) vec.Vec4 {
	return vec.Vec4{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3]*v.W,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3]*v.W,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3]*v.W,
		W: m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3]*v.W,
	}
}

func (m Mat4) Transpose() Mat4 {
	var result Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

func Translation(x, y, z float32) Mat4 {
	result := Identity()
	result[0][3] = x
	result[1][3] = y
	result[2][3] = z
	return result
}

func Scaling(x, y, z float32) Mat4 {
	result := Identity()
	result[0][0] = x
	result[1][1] = y
	result[2][2] = z
	return result
}

// RotationX rotates about the x axis by an angle in radians.
func RotationX(angle float32) Mat4 {
	s, c := maths.Sin(angle), maths.Cos(angle)
	result := Identity()
	result[1][1] = c
	result[1][2] = -s
	result[2][1] = s
	result[2][2] = c
	return result
}

// RotationY rotates about the y axis by an angle in radians.
func RotationY(angle float32) Mat4 {
	s, c := maths.Sin(angle), maths.Cos(angle)
	result := Identity()
	result[0][0] = c
	result[0][2] = s
	result[2][0] = -s
	result[2][2] = c
	return result
}

// RotationZ rotates about the z axis by an angle in radians.
func RotationZ(angle float32) Mat4 {
	s, c := maths.Sin(angle), maths.Cos(angle)
	result := Identity()
	result[0][0] = c
	result[0][1] = -s
	result[1][0] = s
	result[1][1] = c
	return result
}

func (m Mat4) Equals(other Mat4) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !maths.Compare(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}

func (m Mat4) String() string {
	var b strings.Builder
	for row := 0; row < 4; row++ {
		fmt.Fprintf(&b, "%g %g %g %g\n", m[row][0], m[row][1], m[row][2], m[row][3])
	}
	return b.String()
}
