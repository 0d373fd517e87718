package mat

import (
	"testing"

	"github.com/Cheeseborgers/quik-math/maths"
	"github.com/Cheeseborgers/quik-math/vec"
)

func TestIdentityMul(t *testing.T) {
	m := FromSlice([]float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	})
	if got := Identity().Mul(m); !got.Equals(m) {
		t.Fatalf("I*M != M:\n%v", got)
	}
	if got := m.Mul(Identity()); !got.Equals(m) {
		t.Fatalf("M*I != M:\n%v", got)
	}
}

func TestTranslationPoint(t *testing.T) {
	m := Translation(1, 2, 3)
	p := m.MulVec4(vec.V4(10, 20, 30, 1))
	if !p.Equals(vec.V4(11, 22, 33, 1)) {
		t.Fatalf("translated point = %v", p)
	}
	// Directions (w = 0) are unaffected by translation.
	d := m.MulVec4(vec.V4(10, 20, 30, 0))
	if !d.Equals(vec.V4(10, 20, 30, 0)) {
		t.Fatalf("translated direction = %v", d)
	}
}

func TestScaling(t *testing.T) {
	p := Scaling(2, 3, 4).MulVec4(vec.V4(1, 1, 1, 1))
	if !p.Equals(vec.V4(2, 3, 4, 1)) {
		t.Fatalf("scaled point = %v", p)
	}
}

func TestRotationZQuarterTurn(t *testing.T) {
	m := RotationZ(maths.DegreesToRadians(90))
	p := m.MulVec4(vec.V4(1, 0, 0, 1))
	if !p.Equals(vec.V4(0, 1, 0, 1)) {
		t.Fatalf("rotated point = %v", p)
	}
}

func TestMulAssociatesWithVec(t *testing.T) {
	a := Translation(1, 0, 0)
	b := RotationZ(maths.DegreesToRadians(90))
	v := vec.V4(1, 0, 0, 1)
	left := a.Mul(b).MulVec4(v)
	right := a.MulVec4(b.MulVec4(v))
	if !left.Equals(right) {
		t.Fatalf("(A*B)*v = %v, A*(B*v) = %v", left, right)
	}
}

func TestTranspose(t *testing.T) {
	m := FromSlice([]float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	})
	tr := m.Transpose()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if tr.At(row, col) != m.At(col, row) {
				t.Fatalf("Transpose mismatch at %d,%d", row, col)
			}
		}
	}
	if !m.Transpose().Transpose().Equals(m) {
		t.Fatal("double transpose is not identity")
	}
}

func TestAddSubScalar(t *testing.T) {
	m := Identity()
	if got := m.Add(m).Sub(m); !got.Equals(m) {
		t.Fatalf("M+M-M != M:\n%v", got)
	}
	if got := m.MulScalar(3).At(1, 1); got != 3 {
		t.Fatalf("MulScalar = %v", got)
	}
}
