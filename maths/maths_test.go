package maths

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(5.0, 0.0, 10.0); got != 5.0 {
		t.Fatalf("Clamp(5, 0, 10) = %v", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Fatalf("Clamp(-1, 0, 10) = %v", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Fatalf("Clamp(11, 0, 10) = %v", got)
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 7) != 3 || Max(3, 7) != 7 {
		t.Fatal("Min/Max two-arg broken")
	}
	if MinOf(4, 2, 9, 2) != 2 {
		t.Fatal("MinOf broken")
	}
	if MaxOf(4.5, 2.0, 9.25) != 9.25 {
		t.Fatal("MaxOf broken")
	}
}

func TestPercentage(t *testing.T) {
	if got := Percentage(25.0, 100.0); got != 25.0 {
		t.Fatalf("Percentage(25, 100) = %v", got)
	}
	if got := Percentage(1.0, 0.0); got != 0 {
		t.Fatalf("Percentage(1, 0) = %v, want 0", got)
	}
}

func TestAngles(t *testing.T) {
	if got := DegreesToRadians(180); !Compare(got, Pi) {
		t.Fatalf("DegreesToRadians(180) = %v", got)
	}
	if got := RadiansToDegrees(Pi); !Compare(got, 180) {
		t.Fatalf("RadiansToDegrees(Pi) = %v", got)
	}
	if got := CorrectDegrees(725); !Compare(got, 5) {
		t.Fatalf("CorrectDegrees(725) = %v", got)
	}
}

func TestCompare(t *testing.T) {
	if !Compare(1.0, 1.0) {
		t.Fatal("Compare(1, 1) = false")
	}
	if Compare(1.0, 1.001) {
		t.Fatal("Compare(1, 1.001) = true")
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(1, 2, 3, 4, 5, 6); !Compare(got, Sqrt(27)) {
		t.Fatalf("Distance = %v", got)
	}
}

func TestByteSizes(t *testing.T) {
	if KB(256) != 262144 {
		t.Fatal("KB(256) wrong")
	}
	if MB(1) != 1048576 {
		t.Fatal("MB(1) wrong")
	}
	if GB(2) != 2147483648 {
		t.Fatal("GB(2) wrong")
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Fatalf("Lerp(0, 10, 0.5) = %v", got)
	}
	if got := Lerp(-4, 4, 1); got != 4 {
		t.Fatalf("Lerp(-4, 4, 1) = %v", got)
	}
}
