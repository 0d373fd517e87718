// Package colour implements an RGBA colour with normalized float32
// components. Construction and arithmetic clamp components to [0, 1].
package colour

import (
	"fmt"

	"github.com/Cheeseborgers/quik-math/maths"
	"github.com/Cheeseborgers/quik-math/random"
)

type Colour struct {
	R, G, B, A float32
}

// New builds a colour from normalized components, clamped to [0, 1].
func New(r, g, b, a float32) Colour {
	return Colour{
		R: maths.Clamp(r, 0, 1),
		G: maths.Clamp(g, 0, 1),
		B: maths.Clamp(b, 0, 1),
		A: maths.Clamp(a, 0, 1),
	}
}

// FromValue sets every component to the same clamped value.
func FromValue(value float32) Colour {
	return New(value, value, value, value)
}

// FromBytes builds a colour from 8-bit channel values.
func FromBytes(r, g, b, a uint8) Colour {
	return Colour{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

func (c Colour) Add(other Colour) Colour {
	return New(c.R+other.R, c.G+other.G, c.B+other.B, c.A+other.A)
}

func (c Colour) Sub(other Colour) Colour {
	return New(c.R-other.R, c.G-other.G, c.B-other.B, c.A-other.A)
}

// Scale lightens or darkens a colour by a scalar factor.
func (c Colour) Scale(scalar float32) Colour {
	return New(c.R*scalar, c.G*scalar, c.B*scalar, c.A*scalar)
}

// Lerp interpolates towards end by t, with t clamped to [0, 1].
func (c Colour) Lerp(end Colour, t float32) Colour {
	t = maths.Clamp(t, 0, 1)
	complement := 1 - t
	return Colour{
		R: c.R*complement + end.R*t,
		G: c.G*complement + end.G*t,
		B: c.B*complement + end.B*t,
		A: c.A*complement + end.A*t,
	}
}

// Blend alpha-blends src over c.
func (c Colour) Blend(src Colour) Colour {
	srcAlpha := src.A
	destAlpha := 1 - srcAlpha
	return Colour{
		R: src.R*srcAlpha + c.R*destAlpha,
		G: src.G*srcAlpha + c.G*destAlpha,
		B: src.B*srcAlpha + c.B*destAlpha,
		A: srcAlpha + c.A*destAlpha,
	}
}

// ToHSV converts to hue (degrees, 0-360), saturation and value.
func (c Colour) ToHSV() (hue, saturation, value float32) {
	maxVal := maths.MaxOf(c.R, c.G, c.B)
	minVal := maths.MinOf(c.R, c.G, c.B)
	switch {
	case maxVal == minVal:
		hue = 0
	case maxVal == c.R:
		hue = maths.CorrectDegrees(60*((c.G-c.B)/(maxVal-minVal)) + 360)
	case maxVal == c.G:
		hue = 60*((c.B-c.R)/(maxVal-minVal)) + 120
	default:
		hue = 60*((c.R-c.G)/(maxVal-minVal)) + 240
	}
	if maxVal == 0 {
		saturation = 0
	} else {
		saturation = 1 - minVal/maxVal
	}
	value = maxVal
	return hue, saturation, value
}

// FromHSV converts hue (degrees, 0-360), saturation and value to an
// opaque colour.
func FromHSV(hue, saturation, value float32) Colour {
	hi := int(hue/60) % 6
	f := hue/60 - float32(int(hue/60))
	p := value * (1 - saturation)
	q := value * (1 - f*saturation)
	t := value * (1 - (1-f)*saturation)
	switch hi {
	case 0:
		return New(value, t, p, 1)
	case 1:
		return New(q, value, p, 1)
	case 2:
		return New(p, value, t, 1)
	case 3:
		return New(p, q, value, 1)
	case 4:
		return New(t, p, value, 1)
	default:
		return New(value, p, q, 1)
	}
}

func (c Colour) Equals(other Colour) bool {
	return maths.Compare(c.R, other.R) && maths.Compare(c.G, other.G) &&
		maths.Compare(c.B, other.B) && maths.Compare(c.A, other.A)
}

func (c Colour) String() string {
	return fmt.Sprintf("Colour(R: %g, G: %g, B: %g, A: %g)", c.R, c.G, c.B, c.A)
}

// RandomColour draws an opaque colour with each channel uniform within
// its constraints.
func RandomColour(rng *random.Random, minRed, maxRed, minGreen, maxGreen, minBlue, maxBlue float32) (Colour, error) {
	red, err := rng.Float(minRed, maxRed)
	if err != nil {
		return Colour{}, err
	}
	green, err := rng.Float(minGreen, maxGreen)
	if err != nil {
		return Colour{}, err
	}
	blue, err := rng.Float(minBlue, maxBlue)
	if err != nil {
		return Colour{}, err
	}
	return New(red, green, blue, 1), nil
}
