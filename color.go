package vecviz

import (
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// NewColorFromStd returns a new Color converted from the color.Color provided (like the ones in golang.org/x/image/colornames).
func NewColorFromStd(c color.Color) Color {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: float32(n.R) / math.MaxUint16,
		G: float32(n.G) / math.MaxUint16,
		B: float32(n.B) / math.MaxUint16,
		A: float32(n.A) / math.MaxUint16,
	}
}

// ColorByName returns the SVG 1.1 color with the name given (like "tomato" or "skyblue"; case and spaces are ignored), and
// whether the name was recognized.
func ColorByName(name string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(strings.ReplaceAll(name, " ", ""))]
	if !ok {
		return Color{}, false
	}
	return NewColorFromStd(c), true
}

// Multiply returns a copy of the Color with its R, G, and B components multiplied by the value given (alpha is left alone).
func (c Color) Multiply(value float32) Color {
	c.R *= value
	c.G *= value
	c.B *= value
	return c
}

// RGBA64 returns the Color's components as float64s.
func (c Color) RGBA64() (float64, float64, float64, float64) {
	return float64(c.R), float64(c.G), float64(c.B), float64(c.A)
}

// ToNRGBA64 converts the Color to a color.NRGBA64, clamping each component to the 0 - 1 range.
func (c Color) ToNRGBA64() color.NRGBA64 {
	return color.NRGBA64{
		R: uint16(clamp(c.R, 0, 1) * math.MaxUint16),
		G: uint16(clamp(c.G, 0, 1) * math.MaxUint16),
		B: uint16(clamp(c.B, 0, 1) * math.MaxUint16),
		A: uint16(clamp(c.A, 0, 1) * math.MaxUint16),
	}
}
