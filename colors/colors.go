package colors

// package colors contains functions to quickly and easily generate vecviz.Color instances by name (i.e. "White()", "Blue()", "Green()", etc).
// The axis colors follow the usual editor convention of red for X, green for Y, and blue for Z.

import (
	"github.com/solarlune/vecviz"
	"golang.org/x/image/colornames"
)

// Transparent generates a vecviz.Color instance of the provided name.
func Transparent() vecviz.Color {
	return vecviz.NewColor(0, 0, 0, 0)
}

// White generates a vecviz.Color instance of the provided name.
func White() vecviz.Color {
	return vecviz.NewColor(1, 1, 1, 1)
}

// Black generates a vecviz.Color instance of the provided name.
func Black() vecviz.Color {
	return vecviz.NewColor(0, 0, 0, 1)
}

// LightGray generates a vecviz.Color instance of the provided name.
func LightGray() vecviz.Color {
	return vecviz.NewColor(0.8, 0.8, 0.8, 1)
}

// DarkestGray generates a vecviz.Color instance of the provided name.
func DarkestGray() vecviz.Color {
	return vecviz.NewColor(0.05, 0.05, 0.05, 1)
}

// Red generates a vecviz.Color instance of the provided name.
func Red() vecviz.Color {
	return vecviz.NewColor(1, 0, 0, 1)
}

// Orange generates a vecviz.Color instance of the provided name.
func Orange() vecviz.Color {
	return vecviz.NewColorFromStd(colornames.Orange)
}

// Yellow generates a vecviz.Color instance of the provided name.
func Yellow() vecviz.Color {
	return vecviz.NewColor(1, 1, 0, 1)
}

// Green generates a vecviz.Color instance of the provided name.
func Green() vecviz.Color {
	return vecviz.NewColor(0, 1, 0, 1)
}

// SkyBlue generates a vecviz.Color instance of the provided name.
func SkyBlue() vecviz.Color {
	return vecviz.NewColorFromStd(colornames.Skyblue)
}

// Blue generates a vecviz.Color instance of the provided name.
func Blue() vecviz.Color {
	return vecviz.NewColor(0, 0, 1, 1)
}

// Purple generates a vecviz.Color instance of the provided name.
func Purple() vecviz.Color {
	return vecviz.NewColorFromStd(colornames.Mediumpurple)
}

// AxisX returns the color used for the X axis and anything derived from it.
func AxisX() vecviz.Color { return vecviz.NewColorFromStd(colornames.Tomato) }

// AxisY returns the color used for the Y axis.
func AxisY() vecviz.Color { return vecviz.NewColorFromStd(colornames.Limegreen) }

// AxisZ returns the color used for the Z axis.
func AxisZ() vecviz.Color { return vecviz.NewColorFromStd(colornames.Dodgerblue) }

// ByName returns the SVG 1.1 color with the name given, and whether the name was recognized. See vecviz.ColorByName.
func ByName(name string) (vecviz.Color, bool) {
	return vecviz.ColorByName(name)
}
