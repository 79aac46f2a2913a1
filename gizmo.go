package vecviz

import "math"

// Line is a 3D line segment, as drawn by debug gizmos.
type Line struct {
	Start, End Vector
}

// ArrowOptions controls the shape of line-drawn arrow gizmos.
type ArrowOptions struct {
	// Thickness is the distance between the extra lines drawn alongside the shaft to make it look thicker.
	// Values of 0.01 or less draw the shaft as a single line.
	Thickness float64
	// HeadLengthRatio is the length of the arrowhead cone as a ratio of the arrow's magnitude.
	HeadLengthRatio float64
	// HeadRadiusRatio is the radius of the arrowhead cone's base as a ratio of the square root of the arrow's magnitude
	// (so that long arrows don't end up with huge heads).
	HeadRadiusRatio float64
	// Segments is how many points make up the circle at the base of the arrowhead cone; minimum of 3.
	Segments int
}

// DefaultArrowOptions creates an instance of ArrowOptions with some sensible defaults.
func DefaultArrowOptions() ArrowOptions {
	return ArrowOptions{
		Thickness:       0.1,
		HeadLengthRatio: 0.2,
		HeadRadiusRatio: 0.2,
		Segments:        12,
	}
}

// ArrowLines returns the line segments making up an arrow gizmo starting at start, pointing along direction and magnitude units long:
// the shaft, (if the options' Thickness is above 0.01) two lines flanking the shaft, and a cone-shaped arrowhead built out of lines
// running from the tip to a circle around the shaft and around that circle.
// A zero-length direction or a non-positive magnitude returns no lines.
func ArrowLines(start, direction Vector, magnitude float64, options ArrowOptions) []Line {

	if tooShort(direction) || magnitude <= 0 {
		return nil
	}

	segments := options.Segments
	if segments < 3 {
		segments = 3
	}

	// Can't fail; direction isn't zero-length and lookTowards swaps the up hint for vertical directions
	rotation, _ := lookTowards(direction)

	dir := direction.Unit()
	end := start.Add(dir.Scale(magnitude))

	lines := make([]Line, 0, 3+segments*2)

	lines = append(lines, Line{start, end})

	if options.Thickness > 0.01 {
		offset := rotation.Right().Scale(options.Thickness * 0.5)
		lines = append(lines,
			Line{start.Sub(offset), end.Sub(offset)},
			Line{start.Add(offset), end.Add(offset)},
		)
	}

	headLength := magnitude * options.HeadLengthRatio
	headRadius := math.Sqrt(magnitude) * options.HeadRadiusRatio

	base := make([]Vector, segments)

	for i := range base {
		angle := float64(i) * math.Pi * 2 / float64(segments)
		point := NewVector(math.Cos(angle)*headRadius, math.Sin(angle)*headRadius, -headLength)
		base[i] = end.Add(rotation.RotateVector(point))
	}

	for i := range base {
		next := (i + 1) % segments
		lines = append(lines, Line{end, base[i]}, Line{base[i], base[next]})
	}

	return lines

}

// ArrowLinesRotation returns the line segments of an arrow gizmo pointing along the rotation's forward axis.
func ArrowLinesRotation(start Vector, rotation Quaternion, magnitude float64, options ArrowOptions) []Line {
	return ArrowLines(start, rotation.RotateVector(WorldForward), magnitude, options)
}

// ArrowLinesEuler returns the line segments of an arrow gizmo pointing along WorldForward rotated by the euler angles given (in radians).
func ArrowLinesEuler(start, euler Vector, magnitude float64, options ArrowOptions) []Line {
	return ArrowLinesRotation(start, NewQuaternionFromEuler(euler.X, euler.Y, euler.Z), magnitude, options)
}
