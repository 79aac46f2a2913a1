package vecviz

import "math"

// Ray is a half-line, starting at Origin and heading along Direction (a unit Vector) forever.
type Ray struct {
	Origin    Vector
	Direction Vector
}

// NewRay creates a new Ray; the direction is normalized.
func NewRay(origin, direction Vector) Ray {
	return Ray{Origin: origin, Direction: direction.Unit()}
}

// At returns the point along the Ray the distance given away from its origin.
func (ray Ray) At(distance float64) Vector {
	return ray.Origin.Add(ray.Direction.Scale(distance))
}

// RayHit is the result of a successful ray test against an Arrow.
type RayHit struct {
	Arrow    *Arrow
	Position Vector  // The point on the Arrow closest to the Ray
	Distance float64 // How far along the Ray the hit is
	Miss     float64 // How far the Ray passes from the Arrow; 0 means it passes right through the Arrow's shaft line
}

// closestToSegment returns how far along the Ray and how far along the segment (from 0 at start to 1 at start + delta) the
// points closest to each other are.
func (ray Ray) closestToSegment(start, delta Vector) (rayT, segmentS float64) {

	r := ray.Origin.Sub(start)
	a := ray.Direction.Dot(ray.Direction)
	e := delta.Dot(delta)
	c := ray.Direction.Dot(r)

	// The segment is a single point
	if e < 1e-12 {
		return math.Max(0, -c/a), 0
	}

	b := ray.Direction.Dot(delta)
	f := delta.Dot(r)

	denom := a*e - b*b

	// Parallel lines have no single closest pair, so start from the Ray's origin
	if denom > 1e-12 {
		rayT = math.Max(0, (b*f-c*e)/denom)
	}

	segmentS = (b*rayT + f) / e

	if segmentS < 0 {
		segmentS = 0
		rayT = math.Max(0, -c/a)
	} else if segmentS > 1 {
		segmentS = 1
		rayT = math.Max(0, (b-c)/a)
	}

	return rayT, segmentS

}

// RayTestArrow tests the Ray against the shaft of the Arrow given, treating the Arrow as a line segment from its tail to its tip.
// If the Ray passes within radius units of the Arrow, a RayHit is returned; otherwise, ok is false.
func (ray Ray) RayTestArrow(arrow *Arrow, radius float64) (hit RayHit, ok bool) {

	t, s := ray.closestToSegment(arrow.Position, arrow.Vector())

	onRay := ray.At(t)
	onArrow := arrow.Position.Add(arrow.Vector().Scale(s))

	miss := onRay.Distance(onArrow)
	if miss > radius {
		return RayHit{}, false
	}

	return RayHit{
		Arrow:    arrow,
		Position: onArrow,
		Distance: t,
		Miss:     miss,
	}, true

}

// RayTest tests the Ray against all of the Arrows in the Scene, returning the closest hit along the Ray, or nil if the Ray
// doesn't pass within radius units of any of them.
func (scene *Scene) RayTest(ray Ray, radius float64) *RayHit {

	var closest *RayHit

	for _, arrow := range scene.Arrows {

		hit, ok := ray.RayTestArrow(arrow, radius)
		if !ok {
			continue
		}

		if closest == nil || hit.Distance < closest.Distance {
			closest = &hit
		}

	}

	return closest

}

// ScreenToWorldRay returns the Ray starting at the View's position and passing through the pixel position given on its screen;
// this is useful for picking things in the world with the mouse.
func (view *View) ScreenToWorldRay(x, y float64) Ray {

	f := view.focalLength()

	local := NewVector(
		(x-float64(view.Width)/2)/f,
		-(y-float64(view.Height)/2)/f,
		-1,
	)

	return NewRay(view.Position, view.Rotation.RotateVector(local))

}
