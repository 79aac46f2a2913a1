package vecviz

import (
	"math"
)

// View is a perspective viewpoint onto the world: where a camera is, which way it's facing, and how it projects onto a screen
// of a given size in pixels. A View looks down its local -Z axis, with its local +Y axis pointing up on screen.
type View struct {
	Position    Vector
	Rotation    Quaternion
	FieldOfView float64 // Vertical field of view in degrees
	Near, Far   float64 // Near and far clipping distances in world units
	Width       int     // Width of the screen in pixels
	Height      int     // Height of the screen in pixels
}

// NewView creates a View with a screen of the size given at the world origin, looking down -Z, with a 60 degree field of view.
func NewView(w, h int) View {
	return View{
		Rotation:    NewQuaternionIdentity(),
		FieldOfView: 60,
		Near:        0.1,
		Far:         100,
		Width:       w,
		Height:      h,
	}
}

// AspectRatio returns the ratio of the View's width to its height.
func (view *View) AspectRatio() float64 {
	if view.Height == 0 {
		return 1
	}
	return float64(view.Width) / float64(view.Height)
}

// LookAt rotates the View to look at the target position, keeping its up direction as close to up as possible.
// If the target is the View's position, or it's straight up or down from the View, LookAt returns a *DegenerateInputError
// and leaves the rotation alone.
func (view *View) LookAt(target, up Vector) error {
	// The View looks down -Z, so its +Z axis points from the target back to the View.
	rotation, err := LookRotation(view.Position.Sub(target), up)
	if err != nil {
		return err
	}
	view.Rotation = rotation
	return nil
}

// maxOrbitPitch keeps orbiting views off of the poles, where looking at the target would be parallel to WorldUp.
const maxOrbitPitch = math.Pi/2 - 0.01

// minOrbitDistance is the closest an orbiting View gets to its target, whatever its near plane is.
const minOrbitDistance = 0.001

// Orbit places the View distance units away from the target, yaw radians around WorldUp (from +Z towards +X) and pitch
// radians above the horizon (clamped to just short of straight up or down), looking at the target. The distance is kept at
// or past the near plane, and never less than minOrbitDistance.
func (view *View) Orbit(yaw, pitch, distance float64, target Vector) error {

	pitch = clamp(pitch, -maxOrbitPitch, maxOrbitPitch)

	distance = math.Max(distance, math.Max(view.Near, minOrbitDistance))

	offset := NewVector(
		math.Sin(yaw)*math.Cos(pitch),
		math.Sin(pitch),
		math.Cos(yaw)*math.Cos(pitch),
	)

	view.Position = target.Add(offset.Scale(distance))

	return view.LookAt(target, WorldUp)

}

// WorldToView transforms a world position into the View's local space.
func (view *View) WorldToView(point Vector) Vector {
	return view.Rotation.Inverted().RotateVector(point.Sub(view.Position))
}

// focalLength returns how many pixels a point one unit off-center at a depth of one unit is from the center of the screen.
func (view *View) focalLength() float64 {
	return float64(view.Height) / 2 / math.Tan(ToRadians(view.FieldOfView)/2)
}

// viewToScreen projects a point in view space onto the screen; it doesn't check the point's depth.
func (view *View) viewToScreen(local Vector) Vector {
	depth := -local.Z
	f := view.focalLength()
	return NewVector(
		float64(view.Width)/2+local.X/depth*f,
		float64(view.Height)/2-local.Y/depth*f,
		depth,
	)
}

// WorldToScreenPixels projects a world position onto the screen, returning its X and Y position in pixels, with Z being its depth
// (distance in front of the View along its facing). If the position is closer than the near plane (or behind the View),
// ok is false.
func (view *View) WorldToScreenPixels(point Vector) (screen Vector, ok bool) {
	local := view.WorldToView(point)
	if -local.Z < view.Near {
		return Vector{}, false
	}
	return view.viewToScreen(local), true
}

// LineToScreenPixels projects a world-space line onto the screen, clipping it against the near plane so that lines partially
// behind the View are still drawn correctly. ok is false if the line is entirely behind the near plane.
func (view *View) LineToScreenPixels(line Line) (start, end Vector, ok bool) {

	a := view.WorldToView(line.Start)
	b := view.WorldToView(line.End)

	da, db := -a.Z, -b.Z

	if da < view.Near && db < view.Near {
		return Vector{}, Vector{}, false
	}

	if da < view.Near {
		a = b.Lerp(a, (db-view.Near)/(db-da))
	} else if db < view.Near {
		b = a.Lerp(b, (da-view.Near)/(da-db))
	}

	return view.viewToScreen(a), view.viewToScreen(b), true

}

// InView returns if the world position given is visible to the View (within its screen and between its near and far planes).
func (view *View) InView(point Vector) bool {
	screen, ok := view.WorldToScreenPixels(point)
	if !ok || screen.Z > view.Far {
		return false
	}
	return screen.X >= 0 && screen.Y >= 0 && screen.X <= float64(view.Width) && screen.Y <= float64(view.Height)
}
