package vecviz

import (
	"fmt"
	"strings"
)

// Arrow is an interactive arrow object representing a vector. Its direction is stored as an orientation (Rotation) relative to
// its RestAxis, which is the direction the arrow model points in when unrotated; its length is stored separately as Magnitude.
type Arrow struct {
	Name      string
	Position  Vector     // Where the arrow's tail sits
	Rotation  Quaternion // The arrow's orientation; identity points the arrow along RestAxis
	Magnitude float64
	RestAxis  Vector // The direction the arrow model points in when it isn't rotated
	Color     Color
	Label     string // Text drawn by the arrow; if empty, InfoText() is drawn instead
}

// NewArrow creates a new unit-length, unrotated Arrow with the given name. Its rest axis is WorldUp, so it points up.
func NewArrow(name string) *Arrow {
	return &Arrow{
		Name:      name,
		Rotation:  NewQuaternionIdentity(),
		Magnitude: 1,
		RestAxis:  WorldUp,
		Color:     NewColor(1, 1, 1, 1),
	}
}

// SetAsVector points the Arrow along the Vector given and sets its magnitude to the Vector's length. A zero Vector sets the
// magnitude to 0 and leaves the Arrow's rotation alone, as there's no direction to point it in.
// If the Arrow's RestAxis is zero-length, the Arrow is left as it is and a *DegenerateInputError is returned.
func (arrow *Arrow) SetAsVector(vec Vector) error {

	if tooShort(vec) {
		arrow.Magnitude = 0
		return nil
	}

	if err := arrow.SetDirection(vec); err != nil {
		return err
	}

	arrow.SetMagnitude(vec.Magnitude())

	return nil

}

// SetDirection rotates the Arrow to point along the direction given (which doesn't need to be normalized). If the direction or
// the Arrow's RestAxis is zero-length, the rotation is left alone and a *DegenerateInputError is returned.
func (arrow *Arrow) SetDirection(direction Vector) error {
	rotation, err := RotationFromDirection(direction, arrow.RestAxis)
	if err != nil {
		return err
	}
	arrow.Rotation = rotation
	return nil
}

// SetMagnitude sets the length of the Arrow.
func (arrow *Arrow) SetMagnitude(magnitude float64) {
	arrow.Magnitude = magnitude
}

// Direction returns the unit direction the Arrow points in.
func (arrow *Arrow) Direction() Vector {
	return DirectionFromRotation(arrow.Rotation, arrow.RestAxis)
}

// Vector returns the vector the Arrow represents (its direction scaled by its magnitude).
func (arrow *Arrow) Vector() Vector {
	return arrow.Direction().Scale(arrow.Magnitude)
}

// Tip returns the world position of the Arrow's tip.
func (arrow *Arrow) Tip() Vector {
	return arrow.Position.Add(arrow.Vector())
}

// Rotate rotates the Arrow by the rotation given, in world space (as dragging a rotation gizmo would).
func (arrow *Arrow) Rotate(rotation Quaternion) {
	arrow.Rotation = rotation.Mult(arrow.Rotation).Normalized()
}

// MeshRotation returns the orientation to draw a mesh modeled along WorldForward (like the ones NewArrowMesh() generates)
// with so that it points the same way as the Arrow.
func (arrow *Arrow) MeshRotation() Quaternion {
	return arrow.Rotation.Mult(FromToRotation(arrow.RestAxis, WorldForward).Inverted())
}

// InfoText returns the Arrow's readout: its direction and its magnitude, formatted as "(x.xx, y.yy, z.zz)|m.m" with a
// trailing newline.
func (arrow *Arrow) InfoText() string {
	return fmt.Sprintf("%s|%.1f\n", arrow.Direction(), arrow.Magnitude)
}

// Text returns the text to draw next to the Arrow: its Label if it has one, or its InfoText() otherwise.
func (arrow *Arrow) Text() string {
	if arrow.Label != "" {
		return arrow.Label
	}
	return strings.TrimSuffix(arrow.InfoText(), "\n")
}
