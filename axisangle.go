package vecviz

// AxisAngle represents a rotation in radians around a given 3D axis. Positive angles rotate counter-clockwise when looking
// down the axis towards the origin (the right-hand rule).
type AxisAngle struct {
	Axis  Vector  // 3 dimensional axis for rotating
	Angle float64 // Rotation in radians
}

// NewAxisAngle creates a new AxisAngle out of the given 3D vector axis and angular rotation. The axis is normalized.
func NewAxisAngle(axis Vector, angle float64) AxisAngle {
	return AxisAngle{
		Axis:  axis.Unit(),
		Angle: angle,
	}
}

// NewAxisAngleFromQuaternion returns the AxisAngle representing the same rotation as the Quaternion given.
func NewAxisAngleFromQuaternion(quat Quaternion) AxisAngle {
	axis, angle := quat.ToAxisAngle()
	return AxisAngle{Axis: axis, Angle: angle}
}

// ToQuaternion returns a Quaternion representing the same rotation as the AxisAngle.
func (aa AxisAngle) ToQuaternion() Quaternion {
	return NewQuaternionFromAxisAngle(aa.Axis, aa.Angle)
}

// RotateVector rotates the given Vector by the axis and angle given, returning a rotated copy of it. For example, assuming the AxisAngle had an Axis
// of [0, 1, 0] (+Y, or "Up") and an Angle of pi / 2, axisAngle.RotateVector(Vector{1, 0, 0}) would return Vector{0, 0, -1}.
func (aa AxisAngle) RotateVector(vec Vector) Vector {
	return vec.Rotate(aa.Axis, aa.Angle)
}

// Add returns the rotation of the calling AxisAngle followed by the other AxisAngle.
func (aa AxisAngle) Add(other AxisAngle) AxisAngle {
	return NewAxisAngleFromQuaternion(other.ToQuaternion().Mult(aa.ToQuaternion()))
}

// Sub returns the rotation of the calling AxisAngle followed by the inverse of the other AxisAngle.
func (aa AxisAngle) Sub(other AxisAngle) AxisAngle {
	other.Angle *= -1
	return aa.Add(other)
}
