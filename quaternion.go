package vecviz

import (
	"fmt"
	"math"
)

// Quaternion represents a rotation in 3D space. X, Y, and Z are the imaginary (vector) part, W is the real part.
// Quaternions used as orientations in vecviz are kept at unit length; any function that composes rotations
// renormalizes its result to avoid drift.
type Quaternion struct {
	X, Y, Z, W float64
}

// NewQuaternion creates a new Quaternion out of the components given. The result is not normalized.
func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{x, y, z, w}
}

// NewQuaternionIdentity returns a Quaternion representing no rotation.
func NewQuaternionIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

// NewQuaternionFromAxisAngle returns a Quaternion that rotates counter-clockwise by angle (in radians) around the axis given
// (looking down the axis towards the origin). A zero-length axis returns an identity Quaternion.
func NewQuaternionFromAxisAngle(axis Vector, angle float64) Quaternion {
	if axis.IsZero() {
		return NewQuaternionIdentity()
	}
	axis = axis.Unit()
	s := math.Sin(angle / 2)
	return Quaternion{axis.X * s, axis.Y * s, axis.Z * s, math.Cos(angle / 2)}
}

// NewQuaternionFromEuler returns a Quaternion out of the provided euler angles (in radians). The rotations are applied
// around the Z axis first, then the X axis, and then the Y axis.
func NewQuaternionFromEuler(x, y, z float64) Quaternion {
	qx := NewQuaternionFromAxisAngle(VecX, x)
	qy := NewQuaternionFromAxisAngle(VecY, y)
	qz := NewQuaternionFromAxisAngle(VecZ, z)
	return qy.Mult(qx).Mult(qz).Normalized()
}

// Mult returns the Hamilton product of the calling Quaternion and the other one. The resulting rotation applies
// other first, and then the calling Quaternion (so a.Mult(b).RotateVector(v) == a.RotateVector(b.RotateVector(v))).
func (quat Quaternion) Mult(other Quaternion) Quaternion {
	return Quaternion{
		X: quat.W*other.X + quat.X*other.W + quat.Y*other.Z - quat.Z*other.Y,
		Y: quat.W*other.Y - quat.X*other.Z + quat.Y*other.W + quat.Z*other.X,
		Z: quat.W*other.Z + quat.X*other.Y - quat.Y*other.X + quat.Z*other.W,
		W: quat.W*other.W - quat.X*other.X - quat.Y*other.Y - quat.Z*other.Z,
	}
}

// Conjugated returns the conjugate of the Quaternion (the vector part negated).
func (quat Quaternion) Conjugated() Quaternion {
	return Quaternion{-quat.X, -quat.Y, -quat.Z, quat.W}
}

// Inverted returns the inverse of the Quaternion, which undoes its rotation. A zero Quaternion is returned as-is.
func (quat Quaternion) Inverted() Quaternion {
	magSq := quat.Dot(quat)
	if magSq == 0 {
		return quat
	}
	c := quat.Conjugated()
	return Quaternion{c.X / magSq, c.Y / magSq, c.Z / magSq, c.W / magSq}
}

// Magnitude returns the length of the Quaternion.
func (quat Quaternion) Magnitude() float64 {
	return math.Sqrt(quat.Dot(quat))
}

// Normalized returns a unit-length copy of the Quaternion. A (practically) zero-length Quaternion returns identity.
func (quat Quaternion) Normalized() Quaternion {
	m := quat.Magnitude()
	if m < 1e-12 {
		return NewQuaternionIdentity()
	}
	return Quaternion{quat.X / m, quat.Y / m, quat.Z / m, quat.W / m}
}

func (quat Quaternion) Dot(other Quaternion) float64 {
	return quat.X*other.X + quat.Y*other.Y + quat.Z*other.Z + quat.W*other.W
}

// RotateVector rotates the given Vector by the Quaternion, returning the rotated copy. The Quaternion is expected to be unit length.
func (quat Quaternion) RotateVector(vec Vector) Vector {
	u := Vector{quat.X, quat.Y, quat.Z}
	t := u.Cross(vec).Scale(2)
	return vec.Add(t.Scale(quat.W)).Add(u.Cross(t))
}

// Slerp spherically interpolates between the calling Quaternion and the other Quaternion by the percentage given, taking the shortest path.
func (quat Quaternion) Slerp(other Quaternion, percent float64) Quaternion {

	if percent <= 0 {
		return quat
	} else if percent >= 1 {
		return other
	}

	cosHalfTheta := quat.Dot(other)

	if cosHalfTheta < 0 {
		other = Quaternion{-other.X, -other.Y, -other.Z, -other.W}
		cosHalfTheta = -cosHalfTheta
	}

	// Close enough that a normalized lerp is indistinguishable and avoids dividing by ~0
	if cosHalfTheta > 0.9995 {
		return Quaternion{
			quat.X + (other.X-quat.X)*percent,
			quat.Y + (other.Y-quat.Y)*percent,
			quat.Z + (other.Z-quat.Z)*percent,
			quat.W + (other.W-quat.W)*percent,
		}.Normalized()
	}

	halfTheta := math.Acos(cosHalfTheta)
	sinHalfTheta := math.Sqrt(1 - cosHalfTheta*cosHalfTheta)

	ratioA := math.Sin((1-percent)*halfTheta) / sinHalfTheta
	ratioB := math.Sin(percent*halfTheta) / sinHalfTheta

	return Quaternion{
		quat.X*ratioA + other.X*ratioB,
		quat.Y*ratioA + other.Y*ratioB,
		quat.Z*ratioA + other.Z*ratioB,
		quat.W*ratioA + other.W*ratioB,
	}.Normalized()

}

// Equals returns true if both Quaternions represent the same rotation (q and -q are the same rotation).
func (quat Quaternion) Equals(other Quaternion) bool {
	return quat.equalComponents(other, 1e-5) || quat.equalComponents(Quaternion{-other.X, -other.Y, -other.Z, -other.W}, 1e-5)
}

func (quat Quaternion) equalComponents(other Quaternion, epsilon float64) bool {
	return math.Abs(quat.X-other.X) <= epsilon &&
		math.Abs(quat.Y-other.Y) <= epsilon &&
		math.Abs(quat.Z-other.Z) <= epsilon &&
		math.Abs(quat.W-other.W) <= epsilon
}

// IsIdentity returns true if the Quaternion represents no rotation.
func (quat Quaternion) IsIdentity() bool {
	return quat.Equals(NewQuaternionIdentity())
}

// ToAxisAngle returns the axis and angle (in radians) that the Quaternion rotates around. For an identity Quaternion,
// the axis is VecY and the angle is 0.
func (quat Quaternion) ToAxisAngle() (Vector, float64) {
	q := quat.Normalized()
	angle := 2 * math.Acos(clamp(q.W, -1, 1))
	s := math.Sqrt(1 - q.W*q.W)
	if s < 1e-8 {
		return VecY, 0
	}
	return Vector{q.X / s, q.Y / s, q.Z / s}, angle
}

// ToMatrix3 returns the rotation Matrix3 equivalent to the (unit length) Quaternion.
func (quat Quaternion) ToMatrix3() Matrix3 {

	x, y, z, w := quat.X, quat.Y, quat.Z, quat.W

	return Matrix3{
		{1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w)},
		{2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w)},
		{2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y)},
	}

}

// Right returns the Quaternion's local right axis (VecX rotated by the Quaternion).
func (quat Quaternion) Right() Vector {
	return quat.RotateVector(VecX)
}

// Up returns the Quaternion's local up axis (VecY rotated by the Quaternion).
func (quat Quaternion) Up() Vector {
	return quat.RotateVector(VecY)
}

// Forward returns the Quaternion's local forward axis (VecZ rotated by the Quaternion).
func (quat Quaternion) Forward() Vector {
	return quat.RotateVector(VecZ)
}

func (quat Quaternion) String() string {
	return fmt.Sprintf("(%.5f, %.5f, %.5f, %.5f)", quat.X, quat.Y, quat.Z, quat.W)
}
