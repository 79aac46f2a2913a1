package vecviz

import (
	"fmt"
	"math"
)

// VecX represents a unit vector in the global direction of VecX on vecviz's right-handed coordinate system (right).
var VecX = NewVector(1, 0, 0)

// VecY represents a unit vector in the global direction of VecY on vecviz's right-handed coordinate system (upwards).
var VecY = NewVector(0, 1, 0)

// VecZ represents a unit vector in the global direction of VecZ on vecviz's right-handed coordinate system (forward, the canonical
// direction an unrotated object faces).
var VecZ = NewVector(0, 0, 1)

// Vector represents a 3D Vector, which can be used for usual 3D applications (position, direction, velocity, etc).
// Any Vector functions that modify the calling Vector return copies of the modified Vector, meaning you can do method-chaining easily.
// Vectors are most efficient when copied (so try not to store pointers to them if possible).
type Vector struct {
	X float64 // The X (1st) component of the Vector
	Y float64 // The Y (2nd) component of the Vector
	Z float64 // The Z (3rd) component of the Vector
}

// NewVector creates a new Vector with the specified x, y, and z components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// NewVectorZero creates a new "zero-ed out" Vector, with the values of 0, 0, and 0.
func NewVectorZero() Vector {
	return Vector{}
}

// Add returns a copy of the calling vector, added together with the other Vector provided.
func (vec Vector) Add(other Vector) Vector {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector, with the other Vector subtracted from it.
func (vec Vector) Sub(other Vector) Vector {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Cross returns a new Vector, indicating the cross product of the calling Vector and the provided Other Vector.
// The cross product of two parallel Vectors is a zero Vector.
func (vec Vector) Cross(other Vector) Vector {

	ogVecY := vec.Y
	ogVecZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogVecZ*other.X - other.Z*vec.X
	vec.X = ogVecY*other.Z - other.Y*ogVecZ

	return vec

}

// Invert returns a copy of the Vector pointing the opposite way.
func (vec Vector) Invert() Vector {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Magnitude returns the length of the Vector.
func (vec Vector) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector; this is faster than Magnitude() as it avoids using math.Sqrt().
func (vec Vector) MagnitudeSquared() float64 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

func (vec Vector) Distance(other Vector) float64 {
	return vec.Sub(other).Magnitude()
}

// Unit returns a copy of the Vector, normalized (set to be of unit length).
// A Vector that is (practically) zero-length is returned unmodified.
func (vec Vector) Unit() Vector {
	l := vec.Magnitude()
	if l < 1e-8 {
		// If it's 0, then don't modify the vector
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Set sets the values in the Vector to the x, y, and z values provided.
func (vec Vector) Set(x, y, z float64) Vector {
	vec.X = x
	vec.Y = y
	vec.Z = z
	return vec
}

// Floats returns a [3]float64 array consisting of the Vector's contents.
func (vec Vector) Floats() [3]float64 {
	return [3]float64{vec.X, vec.Y, vec.Z}
}

// Floats32 returns a [3]float32 array consisting of the Vector's contents; this is the layout mesh vertex data uses.
func (vec Vector) Floats32() [3]float32 {
	return [3]float32{float32(vec.X), float32(vec.Y), float32(vec.Z)}
}

// Equals returns true if the two Vectors are close enough in all values.
func (vec Vector) Equals(other Vector) bool {
	return vec.EqualsApprox(other, 1e-8)
}

// EqualsApprox returns true if every component of the two Vectors is within epsilon of the other's.
func (vec Vector) EqualsApprox(other Vector, epsilon float64) bool {
	return math.Abs(vec.X-other.X) <= epsilon &&
		math.Abs(vec.Y-other.Y) <= epsilon &&
		math.Abs(vec.Z-other.Z) <= epsilon
}

// IsZero returns true if the values in the Vector are extremely close to 0.
func (vec Vector) IsZero() bool {
	return vec.Equals(Vector{})
}

// Lerp returns a Vector linearly interpolated between the calling Vector and the other Vector by the percentage given (0 - 1).
func (vec Vector) Lerp(other Vector, percent float64) Vector {
	return vec.Add(other.Sub(vec).Scale(percent))
}

// Rotate returns a copy of the Vector, rotated around the Vector axis provided by the angle provided (in radians).
// The function is most efficient if passed an orthogonal, normalized axis (i.e. the VecX, VecY, or VecZ constants).
func (vec Vector) Rotate(axis Vector, angle float64) Vector {

	cos, sin := math.Cos(angle), math.Sin(angle)

	if axis.Equals(VecX) {
		ay, az := vec.Y, vec.Z
		vec.Y = ay*cos - az*sin
		vec.Z = ay*sin + az*cos
		return vec
	}

	if axis.Equals(VecY) {
		ax, az := vec.X, vec.Z
		vec.X = ax*cos + az*sin
		vec.Z = -ax*sin + az*cos
		return vec
	}

	if axis.Equals(VecZ) {
		ax, ay := vec.X, vec.Y
		vec.X = ax*cos - ay*sin
		vec.Y = ax*sin + ay*cos
		return vec
	}

	// Rodrigues' rotation formula
	u := axis.Unit()
	return vec.Scale(cos).Add(u.Cross(vec).Scale(sin)).Add(u.Scale(u.Dot(vec) * (1 - cos)))

}

// Angle returns the unsigned angle between the calling Vector and the provided other Vector, in radians.
// If either Vector is (practically) zero-length, Angle returns 0.
func (vec Vector) Angle(other Vector) float64 {
	denom := math.Sqrt(vec.MagnitudeSquared() * other.MagnitudeSquared())
	if denom < 1e-15 {
		return 0
	}
	return math.Acos(clamp(vec.Dot(other)/denom, -1, 1))
}

// SignedAngle returns the angle between the calling Vector and the other Vector in radians, signed by the
// direction of rotation around the axis given; counter-clockwise when looking down the axis is positive.
func (vec Vector) SignedAngle(other, axis Vector) float64 {
	angle := vec.Angle(other)
	if axis.Dot(vec.Cross(other)) < 0 {
		return -angle
	}
	return angle
}

// Project returns the calling Vector projected onto the other Vector (which acts as a normal, and doesn't need to be unit length).
// Projecting onto a zero-length Vector returns a zero Vector.
func (vec Vector) Project(onNormal Vector) Vector {
	sqrMag := onNormal.MagnitudeSquared()
	if sqrMag < 1e-15 {
		return Vector{}
	}
	return onNormal.Scale(vec.Dot(onNormal) / sqrMag)
}

// Reflect returns the calling Vector reflected off of the plane defined by the normal provided.
// The normal isn't normalized, so pass a unit Vector for a reflection that keeps the calling Vector's length.
func (vec Vector) Reflect(normal Vector) Vector {
	return vec.Sub(normal.Scale(2 * normal.Dot(vec)))
}

// Scale scales a Vector by the given scalar.
func (vec Vector) Scale(scalar float64) Vector {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Divide divides a Vector by the given scalar.
func (vec Vector) Divide(scalar float64) Vector {
	vec.X /= scalar
	vec.Y /= scalar
	vec.Z /= scalar
	return vec
}

// Dot returns the dot product of a Vector and another Vector.
func (vec Vector) Dot(other Vector) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// String returns the Vector formatted to two decimal places, like "(0.00, 1.00, 0.00)".
func (vec Vector) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", vec.X, vec.Y, vec.Z)
}
