package vecviz

import (
	"errors"
	"math"
)

// World axes used when mapping directions to orientations. WorldForward is the canonical forward axis: an unrotated object
// faces WorldForward, and all rest axis corrections are computed against it.
var (
	WorldRight   = VecX
	WorldUp      = VecY
	WorldForward = VecZ
	WorldBack    = VecZ.Invert()
)

const (
	// fromToParallelDot is how close the dot product of two unit vectors needs to be to 1 (or -1) for FromToRotation to treat
	// them as already aligned (or opposite) instead of building a rotation out of their (near-zero) cross product.
	fromToParallelDot = 0.9999

	// lookParallelEpsilon is the smallest length the cross product of LookRotation's unit forward and up vectors can have.
	lookParallelEpsilon = 1e-6
)

// ErrDegenerateInput is matched (through errors.Is) by every DegenerateInputError.
var ErrDegenerateInput = errors.New("degenerate input")

// DegenerateInputError is returned when an orientation can't be computed from the vectors given, either because one is
// zero-length or because two vectors that have to span a plane are parallel.
type DegenerateInputError struct {
	Op     string // The function that failed
	Reason string
}

func (e *DegenerateInputError) Error() string {
	return "vecviz: " + e.Op + ": degenerate input: " + e.Reason
}

func (e *DegenerateInputError) Is(target error) bool {
	return target == ErrDegenerateInput
}

func tooShort(vec Vector) bool {
	return vec.Magnitude() < 1e-8
}

func parallel(a, b Vector) bool {
	return a.Unit().Cross(b.Unit()).Magnitude() < lookParallelEpsilon
}

// LookRotation returns a Quaternion that rotates WorldForward onto forward, with WorldUp rotated as close to up as possible.
// Neither vector needs to be normalized or orthogonal to the other, but they must not be zero-length or parallel
// (pointing the same or opposite ways); in that case, LookRotation returns an identity Quaternion and a *DegenerateInputError.
func LookRotation(forward, up Vector) (Quaternion, error) {

	if tooShort(forward) {
		return NewQuaternionIdentity(), &DegenerateInputError{Op: "LookRotation", Reason: "zero-length forward vector"}
	}

	if tooShort(up) {
		return NewQuaternionIdentity(), &DegenerateInputError{Op: "LookRotation", Reason: "zero-length up vector"}
	}

	if parallel(forward, up) {
		return NewQuaternionIdentity(), &DegenerateInputError{Op: "LookRotation", Reason: "forward and up vectors are parallel"}
	}

	forward = forward.Unit()
	right := up.Cross(forward).Unit()
	up = forward.Cross(right)

	return NewMatrix3FromColumns(right, up, forward).ToQuaternion(), nil

}

// FromToRotation returns the shortest-arc Quaternion that rotates the from Vector onto the to Vector. Neither needs to be normalized.
// Vectors that (nearly) point the same way return identity; vectors that (nearly) point opposite ways return a 180 degree rotation
// around an axis orthogonal to from. If either Vector is zero-length, an identity Quaternion is returned.
func FromToRotation(from, to Vector) Quaternion {

	from = from.Unit()
	to = to.Unit()

	dot := from.Dot(to)

	if dot > fromToParallelDot {
		return NewQuaternionIdentity()
	} else if dot < -fromToParallelDot {
		orthogonal := from.Cross(WorldRight)
		// from is (nearly) parallel to WorldRight, so try up instead
		if orthogonal.Magnitude() < 0.001 {
			orthogonal = from.Cross(WorldUp)
		}
		return NewQuaternionFromAxisAngle(orthogonal.Unit(), math.Pi).Normalized()
	}

	cross := from.Cross(to)
	s := math.Sqrt((1 + dot) * 2)
	invS := 1 / s

	return Quaternion{
		cross.X * invS,
		cross.Y * invS,
		cross.Z * invS,
		s * 0.5,
	}.Normalized()

}

// RotationFromDirection returns the orientation an object should have so that its rest axis (the direction it faces when
// unrotated, like VecY for an arrow model pointing upwards) points along the direction given.
// The result is LookRotation(direction, WorldUp) combined with the correction rotating restAxis onto WorldForward;
// the correction is applied first, in the object's local frame. If direction is parallel to WorldUp, WorldBack is used
// as the up hint instead. A zero-length direction or rest axis returns a *DegenerateInputError.
func RotationFromDirection(direction, restAxis Vector) (Quaternion, error) {

	if tooShort(direction) {
		return NewQuaternionIdentity(), &DegenerateInputError{Op: "RotationFromDirection", Reason: "zero-length direction"}
	}

	if tooShort(restAxis) {
		return NewQuaternionIdentity(), &DegenerateInputError{Op: "RotationFromDirection", Reason: "zero-length rest axis"}
	}

	look, err := lookTowards(direction)
	if err != nil {
		return NewQuaternionIdentity(), err
	}

	correction := FromToRotation(restAxis, WorldForward)

	return look.Mult(correction).Normalized(), nil

}

// lookTowards returns LookRotation(direction, WorldUp), using WorldBack as the up hint for directions parallel to WorldUp.
func lookTowards(direction Vector) (Quaternion, error) {
	up := WorldUp
	if parallel(direction, up) {
		up = WorldBack
	}
	return LookRotation(direction, up)
}

// DirectionFromRotation is the inverse of RotationFromDirection; it returns the unit direction the rest axis of an object with the given
// orientation points along.
func DirectionFromRotation(orientation Quaternion, restAxis Vector) Vector {
	correction := FromToRotation(restAxis, WorldForward).Inverted()
	return orientation.Mult(correction).Normalized().RotateVector(WorldForward)
}
