package vecviz

import (
	"math"
	"strconv"
)

// Matrix3 represents a 3x3 rotation matrix, indexed as matrix[row][column]. Matrix3s in vecviz act on column vectors, so the
// columns of a rotation Matrix3 are the rotated right (X), up (Y), and forward (Z) axes.
type Matrix3 [3][3]float64

// NewMatrix3 returns a new identity Matrix3.
func NewMatrix3() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// NewMatrix3FromColumns returns a new Matrix3 with the three Vectors given set as its columns (i.e. the right, up, and forward axes of a basis).
func NewMatrix3FromColumns(right, up, forward Vector) Matrix3 {
	mat := Matrix3{}
	mat = mat.SetColumn(0, right)
	mat = mat.SetColumn(1, up)
	mat = mat.SetColumn(2, forward)
	return mat
}

// NewMatrix3Rotate returns a new Matrix3 designed to rotate by the angle given (in radians) along the axis given.
// This rotation works as though you pierced the object utilizing the matrix through by the axis, and then rotated it
// counter-clockwise by the angle in radians.
func NewMatrix3Rotate(axis Vector, angle float64) Matrix3 {

	// Default to spinning on +Y axis if there is no valid axis
	if axis.IsZero() {
		axis = VecY
	}

	v := axis.Unit()
	s := math.Sin(angle)
	c := math.Cos(angle)
	m := 1 - c

	return Matrix3{
		{m*v.X*v.X + c, m*v.X*v.Y - v.Z*s, m*v.X*v.Z + v.Y*s},
		{m*v.X*v.Y + v.Z*s, m*v.Y*v.Y + c, m*v.Y*v.Z - v.X*s},
		{m*v.X*v.Z - v.Y*s, m*v.Y*v.Z + v.X*s, m*v.Z*v.Z + c},
	}

}

// Column returns the column of the Matrix3 at the index given as a Vector.
func (matrix Matrix3) Column(index int) Vector {
	return Vector{matrix[0][index], matrix[1][index], matrix[2][index]}
}

// SetColumn returns a copy of the Matrix3 with the column at the index given set to the Vector provided.
func (matrix Matrix3) SetColumn(index int, vec Vector) Matrix3 {
	matrix[0][index] = vec.X
	matrix[1][index] = vec.Y
	matrix[2][index] = vec.Z
	return matrix
}

// Mult multiplies the calling Matrix3 by the other one; the result applies other first.
func (matrix Matrix3) Mult(other Matrix3) Matrix3 {
	out := Matrix3{}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = matrix[r][0]*other[0][c] + matrix[r][1]*other[1][c] + matrix[r][2]*other[2][c]
		}
	}
	return out
}

// MultVec transforms the Vector provided by the Matrix3.
func (matrix Matrix3) MultVec(vec Vector) Vector {
	return Vector{
		matrix[0][0]*vec.X + matrix[0][1]*vec.Y + matrix[0][2]*vec.Z,
		matrix[1][0]*vec.X + matrix[1][1]*vec.Y + matrix[1][2]*vec.Z,
		matrix[2][0]*vec.X + matrix[2][1]*vec.Y + matrix[2][2]*vec.Z,
	}
}

// Transposed transposes a Matrix3. For rotation matrices (which are orthonormal), this is equivalent to inverting it.
func (matrix Matrix3) Transposed() Matrix3 {
	out := Matrix3{}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = matrix[c][r]
		}
	}
	return out
}

// Determinant returns the determinant of the Matrix3; a proper rotation matrix has a determinant of 1.
func (matrix Matrix3) Determinant() float64 {
	m := matrix
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// IsIdentity returns true if the Matrix3 is (close enough to) an identity Matrix3.
func (matrix Matrix3) IsIdentity() bool {
	id := NewMatrix3()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if math.Abs(matrix[r][c]-id[r][c]) > 1e-6 {
				return false
			}
		}
	}
	return true
}

// ToQuaternion returns a unit Quaternion representative of the Matrix3's rotation (assuming it is a pure rotation matrix).
// When the trace is not positive, the conversion branches on the largest diagonal element to keep precision for
// rotations near 180 degrees.
func (matrix Matrix3) ToQuaternion() Quaternion {

	m := matrix
	trace := m[0][0] + m[1][1] + m[2][2]

	var q Quaternion

	if trace > 0 {
		s := math.Sqrt(trace+1) * 2
		q.W = 0.25 * s
		q.X = (m[2][1] - m[1][2]) / s
		q.Y = (m[0][2] - m[2][0]) / s
		q.Z = (m[1][0] - m[0][1]) / s
	} else if m[0][0] > m[1][1] && m[0][0] > m[2][2] {
		s := math.Sqrt(1+m[0][0]-m[1][1]-m[2][2]) * 2
		q.W = (m[2][1] - m[1][2]) / s
		q.X = 0.25 * s
		q.Y = (m[0][1] + m[1][0]) / s
		q.Z = (m[0][2] + m[2][0]) / s
	} else if m[1][1] > m[2][2] {
		s := math.Sqrt(1+m[1][1]-m[0][0]-m[2][2]) * 2
		q.W = (m[0][2] - m[2][0]) / s
		q.X = (m[0][1] + m[1][0]) / s
		q.Y = 0.25 * s
		q.Z = (m[1][2] + m[2][1]) / s
	} else {
		s := math.Sqrt(1+m[2][2]-m[0][0]-m[1][1]) * 2
		q.W = (m[1][0] - m[0][1]) / s
		q.X = (m[0][2] + m[2][0]) / s
		q.Y = (m[1][2] + m[2][1]) / s
		q.Z = 0.25 * s
	}

	return q.Normalized()

}

func (matrix Matrix3) String() string {
	s := "{"
	for r, row := range matrix {
		for c, v := range row {
			s += strconv.FormatFloat(v, 'f', 3, 64)
			if c < 2 {
				s += ", "
			}
		}
		if r < 2 {
			s += "\n "
		}
	}
	return s + "}"
}
