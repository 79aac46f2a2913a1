package vecviz

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func toR3(v Vector) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

func fromR3(v r3.Vec) Vector {
	return NewVector(v.X, v.Y, v.Z)
}

func BenchmarkAllocateVectorStructs(b *testing.B) {

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		vecs := make([]Vector, 0, 100)
		vecs = append(vecs, Vector{0, 0, 0})
		_ = vecs
	}

}

func BenchmarkMathInternalVector(b *testing.B) {

	b.StopTimer()

	maxSize := 1200

	vecs := make([]Vector, 0, maxSize)

	for i := 0; i < maxSize; i++ {
		vecs = append(vecs, Vector{X: rand.Float64(), Y: rand.Float64(), Z: rand.Float64()})
	}

	b.ReportAllocs()
	b.StartTimer()

	// Main point of benchmarking
	for z := 0; z < b.N; z++ {
		for i := 0; i < maxSize-1; i++ {
			vecs[i] = vecs[i].Add(vecs[i+1]).Cross(vecs[i+1])
		}
	}

}

func TestVectorMatchesGonum(t *testing.T) {

	r := rand.New(rand.NewSource(20))

	for i := 0; i < 200; i++ {

		a := NewVector(r.NormFloat64(), r.NormFloat64(), r.NormFloat64())
		b := NewVector(r.NormFloat64(), r.NormFloat64(), r.NormFloat64())

		if got, expected := a.Cross(b), fromR3(r3.Cross(toR3(a), toR3(b))); !got.EqualsApprox(expected, 1e-12) {
			t.Fatalf("%s x %s = %s, gonum says %s", a, b, got, expected)
		}

		if got, expected := a.Dot(b), r3.Dot(toR3(a), toR3(b)); math.Abs(got-expected) > 1e-12 {
			t.Fatalf("%s . %s = %f, gonum says %f", a, b, got, expected)
		}

		if got, expected := a.Magnitude(), r3.Norm(toR3(a)); math.Abs(got-expected) > 1e-12 {
			t.Fatalf("|%s| = %f, gonum says %f", a, got, expected)
		}

		if got, expected := a.Unit(), fromR3(r3.Unit(toR3(a))); !got.EqualsApprox(expected, 1e-12) {
			t.Fatalf("unit(%s) = %s, gonum says %s", a, got, expected)
		}

		angle := r.Float64()*4 - 2
		if got, expected := a.Rotate(b, angle), fromR3(r3.NewRotation(angle, toR3(b)).Rotate(toR3(a))); !got.EqualsApprox(expected, 1e-9) {
			t.Fatalf("%s rotated by %f around %s = %s, gonum says %s", a, angle, b, got, expected)
		}

	}

}

func TestVectorUnitZero(t *testing.T) {
	if !(Vector{}).Unit().IsZero() {
		t.Fatal("the unit of a zero vector should stay zero")
	}
}

func TestVectorProject(t *testing.T) {

	v := NewVector(3, 4, 0)

	if got := v.Project(NewVector(2, 0, 0)); !got.Equals(NewVector(3, 0, 0)) {
		t.Fatalf("expected (3, 0, 0), got %s", got)
	}

	if got := v.Project(Vector{}); !got.IsZero() {
		t.Fatalf("projecting onto a zero vector should give zero, got %s", got)
	}

	// The projection is parallel to the normal and the remainder is orthogonal to it.
	n := NewVector(1, -2, 0.5)
	p := v.Project(n)
	if math.Abs(v.Sub(p).Dot(n)) > 1e-12 || p.Cross(n).Magnitude() > 1e-12 {
		t.Fatalf("bad projection of %s onto %s: %s", v, n, p)
	}

}

func TestVectorReflect(t *testing.T) {

	if got := NewVector(1, -1, 0).Reflect(VecY); !got.Equals(NewVector(1, 1, 0)) {
		t.Fatalf("expected (1, 1, 0), got %s", got)
	}

	// Non-unit normals scale the reflected component along with them.
	if got := NewVector(1, -1, 0).Reflect(NewVector(0, 2, 0)); !got.Equals(NewVector(1, 7, 0)) {
		t.Fatalf("expected (1, 7, 0), got %s", got)
	}

}

func TestVectorAngle(t *testing.T) {

	if got := VecX.Angle(VecY.Scale(5)); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Fatalf("expected 90 degrees, got %f", ToDegrees(got))
	}

	if got := VecX.Angle(VecX.Invert()); math.Abs(got-math.Pi) > 1e-12 {
		t.Fatalf("expected 180 degrees, got %f", ToDegrees(got))
	}

	if got := VecX.Angle(VecX.Scale(1.0000001)); math.IsNaN(got) || got > 1e-6 {
		t.Fatalf("expected 0, got %f", got)
	}

	if got := VecX.Angle(Vector{}); got != 0 {
		t.Fatalf("expected 0 for a zero vector, got %f", got)
	}

	if got := VecX.SignedAngle(VecY, VecZ); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Fatalf("expected +90 degrees, got %f", ToDegrees(got))
	}

	if got := VecX.SignedAngle(VecY, VecZ.Invert()); math.Abs(got+math.Pi/2) > 1e-12 {
		t.Fatalf("expected -90 degrees, got %f", ToDegrees(got))
	}

}

func TestVectorString(t *testing.T) {
	if s := NewVector(0, 1, -2.555).String(); s != "(0.00, 1.00, -2.56)" && s != "(0.00, 1.00, -2.55)" {
		t.Fatalf("unexpected string %q", s)
	}
}
