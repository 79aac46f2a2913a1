package vecviz

import (
	"errors"
	"math"
	"testing"
)

func TestArrowSetAsVector(t *testing.T) {

	for _, restAxis := range []Vector{WorldUp, WorldRight, WorldForward, NewVector(1, 2, 3)} {

		arrow := NewArrow("v")
		arrow.RestAxis = restAxis

		for _, vec := range []Vector{NewVector(3, 0, 0), NewVector(0, -2, 0), NewVector(1, 1, 1), NewVector(0, 5, 0)} {

			arrow.SetAsVector(vec)

			if math.Abs(arrow.Magnitude-vec.Magnitude()) > 1e-9 {
				t.Fatalf("expected magnitude %f, got %f", vec.Magnitude(), arrow.Magnitude)
			}

			if got := arrow.Vector(); !got.EqualsApprox(vec, 1e-4) {
				t.Fatalf("rest axis %s: expected the arrow to represent %s, got %s", restAxis, vec, got)
			}

		}

	}

}

func TestArrowSetAsVectorZeroRestAxis(t *testing.T) {

	arrow := NewArrow("v")
	arrow.RestAxis = Vector{}

	if err := arrow.SetAsVector(NewVector(2, 0, 0)); !errors.Is(err, ErrDegenerateInput) {
		t.Fatalf("expected a degenerate input error, got %v", err)
	}

	if arrow.Magnitude != 1 || !arrow.Rotation.IsIdentity() {
		t.Fatalf("expected the arrow to be left alone, got magnitude %f and rotation %s", arrow.Magnitude, arrow.Rotation)
	}

}

func TestArrowSetAsVectorZero(t *testing.T) {

	arrow := NewArrow("v")
	arrow.SetAsVector(NewVector(1, 0, 0))

	rotation := arrow.Rotation

	arrow.SetAsVector(Vector{})

	if arrow.Magnitude != 0 {
		t.Fatalf("expected a zero magnitude, got %f", arrow.Magnitude)
	}

	if arrow.Rotation != rotation {
		t.Fatalf("expected the rotation to be left alone, got %s", arrow.Rotation)
	}

	if !arrow.Direction().EqualsApprox(VecX, 1e-4) {
		t.Fatalf("expected the arrow to keep pointing along X, got %s", arrow.Direction())
	}

}

func TestArrowSetDirectionDegenerate(t *testing.T) {

	arrow := NewArrow("v")

	if err := arrow.SetDirection(Vector{}); !errors.Is(err, ErrDegenerateInput) {
		t.Fatalf("expected ErrDegenerateInput, got %v", err)
	}

	arrow.RestAxis = Vector{}

	if err := arrow.SetDirection(VecX); !errors.Is(err, ErrDegenerateInput) {
		t.Fatalf("expected ErrDegenerateInput for a zero rest axis, got %v", err)
	}

	if !arrow.Rotation.IsIdentity() {
		t.Fatal("a failed SetDirection shouldn't change the rotation")
	}

}

func TestArrowDefaults(t *testing.T) {

	arrow := NewArrow("v")

	if !arrow.Vector().EqualsApprox(WorldUp, 1e-9) {
		t.Fatalf("expected an unrotated arrow to point along its rest axis, got %s", arrow.Vector())
	}

	arrow.RestAxis = WorldForward
	arrow.Magnitude = 2.5

	if text := arrow.InfoText(); text != "(0.00, 0.00, 1.00)|2.5\n" {
		t.Fatalf("unexpected info text %q", text)
	}

	arrow.Magnitude = 1.5

	if arrow.Text() != "(0.00, 0.00, 1.00)|1.5" {
		t.Fatalf("unexpected text %q", arrow.Text())
	}

	arrow.Label = "a"
	if arrow.Text() != "a" {
		t.Fatalf("expected the label to be drawn, got %q", arrow.Text())
	}

}

func TestArrowRotate(t *testing.T) {

	arrow := NewArrow("v")
	arrow.Position = NewVector(1, 0, 0)
	arrow.Magnitude = 2

	// A quarter turn around Z takes +Y to -X.
	arrow.Rotate(NewQuaternionFromAxisAngle(VecZ, math.Pi/2))

	if !arrow.Direction().EqualsApprox(VecX.Invert(), 1e-6) {
		t.Fatalf("expected the arrow to point along -X, got %s", arrow.Direction())
	}

	if !arrow.Tip().EqualsApprox(NewVector(-1, 0, 0), 1e-6) {
		t.Fatalf("expected the tip at (-1, 0, 0), got %s", arrow.Tip())
	}

	assertUnit(t, arrow.Rotation)

}

func TestArrowMeshRotation(t *testing.T) {

	for _, restAxis := range []Vector{WorldUp, WorldRight, WorldForward, WorldBack} {

		arrow := NewArrow("v")
		arrow.RestAxis = restAxis
		arrow.SetAsVector(NewVector(-1, 2, 0.5))

		if got := arrow.MeshRotation().RotateVector(WorldForward); !got.EqualsApprox(arrow.Direction(), 1e-6) {
			t.Fatalf("rest axis %s: expected the mesh to point along %s, got %s", restAxis, arrow.Direction(), got)
		}

	}

}
