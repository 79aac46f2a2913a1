package vecviz

import (
	"math"
	"testing"
)

func TestProjectMesh(t *testing.T) {

	view := NewView(640, 480)
	view.Orbit(0.5, 0.3, 4, Vector{})

	mesh := DefaultArrowMesh()
	light := DefaultDirectionalLight()

	rotation, err := RotationFromDirection(VecX, WorldForward)
	if err != nil {
		t.Fatal(err)
	}

	tris := view.ProjectMesh(mesh, NewVector(-0.5, 0, 0), rotation, 1, light, nil)

	if len(tris) == 0 || len(tris) >= mesh.TriangleCount() {
		t.Fatalf("expected backface culling to leave some, but not all, of %d triangles; got %d", mesh.TriangleCount(), len(tris))
	}

	for i, tri := range tris {

		if i > 0 && tri.Depth > tris[i-1].Depth {
			t.Fatalf("triangle #%d is further away than the one drawn before it", i)
		}

		if tri.Shade < light.Ambient-1e-6 || tri.Shade > 1 {
			t.Fatalf("triangle #%d has a shade of %f", i, tri.Shade)
		}

		for _, p := range tri.Points {
			if p.X < 0 || p.Y < 0 || p.X > 640 || p.Y > 480 {
				t.Fatalf("triangle #%d is offscreen at %s", i, p)
			}
		}

	}

	// Appending keeps what was already there.
	more := view.ProjectMesh(mesh, Vector{}, NewQuaternionIdentity(), 1, light, tris)
	if len(more) <= len(tris) {
		t.Fatal("expected more triangles to be appended")
	}

}

func TestProjectMeshFacing(t *testing.T) {

	view := NewView(640, 480)
	view.Position = NewVector(0, 0, 5)

	// Counter-clockwise when seen from +Z, so it faces the view.
	mesh := NewMesh("Triangle")
	mesh.AddTriangle([3]float32{-1, -1, 0}, [3]float32{1, -1, 0}, [3]float32{0, 1, 0})

	light := DirectionalLight{Direction: NewVector(0, 0, -1), Ambient: 0.25}

	tris := view.ProjectMesh(mesh, Vector{}, NewQuaternionIdentity(), 1, light, nil)

	if len(tris) != 1 {
		t.Fatalf("expected the triangle to be drawn, got %d triangles", len(tris))
	}

	if math.Abs(float64(tris[0].Shade)-1) > 1e-6 {
		t.Fatalf("expected a fully lit triangle, got a shade of %f", tris[0].Shade)
	}

	if math.Abs(tris[0].Depth-5) > 1e-9 {
		t.Fatalf("expected a depth of 5, got %f", tris[0].Depth)
	}

	// Turned around, it faces away and gets culled.
	if tris := view.ProjectMesh(mesh, Vector{}, NewQuaternionFromAxisAngle(VecY, math.Pi), 1, light, nil); len(tris) != 0 {
		t.Fatalf("expected the back of the triangle to be culled, got %d triangles", len(tris))
	}

	// Lit from behind, only the ambient light remains.
	light.Direction = NewVector(0, 0, 1)
	tris = view.ProjectMesh(mesh, Vector{}, NewQuaternionIdentity(), 1, light, nil)

	if math.Abs(float64(tris[0].Shade-light.Ambient)) > 1e-6 {
		t.Fatalf("expected an ambient shade, got %f", tris[0].Shade)
	}

	// Behind the near plane
	view.Position = NewVector(0, 0, 0.05)
	if tris := view.ProjectMesh(mesh, Vector{}, NewQuaternionIdentity(), 1, light, nil); len(tris) != 0 {
		t.Fatalf("expected a triangle crossing the near plane to be skipped, got %d triangles", len(tris))
	}

}
