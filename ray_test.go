package vecviz

import (
	"math"
	"testing"
)

func TestRayTestArrow(t *testing.T) {

	arrow := arrowFor("a", NewVector(2, 0, 0))
	arrow.Position = NewVector(0, 0, -5)

	// Straight down -Z, passing over the middle of the arrow.
	ray := NewRay(NewVector(1, 0.05, 0), NewVector(0, 0, -3))

	hit, ok := ray.RayTestArrow(arrow, 0.1)
	if !ok {
		t.Fatal("expected the ray to hit the arrow")
	}

	if math.Abs(hit.Distance-5) > 1e-6 || math.Abs(hit.Miss-0.05) > 1e-6 {
		t.Fatalf("expected a hit 5 units along the ray, 0.05 units off; got %f and %f", hit.Distance, hit.Miss)
	}

	if !hit.Position.EqualsApprox(NewVector(1, 0, -5), 1e-6) {
		t.Fatalf("expected the hit to be in the middle of the arrow, got %s", hit.Position)
	}

	if _, ok := ray.RayTestArrow(arrow, 0.01); ok {
		t.Fatal("expected a tighter radius to miss")
	}

	// Past the tip of the arrow
	if _, ok := NewRay(NewVector(3, 0, 0), NewVector(0, 0, -1)).RayTestArrow(arrow, 0.1); ok {
		t.Fatal("expected a ray past the tip to miss")
	}

	// Pointing away from the arrow
	if _, ok := NewRay(NewVector(1, 0, 0), NewVector(0, 0, 1)).RayTestArrow(arrow, 0.1); ok {
		t.Fatal("expected a ray pointing away to miss")
	}

	// Parallel to the arrow, running right along it
	if hit, ok := NewRay(NewVector(-1, 0, -5), VecX).RayTestArrow(arrow, 0.1); !ok || hit.Miss > 1e-9 {
		t.Fatal("expected a ray running along the arrow to hit")
	}

}

func TestSceneRayTest(t *testing.T) {

	scene := NewScene("picking")

	near := arrowFor("near", NewVector(0, 1, 0))
	near.Position = NewVector(0, -0.5, -2)

	far := arrowFor("far", NewVector(0, 1, 0))
	far.Position = NewVector(0, -0.5, -6)

	scene.AddArrow(far, near, arrowFor("off to the side", NewVector(0, 1, 0)))
	scene.Arrows[2].Position = NewVector(5, 0, -3)

	view := NewView(640, 480)

	hit := scene.RayTest(view.ScreenToWorldRay(320, 240), 0.1)
	if hit == nil || hit.Arrow != near {
		t.Fatalf("expected to pick the nearest arrow, got %+v", hit)
	}

	if hit := scene.RayTest(view.ScreenToWorldRay(0, 0), 0.1); hit != nil {
		t.Fatalf("expected the corner of the screen to pick nothing, got %s", hit.Arrow.Name)
	}

}

func TestScreenToWorldRay(t *testing.T) {

	view := NewView(640, 480)
	view.Orbit(1, 0.4, 6, NewVector(1, 1, 1))

	// Projecting a point and casting a ray back through its pixel should pass through the point.
	point := NewVector(1.5, 0.5, 2)

	screen, ok := view.WorldToScreenPixels(point)
	if !ok {
		t.Fatal("expected the point to be in front of the view")
	}

	ray := view.ScreenToWorldRay(screen.X, screen.Y)

	toPoint := point.Sub(ray.Origin)
	if d := toPoint.Sub(ray.Direction.Scale(toPoint.Dot(ray.Direction))).Magnitude(); d > 1e-9 {
		t.Fatalf("expected the ray to pass through the point, missed by %f", d)
	}

}
