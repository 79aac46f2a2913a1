package vecviz

import (
	"math"
	"sort"
)

// DirectionalLight is a light shining uniformly in one direction, used to shade Mesh triangles when drawing them.
type DirectionalLight struct {
	Direction Vector  // The direction the light travels in
	Ambient   float32 // Minimum brightness of unlit triangles, from 0 to 1
}

// DefaultDirectionalLight returns a light shining down and away from the default viewpoint, with a little ambient light.
func DefaultDirectionalLight() DirectionalLight {
	return DirectionalLight{
		Direction: NewVector(-0.4, -1, -0.6),
		Ambient:   0.35,
	}
}

// shade returns the brightness of a surface with the (unit) normal given, from the light's ambient value to 1.
func (light DirectionalLight) shade(normal Vector) float32 {
	lambert := float32(math.Max(0, normal.Dot(light.Direction.Unit().Invert())))
	return clamp(light.Ambient+(1-light.Ambient)*lambert, 0, 1)
}

// ScreenTriangle is a triangle of a Mesh, projected onto a View's screen and shaded.
type ScreenTriangle struct {
	Points [3]Vector // X and Y are in pixels; Z is the depth of the point in front of the View
	Shade  float32   // Brightness of the triangle, from 0 to 1
	Depth  float64   // Average depth of the triangle's points
}

// ProjectMesh transforms the Mesh (scaled, then rotated, then moved), projects its triangles onto the View's screen and lights
// them, appending them to out sorted from back to front so they can be drawn in order (painter's algorithm).
// Triangles facing away from the View or crossing its near plane are skipped.
func (view *View) ProjectMesh(mesh *Mesh, position Vector, rotation Quaternion, scale float64, light DirectionalLight, out []ScreenTriangle) []ScreenTriangle {

	rotation = rotation.Normalized()

	start := len(out)

	var world [3]Vector

	for i := 0; i+2 < len(mesh.Indices); i += 3 {

		for v := 0; v < 3; v++ {
			p := vectorFrom32(mesh.Vertices[mesh.Indices[i+v]].Position)
			world[v] = rotation.RotateVector(p.Scale(scale)).Add(position)
		}

		normal := world[1].Sub(world[0]).Cross(world[2].Sub(world[0]))

		// Degenerate (zero-area) triangle
		if normal.MagnitudeSquared() < 1e-20 {
			continue
		}

		normal = normal.Unit()

		center := world[0].Add(world[1]).Add(world[2]).Scale(1.0 / 3)

		// Backface culling
		if normal.Dot(center.Sub(view.Position)) >= 0 {
			continue
		}

		tri := ScreenTriangle{Shade: light.shade(normal)}

		visible := true
		for v := 0; v < 3; v++ {
			p, ok := view.WorldToScreenPixels(world[v])
			if !ok {
				visible = false
				break
			}
			tri.Points[v] = p
			tri.Depth += p.Z / 3
		}

		if !visible {
			continue
		}

		out = append(out, tri)

	}

	projected := out[start:]

	sort.SliceStable(projected, func(i, j int) bool {
		return projected[i].Depth > projected[j].Depth
	})

	return out

}
