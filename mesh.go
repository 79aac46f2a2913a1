package vecviz

import (
	"math"
)

// Dimensions represents the minimum and maximum spatial dimensions of a Mesh.
type Dimensions struct {
	Min, Max Vector
}

// Center returns the center point inbetween the two corners of the dimension set.
func (dim Dimensions) Center() Vector {
	return dim.Min.Add(dim.Max).Scale(0.5)
}

func (dim Dimensions) Width() float64 {
	return dim.Max.X - dim.Min.X
}

func (dim Dimensions) Height() float64 {
	return dim.Max.Y - dim.Min.Y
}

func (dim Dimensions) Depth() float64 {
	return dim.Max.Z - dim.Min.Z
}

// MaxSpan returns the maximum span out of width, height, and depth.
func (dim Dimensions) MaxSpan() float64 {
	return math.Max(math.Max(dim.Width(), dim.Height()), dim.Depth())
}

// Vertex is a single vertex of a Mesh. Vertex data is stored as float32s, which is what both GPUs and glTF files use.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Mesh is an indexed triangle mesh; every three entries in Indices form a counter-clockwise (front-facing) triangle.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
}

// NewMesh creates a new, empty Mesh with the name given.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// AddTriangle adds a flat-shaded triangle to the Mesh out of the three (counter-clockwise wound) positions given; the normal
// for all three vertices is the triangle's face normal.
func (mesh *Mesh) AddTriangle(a, b, c [3]float32) {

	va, vb, vc := vectorFrom32(a), vectorFrom32(b), vectorFrom32(c)
	normal := vb.Sub(va).Cross(vc.Sub(va)).Unit().Floats32()

	start := uint32(len(mesh.Vertices))

	mesh.Vertices = append(mesh.Vertices,
		Vertex{Position: a, Normal: normal},
		Vertex{Position: b, Normal: normal},
		Vertex{Position: c, Normal: normal},
	)

	mesh.Indices = append(mesh.Indices, start, start+1, start+2)

}

// AddQuad adds two flat-shaded triangles covering the quad formed by the four (counter-clockwise wound) positions given.
func (mesh *Mesh) AddQuad(a, b, c, d [3]float32) {
	mesh.AddTriangle(a, b, c)
	mesh.AddTriangle(a, c, d)
}

// TriangleCount returns how many triangles are in the Mesh.
func (mesh *Mesh) TriangleCount() int {
	return len(mesh.Indices) / 3
}

// Dimensions returns the bounding box of the Mesh's vertices.
func (mesh *Mesh) Dimensions() Dimensions {

	if len(mesh.Vertices) == 0 {
		return Dimensions{}
	}

	dim := Dimensions{
		Min: vectorFrom32(mesh.Vertices[0].Position),
		Max: vectorFrom32(mesh.Vertices[0].Position),
	}

	for _, v := range mesh.Vertices[1:] {
		p := vectorFrom32(v.Position)
		dim.Min = NewVector(math.Min(dim.Min.X, p.X), math.Min(dim.Min.Y, p.Y), math.Min(dim.Min.Z, p.Z))
		dim.Max = NewVector(math.Max(dim.Max.X, p.X), math.Max(dim.Max.Y, p.Y), math.Max(dim.Max.Z, p.Z))
	}

	return dim

}

// Transformed returns a copy of the Mesh with every vertex scaled, then rotated, and then moved by the values given.
// scale should be positive.
func (mesh *Mesh) Transformed(position Vector, rotation Quaternion, scale float64) *Mesh {

	newMesh := &Mesh{
		Name:     mesh.Name,
		Vertices: make([]Vertex, len(mesh.Vertices)),
		Indices:  append([]uint32(nil), mesh.Indices...),
	}

	rotation = rotation.Normalized()

	for i, v := range mesh.Vertices {
		p := rotation.RotateVector(vectorFrom32(v.Position).Scale(scale)).Add(position)
		n := rotation.RotateVector(vectorFrom32(v.Normal))
		newMesh.Vertices[i] = Vertex{Position: p.Floats32(), Normal: n.Floats32()}
	}

	return newMesh

}

func vectorFrom32(v [3]float32) Vector {
	return NewVector(float64(v[0]), float64(v[1]), float64(v[2]))
}
