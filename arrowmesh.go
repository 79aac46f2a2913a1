package vecviz

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/chewxy/math32"
)

// ArrowMeshOptions controls the shape of a generated arrow Mesh. Generated arrows start at the origin and point along +Z (WorldForward),
// so an arrow model built from one has a rest axis of WorldForward.
type ArrowMeshOptions struct {
	Segments    int     // How many sides the shaft cylinder and head cone have; minimum of 3
	ShaftRadius float32 // Radius of the shaft cylinder
	ShaftLength float32 // Length of the shaft cylinder
	HeadRadius  float32 // Radius of the base of the head cone
	HeadLength  float32 // Length of the head cone; the arrow's total length is ShaftLength + HeadLength
}

// DefaultArrowMeshOptions creates an instance of ArrowMeshOptions for a 1-unit long arrow.
func DefaultArrowMeshOptions() ArrowMeshOptions {
	return ArrowMeshOptions{
		Segments:    16,
		ShaftRadius: 0.05,
		ShaftLength: 0.8,
		HeadRadius:  0.12,
		HeadLength:  0.2,
	}
}

// ErrInvalidArrowMeshOptions is returned (wrapped) by NewArrowMesh when given options that can't form an arrow.
var ErrInvalidArrowMeshOptions = errors.New("invalid arrow mesh options")

func (options ArrowMeshOptions) validate() error {
	if options.Segments < 3 {
		return fmt.Errorf("%w: need at least 3 segments, got %d", ErrInvalidArrowMeshOptions, options.Segments)
	}
	if options.ShaftRadius <= 0 || options.ShaftLength <= 0 || options.HeadRadius <= 0 || options.HeadLength <= 0 {
		return fmt.Errorf("%w: sizes must be positive", ErrInvalidArrowMeshOptions)
	}
	return nil
}

// NewArrowMesh generates a triangle Mesh of an arrow: a capped cylinder for the shaft, topped with a capped cone for the head.
// Each is a closed solid, so the Mesh has 6 triangles per segment.
func NewArrowMesh(options ArrowMeshOptions) (*Mesh, error) {

	if err := options.validate(); err != nil {
		return nil, err
	}

	mesh := NewMesh("Arrow")

	n := options.Segments
	shaftEnd := options.ShaftLength
	tip := options.ShaftLength + options.HeadLength

	ring := func(radius, z float32, i int) [3]float32 {
		angle := float32(i%n) * 2 * math.Pi / float32(n)
		return [3]float32{math32.Cos(angle) * radius, math32.Sin(angle) * radius, z}
	}

	for i := 0; i < n; i++ {

		// Shaft side
		mesh.AddQuad(
			ring(options.ShaftRadius, 0, i),
			ring(options.ShaftRadius, 0, i+1),
			ring(options.ShaftRadius, shaftEnd, i+1),
			ring(options.ShaftRadius, shaftEnd, i),
		)

		// Shaft cap at the arrow's base, facing -Z
		mesh.AddTriangle(
			[3]float32{0, 0, 0},
			ring(options.ShaftRadius, 0, i+1),
			ring(options.ShaftRadius, 0, i),
		)

		// Shaft cap hidden inside the head, keeping the shaft a closed solid
		mesh.AddTriangle(
			[3]float32{0, 0, shaftEnd},
			ring(options.ShaftRadius, shaftEnd, i),
			ring(options.ShaftRadius, shaftEnd, i+1),
		)

		// Underside of the head, facing -Z
		mesh.AddTriangle(
			[3]float32{0, 0, shaftEnd},
			ring(options.HeadRadius, shaftEnd, i+1),
			ring(options.HeadRadius, shaftEnd, i),
		)

		// Head cone
		mesh.AddTriangle(
			ring(options.HeadRadius, shaftEnd, i),
			ring(options.HeadRadius, shaftEnd, i+1),
			[3]float32{0, 0, tip},
		)

	}

	return mesh, nil

}

var defaultArrowMesh struct {
	once sync.Once
	mesh *Mesh
}

// DefaultArrowMesh returns an arrow Mesh built with DefaultArrowMeshOptions(). The Mesh is generated on first use and shared
// afterwards, so don't modify it; use Transformed() to get a copy to alter instead.
func DefaultArrowMesh() *Mesh {
	defaultArrowMesh.once.Do(func() {
		mesh, err := NewArrowMesh(DefaultArrowMeshOptions())
		if err != nil {
			panic(err)
		}
		defaultArrowMesh.mesh = mesh
	})
	return defaultArrowMesh.mesh
}
