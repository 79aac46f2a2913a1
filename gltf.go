package vecviz

import (
	"errors"
	"fmt"
	"io"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// GLTFExportOptions controls how Mesh.WriteGLTF() writes a Mesh out.
type GLTFExportOptions struct {
	// Binary writes a binary .glb file if true, or a JSON .gltf file with the mesh data embedded in it if false.
	Binary bool
	// NodeName is the name of the scene node holding the mesh. Defaults to the Mesh's name if empty.
	NodeName string
	// Position, Rotation, and Scale set the transform of the scene node holding the mesh.
	Position Vector
	Rotation Quaternion
	Scale    float64
}

// DefaultGLTFExportOptions creates an instance of GLTFExportOptions with some sensible defaults (a binary file with an
// untransformed node).
func DefaultGLTFExportOptions() *GLTFExportOptions {
	return &GLTFExportOptions{
		Binary:   true,
		Rotation: NewQuaternionIdentity(),
		Scale:    1,
	}
}

// ErrNoGLTFMesh is returned when loading a glTF file that has no mesh to load.
var ErrNoGLTFMesh = errors.New("vecviz: glTF document has no mesh")

// WriteGLTF writes the Mesh out to the Writer given as a glTF 2.0 document with a single scene containing a single node
// holding the Mesh. Passing nil for options writes the file using the default export options.
func (mesh *Mesh) WriteGLTF(w io.Writer, options *GLTFExportOptions) error {

	if options == nil {
		options = DefaultGLTFExportOptions()
	}

	if len(mesh.Indices) == 0 {
		return fmt.Errorf("vecviz: can't export mesh %q with no triangles", mesh.Name)
	}

	doc := gltf.NewDocument()

	positions := make([][3]float32, len(mesh.Vertices))
	normals := make([][3]float32, len(mesh.Vertices))

	for i, v := range mesh.Vertices {
		positions[i] = v.Position
		normals[i] = v.Normal
	}

	positionAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, normals)
	indexAccessor := modeler.WriteIndices(doc, mesh.Indices)

	doc.Meshes = []*gltf.Mesh{{
		Name: mesh.Name,
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(indexAccessor),
			Attributes: gltf.PrimitiveAttributes{
				gltf.POSITION: positionAccessor,
				gltf.NORMAL:   normalAccessor,
			},
		}},
	}}

	nodeName := options.NodeName
	if nodeName == "" {
		nodeName = mesh.Name
	}

	scale := options.Scale
	if scale == 0 {
		scale = 1
	}

	rot := options.Rotation.Normalized()

	doc.Nodes = []*gltf.Node{{
		Name:        nodeName,
		Mesh:        gltf.Index(0),
		Translation: [3]float64{options.Position.X, options.Position.Y, options.Position.Z},
		Rotation:    [4]float64{rot.X, rot.Y, rot.Z, rot.W},
		Scale:       [3]float64{scale, scale, scale},
	}}

	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	if !options.Binary {
		for _, buffer := range doc.Buffers {
			buffer.EmbeddedResource()
		}
	}

	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = options.Binary

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("vecviz: encoding mesh %q: %w", mesh.Name, err)
	}

	return nil

}

// LoadGLTFMesh loads the first mesh found in the .gltf or .glb data read from the Reader given. All of the mesh's primitives
// are merged into a single Mesh; only positions, normals, and indices are read. Any external buffers must be embedded.
func LoadGLTFMesh(r io.Reader) (*Mesh, error) {

	doc := gltf.NewDocument()

	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("vecviz: decoding glTF data: %w", err)
	}

	return meshFromGLTF(doc)

}

// LoadGLTFMeshFile loads the first mesh found in the .gltf or .glb file at the path given, resolving external buffers
// relative to the file. See LoadGLTFMesh.
func LoadGLTFMeshFile(path string) (*Mesh, error) {

	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vecviz: opening %s: %w", path, err)
	}

	return meshFromGLTF(doc)

}

func meshFromGLTF(doc *gltf.Document) (*Mesh, error) {

	if len(doc.Meshes) == 0 {
		return nil, ErrNoGLTFMesh
	}

	gltfMesh := doc.Meshes[0]

	mesh := NewMesh(gltfMesh.Name)

	for _, prim := range gltfMesh.Primitives {

		if prim.Mode != gltf.PrimitiveTriangles {
			return nil, fmt.Errorf("vecviz: mesh %q: only triangle primitives are supported", gltfMesh.Name)
		}

		positionAccessor, exists := prim.Attributes[gltf.POSITION]
		if !exists {
			return nil, fmt.Errorf("vecviz: mesh %q: primitive has no positions", gltfMesh.Name)
		}

		positions, err := modeler.ReadPosition(doc, doc.Accessors[positionAccessor], nil)
		if err != nil {
			return nil, fmt.Errorf("vecviz: mesh %q: reading positions: %w", gltfMesh.Name, err)
		}

		var normals [][3]float32

		if normalAccessor, normalExists := prim.Attributes[gltf.NORMAL]; normalExists {
			normals, err = modeler.ReadNormal(doc, doc.Accessors[normalAccessor], nil)
			if err != nil {
				return nil, fmt.Errorf("vecviz: mesh %q: reading normals: %w", gltfMesh.Name, err)
			}
		}

		var indices []uint32

		if prim.Indices != nil {
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return nil, fmt.Errorf("vecviz: mesh %q: reading indices: %w", gltfMesh.Name, err)
			}
		} else {
			// Non-indexed primitives list their vertices in triangle order
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		offset := uint32(len(mesh.Vertices))

		for i, p := range positions {
			v := Vertex{Position: p}
			if i < len(normals) {
				v.Normal = normals[i]
			}
			mesh.Vertices = append(mesh.Vertices, v)
		}

		for _, index := range indices {
			if index >= uint32(len(positions)) {
				return nil, fmt.Errorf("vecviz: mesh %q: index %d out of range", gltfMesh.Name, index)
			}
			mesh.Indices = append(mesh.Indices, index+offset)
		}

	}

	return mesh, nil

}
