package vecviz

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
)

func meshesMatch(a, b *Mesh) bool {
	if len(a.Vertices) != len(b.Vertices) || len(a.Indices) != len(b.Indices) {
		return false
	}
	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] {
			return false
		}
	}
	for i := range a.Indices {
		if a.Indices[i] != b.Indices[i] {
			return false
		}
	}
	return true
}

func TestGLTFRoundTrip(t *testing.T) {

	mesh := DefaultArrowMesh()

	for _, binary := range []bool{true, false} {

		options := DefaultGLTFExportOptions()
		options.Binary = binary

		buffer := &bytes.Buffer{}

		if err := mesh.WriteGLTF(buffer, options); err != nil {
			t.Fatal(err)
		}

		if binary && !bytes.HasPrefix(buffer.Bytes(), []byte("glTF")) {
			t.Fatal("expected a binary glTF header")
		}

		loaded, err := LoadGLTFMesh(buffer)
		if err != nil {
			t.Fatal(err)
		}

		if loaded.Name != mesh.Name {
			t.Fatalf("expected mesh name %q, got %q", mesh.Name, loaded.Name)
		}

		if !meshesMatch(mesh, loaded) {
			t.Fatalf("mesh data changed going through glTF (binary: %t)", binary)
		}

	}

}

func TestGLTFNodeTransform(t *testing.T) {

	rotation, err := RotationFromDirection(NewVector(1, 1, 0), WorldForward)
	if err != nil {
		t.Fatal(err)
	}

	options := DefaultGLTFExportOptions()
	options.NodeName = "Vector"
	options.Position = NewVector(1, 2, 3)
	options.Rotation = rotation
	options.Scale = 2

	buffer := &bytes.Buffer{}
	if err := DefaultArrowMesh().WriteGLTF(buffer, options); err != nil {
		t.Fatal(err)
	}

	doc := &gltf.Document{}
	if err := gltf.NewDecoder(buffer).Decode(doc); err != nil {
		t.Fatal(err)
	}

	if len(doc.Nodes) != 1 || doc.Nodes[0].Name != "Vector" {
		t.Fatalf("expected a single node named Vector, got %d nodes", len(doc.Nodes))
	}

	node := doc.Nodes[0]
	loaded := NewQuaternion(node.Rotation[0], node.Rotation[1], node.Rotation[2], node.Rotation[3])

	if !loaded.Equals(rotation) {
		t.Fatalf("expected node rotation %s, got %s", rotation, loaded)
	}

	if node.Translation != [3]float64{1, 2, 3} || node.Scale != [3]float64{2, 2, 2} {
		t.Fatalf("unexpected node transform: %v / %v", node.Translation, node.Scale)
	}

	// The node's rotation turns the arrow's +Z rest axis onto the exported direction.
	if dir := loaded.RotateVector(WorldForward); !dir.EqualsApprox(NewVector(1, 1, 0).Unit(), 1e-5) {
		t.Fatalf("expected the node to point along (1, 1, 0), got %s", dir)
	}

}

func TestLoadGLTFMeshFile(t *testing.T) {

	path := filepath.Join(t.TempDir(), "arrow.glb")

	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := DefaultArrowMesh().WriteGLTF(file, nil); err != nil {
		t.Fatal(err)
	}

	if err := file.Close(); err != nil {
		t.Fatal(err)
	}

	mesh, err := LoadGLTFMeshFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(mesh.Dimensions().Depth()-1) > 1e-6 {
		t.Fatalf("expected a 1-unit long arrow, got %f", mesh.Dimensions().Depth())
	}

	if _, err := LoadGLTFMeshFile(filepath.Join(t.TempDir(), "missing.glb")); err == nil {
		t.Fatal("expected an error loading a missing file")
	}

}

func TestGLTFErrors(t *testing.T) {

	if err := NewMesh("Empty").WriteGLTF(&bytes.Buffer{}, nil); err == nil {
		t.Fatal("expected an error exporting an empty mesh")
	}

	buffer := &bytes.Buffer{}
	if err := gltf.NewEncoder(buffer).Encode(gltf.NewDocument()); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadGLTFMesh(buffer); !errors.Is(err, ErrNoGLTFMesh) {
		t.Fatalf("expected ErrNoGLTFMesh, got %v", err)
	}

	if _, err := LoadGLTFMesh(bytes.NewBufferString("not a glTF file")); err == nil {
		t.Fatal("expected an error decoding garbage")
	}

}

func BenchmarkLoadGLTFMesh(b *testing.B) {
	b.StopTimer()
	buffer := &bytes.Buffer{}
	if err := DefaultArrowMesh().WriteGLTF(buffer, nil); err != nil {
		b.Fatal(err)
	}
	data := buffer.Bytes()
	b.StartTimer()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		_, err := LoadGLTFMesh(bytes.NewReader(data))
		if err != nil {
			b.Fatal(err)
		}
	}
}
