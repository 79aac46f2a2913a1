package gizmos

import (
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/vecviz"
)

// DrawLines draws the 3D lines given onto the screen in the color and stroke width (in pixels) provided. Lines partially behind
// the Camera are clipped; lines entirely behind it aren't drawn.
func (camera *Camera) DrawLines(screen *ebiten.Image, lines []vecviz.Line, color vecviz.Color, width float32) {

	c := color.ToNRGBA64()

	for _, line := range lines {

		start, end, ok := camera.LineToScreenPixels(line)
		if !ok {
			continue
		}

		vector.StrokeLine(screen, float32(start.X), float32(start.Y), float32(end.X), float32(end.Y), width, c, true)

	}

}

// DrawArrow draws a line arrow gizmo starting at start, pointing along direction, and magnitude units long.
func (camera *Camera) DrawArrow(screen *ebiten.Image, start, direction vecviz.Vector, magnitude float64, color vecviz.Color, options vecviz.ArrowOptions) {
	camera.DrawLines(screen, vecviz.ArrowLines(start, direction, magnitude, options), color, 1)
}

// DrawArrowRotation draws a line arrow gizmo starting at start and pointing along the rotation's forward (+Z) axis.
func (camera *Camera) DrawArrowRotation(screen *ebiten.Image, start vecviz.Vector, rotation vecviz.Quaternion, magnitude float64, color vecviz.Color, options vecviz.ArrowOptions) {
	camera.DrawLines(screen, vecviz.ArrowLinesRotation(start, rotation, magnitude, options), color, 1)
}

// DrawArrowEuler draws a line arrow gizmo starting at start and pointing along the forward (+Z) axis of the euler
// rotation (in radians) given.
func (camera *Camera) DrawArrowEuler(screen *ebiten.Image, start, euler vecviz.Vector, magnitude float64, color vecviz.Color, options vecviz.ArrowOptions) {
	camera.DrawLines(screen, vecviz.ArrowLinesEuler(start, euler, magnitude, options), color, 1)
}

// DrawArrowMesh draws the Mesh given as shaded, solid triangles (scaled, then rotated, then moved by the values given),
// lit by the Camera's Light. Triangles are sorted back to front rather than depth tested, so overlapping meshes should be
// drawn furthest first.
func (camera *Camera) DrawArrowMesh(screen *ebiten.Image, mesh *vecviz.Mesh, position vecviz.Vector, rotation vecviz.Quaternion, scale float64, color vecviz.Color) {

	camera.screenTriangles = camera.ProjectMesh(mesh, position, rotation, scale, camera.Light, camera.screenTriangles[:0])

	camera.vertexList = camera.vertexList[:0]
	camera.indexList = camera.indexList[:0]

	for _, tri := range camera.screenTriangles {

		// Indices are 16-bit, so flush before running out
		if len(camera.vertexList)+3 > math.MaxUint16 {
			camera.flushTriangles(screen)
		}

		shaded := color.Multiply(tri.Shade)
		start := uint16(len(camera.vertexList))

		for _, p := range tri.Points {
			camera.vertexList = append(camera.vertexList, ebiten.Vertex{
				DstX:   float32(p.X),
				DstY:   float32(p.Y),
				SrcX:   1,
				SrcY:   1,
				ColorR: shaded.R,
				ColorG: shaded.G,
				ColorB: shaded.B,
				ColorA: shaded.A,
			})
		}

		camera.indexList = append(camera.indexList, start, start+1, start+2)

	}

	camera.flushTriangles(screen)

}

func (camera *Camera) flushTriangles(screen *ebiten.Image) {
	if len(camera.indexList) > 0 {
		opt := &ebiten.DrawTrianglesOptions{}
		opt.AntiAlias = true
		screen.DrawTriangles(camera.vertexList, camera.indexList, whiteSubImage, opt)
	}
	camera.vertexList = camera.vertexList[:0]
	camera.indexList = camera.indexList[:0]
}

// DrawArrowLabel draws the Arrow's text (its Label, or its readout if it has no label) next to its tip.
func (camera *Camera) DrawArrowLabel(screen *ebiten.Image, arrow *vecviz.Arrow, textScale float64, color vecviz.Color) {

	tip, ok := camera.WorldToScreenPixels(arrow.Tip())
	if !ok {
		return
	}

	camera.DebugDrawText(screen, arrow.Text(), tip.X/textScale, tip.Y/textScale, textScale, color)

}

// DrawSceneOptions controls how DrawScene draws a Scene.
type DrawSceneOptions struct {
	Meshes       bool                // Whether to draw arrows as solid meshes (true) or as line gizmos (false)
	Mesh         *vecviz.Mesh        // Mesh to draw arrows with; defaults to vecviz.DefaultArrowMesh()
	ArrowOptions vecviz.ArrowOptions // Shape of line gizmos
	Labels       bool                // Whether to draw each arrow's label
	LabelColor   vecviz.Color
	ResultText   bool // Whether to draw the text results of the Scene's behaviors in the top-left corner
	TextScale    float64
}

// DefaultDrawSceneOptions returns options that draw arrows as meshes, with labels and behavior results.
func DefaultDrawSceneOptions() DrawSceneOptions {
	return DrawSceneOptions{
		Meshes:       true,
		ArrowOptions: vecviz.DefaultArrowOptions(),
		Labels:       true,
		LabelColor:   vecviz.NewColor(1, 1, 1, 1),
		ResultText:   true,
		TextScale:    1,
	}
}

// DrawScene draws all of the Arrows in the Scene, furthest first, along with their labels and the Scene's text results.
func (camera *Camera) DrawScene(screen *ebiten.Image, scene *vecviz.Scene, options DrawSceneOptions) {

	mesh := options.Mesh
	if mesh == nil {
		mesh = vecviz.DefaultArrowMesh()
	}

	textScale := options.TextScale
	if textScale <= 0 {
		textScale = 1
	}

	arrows := camera.sortArrows(scene.Arrows)

	for _, arrow := range arrows {

		if arrow.Magnitude <= 0 {
			continue
		}

		if options.Meshes {
			camera.DrawArrowMesh(screen, mesh, arrow.Position, arrow.MeshRotation(), arrow.Magnitude, arrow.Color)
		} else {
			camera.DrawArrow(screen, arrow.Position, arrow.Direction(), arrow.Magnitude, arrow.Color, options.ArrowOptions)
		}

	}

	if options.Labels {
		for _, arrow := range arrows {
			camera.DrawArrowLabel(screen, arrow, textScale, options.LabelColor)
		}
	}

	if options.ResultText {
		if txt := scene.Text(); txt != "" {
			camera.DebugDrawText(screen, txt, 0, 0, textScale, options.LabelColor)
		}
	}

}

// sortArrows returns the arrows sorted from furthest to closest to the Camera, by the middle of each arrow.
func (camera *Camera) sortArrows(arrows []*vecviz.Arrow) []*vecviz.Arrow {

	sorted := append([]*vecviz.Arrow(nil), arrows...)

	depth := func(a *vecviz.Arrow) float64 {
		return -camera.WorldToView(a.Position.Add(a.Vector().Scale(0.5))).Z
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return depth(sorted[i]) > depth(sorted[j])
	})

	return sorted

}
