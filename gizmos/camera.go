// Package gizmos draws vecviz arrows, meshes, and scenes to ebiten images as debug overlays.
package gizmos

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/solarlune/vecviz"
	"golang.org/x/image/font/basicfont"
)

// Camera draws gizmos from the viewpoint of its View. Unlike a rendering camera, it has no backing textures; everything is drawn
// straight onto the screen image passed to each draw call.
type Camera struct {
	vecviz.View

	Light vecviz.DirectionalLight // Light used to shade meshes drawn with DrawArrowMesh()

	debugTextTexture *ebiten.Image
	screenTriangles  []vecviz.ScreenTriangle
	vertexList       []ebiten.Vertex
	indexList        []uint16
}

// NewCamera creates a new Camera with the specified width and height, 10 units back from the origin and looking at it.
func NewCamera(w, h int) *Camera {

	cam := &Camera{
		View:  vecviz.NewView(w, h),
		Light: vecviz.DefaultDirectionalLight(),
	}

	cam.Position = vecviz.NewVector(0, 0, 10)

	return cam

}

// Resize sets the size of the screen the Camera draws to.
func (camera *Camera) Resize(w, h int) {
	camera.Width = w
	camera.Height = h
}

// Size returns the width and height of the screen the Camera draws to.
func (camera *Camera) Size() (w, h int) {
	return camera.Width, camera.Height
}

// measureText returns the size of the text given in pixels when drawn with the debug font.
func measureText(txtStr string) image.Point {
	return text.BoundString(basicfont.Face7x13, txtStr).Size()
}

// DebugDrawText draws the text provided at the screen position given, scaled and with a black outline, using the debug font.
func (camera *Camera) DebugDrawText(screen *ebiten.Image, txtStr string, posX, posY, textScale float64, color vecviz.Color) {

	size := measureText(txtStr)

	if size.X <= 0 || size.Y <= 0 {
		return
	}

	if camera.debugTextTexture == nil || size.X > camera.debugTextTexture.Bounds().Dx() || size.Y+13 > camera.debugTextTexture.Bounds().Dy() {
		camera.debugTextTexture = ebiten.NewImage(size.X, size.Y+13)
	}

	camera.debugTextTexture.Clear()

	opt := &ebiten.DrawImageOptions{}
	opt.GeoM.Translate(0, 13)
	text.DrawWithOptions(camera.debugTextTexture, txtStr, basicfont.Face7x13, opt)

	dr := &ebiten.DrawImageOptions{}
	dr.ColorScale.Scale(0, 0, 0, 1)

	periodOffset := 8.0

	for y := -1; y < 2; y++ {

		for x := -1; x < 2; x++ {

			dr.GeoM.Reset()
			dr.GeoM.Translate(posX+4+float64(x), posY+4+float64(y)+periodOffset)
			dr.GeoM.Scale(textScale, textScale)

			screen.DrawImage(camera.debugTextTexture, dr)
		}

	}

	dr.ColorScale.Reset()
	dr.ColorScale.ScaleWithColor(color.ToNRGBA64())

	dr.GeoM.Reset()
	dr.GeoM.Translate(posX+4, posY+4+periodOffset)
	dr.GeoM.Scale(textScale, textScale)

	screen.DrawImage(camera.debugTextTexture, dr)

}

var whiteImage = ebiten.NewImage(3, 3)

// whiteSubImage is used as the source image for drawing flat-colored triangles; sampling from the middle of a larger white
// image keeps the edges of triangles from picking up transparent texels.
var whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

func init() {
	whiteImage.Fill(color.White)
}
