package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/outrider/pkg/projection"
	"github.com/golangdaddy/outrider/pkg/render"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage is the solid source texture for filled triangles
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas paints render calls onto an ebiten image
type Canvas struct {
	img *ebiten.Image
}

// NewCanvas wraps an ebiten image, usually the screen
func NewCanvas(img *ebiten.Image) *Canvas {
	return &Canvas{img: img}
}

// Clear fills the canvas. On a clipped canvas only the clip rectangle is filled.
func (c *Canvas) Clear(clr color.RGBA) {
	c.img.Fill(clr)
}

// FillRect fills an axis aligned rectangle
func (c *Canvas) FillRect(x, y, w, h float64, clr color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	c.FillPolygon([]render.Vec{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}, clr)
}

// FillPolygon fills a convex polygon as a triangle fan
func (c *Canvas) FillPolygon(points []render.Vec, clr color.RGBA) {
	if len(points) < 3 {
		return
	}

	indices := make([]uint16, 0, (len(points)-2)*3)
	for i := 2; i < len(points); i++ {
		indices = append(indices, 0, uint16(i-1), uint16(i))
	}

	cr := float32(clr.R) / 255.0
	cg := float32(clr.G) / 255.0
	cb := float32(clr.B) / 255.0
	ca := float32(clr.A) / 255.0

	vertices := make([]ebiten.Vertex, len(points))
	for i, p := range points {
		vertices[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.FillRule = ebiten.FillAll
	c.img.DrawTriangles(vertices, indices, whiteSubImage, op)
}

// Clip returns a canvas restricted to r. Sub-images keep the parent's
// coordinate space, so callers keep drawing in screen coordinates.
func (c *Canvas) Clip(r projection.Rect) render.Canvas {
	rect := image.Rect(
		int(math.Floor(r.X)),
		int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())),
		int(math.Ceil(r.Bottom())),
	)
	return &Canvas{img: c.img.SubImage(rect).(*ebiten.Image)}
}
