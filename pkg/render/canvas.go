package render

import (
	"image/color"
	"math"

	"github.com/samber/lo"

	"github.com/golangdaddy/outrider/pkg/projection"
)

// Vec is a point on a canvas
type Vec struct {
	X, Y float64
}

// Canvas is the immediate-mode surface the renderer paints into.
// Coordinates are always those of the full surface, including on clipped canvases.
type Canvas interface {
	// Clear fills the whole canvas (or its clip rectangle) with one colour
	Clear(c color.RGBA)
	// FillRect fills an axis aligned rectangle
	FillRect(x, y, w, h float64, c color.RGBA)
	// FillPolygon fills a convex polygon
	FillPolygon(points []Vec, c color.RGBA)
	// Clip returns a canvas drawing into the same surface, restricted to r
	Clip(r projection.Rect) Canvas
}

// OpKind identifies a recorded canvas call
type OpKind int

const (
	OpClear OpKind = iota
	OpRect
	OpPolygon
)

// Op is one recorded canvas call
type Op struct {
	Kind    OpKind
	Points  []Vec
	Color   color.RGBA
	Clip    projection.Rect
	Clipped bool
}

type opLog struct {
	ops []Op
}

// Recorder is a Canvas that records every call instead of drawing.
// It backs the headless simulator and the renderer tests.
type Recorder struct {
	log     *opLog
	clip    projection.Rect
	clipped bool
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{log: &opLog{}}
}

// Clear records a clear of the canvas
func (r *Recorder) Clear(c color.RGBA) {
	r.record(Op{Kind: OpClear, Color: c})
}

// FillRect records a rectangle as its four corners
func (r *Recorder) FillRect(x, y, w, h float64, c color.RGBA) {
	r.record(Op{
		Kind:   OpRect,
		Points: []Vec{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}},
		Color:  c,
	})
}

// FillPolygon records a polygon
func (r *Recorder) FillPolygon(points []Vec, c color.RGBA) {
	r.record(Op{
		Kind:   OpPolygon,
		Points: append([]Vec(nil), points...),
		Color:  c,
	})
}

// Clip returns a recorder sharing this one's log, restricted to rect
func (r *Recorder) Clip(rect projection.Rect) Canvas {
	if r.clipped {
		rect = intersect(r.clip, rect)
	}
	return &Recorder{log: r.log, clip: rect, clipped: true}
}

func (r *Recorder) record(op Op) {
	op.Clip = r.clip
	op.Clipped = r.clipped
	r.log.ops = append(r.log.ops, op)
}

// Ops returns every recorded call in order
func (r *Recorder) Ops() []Op {
	return r.log.ops
}

// Filter returns the recorded calls of one kind
func (r *Recorder) Filter(kind OpKind) []Op {
	return lo.Filter(r.log.ops, func(op Op, _ int) bool {
		return op.Kind == kind
	})
}

// Reset drops all recorded calls
func (r *Recorder) Reset() {
	r.log.ops = r.log.ops[:0]
}

// intersect returns the overlap of two rectangles, empty if they do not meet
func intersect(a, b projection.Rect) projection.Rect {
	x0 := math.Max(a.X, b.X)
	y0 := math.Max(a.Y, b.Y)
	x1 := math.Min(a.Right(), b.Right())
	y1 := math.Min(a.Bottom(), b.Bottom())
	if x1 < x0 || y1 < y0 {
		return projection.Rect{X: x0, Y: y0}
	}
	return projection.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
