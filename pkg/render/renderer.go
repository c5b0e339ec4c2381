// Package render draws the road and its sprites for the main view and the
// rear-view mirrors.
package render

import (
	"math"

	"github.com/golangdaddy/outrider/pkg/projection"
	"github.com/golangdaddy/outrider/pkg/track"
)

// Camera is the per-frame viewpoint.
// X is already scaled into road units (lane position times road width).
type Camera struct {
	Z float64 // Distance along the track
	X float64 // Lateral position
	Y float64 // Height above the track origin
}

// DrawnSegment describes a segment that made it to the canvas
type DrawnSegment struct {
	Index   int     // Segment index in the track
	Ordinal int     // Traversal ordinal, counted from the start of the current lap
	NearY   float64 // Screen Y of the edge closest to the camera
	FarY    float64 // Screen Y of the edge furthest from the camera
}

// Frame summarises one render pass
type Frame struct {
	Segments         []DrawnSegment
	SpritesCollected int
	SpritesDrawn     int
}

// Renderer projects the track into a viewport of a fixed size
type Renderer struct {
	Width     float64
	Height    float64
	Projector projection.Projector
}

// NewRenderer creates a renderer for a screen of the given size
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		Width:     float64(width),
		Height:    float64(height),
		Projector: projection.New(),
	}
}

// visibleSprite is a sprite projected during traversal, waiting to be painted
type visibleSprite struct {
	sprite track.Sprite
	x, y   float64
	scale  float64
	clipY  float64 // Horizon at the time the sprite's segment was visited
}

// Render draws the forward view, walking drawDistance segments ahead of the camera
func (r *Renderer) Render(cam Camera, t *track.Track, drawDistance int, c Canvas) Frame {
	c.Clear(SkyColor)

	var frame Frame
	count := t.SegmentCount()
	if count == 0 || drawDistance <= 0 || !finite(cam.Z) {
		return frame
	}

	vp := projection.Rect{W: r.Width, H: r.Height}
	// Folded onto one lap so the ordinal always fits in an int
	cam.Z = t.Wrap(cam.Z)
	start := int(math.Floor(cam.Z / t.SegmentLength))

	dx := 0.0 // Curvature drift
	x := 0.0  // Accumulated lateral offset
	horizon := r.Height
	sprites := make([]visibleSprite, 0, 32)

	// n is unwrapped so distances and curvature stay continuous across the seam
	for n := start; n < start+drawDistance; n++ {
		seg := &t.Segments[wrapIndex(n, count)]

		base := float64(n) * t.SegmentLength
		z1 := base - cam.Z
		z2 := base + t.SegmentLength - cam.Z
		if !r.Projector.Visible(z1) {
			continue
		}

		x1 := x - cam.X
		y1 := seg.P1.Y - cam.Y

		dx += seg.Curve
		x += dx

		x2 := x - cam.X
		y2 := seg.P2.Y - cam.Y

		p1, _ := r.Projector.Forward(projection.Point{X: x1, Y: y1, Z: z1}, vp, t.RoadWidth)
		p2, _ := r.Projector.Forward(projection.Point{X: x2, Y: y2, Z: z2}, vp, t.RoadWidth)

		// Sprites are collected even when the ground is hidden
		for _, s := range seg.Sprites {
			pt := projection.Point{X: x1 + s.X*t.RoadWidth, Y: y1 + s.Y, Z: z1}
			p, ok := r.Projector.Forward(pt, vp, t.RoadWidth)
			if !ok {
				continue
			}
			sprites = append(sprites, visibleSprite{
				sprite: s,
				x:      p.X,
				y:      p.Y,
				scale:  p.W / t.RoadWidth,
				clipY:  horizon,
			})
		}

		if p1.Y <= p2.Y || p2.Y >= horizon {
			continue
		}
		horizon = p2.Y

		renderSegment(c, seg.Color, p1, p2)
		frame.Segments = append(frame.Segments, DrawnSegment{
			Index:   seg.Index,
			Ordinal: n,
			NearY:   p1.Y,
			FarY:    p2.Y,
		})
	}

	frame.SpritesCollected = len(sprites)
	frame.SpritesDrawn = drawSprites(c, sprites)
	return frame
}

// wrapIndex folds an unwrapped ordinal onto [0, count)
func wrapIndex(n, count int) int {
	return ((n % count) + count) % count
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
