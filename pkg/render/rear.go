package render

import (
	"math"

	"github.com/golangdaddy/outrider/pkg/projection"
	"github.com/golangdaddy/outrider/pkg/track"
)

// RenderRear draws what is behind the camera into the mirror rectangle vp.
// Drawing is clipped to vp, which is cleared to the sky colour first, so two
// mirrors sharing one canvas never paint over each other.
func (r *Renderer) RenderRear(cam Camera, t *track.Track, drawDistance int, vp projection.Rect, c Canvas) Frame {
	glass := c.Clip(vp)
	glass.Clear(SkyColor)

	var frame Frame
	count := t.SegmentCount()
	if count == 0 || drawDistance <= 0 || !finite(cam.Z) {
		return frame
	}

	// Folded onto one lap so the ordinal always fits in an int
	cam.Z = t.Wrap(cam.Z)
	start := int(math.Floor(cam.Z / t.SegmentLength))

	dx := 0.0
	x := 0.0
	horizon := vp.Bottom()
	sprites := make([]visibleSprite, 0, 16)

	for n := start - 1; n > start-drawDistance; n-- {
		seg := &t.Segments[wrapIndex(n, count)]

		// Walking backwards, the segment's end is the edge closest to the camera
		nearZ := cam.Z - float64(n+1)*t.SegmentLength
		farZ := cam.Z - float64(n)*t.SegmentLength
		if !r.Projector.Visible(nearZ) {
			continue
		}

		nearX := x - cam.X
		dx += seg.Curve
		x += dx
		farX := x - cam.X

		nearY := seg.P2.Y - cam.Y
		farY := seg.P1.Y - cam.Y

		// A camera facing backwards sees the lateral axis reversed;
		// the mirror projection reflects it back.
		near, _ := r.Projector.Mirror(projection.Point{X: -nearX, Y: nearY, Z: nearZ}, vp, t.RoadWidth)
		far, _ := r.Projector.Mirror(projection.Point{X: -farX, Y: farY, Z: farZ}, vp, t.RoadWidth)

		for _, s := range seg.Sprites {
			worldX := nearX + s.X*t.RoadWidth
			p, ok := r.Projector.Mirror(projection.Point{X: -worldX, Y: nearY + s.Y, Z: nearZ}, vp, t.RoadWidth)
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

		if near.Y <= far.Y || far.Y >= horizon {
			continue
		}
		// Off the top of the mirror glass
		if near.Y < vp.Y && far.Y < vp.Y {
			continue
		}
		horizon = far.Y

		renderSegment(glass, seg.Color, near, far)
		frame.Segments = append(frame.Segments, DrawnSegment{
			Index:   seg.Index,
			Ordinal: n,
			NearY:   near.Y,
			FarY:    far.Y,
		})
	}

	frame.SpritesCollected = len(sprites)
	frame.SpritesDrawn = drawSprites(glass, sprites)
	return frame
}
