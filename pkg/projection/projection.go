// Package projection maps track-relative points onto a 2D viewport using the
// single vanishing point road technique.
package projection

import "math"

// DefaultDepth is the camera depth used when none is configured.
// Larger values narrow the field of view.
const DefaultDepth = 0.84

// MirrorHorizon is where the horizon sits inside a mirror, as a fraction of its
// height from the top. Mirrors show more road and less sky than the main view.
const MirrorHorizon = 0.25

// Point is a position relative to the camera.
// X is lateral, Y is vertical and Z is the distance ahead of the camera.
type Point struct {
	X, Y, Z float64
}

// Projected is a point on screen plus the half-width of the road at that depth
type Projected struct {
	X, Y float64
	W    float64
}

// Rect is an axis aligned rectangle in screen coordinates
type Rect struct {
	X, Y, W, H float64
}

// CenterX returns the horizontal middle of the rectangle
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical middle of the rectangle
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Projector projects points with a fixed camera depth
type Projector struct {
	Depth float64
}

// New creates a projector with the default camera depth
func New() Projector {
	return Projector{Depth: DefaultDepth}
}

// scale returns the perspective factor for a point at distance z
func (p Projector) scale(z float64) float64 {
	if z == 0 {
		z = 1
	}
	return p.Depth / z
}

// Visible reports whether a point at distance z is far enough in front of the
// camera to be projected.
func (p Projector) Visible(z float64) bool {
	// Written this way round so NaN is rejected too
	return z > p.Depth && !math.IsInf(z, 0)
}

// Forward projects a point into the viewport with the horizon at its centre.
// The second result is false when the point is behind or too close to the camera;
// callers should skip such points.
func (p Projector) Forward(pt Point, vp Rect, roadWidth float64) (Projected, bool) {
	s := p.scale(pt.Z)
	halfW := vp.W / 2
	halfH := vp.H / 2

	return Projected{
		X: vp.CenterX() + s*pt.X*halfW,
		Y: vp.CenterY() - s*pt.Y*halfH,
		W: s * roadWidth * halfW,
	}, p.Visible(pt.Z)
}

// Mirror projects a point into a mirror inset.
// The horizon is raised to MirrorHorizon and the lateral axis is reflected.
func (p Projector) Mirror(pt Point, vp Rect, roadWidth float64) (Projected, bool) {
	s := p.scale(pt.Z)
	halfW := vp.W / 2
	halfH := vp.H / 2
	horizon := vp.Y + vp.H*MirrorHorizon

	return Projected{
		X: vp.CenterX() + s*-pt.X*halfW,
		Y: horizon - s*pt.Y*halfH,
		W: s * roadWidth * halfW,
	}, p.Visible(pt.Z)
}
