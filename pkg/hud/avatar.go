package hud

import (
	"math"

	"github.com/golangdaddy/outrider/pkg/render"
	"github.com/golangdaddy/outrider/pkg/track"
)

const (
	slightLean    = 0.15 // Radians
	fullLean      = 0.35
	fullLeanAfter = 1.0 // Seconds of holding a direction before leaning fully
	avatarLift    = 350.0
	bobRate       = 50.0 // Radians per second
	bobHeight     = 2.0
)

var (
	tyreColor   = track.RGB(0x1E1E1E)
	bodyColor   = track.RGB(0xC0392B)
	jacketColor = track.RGB(0x2C3E50)
	helmetColor = track.RGB(0xECF0F1)
	visorColor  = track.RGB(0x96C8FF)
)

// Avatar is the rider seen from behind, drawn with flat shapes.
// It leans into the steering direction and bobs while moving.
type Avatar struct {
	steerTime float64
	lean      float64
	elapsed   float64
	moving    bool
}

// NewAvatar creates an upright avatar
func NewAvatar() *Avatar {
	return &Avatar{}
}

// Update tracks how long a direction has been held
func (a *Avatar) Update(dt float64, left, right, moving bool) {
	a.elapsed += dt
	a.moving = moving

	if !left && !right {
		a.steerTime = 0
		a.lean = 0
		return
	}

	lean := slightLean
	if a.steerTime >= fullLeanAfter {
		lean = fullLean
	}
	a.steerTime += dt

	if left {
		a.lean = -lean
	} else {
		a.lean = lean
	}
}

// Lean is the current lean angle, negative to the left
func (a *Avatar) Lean() float64 {
	return a.lean
}

// Draw paints the avatar centred horizontally, above the dashboard
func (a *Avatar) Draw(c render.Canvas, width, height float64) {
	baseX := width / 2
	baseY := height - avatarLift + 100
	if a.moving {
		baseY += math.Sin(a.elapsed*bobRate) * bobHeight
	}

	part := func(x, y, w, h float64) []render.Vec {
		return a.rotate(baseX, baseY, []render.Vec{
			{X: x - w/2, Y: y - h},
			{X: x + w/2, Y: y - h},
			{X: x + w/2, Y: y},
			{X: x - w/2, Y: y},
		})
	}

	// Bottom up, in local coordinates relative to the contact patch
	c.FillPolygon(part(0, 0, 18, 40), tyreColor)
	c.FillPolygon(part(0, -30, 46, 50), bodyColor)
	c.FillPolygon(part(0, -70, 60, 60), jacketColor)
	c.FillPolygon(part(0, -128, 36, 36), helmetColor)
	c.FillPolygon(part(0, -140, 26, 10), visorColor)
}

// rotate leans local points around the contact patch and moves them to the base
func (a *Avatar) rotate(baseX, baseY float64, points []render.Vec) []render.Vec {
	sin, cos := math.Sincos(a.lean)
	out := make([]render.Vec, len(points))
	for i, p := range points {
		out[i] = render.Vec{
			X: baseX + p.X*cos - p.Y*sin,
			Y: baseY + p.X*sin + p.Y*cos,
		}
	}
	return out
}
