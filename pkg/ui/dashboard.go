package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/golangdaddy/outrider/pkg/hud"
	"github.com/golangdaddy/outrider/pkg/projection"
	"github.com/golangdaddy/outrider/pkg/render"
	"github.com/golangdaddy/outrider/pkg/track"
)

const (
	DashboardHeight = 200.0
	mirrorWidth     = 200.0
	mirrorHeight    = 100.0
	mirrorInset     = 20.0 // Gap between the screen edge or panel top and a mirror
	revBarWidth     = 300.0
	revBarHeight    = 20.0
)

var (
	panelColor       = track.RGB(0x222222)
	panelBorderColor = track.RGB(0x555555)
	mirrorFrameColor = track.RGB(0x888888)
	speedColor       = track.RGB(0x00FF00)
	labelColor       = track.RGB(0x888888)
	odometerColor    = track.RGB(0xFFFFFF)
)

// DashboardState is what the instrument panel shows for one tick
type DashboardState struct {
	Speed     float64
	MaxSpeed  float64
	Distance  float64 // Unwrapped distance travelled
	HasPickup bool
	Boosting  bool
}

// Dashboard is the instrument panel along the bottom of the screen.
// It owns the placement of the two rear-view mirrors.
type Dashboard struct {
	width, height float64
	face          text.Face
}

// NewDashboard lays out a dashboard for a screen of the given size
func NewDashboard(width, height int) *Dashboard {
	return &Dashboard{
		width:  float64(width),
		height: float64(height),
		face:   text.NewGoXFace(bitmapfont.Face),
	}
}

// LeftMirror is the left mirror's glass in screen coordinates
func (d *Dashboard) LeftMirror() projection.Rect {
	return projection.Rect{X: mirrorInset, Y: d.top() + mirrorInset, W: mirrorWidth, H: mirrorHeight}
}

// RightMirror is the right mirror's glass in screen coordinates
func (d *Dashboard) RightMirror() projection.Rect {
	return projection.Rect{X: d.width - mirrorWidth - mirrorInset, Y: d.top() + mirrorInset, W: mirrorWidth, H: mirrorHeight}
}

func (d *Dashboard) top() float64 {
	return d.height - DashboardHeight
}

// DrawPanel paints the panel background. Mirrors are rendered on top of it.
func (d *Dashboard) DrawPanel(c render.Canvas) {
	c.FillRect(0, d.top(), d.width, DashboardHeight, panelColor)
	c.FillRect(0, d.top()-2.5, d.width, 5, panelBorderColor)
}

// DrawInstruments paints the mirror frames, gauges and pickup indicator
func (d *Dashboard) DrawInstruments(screen *ebiten.Image, c render.Canvas, state DashboardState) {
	d.drawFrame(c, d.LeftMirror())
	d.drawFrame(c, d.RightMirror())

	cx := d.width / 2
	top := d.top()

	d.drawText(screen, hud.SpeedReadout(state.Speed), 48, cx, top+50, speedColor)
	d.drawText(screen, "KM/H", 16, cx, top+90, labelColor)
	d.drawText(screen, hud.OdometerReadout(state.Distance), 24, cx, top+140, odometerColor)

	ratio := hud.RevRatio(state.Speed, state.MaxSpeed)
	barX := (d.width - revBarWidth) / 2
	c.FillRect(barX, top+110, revBarWidth, revBarHeight, color.RGBA{A: 255})
	c.FillRect(barX, top+110, revBarWidth*ratio, revBarHeight, hud.RevColor(ratio))

	label, iconColor, ok := hud.PickupIndicator(state.HasPickup, state.Boosting)
	if ok {
		c.FillRect(cx-20, top+160, 40, 40, iconColor)
		d.drawText(screen, label, 12, cx, top+180, color.RGBA{A: 255})
	}
}

// drawFrame outlines a mirror with a 4px border
func (d *Dashboard) drawFrame(c render.Canvas, r projection.Rect) {
	const border = 4.0
	c.FillRect(r.X-border/2, r.Y-border/2, r.W+border, border, mirrorFrameColor)
	c.FillRect(r.X-border/2, r.Bottom()-border/2, r.W+border, border, mirrorFrameColor)
	c.FillRect(r.X-border/2, r.Y-border/2, border, r.H+border, mirrorFrameColor)
	c.FillRect(r.Right()-border/2, r.Y-border/2, border, r.H+border, mirrorFrameColor)
}

// drawText draws text centred on (x, y), scaling the 16px bitmap font to size
func (d *Dashboard) drawText(screen *ebiten.Image, s string, size, x, y float64, clr color.Color) {
	scale := size / 16
	w := text.Advance(s, d.face) * scale

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x-w/2, y-size/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, d.face, op)
}
