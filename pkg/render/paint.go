package render

import (
	"image/color"

	"github.com/golangdaddy/outrider/pkg/projection"
	"github.com/golangdaddy/outrider/pkg/track"
)

// Flat colours used in place of sprite art
var (
	SkyColor    = track.RGB(0x87CEEB)
	PickupColor = track.RGB(0xFFFF00)
	MovingColor = track.RGB(0x0000FF)
	StaticColor = track.RGB(0xFF0000)
)

// grassReach is how far the grass band extends past the road edges.
// It has to cover the screen whatever the curvature.
const grassReach = 5000.0

// renderSegment paints one segment between its two projected edges:
// grass band, rumble strips, then the road surface on top
func renderSegment(c Canvas, band track.ColorBand, p1, p2 projection.Projected) {
	c.FillPolygon([]Vec{
		{p1.X - grassReach, p2.Y},
		{p1.X - grassReach, p1.Y},
		{p2.X + grassReach, p1.Y},
		{p2.X + grassReach, p2.Y},
	}, band.Grass)

	r1 := p1.W / 4
	r2 := p2.W / 4
	c.FillPolygon([]Vec{
		{p1.X - p1.W - r1, p1.Y},
		{p1.X - p1.W, p1.Y},
		{p2.X - p2.W, p2.Y},
		{p2.X - p2.W - r2, p2.Y},
	}, band.Rumble)
	c.FillPolygon([]Vec{
		{p1.X + p1.W + r1, p1.Y},
		{p1.X + p1.W, p1.Y},
		{p2.X + p2.W, p2.Y},
		{p2.X + p2.W + r2, p2.Y},
	}, band.Rumble)

	c.FillPolygon([]Vec{
		{p1.X - p1.W, p1.Y},
		{p1.X + p1.W, p1.Y},
		{p2.X + p2.W, p2.Y},
		{p2.X - p2.W, p2.Y},
	}, band.Road)
}

// SpriteColor returns the stand-in colour for a sprite kind
func SpriteColor(kind track.Kind) color.RGBA {
	switch kind {
	case track.KindPickup:
		return PickupColor
	case track.KindMoving:
		return MovingColor
	case track.KindStatic:
		return StaticColor
	default:
		return StaticColor
	}
}

// drawSprites paints collected sprites back to front and returns how many were drawn.
// Sprites were collected front to back, so the list is walked in reverse.
func drawSprites(c Canvas, sprites []visibleSprite) int {
	drawn := 0
	for i := len(sprites) - 1; i >= 0; i-- {
		s := sprites[i]

		// Hidden behind a hill
		if s.y < s.clipY {
			continue
		}

		w := s.sprite.Width * s.sprite.Scale * s.scale
		h := s.sprite.Height * s.sprite.Scale * s.scale
		c.FillRect(s.x-w/2, s.y-h, w, h, SpriteColor(s.sprite.Kind))
		drawn++
	}
	return drawn
}
