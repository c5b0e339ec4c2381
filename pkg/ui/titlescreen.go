package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/golangdaddy/outrider/pkg/render"
	"github.com/golangdaddy/outrider/pkg/track"
)

// TitleScreen represents the main title screen
type TitleScreen struct {
	startTime      time.Time
	seed           int64
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a new title screen showing the track seed
func NewTitleScreen(seed int64, onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		seed:           seed,
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	canvas := NewCanvas(screen)
	canvas.Clear(render.SkyColor)

	elapsed := time.Since(ts.startTime).Seconds()
	drawHorizon(canvas, float64(width), float64(height), elapsed)

	face := text.NewGoXFace(bitmapfont.Face)
	centerX := float64(width) / 2
	centerY := float64(height) / 4

	// Pulsing scale effect (1.0 to 1.1)
	pulseScale := 1.0 + 0.1*sinWave(elapsed*2.0)
	titleScale := 8.0 * pulseScale
	drawCentered(screen, face, "OUTRIDER", titleScale, centerX, centerY-8, color.RGBA{255, 200, 50, 255})

	drawCentered(screen, face, "Keep your eyes on the mirrors", 2, centerX, centerY+80, color.RGBA{40, 40, 60, 255})

	if int(elapsed*2)%2 == 0 { // Blink every 0.5 seconds
		drawCentered(screen, face, "Press ENTER or SPACE to Start", 1.5, centerX, float64(height)-100, color.RGBA{255, 255, 255, 255})
	}
	drawCentered(screen, face, seedLabel(ts.seed), 1, centerX, float64(height)-60, color.RGBA{220, 220, 220, 255})
}

func drawCentered(screen *ebiten.Image, face text.Face, s string, scale, x, y float64, clr color.Color) {
	w := text.Advance(s, face) * scale

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x-w/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

func seedLabel(seed int64) string {
	return fmt.Sprintf("TRACK %d", seed)
}

// sinWave returns a sine wave value between -1 and 1
func sinWave(t float64) float64 {
	return math.Sin(t)
}

// drawHorizon draws a flat road running to the horizon, its stripes scrolling towards the viewer
func drawHorizon(c *Canvas, width, height, elapsed float64) {
	horizon := height * 0.55
	c.FillRect(0, horizon, width, height-horizon, track.RGB(0x009A00))

	cx := width / 2
	c.FillPolygon([]render.Vec{
		{X: cx - 4, Y: horizon},
		{X: cx + 4, Y: horizon},
		{X: cx + width*0.45, Y: height},
		{X: cx - width*0.45, Y: height},
	}, track.RGB(0x696969))

	// Centre line dashes, spaced evenly in depth
	offset := math.Mod(elapsed*2, 1)
	for i := 0; i < 12; i++ {
		near := 1 / (float64(i) + 1 - offset + 0.5)
		far := 1 / (float64(i) + 1.5 - offset + 0.5)
		y1 := horizon + (height-horizon)*near
		y2 := horizon + (height-horizon)*far
		if y1 > height {
			continue
		}
		w1 := 2 + 10*near
		w2 := 2 + 10*far
		c.FillPolygon([]render.Vec{
			{X: cx - w2, Y: y2},
			{X: cx + w2, Y: y2},
			{X: cx + w1, Y: y1},
			{X: cx - w1, Y: y1},
		}, track.RGB(0xBBBBBB))
	}
}
