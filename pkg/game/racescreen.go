package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/outrider/pkg/config"
	"github.com/golangdaddy/outrider/pkg/hud"
	"github.com/golangdaddy/outrider/pkg/log"
	"github.com/golangdaddy/outrider/pkg/race"
	"github.com/golangdaddy/outrider/pkg/render"
	"github.com/golangdaddy/outrider/pkg/rider"
	"github.com/golangdaddy/outrider/pkg/track"
	"github.com/golangdaddy/outrider/pkg/ui"
)

// RaceScreen is the main driving view with its dashboard and mirrors
type RaceScreen struct {
	session   *race.Session
	renderer  *render.Renderer
	dashboard *ui.Dashboard
	avatar    *hud.Avatar
	onExit    func() // Callback when the player leaves the race

	lastFrame render.Frame
}

// NewRaceScreen creates a race on the given track
func NewRaceScreen(t *track.Track, onExit func()) *RaceScreen {
	return &RaceScreen{
		session:   race.NewSession(t),
		renderer:  render.NewRenderer(config.ScreenWidth, config.ScreenHeight),
		dashboard: ui.NewDashboard(config.ScreenWidth, config.ScreenHeight),
		avatar:    hud.NewAvatar(),
		onExit:    onExit,
	}
}

// Update handles input and advances the race by one tick
func (rs *RaceScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s := rs.session.Stats
		log.Info("race abandoned",
			log.Int("ticks", s.Ticks),
			log.Int("hits", s.Hits),
			log.Int("pickups", s.Pickups),
			log.Float64("odometer", rs.session.Rider.Odometer))
		if rs.onExit != nil {
			rs.onExit()
		}
		return nil
	}

	dt := 1.0 / float64(ebiten.TPS())
	in := race.Input{
		Controls: rider.Controls{
			Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
			Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
			Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
			Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		},
		Boost: ebiten.IsKeyPressed(ebiten.KeySpace),
	}

	rs.session.Step(dt, in)
	rs.avatar.Update(dt, in.Left, in.Right, rs.session.Rider.Speed > 0)
	return nil
}

// Draw renders the road, the rider, the mirrors and the dashboard
func (rs *RaceScreen) Draw(screen *ebiten.Image) {
	width, height := float64(config.ScreenWidth), float64(config.ScreenHeight)
	canvas := ui.NewCanvas(screen)
	cam := rs.session.Camera()
	t := rs.session.Track

	rs.lastFrame = rs.renderer.Render(cam, t, config.DrawDistance, canvas)
	rs.avatar.Draw(canvas, width, height)

	rs.dashboard.DrawPanel(canvas)
	rs.renderer.RenderRear(cam, t, config.MirrorDistance, rs.dashboard.LeftMirror(), canvas)
	rs.renderer.RenderRear(cam, t, config.MirrorDistance, rs.dashboard.RightMirror(), canvas)

	r := rs.session.Rider
	rs.dashboard.DrawInstruments(screen, canvas, ui.DashboardState{
		Speed:     r.Speed,
		MaxSpeed:  r.MaxSpeed,
		Distance:  r.Odometer,
		HasPickup: rs.session.HasPickup,
		Boosting:  r.Boosting(),
	})

	if config.Debug {
		rs.drawDebug(screen)
	}
}

// drawDebug prints frame and session counters in the top left corner
func (rs *RaceScreen) drawDebug(screen *ebiten.Image) {
	seg := rs.session.Track.ResolveSegment(rs.session.Rider.Z)
	msg := fmt.Sprintf("TPS %.0f  FPS %.0f\nsegment %d  curve %.2f\nz %.0f  x %.2f\ndrawn %d  sprites %d/%d\nhits %d  pickups %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		seg.Index, seg.Curve,
		rs.session.Rider.Z, rs.session.Rider.X,
		len(rs.lastFrame.Segments), rs.lastFrame.SpritesDrawn, rs.lastFrame.SpritesCollected,
		rs.session.Stats.Hits, rs.session.Stats.Pickups)
	ebitenutil.DebugPrint(screen, msg)
}
