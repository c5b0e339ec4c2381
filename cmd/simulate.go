package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/golangdaddy/outrider/pkg/config"
	"github.com/golangdaddy/outrider/pkg/log"
	"github.com/golangdaddy/outrider/pkg/race"
	"github.com/golangdaddy/outrider/pkg/projection"
	"github.com/golangdaddy/outrider/pkg/render"
	"github.com/golangdaddy/outrider/pkg/ui"
)

// Report summarises a headless run
type Report struct {
	Seed           int64
	Stats          race.Stats
	Odometer       float64
	SegmentsDrawn  int // Forward view, summed over all ticks
	MirrorSegments int // Both mirrors, summed over all ticks
	SpritesDrawn   int
	Elapsed        time.Duration
}

func NewSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "runs a race without a window and logs what happened",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer log.Sync()
			if config.TickRate <= 0 {
				return fmt.Errorf("tick rate must be positive, got %d", config.TickRate)
			}
			r := simulate(resolveSeed())
			log.Info("simulation finished",
				log.Int64("seed", r.Seed),
				log.Int("ticks", r.Stats.Ticks),
				log.Int("refiled", r.Stats.Refiled),
				log.Int("hits", r.Stats.Hits),
				log.Int("pickups", r.Stats.Pickups),
				log.Int("boosts", r.Stats.Boosts),
				log.Float64("odometer", r.Odometer),
				log.Int("segmentsDrawn", r.SegmentsDrawn),
				log.Int("mirrorSegments", r.MirrorSegments),
				log.Int("spritesDrawn", r.SpritesDrawn),
				log.Duration("elapsed", r.Elapsed))
			return nil
		},
	}

	cmd.Flags().IntVar(&config.Ticks, "ticks", 3600, "number of ticks to simulate")
	cmd.Flags().Float64Var(&config.Speed, "speed", 8000, "rider speed in units per second")
	cmd.Flags().Float64Var(&config.Lane, "lane", 0, "rider lane position in road widths")
	cmd.Flags().IntVar(&config.TickRate, "tick-rate", 60, "ticks per second")
	cmd.Flags().IntVar(&config.ScreenWidth, "width", 1024, "virtual screen width")
	cmd.Flags().IntVar(&config.ScreenHeight, "height", 768, "virtual screen height")

	return cmd
}

// simulate cruises the rider around the track at the configured speed and
// lane, rendering every tick into a recorder
func simulate(seed int64) Report {
	start := time.Now()
	t := race.NewTrack(seed, config.Sections)
	session := race.NewSession(t)
	renderer := render.NewRenderer(config.ScreenWidth, config.ScreenHeight)
	rec := render.NewRecorder()

	dashboard := ui.NewDashboard(config.ScreenWidth, config.ScreenHeight)
	mirrors := []projection.Rect{dashboard.LeftMirror(), dashboard.RightMirror()}

	report := Report{Seed: seed}
	dt := 1.0 / float64(config.TickRate)
	session.Rider.Speed = config.Speed
	for i := 0; i < config.Ticks; i++ {
		session.Cruise(dt, config.Speed, config.Lane)

		rec.Reset()
		cam := session.Camera()
		frame := renderer.Render(cam, t, config.DrawDistance, rec)
		report.SegmentsDrawn += len(frame.Segments)
		report.SpritesDrawn += frame.SpritesDrawn
		for _, vp := range mirrors {
			mirror := renderer.RenderRear(cam, t, config.MirrorDistance, vp, rec)
			report.MirrorSegments += len(mirror.Segments)
			report.SpritesDrawn += mirror.SpritesDrawn
		}
	}

	report.Stats = session.Stats
	report.Odometer = session.Rider.Odometer
	report.Elapsed = time.Since(start)
	return report
}
