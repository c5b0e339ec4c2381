// Package race runs one update tick of a race: rider, traffic, collisions and boost.
// Both the windowed game and the headless simulator drive a Session.
package race

import (
	"math/rand"

	"github.com/golangdaddy/outrider/pkg/dynamics"
	"github.com/golangdaddy/outrider/pkg/log"
	"github.com/golangdaddy/outrider/pkg/render"
	"github.com/golangdaddy/outrider/pkg/rider"
	"github.com/golangdaddy/outrider/pkg/track"
)

// NewTrack generates the track for a seed and logs its shape
func NewTrack(seed int64, sections int) *track.Track {
	t := track.Generate(rand.New(rand.NewSource(seed)), sections)
	log.Info("track generated",
		log.Int64("seed", seed),
		log.Int("sections", sections),
		log.Int("segments", t.SegmentCount()),
		log.Int("sprites", t.SpriteCount()),
		log.Float64("length", t.TotalLength))
	return t
}

// Input is the driver's intent for one tick
type Input struct {
	rider.Controls
	Boost bool
}

// Stats accumulates what happened over a session
type Stats struct {
	Ticks   int
	Refiled int
	Hits    int
	Pickups int
	Boosts  int
}

// Session is a rider on a track
type Session struct {
	Track     *track.Track
	Rider     *rider.Rider
	HasPickup bool
	Stats     Stats
}

// NewSession puts a stationary rider on the start line
func NewSession(t *track.Track) *Session {
	return &Session{
		Track: t,
		Rider: rider.New(),
	}
}

// Step advances the session by dt seconds.
// All mutation of the track happens here, before anything is rendered.
func (s *Session) Step(dt float64, in Input) dynamics.Outcome {
	s.Stats.Ticks++

	seg := s.Track.ResolveSegment(s.Rider.Z)
	s.Rider.Update(dt, in.Controls, seg.Curve, s.Track.TotalLength)

	s.Stats.Refiled += dynamics.Advance(s.Track, dt)

	out := dynamics.Collide(s.Track, dynamics.Rider{
		Z:     s.Rider.Z,
		X:     s.Rider.X,
		Speed: s.Rider.Speed,
	}, dt)
	s.Rider.Speed = out.Speed

	if out.Hits > 0 {
		s.Stats.Hits += out.Hits
		log.Debug("obstacle hit",
			log.Int("hits", out.Hits),
			log.Float64("z", s.Rider.Z),
			log.Float64("speed", s.Rider.Speed))
	}
	if out.PickedUp {
		s.HasPickup = true
		s.Stats.Pickups += len(out.Collected)
		for _, id := range out.Collected {
			log.Debug("pickup collected", log.Stringer("id", id), log.Float64("z", s.Rider.Z))
		}
	}

	if in.Boost && s.HasPickup && !s.Rider.Boosting() {
		s.Rider.ActivateBoost()
		s.HasPickup = false
		s.Stats.Boosts++
		log.Info("boost activated", log.Float64("speed", s.Rider.Speed))
	}
	return out
}

// Cruise steps the session with the rider pinned to lane. The throttle opens
// only while the rider is below target, and a held pickup is fired at once.
func (s *Session) Cruise(dt, target, lane float64) dynamics.Outcome {
	s.Rider.X = lane
	return s.Step(dt, Input{
		Controls: rider.Controls{Up: s.Rider.Speed < target},
		Boost:    s.HasPickup,
	})
}

// Camera is the viewpoint for this tick. The camera rides at a fixed height
// above the start of the segment under the rider.
func (s *Session) Camera() render.Camera {
	seg := s.Track.ResolveSegment(s.Rider.Z)
	return render.Camera{
		Z: s.Rider.Z,
		X: s.Rider.X * s.Track.RoadWidth,
		Y: s.Rider.Y + seg.P1.Y,
	}
}
