package race

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/outrider/pkg/rider"
	"github.com/golangdaddy/outrider/pkg/track"
)

const tick = 1.0 / 60

func straightTrack(segments int) *track.Track {
	t := track.New()
	t.AddStraight(segments)
	return t
}

func TestStepMovesRider(t *testing.T) {
	s := NewSession(straightTrack(100))
	for i := 0; i < 60; i++ {
		s.Step(tick, Input{Controls: rider.Controls{Up: true}})
	}

	assert.Equal(t, 60, s.Stats.Ticks)
	assert.Greater(t, s.Rider.Speed, 0.0)
	assert.Greater(t, s.Rider.Z, 0.0)
	assert.Less(t, s.Rider.Z, s.Track.TotalLength)
}

func TestStepCollectsPickupAndBoosts(t *testing.T) {
	s := NewSession(straightTrack(100))
	s.Track.AttachSprite(2, track.KindPickup, 0, 0)
	s.Rider.Z = 390
	s.Rider.Speed = 3000

	out := s.Step(tick, Input{Controls: rider.Controls{Up: true}})
	require.True(t, out.PickedUp)
	assert.True(t, s.HasPickup)
	assert.Equal(t, 1, s.Stats.Pickups)
	assert.Zero(t, s.Track.SpriteCount())

	s.Step(tick, Input{Boost: true})
	assert.False(t, s.HasPickup)
	assert.True(t, s.Rider.Boosting())
	assert.Equal(t, 1, s.Stats.Boosts)
}

func TestStepBoostNeedsPickup(t *testing.T) {
	s := NewSession(straightTrack(100))
	s.Step(tick, Input{Boost: true})
	assert.False(t, s.Rider.Boosting())
	assert.Zero(t, s.Stats.Boosts)
}

func TestStepObstacleSlowsRider(t *testing.T) {
	s := NewSession(straightTrack(100))
	s.Track.AttachSprite(2, track.KindStatic, 0, 0)
	s.Rider.Z = 390
	s.Rider.Speed = 3000

	s.Step(tick, Input{})
	assert.Equal(t, 1, s.Stats.Hits)
	// Coasting costs 100, the obstacle 2000/60
	assert.InDelta(t, 3000-100-2000*tick, s.Rider.Speed, 1e-6)
	assert.Equal(t, 1, s.Track.SpriteCount())
}

func TestStepKeepsSpritesOnGeneratedTrack(t *testing.T) {
	tr := track.Generate(rand.New(rand.NewSource(7)), 10)
	s := NewSession(tr)
	before := tr.SpriteCount()

	for i := 0; i < 300; i++ {
		s.Rider.X = 1.8 // Off road, clear of every lane
		s.Step(tick, Input{Controls: rider.Controls{Up: true}})
	}
	assert.Equal(t, before, tr.SpriteCount())
}

func TestCamera(t *testing.T) {
	tr := track.New()
	tr.AddStraight(5)
	tr.AddHill(20, 1000)
	s := NewSession(tr)
	s.Rider.Z = 15 * tr.SegmentLength
	s.Rider.X = -0.5

	cam := s.Camera()
	assert.Equal(t, s.Rider.Z, cam.Z)
	assert.Equal(t, -0.5*tr.RoadWidth, cam.X)
	assert.Equal(t, rider.CameraHeight+tr.Segments[15].P1.Y, cam.Y)
	assert.Greater(t, cam.Y, rider.CameraHeight)
}

func TestNewTrackIsDeterministic(t *testing.T) {
	a := NewTrack(42, 5)
	b := NewTrack(42, 5)
	assert.Equal(t, a.SegmentCount(), b.SegmentCount())
	assert.Equal(t, a.TotalLength, b.TotalLength)
	assert.Equal(t, a.SpriteCount(), b.SpriteCount())
}

func TestStepSurvivesNonFiniteTick(t *testing.T) {
	s := NewSession(straightTrack(100))
	s.Track.AttachSprite(11, track.KindStatic, 0, 0)
	s.Rider.Z = 2000
	s.Rider.Speed = 3000

	s.Step(math.NaN(), Input{Controls: rider.Controls{Up: true}})
	s.Step(tick, Input{Controls: rider.Controls{Up: true}})

	assert.False(t, math.IsNaN(s.Rider.Speed))
	assert.False(t, math.IsNaN(s.Rider.Z))
	assert.Zero(t, s.Stats.Hits)
	assert.InDelta(t, 3200, s.Rider.Speed, 1e-6)
}

func TestCruiseKeepsObstaclePenalty(t *testing.T) {
	s := NewSession(straightTrack(100))
	s.Track.AttachSprite(2, track.KindStatic, 0, 0)
	s.Rider.Z = 390
	s.Rider.Speed = 3000

	s.Cruise(tick, 3000, 0)
	require.Equal(t, 1, s.Stats.Hits)
	// At target the throttle stays shut, so coasting and the hit both count
	assert.InDelta(t, 3000-100-2000*tick, s.Rider.Speed, 1e-6)

	slowed := s.Rider.Speed
	s.Cruise(tick, 3000, 0)
	assert.LessOrEqual(t, s.Rider.Speed, slowed+200, "speed is never reset to the target")
}

func TestCruiseHoldsLaneAndTarget(t *testing.T) {
	s := NewSession(straightTrack(500))
	for i := 0; i < 600; i++ {
		s.Cruise(tick, 5000, 0.5)
	}

	assert.Equal(t, 0.5, s.Rider.X)
	assert.InDelta(t, 5000, s.Rider.Speed, 200)
	assert.Zero(t, s.Stats.Hits)
}

func TestCruiseFiresPickup(t *testing.T) {
	s := NewSession(straightTrack(100))
	s.Track.AttachSprite(2, track.KindPickup, 0, 0)
	s.Rider.Z = 390
	s.Rider.Speed = 3000

	s.Cruise(tick, 3000, 0)
	require.True(t, s.HasPickup)

	s.Cruise(tick, 3000, 0)
	assert.False(t, s.HasPickup)
	assert.True(t, s.Rider.Boosting())
	assert.Equal(t, 1, s.Stats.Boosts)
}
