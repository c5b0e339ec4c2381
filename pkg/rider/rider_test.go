package rider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tick = 1.0 / 60

func TestNew(t *testing.T) {
	r := New()
	assert.Equal(t, CameraHeight, r.Y)
	assert.Equal(t, TopSpeed, r.MaxSpeed)
	assert.Zero(t, r.Speed)
	assert.False(t, r.Boosting())
}

func TestUpdateSpeed(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		controls Controls
		want     float64
	}{
		{name: "accelerate", start: 1000, controls: Controls{Up: true}, want: 1200},
		{name: "brake", start: 1000, controls: Controls{Down: true}, want: 500},
		{name: "coast", start: 1000, want: 900},
		{name: "never negative", start: 50, controls: Controls{Down: true}, want: 0},
		{name: "capped", start: TopSpeed, controls: Controls{Up: true}, want: TopSpeed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := New()
			r.Speed = tc.start
			r.Update(tick, tc.controls, 0, 100000)
			assert.InDelta(t, tc.want, r.Speed, 1e-6)
		})
	}
}

func TestUpdateIsFrameRateIndependent(t *testing.T) {
	a, b := New(), New()
	for i := 0; i < 30; i++ {
		a.Update(tick, Controls{Up: true}, 0, 1e9)
	}
	for i := 0; i < 15; i++ {
		b.Update(2*tick, Controls{Up: true}, 0, 1e9)
	}
	assert.InDelta(t, 6000, a.Speed, 1e-6)
	assert.InDelta(t, a.Speed, b.Speed, 1e-6)
	assert.InDelta(t, a.Odometer, b.Odometer, 0.5*Acceleration*60)
}

func TestUpdateWrapsZ(t *testing.T) {
	r := New()
	r.Z = 990
	r.Speed = 6000
	r.Update(tick, Controls{Up: true}, 0, 1000)

	// 6200 units/s for one frame
	assert.InDelta(t, 990+6200*tick-1000, r.Z, 1e-6)
	assert.InDelta(t, 6200*tick, r.Odometer, 1e-6)
}

func TestUpdateSteeringScalesWithSpeed(t *testing.T) {
	r := New()
	r.Update(tick, Controls{Right: true}, 0, 1e6)
	assert.Zero(t, r.X, "a stationary rider cannot steer")

	r.Speed = TopSpeed
	r.Update(tick, Controls{Up: true, Left: true}, 0, 1e6)
	assert.InDelta(t, -SteeringRate, r.X, 1e-9)
}

func TestUpdateCentrifugalDrift(t *testing.T) {
	r := New()
	r.Speed = TopSpeed
	r.Update(tick, Controls{Up: true}, 2, 1e6)
	assert.InDelta(t, -2*CentrifugalRate, r.X, 1e-9)
}

func TestUpdateOffRoad(t *testing.T) {
	r := New()
	r.X = -VergeLimit
	r.Speed = 6000
	r.Update(tick, Controls{Up: true, Left: true}, 0, 1e6)

	assert.Equal(t, -VergeLimit, r.X)
	assert.True(t, r.OffRoad())
	assert.InDelta(t, 6000+Acceleration-OffRoadDrag, r.Speed, 1e-6)

	// Slow riders are not dragged further
	r.Speed = 1000
	r.Update(tick, Controls{Up: true}, 0, 1e6)
	assert.InDelta(t, 1200, r.Speed, 1e-6)
}

func TestBoost(t *testing.T) {
	r := New()
	r.Speed = TopSpeed
	r.ActivateBoost()
	assert.True(t, r.Boosting())

	for i := 0; i < 60; i++ {
		r.Update(tick, Controls{Up: true}, 0, 1e9)
	}
	assert.Greater(t, r.Speed, TopSpeed)
	assert.LessOrEqual(t, r.Speed, TopSpeed*BoostFactor)
	assert.InDelta(t, BoostDuration-1, r.BoostTimer, 1e-6)

	for i := 0; i < 60*int(BoostDuration); i++ {
		r.Update(tick, Controls{Up: true}, 0, 1e9)
	}
	assert.False(t, r.Boosting())
	assert.Equal(t, TopSpeed, r.Speed)
}

func TestUpdateIgnoresBadTick(t *testing.T) {
	r := New()
	r.Speed = 500
	r.Update(0, Controls{Up: true}, 0, 1000)
	r.Update(-1, Controls{Up: true}, 0, 1000)
	assert.Equal(t, 500.0, r.Speed)
}
