// Package rider holds the player's kinematics: speed, lane position and boost.
// The renderer and the collision pass only ever read its values.
package rider

import "math"

const (
	TopSpeed      = 12000.0 // Units per second
	CameraHeight  = 1500.0  // Camera height above the road surface
	BoostDuration = 10.0    // Seconds
	BoostFactor   = 1.2     // Top speed multiplier while boosting

	// Rates below are per 1/60 s frame, scaled by the real tick length
	Acceleration    = 200.0
	Braking         = 500.0
	Coasting        = 100.0
	OffRoadDrag     = 300.0
	SteeringRate    = 0.06
	CentrifugalRate = 0.02

	RoadEdge    = 1.0 // |X| past this is off the tarmac
	VergeLimit  = 2.0 // |X| is clamped to this
	frameLength = 1.0 / 60
)

// Controls is the driver's intent for one tick
type Controls struct {
	Up, Down    bool
	Left, Right bool
}

// Rider is the player's position on the loop.
// X is in road widths, with the tarmac spanning [-1, 1].
type Rider struct {
	Z        float64 // Distance along the track, wrapped to the track length
	X        float64 // Lateral position
	Y        float64 // Camera height above the road
	Speed    float64
	Odometer float64 // Unwrapped distance travelled

	MaxSpeed   float64
	BoostTimer float64 // Seconds of boost left
}

// New creates a stationary rider on the centre line
func New() *Rider {
	return &Rider{
		Y:        CameraHeight,
		MaxSpeed: TopSpeed,
	}
}

// ActivateBoost starts a boost, restarting the timer if one is running
func (r *Rider) ActivateBoost() {
	r.BoostTimer = BoostDuration
}

// Boosting reports whether a boost is active
func (r *Rider) Boosting() bool {
	return r.BoostTimer > 0
}

// SpeedRatio is the current speed as a fraction of the unboosted top speed
func (r *Rider) SpeedRatio() float64 {
	if r.MaxSpeed <= 0 {
		return 0
	}
	return r.Speed / r.MaxSpeed
}

// Update advances the rider by dt seconds. curve is the curvature of the
// segment under the rider and trackLength the loop length Z wraps at.
func (r *Rider) Update(dt float64, controls Controls, curve, trackLength float64) {
	if dt <= 0 || math.IsNaN(dt) {
		return
	}
	frames := dt / frameLength

	switch {
	case controls.Up:
		r.Speed += Acceleration * frames
	case controls.Down:
		r.Speed -= Braking * frames
	default:
		r.Speed -= Coasting * frames
	}

	limit := r.MaxSpeed
	if r.BoostTimer > 0 {
		r.BoostTimer = math.Max(0, r.BoostTimer-dt)
		limit = r.MaxSpeed * BoostFactor
	}
	r.Speed = math.Max(0, math.Min(r.Speed, limit))

	distance := r.Speed * dt
	r.Odometer += distance
	r.Z += distance
	if trackLength > 0 {
		r.Z = math.Mod(r.Z, trackLength)
		if r.Z < 0 {
			r.Z += trackLength
		}
	}

	// Curves push the rider to the outside
	ratio := r.SpeedRatio()
	r.X -= curve * ratio * CentrifugalRate

	switch {
	case controls.Left:
		r.X -= SteeringRate * ratio
	case controls.Right:
		r.X += SteeringRate * ratio
	}
	r.X = math.Max(-VergeLimit, math.Min(VergeLimit, r.X))

	if math.Abs(r.X) > RoadEdge && r.Speed > r.MaxSpeed/4 {
		r.Speed -= OffRoadDrag * frames
	}
}

// OffRoad reports whether the rider is on the verge
func (r *Rider) OffRoad() bool {
	return math.Abs(r.X) > RoadEdge
}
