// Package dynamics moves sprites around the track and tests them against the rider.
package dynamics

import (
	"math"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/golangdaddy/outrider/pkg/track"
)

const (
	MinCollisionDistance = 100.0  // Longitudinal hit window at low speed
	LateralTolerance     = 0.2    // Combined rider and sprite half-width, in road widths
	ObstaclePenalty      = 2000.0 // Speed lost per second while touching an obstacle
)

// Advance moves every sprite by its own speed and re-files the ones that crossed
// into another segment. It returns how many sprites changed segment.
// Re-filing happens after the sweep, so a sprite is moved at most once per tick.
func Advance(t *track.Track, dt float64) int {
	count := t.SegmentCount()
	if count == 0 || dt == 0 || math.IsNaN(dt) {
		return 0
	}

	var moved []track.Sprite
	for i := range t.Segments {
		seg := &t.Segments[i]
		if len(seg.Sprites) == 0 {
			continue
		}

		staying := seg.Sprites[:0]
		for _, s := range seg.Sprites {
			if s.Speed != 0 {
				s.Z = t.Wrap(s.Z + s.Speed*dt)
			}

			index, ok := t.IndexAt(s.Z)
			if !ok || index == seg.Index {
				staying = append(staying, s)
				continue
			}
			moved = append(moved, s)
		}
		seg.Sprites = staying
	}

	for _, s := range moved {
		index, _ := t.IndexAt(s.Z)
		t.Segments[index].Sprites = append(t.Segments[index].Sprites, s)
	}
	return len(moved)
}

// Rider is the collision view of the camera
type Rider struct {
	Z     float64 // Distance along the track
	X     float64 // Lateral position in road widths
	Speed float64 // Units per second
}

// Outcome reports what one collision pass did
type Outcome struct {
	PickedUp  bool
	Hits      int         // Obstacles touched this tick
	Collected []uuid.UUID // Pickups removed from the track
	Speed     float64     // Rider speed after penalties
}

// Collide tests the sprites around the rider and applies the results.
// Pickups are removed from the track; obstacles slow the rider and stay put.
func Collide(t *track.Track, rider Rider, dt float64) Outcome {
	out := Outcome{Speed: rider.Speed}
	if !finite(dt) || !finite(rider.Speed) {
		return out
	}

	current, ok := t.IndexAt(rider.Z)
	if !ok {
		return out
	}

	threshold := math.Max(MinCollisionDistance, math.Abs(rider.Speed*dt))
	count := t.SegmentCount()
	neighbours := lo.Uniq([]int{
		(current - 1 + count) % count,
		current,
		(current + 1) % count,
	})

	for _, index := range neighbours {
		seg := &t.Segments[index]

		kept := seg.Sprites[:0]
		for _, s := range seg.Sprites {
			if !touching(t, rider, s, threshold) {
				kept = append(kept, s)
				continue
			}

			switch s.Kind {
			case track.KindPickup:
				out.PickedUp = true
				out.Collected = append(out.Collected, s.ID)
				continue
			case track.KindStatic, track.KindMoving:
				out.Hits++
				out.Speed = math.Max(0, out.Speed-ObstaclePenalty*dt)
			}
			kept = append(kept, s)
		}
		seg.Sprites = kept
	}
	return out
}

func touching(t *track.Track, rider Rider, s track.Sprite, threshold float64) bool {
	dz := t.Offset(rider.Z, s.Z)
	if !(math.Abs(dz) < threshold) {
		return false
	}
	return math.Abs(rider.X-s.X) < LateralTolerance
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
