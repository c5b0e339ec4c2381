package track

import "github.com/google/uuid"

// Kind identifies what a sprite is and how the rider reacts when touching it
type Kind int

const (
	KindStatic Kind = iota // Obstacle parked on the road
	KindMoving             // Obstacle driving along (or against) the track
	KindPickup             // Boost pickup, removed when collected
)

// String returns a readable name for the kind
func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindMoving:
		return "moving"
	case KindPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Default footprint of every generated sprite, in world units
const (
	SpriteWidth  = 400.0
	SpriteHeight = 400.0
)

// Sprite is an object attached to the track.
// Membership in a segment's Sprites slice decides which segment owns it.
type Sprite struct {
	ID     uuid.UUID
	X      float64 // Lateral offset, -1 to 1 is the road surface
	Y      float64 // Height above the road surface
	Z      float64 // Absolute distance along the loop
	Kind   Kind
	Speed  float64 // Longitudinal rate in units per second, negative for oncoming traffic
	Width  float64
	Height float64
	Scale  float64
}

// IsObstacle reports whether touching the sprite slows the rider down
func (s Sprite) IsObstacle() bool {
	return s.Kind == KindStatic || s.Kind == KindMoving
}
