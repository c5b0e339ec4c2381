package track

import "math"

// Generator layout
const (
	DefaultSections = 40 // Random sections between the opening and closing straights
	OpeningStraight = 20
	ClosingStraight = 50
)

// Sprite placement
const (
	ObstacleChance = 0.5 // Chance a section carries sprites
	PickupChance   = 0.1
	StaticChance   = 0.3 // Chance a non-pickup obstacle is parked

	LaneOffset = 0.5 // Sprites sit in the left (-0.5) or right (+0.5) lane

	ReferenceSpeed = 2000.0  // Cruising speed the same-direction traffic is tuned against
	TopSpeed       = 12000.0 // Rider top speed, oncoming traffic is tuned against it

	SameDirectionSpeed = ReferenceSpeed * 0.8
	OncomingSpeed      = -(TopSpeed * 1.2)
)

// Rand is the source of randomness used by the generator.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Generate builds a new loop: an opening straight, the given number of random
// sections and a closing straight.
func Generate(rng Rand, sections int) *Track {
	t := New()

	t.AddStraight(OpeningStraight)

	for i := 0; i < sections; i++ {
		r := rng.Float64()
		hasObstacles := rng.Float64() < ObstacleChance

		sectionLength := t.addSection(rng, r)

		if hasObstacles {
			t.scatterSprites(rng, sectionLength)
		}
	}

	t.AddStraight(ClosingStraight)

	return t
}

// addSection appends one random section picked by r and returns its length
func (t *Track) addSection(rng Rand, r float64) int {
	switch {
	case r < 0.2:
		length := 20 + int(math.Floor(rng.Float64()*40))
		t.AddStraight(length)
		return length
	case r < 0.4:
		curve := randomCurve(rng)
		length := 30 + int(math.Floor(rng.Float64()*30))
		t.AddCurve(length, curve, 0)
		return length
	case r < 0.6:
		height := randomHeight(rng)
		length := 40 + int(math.Floor(rng.Float64()*40))
		t.AddHill(length, height)
		return length
	case r < 0.8:
		curve := randomCurve(rng)
		height := randomHeight(rng)
		length := 40 + int(math.Floor(rng.Float64()*40))
		t.AddCurve(length, curve, height)
		return length
	default:
		// S-curve: bend one way, short straight, bend back
		strength := 1 + rng.Float64()*3
		t.AddCurve(30, strength, 0)
		t.AddStraight(10)
		t.AddCurve(30, -strength, 0)
		return 70
	}
}

// randomCurve returns a curve strength in [1, 4) with a random direction
func randomCurve(rng Rand) float64 {
	dir := 1.0
	if rng.Float64() < 0.5 {
		dir = -1
	}
	return dir * (1 + rng.Float64()*3)
}

// randomHeight returns a hill height in [-1500, 1500)
func randomHeight(rng Rand) float64 {
	return rng.Float64()*3000 - 1500
}

// scatterSprites places 1 to 3 sprites in the last sectionLength segments
func (t *Track) scatterSprites(rng Rand, sectionLength int) {
	startIdx := len(t.Segments) - sectionLength
	count := 1 + int(math.Floor(rng.Float64()*3))

	for k := 0; k < count; k++ {
		index := startIdx + int(math.Floor(rng.Float64()*float64(sectionLength)))

		lane := LaneOffset
		if rng.Float64() < 0.5 {
			lane = -LaneOffset
		}
		isPickup := rng.Float64() < PickupChance
		isStatic := rng.Float64() < StaticChance

		kind := KindMoving
		speed := 0.0
		switch {
		case isPickup:
			kind = KindPickup
		case isStatic:
			kind = KindStatic
		case lane > 0:
			// Right lane travels with the rider
			speed = SameDirectionSpeed
		default:
			// Left lane comes the other way
			speed = OncomingSpeed
		}

		t.AttachSprite(index, kind, speed, lane)
	}
}
