package track

import (
	"image/color"
	"math"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Track geometry defaults
const (
	DefaultSegmentLength = 200.0  // Length of a segment along Z
	DefaultRoadWidth     = 2200.0 // Half-width scale used by the projection
)

// Point is a position in track space.
// X is lateral, Y is elevation and Z is the absolute distance along the loop.
type Point struct {
	X, Y, Z float64
}

// ColorBand holds the colours a segment is painted with
type ColorBand struct {
	Road   color.RGBA
	Grass  color.RGBA
	Rumble color.RGBA
}

var (
	lightBand = ColorBand{Road: RGB(0x696969), Grass: RGB(0x009A00), Rumble: RGB(0xBBBBBB)}
	darkBand  = ColorBand{Road: RGB(0x6B6B6B), Grass: RGB(0x10AA10), Rumble: RGB(0x555555)}
)

// RGB converts a 0xRRGGBB value to an opaque colour
func RGB(hex uint32) color.RGBA {
	return color.RGBA{uint8(hex >> 16), uint8(hex >> 8), uint8(hex), 255}
}

// bandFor alternates the colour band every 3 segments
func bandFor(index int) ColorBand {
	if (index/3)%2 == 1 {
		return darkBand
	}
	return lightBand
}

// Segment represents one fixed-length slice of the loop
type Segment struct {
	Index   int
	P1      Point // Start edge
	P2      Point // End edge
	Curve   float64
	Color   ColorBand
	Sprites []Sprite
}

// Track is the closed loop of segments the rider travels on
type Track struct {
	Segments      []Segment
	SegmentLength float64
	RoadWidth     float64
	TotalLength   float64 // Always len(Segments) * SegmentLength
}

// New creates an empty track with the default geometry
func New() *Track {
	return &Track{
		Segments:      make([]Segment, 0),
		SegmentLength: DefaultSegmentLength,
		RoadWidth:     DefaultRoadWidth,
	}
}

// SegmentCount returns the number of segments in the loop
func (t *Track) SegmentCount() int {
	return len(t.Segments)
}

// SpriteCount returns the number of sprites attached across all segments
func (t *Track) SpriteCount() int {
	return lo.SumBy(t.Segments, func(s Segment) int {
		return len(s.Sprites)
	})
}

// IndexAt returns the index of the segment owning the longitudinal coordinate z.
// It reports false for an empty track or a non-finite z.
func (t *Track) IndexAt(z float64) (int, bool) {
	n := len(t.Segments)
	if n == 0 || math.IsNaN(z) || math.IsInf(z, 0) {
		return 0, false
	}

	// Reduce in float space so a huge z cannot overflow the int conversion
	idx := math.Mod(math.Floor(z/t.SegmentLength), float64(n))
	if idx < 0 {
		idx += float64(n)
	}
	i := int(idx)
	if i < 0 || i >= n {
		i = 0
	}
	return i, true
}

// ResolveSegment returns the segment owning the longitudinal coordinate z.
// An empty track or a bad coordinate yields a blank segment instead of failing.
func (t *Track) ResolveSegment(z float64) *Segment {
	i, ok := t.IndexAt(z)
	if !ok {
		return &Segment{Sprites: []Sprite{}}
	}
	return &t.Segments[i]
}

// Wrap folds z into [0, TotalLength)
func (t *Track) Wrap(z float64) float64 {
	if t.TotalLength <= 0 || math.IsNaN(z) || math.IsInf(z, 0) {
		return 0
	}
	z = math.Mod(z, t.TotalLength)
	if z < 0 {
		z += t.TotalLength
	}
	if z >= t.TotalLength {
		z = 0
	}
	return z
}

// Offset returns the shortest signed distance from one coordinate to another
// going around the loop, in [-TotalLength/2, TotalLength/2).
func (t *Track) Offset(from, to float64) float64 {
	d := to - from
	if t.TotalLength <= 0 {
		return d
	}
	d = math.Mod(d+t.TotalLength/2, t.TotalLength)
	if d < 0 {
		d += t.TotalLength
	}
	return d - t.TotalLength/2
}

// AttachSprite adds a sprite to the segment at index, placed at the segment's start.
// Indices outside the track are ignored.
func (t *Track) AttachSprite(index int, kind Kind, speed, x float64) (uuid.UUID, bool) {
	if index < 0 || index >= len(t.Segments) {
		return uuid.Nil, false
	}

	seg := &t.Segments[index]
	sprite := Sprite{
		ID:     uuid.New(),
		X:      x,
		Y:      0,
		Z:      seg.P1.Z,
		Kind:   kind,
		Speed:  speed,
		Width:  SpriteWidth,
		Height: SpriteHeight,
		Scale:  1,
	}
	seg.Sprites = append(seg.Sprites, sprite)
	return sprite.ID, true
}

// appendSegment adds a segment ending at elevation y.
// Its start elevation is taken from the previous segment's end.
func (t *Track) appendSegment(curve, y float64) {
	index := len(t.Segments)

	startY := 0.0
	if index > 0 {
		startY = t.Segments[index-1].P2.Y
	}

	t.Segments = append(t.Segments, Segment{
		Index:   index,
		P1:      Point{X: 0, Y: startY, Z: float64(index) * t.SegmentLength},
		P2:      Point{X: 0, Y: y, Z: float64(index+1) * t.SegmentLength},
		Curve:   curve,
		Color:   bandFor(index),
		Sprites: make([]Sprite, 0),
	})

	t.TotalLength = float64(len(t.Segments)) * t.SegmentLength
}

// addRoad appends length segments with the given curve.
// Elevation follows half a sine wave of amplitude height, starting from the
// current end of the track.
func (t *Track) addRoad(length int, curve, height float64) {
	startY := 0.0
	if len(t.Segments) > 0 {
		startY = t.Segments[len(t.Segments)-1].P2.Y
	}

	for i := 0; i < length; i++ {
		y := startY + height*math.Sin(float64(i)/float64(length)*math.Pi)
		t.appendSegment(curve, y)
	}
}

// AddStraight appends a flat, straight run of segments
func (t *Track) AddStraight(length int) {
	t.addRoad(length, 0, 0)
}

// AddCurve appends a curved run, optionally with a hill of the given height
func (t *Track) AddCurve(length int, curve, height float64) {
	t.addRoad(length, curve, height)
}

// AddHill appends a straight run with a hill of the given height
func (t *Track) AddHill(length int, height float64) {
	t.addRoad(length, 0, height)
}
