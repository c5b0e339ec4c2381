package render

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/outrider/pkg/projection"
	"github.com/golangdaddy/outrider/pkg/track"
)

var (
	leftMirror  = projection.Rect{X: 20, Y: 588, W: 200, H: 100}
	rightMirror = projection.Rect{X: 804, Y: 588, W: 200, H: 100}
)

func TestRenderRearClearsOnlyItsGlass(t *testing.T) {
	tr := straightTrack(100)
	r := NewRenderer(testWidth, testHeight)
	rec := NewRecorder()

	r.RenderRear(Camera{Z: 5000, Y: 1500}, tr, 20, leftMirror, rec)
	leftOps := len(rec.Ops())
	r.RenderRear(Camera{Z: 5000, Y: 1500}, tr, 20, rightMirror, rec)

	ops := rec.Ops()
	require.Greater(t, leftOps, 1)
	require.Greater(t, len(ops), leftOps)

	wantClear := func(vp projection.Rect) Op {
		return Op{Kind: OpClear, Color: SkyColor, Clip: vp, Clipped: true}
	}
	if diff := cmp.Diff(wantClear(leftMirror), ops[0]); diff != "" {
		t.Errorf("left clear mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantClear(rightMirror), ops[leftOps]); diff != "" {
		t.Errorf("right clear mismatch (-want +got):\n%s", diff)
	}

	for i, op := range ops {
		want := leftMirror
		if i >= leftOps {
			want = rightMirror
		}
		assert.True(t, op.Clipped, "op %d", i)
		assert.Equal(t, want, op.Clip, "op %d", i)
	}
}

func TestRenderRearWalksBackwards(t *testing.T) {
	frame := NewRenderer(testWidth, testHeight).RenderRear(Camera{Z: 5000, Y: 1500}, straightTrack(100), 20, leftMirror, NewRecorder())

	require.NotEmpty(t, frame.Segments)
	for i, s := range frame.Segments {
		assert.Less(t, s.Ordinal, 25)
		assert.Greater(t, s.NearY, s.FarY)
		if i > 0 {
			assert.Less(t, s.Ordinal, frame.Segments[i-1].Ordinal)
		}
	}
	assertFarEdgesClimb(t, frame)
}

func TestRenderRearWrapsBehindTheStartLine(t *testing.T) {
	frame := NewRenderer(testWidth, testHeight).RenderRear(Camera{Z: 300, Y: 1500}, straightTrack(100), 20, leftMirror, NewRecorder())

	require.NotEmpty(t, frame.Segments)
	for _, s := range frame.Segments {
		assert.Negative(t, s.Ordinal)
		assert.Equal(t, s.Ordinal+100, s.Index)
	}
	assert.Equal(t, 97, frame.Segments[0].Index)
}

func TestRenderRearMirrorsSprites(t *testing.T) {
	tr := straightTrack(100)
	tr.AttachSprite(20, track.KindMoving, track.SameDirectionSpeed, 0.5)
	tr.AttachSprite(30, track.KindStatic, 0, 0.5) // Ahead, never in the mirror

	rec := NewRecorder()
	frame := NewRenderer(testWidth, testHeight).RenderRear(Camera{Z: 5000, Y: 1500}, tr, 10, leftMirror, rec)

	assert.Equal(t, 1, frame.SpritesCollected)
	assert.Equal(t, 1, frame.SpritesDrawn)

	rects := rec.Filter(OpRect)
	require.Len(t, rects, 1)
	assert.Equal(t, MovingColor, rects[0].Color)

	// Traffic behind on the right shows on the right of the glass
	centre := (rects[0].Points[0].X + rects[0].Points[1].X) / 2
	assert.Greater(t, centre, leftMirror.CenterX())
}

func TestRenderRearOcclusionIsMonotonic(t *testing.T) {
	r := NewRenderer(testWidth, testHeight)

	for seed := int64(1); seed <= 3; seed++ {
		tr := track.Generate(rand.New(rand.NewSource(seed)), track.DefaultSections)
		for _, z := range []float64{0, 777, 15000, tr.TotalLength - 1} {
			cam := Camera{Z: z, Y: 1500 + tr.ResolveSegment(z).P1.Y}
			frame := r.RenderRear(cam, tr, 100, rightMirror, NewRecorder())
			assertFarEdgesClimb(t, frame)
			for _, s := range frame.Segments {
				assert.False(t, s.NearY < rightMirror.Y && s.FarY < rightMirror.Y)
			}
		}
	}
}

func TestRenderRearEmptyTrack(t *testing.T) {
	rec := NewRecorder()
	frame := NewRenderer(testWidth, testHeight).RenderRear(Camera{Z: 10, Y: 1500}, track.New(), 100, leftMirror, rec)

	assert.Empty(t, frame.Segments)
	require.Len(t, rec.Ops(), 1)
	assert.Equal(t, OpClear, rec.Ops()[0].Kind)
}

func TestRenderRearFoldsLapsOntoOneTrack(t *testing.T) {
	tr := straightTrack(100)
	r := NewRenderer(testWidth, testHeight)

	want := r.RenderRear(Camera{Z: 5000, Y: 1500}, tr, 20, leftMirror, NewRecorder())
	got := r.RenderRear(Camera{Z: 3*tr.TotalLength + 5000, Y: 1500}, tr, 20, leftMirror, NewRecorder())
	require.NotEmpty(t, want.Segments)
	assert.Empty(t, cmp.Diff(want, got))

	for _, z := range []float64{1e300, -1e300} {
		frame := r.RenderRear(Camera{Z: z, Y: 1500}, tr, 20, leftMirror, NewRecorder())
		require.NotEmpty(t, frame.Segments, "z %v", z)
		for _, s := range frame.Segments {
			assert.Greater(t, s.Ordinal, -20)
			assert.Less(t, s.Ordinal, 100)
		}
	}
}
