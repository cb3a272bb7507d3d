package render

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soocke/landmark-editor/domain/landmark"
)

type recordingSurface struct {
	resets   int
	markers  map[int]Marker
	segments map[landmark.EdgeKey]Segment
	moves    []landmark.EdgeKey
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{markers: map[int]Marker{}, segments: map[landmark.EdgeKey]Segment{}}
}

func (r *recordingSurface) Reset() {
	r.resets++
	r.markers = map[int]Marker{}
	r.segments = map[landmark.EdgeKey]Segment{}
}
func (r *recordingSurface) PlaceMarker(m Marker)   { r.markers[m.Index] = m }
func (r *recordingSurface) MoveMarker(m Marker)    { r.markers[m.Index] = m }
func (r *recordingSurface) PlaceSegment(s Segment) { r.segments[s.Key] = s }
func (r *recordingSurface) MoveSegment(s Segment) {
	r.segments[s.Key] = s
	r.moves = append(r.moves, s.Key)
}

func gridPoints(n int) []landmark.Point {
	pts := make([]landmark.Point, n)
	for i := range pts {
		pts[i] = landmark.Point{X: float64(20 + (i%10)*30), Y: float64(20 + (i/10)*30)}
	}
	return pts
}

func buildScene(t *testing.T, n int, surface Surface) (*Scene, *landmark.Store, *landmark.Model) {
	t.Helper()
	scheme, err := landmark.LoadScheme("")
	require.NoError(t, err)
	store := landmark.NewStore()
	store.Load(gridPoints(n))
	model := landmark.NewModel(scheme, n)
	s := NewScene(DefaultStyle(), surface, nil)
	require.NoError(t, s.Rebuild(store, model))
	return s, store, model
}

func TestScene_RebuildCreatesOneVisualPerLandmarkAndEdge(t *testing.T) {
	surf := newRecordingSurface()
	s, _, model := buildScene(t, 68, surf)
	assert.Equal(t, 68, s.Len())
	assert.Len(t, s.Segments(), len(model.Edges()))
	assert.Len(t, surf.markers, 68)
	assert.Len(t, surf.segments, len(model.Edges()))
	assert.Equal(t, 1, surf.resets)
	require.NoError(t, s.Verify())

	m, ok := s.Marker(30)
	require.True(t, ok)
	assert.True(t, m.Special)
	seg, ok := s.Segment(41, 36)
	require.True(t, ok)
	assert.Equal(t, landmark.EdgeLoop, seg.Kind)
	assert.Equal(t, landmark.EdgeKey{Lo: 36, Hi: 41}, seg.Key)
}

func TestScene_RebuildRejectsMismatchedModel(t *testing.T) {
	store := landmark.NewStore()
	store.Load(gridPoints(3))
	model := landmark.NewModel(landmark.Scheme{}, 4)
	assert.Error(t, NewScene(DefaultStyle(), nil, nil).Rebuild(store, model))
}

func TestScene_SyncUpdatesIncidentSegmentsOnly(t *testing.T) {
	surf := newRecordingSurface()
	s, store, _ := buildScene(t, 68, surf)
	require.NoError(t, store.SetPosition(5, landmark.Point{X: 500, Y: 400}))
	require.NoError(t, s.Sync(5))

	assert.ElementsMatch(t, []landmark.EdgeKey{{Lo: 4, Hi: 5}, {Lo: 5, Hi: 6}}, surf.moves)
	seg, _ := s.Segment(4, 5)
	assert.Equal(t, landmark.Point{X: 500, Y: 400}, seg.To)
	seg, _ = s.Segment(5, 6)
	assert.Equal(t, landmark.Point{X: 500, Y: 400}, seg.From)
	assert.Equal(t, landmark.Point{X: 500, Y: 400}, surf.markers[5].Center)
	require.NoError(t, s.Verify())
}

func TestScene_EndpointInvariantUnderRandomMutation(t *testing.T) {
	surf := newRecordingSurface()
	s, store, model := buildScene(t, 68, surf)
	r := rand.New(rand.NewSource(42))
	for step := 0; step < 500; step++ {
		i := r.Intn(store.Len())
		require.NoError(t, store.SetPosition(i, landmark.Point{X: r.Float64() * 800, Y: r.Float64() * 800}))
		require.NoError(t, s.Sync(i))
	}
	require.NoError(t, s.Verify())
	for _, e := range model.Edges() {
		a, _ := store.Get(e.Key().Lo)
		b, _ := store.Get(e.Key().Hi)
		got := surf.segments[e.Key()]
		assert.Equal(t, a.Pos, got.From, "edge %v", e.Key())
		assert.Equal(t, b.Pos, got.To, "edge %v", e.Key())
	}
}

func TestScene_VerifyDetectsStaleSegment(t *testing.T) {
	s, store, _ := buildScene(t, 10, nil)
	require.NoError(t, store.SetPosition(2, landmark.Point{X: 1, Y: 1}))
	assert.Error(t, s.Verify())
	require.NoError(t, s.SyncAll())
	assert.NoError(t, s.Verify())
}

func TestScene_HitTestLowestIndexWins(t *testing.T) {
	store := landmark.NewStore()
	store.Load([]landmark.Point{{X: 100, Y: 100}, {X: 50, Y: 50}, {X: 53, Y: 52}})
	s := NewScene(DefaultStyle(), nil, nil)
	require.NoError(t, s.Rebuild(store, landmark.NewModel(landmark.Scheme{}, 3)))

	idx, ok := s.HitTest(landmark.Point{X: 52, Y: 51})
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	idx, ok = s.HitTest(landmark.Point{X: 105, Y: 95})
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	_, ok = s.HitTest(landmark.Point{X: 106, Y: 100})
	assert.False(t, ok)
}

func TestScene_IndexColorMode(t *testing.T) {
	store := landmark.NewStore()
	store.Load(gridPoints(68))
	scheme, _ := landmark.LoadScheme("")
	s := NewScene(Style{MarkerSize: 10, ColorMode: ColorByIndex}, nil, nil)
	require.NoError(t, s.Rebuild(store, landmark.NewModel(scheme, 68)))
	first, _ := s.Marker(0)
	last, _ := s.Marker(67)
	assert.Equal(t, JetColor(0, 68), first.Color)
	assert.Equal(t, JetColor(67, 68), last.Color)
	assert.NotEqual(t, first.Color, last.Color)
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#1f77b4")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, c)
	c, err = ParseHex("10203040")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, c)
	_, err = ParseHex("#12")
	assert.Error(t, err)
	_, err = ParseHex("#zzzzzz")
	assert.Error(t, err)
}

func TestJetColorEnds(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0, G: 0, B: 128, A: 255}, JetColor(0, 68))
	assert.Equal(t, color.RGBA{R: 128, G: 0, B: 0, A: 255}, JetColor(67, 68))
}

func TestRasterizer_DrawsMarkersAndSegments(t *testing.T) {
	store := landmark.NewStore()
	store.Load([]landmark.Point{{X: 20.5, Y: 50.5}, {X: 80.5, Y: 50.5}})
	model := landmark.NewModel(landmark.Scheme{Groups: []landmark.Group{{Name: "g", Start: 0, End: 2, Color: "#ff0000"}}}, 2)
	s := NewScene(DefaultStyle(), nil, nil)
	require.NoError(t, s.Rebuild(store, model))

	base := image.NewRGBA(image.Rect(0, 0, 100, 100))
	var r Rasterizer
	out := r.Compose(base, s)

	red := color.RGBA{R: 0xff, A: 0xff}
	assert.Equal(t, red, out.RGBAAt(20, 50), "marker centre")
	assert.Equal(t, red, out.RGBAAt(50, 50), "segment midpoint")
	assert.Equal(t, color.RGBA{}, out.RGBAAt(50, 10), "background untouched")
	assert.Equal(t, color.RGBA{}, base.RGBAAt(20, 50), "base not modified")
}

func TestRasterizer_ClipsOffCanvasShapes(t *testing.T) {
	store := landmark.NewStore()
	store.Load([]landmark.Point{{X: -50, Y: -50}, {X: 5, Y: 5}})
	model := landmark.NewModel(landmark.Scheme{Groups: []landmark.Group{{Name: "g", Start: 0, End: 2, Color: "#00ff00"}}}, 2)
	s := NewScene(DefaultStyle(), nil, nil)
	require.NoError(t, s.Rebuild(store, model))
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	r := Rasterizer{ShowLabels: true}
	assert.NotPanics(t, func() { r.Draw(dst, s) })
}

func TestScene_SetStyleRecolours(t *testing.T) {
	surf := newRecordingSurface()
	s, _, _ := buildScene(t, 68, surf)
	before, _ := s.Marker(0)
	require.NoError(t, s.SetStyle(Style{MarkerSize: 4, ColorMode: ColorByIndex}))
	after, _ := s.Marker(0)
	assert.NotEqual(t, before.Color, after.Color)
	assert.Equal(t, 4.0, after.Size)
	assert.Equal(t, 2, surf.resets)
	require.NoError(t, s.Verify())
}

func TestNewStyle_Defaults(t *testing.T) {
	assert.Equal(t, DefaultStyle(), NewStyle(0, "bogus"))
	s := NewStyle(6, "index")
	assert.Equal(t, 6.0, s.MarkerSize)
	assert.Equal(t, ColorByIndex, s.ColorMode)
}
