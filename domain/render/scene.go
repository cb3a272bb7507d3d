package render

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/soocke/landmark-editor/domain/landmark"
)

// Style controls marker geometry and colouring.
type Style struct {
	MarkerSize float64 // full side of the square hit box, in display pixels
	ColorMode  ColorMode
}

// DefaultStyle matches the 10px markers of the desktop editor.
func DefaultStyle() Style { return Style{MarkerSize: 10, ColorMode: ColorByGroup} }

// NewStyle builds a style from config values. A non-positive size keeps
// the default and an unknown mode falls back to group colouring.
func NewStyle(markerSize float64, colorMode string) Style {
	s := DefaultStyle()
	if markerSize > 0 {
		s.MarkerSize = markerSize
	}
	s.ColorMode, _ = ParseColorMode(colorMode)
	return s
}

// Marker is the visual for one landmark.
type Marker struct {
	Index   int
	Center  landmark.Point
	Size    float64
	Color   color.RGBA
	Special bool
}

// Contains reports whether p lies in the marker's half-size box.
func (m Marker) Contains(p landmark.Point) bool {
	h := m.Size / 2
	return p.X >= m.Center.X-h && p.X <= m.Center.X+h && p.Y >= m.Center.Y-h && p.Y <= m.Center.Y+h
}

// Segment is the visual for one edge. From is the position of Key.Lo and To
// the position of Key.Hi.
type Segment struct {
	Key   landmark.EdgeKey
	Kind  landmark.EdgeKind
	From  landmark.Point
	To    landmark.Point
	Color color.RGBA
}

// Surface receives drawing primitives as the scene changes. Implementations
// are toolkit adapters; the scene stays authoritative.
type Surface interface {
	Reset()
	PlaceMarker(Marker)
	MoveMarker(Marker)
	PlaceSegment(Segment)
	MoveSegment(Segment)
}

// Scene is the retained visual state derived from a Store and a Model.
// Markers are addressed by landmark index and segments by EdgeKey, so a move
// never has to match stale coordinates to find what to update.
type Scene struct {
	style   Style
	surface Surface
	logger  *slog.Logger

	store    *landmark.Store
	model    *landmark.Model
	markers  []Marker
	segments map[landmark.EdgeKey]*Segment
	order    []landmark.EdgeKey
	incident map[int][]landmark.EdgeKey
}

// NewScene returns an empty scene. surface and logger may be nil.
func NewScene(style Style, surface Surface, logger *slog.Logger) *Scene {
	if style.MarkerSize <= 0 {
		style.MarkerSize = DefaultStyle().MarkerSize
	}
	return &Scene{style: style, surface: surface, logger: logger}
}

// Style returns the scene's style.
func (s *Scene) Style() Style { return s.style }

// SetStyle changes marker geometry and colouring and rebuilds the visuals
// from the current store.
func (s *Scene) SetStyle(style Style) error {
	if style.MarkerSize <= 0 {
		style.MarkerSize = DefaultStyle().MarkerSize
	}
	s.style = style
	if s.store == nil {
		return nil
	}
	return s.Rebuild(s.store, s.model)
}

// Rebuild recreates every marker and segment. model must be built for
// store.Len() landmarks.
func (s *Scene) Rebuild(store *landmark.Store, model *landmark.Model) error {
	if store == nil || model == nil {
		return fmt.Errorf("render: rebuild needs a store and a model")
	}
	if model.N() != store.Len() {
		return fmt.Errorf("render: model built for %d landmarks, store has %d", model.N(), store.Len())
	}
	s.store, s.model = store, model
	n := store.Len()
	s.markers = make([]Marker, n)
	for _, lm := range store.All() {
		s.markers[lm.Index] = Marker{
			Index:   lm.Index,
			Center:  lm.Pos,
			Size:    s.style.MarkerSize,
			Color:   s.markerColor(lm.Index, n),
			Special: model.IsSpecial(lm.Index),
		}
	}
	edges := model.Edges()
	s.segments = make(map[landmark.EdgeKey]*Segment, len(edges))
	s.order = s.order[:0]
	s.incident = make(map[int][]landmark.EdgeKey, n)
	for _, e := range edges {
		k := e.Key()
		s.segments[k] = &Segment{
			Key:   k,
			Kind:  e.Kind,
			From:  s.markers[k.Lo].Center,
			To:    s.markers[k.Hi].Center,
			Color: GroupColor(model, k.Hi),
		}
		s.order = append(s.order, k)
		s.incident[k.Lo] = append(s.incident[k.Lo], k)
		s.incident[k.Hi] = append(s.incident[k.Hi], k)
	}
	s.replay()
	if s.logger != nil {
		s.logger.Debug("scene rebuilt", "markers", len(s.markers), "segments", len(s.order))
	}
	return nil
}

func (s *Scene) markerColor(index, n int) color.RGBA {
	if s.style.ColorMode == ColorByIndex {
		return JetColor(index, n)
	}
	return GroupColor(s.model, index)
}

func (s *Scene) replay() {
	if s.surface == nil {
		return
	}
	s.surface.Reset()
	for _, k := range s.order {
		s.surface.PlaceSegment(*s.segments[k])
	}
	for _, m := range s.markers {
		s.surface.PlaceMarker(m)
	}
}

// Sync re-reads the position of index from the store and updates its marker
// and every incident segment.
func (s *Scene) Sync(index int) error {
	if s.store == nil {
		return fmt.Errorf("render: scene not built")
	}
	lm, err := s.store.Get(index)
	if err != nil {
		return err
	}
	if index >= len(s.markers) {
		return &landmark.IndexError{Index: index, Len: len(s.markers)}
	}
	m := &s.markers[index]
	m.Center = lm.Pos
	if s.surface != nil {
		s.surface.MoveMarker(*m)
	}
	for _, k := range s.incident[index] {
		seg := s.segments[k]
		if k.Lo == index {
			seg.From = lm.Pos
		}
		if k.Hi == index {
			seg.To = lm.Pos
		}
		if s.surface != nil {
			s.surface.MoveSegment(*seg)
		}
	}
	return nil
}

// SyncAll re-reads every position.
func (s *Scene) SyncAll() error {
	for i := range s.markers {
		if err := s.Sync(i); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of markers.
func (s *Scene) Len() int { return len(s.markers) }

// Marker returns the marker for index.
func (s *Scene) Marker(index int) (Marker, bool) {
	if index < 0 || index >= len(s.markers) {
		return Marker{}, false
	}
	return s.markers[index], true
}

// Markers returns all markers in index order.
func (s *Scene) Markers() []Marker { return append([]Marker(nil), s.markers...) }

// Segment returns the segment for the unordered pair (a, b).
func (s *Scene) Segment(a, b int) (Segment, bool) {
	seg, ok := s.segments[landmark.NewEdgeKey(a, b)]
	if !ok {
		return Segment{}, false
	}
	return *seg, true
}

// Segments returns all segments in edge order.
func (s *Scene) Segments() []Segment {
	out := make([]Segment, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, *s.segments[k])
	}
	return out
}

// Incident returns the keys of segments touching index.
func (s *Scene) Incident(index int) []landmark.EdgeKey {
	return append([]landmark.EdgeKey(nil), s.incident[index]...)
}

// HitTest returns the lowest index whose marker box contains p.
func (s *Scene) HitTest(p landmark.Point) (int, bool) {
	for _, m := range s.markers {
		if m.Contains(p) {
			return m.Index, true
		}
	}
	return -1, false
}

// Verify checks that every marker and segment endpoint equals the current
// store position.
func (s *Scene) Verify() error {
	if s.store == nil {
		return nil
	}
	for _, m := range s.markers {
		lm, err := s.store.Get(m.Index)
		if err != nil {
			return err
		}
		if m.Center != lm.Pos {
			return fmt.Errorf("render: marker %d at %v, store has %v", m.Index, m.Center, lm.Pos)
		}
	}
	for _, k := range s.order {
		seg := s.segments[k]
		lo, _ := s.store.Get(k.Lo)
		hi, _ := s.store.Get(k.Hi)
		if seg.From != lo.Pos || seg.To != hi.Pos {
			return fmt.Errorf("render: segment %v is %v-%v, store has %v-%v", k, seg.From, seg.To, lo.Pos, hi.Pos)
		}
	}
	return nil
}
