package landmark

import "io"

// Store is the ordered collection of landmarks for one loaded image. It is
// the single source of truth for positions; renderers and controllers refer
// to entries by index only.
//
// Store is not safe for concurrent use. The editor mutates it from the UI
// event loop only.
type Store struct {
	points []Point
}

// NewStore returns an empty store.
func NewStore() *Store { return &Store{} }

// Load replaces every landmark. Index i takes points[i].
func (s *Store) Load(points []Point) {
	s.points = append(make([]Point, 0, len(points)), points...)
}

// LoadText parses the landmark text format from r and loads it. On a
// *FormatError the store keeps its previous contents.
func (s *Store) LoadText(r io.Reader) error {
	pts, err := ParseText(r)
	if err != nil {
		return err
	}
	s.Load(pts)
	return nil
}

// Len returns the number of landmarks.
func (s *Store) Len() int { return len(s.points) }

// Get returns the landmark at index.
func (s *Store) Get(index int) (Landmark, error) {
	if index < 0 || index >= len(s.points) {
		return Landmark{}, &IndexError{Index: index, Len: len(s.points)}
	}
	return Landmark{Index: index, Pos: s.points[index]}, nil
}

// SetPosition moves one landmark. It never changes Len or ordering.
func (s *Store) SetPosition(index int, p Point) error {
	if index < 0 || index >= len(s.points) {
		return &IndexError{Index: index, Len: len(s.points)}
	}
	s.points[index] = p
	return nil
}

// All returns a copy of every landmark in index order.
func (s *Store) All() []Landmark {
	out := make([]Landmark, len(s.points))
	for i, p := range s.points {
		out[i] = Landmark{Index: i, Pos: p}
	}
	return out
}

// Points returns a copy of the positions in index order.
func (s *Store) Points() []Point {
	return append([]Point(nil), s.points...)
}
