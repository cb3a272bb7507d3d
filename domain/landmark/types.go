package landmark

import (
	"fmt"
	"math"
)

// Point is a 2D position. Its coordinate space (display or original image)
// depends on who holds it; the Store always holds display space.
type Point struct {
	X, Y float64
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point { return Point{X: p.X + d.X, Y: p.Y + d.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Near reports whether p and q differ by at most eps on both axes.
func (p Point) Near(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

func (p Point) String() string { return fmt.Sprintf("(%.2f,%.2f)", p.X, p.Y) }

// Landmark is one labeled point. Index equals its position in the Store.
type Landmark struct {
	Index int
	Pos   Point
}

// EdgeKind distinguishes derived sequential edges from fixed loop closures.
type EdgeKind int

const (
	EdgeSequential EdgeKind = iota
	EdgeLoop
)

func (k EdgeKind) String() string {
	switch k {
	case EdgeSequential:
		return "sequential"
	case EdgeLoop:
		return "loop"
	default:
		return "unknown"
	}
}

// Edge connects two landmark indices. It carries no positions.
type Edge struct {
	A, B int
	Kind EdgeKind
}

// Key returns the unordered identity of the edge.
func (e Edge) Key() EdgeKey { return NewEdgeKey(e.A, e.B) }

// EdgeKey is an unordered index pair normalized so that Lo <= Hi.
type EdgeKey struct {
	Lo, Hi int
}

// NewEdgeKey normalizes (a, b) into an EdgeKey.
func NewEdgeKey(a, b int) EdgeKey {
	if a > b {
		a, b = b, a
	}
	return EdgeKey{Lo: a, Hi: b}
}

// Has reports whether index is one of the key's endpoints.
func (k EdgeKey) Has(index int) bool { return k.Lo == index || k.Hi == index }

func (k EdgeKey) String() string { return fmt.Sprintf("%d-%d", k.Lo, k.Hi) }

// Group is a contiguous half-open index range [Start, End) naming one
// anatomical region.
type Group struct {
	Name  string
	Start int
	End   int
	Color string
}

// Contains reports whether index falls in the group's range.
func (g Group) Contains(index int) bool { return index >= g.Start && index < g.End }
