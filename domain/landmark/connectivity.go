package landmark

import (
	"slices"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Model derives connectivity for a store of n landmarks from a Scheme. It is
// immutable once built and must be rebuilt whenever n changes.
type Model struct {
	scheme     Scheme
	n          int
	sequential []Edge
	loops      []Edge
	special    map[int]bool
	// component[i] is the ascending member list of i's connected component.
	component [][]int
}

// NewModel binds scheme to n landmarks.
func NewModel(scheme Scheme, n int) *Model {
	if n < 0 {
		n = 0
	}
	m := &Model{scheme: scheme, n: n, special: make(map[int]bool, len(scheme.Special))}
	for _, idx := range scheme.Special {
		m.special[idx] = true
	}
	for i := 1; i < n; i++ {
		if g, ok := m.GroupOf(i); ok && g.Contains(i-1) {
			m.sequential = append(m.sequential, Edge{A: i, B: i - 1, Kind: EdgeSequential})
		}
	}
	for _, l := range scheme.Loops {
		if l[0] < n && l[1] < n {
			m.loops = append(m.loops, Edge{A: l[0], B: l[1], Kind: EdgeLoop})
		}
	}
	m.buildComponents()
	return m
}

// buildComponents computes index components over sequential plus loop edges.
// Sequential edges chain every group internally, so a component is exactly
// the union of groups transitively linked through loop edges.
func (m *Model) buildComponents() {
	g := simple.NewUndirectedGraph()
	for i := 0; i < m.n; i++ {
		g.AddNode(simple.Node(i))
	}
	for _, e := range m.Edges() {
		g.SetEdge(simple.Edge{F: simple.Node(e.A), T: simple.Node(e.B)})
	}
	m.component = make([][]int, m.n)
	for _, cc := range topo.ConnectedComponents(g) {
		members := make([]int, 0, len(cc))
		for _, node := range cc {
			members = append(members, int(node.ID()))
		}
		slices.Sort(members)
		for _, idx := range members {
			m.component[idx] = members
		}
	}
}

// N returns the landmark count the model was built for.
func (m *Model) N() int { return m.n }

// Scheme returns the underlying scheme.
func (m *Model) Scheme() Scheme { return m.scheme }

// GroupOf returns the first group whose range contains index.
func (m *Model) GroupOf(index int) (Group, bool) {
	for _, g := range m.scheme.Groups {
		if g.Contains(index) {
			return g, true
		}
	}
	return Group{}, false
}

// ConnectedComponent returns every index that moves together with index in
// a group drag, ascending. It always contains index itself when index is in
// range and returns nil otherwise. The result must not be modified.
func (m *Model) ConnectedComponent(index int) []int {
	if index < 0 || index >= m.n {
		return nil
	}
	return m.component[index]
}

// SequentialEdges returns (i, i-1) for every adjacent pair in one group.
func (m *Model) SequentialEdges() []Edge { return slices.Clone(m.sequential) }

// LoopEdges returns the scheme's closing edges whose endpoints exist.
func (m *Model) LoopEdges() []Edge { return slices.Clone(m.loops) }

// Edges returns sequential then loop edges with duplicate keys removed.
func (m *Model) Edges() []Edge {
	seen := make(map[EdgeKey]bool, len(m.sequential)+len(m.loops))
	out := make([]Edge, 0, len(m.sequential)+len(m.loops))
	for _, set := range [][]Edge{m.sequential, m.loops} {
		for _, e := range set {
			if seen[e.Key()] {
				continue
			}
			seen[e.Key()] = true
			out = append(out, e)
		}
	}
	return out
}

// IsSpecial reports whether index is an anchor point.
func (m *Model) IsSpecial(index int) bool { return m.special[index] }
