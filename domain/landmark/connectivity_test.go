package landmark

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultModel(t *testing.T, n int) *Model {
	t.Helper()
	s, err := LoadScheme("")
	require.NoError(t, err)
	return NewModel(s, n)
}

func TestModel_GroupOf(t *testing.T) {
	m := defaultModel(t, 68)
	cases := []struct {
		index int
		want  string
		ok    bool
	}{
		{0, "contour", true},
		{16, "contour", true},
		{17, "left-brow", true},
		{26, "right-brow", true},
		{27, "nose", true},
		{36, "left-eye", true},
		{47, "right-eye", true},
		{48, "mouth", true},
		{68, "mouth", true},
		{69, "", false},
		{-1, "", false},
	}
	for _, tc := range cases {
		g, ok := m.GroupOf(tc.index)
		assert.Equal(t, tc.ok, ok, "index %d", tc.index)
		assert.Equal(t, tc.want, g.Name, "index %d", tc.index)
	}
}

func TestModel_ComponentCoversGroupAndIsSymmetric(t *testing.T) {
	m := defaultModel(t, 68)
	for i := 0; i < m.N(); i++ {
		cc := m.ConnectedComponent(i)
		require.Contains(t, cc, i)
		g, ok := m.GroupOf(i)
		require.True(t, ok)
		for j := g.Start; j < min(g.End, m.N()); j++ {
			assert.Contains(t, cc, j, "component of %d misses group member %d", i, j)
		}
		for _, j := range cc {
			assert.Contains(t, m.ConnectedComponent(j), i, "component of %d contains %d but not vice versa", i, j)
		}
	}
}

func TestModel_EyeComponentIsExactlyTheEye(t *testing.T) {
	m := defaultModel(t, 68)
	assert.Equal(t, []int{36, 37, 38, 39, 40, 41}, m.ConnectedComponent(38))
	assert.Equal(t, []int{42, 43, 44, 45, 46, 47}, m.ConnectedComponent(42))
}

func TestModel_LoopEdgeMergesGroups(t *testing.T) {
	s := Scheme{
		Groups: []Group{{Name: "a", Start: 0, End: 3}, {Name: "b", Start: 3, End: 5}, {Name: "c", Start: 5, End: 7}},
		Loops:  [][2]int{{1, 4}},
	}
	m := NewModel(s, 7)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, m.ConnectedComponent(0))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, m.ConnectedComponent(3))
	assert.Equal(t, []int{5, 6}, m.ConnectedComponent(6))
}

func TestModel_CyclicLoopsTerminate(t *testing.T) {
	s := Scheme{
		Groups: []Group{{Name: "a", Start: 0, End: 2}, {Name: "b", Start: 2, End: 4}},
		Loops:  [][2]int{{0, 3}, {3, 0}, {1, 2}},
	}
	m := NewModel(s, 4)
	assert.Equal(t, []int{0, 1, 2, 3}, m.ConnectedComponent(2))
}

func TestModel_UngroupedIndex(t *testing.T) {
	m := defaultModel(t, 71)
	assert.Equal(t, []int{69}, m.ConnectedComponent(69))
	assert.Nil(t, m.ConnectedComponent(71))
	assert.Nil(t, m.ConnectedComponent(-1))
}

func TestModel_SequentialEdges(t *testing.T) {
	m := defaultModel(t, 68)
	edges := m.SequentialEdges()
	for _, e := range edges {
		assert.Equal(t, e.A-1, e.B)
		ga, _ := m.GroupOf(e.A)
		gb, _ := m.GroupOf(e.B)
		assert.Equal(t, ga.Name, gb.Name)
	}
	// No edge across a group boundary.
	assert.NotContains(t, edges, Edge{A: 17, B: 16, Kind: EdgeSequential})
	assert.NotContains(t, edges, Edge{A: 36, B: 35, Kind: EdgeSequential})
	// 68 points in 7 groups, one index is the first of each group.
	assert.Len(t, edges, 68-7)
}

func TestModel_LoopEdgesRestrictedToN(t *testing.T) {
	m := defaultModel(t, 48)
	assert.Equal(t, []Edge{{A: 36, B: 41, Kind: EdgeLoop}, {A: 42, B: 47, Kind: EdgeLoop}}, m.LoopEdges())
	assert.Nil(t, m.ConnectedComponent(48))
}

func TestModel_EdgesUniqueKeys(t *testing.T) {
	s := Scheme{Groups: []Group{{Name: "a", Start: 0, End: 3}}, Loops: [][2]int{{1, 0}, {0, 2}}}
	m := NewModel(s, 3)
	keys := make([]EdgeKey, 0)
	for _, e := range m.Edges() {
		require.False(t, slices.Contains(keys, e.Key()), "duplicate %v", e.Key())
		keys = append(keys, e.Key())
	}
	assert.Len(t, keys, 3)
}

func TestModel_Empty(t *testing.T) {
	m := defaultModel(t, 0)
	assert.Empty(t, m.Edges())
	assert.Nil(t, m.ConnectedComponent(0))
}

func TestModel_IsSpecial(t *testing.T) {
	m := defaultModel(t, 68)
	assert.True(t, m.IsSpecial(30))
	assert.False(t, m.IsSpecial(31))
}
