package landmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScheme_Default(t *testing.T) {
	s, err := LoadScheme("")
	require.NoError(t, err)
	assert.Equal(t, "ibug68", s.Name)
	assert.Equal(t, 68, s.Points)
	require.Len(t, s.Groups, 7)
	assert.Equal(t, Group{Name: "mouth", Start: 48, End: 69, Color: "#9467bd"}, s.Groups[6])
	assert.Contains(t, s.Loops, [2]int{36, 41})
	assert.IsIncreasing(t, s.Special)
}

func TestLoadScheme_Unknown(t *testing.T) {
	_, err := LoadScheme("nope")
	assert.Error(t, err)
}

func TestParseScheme_Validation(t *testing.T) {
	cases := map[string]string{
		"inverted range": "name: x\ngroups:\n  - {name: a, start: 5, end: 2}\n",
		"negative start": "name: x\ngroups:\n  - {name: a, start: -1, end: 2}\n",
		"self loop":      "name: x\nloops:\n  - [3, 3]\n",
		"bad yaml":       "groups: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseScheme([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestParseScheme_DedupsSpecial(t *testing.T) {
	s, err := ParseScheme([]byte("name: x\nspecial: [5, 1, 5, 3]\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, s.Special)
}
