package landmark

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/soocke/landmark-editor/assets"
)

// Scheme is a fixed annotation layout: groups as index ranges, explicit loop
// closures, and anchor points that get a distinct marker.
type Scheme struct {
	Name    string
	Points  int // nominal point count; informational only
	Groups  []Group
	Loops   [][2]int
	Special []int
}

type schemeFile struct {
	Name   string `yaml:"name"`
	Points int    `yaml:"points"`
	Groups []struct {
		Name  string `yaml:"name"`
		Start int    `yaml:"start"`
		End   int    `yaml:"end"`
		Color string `yaml:"color"`
	} `yaml:"groups"`
	Loops   [][2]int `yaml:"loops"`
	Special []int    `yaml:"special"`
}

// ParseScheme decodes and validates a YAML scheme definition.
func ParseScheme(data []byte) (Scheme, error) {
	var f schemeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Scheme{}, fmt.Errorf("parse scheme: %w", err)
	}
	s := Scheme{Name: f.Name, Points: f.Points, Loops: f.Loops, Special: slices.Clone(f.Special)}
	for _, g := range f.Groups {
		if g.Start < 0 || g.End <= g.Start {
			return Scheme{}, fmt.Errorf("scheme %s: group %q has invalid range [%d,%d)", f.Name, g.Name, g.Start, g.End)
		}
		s.Groups = append(s.Groups, Group{Name: g.Name, Start: g.Start, End: g.End, Color: g.Color})
	}
	for _, l := range f.Loops {
		if l[0] < 0 || l[1] < 0 || l[0] == l[1] {
			return Scheme{}, fmt.Errorf("scheme %s: invalid loop edge %v", f.Name, l)
		}
	}
	slices.Sort(s.Special)
	s.Special = slices.Compact(s.Special)
	return s, nil
}

// LoadScheme parses the embedded scheme with the given name. An empty name
// selects the default 68-point layout.
func LoadScheme(name string) (Scheme, error) {
	data, err := assets.Scheme(name)
	if err != nil {
		return Scheme{}, err
	}
	return ParseScheme(data)
}
