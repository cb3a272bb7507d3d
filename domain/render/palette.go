package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/soocke/landmark-editor/domain/landmark"
)

// ColorMode selects how markers are coloured.
type ColorMode int

const (
	ColorByGroup ColorMode = iota
	ColorByIndex
)

// ParseColorMode accepts "group" or "index".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "group":
		return ColorByGroup, nil
	case "index":
		return ColorByIndex, nil
	default:
		return ColorByGroup, fmt.Errorf("unknown color mode %q", s)
	}
}

func (m ColorMode) String() string {
	if m == ColorByIndex {
		return "index"
	}
	return "group"
}

var (
	// Ungrouped marks points outside every group.
	Ungrouped = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	// Outline rings special markers.
	Outline = color.RGBA{A: 0xff}
	// LabelColor draws index labels.
	LabelColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// ParseHex decodes "#rrggbb" or "#rrggbbaa".
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// GroupColor returns the colour of the group containing index.
func GroupColor(m *landmark.Model, index int) color.RGBA {
	g, ok := m.GroupOf(index)
	if !ok {
		return Ungrouped
	}
	c, err := ParseHex(g.Color)
	if err != nil {
		return Ungrouped
	}
	return c
}

// JetColor samples the jet colormap at i of n evenly spaced stops.
func JetColor(i, n int) color.RGBA {
	x := 0.0
	if n > 1 {
		x = float64(i) / float64(n-1)
	}
	ch := func(offset float64) uint8 {
		v := 1.5 - math.Abs(4*x-offset)
		return uint8(math.Round(255 * math.Max(0, math.Min(1, v))))
	}
	return color.RGBA{R: ch(3), G: ch(2), B: ch(1), A: 0xff}
}
