package model

import (
	"image"
	"testing"
)

func TestParseGeometry(t *testing.T) {
	cases := []struct {
		in   string
		want image.Rectangle
		ok   bool
	}{
		{"900x700+10+20", image.Rect(10, 20, 910, 720), true},
		{" 800x600+-5+0 ", image.Rect(-5, 0, 795, 600), true},
		{"0x600+0+0", image.Rectangle{}, false},
		{"800x600", image.Rectangle{}, false},
		{"", image.Rectangle{}, false},
	}
	for _, c := range cases {
		got, ok := ParseGeometry(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("ParseGeometry(%q) = %v,%v want %v,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestFormatGeometry_RoundTrip(t *testing.T) {
	r := image.Rect(3, 4, 803, 604)
	got, ok := ParseGeometry(FormatGeometry(r))
	if !ok || got != r {
		t.Fatalf("round trip %v -> %v", r, got)
	}
}
