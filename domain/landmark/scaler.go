package landmark

import (
	"image"
	"math"
)

// Scaler maps between original-image space and display space using one
// uniform factor that fits the native image inside the display bound.
type Scaler struct {
	factor float64
	native image.Point
}

// NewScaler fits native inside bound preserving aspect ratio. Upscaling is
// allowed. Degenerate sizes yield a factor of 1.
func NewScaler(bound, native image.Point) Scaler {
	if native.X <= 0 || native.Y <= 0 || bound.X <= 0 || bound.Y <= 0 {
		return Scaler{factor: 1, native: native}
	}
	f := math.Min(float64(bound.X)/float64(native.X), float64(bound.Y)/float64(native.Y))
	return Scaler{factor: f, native: native}
}

// Identity returns a scaler that leaves coordinates unchanged.
func Identity(native image.Point) Scaler { return Scaler{factor: 1, native: native} }

// Factor returns display pixels per original pixel.
func (s Scaler) Factor() float64 {
	if s.factor == 0 {
		return 1
	}
	return s.factor
}

// DisplaySize returns the native size scaled into display space, rounded to
// whole pixels and never smaller than 1x1.
func (s Scaler) DisplaySize() image.Point {
	w := int(math.Round(float64(s.native.X) * s.Factor()))
	h := int(math.Round(float64(s.native.Y) * s.Factor()))
	return image.Pt(max(w, 1), max(h, 1))
}

// ToDisplay converts an original-space point to display space.
func (s Scaler) ToDisplay(p Point) Point {
	f := s.Factor()
	return Point{X: p.X * f, Y: p.Y * f}
}

// ToOriginal converts a display-space point back to original space.
func (s Scaler) ToOriginal(p Point) Point {
	f := s.Factor()
	return Point{X: p.X / f, Y: p.Y / f}
}

// AllToDisplay converts a slice of points.
func (s Scaler) AllToDisplay(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = s.ToDisplay(p)
	}
	return out
}

// AllToOriginal converts a slice of points.
func (s Scaler) AllToOriginal(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = s.ToOriginal(p)
	}
	return out
}
