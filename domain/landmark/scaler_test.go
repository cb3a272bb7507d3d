package landmark

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaler_ScenarioEightfold(t *testing.T) {
	s := NewScaler(image.Pt(800, 800), image.Pt(100, 100))
	assert.Equal(t, 8.0, s.Factor())
	got := s.AllToDisplay([]Point{{10, 20}, {30, 40}, {50, 60}})
	assert.Equal(t, []Point{{80, 160}, {240, 320}, {400, 480}}, got)
	assert.Equal(t, image.Pt(800, 800), s.DisplaySize())
}

func TestScaler_FitsLongerSide(t *testing.T) {
	s := NewScaler(image.Pt(800, 800), image.Pt(1600, 400))
	assert.Equal(t, 0.5, s.Factor())
	assert.Equal(t, image.Pt(800, 200), s.DisplaySize())
}

func TestScaler_InverseRoundTrip(t *testing.T) {
	s := NewScaler(image.Pt(800, 800), image.Pt(1234, 987))
	p := Point{X: 321.123, Y: 77.5}
	assert.True(t, s.ToOriginal(s.ToDisplay(p)).Near(p, 1e-9))
}

func TestScaler_Degenerate(t *testing.T) {
	for _, native := range []image.Point{{0, 0}, {-5, 10}, {10, 0}} {
		s := NewScaler(image.Pt(800, 800), native)
		assert.Equal(t, 1.0, s.Factor(), "native %v", native)
	}
	var zero Scaler
	assert.Equal(t, Point{3, 4}, zero.ToDisplay(Point{3, 4}))
	assert.Equal(t, 1.0, Identity(image.Pt(10, 10)).Factor())
}
