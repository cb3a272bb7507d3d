package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/soocke/landmark-editor/domain/landmark"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// Rasterizer burns a Scene into pixels. The zero value draws 1.5px lines
// without labels.
type Rasterizer struct {
	LineWidth  float64
	ShowLabels bool
	z          vector.Rasterizer
}

// Draw paints segments first, then markers on top, then optional labels.
func (r *Rasterizer) Draw(dst *image.RGBA, s *Scene) {
	lw := r.LineWidth
	if lw <= 0 {
		lw = 1.5
	}
	for _, seg := range s.Segments() {
		r.stroke(dst, seg.From, seg.To, lw, seg.Color)
	}
	for _, m := range s.Markers() {
		radius := m.Size / 2
		if m.Special {
			r.disc(dst, m.Center, radius+1.5, Outline)
		}
		r.disc(dst, m.Center, radius, m.Color)
	}
	if r.ShowLabels {
		r.labels(dst, s)
	}
}

// Compose copies base into a new RGBA image and draws s over it.
func (r *Rasterizer) Compose(base image.Image, s *Scene) *image.RGBA {
	b := base.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), base, b.Min, draw.Src)
	r.Draw(dst, s)
	return dst
}

// fill rasterizes the path built by trace inside box. box is clipped to dst
// and the rasterizer is sized to it, so cost scales with the shape and not the
// canvas.
func (r *Rasterizer) fill(dst *image.RGBA, box image.Rectangle, c color.Color, trace func(z *vector.Rasterizer, ox, oy float32)) {
	box = box.Intersect(dst.Bounds())
	if box.Empty() {
		return
	}
	r.z.Reset(box.Dx(), box.Dy())
	r.z.DrawOp = draw.Over
	trace(&r.z, float32(box.Min.X), float32(box.Min.Y))
	r.z.Draw(dst, box, image.NewUniform(c), image.Point{})
}

func (r *Rasterizer) disc(dst *image.RGBA, c landmark.Point, radius float64, col color.Color) {
	if radius <= 0 {
		return
	}
	box := image.Rect(
		int(math.Floor(c.X-radius)), int(math.Floor(c.Y-radius)),
		int(math.Ceil(c.X+radius))+1, int(math.Ceil(c.Y+radius))+1,
	)
	r.fill(dst, box, col, func(z *vector.Rasterizer, ox, oy float32) {
		cx, cy := float32(c.X)-ox, float32(c.Y)-oy
		rr := float32(radius)
		k := float32(kappa) * rr
		z.MoveTo(cx+rr, cy)
		z.CubeTo(cx+rr, cy+k, cx+k, cy+rr, cx, cy+rr)
		z.CubeTo(cx-k, cy+rr, cx-rr, cy+k, cx-rr, cy)
		z.CubeTo(cx-rr, cy-k, cx-k, cy-rr, cx, cy-rr)
		z.CubeTo(cx+k, cy-rr, cx+rr, cy-k, cx+rr, cy)
		z.ClosePath()
	})
}

func (r *Rasterizer) stroke(dst *image.RGBA, a, b landmark.Point, width float64, col color.Color) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	h := width / 2
	nx, ny := -dy/length*h, dx/length*h
	box := image.Rect(
		int(math.Floor(math.Min(a.X, b.X)-h)), int(math.Floor(math.Min(a.Y, b.Y)-h)),
		int(math.Ceil(math.Max(a.X, b.X)+h))+1, int(math.Ceil(math.Max(a.Y, b.Y)+h))+1,
	)
	r.fill(dst, box, col, func(z *vector.Rasterizer, ox, oy float32) {
		z.MoveTo(float32(a.X+nx)-ox, float32(a.Y+ny)-oy)
		z.LineTo(float32(b.X+nx)-ox, float32(b.Y+ny)-oy)
		z.LineTo(float32(b.X-nx)-ox, float32(b.Y-ny)-oy)
		z.LineTo(float32(a.X-nx)-ox, float32(a.Y-ny)-oy)
		z.ClosePath()
	})
}

func (r *Rasterizer) labels(dst *image.RGBA, s *Scene) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(LabelColor), Face: basicfont.Face7x13}
	for _, m := range s.Markers() {
		off := m.Size/2 + 2
		d.Dot = fixed.P(int(m.Center.X+off), int(m.Center.Y-off))
		d.DrawString(strconv.Itoa(m.Index))
	}
}
