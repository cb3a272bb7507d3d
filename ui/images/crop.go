package images

import (
	"errors"
	"image"
	"image/draw"
)

// Crop copies the part of frame inside r. r is clamped to frame bounds and
// the result is at least 1x1. The returned rectangle is the clamped r.
func Crop(frame image.Image, r image.Rectangle) (*image.RGBA, image.Rectangle, error) {
	if frame == nil {
		return nil, image.Rectangle{}, errors.New("nil frame")
	}
	b := frame.Bounds()
	r = r.Canon().Intersect(b)
	if r.Empty() {
		r = image.Rectangle{Min: b.Min, Max: b.Min.Add(image.Pt(1, 1))}.Intersect(b)
		if r.Empty() {
			return nil, image.Rectangle{}, errors.New("empty frame")
		}
	}
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), frame, r.Min, draw.Src)
	return out, r, nil
}

// Pad grows r by n pixels on every side.
func Pad(r image.Rectangle, n int) image.Rectangle {
	return image.Rect(r.Min.X-n, r.Min.Y-n, r.Max.X+n, r.Max.Y+n)
}
