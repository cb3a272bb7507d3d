package images

import (
	"bytes"
	"image"
	"image/png"

	xdraw "golang.org/x/image/draw"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// ScaleTo resamples src to exactly size. Downscaling uses Catmull-Rom,
// upscaling bilinear. A src already of that size is copied unchanged.
func ScaleTo(src image.Image, size image.Point) *image.RGBA {
	if src == nil {
		return nil
	}
	if size.X < 1 {
		size.X = 1
	}
	if size.Y < 1 {
		size.Y = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	ScaleInto(dst, src)
	return dst
}

// ScaleInto resamples src over all of dst, overwriting every pixel.
func ScaleInto(dst *image.RGBA, src image.Image) {
	if dst == nil || src == nil || dst.Rect.Empty() {
		return
	}
	b := src.Bounds()
	size := dst.Rect.Size()
	switch {
	case b.Size() == size:
		xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
	case size.X < b.Dx() || size.Y < b.Dy():
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	default:
		xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	}
}
