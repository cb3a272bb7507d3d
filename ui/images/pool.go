package images

import (
	"image"
	"sync"
)

// Reusable RGBA pool for the batch renderer. Every worker resamples a
// full-size frame per image; recycling those frames keeps the heap from
// holding one large backing slice per image in flight.
//
// AcquireFrame(rect) returns a frame whose Pix length is exactly
// rect area * 4. Its contents are unspecified. Callers hand it back with
// RecycleFrame once nothing references it. Frames that are never recycled
// are simply collected.

var framePool sync.Pool // stores *image.RGBA

// AcquireFrame returns a reusable RGBA image sized to rect.
func AcquireFrame(rect image.Rectangle) *image.RGBA {
	w, h := rect.Dx(), rect.Dy()
	if w <= 0 || h <= 0 {
		return &image.RGBA{Rect: rect}
	}
	needed := w * h * 4
	var img *image.RGBA
	if v := framePool.Get(); v != nil {
		img = v.(*image.RGBA)
	}
	if img == nil || cap(img.Pix) < needed {
		return &image.RGBA{Pix: make([]byte, needed), Stride: w * 4, Rect: rect}
	}
	img.Stride = w * 4
	img.Rect = rect
	img.Pix = img.Pix[:needed]
	return img
}

// RecycleFrame returns img to the pool. The caller must not touch img
// afterwards.
func RecycleFrame(img *image.RGBA) {
	if img == nil || img.Pix == nil {
		return
	}
	framePool.Put(img)
}
