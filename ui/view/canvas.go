package view

import (
	"image"
	"image/draw"

	"github.com/soocke/landmark-editor/ui/images"
	"github.com/soocke/landmark-editor/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Canvas shows the composed editor frame. Pointer coordinates reported by
// its bindings are in display space because the image is anchored at the
// label's top-left corner with no border.
type Canvas interface {
	Show(img image.Image)
	Clear()
	Widget() *LabelWidget
}

type canvas struct {
	label     *LabelWidget
	size      image.Point
	prevPhoto *Img // last Tk photo image, deleted on replacement
}

// NewCanvas creates the image label sized to bound and grids it at row.
func NewCanvas(row int, bound image.Point) Canvas {
	c := &canvas{size: bound}
	c.prevPhoto = NewPhoto(Data(images.EncodePNG(c.placeholder())))
	c.label = Label(Image(c.prevPhoto), Borderwidth(0), Anchor("nw"), Background(theme.ColorCanvas))
	Grid(c.label, Row(row), Column(0), Columnspan(4), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	return c
}

func (c *canvas) placeholder() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(c.size.X, 1), max(c.size.Y, 1)))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)
	return img
}

func (c *canvas) Widget() *LabelWidget { return c.label }

func (c *canvas) Show(img image.Image) {
	if c.label == nil || img == nil {
		return
	}
	c.replace(NewPhoto(Data(images.EncodePNG(img))))
}

func (c *canvas) Clear() {
	if c.label == nil {
		return
	}
	c.replace(NewPhoto(Data(images.EncodePNG(c.placeholder()))))
}

// replace installs photo and frees the previous one so obsolete pixel
// buffers do not pile up in the Tk interpreter.
func (c *canvas) replace(photo *Img) {
	if c.prevPhoto != nil {
		c.prevPhoto.Delete()
	}
	c.prevPhoto = photo
	c.label.Configure(Image(photo))
}
