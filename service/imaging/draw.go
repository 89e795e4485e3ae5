package imaging

import (
	"image"
	"image/color"
	"image/draw"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	colorWhite = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorRed   = color.RGBA{R: 0xff, A: 0xff}
	colorBlack = color.RGBA{A: 0xff}

	textFont = &proggy.TinySZ8pt7b
)

// drawRectangle strokes the outline of the rectangle spanning min..max
// (both inclusive) with a pen of the given thickness centered on the outline.
func drawRectangle(img draw.Image, min, max image.Point, thickness int, c color.Color) {
	if thickness < 1 {
		thickness = 1
	}
	lo := thickness / 2
	outer := image.Rect(min.X-lo, min.Y-lo, max.X-lo+thickness, max.Y-lo+thickness)
	inner := image.Rect(min.X-lo+thickness, min.Y-lo+thickness, max.X-lo, max.Y-lo)
	if inner.Empty() {
		fill(img, outer, c)
		return
	}

	fill(img, image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, inner.Min.Y), c)
	fill(img, image.Rect(outer.Min.X, inner.Max.Y, outer.Max.X, outer.Max.Y), c)
	fill(img, image.Rect(outer.Min.X, inner.Min.Y, inner.Min.X, inner.Max.Y), c)
	fill(img, image.Rect(inner.Max.X, inner.Min.Y, outer.Max.X, inner.Max.Y), c)
}

func fill(img draw.Image, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// canvasDisplay lets tinyfont draw into an image, magnifying every font
// pixel into a scale×scale block. off is the part of the text origin that
// does not fall on the scale grid.
type canvasDisplay struct {
	img   draw.Image
	scale int
	off   image.Point
}

var _ drivers.Displayer = (*canvasDisplay)(nil)

func (d *canvasDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx() / d.scale), int16(b.Dy() / d.scale)
}

func (d *canvasDisplay) SetPixel(x, y int16, c color.RGBA) {
	px, py := int(x)*d.scale+d.off.X, int(y)*d.scale+d.off.Y
	fill(d.img, image.Rect(px, py, px+d.scale, py+d.scale), c)
}

func (d *canvasDisplay) Display() error {
	return nil
}

// drawText writes s with its baseline starting at origin.
func drawText(img draw.Image, origin image.Point, scale int, s string, c color.RGBA) {
	if scale < 1 {
		scale = 1
	}
	grid := image.Pt(origin.X/scale, origin.Y/scale)
	d := &canvasDisplay{img: img, scale: scale, off: origin.Sub(grid.Mul(scale))}
	tinyfont.WriteLine(d, textFont, int16(grid.X), int16(grid.Y), s, c)
}
