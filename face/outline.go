package face

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// pen feeds outline segments to a vector.Rasterizer, closing every contour
// before the next one starts.
type pen struct {
	z    *vector.Rasterizer
	open bool

	// Translation applied after scaling.
	scale  float32
	dx, dy float32
}

func newPen(z *vector.Rasterizer, scale float32, origin image.Point) *pen {
	return &pen{
		z:     z,
		scale: scale,
		dx:    -float32(origin.X),
		dy:    -float32(origin.Y),
	}
}

func (p *pen) pt(x, y float32) (float32, float32) {
	return x*p.scale + p.dx, y*p.scale + p.dy
}

func (p *pen) moveTo(x, y float32) {
	if p.open {
		p.z.ClosePath()
	}
	p.z.MoveTo(p.pt(x, y))
	p.open = true
}

func (p *pen) lineTo(x, y float32) {
	p.z.LineTo(p.pt(x, y))
}

func (p *pen) quadTo(bx, by, cx, cy float32) {
	bx, by = p.pt(bx, by)
	cx, cy = p.pt(cx, cy)
	p.z.QuadTo(bx, by, cx, cy)
}

func (p *pen) cubeTo(bx, by, cx, cy, dx, dy float32) {
	bx, by = p.pt(bx, by)
	cx, cy = p.pt(cx, cy)
	dx, dy = p.pt(dx, dy)
	p.z.CubeTo(bx, by, cx, cy, dx, dy)
}

func (p *pen) close() {
	if p.open {
		p.z.ClosePath()
		p.open = false
	}
}

// fillOutline rasterizes an outline whose bitmap box is box into dst.
// The rasterizer always covers the whole box, so a dst smaller than the box
// receives an exact crop of the glyph rather than a squeezed one.
//
// Coverage goes through a scratch mask sized to the box: dst is usually a
// sub-image whose stride is wider than the glyph, which vector.Rasterizer
// does not honor when the draw rectangle equals its own bounds.
func fillOutline(dst *image.Alpha, box image.Rectangle, scale float32, outline func(p *pen)) {
	size := box.Size()
	if size.X <= 0 || size.Y <= 0 {
		return
	}

	r := image.Rectangle{Min: dst.Rect.Min, Max: dst.Rect.Min.Add(size)}.Intersect(dst.Rect)
	if r.Empty() {
		return
	}

	z := vector.NewRasterizer(size.X, size.Y)
	z.DrawOp = draw.Src

	p := newPen(z, scale, box.Min)
	outline(p)
	p.close()

	mask := image.NewAlpha(image.Rectangle{Max: size})
	z.Draw(mask, mask.Rect, image.Opaque, image.Point{})
	draw.Draw(dst, r, mask, image.Point{}, draw.Src)
}

// pixelBox converts a bounding box in font units (Y down) into whole pixels.
func pixelBox(xmin, ymin, xmax, ymax, scale float32) image.Rectangle {
	r := image.Rectangle{
		Min: image.Point{
			X: int(math.Floor(float64(xmin * scale))),
			Y: int(math.Floor(float64(ymin * scale))),
		},
		Max: image.Point{
			X: int(math.Ceil(float64(xmax * scale))),
			Y: int(math.Ceil(float64(ymax * scale))),
		},
	}
	if r.Empty() {
		return image.Rectangle{}
	}
	return r
}
