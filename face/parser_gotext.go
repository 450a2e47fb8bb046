package face

import (
	"bytes"
	"fmt"
	"image"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
)

// gotextParser implements Parser using github.com/go-text/typesetting.
type gotextParser struct{}

// Parse implements Parser.Parse.
func (gotextParser) Parse(data []byte) (Font, error) {
	ld, err := ot.NewLoader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("face: failed to parse font: %w", err)
	}
	ft, err := font.NewFont(ld)
	if err != nil {
		return nil, fmt.Errorf("face: failed to parse font: %w", err)
	}
	head, _, err := font.LoadHeadTable(ld, nil)
	if err != nil {
		return nil, fmt.Errorf("face: failed to read head table: %w", err)
	}

	gf := &gotextFont{
		face: font.NewFace(ft),
		upem: int(ft.Upem()),
		bounds: [4]int{
			int(head.XMin), int(head.YMin), int(head.XMax), int(head.YMax),
		},
	}
	if ext, ok := gf.face.FontHExtents(); ok {
		gf.ascent = round(ext.Ascender)
		gf.descent = round(ext.Descender)
		gf.lineGap = round(ext.LineGap)
	}
	return gf, nil
}

// gotextFont implements Font using font.Face.
type gotextFont struct {
	face *font.Face
	upem int

	ascent, descent, lineGap int
	bounds                   [4]int
}

// UnitsPerEm implements Font.UnitsPerEm.
func (f *gotextFont) UnitsPerEm() int {
	return f.upem
}

// GlyphIndex implements Font.GlyphIndex.
func (f *gotextFont) GlyphIndex(r rune) GlyphIndex {
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0
	}
	return GlyphIndex(gid)
}

// BitmapBox implements Font.BitmapBox.
func (f *gotextFont) BitmapBox(g GlyphIndex, scale float32) image.Rectangle {
	ext, ok := f.face.GlyphExtents(font.GID(g))
	if !ok || ext.Width == 0 || ext.Height == 0 {
		return image.Rectangle{}
	}
	// Extents are Y up with a negative height; flip to Y down.
	return pixelBox(ext.XBearing, -ext.YBearing, ext.XBearing+ext.Width, -(ext.YBearing + ext.Height), scale)
}

// HMetrics implements Font.HMetrics.
func (f *gotextFont) HMetrics(g GlyphIndex) (advance, leftBearing int) {
	advance = round(f.face.HorizontalAdvance(font.GID(g)))
	if ext, ok := f.face.GlyphExtents(font.GID(g)); ok {
		leftBearing = round(ext.XBearing)
	}
	return advance, leftBearing
}

// VMetrics implements Font.VMetrics.
func (f *gotextFont) VMetrics() (ascent, descent, lineGap int) {
	return f.ascent, f.descent, f.lineGap
}

// Bounds implements Font.Bounds.
func (f *gotextFont) Bounds() [4]int {
	return f.bounds
}

// Rasterize implements Font.Rasterize.
func (f *gotextFont) Rasterize(dst *image.Alpha, g GlyphIndex, scale float32) {
	if g > 0xFFFF {
		return
	}
	outline, ok := f.face.GlyphDataOutline(uint16(g))
	if !ok || len(outline.Segments) == 0 {
		return
	}
	box := f.BitmapBox(g, scale)

	fillOutline(dst, box, scale, func(p *pen) {
		for _, s := range outline.Segments {
			a := s.Args
			// Outline points are Y up.
			switch s.Op {
			case ot.SegmentOpMoveTo:
				p.moveTo(a[0].X, -a[0].Y)
			case ot.SegmentOpLineTo:
				p.lineTo(a[0].X, -a[0].Y)
			case ot.SegmentOpQuadTo:
				p.quadTo(a[0].X, -a[0].Y, a[1].X, -a[1].Y)
			case ot.SegmentOpCubeTo:
				p.cubeTo(a[0].X, -a[0].Y, a[1].X, -a[1].Y, a[2].X, -a[2].Y)
			}
		}
	})
}

func round(v float32) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
