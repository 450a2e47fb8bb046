package face

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// maxLoadPPEM bounds the ppem outlines are loaded at.
const maxLoadPPEM = 2048

// ximageParser implements Parser using golang.org/x/image/font/sfnt.
type ximageParser struct{}

// Parse implements Parser.Parse.
func (ximageParser) Parse(data []byte) (Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("face: failed to parse font: %w", err)
	}

	upem := int(f.UnitsPerEm())
	if upem <= 0 {
		return nil, fmt.Errorf("face: invalid units per em %d", upem)
	}

	// Outlines load at ppem == upem, so 26.6 values are font units times 64.
	// Large upem values are loaded at a smaller ppem and rescaled by k.
	ref := min(upem, maxLoadPPEM)
	xf := &ximageFont{
		font: f,
		upem: upem,
		ppem: fixed.I(ref),
		k:    float32(upem) / float32(ref) / 64,
	}

	var buf sfnt.Buffer
	m, err := f.Metrics(&buf, xf.ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("face: failed to read metrics: %w", err)
	}
	xf.ascent = round(xf.units(m.Ascent))
	xf.descent = -round(xf.units(m.Descent))
	xf.lineGap = round(xf.units(m.Height - m.Ascent - m.Descent))

	b, err := f.Bounds(&buf, xf.ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("face: failed to read bounds: %w", err)
	}
	// sfnt bounds are Y down.
	xf.bounds = [4]int{
		round(xf.units(b.Min.X)), -round(xf.units(b.Max.Y)),
		round(xf.units(b.Max.X)), -round(xf.units(b.Min.Y)),
	}

	return xf, nil
}

// ximageFont implements Font using sfnt.Font.
type ximageFont struct {
	font *sfnt.Font
	upem int
	ppem fixed.Int26_6
	k    float32 // font units per 26.6 unit at ppem

	ascent, descent, lineGap int
	bounds                   [4]int
}

// Name returns the font family name, or "" if the font has none.
func (f *ximageFont) Name() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// UnitsPerEm implements Font.UnitsPerEm.
func (f *ximageFont) UnitsPerEm() int {
	return f.upem
}

// GlyphIndex implements Font.GlyphIndex.
func (f *ximageFont) GlyphIndex(r rune) GlyphIndex {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	return GlyphIndex(idx)
}

// segments loads the outline of g in font units (Y down).
func (f *ximageFont) segments(g GlyphIndex) sfnt.Segments {
	var buf sfnt.Buffer
	segs, err := f.font.LoadGlyph(&buf, sfnt.GlyphIndex(g), f.ppem, nil)
	if err != nil {
		return nil
	}
	return segs
}

// BitmapBox implements Font.BitmapBox.
func (f *ximageFont) BitmapBox(g GlyphIndex, scale float32) image.Rectangle {
	segs := f.segments(g)
	if len(segs) == 0 {
		return image.Rectangle{}
	}
	return f.box(segs, scale)
}

// HMetrics implements Font.HMetrics.
func (f *ximageFont) HMetrics(g GlyphIndex) (advance, leftBearing int) {
	var buf sfnt.Buffer
	adv, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(g), f.ppem, font.HintingNone)
	if err != nil {
		return 0, 0
	}
	if segs := f.segments(g); len(segs) > 0 {
		leftBearing = round(f.units(segs.Bounds().Min.X))
	}
	return round(f.units(adv)), leftBearing
}

// VMetrics implements Font.VMetrics.
func (f *ximageFont) VMetrics() (ascent, descent, lineGap int) {
	return f.ascent, f.descent, f.lineGap
}

// Bounds implements Font.Bounds.
func (f *ximageFont) Bounds() [4]int {
	return f.bounds
}

// Rasterize implements Font.Rasterize.
func (f *ximageFont) Rasterize(dst *image.Alpha, g GlyphIndex, scale float32) {
	segs := f.segments(g)
	if len(segs) == 0 {
		return
	}
	fillOutline(dst, f.box(segs, scale), scale, func(p *pen) {
		for _, s := range segs {
			a := s.Args
			switch s.Op {
			case sfnt.SegmentOpMoveTo:
				p.moveTo(f.units(a[0].X), f.units(a[0].Y))
			case sfnt.SegmentOpLineTo:
				p.lineTo(f.units(a[0].X), f.units(a[0].Y))
			case sfnt.SegmentOpQuadTo:
				p.quadTo(f.units(a[0].X), f.units(a[0].Y), f.units(a[1].X), f.units(a[1].Y))
			case sfnt.SegmentOpCubeTo:
				p.cubeTo(f.units(a[0].X), f.units(a[0].Y), f.units(a[1].X), f.units(a[1].Y), f.units(a[2].X), f.units(a[2].Y))
			}
		}
	})
}

// units converts a 26.6 value loaded at f.ppem to font units.
func (f *ximageFont) units(x fixed.Int26_6) float32 {
	return float32(x) * f.k
}

// box returns the pixel box of an outline loaded at f.ppem.
func (f *ximageFont) box(segs sfnt.Segments, scale float32) image.Rectangle {
	b := segs.Bounds()
	return pixelBox(f.units(b.Min.X), f.units(b.Min.Y), f.units(b.Max.X), f.units(b.Max.Y), scale)
}
