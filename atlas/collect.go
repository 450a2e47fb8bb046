package atlas

import (
	"github.com/gogpu/fontatlas/face"
)

// Collection is the result of measuring every glyph of the atlas.
type Collection struct {
	// Glyphs holds one record per codepoint in ascending order, with X and Y
	// still zero.
	Glyphs []Glyph

	// MaxHeight is the tallest glyph bitmap in pixels.
	MaxHeight int

	// Missing lists codepoints the font has no glyph for. They still get a
	// record built from the missing glyph.
	Missing []rune
}

// Collect measures every codepoint from FirstCodepoint to LastCodepoint at
// the given scale. A codepoint without a glyph is measured with glyph 0 and
// is never an error.
func Collect(f face.Font, scale float32) Collection {
	c := Collection{Glyphs: make([]Glyph, 0, NumGlyphs)}

	for r := FirstCodepoint; r <= LastCodepoint; r++ {
		idx := f.GlyphIndex(r)
		if idx == 0 {
			c.Missing = append(c.Missing, r)
		}

		box := f.BitmapBox(idx, scale)
		advance, _ := f.HMetrics(idx)

		g := Glyph{
			Codepoint: r,
			Width:     uint32(box.Dx()),  //nolint:gosec // Dx of a canonical rectangle is non-negative
			Height:    uint32(box.Dy()),  //nolint:gosec // Dy of a canonical rectangle is non-negative
			Left:      int32(box.Min.X),  //nolint:gosec // pixel bearings fit in int32
			Top:       int32(-box.Min.Y), //nolint:gosec // pixel bearings fit in int32
			Advance:   scaledAdvance(advance, scale),
		}
		c.Glyphs = append(c.Glyphs, g)

		c.MaxHeight = max(c.MaxHeight, box.Dy())
	}

	return c
}

// scaledAdvance converts a font-unit advance to pixels, truncating toward
// zero. Negative advances clamp to zero.
func scaledAdvance(advance int, scale float32) uint32 {
	px := float32(advance) * scale
	if px <= 0 {
		return 0
	}
	return uint32(px)
}
