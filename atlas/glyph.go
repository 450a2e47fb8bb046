// Package atlas turns packed glyph rectangles into the two baked outputs of a
// font atlas: the grayscale texture and the manifest describing where each
// glyph lives in it.
//
// The glyph set is fixed to printable ASCII, FirstCodepoint through
// LastCodepoint inclusive.
package atlas

import (
	"image"

	"github.com/gogpu/fontatlas/pack"
)

// Codepoint range covered by an atlas.
const (
	FirstCodepoint rune = 32
	LastCodepoint  rune = 126

	// NumGlyphs is the number of glyphs in every manifest.
	NumGlyphs = int(LastCodepoint-FirstCodepoint) + 1
)

// Glyph is the manifest record for a single codepoint.
//
// Width and Height are the glyph's bitmap size in pixels, X and Y its
// top-left position in the atlas. Left and Top are the bearings from the pen
// position on the baseline to the bitmap's top-left corner, with Top
// positive upward. Advance is the horizontal pen advance in whole pixels.
type Glyph struct {
	Codepoint rune   `json:"-" cbor:"-"`
	X         uint32 `json:"x" cbor:"1,keyasint"`
	Y         uint32 `json:"y" cbor:"2,keyasint"`
	Left      int32  `json:"left" cbor:"3,keyasint"`
	Top       int32  `json:"top" cbor:"4,keyasint"`
	Width     uint32 `json:"width" cbor:"5,keyasint"`
	Height    uint32 `json:"height" cbor:"6,keyasint"`
	Advance   uint32 `json:"advance" cbor:"7,keyasint"`
}

// Empty reports whether the glyph has no rasterized area.
func (g Glyph) Empty() bool {
	return g.Width == 0 || g.Height == 0
}

// Bounds returns the glyph's rectangle in atlas pixel coordinates.
func (g Glyph) Bounds() image.Rectangle {
	return image.Rect(int(g.X), int(g.Y), int(g.X+g.Width), int(g.Y+g.Height))
}

// Rects converts glyphs to packer input, preserving order.
func Rects(glyphs []Glyph) []pack.Rect {
	rects := make([]pack.Rect, len(glyphs))
	for i, g := range glyphs {
		rects[i] = pack.Rect{W: int(g.Width), H: int(g.Height)}
	}
	return rects
}

// Place copies packed positions back onto glyphs. rects must be the slice
// returned by Rects after packing.
func Place(glyphs []Glyph, rects []pack.Rect) {
	for i := range glyphs {
		glyphs[i].X = uint32(rects[i].X) //nolint:gosec // packer positions are non-negative
		glyphs[i].Y = uint32(rects[i].Y) //nolint:gosec // packer positions are non-negative
	}
}
