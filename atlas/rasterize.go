package atlas

import (
	"image"

	"github.com/gogpu/fontatlas/face"
)

// Rasterize draws every non-empty glyph into its rectangle of dst.
//
// A positive clip restricts each glyph to a clip.X by clip.Y region anchored
// at the glyph's position, the tile size of a grid layout. Glyphs larger than
// the clip are cropped and their codepoints returned. Nothing is ever written
// outside the glyph's rectangle or the atlas.
func Rasterize(dst *Atlas, f face.Font, glyphs []Glyph, scale float32, clip image.Point) (cropped []rune) {
	img := dst.Alpha()
	for _, g := range glyphs {
		if g.Empty() {
			continue
		}

		r := g.Bounds()
		if clip.X > 0 && clip.Y > 0 && (r.Dx() > clip.X || r.Dy() > clip.Y) {
			r.Max.X = r.Min.X + min(r.Dx(), clip.X)
			r.Max.Y = r.Min.Y + min(r.Dy(), clip.Y)
			cropped = append(cropped, g.Codepoint)
		}
		r = r.Intersect(img.Rect)
		if r.Empty() {
			continue
		}

		sub, ok := img.SubImage(r).(*image.Alpha)
		if !ok {
			continue
		}
		f.Rasterize(sub, f.GlyphIndex(g.Codepoint), scale)
	}
	return cropped
}
