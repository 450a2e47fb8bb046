// Package face adapts font parsing libraries to the small set of queries the
// atlas builder needs: glyph lookup, bitmap bounding boxes, horizontal and
// vertical metrics, and rasterization of a glyph into a caller-provided
// region of a larger buffer.
//
// Two backends are registered by default:
//
//   - "ximage" uses golang.org/x/image/font/sfnt (the default)
//   - "gotext" uses github.com/go-text/typesetting/font
//
// Both rasterize outlines with golang.org/x/image/vector.
//
// # Usage
//
//	f, err := face.Parse(face.DefaultParser, data)
//	if err != nil {
//	    return err
//	}
//	scale := face.ScaleForPixelHeight(f, 16)
//	box := f.BitmapBox(f.GlyphIndex('A'), scale)
package face

import (
	"image"
)

// GlyphIndex is a glyph's index within a font. Index 0 is the missing glyph
// (.notdef).
type GlyphIndex uint32

// Font is a parsed font file.
//
// Font units follow the font's own coordinate system (Y up). Pixel results
// follow Go's image coordinates (Y down).
//
// Implementations are not required to be safe for concurrent use.
type Font interface {
	// UnitsPerEm returns the number of font units per em.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 if the font has no glyph for r.
	GlyphIndex(r rune) GlyphIndex

	// BitmapBox returns the pixel bounding box of the glyph scaled by scale,
	// relative to the glyph origin on the baseline. Min is rounded down and
	// Max rounded up to whole pixels. Glyphs without an outline return the
	// zero rectangle.
	BitmapBox(g GlyphIndex, scale float32) image.Rectangle

	// HMetrics returns the advance width and left side bearing in font units.
	HMetrics(g GlyphIndex) (advance, leftBearing int)

	// VMetrics returns ascent (positive), descent (negative) and line gap in
	// font units.
	VMetrics() (ascent, descent, lineGap int)

	// Bounds returns the union of all glyph bounds in font units as
	// xmin, ymin, xmax, ymax (Y up).
	Bounds() [4]int

	// Rasterize draws the glyph's coverage into dst, scaled by scale. The
	// top-left corner of the glyph's BitmapBox maps to dst.Bounds().Min and
	// nothing outside dst.Bounds() is written. Pixels inside dst.Bounds() are
	// overwritten, not blended.
	Rasterize(dst *image.Alpha, g GlyphIndex, scale float32)
}

// FamilyName returns the font family name when the backend exposes one,
// or "" otherwise.
func FamilyName(f Font) string {
	if n, ok := f.(interface{ Name() string }); ok {
		return n.Name()
	}
	return ""
}

// Metrics holds font-wide metrics for a given pixel size.
type Metrics struct {
	// Scale converts font units to pixels.
	Scale float32

	// Ascent, Descent and LineGap in font units. Descent is negative.
	Ascent, Descent, LineGap int

	// Bounds is the font bounding box in font units (xmin, ymin, xmax, ymax).
	Bounds [4]int
}

// LineHeight returns the baseline-to-baseline distance in pixels, truncated
// toward zero.
func (m Metrics) LineHeight() int32 {
	return int32(float32(m.Ascent-m.Descent+m.LineGap) * m.Scale)
}

// BoundsSize returns the font bounding box size in pixels, rounded up.
func (m Metrics) BoundsSize() (width, height int) {
	w := m.Scale * float32(m.Bounds[2]-m.Bounds[0])
	h := m.Scale * float32(m.Bounds[3]-m.Bounds[1])
	return ceil32(w), ceil32(h)
}

// ScaleForPixelHeight returns the scale that maps one em to pixels pixels.
// A non-positive size yields a zero scale.
func ScaleForPixelHeight(f Font, pixels float32) float32 {
	upem := f.UnitsPerEm()
	if pixels <= 0 || upem <= 0 {
		return 0
	}
	return pixels / float32(upem)
}

// MetricsFor computes the font-wide metrics at the given pixel size.
func MetricsFor(f Font, pixels float32) Metrics {
	ascent, descent, lineGap := f.VMetrics()
	return Metrics{
		Scale:   ScaleForPixelHeight(f, pixels),
		Ascent:  ascent,
		Descent: descent,
		LineGap: lineGap,
		Bounds:  f.Bounds(),
	}
}

func ceil32(v float32) int {
	i := int(v)
	if float32(i) < v {
		i++
	}
	return i
}
