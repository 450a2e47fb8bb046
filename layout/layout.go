// Package layout positions text on screen using a baked atlas manifest.
//
// Layout walks a string and emits one textured quad per glyph. Positions are
// in pixels with Y up: the pen starts at the origin on the first baseline and
// every newline moves it down by the manifest's LineGap. Texture coordinates
// are normalized to [0, 1] with V flipped, matching the row order of the
// atlas image when it is uploaded as a bottom-up texture.
//
//	quads := layout.Quads(m, "Hello\nworld", layout.AlignCenter)
//	verts := layout.Triangles(m, "Hello", layout.AlignLeft)
package layout

import (
	"github.com/gogpu/fontatlas/atlas"
)

// Alignment specifies horizontal alignment of each line relative to the
// widest line of the text.
type Alignment int

const (
	// AlignLeft starts every line at x = 0 (default).
	AlignLeft Alignment = iota
	// AlignCenter centers every line on the widest line.
	AlignCenter
	// AlignRight aligns the end of every line with the widest line.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// ratio is the share of the free space placed before a line.
func (a Alignment) ratio() float32 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight:
		return 1
	default:
		return 0
	}
}

// Quad is a positioned glyph rectangle with its texture coordinates.
type Quad struct {
	XMin, XMax, YMin, YMax float32
	UMin, UMax, VMin, VMax float32
}

// Rect is an axis-aligned box in layout space.
type Rect struct {
	XMin, XMax, YMin, YMax float32
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float32 { return r.XMax - r.XMin }

// Height returns the vertical extent of r.
func (r Rect) Height() float32 { return r.YMax - r.YMin }

const (
	newline = '\n'
	space   = ' '
)

// lookup returns the glyph for r, falling back to the space glyph.
func lookup(m *atlas.Manifest, r rune) (atlas.Glyph, bool) {
	if g, ok := m.Glyph(r); ok {
		return g, true
	}
	return m.Glyph(space)
}

// LineAdvances returns the summed advance of every line of text. A text
// without newlines has one line; a trailing newline adds an empty line.
func LineAdvances(m *atlas.Manifest, text string) []int {
	advances := make([]int, 0, 1)
	advance := 0
	for _, r := range text {
		if r == newline {
			advances = append(advances, advance)
			advance = 0
			continue
		}
		if g, ok := lookup(m, r); ok {
			advance += int(g.Advance)
		}
	}
	return append(advances, advance)
}

// Layout calls fn with the quad of every glyph of text in order.
//
// Runes the manifest has no glyph for are drawn as a space. Empty glyphs such
// as the space still produce a degenerate quad so that callers can count on
// one quad per non-newline rune.
func Layout(m *atlas.Manifest, text string, align Alignment, fn func(Quad)) {
	var inv float32
	if m.TextureSize > 0 {
		inv = 1 / float32(m.TextureSize)
	}

	ratio := align.ratio()
	var advances []int
	maxAdvance := 0
	if ratio != 0 {
		advances = LineAdvances(m, text)
		for _, a := range advances {
			maxAdvance = max(maxAdvance, a)
		}
	}
	lineStart := func(line int) float32 {
		if ratio == 0 {
			return 0
		}
		return ratio * float32(maxAdvance-advances[line])
	}

	line := 0
	x, y := lineStart(0), float32(0)
	for _, r := range text {
		if r == newline {
			line++
			x = lineStart(line)
			y -= float32(m.LineGap)
			continue
		}

		g, ok := lookup(m, r)
		if !ok {
			continue
		}

		q := Quad{
			XMin: x + float32(g.Left),
			YMax: y + float32(g.Top),
			UMin: float32(g.X) * inv,
			UMax: float32(g.X+g.Width) * inv,
			VMin: float32(g.Y+g.Height) * inv,
			VMax: float32(g.Y) * inv,
		}
		q.XMax = q.XMin + float32(g.Width)
		q.YMin = q.YMax - float32(g.Height)
		fn(q)

		x += float32(g.Advance)
	}
}

// Quads returns the quads of text.
func Quads(m *atlas.Manifest, text string, align Alignment) []Quad {
	var quads []Quad
	Layout(m, text, align, func(q Quad) {
		quads = append(quads, q)
	})
	return quads
}

// Extent returns the bounding box of all quads of text. A text without
// glyphs has a zero extent.
func Extent(m *atlas.Manifest, text string, align Alignment) Rect {
	var ext Rect
	first := true
	Layout(m, text, align, func(q Quad) {
		if first {
			ext = Rect{XMin: q.XMin, XMax: q.XMax, YMin: q.YMin, YMax: q.YMax}
			first = false
			return
		}
		ext.XMin = min(ext.XMin, q.XMin)
		ext.XMax = max(ext.XMax, q.XMax)
		ext.YMin = min(ext.YMin, q.YMin)
		ext.YMax = max(ext.YMax, q.YMax)
	})
	return ext
}

// FloatsPerVertex is the number of floats per vertex emitted by Triangles:
// x, y, u, v.
const FloatsPerVertex = 4

// VerticesPerQuad is the number of vertices Triangles emits per glyph.
const VerticesPerQuad = 6

// Triangles returns the quads of text as a triangle list ready for a vertex
// buffer. Each glyph contributes two counter-clockwise triangles, top-left,
// bottom-left, top-right then top-right, bottom-left, bottom-right, with
// FloatsPerVertex floats per vertex.
func Triangles(m *atlas.Manifest, text string, align Alignment) []float32 {
	var out []float32
	Layout(m, text, align, func(q Quad) {
		out = append(out,
			q.XMin, q.YMax, q.UMin, q.VMax,
			q.XMin, q.YMin, q.UMin, q.VMin,
			q.XMax, q.YMax, q.UMax, q.VMax,

			q.XMax, q.YMax, q.UMax, q.VMax,
			q.XMin, q.YMin, q.UMin, q.VMin,
			q.XMax, q.YMin, q.UMax, q.VMin,
		)
	})
	return out
}
