package layout

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/fontatlas"
	"github.com/gogpu/fontatlas/atlas"
)

// testManifest returns a small manifest with exact binary texture
// coordinates.
func testManifest() *atlas.Manifest {
	return &atlas.Manifest{
		TextureSize: 64,
		LineGap:     20,
		Glyphs: []atlas.Glyph{
			{Codepoint: ' ', Advance: 4},
			{Codepoint: 'A', X: 8, Y: 16, Left: 1, Top: 12, Width: 10, Height: 12, Advance: 11},
			{Codepoint: 'g', X: 32, Y: 0, Left: 0, Top: 8, Width: 8, Height: 12, Advance: 9},
		},
	}
}

func TestAlignmentString(t *testing.T) {
	tests := []struct {
		a    Alignment
		want string
	}{
		{AlignLeft, "Left"},
		{AlignCenter, "Center"},
		{AlignRight, "Right"},
		{Alignment(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Alignment(%d).String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}

func TestLayoutSingleGlyph(t *testing.T) {
	got := Quads(testManifest(), "A", AlignLeft)
	want := []Quad{{
		XMin: 1, XMax: 11, YMin: 0, YMax: 12,
		UMin: 0.125, UMax: 0.28125, VMin: 0.4375, VMax: 0.25,
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("quads mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutAdvance(t *testing.T) {
	q := Quads(testManifest(), "AAg", AlignLeft)
	if len(q) != 3 {
		t.Fatalf("expected 3 quads, got %d", len(q))
	}
	if q[1].XMin != 12 {
		t.Errorf("expected second A at 12, got %v", q[1].XMin)
	}
	if q[2].XMin != 22 || q[2].YMin != -4 || q[2].YMax != 8 {
		t.Errorf("unexpected g quad %+v", q[2])
	}
}

func TestLayoutNewline(t *testing.T) {
	q := Quads(testManifest(), "AA\nA", AlignLeft)
	if len(q) != 3 {
		t.Fatalf("expected 3 quads, got %d", len(q))
	}
	if q[2].XMin != 1 {
		t.Errorf("expected x reset to 1, got %v", q[2].XMin)
	}
	if q[2].YMax != -8 || q[2].YMin != -20 {
		t.Errorf("expected second line one line gap down, got y %v..%v", q[2].YMin, q[2].YMax)
	}
}

func TestLayoutFallsBackToSpace(t *testing.T) {
	q := Quads(testManifest(), "AéA", AlignLeft)
	if len(q) != 3 {
		t.Fatalf("expected 3 quads, got %d", len(q))
	}
	if q[1].XMin != q[1].XMax || q[1].YMin != q[1].YMax {
		t.Errorf("expected degenerate space quad, got %+v", q[1])
	}
	if q[2].XMin != 16 {
		t.Errorf("expected fallback to advance by the space width, got %v", q[2].XMin)
	}
}

func TestLayoutSkipsWithoutSpace(t *testing.T) {
	m := testManifest()
	m.Glyphs = m.Glyphs[1:]

	q := Quads(m, "A@A", AlignLeft)
	if len(q) != 2 {
		t.Fatalf("expected 2 quads, got %d", len(q))
	}
	if q[1].XMin != 12 {
		t.Errorf("expected unknown rune to take no space, got %v", q[1].XMin)
	}
}

func TestLineAdvances(t *testing.T) {
	m := testManifest()
	tests := []struct {
		text string
		want []int
	}{
		{"", []int{0}},
		{"A", []int{11}},
		{"AA\ng", []int{22, 9}},
		{"AA\ng\n", []int{22, 9, 0}},
		{"A A", []int{26}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, LineAdvances(m, tt.text)); diff != "" {
			t.Errorf("LineAdvances(%q) mismatch (-want +got):\n%s", tt.text, diff)
		}
	}
}

func TestLayoutAlignment(t *testing.T) {
	m := testManifest()
	tests := []struct {
		align Alignment
		first float32
		third float32
	}{
		{AlignLeft, 1, 0},
		{AlignCenter, 1, 6.5},
		{AlignRight, 1, 13},
	}
	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			q := Quads(m, "AA\ng", tt.align)
			if len(q) != 3 {
				t.Fatalf("expected 3 quads, got %d", len(q))
			}
			if q[0].XMin != tt.first {
				t.Errorf("expected widest line at %v, got %v", tt.first, q[0].XMin)
			}
			if q[2].XMin != tt.third {
				t.Errorf("expected second line at %v, got %v", tt.third, q[2].XMin)
			}
		})
	}
}

func TestExtent(t *testing.T) {
	m := testManifest()

	got := Extent(m, "Ag", AlignLeft)
	want := Rect{XMin: 1, XMax: 19, YMin: -4, YMax: 12}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if got.Width() != 18 || got.Height() != 16 {
		t.Errorf("unexpected size %vx%v", got.Width(), got.Height())
	}

	if got := Extent(m, "", AlignLeft); got != (Rect{}) {
		t.Errorf("expected zero extent for empty text, got %+v", got)
	}
}

func TestTriangles(t *testing.T) {
	m := testManifest()
	v := Triangles(m, "A\ng", AlignLeft)

	if want := 2 * VerticesPerQuad * FloatsPerVertex; len(v) != want {
		t.Fatalf("expected %d floats, got %d", want, len(v))
	}

	q := Quads(m, "A", AlignLeft)[0]
	want := []float32{
		q.XMin, q.YMax, q.UMin, q.VMax,
		q.XMin, q.YMin, q.UMin, q.VMin,
		q.XMax, q.YMax, q.UMax, q.VMax,
		q.XMax, q.YMax, q.UMax, q.VMax,
		q.XMin, q.YMin, q.UMin, q.VMin,
		q.XMax, q.YMin, q.UMax, q.VMin,
	}
	if diff := cmp.Diff(want, v[:len(want)]); diff != "" {
		t.Errorf("first glyph vertices mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutZeroTextureSize(t *testing.T) {
	m := testManifest()
	m.TextureSize = 0
	for _, q := range Quads(m, "Ag", AlignLeft) {
		if q.UMin != 0 || q.UMax != 0 || q.VMin != 0 || q.VMax != 0 {
			t.Errorf("expected zero texture coordinates, got %+v", q)
		}
	}
}

func TestLayoutBakedFont(t *testing.T) {
	cfg := fontatlas.DefaultConfig()
	cfg.FontSize = 24
	res, err := fontatlas.Bake(context.Background(), goregular.TTF, cfg)
	if err != nil {
		t.Fatalf("Bake failed: %v", err)
	}
	m := res.Manifest

	text := "Hello, World!\nfontatlas"
	q := Quads(m, text, AlignCenter)
	if want := len(text) - 1; len(q) != want {
		t.Fatalf("expected %d quads, got %d", want, len(q))
	}
	for i, quad := range q {
		for _, c := range []float32{quad.UMin, quad.UMax, quad.VMin, quad.VMax} {
			if c < 0 || c > 1 {
				t.Fatalf("quad %d has texture coordinate %v outside [0,1]", i, c)
			}
		}
		if quad.XMax < quad.XMin || quad.YMax < quad.YMin {
			t.Errorf("quad %d is inverted: %+v", i, quad)
		}
	}

	ext := Extent(m, "H", AlignLeft)
	h, _ := m.Glyph('H')
	if ext.Height() != float32(h.Height) || ext.Width() != float32(h.Width) {
		t.Errorf("expected extent %dx%d, got %vx%v", h.Width, h.Height, ext.Width(), ext.Height())
	}
}
