package atlas

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/fxamacker/cbor/v2"

	"github.com/gogpu/fontatlas/face"
	"github.com/gogpu/fontatlas/pack"
)

// Manifest describes a baked atlas: its size, the line spacing of the font
// and where each glyph lives.
//
// Glyphs is ordered by ascending codepoint. A valid manifest holds exactly
// one glyph for every codepoint from FirstCodepoint to LastCodepoint.
type Manifest struct {
	TextureSize uint32
	LineGap     int32
	Glyphs      []Glyph
}

// NewManifest builds a manifest from packed glyphs and the font metrics.
func NewManifest(glyphs []Glyph, res pack.Result, m face.Metrics) *Manifest {
	return &Manifest{
		TextureSize: uint32(res.Size), //nolint:gosec // packer sizes are bounded powers of two
		LineGap:     m.LineHeight(),
		Glyphs:      glyphs,
	}
}

// Glyph returns the record for r.
func (m *Manifest) Glyph(r rune) (Glyph, bool) {
	// Valid manifests are indexed directly.
	if i := int(r - FirstCodepoint); i >= 0 && i < len(m.Glyphs) && m.Glyphs[i].Codepoint == r {
		return m.Glyphs[i], true
	}
	i, found := slices.BinarySearchFunc(m.Glyphs, r, func(g Glyph, r rune) int {
		return int(g.Codepoint - r)
	})
	if !found {
		return Glyph{}, false
	}
	return m.Glyphs[i], true
}

// Validate checks the manifest invariants: a power-of-two texture size and
// exactly one glyph per codepoint in ascending order, each inside the
// texture.
func (m *Manifest) Validate() error {
	if !pack.IsPowerOfTwo(int(m.TextureSize)) {
		return &ManifestError{Codepoint: -1, Reason: fmt.Sprintf("texture size %d is not a power of two", m.TextureSize)}
	}
	if len(m.Glyphs) != NumGlyphs {
		return &ManifestError{Codepoint: -1, Reason: fmt.Sprintf("expected %d glyphs, got %d", NumGlyphs, len(m.Glyphs))}
	}
	for i, g := range m.Glyphs {
		want := FirstCodepoint + rune(i)
		if g.Codepoint != want {
			return &ManifestError{Codepoint: g.Codepoint, Reason: fmt.Sprintf("expected codepoint %d at position %d", want, i)}
		}
		if g.Empty() {
			continue
		}
		if uint64(g.X)+uint64(g.Width) > uint64(m.TextureSize) || uint64(g.Y)+uint64(g.Height) > uint64(m.TextureSize) {
			return &ManifestError{Codepoint: g.Codepoint, Reason: "rectangle extends past the texture"}
		}
	}
	return nil
}

// WriteJSON writes the manifest in its canonical text form: one glyph per
// line, keyed by decimal codepoint in ascending order.
func (m *Manifest) WriteJSON(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "{\n    \"textureSize\": %d, \"lineGap\": %d,\n", m.TextureSize, m.LineGap)
	bw.WriteString("    \"glyphs\": {\n")
	for i, g := range m.Glyphs {
		sep := ","
		if i == len(m.Glyphs)-1 {
			sep = ""
		}
		fmt.Fprintf(bw,
			"        \"%d\": {\"x\": %d, \"y\": %d, \"left\": %d, \"top\": %d, \"width\": %d, \"height\": %d, \"advance\": %d}%s\n",
			g.Codepoint, g.X, g.Y, g.Left, g.Top, g.Width, g.Height, g.Advance, sep)
	}
	bw.WriteString("    }\n}\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("atlas: write manifest: %w", err)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.WriteJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type jsonManifest struct {
	TextureSize uint32           `json:"textureSize"`
	LineGap     int32            `json:"lineGap"`
	Glyphs      map[string]Glyph `json:"glyphs"`
}

// UnmarshalJSON implements json.Unmarshaler. It does not validate; use
// ReadManifest or Validate for that.
func (m *Manifest) UnmarshalJSON(data []byte) error {
	var raw jsonManifest
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	glyphs := make([]Glyph, 0, len(raw.Glyphs))
	for key, g := range raw.Glyphs {
		cp, err := strconv.ParseInt(key, 10, 32)
		if err != nil {
			return fmt.Errorf("atlas: glyph key %q is not a codepoint", key)
		}
		g.Codepoint = rune(cp)
		glyphs = append(glyphs, g)
	}
	sortGlyphs(glyphs)

	m.TextureSize = raw.TextureSize
	m.LineGap = raw.LineGap
	m.Glyphs = glyphs
	return nil
}

// ReadManifest decodes and validates a JSON manifest.
func ReadManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("atlas: decode manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

type cborManifest struct {
	TextureSize uint32         `cbor:"1,keyasint"`
	LineGap     int32          `cbor:"2,keyasint"`
	Glyphs      map[rune]Glyph `cbor:"3,keyasint"`
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	encMode = em
	dm, err := cbor.DecOptions{
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	decMode = dm
}

// WriteCBOR writes the manifest as deterministic CBOR, with glyphs keyed by
// integer codepoint.
func (m *Manifest) WriteCBOR(w io.Writer) error {
	raw := cborManifest{
		TextureSize: m.TextureSize,
		LineGap:     m.LineGap,
		Glyphs:      make(map[rune]Glyph, len(m.Glyphs)),
	}
	for _, g := range m.Glyphs {
		raw.Glyphs[g.Codepoint] = g
	}
	b, err := encMode.Marshal(raw)
	if err != nil {
		return fmt.Errorf("atlas: encode manifest: %w", err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("atlas: write manifest: %w", err)
	}
	return nil
}

// ReadCBOR decodes and validates a CBOR manifest.
func ReadCBOR(r io.Reader) (*Manifest, error) {
	var raw cborManifest
	if err := decMode.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("atlas: decode manifest: %w", err)
	}

	m := &Manifest{
		TextureSize: raw.TextureSize,
		LineGap:     raw.LineGap,
		Glyphs:      make([]Glyph, 0, len(raw.Glyphs)),
	}
	for cp, g := range raw.Glyphs {
		g.Codepoint = cp
		m.Glyphs = append(m.Glyphs, g)
	}
	sortGlyphs(m.Glyphs)

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func sortGlyphs(glyphs []Glyph) {
	slices.SortFunc(glyphs, func(a, b Glyph) int {
		return int(a.Codepoint - b.Codepoint)
	})
}
