package fontatlas

import (
	"math"
	"path/filepath"
	"strings"

	"github.com/gogpu/fontatlas/face"
	"github.com/gogpu/fontatlas/pack"
)

// Strategy selects how glyphs are laid out in the atlas.
type Strategy int

const (
	// StrategyShelf packs glyphs on shelves and doubles the texture until
	// they fit. It produces the smallest textures.
	StrategyShelf Strategy = iota

	// StrategyGrid places glyphs in a fixed 10-column grid of tiles sized
	// from the font bounding box.
	StrategyGrid
)

// String returns the strategy name as accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case StrategyShelf:
		return "shelf"
	case StrategyGrid:
		return "grid"
	default:
		return "unknown"
	}
}

// ParseStrategy parses a strategy name.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "shelf":
		return StrategyShelf, nil
	case "grid":
		return StrategyGrid, nil
	default:
		return 0, &ConfigError{Field: "Strategy", Reason: "unknown strategy " + name}
	}
}

// Format is the manifest encoding.
type Format int

const (
	// FormatJSON is the canonical text manifest.
	FormatJSON Format = iota

	// FormatCBOR is a compact binary manifest.
	FormatCBOR
)

// String returns the format name.
func (f Format) String() string {
	if f == FormatCBOR {
		return "cbor"
	}
	return "json"
}

// FormatForPath picks the manifest format from a file extension: ".cbor"
// selects CBOR, anything else JSON.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".cbor") {
		return FormatCBOR
	}
	return FormatJSON
}

// Limits for Config.
const (
	// MaxMargin is the largest accepted glyph margin.
	MaxMargin = 64

	// MinTextureSize is the smallest accepted MaxTextureSize.
	MinTextureSize = pack.DefaultMinSize

	// MaxTextureSizeLimit is the largest accepted MaxTextureSize.
	MaxTextureSizeLimit = 65536
)

// Config holds the parameters of a bake.
type Config struct {
	// FontSize is the pixel size of one em. Zero yields an atlas of empty
	// glyphs.
	FontSize float32

	// Strategy selects the layout algorithm.
	Strategy Strategy

	// Parser names the face backend, see face.Names.
	Parser string

	// Margin is the gap in pixels between glyphs and around the edge.
	Margin int

	// MaxTextureSize bounds the atlas side. Must be a power of two.
	MaxTextureSize int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		FontSize:       32,
		Strategy:       StrategyShelf,
		Parser:         face.DefaultParser,
		Margin:         1,
		MaxTextureSize: pack.DefaultMaxSize,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if math.IsNaN(float64(c.FontSize)) || math.IsInf(float64(c.FontSize), 0) {
		return &ConfigError{Field: "FontSize", Reason: "must be finite"}
	}
	if c.FontSize < 0 {
		return &ConfigError{Field: "FontSize", Reason: "must be non-negative"}
	}
	if c.Strategy != StrategyShelf && c.Strategy != StrategyGrid {
		return &ConfigError{Field: "Strategy", Reason: "must be StrategyShelf or StrategyGrid"}
	}
	if _, ok := face.Lookup(c.Parser); !ok {
		return &ConfigError{Field: "Parser", Reason: "unknown parser " + c.Parser}
	}
	if c.Margin < 0 {
		return &ConfigError{Field: "Margin", Reason: "must be non-negative"}
	}
	if c.Margin > MaxMargin {
		return &ConfigError{Field: "Margin", Reason: "must be at most 64"}
	}
	if c.MaxTextureSize < MinTextureSize {
		return &ConfigError{Field: "MaxTextureSize", Reason: "must be at least 32"}
	}
	if c.MaxTextureSize > MaxTextureSizeLimit {
		return &ConfigError{Field: "MaxTextureSize", Reason: "must be at most 65536"}
	}
	if !pack.IsPowerOfTwo(c.MaxTextureSize) {
		return &ConfigError{Field: "MaxTextureSize", Reason: "must be power of 2"}
	}
	return nil
}
