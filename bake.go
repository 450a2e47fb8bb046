package fontatlas

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/runenames"

	"github.com/gogpu/fontatlas/atlas"
	"github.com/gogpu/fontatlas/face"
	"github.com/gogpu/fontatlas/pack"
)

// Result is a finished bake.
type Result struct {
	Manifest *atlas.Manifest
	Atlas    *atlas.Atlas
	Metrics  face.Metrics

	// Passes is the number of packing passes, one for the grid strategy.
	Passes int

	// Utilization is the fraction of the atlas covered by glyphs.
	Utilization float64

	// Missing lists codepoints the font has no glyph for.
	Missing []rune

	// Cropped lists glyphs cut down to their grid tile.
	Cropped []rune
}

// Bake builds the atlas and manifest for fontData.
//
// The context is checked between pipeline stages. Bake itself does not
// touch the file system.
func Bake(ctx context.Context, fontData []byte, cfg Config) (*Result, error) {
	return bake(ctx, fontData, "", cfg)
}

// BakeFiles reads a font file, bakes it and writes the manifest and the PNG
// image. The manifest format follows the manifest file extension, see
// FormatForPath. The manifest is written before the image.
func BakeFiles(ctx context.Context, fontPath, manifestPath, imagePath string, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	data, err := readFont(fontPath)
	if err != nil {
		return nil, err
	}

	res, err := bake(ctx, data, fontPath, cfg)
	if err != nil {
		return nil, err
	}

	format := FormatForPath(manifestPath)
	err = writeFile(manifestPath, func(w io.Writer) error {
		if format == FormatCBOR {
			return res.Manifest.WriteCBOR(w)
		}
		return res.Manifest.WriteJSON(w)
	})
	if err != nil {
		return nil, err
	}

	if err := writeFile(imagePath, res.Atlas.EncodePNG); err != nil {
		return nil, err
	}

	Logger().Info("wrote atlas",
		"manifest", manifestPath,
		"format", format.String(),
		"image", imagePath,
	)
	return res, nil
}

func readFont(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, &PathError{Op: "open", Path: path, Kind: ErrFileNotFound, Err: err}
	case err != nil:
		return nil, &PathError{Op: "read", Path: path, Kind: ErrFileRead, Err: err}
	}
	return data, nil
}

// writeFile creates path and fills it with encode.
func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return &PathError{Op: "create", Path: path, Kind: ErrOutputOpen, Err: err}
	}

	if err := encode(f); err != nil {
		_ = f.Close()
		return &PathError{Op: "write", Path: path, Kind: ErrOutputWrite, Err: err}
	}

	if err := f.Close(); err != nil {
		return &PathError{Op: "write", Path: path, Kind: ErrOutputWrite, Err: err}
	}
	return nil
}

func bake(ctx context.Context, data []byte, name string, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := Logger()

	f, err := face.Parse(cfg.Parser, data)
	if err != nil {
		return nil, &PathError{Op: "parse", Path: name, Kind: ErrFontParse, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	metrics := face.MetricsFor(f, cfg.FontSize)
	log.Debug("font loaded",
		"family", face.FamilyName(f),
		"parser", cfg.Parser,
		"unitsPerEm", f.UnitsPerEm(),
		"scale", metrics.Scale,
	)

	c := atlas.Collect(f, metrics.Scale)
	for _, r := range c.Missing {
		log.Debug("missing glyph", "codepoint", r, "name", runenames.Name(r))
	}

	rects := atlas.Rects(c.Glyphs)
	res, clip, err := layout(rects, metrics, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("fontatlas: pack glyphs: %w", err)
	}
	atlas.Place(c.Glyphs, rects)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := atlas.New(res.Size)
	if err != nil {
		return nil, err
	}
	cropped := atlas.Rasterize(img, f, c.Glyphs, metrics.Scale, clip)
	for _, r := range cropped {
		log.Warn("glyph cropped to grid tile",
			"codepoint", r,
			"name", runenames.Name(r),
			"tile", fmt.Sprintf("%dx%d", clip.X, clip.Y),
		)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m := atlas.NewManifest(c.Glyphs, res, metrics)

	if log.Enabled(ctx, slog.LevelDebug) {
		for _, g := range m.Glyphs {
			log.Debug("glyph",
				"codepoint", g.Codepoint,
				"name", runenames.Name(g.Codepoint),
				"x", g.X, "y", g.Y,
				"width", g.Width, "height", g.Height,
				"advance", g.Advance,
			)
		}
	}

	util := res.Utilization(rects)
	log.Info("atlas baked",
		"strategy", cfg.Strategy.String(),
		"fontSize", cfg.FontSize,
		"textureSize", res.Size,
		"passes", res.Passes,
		"utilization", util,
	)

	return &Result{
		Manifest:    m,
		Atlas:       img,
		Metrics:     metrics,
		Passes:      res.Passes,
		Utilization: util,
		Missing:     c.Missing,
		Cropped:     cropped,
	}, nil
}

// layout packs rects with the configured strategy. For the grid strategy it
// also returns the tile size glyphs are cropped to.
func layout(rects []pack.Rect, metrics face.Metrics, cfg Config, log *slog.Logger) (pack.Result, image.Point, error) {
	if cfg.Strategy == StrategyGrid {
		tileW, tileH := metrics.BoundsSize()
		g := pack.NewGridPacker(tileW, tileH, cfg.Margin)
		res, err := g.Pack(rects)
		if err != nil {
			return res, image.Point{}, err
		}
		if res.Size > cfg.MaxTextureSize {
			return res, image.Point{}, &pack.SizeError{Size: res.Size, MaxSize: cfg.MaxTextureSize}
		}
		log.Debug("grid layout", "tileWidth", tileW, "tileHeight", tileH, "size", res.Size)
		return res, image.Pt(tileW, tileH), nil
	}

	p := &pack.ShelfPacker{
		Margin:  cfg.Margin,
		MinSize: pack.DefaultMinSize,
		MaxSize: cfg.MaxTextureSize,
		OnPass: func(size int, fit bool) {
			log.Debug("packing pass", "size", size, "fit", fit)
		},
	}
	res, err := p.Pack(rects)
	return res, image.Point{}, err
}
