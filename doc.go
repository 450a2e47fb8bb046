// Package fontatlas bakes a TrueType or OpenType font into a bitmap glyph
// atlas for printable ASCII.
//
// # Overview
//
// A bake produces two artifacts: a square 8-bit grayscale texture holding
// the antialiased coverage of every glyph, and a manifest recording where
// each glyph lives in the texture together with its bearings and advance.
// Renderers load both once and draw text as textured quads (see the layout
// package).
//
// # Quick Start
//
//	res, err := fontatlas.BakeFiles(ctx, "font.ttf", "font.json", "font.png",
//	    fontatlas.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Manifest.TextureSize)
//
// # Pipeline
//
// Bake parses the font (package face), measures every glyph at
// scale = FontSize / unitsPerEm (atlas.Collect), packs the glyph rectangles
// (package pack), rasterizes the glyphs into the texture (atlas.Rasterize)
// and builds the manifest (atlas.Manifest).
//
// Two layouts are available. StrategyShelf, the default, packs glyphs onto
// shelves and doubles the texture from 32 pixels until every glyph fits.
// StrategyGrid gives every glyph a tile of the font bounding box in a
// 10-column grid, which is wasteful but never retries.
//
// # Determinism
//
// The texture is zeroed before rasterization and packing has no randomness,
// so identical inputs produce byte-identical outputs.
//
// # Logging
//
// fontatlas is silent unless a logger is installed with SetLogger.
package fontatlas

// Version is the current version of the module.
const Version = "0.1.0"
