// Package pack lays out glyph rectangles inside a square power-of-two
// texture.
//
// Two strategies are provided:
//
//   - [ShelfPacker] places rectangles left to right on horizontal shelves of
//     uniform height. When a pass runs out of room the texture side is
//     doubled and the whole pass starts over from the first rectangle.
//   - [GridPacker] assigns every rectangle a fixed cell in a grid whose cell
//     size is chosen up front. It never retries but wastes space when
//     rectangle sizes vary.
//
// # Usage
//
//	rects := []pack.Rect{{W: 7, H: 12}, {W: 0, H: 0}, {W: 9, H: 11}}
//	res, err := pack.NewShelfPacker(1).Pack(rects)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// rects[i].X, rects[i].Y now hold positions inside a res.Size square.
//
// Rectangles are packed in slice order. Empty rectangles (zero width or
// height) receive a nominal position but never consume space.
package pack
