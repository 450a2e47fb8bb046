package pack

// DefaultColumns is the number of grid columns used by the reference atlas
// layout.
const DefaultColumns = 10

// GridPacker is a specialized packer for uniform grid-based layouts.
// Every rectangle gets a cell of TileWidth x TileHeight plus Margin, whatever
// its own size, so placement is O(1) per rectangle and never retries.
type GridPacker struct {
	TileWidth  int // Cell width without margin
	TileHeight int // Cell height without margin
	Margin     int // Gap between cells and around the texture edge
	Columns    int // Cells per row
}

// NewGridPacker creates a grid packer with DefaultColumns columns.
func NewGridPacker(tileWidth, tileHeight, margin int) *GridPacker {
	return &GridPacker{
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		Margin:     margin,
		Columns:    DefaultColumns,
	}
}

// Pack implements Packer.
//
// Rectangle i goes to column i%Columns and row i/Columns. The texture side is
// the next power of two of 2*Margin + Columns*max(outer tile width, outer
// tile height); the square reserves as many rows as columns, which covers up
// to Columns*Columns rectangles.
func (g *GridPacker) Pack(rects []Rect) (Result, error) {
	if g.Columns <= 0 || g.TileWidth < 0 || g.TileHeight < 0 || g.Margin < 0 {
		return Result{}, ErrInvalidTile
	}

	outerW := g.TileWidth + g.Margin
	outerH := g.TileHeight + g.Margin

	side := 2*g.Margin + g.Columns*max(outerW, outerH)
	size := int(NextPowerOfTwo(uint32(side))) //nolint:gosec // side is non-negative
	if size == 0 {
		return Result{}, &SizeError{Size: side, MaxSize: 1 << 31}
	}

	rows := (len(rects) + g.Columns - 1) / g.Columns
	if rows > 0 && g.Margin+rows*outerH > size {
		return Result{Size: size, Passes: 1}, &SizeError{Size: size, MaxSize: size}
	}

	for i := range rects {
		col := i % g.Columns
		row := i / g.Columns
		rects[i].X = g.Margin + col*outerW
		rects[i].Y = g.Margin + row*outerH
	}
	return Result{Size: size, Passes: 1}, nil
}

// Cell returns the tile rectangle reserved for index i, ignoring the
// rectangle's own size.
func (g *GridPacker) Cell(i int) Rect {
	cols := g.Columns
	if cols <= 0 {
		cols = DefaultColumns
	}
	return Rect{
		W: g.TileWidth,
		H: g.TileHeight,
		X: g.Margin + (i%cols)*(g.TileWidth+g.Margin),
		Y: g.Margin + (i/cols)*(g.TileHeight+g.Margin),
	}
}
