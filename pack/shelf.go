package pack

// Default texture limits for ShelfPacker.
const (
	// DefaultMinSize is the texture side a shelf packing starts from.
	DefaultMinSize = 32

	// DefaultMaxSize bounds the doubling loop.
	DefaultMaxSize = 16384
)

// ShelfPacker implements shelf-based rectangle packing with texture growth.
//
// Rectangles are placed left to right on horizontal shelves. Every shelf is
// as tall as the tallest rectangle of the whole set, so a shelf never has to
// be re-measured. When a rectangle fits neither on the current shelf nor on a
// new one, the texture side is doubled and placement restarts from the first
// rectangle with an empty texture.
//
// A rectangle fits at cursor position p along an axis of the texture when
// p + extent + 2*Margin < Size. The same rule checks the shelf height
// vertically, including the first shelf.
type ShelfPacker struct {
	// Margin is the gap kept between rectangles and around the texture edge.
	Margin int

	// MinSize is the starting texture side. Must be a power of two.
	MinSize int

	// MaxSize is the largest texture side tried before giving up.
	MaxSize int

	// OnPass, if set, is called after every placement pass with the texture
	// side tried and whether every rectangle fit.
	OnPass func(size int, fit bool)
}

// NewShelfPacker creates a shelf packer with the default size limits.
func NewShelfPacker(margin int) *ShelfPacker {
	return &ShelfPacker{
		Margin:  margin,
		MinSize: DefaultMinSize,
		MaxSize: DefaultMaxSize,
	}
}

// Pack implements Packer.
//
// Every pass starts with the cursor at (Margin, Margin). Empty rectangles are
// given the cursor position without advancing it. A rectangle that starts a
// new shelf is placed at x = Margin and leaves the cursor at W + 2*Margin,
// the same bookkeeping as advancing past it on an existing shelf.
func (p *ShelfPacker) Pack(rects []Rect) (Result, error) {
	size := p.MinSize
	if size <= 0 {
		size = DefaultMinSize
	}
	maxSize := p.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	maxHeight := 0
	for _, r := range rects {
		if !r.Empty() && r.H > maxHeight {
			maxHeight = r.H
		}
	}

	passes := 0
	for {
		passes++
		fit := p.pass(rects, size, maxHeight)
		if p.OnPass != nil {
			p.OnPass(size, fit)
		}
		if fit {
			return Result{Size: size, Passes: passes}, nil
		}
		if size*2 > maxSize {
			return Result{Size: size, Passes: passes}, &SizeError{Size: size, MaxSize: maxSize}
		}
		size *= 2
	}
}

// pass runs one placement pass over rects for a texture of the given size.
// It reports false as soon as a rectangle does not fit; positions written
// before that point are garbage and get overwritten by the next pass.
func (p *ShelfPacker) pass(rects []Rect, size, maxHeight int) bool {
	m := p.Margin
	x, y := m, m
	shelfOpen := false

	for i := range rects {
		r := &rects[i]
		if r.Empty() {
			r.X, r.Y = x, y
			continue
		}

		if !shelfOpen {
			// The first shelf has to hold the tallest rectangle too.
			if y+maxHeight+2*m >= size {
				return false
			}
			shelfOpen = true
		}

		switch {
		case x+r.W+2*m < size:
			r.X, r.Y = x, y
			x += r.W + m
		case y+2*maxHeight+3*m < size && m+r.W+2*m < size:
			y += maxHeight + m
			r.X, r.Y = m, y
			x = r.W + 2*m
		default:
			return false
		}
	}
	return true
}
