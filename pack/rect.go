package pack

import "math/bits"

// Rect is a rectangle to be placed in the atlas.
// W and H are inputs; X and Y are filled in by a Packer.
type Rect struct {
	W, H int
	X, Y int
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Area returns the number of pixels covered by the rectangle.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.W * r.H
}

// Overlaps reports whether two non-empty rectangles share at least one pixel.
// Empty rectangles never overlap anything.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Result describes a finished packing.
type Result struct {
	// Size is the side length of the square texture.
	Size int

	// Passes is the number of placement passes run. A shelf packing that
	// never had to grow takes one pass.
	Passes int
}

// Utilization returns the fraction of the texture covered by rects.
func (res Result) Utilization(rects []Rect) float64 {
	if res.Size <= 0 {
		return 0
	}
	used := 0
	for _, r := range rects {
		used += r.Area()
	}
	return float64(used) / float64(res.Size*res.Size)
}

// Packer assigns positions to rectangles.
// Pack writes X and Y of every element of rects and returns the texture size.
type Packer interface {
	Pack(rects []Rect) (Result, error)
}

// NextPowerOfTwo returns the smallest power of two greater than or equal to v.
//
// Powers of two are returned unchanged. NextPowerOfTwo(0) is 1. Values above
// 1<<31 have no 32-bit power of two to round up to and yield 0.
func NextPowerOfTwo(v uint32) uint32 {
	if v <= 1 {
		return 1
	}
	if v > 1<<31 {
		return 0
	}
	return 1 << bits.Len32(v-1)
}

// IsPowerOfTwo reports whether v is a positive power of two.
func IsPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}
