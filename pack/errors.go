package pack

import (
	"errors"
	"fmt"
)

// Sentinel errors for pack package.
var (
	// ErrAtlasTooLarge is returned when the rectangles do not fit in a
	// texture of the maximum allowed size.
	ErrAtlasTooLarge = errors.New("pack: rectangles do not fit in maximum texture size")

	// ErrInvalidTile is returned by GridPacker when the tile or column
	// configuration cannot describe a grid.
	ErrInvalidTile = errors.New("pack: invalid grid tile")
)

// SizeError is returned when packing gives up. It unwraps to ErrAtlasTooLarge.
type SizeError struct {
	// Size is the largest texture side that was tried.
	Size int

	// MaxSize is the configured limit.
	MaxSize int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("pack: rectangles do not fit in %dx%d texture (max %d)", e.Size, e.Size, e.MaxSize)
}

func (e *SizeError) Unwrap() error {
	return ErrAtlasTooLarge
}
