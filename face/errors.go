package face

import "errors"

// Sentinel errors for face package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("face: empty font data")

	// ErrUnknownParser is returned when no parser is registered under the
	// requested name.
	ErrUnknownParser = errors.New("face: unknown parser")
)
