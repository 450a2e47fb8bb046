package atlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for atlas package.
var (
	// ErrInvalidSize is returned when an atlas side length is not positive.
	ErrInvalidSize = errors.New("atlas: invalid size")

	// ErrInvalidManifest is returned when a manifest breaks its invariants.
	ErrInvalidManifest = errors.New("atlas: invalid manifest")
)

// ManifestError describes why a manifest failed validation.
type ManifestError struct {
	Codepoint rune   // Offending codepoint, or -1 for manifest-wide problems
	Reason    string // Human-readable explanation
}

// Error implements the error interface.
func (e *ManifestError) Error() string {
	if e.Codepoint < 0 {
		return fmt.Sprintf("atlas: invalid manifest: %s", e.Reason)
	}
	return fmt.Sprintf("atlas: invalid manifest: glyph %d: %s", e.Codepoint, e.Reason)
}

// Unwrap returns ErrInvalidManifest.
func (e *ManifestError) Unwrap() error {
	return ErrInvalidManifest
}
