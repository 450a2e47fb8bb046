package atlas

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// Atlas is a square single-channel 8-bit texture.
// Pix holds Size*Size bytes in row-major order with a stride of Size.
type Atlas struct {
	Size int
	Pix  []byte
}

// New allocates a zeroed atlas with the given side length.
func New(size int) (*Atlas, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return &Atlas{Size: size, Pix: make([]byte, size*size)}, nil
}

// Rect returns the atlas bounds.
func (a *Atlas) Rect() image.Rectangle {
	return image.Rect(0, 0, a.Size, a.Size)
}

// Alpha returns a coverage view of the atlas sharing its pixels.
func (a *Atlas) Alpha() *image.Alpha {
	return &image.Alpha{Pix: a.Pix, Stride: a.Size, Rect: a.Rect()}
}

// Gray returns a grayscale view of the atlas sharing its pixels.
func (a *Atlas) Gray() *image.Gray {
	return &image.Gray{Pix: a.Pix, Stride: a.Size, Rect: a.Rect()}
}

// EncodePNG encodes the atlas as an 8-bit grayscale PNG.
func (a *Atlas) EncodePNG(w io.Writer) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(w, a.Gray()); err != nil {
		return fmt.Errorf("atlas: encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes the atlas as a PNG file.
func (a *Atlas) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("atlas: create file: %w", err)
	}

	if err := a.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
