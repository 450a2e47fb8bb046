package fontatlas

import (
	"errors"
	"fmt"
)

// Error kinds reported by Bake and BakeFiles. Test with errors.Is.
var (
	// ErrFileNotFound is returned when the font file does not exist.
	ErrFileNotFound = errors.New("fontatlas: file not found")

	// ErrFileRead is returned when the font file exists but cannot be read.
	ErrFileRead = errors.New("fontatlas: failed loading file")

	// ErrFontParse is returned when the font data is not a usable font.
	ErrFontParse = errors.New("fontatlas: failed parsing font file")

	// ErrOutputOpen is returned when an output file cannot be created.
	ErrOutputOpen = errors.New("fontatlas: failed opening output file")

	// ErrOutputWrite is returned when writing an output file fails.
	ErrOutputWrite = errors.New("fontatlas: failed writing output file")
)

// PathError records a failed file operation of the bake pipeline.
// It unwraps to both its Kind and the underlying cause.
type PathError struct {
	Op   string // "open", "read", "parse", "create" or "write"
	Path string // File involved; empty for in-memory font data
	Kind error  // One of the Err* kinds above
	Err  error  // Underlying cause, may be nil
}

func (e *PathError) Error() string {
	msg := e.Kind.Error()
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the error kind and the cause.
func (e *PathError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("fontatlas: invalid config.%s: %s", e.Field, e.Reason)
}
