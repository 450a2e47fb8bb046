package fontatlas

import (
	"errors"
	"io/fs"
	"testing"
)

func TestPathError(t *testing.T) {
	err := error(&PathError{Op: "open", Path: "a.ttf", Kind: ErrFileNotFound, Err: fs.ErrNotExist})

	if got, want := err.Error(), "fontatlas: file not found: a.ttf: file does not exist"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if !errors.Is(err, ErrFileNotFound) {
		t.Error("expected error to match its kind")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("expected error to match its cause")
	}
	if errors.Is(err, ErrFileRead) {
		t.Error("error matched an unrelated kind")
	}
}

func TestPathErrorWithoutPathOrCause(t *testing.T) {
	err := &PathError{Op: "parse", Kind: ErrFontParse}
	if got, want := err.Error(), "fontatlas: failed parsing font file"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if errs := err.Unwrap(); len(errs) != 1 || errs[0] != ErrFontParse {
		t.Errorf("expected only the kind, got %v", errs)
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Field: "Margin", Reason: "must be non-negative"}
	if got, want := err.Error(), "fontatlas: invalid config.Margin: must be non-negative"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
