// Command fontatlas bakes the printable ASCII glyphs of a font into a
// grayscale PNG atlas and a manifest describing every glyph.
//
// Usage:
//
//	fontatlas [flags] <font> <size_px> <manifest> <image>
//
// The manifest is written as CBOR when its name ends in .cbor and as JSON
// otherwise.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/gogpu/fontatlas"
	"github.com/gogpu/fontatlas/face"
)

// usageError reports bad command line arguments.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	var uerr *usageError
	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.As(err, &uerr):
		return 2
	default:
		return 1
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	prog := filepath.Base(os.Args[0])

	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(stderr)
	def := fontatlas.DefaultConfig()
	var (
		strategy = fs.String("strategy", def.Strategy.String(), "packing strategy: shelf or grid")
		parser   = fs.String("parser", def.Parser, "font parser: "+strings.Join(face.Names(), " or "))
		margin   = fs.Int("margin", def.Margin, "gap in pixels between glyphs and around the edge")
		maxSize  = fs.Int("max-size", def.MaxTextureSize, "largest texture side to try")
		verbose  = fs.Bool("v", false, "log the run summary, every packing pass and glyph")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [flags] <font> <size_px> <manifest> <image>\n", prog)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return &usageError{msg: err.Error()}
	}

	fail := func(err error) error {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return err
	}
	usage := func(format string, a ...any) error {
		err := &usageError{msg: fmt.Sprintf(format, a...)}
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		fs.Usage()
		return err
	}

	if fs.NArg() != 4 {
		return usage("expected 4 arguments, got %d", fs.NArg())
	}
	fontPath, sizeArg, manifestPath, imagePath := fs.Arg(0), fs.Arg(1), fs.Arg(2), fs.Arg(3)

	size, err := strconv.ParseFloat(sizeArg, 32)
	if err != nil {
		return usage("invalid font size %q", sizeArg)
	}

	cfg := def
	cfg.FontSize = float32(size)
	cfg.Parser = *parser
	cfg.Margin = *margin
	cfg.MaxTextureSize = *maxSize
	if cfg.Strategy, err = fontatlas.ParseStrategy(*strategy); err != nil {
		return usage("%v", err)
	}
	if err := cfg.Validate(); err != nil {
		return usage("%v", err)
	}

	fontatlas.SetLogger(newLogger(stderr, *verbose))

	if _, err := fontatlas.BakeFiles(ctx, fontPath, manifestPath, imagePath, cfg); err != nil {
		return fail(err)
	}
	return nil
}

// newLogger logs text to terminals and JSON everywhere else. Only warnings
// are shown unless verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) { //nolint:gosec // fd fits in int
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
