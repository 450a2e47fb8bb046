package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/gomono"

	"github.com/gogpu/fontatlas"
	"github.com/gogpu/fontatlas/atlas"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	orig := fontatlas.Logger()
	t.Cleanup(func() { fontatlas.SetLogger(orig) })

	var stderr bytes.Buffer
	err := run(context.Background(), args, &stderr)
	return stderr.String(), err
}

func writeFont(t *testing.T) (dir, path string) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, "mono.ttf")
	if err := os.WriteFile(path, gomono.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	return dir, path
}

func TestRun(t *testing.T) {
	dir, font := writeFont(t)
	manifest := filepath.Join(dir, "mono.json")
	image := filepath.Join(dir, "mono.png")

	out, err := runCLI(t, font, "16", manifest, image)
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, out)
	}
	if code := exitCode(err); code != 0 {
		t.Errorf("expected exit code 0, got %d", code)
	}

	f, err := os.Open(manifest)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	m, err := atlas.ReadManifest(f)
	if err != nil {
		t.Fatalf("ReadManifest failed: %v", err)
	}
	if len(m.Glyphs) != atlas.NumGlyphs {
		t.Errorf("expected %d glyphs, got %d", atlas.NumGlyphs, len(m.Glyphs))
	}
	if _, err := os.Stat(image); err != nil {
		t.Errorf("image not written: %v", err)
	}

	if out != "" {
		t.Errorf("expected a quiet successful run, got %q", out)
	}
}

func TestRunOnlyWarnsByDefault(t *testing.T) {
	dir, font := writeFont(t)

	// At margin 0 the tiles have no slack, so rounding can crop a glyph.
	out, err := runCLI(t, "-strategy", "grid", "-margin", "0", font, "17", filepath.Join(dir, "g.json"), filepath.Join(dir, "g.png"))
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, out)
	}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("log line is not JSON: %q", line)
		}
		if rec["level"] != "WARN" {
			t.Errorf("expected only warnings without -v, got %q", line)
		}
	}
}

func TestRunVerboseCBOR(t *testing.T) {
	dir, font := writeFont(t)
	manifest := filepath.Join(dir, "mono.cbor")

	out, err := runCLI(t, "-v", "-parser", "gotext", "-margin", "2", font, "12.5", manifest, filepath.Join(dir, "mono.png"))
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, out)
	}
	for _, want := range []string{`"msg":"packing pass"`, `"msg":"atlas baked"`, `"msg":"wrote atlas"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s with -v, got %q", want, out)
		}
	}

	data, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := atlas.ReadCBOR(bytes.NewReader(data)); err != nil {
		t.Errorf("ReadCBOR failed: %v", err)
	}
}

func TestRunUsageErrors(t *testing.T) {
	dir, font := writeFont(t)
	m, img := filepath.Join(dir, "a.json"), filepath.Join(dir, "a.png")

	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"too few", []string{font, "16", m}},
		{"too many", []string{font, "16", m, img, "extra"}},
		{"bad size", []string{font, "big", m, img}},
		{"negative size", []string{font, "-4", m, img}},
		{"unknown flag", []string{"-color", font, "16", m, img}},
		{"unknown strategy", []string{"-strategy", "maxrects", font, "16", m, img}},
		{"unknown parser", []string{"-parser", "freetype", font, "16", m, img}},
		{"bad max size", []string{"-max-size", "1000", font, "16", m, img}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, tt.args...)
			var uerr *usageError
			if !errors.As(err, &uerr) {
				t.Fatalf("expected usage error, got %v", err)
			}
			if code := exitCode(err); code != 2 {
				t.Errorf("expected exit code 2, got %d", code)
			}
			if !strings.Contains(out, "usage:") {
				t.Errorf("expected usage text, got %q", out)
			}
		})
	}
}

func TestRunFailures(t *testing.T) {
	dir, font := writeFont(t)

	tests := []struct {
		name string
		args []string
		kind error
	}{
		{"missing font", []string{filepath.Join(dir, "none.ttf"), "16", filepath.Join(dir, "a.json"), filepath.Join(dir, "a.png")}, fontatlas.ErrFileNotFound},
		{"bad output dir", []string{font, "16", filepath.Join(dir, "no", "b.json"), filepath.Join(dir, "b.png")}, fontatlas.ErrOutputOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, tt.args...)
			if !errors.Is(err, tt.kind) {
				t.Fatalf("expected %v, got %v", tt.kind, err)
			}
			if code := exitCode(err); code != 1 {
				t.Errorf("expected exit code 1, got %d", code)
			}
			prog := filepath.Base(os.Args[0])
			if !strings.Contains(out, prog+": "+tt.kind.Error()) {
				t.Errorf("expected error prefixed with %q, got %q", prog, out)
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	out, err := runCLI(t, "-h")
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
	if exitCode(err) != 0 {
		t.Errorf("expected exit code 0 for -h")
	}
	for _, name := range []string{"-strategy", "-parser", "-margin", "-max-size", "-v"} {
		if !strings.Contains(out, name) {
			t.Errorf("help output is missing %s", name)
		}
	}
}
