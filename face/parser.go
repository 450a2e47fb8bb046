package face

import (
	"fmt"
	"sort"
	"sync"
)

// Parser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (e.g., golang.org/x/image/font/sfnt vs go-text/typesetting).
type Parser interface {
	// Parse parses font data (TTF or OTF) and returns a Font.
	Parse(data []byte) (Font, error)
}

// Names of the built-in parsers.
const (
	// ParserXImage parses with golang.org/x/image/font/sfnt.
	ParserXImage = "ximage"

	// ParserGoText parses with github.com/go-text/typesetting.
	ParserGoText = "gotext"

	// DefaultParser is the parser used when none is named.
	DefaultParser = ParserXImage
)

// registry holds registered font parsers.
var registry = struct {
	sync.RWMutex
	parsers map[string]Parser
}{
	parsers: map[string]Parser{
		ParserXImage: ximageParser{},
		ParserGoText: gotextParser{},
	},
}

// Register registers a custom font parser under name, replacing any parser
// already registered under that name.
func Register(name string, p Parser) {
	registry.Lock()
	defer registry.Unlock()
	registry.parsers[name] = p
}

// Lookup returns the parser registered under name.
// An empty name selects DefaultParser.
func Lookup(name string) (Parser, bool) {
	if name == "" {
		name = DefaultParser
	}
	registry.RLock()
	defer registry.RUnlock()
	p, ok := registry.parsers[name]
	return p, ok
}

// Names returns the names of all registered parsers in sorted order.
func Names() []string {
	registry.RLock()
	defer registry.RUnlock()
	names := make([]string, 0, len(registry.parsers))
	for name := range registry.parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse parses data with the parser registered under name.
func Parse(name string, data []byte) (Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	p, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, name)
	}
	return p.Parse(data)
}
