// Package parser turns RDF text into a triple store. Each supported
// serialization is backed by a third-party decoder.
package parser

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/c360studio/ontoview/store"
)

// Parser defines the interface for RDF parsers.
type Parser interface {
	// Parse decodes text into a store. Errors are decoder errors, unwrapped.
	Parse(ctx context.Context, text string) (store.Store, error)

	// CanParse returns true if this parser handles the given MIME type.
	CanParse(mimeType string) bool

	// MimeType returns the primary MIME type for this parser.
	MimeType() string
}

// Registry manages RDF parsers keyed by MIME type.
type Registry struct {
	mu      sync.RWMutex
	parsers map[string]Parser
}

// DefaultRegistry is the global parser registry with default parsers.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a new parser registry with default parsers.
func NewRegistry() *Registry {
	r := &Registry{
		parsers: make(map[string]Parser),
	}

	r.Register(NewTurtleParser())
	r.Register(NewNTriplesParser())
	r.Register(NewNQuadsParser())
	r.Register(NewTriGParser())

	return r
}

// Register adds a parser to the registry, replacing any parser with the
// same primary MIME type.
func (r *Registry) Register(p Parser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parsers[p.MimeType()] = p
}

// GetByMimeType returns a parser for the given MIME type, or nil.
func (r *Registry) GetByMimeType(mimeType string) Parser {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.parsers[mimeType]; ok {
		return p
	}

	for _, p := range r.parsers {
		if p.CanParse(mimeType) {
			return p
		}
	}

	return nil
}

// GetByFilename returns the parser for a file based on its extension.
func (r *Registry) GetByFilename(filename string) Parser {
	return r.GetByMimeType(DetectFormat(filename))
}

// Parse decodes text in the given format. Any failure is a *ParseError.
func (r *Registry) Parse(ctx context.Context, mimeType, text string) (store.Store, error) {
	return r.parse(ctx, "", mimeType, text)
}

// ParseFile detects the format of filename and decodes text. It returns the
// store and the detected MIME type. Any failure is a *ParseError.
func (r *Registry) ParseFile(ctx context.Context, filename, text string) (store.Store, string, error) {
	mimeType := DetectFormat(filename)
	s, err := r.parse(ctx, filename, mimeType, text)
	return s, mimeType, err
}

func (r *Registry) parse(ctx context.Context, filename, mimeType, text string) (store.Store, error) {
	p := r.GetByMimeType(mimeType)
	if p == nil {
		return nil, &ParseError{
			Filename: filename,
			Format:   mimeType,
			Err:      fmt.Errorf("%w: %s", ErrUnsupportedFormat, mimeType),
		}
	}
	s, err := p.Parse(ctx, text)
	if err != nil {
		return nil, &ParseError{Filename: filename, Format: mimeType, Err: err}
	}
	return s, nil
}

// ListMimeTypes returns all registered MIME types, sorted.
func (r *Registry) ListMimeTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.parsers))
	for t := range r.parsers {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
