package parser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"

	"github.com/c360studio/ontoview/store"
)

// NQuadsParser decodes line-based N-Triples and N-Quads documents. The two
// formats share a grammar; N-Triples lines simply carry no graph label.
type NQuadsParser struct {
	mimeType string
}

// NewNTriplesParser creates a parser registered for N-Triples.
func NewNTriplesParser() *NQuadsParser {
	return &NQuadsParser{mimeType: FormatNTriples}
}

// NewNQuadsParser creates a parser registered for N-Quads.
func NewNQuadsParser() *NQuadsParser {
	return &NQuadsParser{mimeType: FormatNQuads}
}

// MimeType returns the primary MIME type for this parser.
func (p *NQuadsParser) MimeType() string {
	return p.mimeType
}

// CanParse returns true if mimeType matches this parser.
func (p *NQuadsParser) CanParse(mimeType string) bool {
	return mimeType == p.mimeType
}

// Parse decodes text into a store. Quads without a label land in the
// default graph.
func (p *NQuadsParser) Parse(ctx context.Context, text string) (store.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Raw mode keeps typed literals in their lexical form.
	r := nquads.NewReader(strings.NewReader(text), true)

	m := store.NewMemory()
	for {
		q, err := r.ReadQuad()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		var t store.Triple
		if t.Subject, err = fromQuadValue(q.Subject); err != nil {
			return nil, err
		}
		if t.Predicate, err = fromQuadValue(q.Predicate); err != nil {
			return nil, err
		}
		if t.Object, err = fromQuadValue(q.Object); err != nil {
			return nil, err
		}
		if t.Graph, err = fromQuadValue(q.Label); err != nil {
			return nil, err
		}
		m.Add(t)
	}
	return m, nil
}

func fromQuadValue(v quad.Value) (store.Term, error) {
	switch v := v.(type) {
	case nil:
		return store.Term{}, nil
	case quad.IRI:
		return store.NewIRI(string(v)), nil
	case quad.BNode:
		return store.NewBlank(string(v)), nil
	case quad.String:
		return store.NewLiteral(string(v), "", ""), nil
	case quad.LangString:
		return store.NewLiteral(string(v.Value), v.Lang, ""), nil
	case quad.TypedString:
		return store.NewLiteral(string(v.Value), "", string(v.Type)), nil
	case quad.TypedStringer:
		ts := v.TypedString()
		return store.NewLiteral(string(ts.Value), "", string(ts.Type)), nil
	default:
		return store.Term{}, fmt.Errorf("unsupported value %T", v)
	}
}
