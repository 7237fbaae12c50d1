package parser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/knakk/rdf"

	"github.com/c360studio/ontoview/store"
)

// TurtleParser decodes Turtle documents.
type TurtleParser struct{}

// NewTurtleParser creates a new Turtle parser.
func NewTurtleParser() *TurtleParser {
	return &TurtleParser{}
}

// MimeType returns the primary MIME type for Turtle.
func (p *TurtleParser) MimeType() string {
	return FormatTurtle
}

// CanParse returns true for Turtle and N3 MIME types.
func (p *TurtleParser) CanParse(mimeType string) bool {
	switch mimeType {
	case FormatTurtle, "text/n3", "application/x-turtle":
		return true
	}
	return false
}

// Parse decodes text into a store holding default-graph triples.
func (p *TurtleParser) Parse(ctx context.Context, text string) (store.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	triples, err := decodeTurtle(text)
	if err != nil {
		return nil, err
	}
	return store.NewMemory(triples...), nil
}

func decodeTurtle(text string) ([]store.Triple, error) {
	dec := rdf.NewTripleDecoder(strings.NewReader(text), rdf.Turtle)

	var triples []store.Triple
	for {
		t, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		subj, err := fromRDFTerm(t.Subj)
		if err != nil {
			return nil, err
		}
		pred, err := fromRDFTerm(t.Pred)
		if err != nil {
			return nil, err
		}
		obj, err := fromRDFTerm(t.Obj)
		if err != nil {
			return nil, err
		}

		triples = append(triples, store.Triple{
			Subject:   subj,
			Predicate: pred,
			Object:    obj,
		})
	}
	return triples, nil
}

func fromRDFTerm(t rdf.Term) (store.Term, error) {
	switch v := t.(type) {
	case rdf.IRI:
		return store.NewIRI(v.String()), nil
	case rdf.Blank:
		return store.NewBlank(strings.TrimPrefix(v.String(), "_:")), nil
	case rdf.Literal:
		if v.Lang() != "" {
			return store.NewLiteral(v.String(), v.Lang(), ""), nil
		}
		return store.NewLiteral(v.String(), "", v.DataType.String()), nil
	default:
		return store.Term{}, fmt.Errorf("unsupported term %T", t)
	}
}
