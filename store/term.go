// Package store provides the RDF term and triple model and an in-memory
// triple store with wildcard pattern lookup.
package store

import (
	"fmt"
	"strings"
)

// Kind discriminates the three RDF term kinds.
type Kind int

// Term kinds. The zero Kind marks the zero Term, which stands for the
// default graph when used in the graph position.
const (
	KindIRI Kind = iota + 1
	KindBlank
	KindLiteral
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindIRI:
		return "iri"
	case KindBlank:
		return "blank"
	case KindLiteral:
		return "literal"
	default:
		return "none"
	}
}

// Term is an RDF term. Terms are comparable and can be used as map keys.
type Term struct {
	Kind Kind

	// Value is the IRI string, the blank node label (without "_:"), or the
	// lexical form of a literal.
	Value string

	// Language is the language tag of a literal, if any.
	Language string

	// Datatype is the datatype IRI of a literal, if any.
	Datatype string
}

// NewIRI returns an IRI term.
func NewIRI(iri string) Term {
	return Term{Kind: KindIRI, Value: iri}
}

// NewBlank returns a blank node term. A leading "_:" is stripped.
func NewBlank(label string) Term {
	return Term{Kind: KindBlank, Value: strings.TrimPrefix(label, "_:")}
}

// NewLiteral returns a literal term.
func NewLiteral(value, language, datatype string) Term {
	return Term{Kind: KindLiteral, Value: value, Language: language, Datatype: datatype}
}

// IsZero reports whether t is the zero Term (the default graph).
func (t Term) IsZero() bool { return t.Kind == 0 }

// IsIRI reports whether t is an IRI.
func (t Term) IsIRI() bool { return t.Kind == KindIRI }

// IsBlank reports whether t is a blank node.
func (t Term) IsBlank() bool { return t.Kind == KindBlank }

// IsLiteral reports whether t is a literal.
func (t Term) IsLiteral() bool { return t.Kind == KindLiteral }

// String returns an N-Triples style rendering, useful in logs and test failures.
func (t Term) String() string {
	switch t.Kind {
	case KindIRI:
		return "<" + t.Value + ">"
	case KindBlank:
		return "_:" + t.Value
	case KindLiteral:
		s := fmt.Sprintf("%q", t.Value)
		if t.Language != "" {
			return s + "@" + t.Language
		}
		if t.Datatype != "" {
			return s + "^^<" + t.Datatype + ">"
		}
		return s
	default:
		return ""
	}
}
