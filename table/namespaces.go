package table

import (
	"strings"

	vocab "github.com/c360studio/ontoview/vocabulary/ontology"
)

// Namespace maps a namespace IRI to its short prefix label.
type Namespace struct {
	Prefix string
	IRI    string
}

// Namespaces is an ordered namespace registry. The first namespace an IRI
// starts with wins.
type Namespaces []Namespace

// DefaultNamespaces is the fixed registry used for display and ordering.
var DefaultNamespaces = Namespaces{
	{Prefix: "rdf", IRI: vocab.RDF},
	{Prefix: "rdfs", IRI: vocab.RDFS},
	{Prefix: "owl", IRI: vocab.OWL},
	{Prefix: "dc", IRI: vocab.DC},
	{Prefix: "dcterms", IRI: vocab.DCTerms},
	{Prefix: "skos", IRI: vocab.SKOS},
}

// Shorten returns the CURIE form of iri, or iri unchanged when no namespace
// matches.
func (ns Namespaces) Shorten(iri string) string {
	for _, n := range ns {
		if strings.HasPrefix(iri, n.IRI) {
			return n.Prefix + ":" + iri[len(n.IRI):]
		}
	}
	return iri
}

// Shorten applies DefaultNamespaces.
func Shorten(iri string) string {
	return DefaultNamespaces.Shorten(iri)
}
