package export

import (
	"github.com/c360studio/ontoview/ontology"
)

// ElementsSuffix is appended to the identifier of exported element tables.
const ElementsSuffix = "-elements"

// FileName derives an export file name from the ontology name, falling back
// to the ontology IRI. ext includes the dot.
func FileName(meta ontology.Metadata, ext string) string {
	var name string
	switch {
	case meta.OntologyName != nil:
		name = *meta.OntologyName
	case meta.OntologyIRI != nil:
		name = *meta.OntologyIRI
	}
	return ontology.ToIdentifier(name) + ElementsSuffix + ext
}
