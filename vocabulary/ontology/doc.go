// Package ontology provides the IRIs and metadata-field predicates used to
// describe OWL ontology documents.
//
// The field table (Fields) drives metadata extraction: each field lists the
// candidate predicates in order of preference, most preferred first.
//
// Import this package to auto-register the metadata predicates:
//
//	import _ "github.com/c360studio/ontoview/vocabulary/ontology"
package ontology
