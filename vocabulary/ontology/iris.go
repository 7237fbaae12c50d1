package ontology

import "github.com/c360studio/semstreams/vocabulary"

// Namespace IRIs for the vocabularies the element table knows about.
const (
	RDF     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFS    = "http://www.w3.org/2000/01/rdf-schema#"
	OWL     = "http://www.w3.org/2002/07/owl#"
	DC      = "http://purl.org/dc/elements/1.1/"
	DCTerms = "http://purl.org/dc/terms/"
	SKOS    = "http://www.w3.org/2004/02/skos/core#"
	XSD     = "http://www.w3.org/2001/XMLSchema#"
)

// RDF and RDFS terms.
const (
	RDFType   = RDF + "type"
	RDFSLabel = RDFS + "label"
)

// OWL terms.
const (
	OWLOntology = OWL + "Ontology"

	// OWLClass and the four kinds below mark a subject as an ontology element.
	OWLClass              = OWL + "Class"
	OWLNamedIndividual    = OWL + "NamedIndividual"
	OWLObjectProperty     = OWL + "ObjectProperty"
	OWLDatatypeProperty   = OWL + "DatatypeProperty"
	OWLAnnotationProperty = OWL + "AnnotationProperty"

	OWLVersionIRI  = OWL + "versionIRI"
	OWLVersionInfo = OWL + "versionInfo"
)

// SKOS terms.
const (
	SKOSAltLabel   = vocabulary.SkosAltLabel
	SKOSDefinition = SKOS + "definition"
)

// Dublin Core terms (both the legacy 1.1 elements and DCMI terms).
const (
	DCTitle       = DC + "title"
	DCDescription = DC + "description"
	DCRights      = DC + "rights"

	DCTermsTitle        = vocabulary.DcTitle
	DCTermsDescription  = DCTerms + "description"
	DCTermsHasVersion   = DCTerms + "hasVersion"
	DCTermsLicense      = DCTerms + "license"
	DCTermsRights       = DCTerms + "rights"
	DCTermsAccessRights = DCTerms + "accessRights"
	DCTermsRightsHolder = DCTerms + "rightsHolder"
)

// XSDString is the datatype of plain literals.
const XSDString = XSD + "string"

// ElementTypes lists the rdf:type objects that qualify a subject as an
// ontology element.
var ElementTypes = []string{
	OWLClass,
	OWLNamedIndividual,
	OWLObjectProperty,
	OWLDatatypeProperty,
	OWLAnnotationProperty,
}

// PriorityColumns are the predicates placed first in the element table,
// in this order, when at least one element uses them.
var PriorityColumns = []string{
	RDFType,
	RDFSLabel,
	SKOSAltLabel,
	SKOSDefinition,
}
