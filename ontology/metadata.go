package ontology

import (
	"github.com/c360studio/ontoview/store"
	vocab "github.com/c360studio/ontoview/vocabulary/ontology"
)

// Metadata holds the ontology-level fields of one document. A nil field
// means no value was found.
type Metadata struct {
	OntologyIRI  *string `json:"ontology_iri" yaml:"ontology_iri"`
	OntologyName *string `json:"ontology_name" yaml:"ontology_name"`
	VersionIRI   *string `json:"version_iri" yaml:"version_iri"`
	VersionInfo  *string `json:"version_info" yaml:"version_info"`
	Description  *string `json:"description" yaml:"description"`
	License      *string `json:"license" yaml:"license"`
	RightsHolder *string `json:"rights_holder" yaml:"rights_holder"`
}

// Get returns the value of the field with the given registry name.
func (m Metadata) Get(field string) *string {
	switch field {
	case vocab.FieldIRI:
		return m.OntologyIRI
	case vocab.FieldName:
		return m.OntologyName
	case vocab.FieldVersionIRI:
		return m.VersionIRI
	case vocab.FieldVersionInfo:
		return m.VersionInfo
	case vocab.FieldDescription:
		return m.Description
	case vocab.FieldLicense:
		return m.License
	case vocab.FieldRightsHolder:
		return m.RightsHolder
	default:
		return nil
	}
}

func (m *Metadata) set(field string, v *string) {
	switch field {
	case vocab.FieldIRI:
		m.OntologyIRI = v
	case vocab.FieldName:
		m.OntologyName = v
	case vocab.FieldVersionIRI:
		m.VersionIRI = v
	case vocab.FieldVersionInfo:
		m.VersionInfo = v
	case vocab.FieldDescription:
		m.Description = v
	case vocab.FieldLicense:
		m.License = v
	case vocab.FieldRightsHolder:
		m.RightsHolder = v
	}
}

// FindOntologySubject returns the subject of the first (s, rdf:type,
// owl:Ontology) triple in store order. Later ontology subjects are ignored.
func FindOntologySubject(s store.Store) (store.Term, bool) {
	typ := store.NewIRI(vocab.RDFType)
	obj := store.NewIRI(vocab.OWLOntology)
	matches := s.Match(store.Pattern{Predicate: &typ, Object: &obj})
	if len(matches) == 0 {
		return store.Term{}, false
	}
	return matches[0].Subject, true
}

// ExtractMetadata resolves every field in vocab.Fields for the ontology
// subject. Without an ontology subject all fields are nil.
func ExtractMetadata(s store.Store) Metadata {
	var m Metadata
	subject, ok := FindOntologySubject(s)
	if !ok {
		return m
	}
	for _, f := range vocab.Fields {
		var (
			v     string
			found bool
		)
		switch f.Getter {
		case vocab.GetterSubject:
			v, found = subject.Value, true
		case vocab.GetterLiteral:
			v, found = LiteralValue(s, subject, f.Predicates)
		case vocab.GetterIRI:
			v, found = IRIValue(s, subject, f.Predicates)
		}
		if found {
			m.set(f.Name, &v)
		}
	}
	return m
}
