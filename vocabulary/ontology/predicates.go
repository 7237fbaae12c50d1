package ontology

import "github.com/c360studio/semstreams/vocabulary"

// Metadata field predicates. These are the dotted registry names of the
// ontology-level metadata fields.
const (
	// FieldIRI is the ontology subject itself.
	FieldIRI = "ontology.meta.iri"

	// FieldName is the human-readable ontology name.
	FieldName = "ontology.meta.name"

	// FieldVersionIRI identifies this version of the ontology.
	FieldVersionIRI = "ontology.meta.version_iri"

	// FieldVersionInfo is the free-text version annotation.
	FieldVersionInfo = "ontology.meta.version_info"

	// FieldDescription describes the ontology.
	FieldDescription = "ontology.meta.description"

	// FieldLicense references the license document.
	FieldLicense = "ontology.meta.license"

	// FieldRightsHolder names the rights holder.
	FieldRightsHolder = "ontology.meta.rights_holder"
)

// Getter selects how a field value is resolved from candidate objects.
type Getter int

const (
	// GetterSubject uses the ontology subject IRI itself.
	GetterSubject Getter = iota
	// GetterLiteral picks the best literal under the language preference.
	GetterLiteral
	// GetterIRI takes the first IRI object.
	GetterIRI
)

// Field describes one ontology metadata field.
type Field struct {
	// Name is the dotted registry name.
	Name string

	// Getter is the resolution strategy.
	Getter Getter

	// Predicates are the candidate predicates, most preferred first.
	Predicates []string

	// Description is the registry description.
	Description string
}

// Fields is the metadata field table in display order.
var Fields = []Field{
	{
		Name:        FieldIRI,
		Getter:      GetterSubject,
		Description: "Ontology IRI (subject typed owl:Ontology)",
	},
	{
		Name:        FieldName,
		Getter:      GetterLiteral,
		Predicates:  []string{RDFSLabel, DCTermsTitle, DCTitle},
		Description: "Ontology name",
	},
	{
		Name:        FieldVersionIRI,
		Getter:      GetterIRI,
		Predicates:  []string{OWLVersionIRI, DCTermsHasVersion},
		Description: "Ontology version IRI",
	},
	{
		Name:        FieldVersionInfo,
		Getter:      GetterLiteral,
		Predicates:  []string{OWLVersionInfo, DCTermsHasVersion},
		Description: "Ontology version annotation",
	},
	{
		Name:        FieldDescription,
		Getter:      GetterLiteral,
		Predicates:  []string{SKOSDefinition, DCTermsDescription, DCDescription},
		Description: "Ontology description",
	},
	{
		Name:        FieldLicense,
		Getter:      GetterIRI,
		Predicates:  []string{DCTermsLicense, DCTermsRights, DCRights, DCTermsAccessRights},
		Description: "License or rights statement IRI",
	},
	{
		Name:        FieldRightsHolder,
		Getter:      GetterLiteral,
		Predicates:  []string{DCTermsRightsHolder},
		Description: "Rights holder",
	},
}

// FieldByName returns the field with the given registry name.
func FieldByName(name string) (Field, bool) {
	for _, f := range Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func init() {
	for _, f := range Fields {
		dataType := "string"
		if f.Getter != GetterLiteral {
			dataType = "iri"
		}
		opts := []vocabulary.Option{
			vocabulary.WithDescription(f.Description),
			vocabulary.WithDataType(dataType),
		}
		if len(f.Predicates) > 0 {
			opts = append(opts, vocabulary.WithIRI(f.Predicates[0]))
		}
		vocabulary.Register(f.Name, opts...)
	}
}
