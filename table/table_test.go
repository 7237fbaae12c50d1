package table_test

import (
	"testing"

	"github.com/c360studio/ontoview/store"
	"github.com/c360studio/ontoview/table"
	vocab "github.com/c360studio/ontoview/vocabulary/ontology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ex = "http://example.org/"

func iri(s string) store.Term { return store.NewIRI(s) }

func tr(s string, p string, o store.Term) store.Triple {
	return store.Triple{Subject: iri(s), Predicate: iri(p), Object: o}
}

func TestShorten(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{vocab.RDFType, "rdf:type"},
		{vocab.RDFSLabel, "rdfs:label"},
		{vocab.OWLClass, "owl:Class"},
		{vocab.DCTitle, "dc:title"},
		{vocab.DCTermsTitle, "dcterms:title"},
		{vocab.SKOSDefinition, "skos:definition"},
		{ex + "custom", ex + "custom"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Shorten(tt.in))
		})
	}
}

func TestBuild_SingleClass(t *testing.T) {
	s := store.NewMemory(
		tr(ex+"ClassA", vocab.RDFType, iri(vocab.OWLClass)),
		tr(ex+"ClassA", vocab.RDFSLabel, store.NewLiteral("Class A", "en", "")),
	)

	m := table.Build(s)

	require.NotEmpty(t, m.Headers)
	assert.Equal(t, "iri", m.Headers[0])
	assert.Contains(t, m.Headers, "rdf:type")
	assert.Contains(t, m.Headers, "rdfs:label")
	assert.Len(t, m.Predicates, len(m.Headers))
	assert.Equal(t, "", m.Predicates[0])

	require.Len(t, m.Rows, 1)
	assert.Equal(t, ex+"ClassA", m.Rows[0]["iri"])
	assert.Equal(t, "Class A", m.Rows[0][vocab.RDFSLabel])
	assert.Equal(t, vocab.OWLClass, m.Rows[0][vocab.RDFType])
}

func TestBuild_ColumnOrder(t *testing.T) {
	s := store.NewMemory(
		tr(ex+"A", ex+"zzz", store.NewLiteral("z", "", "")),
		tr(ex+"A", vocab.SKOSDefinition, store.NewLiteral("def", "", "")),
		tr(ex+"A", vocab.DCTermsTitle, store.NewLiteral("t", "", "")),
		tr(ex+"A", vocab.RDFSLabel, store.NewLiteral("A", "", "")),
		tr(ex+"A", vocab.RDFS+"comment", store.NewLiteral("c", "", "")),
		tr(ex+"A", vocab.RDFType, iri(vocab.OWLClass)),
	)

	m := table.Build(s)

	assert.Equal(t, []string{
		"iri",
		"rdf:type",
		"rdfs:label",
		"skos:definition",
		"dcterms:title",
		ex + "zzz",
		"rdfs:comment",
	}, m.Headers)
}

func TestBuild_DeduplicatesAndJoinsValues(t *testing.T) {
	s := store.NewMemory(
		tr(ex+"P", vocab.RDFType, iri(vocab.OWLObjectProperty)),
		tr(ex+"P", vocab.RDFType, iri(vocab.OWLObjectProperty)),
		tr(ex+"P", vocab.SKOSAltLabel, store.NewLiteral("one", "", "")),
		tr(ex+"P", vocab.SKOSAltLabel, store.NewLiteral("two", "", "")),
		tr(ex+"P", vocab.SKOSAltLabel, store.NewLiteral("one", "fr", "")),
		tr(ex+"Q", vocab.RDFType, iri(vocab.OWLDatatypeProperty)),
	)

	m := table.Build(s)

	require.Len(t, m.Rows, 2)
	assert.Equal(t, vocab.OWLObjectProperty, m.Rows[0][vocab.RDFType])
	assert.Equal(t, "one; two", m.Rows[0][vocab.SKOSAltLabel])
	assert.Equal(t, "", m.Rows[1][vocab.SKOSAltLabel])
}

func TestBuild_ExcludesBlankNodes(t *testing.T) {
	s := store.NewMemory(
		store.Triple{Subject: store.NewBlank("b0"), Predicate: iri(vocab.RDFType), Object: iri(vocab.OWLClass)},
		store.Triple{Subject: store.NewBlank("b0"), Predicate: iri(vocab.RDFSLabel), Object: store.NewLiteral("anon", "", "")},
		tr(ex+"A", vocab.RDFType, iri(vocab.OWLClass)),
		tr(ex+"A", ex+"restriction", store.NewBlank("b1")),
	)

	m := table.Build(s)

	require.Len(t, m.Rows, 1)
	assert.Equal(t, ex+"A", m.Rows[0]["iri"])
	assert.NotContains(t, m.Headers, ex+"restriction")
	assert.NotContains(t, m.Headers, "rdfs:label", "labels only used by blank subjects are not columns")
	for _, row := range m.Rows {
		for _, v := range row {
			assert.NotContains(t, v, "b0")
			assert.NotContains(t, v, "b1")
		}
	}
}

func TestBuild_ExcludesUninterestingTypes(t *testing.T) {
	s := store.NewMemory(
		tr(ex+"thing", vocab.RDFType, iri(ex+"CustomType")),
		tr(ex+"thing", vocab.RDFSLabel, store.NewLiteral("Thing", "", "")),
		tr(ex+"onto", vocab.RDFType, iri(vocab.OWLOntology)),
		tr(ex+"Ind", vocab.RDFType, iri(vocab.OWLNamedIndividual)),
		tr(ex+"Ann", vocab.RDFType, iri(vocab.OWLAnnotationProperty)),
	)

	m := table.Build(s)

	require.Len(t, m.Rows, 2)
	assert.Equal(t, ex+"Ind", m.Rows[0]["iri"])
	assert.Equal(t, ex+"Ann", m.Rows[1]["iri"])
	assert.NotContains(t, m.Headers, "rdfs:label")
}

func TestBuild_Idempotent(t *testing.T) {
	s := store.NewMemory(
		tr(ex+"B", vocab.RDFType, iri(vocab.OWLClass)),
		tr(ex+"B", ex+"p2", store.NewLiteral("x", "", "")),
		tr(ex+"A", vocab.RDFType, iri(vocab.OWLClass)),
		tr(ex+"A", ex+"p1", store.NewLiteral("y", "", "")),
		tr(ex+"A", ex+"p3", store.NewLiteral("z", "", "")),
	)

	first := table.Build(s)
	second := table.Build(s)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"iri", "rdf:type", ex + "p1", ex + "p2", ex + "p3"}, first.Headers)
	assert.Equal(t, ex+"B", first.Rows[0]["iri"])
}

func TestIsElement(t *testing.T) {
	s := store.NewMemory(
		tr(ex+"A", vocab.RDFType, iri(vocab.OWLClass)),
		tr(ex+"B", vocab.RDFType, store.NewLiteral(vocab.OWLClass, "", "")),
	)
	assert.True(t, table.IsElement(s, iri(ex+"A")))
	assert.False(t, table.IsElement(s, iri(ex+"B")), "literal type objects do not count")
	assert.False(t, table.IsElement(s, store.NewBlank("A")))
}

func TestModel_Value(t *testing.T) {
	s := store.NewMemory(
		tr(ex+"A", vocab.RDFType, iri(vocab.OWLClass)),
		tr(ex+"A", vocab.RDFSLabel, store.NewLiteral("A", "", "")),
	)
	m := table.Build(s)
	require.Len(t, m.Rows, 1)

	assert.Equal(t, ex+"A", m.Value(m.Rows[0], 0))
	assert.Equal(t, "A", m.Value(m.Rows[0], 2))
	assert.Equal(t, "", m.Value(m.Rows[0], 9))
	assert.Equal(t, []string{"iri", vocab.RDFType, vocab.RDFSLabel}, m.Keys())
}
