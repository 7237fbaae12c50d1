package export_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/ontoview/export"
	"github.com/c360studio/ontoview/ontology"
	"github.com/c360studio/ontoview/store"
	"github.com/c360studio/ontoview/table"
	vocab "github.com/c360studio/ontoview/vocabulary/ontology"
)

func strPtr(s string) *string { return &s }

func sampleModel() *table.Model {
	return &table.Model{
		Headers:    []string{"iri", "rdf:type", "rdfs:label"},
		Predicates: []string{"", vocab.RDFType, vocab.RDFSLabel},
		Rows: []table.Row{
			{"iri": "http://example.org/A", vocab.RDFType: "owl:Class", vocab.RDFSLabel: "Plain"},
			{"iri": "http://example.org/B", vocab.RDFType: "owl:Class", vocab.RDFSLabel: `Say "hi", then leave`},
			{"iri": "http://example.org/C", vocab.RDFType: "owl:Class"},
			{"iri": "http://example.org/D", vocab.RDFType: "owl:Class", vocab.RDFSLabel: "two\nlines"},
		},
	}
}

func TestCSV(t *testing.T) {
	want := "iri,rdf:type,rdfs:label\n" +
		"http://example.org/A,owl:Class,Plain\n" +
		"http://example.org/B,owl:Class,\"Say \"\"hi\"\", then leave\"\n" +
		"http://example.org/C,owl:Class,\n" +
		"http://example.org/D,owl:Class,\"two\nlines\"\n"

	assert.Equal(t, want, export.CSV(sampleModel()))
}

func TestCSV_EmptyModel(t *testing.T) {
	m := &table.Model{Headers: []string{"iri"}, Predicates: []string{""}}
	assert.Equal(t, "iri\n", export.CSV(m))
}

func TestWriteCSV_Rows(t *testing.T) {
	m := sampleModel()
	rows := table.FilterAndSort(m, "plain", table.NoColumn, table.DirectionAsc)

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, m, rows))
	assert.Equal(t, "iri,rdf:type,rdfs:label\nhttp://example.org/A,owl:Class,Plain\n", buf.String())
}

func TestCSV_QuotesCarriageReturnAndLeavesSpaces(t *testing.T) {
	m := &table.Model{
		Headers:    []string{"iri"},
		Predicates: []string{""},
		Rows:       []table.Row{{"iri": " padded "}, {"iri": "a\rb"}},
	}
	assert.Equal(t, "iri\n padded \n\"a\rb\"\n", export.CSV(m))
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name string
		meta ontology.Metadata
		want string
	}{
		{"from name", ontology.Metadata{OntologyName: strPtr("pizza ontology")}, "PizzaOntology-elements.csv"},
		{"from iri", ontology.Metadata{OntologyIRI: strPtr("http://example.org/wine")}, "HttpExampleOrgWine-elements.csv"},
		{"fallback", ontology.Metadata{}, "Ontology-elements.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, export.FileName(tt.meta, ".csv"))
		})
	}
}

func TestParseReportFormat(t *testing.T) {
	f, err := export.ParseReportFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, export.ReportYAML, f)
	assert.Equal(t, ".yaml", f.Extension())
	assert.Equal(t, ".json", export.ReportJSON.Extension())

	_, err = export.ParseReportFormat("xml")
	assert.Error(t, err)
}

func TestWriteReport(t *testing.T) {
	meta := ontology.Metadata{OntologyIRI: strPtr("http://example.org/onto"), OntologyName: strPtr("Onto")}
	reports := []export.Report{export.NewReport("onto.ttl", "text/turtle", meta, sampleModel(), 12)}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, export.WriteReport(&buf, reports, export.ReportJSON))

		var decoded []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded, 1)
		assert.Equal(t, "onto.ttl", decoded[0]["filename"])
		assert.EqualValues(t, 12, decoded[0]["triple_count"])
		assert.EqualValues(t, 4, decoded[0]["element_count"])

		md := decoded[0]["metadata"].(map[string]any)
		assert.Equal(t, "Onto", md["ontology_name"])
		assert.Nil(t, md["license"])
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, export.WriteReport(&buf, reports, export.ReportYAML))

		var decoded []export.Report
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded, 1)
		assert.Equal(t, []string{"iri", "rdf:type", "rdfs:label"}, decoded[0].Headers)
		require.NotNil(t, decoded[0].Metadata.OntologyIRI)
		assert.Equal(t, "http://example.org/onto", *decoded[0].Metadata.OntologyIRI)
	})

	t.Run("unknown", func(t *testing.T) {
		assert.Error(t, export.WriteReport(&bytes.Buffer{}, reports, "xml"))
	})
}

func TestNewReport_NilModel(t *testing.T) {
	r := export.NewReport("bad.ttl", "text/turtle", ontology.Metadata{}, nil, 0)
	assert.Zero(t, r.ElementCount)
	assert.Empty(t, r.Headers)
}

func TestNTriplesWriter(t *testing.T) {
	s := store.NewMemory(
		store.Triple{
			Subject:   store.NewIRI("http://example.org/a"),
			Predicate: store.NewIRI(vocab.RDFSLabel),
			Object:    store.NewLiteral("say \"hi\"\n", "en", ""),
		},
		store.Triple{
			Subject:   store.NewBlank("b0"),
			Predicate: store.NewIRI("http://example.org/n"),
			Object:    store.NewLiteral("3", "", "http://www.w3.org/2001/XMLSchema#integer"),
			Graph:     store.NewIRI("http://example.org/g"),
		},
		store.Triple{
			Subject:   store.NewIRI("http://example.org/a"),
			Predicate: store.NewIRI("http://example.org/s"),
			Object:    store.NewLiteral("plain", "", vocab.XSDString),
		},
	)

	w := export.NewNTriplesWriter()
	w.WriteStore(s)

	lines := strings.Split(strings.TrimSuffix(w.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `<http://example.org/a> <http://www.w3.org/2000/01/rdf-schema#label> "say \"hi\"\n"@en .`, lines[0])
	assert.Equal(t, `_:b0 <http://example.org/n> "3"^^<http://www.w3.org/2001/XMLSchema#integer> <http://example.org/g> .`, lines[1])
	assert.Equal(t, `<http://example.org/a> <http://example.org/s> "plain" .`, lines[2])
	assert.Equal(t, 3, w.Count())
}
