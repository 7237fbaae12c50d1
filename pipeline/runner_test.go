package pipeline_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontoview/metric"
	"github.com/c360studio/ontoview/pipeline"
	"github.com/c360studio/ontoview/source"
	"github.com/c360studio/ontoview/source/parser"
)

const pizza = `@prefix owl: <http://www.w3.org/2002/07/owl#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix dcterms: <http://purl.org/dc/terms/> .
@prefix ex: <http://example.org/pizza#> .

<http://example.org/pizza> a owl:Ontology ;
    dcterms:title "Pizza Ontology"@en ;
    owl:versionInfo "1.0" .

ex:Pizza a owl:Class ;
    rdfs:label "Pizza"@en .

ex:hasTopping a owl:ObjectProperty ;
    rdfs:domain ex:Pizza .
`

func newRunner(m *metric.Metrics) *pipeline.Runner {
	return pipeline.NewRunner(
		pipeline.WithRegistry(parser.NewRegistry()),
		pipeline.WithMetrics(m),
		pipeline.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func TestRunner_Process(t *testing.T) {
	res := newRunner(nil).Process(context.Background(), source.NewDocument("pizza.ttl", []byte(pizza)))

	require.NoError(t, res.Err)
	assert.True(t, res.OK())
	_, err := uuid.Parse(res.DocumentID)
	assert.NoError(t, err)
	assert.Equal(t, parser.FormatTurtle, res.Format)
	assert.Equal(t, 7, res.TripleCount)

	require.NotNil(t, res.Metadata.OntologyIRI)
	assert.Equal(t, "http://example.org/pizza", *res.Metadata.OntologyIRI)
	require.NotNil(t, res.Metadata.OntologyName)
	assert.Equal(t, "Pizza Ontology", *res.Metadata.OntologyName)
	require.NotNil(t, res.Metadata.VersionInfo)
	assert.Equal(t, "1.0", *res.Metadata.VersionInfo)
	assert.Nil(t, res.Metadata.License)

	require.NotNil(t, res.Table)
	require.Len(t, res.Table.Rows, 2)
	assert.Equal(t, []string{"iri", "rdf:type", "rdfs:label", "rdfs:domain"}, res.Table.Headers)
}

func TestRunner_RunContinuesAfterFailure(t *testing.T) {
	m := metric.NewMetrics()
	docs := []source.Document{
		source.NewDocument("broken.ttl", []byte("<http://example.org/a> <http://example.org/b> .")),
		source.NewDocument("pizza.ttl", []byte(pizza)),
	}

	results, err := newRunner(m).Run(context.Background(), docs)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Error(t, results[0].Err)
	assert.True(t, parser.IsParseError(results[0].Err))
	assert.Nil(t, results[0].Table)

	assert.NoError(t, results[1].Err)
	assert.NotEqual(t, results[0].DocumentID, results[1].DocumentID)
	assert.Equal(t, 1, pipeline.Failed(results))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DocumentsProcessed.WithLabelValues(parser.FormatTurtle, metric.StatusFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DocumentsProcessed.WithLabelValues(parser.FormatTurtle, metric.StatusOK)))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.TriplesIngested.WithLabelValues(parser.FormatTurtle)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ElementsProjected))
}

func TestRunner_RunStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := newRunner(nil).Run(ctx, []source.Document{source.NewDocument("pizza.ttl", []byte(pizza))})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestRunner_ProcessIgnoresCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := newRunner(nil).Process(ctx, source.NewDocument("pizza.ttl", []byte(pizza)))
	assert.NoError(t, res.Err)
}

func TestRunner_EmptyDocument(t *testing.T) {
	res := newRunner(nil).Process(context.Background(), source.NewDocument("empty.nt", nil))

	require.NoError(t, res.Err)
	assert.Equal(t, parser.FormatNTriples, res.Format)
	assert.Zero(t, res.TripleCount)
	assert.Nil(t, res.Metadata.OntologyIRI)
	assert.Equal(t, []string{"iri"}, res.Table.Headers)
	assert.Empty(t, res.Table.Rows)
}
