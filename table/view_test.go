package table_test

import (
	"testing"

	"github.com/c360studio/ontoview/store"
	"github.com/c360studio/ontoview/table"
	vocab "github.com/c360studio/ontoview/vocabulary/ontology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewModel() *table.Model {
	s := store.NewMemory(
		tr(ex+"b", vocab.RDFType, iri(vocab.OWLClass)),
		tr(ex+"b", vocab.RDFSLabel, store.NewLiteral("Bravo", "", "")),
		tr(ex+"c", vocab.RDFType, iri(vocab.OWLClass)),
		tr(ex+"c", vocab.RDFSLabel, store.NewLiteral("alpha", "", "")),
		tr(ex+"a", vocab.RDFType, iri(vocab.OWLObjectProperty)),
		tr(ex+"a", vocab.RDFSLabel, store.NewLiteral("Charlie unique", "", "")),
	)
	return table.Build(s)
}

func iris(rows []table.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r["iri"]
	}
	return out
}

func TestFilterAndSort_Passthrough(t *testing.T) {
	m := viewModel()
	got := table.FilterAndSort(m, "", table.NoColumn, table.DirectionAsc)
	assert.Equal(t, m.Rows, got)
}

func TestFilterAndSort_Filter(t *testing.T) {
	m := viewModel()

	t.Run("unique substring", func(t *testing.T) {
		got := table.FilterAndSort(m, "UNIQUE", table.NoColumn, table.DirectionAsc)
		require.Len(t, got, 1)
		assert.Equal(t, ex+"a", got[0]["iri"])
	})

	t.Run("matches any field", func(t *testing.T) {
		got := table.FilterAndSort(m, "objectproperty", table.NoColumn, table.DirectionAsc)
		assert.Equal(t, []string{ex + "a"}, iris(got))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, table.FilterAndSort(m, "zulu", table.NoColumn, table.DirectionAsc))
	})
}

func TestFilterAndSort_SortByIRI(t *testing.T) {
	m := viewModel()

	asc := table.FilterAndSort(m, "", 0, table.DirectionAsc)
	assert.Equal(t, []string{ex + "a", ex + "b", ex + "c"}, iris(asc))

	desc := table.FilterAndSort(m, "", 0, table.DirectionDesc)
	assert.Equal(t, []string{ex + "c", ex + "b", ex + "a"}, iris(desc))
}

func TestFilterAndSort_SortByPredicateColumn(t *testing.T) {
	m := viewModel()
	require.Equal(t, "rdfs:label", m.Headers[2])

	got := table.FilterAndSort(m, "", 2, table.DirectionAsc)
	// Collation orders "alpha" before "Bravo" regardless of case.
	assert.Equal(t, []string{ex + "c", ex + "b", ex + "a"}, iris(got))
}

func TestFilterAndSort_OutOfRangeColumn(t *testing.T) {
	m := viewModel()
	for _, col := range []int{-5, len(m.Headers), 99} {
		got := table.FilterAndSort(m, "", col, table.DirectionDesc)
		assert.Equal(t, iris(m.Rows), iris(got))
	}
}

func TestFilterAndSort_DoesNotMutateModel(t *testing.T) {
	m := viewModel()
	before := iris(m.Rows)

	_ = table.FilterAndSort(m, "", 0, table.DirectionDesc)
	_ = table.FilterAndSort(m, "a", 1, table.DirectionAsc)

	assert.Equal(t, before, iris(m.Rows))
}

func TestParseDirection(t *testing.T) {
	assert.Equal(t, table.DirectionDesc, table.ParseDirection("DESC"))
	assert.Equal(t, table.DirectionAsc, table.ParseDirection("asc"))
	assert.Equal(t, table.DirectionAsc, table.ParseDirection("sideways"))
}
