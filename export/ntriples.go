package export

import (
	"strings"

	"github.com/c360studio/ontoview/store"
	vocab "github.com/c360studio/ontoview/vocabulary/ontology"
)

// NTriplesWriter writes RDF in N-Triples format. Triples with a named
// graph are written as N-Quads lines.
type NTriplesWriter struct {
	sb strings.Builder
	n  int
}

// NewNTriplesWriter creates a new N-Triples writer.
func NewNTriplesWriter() *NTriplesWriter {
	return &NTriplesWriter{}
}

// WriteTriple writes a single triple.
func (w *NTriplesWriter) WriteTriple(t store.Triple) {
	w.sb.WriteString(FormatTerm(t.Subject))
	w.sb.WriteByte(' ')
	w.sb.WriteString(FormatTerm(t.Predicate))
	w.sb.WriteByte(' ')
	w.sb.WriteString(FormatTerm(t.Object))
	if !t.Graph.IsZero() {
		w.sb.WriteByte(' ')
		w.sb.WriteString(FormatTerm(t.Graph))
	}
	w.sb.WriteString(" .\n")
	w.n++
}

// WriteStore writes every triple of s in store order.
func (w *NTriplesWriter) WriteStore(s store.Store) {
	for _, t := range s.Triples() {
		w.WriteTriple(t)
	}
}

// Count returns the number of triples written.
func (w *NTriplesWriter) Count() int {
	return w.n
}

// String returns the accumulated N-Triples output.
func (w *NTriplesWriter) String() string {
	return w.sb.String()
}

// FormatTerm renders a term in N-Triples syntax. Plain xsd:string
// datatypes are omitted.
func FormatTerm(t store.Term) string {
	switch t.Kind {
	case store.KindIRI:
		return "<" + t.Value + ">"
	case store.KindBlank:
		return "_:" + t.Value
	case store.KindLiteral:
		s := `"` + escapeString(t.Value) + `"`
		switch {
		case t.Language != "":
			return s + "@" + t.Language
		case t.Datatype != "" && t.Datatype != vocab.XSDString:
			return s + "^^<" + t.Datatype + ">"
		default:
			return s
		}
	default:
		return ""
	}
}

// escapeString escapes special characters in strings for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
