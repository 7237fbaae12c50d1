// Package table projects ontology elements of a triple store into a
// column/row model and derives filtered, sorted views of it.
package table

// IRIColumn is the header and row key of the subject column.
const IRIColumn = "iri"

// ValueSeparator joins multiple values in one cell.
const ValueSeparator = "; "

// Row maps "iri" and predicate IRIs to display strings.
type Row map[string]string

// Model is an element table. Headers and Predicates are aligned; the first
// predicate entry is empty and stands for the iri column. A Model is not
// modified after Build returns it.
type Model struct {
	Headers    []string `json:"headers"`
	Predicates []string `json:"predicates"`
	Rows       []Row    `json:"rows"`
}

// Key returns the row key for column i, or false when i is out of range.
func (m *Model) Key(i int) (string, bool) {
	if i < 0 || i >= len(m.Headers) {
		return "", false
	}
	if i == 0 {
		return IRIColumn, true
	}
	return m.Predicates[i], true
}

// Value returns the cell of row at column i.
func (m *Model) Value(row Row, i int) string {
	key, ok := m.Key(i)
	if !ok {
		return ""
	}
	return row[key]
}

// Keys returns the row keys in header order.
func (m *Model) Keys() []string {
	keys := make([]string, len(m.Headers))
	for i := range m.Headers {
		keys[i], _ = m.Key(i)
	}
	return keys
}
