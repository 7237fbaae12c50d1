package table

import (
	"sort"
	"strings"

	"github.com/c360studio/ontoview/store"
	vocab "github.com/c360studio/ontoview/vocabulary/ontology"
)

// valueSet is an insertion-ordered set of display values.
type valueSet struct {
	seen   map[string]struct{}
	values []string
}

func (v *valueSet) add(s string) {
	if v.seen == nil {
		v.seen = make(map[string]struct{})
	}
	if _, ok := v.seen[s]; ok {
		return
	}
	v.seen[s] = struct{}{}
	v.values = append(v.values, s)
}

// subjectEntry collects one subject's values grouped by predicate.
type subjectEntry struct {
	iri        string
	predicates map[string]*valueSet
}

func (e *subjectEntry) add(predicate, value string) {
	vs, ok := e.predicates[predicate]
	if !ok {
		vs = &valueSet{}
		e.predicates[predicate] = vs
	}
	vs.add(value)
}

var elementTypes = func() map[string]struct{} {
	m := make(map[string]struct{}, len(vocab.ElementTypes))
	for _, t := range vocab.ElementTypes {
		m[t] = struct{}{}
	}
	return m
}()

// IsElement reports whether subject is an IRI typed as an OWL class,
// individual or property.
func IsElement(s store.Store, subject store.Term) bool {
	if !subject.IsIRI() {
		return false
	}
	for _, o := range store.Objects(s, subject, store.NewIRI(vocab.RDFType)) {
		if !o.IsIRI() {
			continue
		}
		if _, ok := elementTypes[o.Value]; ok {
			return true
		}
	}
	return false
}

// Build projects the ontology elements of s into a Model. Triples with a
// blank subject or object are skipped. Column order does not depend on
// store order; row order follows first appearance of each subject.
func Build(s store.Store) *Model {
	var (
		order   []string
		entries = make(map[string]*subjectEntry)
	)
	for _, t := range s.Triples() {
		if t.Subject.IsBlank() || t.Object.IsBlank() {
			continue
		}
		e, ok := entries[t.Subject.Value]
		if !ok {
			e = &subjectEntry{iri: t.Subject.Value, predicates: make(map[string]*valueSet)}
			entries[t.Subject.Value] = e
			order = append(order, t.Subject.Value)
		}
		e.add(t.Predicate.Value, t.Object.Value)
	}

	var included []*subjectEntry
	used := make(map[string]struct{})
	for _, iri := range order {
		if !IsElement(s, store.NewIRI(iri)) {
			continue
		}
		e := entries[iri]
		included = append(included, e)
		for p := range e.predicates {
			used[p] = struct{}{}
		}
	}

	predicates := orderColumns(used)

	m := &Model{
		Headers:    make([]string, 0, len(predicates)+1),
		Predicates: make([]string, 0, len(predicates)+1),
		Rows:       make([]Row, 0, len(included)),
	}
	m.Headers = append(m.Headers, IRIColumn)
	m.Predicates = append(m.Predicates, "")
	for _, p := range predicates {
		m.Headers = append(m.Headers, Shorten(p))
		m.Predicates = append(m.Predicates, p)
	}

	for _, e := range included {
		row := Row{IRIColumn: e.iri}
		for _, p := range predicates {
			if vs, ok := e.predicates[p]; ok {
				row[p] = strings.Join(vs.values, ValueSeparator)
			} else {
				row[p] = ""
			}
		}
		m.Rows = append(m.Rows, row)
	}
	return m
}

// orderColumns puts the priority predicates first, then the rest ascending
// by display form. Ties on display form fall back to the full IRI.
func orderColumns(used map[string]struct{}) []string {
	out := make([]string, 0, len(used))
	priority := make(map[string]struct{}, len(vocab.PriorityColumns))
	for _, p := range vocab.PriorityColumns {
		priority[p] = struct{}{}
		if _, ok := used[p]; ok {
			out = append(out, p)
		}
	}

	rest := make([]string, 0, len(used))
	for p := range used {
		if _, ok := priority[p]; !ok {
			rest = append(rest, p)
		}
	}
	sort.Slice(rest, func(i, j int) bool {
		a, b := Shorten(rest[i]), Shorten(rest[j])
		if a != b {
			return a < b
		}
		return rest[i] < rest[j]
	})
	return append(out, rest...)
}
