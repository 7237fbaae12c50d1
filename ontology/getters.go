package ontology

import "github.com/c360studio/ontoview/store"

// LiteralValue walks predicates in order and returns the lexical value of the
// best literal object of the first predicate that has any.
func LiteralValue(s store.Store, subject store.Term, predicates []string) (string, bool) {
	for _, p := range predicates {
		var literals []store.Term
		for _, o := range store.Objects(s, subject, store.NewIRI(p)) {
			if o.IsLiteral() {
				literals = append(literals, o)
			}
		}
		if best, ok := PickBestLiteral(literals); ok {
			return best.Value, true
		}
	}
	return "", false
}

// IRIValue walks predicates in order and returns the first IRI object, in
// store order, of the first predicate that has any.
func IRIValue(s store.Store, subject store.Term, predicates []string) (string, bool) {
	for _, p := range predicates {
		for _, o := range store.Objects(s, subject, store.NewIRI(p)) {
			if o.IsIRI() {
				return o.Value, true
			}
		}
	}
	return "", false
}
