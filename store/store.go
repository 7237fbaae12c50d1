package store

// Triple is a single statement. A zero Graph means the default graph.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
	Graph     Term
}

// Pattern selects triples. A nil position is a wildcard.
type Pattern struct {
	Subject   *Term
	Predicate *Term
	Object    *Term
	Graph     *Term
}

// Matches reports whether t satisfies the pattern.
func (p Pattern) Matches(t Triple) bool {
	if p.Subject != nil && *p.Subject != t.Subject {
		return false
	}
	if p.Predicate != nil && *p.Predicate != t.Predicate {
		return false
	}
	if p.Object != nil && *p.Object != t.Object {
		return false
	}
	if p.Graph != nil && *p.Graph != t.Graph {
		return false
	}
	return true
}

// Store is a queryable triple collection. Lookups never fail; they return
// an empty slice when nothing matches. Results follow insertion order.
type Store interface {
	// Match returns all triples satisfying the pattern.
	Match(p Pattern) []Triple

	// Triples returns every triple in the store.
	Triples() []Triple

	// Len returns the number of triples, duplicates included.
	Len() int
}

// Memory is a slice-backed Store with a subject index. Duplicate triples
// are kept as added.
type Memory struct {
	triples   []Triple
	bySubject map[Term][]int
}

// NewMemory creates a store holding the given triples.
func NewMemory(triples ...Triple) *Memory {
	m := &Memory{bySubject: make(map[Term][]int)}
	m.Add(triples...)
	return m
}

// Add appends triples to the store.
func (m *Memory) Add(triples ...Triple) {
	for _, t := range triples {
		m.bySubject[t.Subject] = append(m.bySubject[t.Subject], len(m.triples))
		m.triples = append(m.triples, t)
	}
}

// Match implements Store.
func (m *Memory) Match(p Pattern) []Triple {
	var out []Triple
	if p.Subject != nil {
		for _, i := range m.bySubject[*p.Subject] {
			if p.Matches(m.triples[i]) {
				out = append(out, m.triples[i])
			}
		}
		return out
	}
	for _, t := range m.triples {
		if p.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Triples implements Store. The returned slice is a copy.
func (m *Memory) Triples() []Triple {
	out := make([]Triple, len(m.triples))
	copy(out, m.triples)
	return out
}

// Len implements Store.
func (m *Memory) Len() int { return len(m.triples) }

// Objects returns the objects of every (subject, predicate, *) triple in
// store order, across all graphs.
func Objects(s Store, subject, predicate Term) []Term {
	matches := s.Match(Pattern{Subject: &subject, Predicate: &predicate})
	out := make([]Term, 0, len(matches))
	for _, t := range matches {
		out = append(out, t.Object)
	}
	return out
}
