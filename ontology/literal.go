// Package ontology extracts ontology-level metadata from a triple store.
package ontology

import (
	"strings"

	"github.com/c360studio/ontoview/store"
)

// PreferredLanguage is the language tag PickBestLiteral favours.
const PreferredLanguage = "en"

// PickBestLiteral selects one literal from candidates, in three tiers:
// a literal tagged "en" (any case), else an untagged literal, else the first
// candidate. It returns false when candidates is empty.
func PickBestLiteral(candidates []store.Term) (store.Term, bool) {
	if len(candidates) == 0 {
		return store.Term{}, false
	}
	for _, c := range candidates {
		if strings.EqualFold(c.Language, PreferredLanguage) {
			return c, true
		}
	}
	for _, c := range candidates {
		if c.Language == "" {
			return c, true
		}
	}
	return candidates[0], true
}
