package ontology

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultIdentifier is returned by ToIdentifier when nothing usable remains.
const DefaultIdentifier = "Ontology"

// ToIdentifier turns a free-text name into a compact identifier:
// "example ontology name" becomes "ExampleOntologyName". Letters and digits
// from any script are kept; everything else separates segments.
func ToIdentifier(name string) string {
	var sb strings.Builder
	for _, seg := range strings.FieldsFunc(name, isSeparator) {
		r, size := utf8.DecodeRuneInString(seg)
		sb.WriteRune(unicode.ToUpper(r))
		sb.WriteString(seg[size:])
	}
	if sb.Len() == 0 {
		return DefaultIdentifier
	}
	return sb.String()
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
