package parser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	rdfgo "github.com/geoknoesis/rdf-go/rdf"

	"github.com/c360studio/ontoview/store"
)

// TriGParser decodes TriG documents into default and named graphs.
// Blank node labels are scoped to the document.
type TriGParser struct{}

// NewTriGParser creates a new TriG parser.
func NewTriGParser() *TriGParser {
	return &TriGParser{}
}

// MimeType returns the primary MIME type for TriG.
func (p *TriGParser) MimeType() string {
	return FormatTriG
}

// CanParse returns true for the TriG MIME type.
func (p *TriGParser) CanParse(mimeType string) bool {
	return mimeType == FormatTriG
}

// Parse decodes text into a store. Statements outside a graph block land in
// the default graph.
func (p *TriGParser) Parse(ctx context.Context, text string) (store.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r, err := rdfgo.NewReader(strings.NewReader(separateDirectives(text)), rdfgo.FormatTriG, rdfgo.OptContext(ctx))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	m := store.NewMemory()
	for {
		st, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		var t store.Triple
		if t.Subject, err = fromRDFGoTerm(st.S); err != nil {
			return nil, err
		}
		t.Predicate = store.NewIRI(st.P.Value)
		if t.Object, err = fromRDFGoTerm(st.O); err != nil {
			return nil, err
		}
		if t.Graph, err = fromRDFGoTerm(st.G); err != nil {
			return nil, err
		}
		m.Add(t)
	}
	return m, nil
}

func fromRDFGoTerm(t rdfgo.Term) (store.Term, error) {
	switch v := t.(type) {
	case nil:
		return store.Term{}, nil
	case rdfgo.IRI:
		return store.NewIRI(v.Value), nil
	case rdfgo.BlankNode:
		return store.NewBlank(v.ID), nil
	case rdfgo.Literal:
		if v.Lang != "" {
			return store.NewLiteral(v.Lexical, v.Lang, ""), nil
		}
		return store.NewLiteral(v.Lexical, "", v.Datatype.Value), nil
	default:
		return store.Term{}, fmt.Errorf("unsupported term %T", t)
	}
}

// separateDirectives moves anything that follows a prefix or base directive
// onto its own line. The TriG reader treats a directive line as a whole, so
// "@prefix ex: <...> . ex:a ex:p ex:o ." would otherwise lose the triple.
func separateDirectives(text string) string {
	lines := strings.Split(text, "\n")
	var sb strings.Builder
	sb.Grow(len(text))
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for {
			head, rest, ok := cutDirective(line)
			if !ok {
				sb.WriteString(line)
				break
			}
			sb.WriteString(head)
			sb.WriteByte('\n')
			line = rest
		}
	}
	return sb.String()
}

// cutDirective splits a line that starts with a directive and carries more
// content after it. Prefixed names such as "base:A" are not directives.
func cutDirective(line string) (head, rest string, ok bool) {
	trimmed := strings.TrimLeft(line, " \t")
	fields := strings.Fields(trimmed)
	if len(fields) < 2 {
		return "", "", false
	}

	keyword := strings.ToLower(fields[0])
	var iriField string
	switch keyword {
	case "@prefix", "prefix":
		if len(fields) < 3 || !strings.HasSuffix(fields[1], ":") {
			return "", "", false
		}
		iriField = fields[2]
	case "@base", "base":
		iriField = fields[1]
	default:
		return "", "", false
	}
	if !strings.HasPrefix(iriField, "<") {
		return "", "", false
	}

	end := strings.IndexByte(trimmed, '>')
	if end < 0 {
		return "", "", false
	}
	head = trimmed[:end+1]
	rest = strings.TrimLeft(trimmed[end+1:], " \t")
	if strings.HasPrefix(keyword, "@") && strings.HasPrefix(rest, ".") {
		head += " ."
		rest = strings.TrimLeft(rest[1:], " \t")
	}
	if strings.TrimSpace(rest) == "" {
		return "", "", false
	}
	return head, rest, true
}
