package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/c360studio/ontoview/ontology"
	"github.com/c360studio/ontoview/pipeline"
	"github.com/c360studio/ontoview/table"
	vocab "github.com/c360studio/ontoview/vocabulary/ontology"
)

// maxCellWidth bounds table cells on the terminal; CSV export is never truncated.
const maxCellWidth = 60

var fieldLabels = map[string]string{
	vocab.FieldIRI:          "Ontology IRI",
	vocab.FieldName:         "Name",
	vocab.FieldVersionIRI:   "Version IRI",
	vocab.FieldVersionInfo:  "Version",
	vocab.FieldDescription:  "Description",
	vocab.FieldLicense:      "License",
	vocab.FieldRightsHolder: "Rights holder",
}

// printer writes human-readable results. Colour is disabled automatically
// when the output is not a terminal.
type printer struct {
	w       io.Writer
	heading func(a ...any) string
	label   func(a ...any) string
	failure func(a ...any) string
	muted   func(a ...any) string
}

func newPrinter(w io.Writer) *printer {
	return &printer{
		w:       w,
		heading: color.New(color.FgCyan, color.Bold).SprintFunc(),
		label:   color.New(color.Bold).SprintFunc(),
		failure: color.New(color.FgRed).SprintFunc(),
		muted:   color.New(color.Faint).SprintFunc(),
	}
}

func (p *printer) printFailure(res pipeline.Result) {
	fmt.Fprintf(p.w, "%s %s\n  %v\n\n", p.failure("FAILED"), res.Filename, res.Err)
}

func (p *printer) printSummary(res pipeline.Result) {
	if !res.OK() {
		p.printFailure(res)
		return
	}
	name := "(unnamed)"
	if res.Metadata.OntologyName != nil {
		name = *res.Metadata.OntologyName
	}
	fmt.Fprintf(p.w, "%s %s: %s, %d triples, %d elements\n",
		p.heading("OK"), res.Filename, name, res.TripleCount, len(res.Table.Rows))
}

func (p *printer) printMetadata(meta ontology.Metadata) {
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	for _, f := range vocab.Fields {
		value := p.muted("-")
		if v := meta.Get(f.Name); v != nil {
			value = *v
		}
		fmt.Fprintf(tw, "%s\t%s\n", p.label(fieldLabels[f.Name]+":"), value)
	}
	_ = tw.Flush()
}

// printTable writes up to limit rows (all when limit <= 0).
func (p *printer) printTable(m *table.Model, rows []table.Row, limit int) {
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(m.Headers, "\t"))

	shown := rows
	if limit > 0 && len(rows) > limit {
		shown = rows[:limit]
	}
	keys := m.Keys()
	cells := make([]string, len(keys))
	for _, row := range shown {
		for i, key := range keys {
			cells[i] = truncate(row[key], maxCellWidth)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	_ = tw.Flush()

	if len(shown) < len(rows) {
		fmt.Fprintln(p.w, p.muted(fmt.Sprintf("... %d more rows", len(rows)-len(shown))))
	}
}

func (p *printer) printResult(res pipeline.Result, rows []table.Row, limit int) {
	if !res.OK() {
		p.printFailure(res)
		return
	}
	fmt.Fprintf(p.w, "%s %s (%s, %d triples)\n", p.heading("==>"), res.Filename, res.Format, res.TripleCount)
	p.printMetadata(res.Metadata)
	fmt.Fprintf(p.w, "\n%s %d of %d\n", p.heading("Elements:"), len(rows), len(res.Table.Rows))
	p.printTable(res.Table, rows, limit)
	fmt.Fprintln(p.w)
}

// truncate flattens line breaks and shortens s to width runes.
func truncate(s string, width int) string {
	s = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(s)
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	return string(r[:width-3]) + "..."
}
