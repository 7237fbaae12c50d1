// Package export renders extraction results: CSV element tables, metadata
// reports and N-Triples dumps.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/ontoview/ontology"
	"github.com/c360studio/ontoview/table"
)

// ReportFormat selects the metadata report serialization.
type ReportFormat string

const (
	// ReportJSON produces an indented JSON array.
	ReportJSON ReportFormat = "json"

	// ReportYAML produces a YAML sequence.
	ReportYAML ReportFormat = "yaml"
)

// ParseReportFormat validates a report format name, ignoring case.
func ParseReportFormat(s string) (ReportFormat, error) {
	switch f := ReportFormat(strings.ToLower(s)); f {
	case ReportJSON, ReportYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported report format: %s", s)
	}
}

// Extension returns the file extension for the format (with dot).
func (f ReportFormat) Extension() string {
	if f == ReportYAML {
		return ".yaml"
	}
	return ".json"
}

// Report summarizes one processed document.
type Report struct {
	DocumentID   string            `json:"document_id,omitempty" yaml:"document_id,omitempty"`
	Filename     string            `json:"filename" yaml:"filename"`
	Format       string            `json:"format" yaml:"format"`
	Metadata     ontology.Metadata `json:"metadata" yaml:"metadata"`
	TripleCount  int               `json:"triple_count" yaml:"triple_count"`
	ElementCount int               `json:"element_count" yaml:"element_count"`
	Headers      []string          `json:"headers" yaml:"headers"`
	CSVFile      string            `json:"csv_file,omitempty" yaml:"csv_file,omitempty"`
	Error        string            `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewReport builds a report from extraction output. m may be nil when the
// document failed.
func NewReport(filename, format string, meta ontology.Metadata, m *table.Model, tripleCount int) Report {
	r := Report{
		Filename:    filename,
		Format:      format,
		Metadata:    meta,
		TripleCount: tripleCount,
		Headers:     []string{},
	}
	if m != nil {
		r.ElementCount = len(m.Rows)
		r.Headers = m.Headers
	}
	return r
}

// WriteReport serializes reports in the given format.
func WriteReport(w io.Writer, reports []Report, format ReportFormat) error {
	switch format {
	case ReportJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
	case ReportYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("close yaml report: %w", err)
		}
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
	return nil
}
