package export

import (
	"bufio"
	"io"
	"strings"

	"github.com/c360studio/ontoview/table"
)

// CSV renders every row of m.
func CSV(m *table.Model) string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = WriteCSV(&sb, m, m.Rows)
	return sb.String()
}

// WriteCSV writes the header line of m followed by one line per row, with
// cells in header order. Lines end with "\n".
func WriteCSV(w io.Writer, m *table.Model, rows []table.Row) error {
	bw := bufio.NewWriter(w)

	writeRecord(bw, m.Headers)

	keys := m.Keys()
	record := make([]string, len(keys))
	for _, row := range rows {
		for i, key := range keys {
			record[i] = row[key]
		}
		writeRecord(bw, record)
	}

	return bw.Flush()
}

func writeRecord(w *bufio.Writer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			w.WriteByte(',')
		}
		w.WriteString(quoteField(f))
	}
	w.WriteByte('\n')
}

// quoteField quotes f when it contains a comma, quote, CR or LF. Embedded
// quotes are doubled.
func quoteField(f string) string {
	if !strings.ContainsAny(f, ",\"\r\n") {
		return f
	}
	return `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
}
