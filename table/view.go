package table

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is a sort direction.
type Direction string

// Sort directions. Any value other than DirectionDesc sorts ascending.
const (
	DirectionAsc  Direction = "asc"
	DirectionDesc Direction = "desc"
)

// NoColumn requests filtering without sorting.
const NoColumn = -1

// ParseDirection maps "desc" (any case) to DirectionDesc and everything else
// to DirectionAsc.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), string(DirectionDesc)) {
		return DirectionDesc
	}
	return DirectionAsc
}

// FilterAndSort derives a view of m. Rows are kept when any field contains
// query, ignoring case; an empty query keeps every row. A column outside
// the header range leaves the filtered rows in model order. Otherwise rows
// are sorted by that column using English collation. m is never modified.
func FilterAndSort(m *Model, query string, column int, dir Direction) []Row {
	rows := filter(m.Rows, query)

	key, ok := m.Key(column)
	if !ok {
		return rows
	}

	// Collators are not safe for concurrent use.
	c := collate.New(language.English)
	sort.SliceStable(rows, func(i, j int) bool {
		cmp := c.CompareString(rows[i][key], rows[j][key])
		if dir == DirectionDesc {
			return cmp > 0
		}
		return cmp < 0
	})
	return rows
}

// filter returns a new slice of the rows matching query.
func filter(rows []Row, query string) []Row {
	out := make([]Row, 0, len(rows))
	q := strings.ToLower(query)
	for _, row := range rows {
		if q == "" || rowContains(row, q) {
			out = append(out, row)
		}
	}
	return out
}

func rowContains(row Row, lowerQuery string) bool {
	for _, v := range row {
		if strings.Contains(strings.ToLower(v), lowerQuery) {
			return true
		}
	}
	return false
}
