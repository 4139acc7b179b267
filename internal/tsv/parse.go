// Package tsv reads the tab-separated tables the explorer is built on.
//
// The format is deliberately small: the first line names the columns, every
// following line is one row, fields are separated by a single tab. There is no
// quoting or escaping, so a field can never contain a tab or a newline.
package tsv

import (
	"strings"
)

// Row is one parsed line of a table, keyed by header name
type Row struct {
	// Line is the 1-based line number in the source text
	Line int
	// Width is the number of fields the line actually had
	Width int
	// Values holds one entry per header column; missing trailing fields are ""
	Values map[string]string
}

// Get returns the value of column key, or "" when the column does not exist
func (r Row) Get(key string) string {
	return r.Values[key]
}

// Table is a parsed tab-separated resource
type Table struct {
	Header []string
	Rows   []Row
}

// Len returns the number of data rows
func (t Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the header declares the named column
func (t Table) HasColumn(name string) bool {
	for _, h := range t.Header {
		if h == name {
			return true
		}
	}
	return false
}

// Parse splits text into a header and header-keyed rows.
//
// Blank lines before the header and after the last row are skipped so a
// trailing newline never produces an empty record; empty or whitespace-only
// input yields a Table with no rows. Header names and values are trimmed,
// fields past the header are dropped. Trailing tabs are kept when counting a
// row's fields, so an empty last field still counts towards Width.
func Parse(text string) Table {
	if strings.TrimSpace(text) == "" {
		return Table{}
	}

	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], "\r")
	}

	first, last := 0, len(lines)-1
	for strings.TrimSpace(lines[first]) == "" {
		first++
	}
	for strings.TrimSpace(lines[last]) == "" {
		last--
	}

	rawKeys := strings.Split(lines[first], "\t")
	keys := make([]string, len(rawKeys))
	for i, k := range rawKeys {
		keys[i] = strings.TrimSpace(k)
	}

	rows := make([]Row, 0, last-first)
	for n := first + 1; n <= last; n++ {
		values := strings.Split(lines[n], "\t")
		row := Row{
			Line:   n + 1,
			Width:  len(values),
			Values: make(map[string]string, len(keys)),
		}
		for i, key := range keys {
			v := ""
			if i < len(values) {
				v = strings.TrimSpace(values[i])
			}
			row.Values[key] = v
		}
		rows = append(rows, row)
	}

	return Table{Header: keys, Rows: rows}
}
