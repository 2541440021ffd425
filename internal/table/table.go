// Package table loads delimited growth records and maps their columns onto the
// semantic roles the charting pipeline understands.
package table

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// Row maps a header name to the raw cell text for one data line.
type Row map[string]string

// Table is an ordered set of rows parsed from CSV or TSV text. Column order
// and row order follow the input file.
type Table struct {
	Columns []string
	Rows    []Row
}

// Load parses raw delimited text into a Table. A tab character anywhere in the
// text selects tab-delimited parsing with no quoting; otherwise the text is
// treated as comma-delimited CSV with standard quoting. The first line is the
// header. Returns ErrEmptyTable when no data rows result.
func Load(text string) (*Table, error) {
	var records [][]string
	var err error
	if strings.ContainsRune(text, '\t') {
		records = splitTabs(text)
	} else {
		r := csv.NewReader(strings.NewReader(text))
		r.FieldsPerRecord = -1
		r.TrimLeadingSpace = true
		records, err = r.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("parse csv: %w", err)
		}
	}
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}

	t := &Table{Columns: header}
	for _, rec := range records[1:] {
		row := make(Row, len(header))
		for i, name := range header {
			if i < len(rec) {
				row[name] = strings.TrimSpace(rec[i])
			} else {
				row[name] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	if len(t.Rows) == 0 {
		return nil, ErrEmptyTable
	}
	return t, nil
}

// splitTabs parses tab-delimited text without any quoting rules. Blank lines
// are skipped so a trailing newline does not produce a phantom row.
func splitTabs(text string) [][]string {
	var out [][]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, strings.Split(line, "\t"))
	}
	return out
}
