// Package tabular reads uploaded CSV/XLSX files into ordered rows.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row maps column name to cell value for one table row.
type Row map[string]string

// Value looks up a cell by column name, case-insensitively, and returns the
// trimmed value. Missing columns yield "".
func (r Row) Value(column string) string {
	if v, ok := r[column]; ok {
		return strings.TrimSpace(v)
	}
	for k, v := range r {
		if strings.EqualFold(k, column) {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// Table is an in-memory tabular file: a header and ordered rows.
type Table struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the header contains the exact column name.
// Uploads are validated case-sensitively against the documented column names.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// HasAnyColumn reports whether the header contains at least one of the names.
func (t *Table) HasAnyColumn(names ...string) bool {
	for _, name := range names {
		if t.HasColumn(name) {
			return true
		}
	}
	return false
}

// Read parses an uploaded file by extension: .xlsx via excelize, anything
// else as CSV.
func Read(filename string, r io.Reader) (*Table, error) {
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		return ReadXLSX(r)
	}
	return ReadCSV(r)
}

// ReadCSV parses a CSV stream whose first record is the header.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	table := &Table{Columns: trimAll(header)}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		table.Rows = append(table.Rows, makeRow(table.Columns, record))
	}

	return table, nil
}

// ReadXLSX parses the first sheet of an XLSX stream, first row as header.
func ReadXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("XLSX file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read XLSX rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	table := &Table{Columns: trimAll(rows[0])}
	for _, record := range rows[1:] {
		table.Rows = append(table.Rows, makeRow(table.Columns, record))
	}

	return table, nil
}

func makeRow(columns, record []string) Row {
	row := make(Row, len(columns))
	for i, col := range columns {
		if i < len(record) {
			row[col] = record[i]
		} else {
			row[col] = ""
		}
	}
	return row
}

func trimAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}
