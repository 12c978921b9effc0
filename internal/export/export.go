// Package export materializes a flattened product list into download buffers.
// CSV, XLSX, and JSON are always derived from the same list with the same
// union-of-columns policy, so the three representations stay consistent.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/ManideepMuddagowni/veronica/internal/domain"
	"github.com/xuri/excelize/v2"
)

// BuildCSV renders the records as a delimited table: union of present columns
// as the header, absent fields as empty cells.
func BuildCSV(records []domain.ProductRecord) ([]byte, error) {
	columns := domain.UnionColumns(records)

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(columns); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i := range records {
		if err := writer.Write(rowValues(&records[i], columns)); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return buf.Bytes(), nil
}

// BuildXLSX renders the records as a single-sheet spreadsheet with the same
// layout as the CSV.
func BuildXLSX(records []domain.ProductRecord) ([]byte, error) {
	columns := domain.UnionColumns(records)

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for col, name := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build XLSX cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, fmt.Errorf("failed to write XLSX header: %w", err)
		}
	}
	for rowIdx := range records {
		values := rowValues(&records[rowIdx], columns)
		for col, value := range values {
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build XLSX cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write XLSX cell: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write XLSX buffer: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildJSON renders the records as a pretty-printed JSON array.
func BuildJSON(records []domain.ProductRecord) ([]byte, error) {
	if records == nil {
		records = []domain.ProductRecord{}
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return data, nil
}

func rowValues(record *domain.ProductRecord, columns []string) []string {
	values := make([]string, len(columns))
	for i, col := range columns {
		values[i] = record.Value(col)
	}
	return values
}
