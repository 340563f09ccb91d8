// Package xlsx reads the tabular data source: one worksheet whose first
// row is the column header and whose every later row becomes a record.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Record is one data row keyed by column header. All values are text;
// missing cells read as empty strings. Records are read once and never
// mutated afterwards.
type Record map[string]string

// Source is an open workbook bound to one sheet.
type Source struct {
	f       *excelize.File
	sheet   string
	columns []string
	records []Record
}

// Open reads the whole sheet up front. An empty sheet name selects the
// workbook's first sheet.
func Open(path, sheet string) (*Source, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	s := &Source{f: f, sheet: sheet}
	if len(rows) == 0 {
		return s, nil
	}

	s.columns = rows[0]
	for _, row := range rows[1:] {
		rec := Record{}
		for i, col := range s.columns {
			if col == "" {
				continue
			}
			// GetRows drops trailing empty cells per row
			var v string
			if i < len(row) {
				v = row[i]
			}
			rec[col] = v
		}
		s.records = append(s.records, rec)
	}

	return s, nil
}

// Sheet - resolved sheet name
func (s *Source) Sheet() string {
	return s.sheet
}

// Columns - header row, in sheet order
func (s *Source) Columns() []string {
	return s.columns
}

// Records - all data rows, in sheet order
func (s *Source) Records() []Record {
	return s.records
}

// Close the underlying workbook
func (s *Source) Close() error {
	return s.f.Close()
}
