package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXSource adapts the first sheet of a spreadsheet workbook. Fields are
// matched by header name rather than position, so column order in the sheet
// does not matter.
type XLSXSource struct {
	path string
}

func NewXLSXSource(path string) *XLSXSource {
	return &XLSXSource{path: path}
}

func (s *XLSXSource) Iterate(fn func(RawRecord) error) error {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to open workbook %s: %w", s.path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return fmt.Errorf("workbook %s has no sheets", s.path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil
	}

	// Map sheet columns to record columns through the header row.
	colFor := make(map[int]int)
	for i, header := range rows[0] {
		if idx, ok := columnHeaders[header]; ok {
			colFor[i] = idx
		}
	}

	for _, row := range rows[1:] {
		cols := make([]string, columnsPerRecord)
		for i, cell := range row {
			if idx, ok := colFor[i]; ok {
				cols[idx] = cell
			}
		}

		if err := fn(rawFromColumns(cols)); err != nil {
			return err
		}
	}

	return nil
}
