// Package parser reads portfolio worksheets into canonical tables.
package parser

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// OpenWorkbook opens the workbook at path. The caller owns the returned
// file and must Close it.
func OpenWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

// RequireSheet reports ErrSheetNotFound unless the workbook contains a
// worksheet with the given name.
func RequireSheet(f *excelize.File, name string) error {
	idx, err := f.GetSheetIndex(name)
	if err != nil || idx < 0 {
		return fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	return nil
}

// sheetRows returns the formatted cell grid of a worksheet.
func sheetRows(f *excelize.File, sheet string) ([][]string, error) {
	if err := RequireSheet(f, sheet); err != nil {
		return nil, err
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// cellAt returns the value at the 1-based row/column of a grid, or ""
// when the grid is ragged short of that position.
func cellAt(rows [][]string, row, col int) string {
	if row < 1 || row > len(rows) {
		return ""
	}
	r := rows[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}
