// Package writer renders canonical portfolios into Stylus worksheets.
package writer

import (
	"fmt"

	"github.com/mpitools/stylus-go/pkg/stylus/models"
	"github.com/xuri/excelize/v2"
)

// Write writes the portfolio and its metadata into an existing worksheet,
// overwriting prior contents in the written range. Metadata occupies the
// first two rows, date headers row 4 from column D, and records rows 5+.
// The caller is responsible for saving the workbook.
func Write(f *excelize.File, sheet string, t *models.Table, meta *models.Metadata) error {
	for i, key := range meta.Keys() {
		value, _ := meta.Get(key)
		if err := setCell(f, sheet, i+1, models.MetadataKeyRow, key); err != nil {
			return err
		}
		if err := setCell(f, sheet, i+1, models.MetadataValueRow, value); err != nil {
			return err
		}
	}

	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateNumFmt})
	if err != nil {
		return fmt.Errorf("date style: %w", err)
	}
	for j, d := range t.Dates {
		col := models.DateStartCol + j
		cell, err := excelize.CoordinatesToCellName(col, models.HeaderRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, d.Time()); err != nil {
			return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, dateStyle); err != nil {
			return fmt.Errorf("style %s!%s: %w", sheet, cell, err)
		}
	}

	for i, rec := range t.Records {
		row := models.DataStartRow + i
		if err := setCell(f, sheet, 1, row, rec.ID); err != nil {
			return err
		}
		if err := setCell(f, sheet, 2, row, rec.Label); err != nil {
			return err
		}
		if err := setCell(f, sheet, 3, row, rec.DBID); err != nil {
			return err
		}
		for j, d := range t.Dates {
			// Unassigned weights are written as zero.
			w, _ := rec.Weight(d)
			if err := setCell(f, sheet, models.DateStartCol+j, row, w.InexactFloat64()); err != nil {
				return err
			}
		}
	}
	return nil
}

var dateNumFmt = "yyyy-mm-dd"

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
	}
	return nil
}
