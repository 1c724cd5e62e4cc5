package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mpitools/stylus-go/pkg/stylus/models"
	"github.com/xuri/excelize/v2"
)

// LoadStylus reads a Stylus-formatted worksheet: metadata in the first
// two rows, with the data region located by the MPI_LABELRANGE row span
// and the MPI_PORTFOLIODATERANGE column span.
func LoadStylus(f *excelize.File, sheet string) (*models.Table, *models.Metadata, error) {
	rows, err := sheetRows(f, sheet)
	if err != nil {
		return nil, nil, err
	}
	meta := metadataFromRows(rows)

	_, firstRow, _, lastRow, err := metaRange(meta, sheet, models.KeyLabelRange)
	if err != nil {
		return nil, nil, err
	}
	_, _, lastCol, _, err := metaRange(meta, sheet, models.KeyDateRange)
	if err != nil {
		return nil, nil, err
	}

	headerRow := firstRow - 1
	var dateCols []dateColumn
	t := models.NewTable()
	for col := models.DateStartCol; col <= lastCol; col++ {
		s := strings.TrimSpace(cellAt(rows, headerRow, col))
		if s == "" {
			continue
		}
		d, err := models.ParseDate(s)
		if err != nil {
			return nil, nil, NewSchemaError(sheet, fmt.Sprint(col), err)
		}
		dateCols = append(dateCols, dateColumn{col: col, date: d})
		t.AddDate(d)
	}

	for r := firstRow; r <= lastRow; r++ {
		id := strings.TrimSpace(cellAt(rows, r, 1))
		if id == "" {
			continue
		}
		rec := models.NewRecord(id, cellAt(rows, r, 2), cellAt(rows, r, 3))
		for _, dc := range dateCols {
			w, ok, err := parseWeight(cellAt(rows, r, dc.col))
			if err != nil {
				return nil, nil, NewSchemaError(sheet, dc.date.String(), err)
			}
			if ok {
				rec.SetWeight(dc.date, w)
			}
		}
		t.Append(rec)
	}
	return t, meta, nil
}

// metaRange resolves a metadata range key like "B5:B12" into its cell
// coordinates (x1, y1, x2, y2).
func metaRange(meta *models.Metadata, sheet, key string) (int, int, int, int, error) {
	ref, ok := meta.Get(key)
	if !ok {
		return 0, 0, 0, 0, NewSchemaError(sheet, key, errors.New("metadata key absent"))
	}
	parts := strings.Split(ref, ":")
	if len(parts) != 2 {
		return 0, 0, 0, 0, NewSchemaError(sheet, key, fmt.Errorf("malformed range %q", ref))
	}
	x1, y1, err := excelize.CellNameToCoordinates(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, 0, 0, NewSchemaError(sheet, key, err)
	}
	x2, y2, err := excelize.CellNameToCoordinates(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, 0, 0, NewSchemaError(sheet, key, err)
	}
	return x1, y1, x2, y2, nil
}
