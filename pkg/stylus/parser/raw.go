package parser

import (
	"errors"
	"strings"

	"github.com/mpitools/stylus-go/pkg/stylus/models"
	"github.com/xuri/excelize/v2"
)

// dateColumn pairs a 1-based worksheet column with its parsed date header.
type dateColumn struct {
	col  int
	date models.Date
}

// LoadRaw reads a raw-layout worksheet into a canonical table. The header
// row names ID, Label, and DBID (through the column map) followed by date
// columns; unknown columns are dropped. When row 1 does not begin with an
// ID header, the first two rows are read as metadata and the header is
// expected in row 3.
func LoadRaw(f *excelize.File, sheet string, cmap *ColumnMap) (*models.Table, *models.Metadata, error) {
	rows, err := sheetRows(f, sheet)
	if err != nil {
		return nil, nil, err
	}

	headerRow := 1
	var meta *models.Metadata
	if !cmap.IsID(cellAt(rows, 1, 1)) {
		meta = metadataFromRows(rows)
		headerRow = 3
	}
	if headerRow > len(rows) {
		return nil, nil, NewSchemaError(sheet, "ID", errors.New("required column absent"))
	}

	var idCol, labelCol, dbidCol int
	var dateCols []dateColumn
	for i, h := range rows[headerRow-1] {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		col := i + 1
		switch {
		case idCol == 0 && cmap.IsID(h):
			idCol = col
		case labelCol == 0 && cmap.IsLabel(h):
			labelCol = col
		case dbidCol == 0 && cmap.IsDBID(h):
			dbidCol = col
		default:
			if d, err := models.ParseDate(h); err == nil {
				dateCols = append(dateCols, dateColumn{col: col, date: d})
			}
		}
	}
	if idCol == 0 {
		return nil, nil, NewSchemaError(sheet, "ID", errors.New("required column absent"))
	}

	t := models.NewTable()
	for _, dc := range dateCols {
		t.AddDate(dc.date)
	}
	for r := headerRow + 1; r <= len(rows); r++ {
		id := strings.TrimSpace(cellAt(rows, r, idCol))
		if id == "" {
			continue
		}
		rec := models.NewRecord(id, cellAt(rows, r, labelCol), cellAt(rows, r, dbidCol))
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

// metadataFromRows reads the key/value metadata pairs from the first two
// rows of a grid. Columns with an empty key are skipped.
func metadataFromRows(rows [][]string) *models.Metadata {
	meta := models.NewMetadata()
	if len(rows) == 0 {
		return meta
	}
	for i := range rows[0] {
		key := strings.TrimSpace(rows[0][i])
		if key == "" {
			continue
		}
		meta.Set(key, cellAt(rows, models.MetadataValueRow, i+1))
	}
	return meta
}
