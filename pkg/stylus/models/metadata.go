package models

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Stylus worksheet layout. Metadata occupies the first two rows, date
// headers sit in row 4 from column D on, and records start at row 5 with
// ID, Label, and DBID in columns A through C.
const (
	MetadataKeyRow   = 1
	MetadataValueRow = 2
	HeaderRow        = 4
	DataStartRow     = 5
	DateStartCol     = 4
)

// Metadata keys Stylus reads from the first two rows of a portfolio sheet.
const (
	KeyAssetIDRange  = "MPI_ASSETIDRANGE"
	KeyLabelRange    = "MPI_LABELRANGE"
	KeyDBIDRange     = "MPI_ASSETDBIDRANGE"
	KeyDateRange     = "MPI_PORTFOLIODATERANGE"
	KeyPortfolioType = "MPI_PORTFOLIOTYPE"
	KeyRebalance     = "MPI_REBALANCE"
)

// Metadata holds the key/value pairs of a Stylus sheet's first two rows,
// preserving first-insert key order for writing.
type Metadata struct {
	keys   []string
	values map[string]string
}

// NewMetadata returns an empty metadata set.
func NewMetadata() *Metadata {
	return &Metadata{values: make(map[string]string)}
}

// Set assigns a value, keeping the key's original position if it is
// already present.
func (m *Metadata) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it is present.
func (m *Metadata) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Metadata) Keys() []string {
	return m.keys
}

// Len returns the number of keys.
func (m *Metadata) Len() int {
	return len(m.keys)
}

// Merge adds entries from other for keys not already present.
func (m *Metadata) Merge(other *Metadata) {
	if other == nil {
		return
	}
	for _, key := range other.keys {
		if _, ok := m.values[key]; !ok {
			m.Set(key, other.values[key])
		}
	}
}

// UpdateRanges recomputes the MPI_* range keys for a portfolio with the
// given number of records and date columns, matching the written layout.
func (m *Metadata) UpdateRanges(records, dates int) {
	lastRow := DataStartRow + records - 1
	lastCol, _ := excelize.ColumnNumberToName(DateStartCol + dates - 1)
	m.Set(KeyAssetIDRange, fmt.Sprintf("A%d:A%d", DataStartRow, lastRow))
	m.Set(KeyLabelRange, fmt.Sprintf("B%d:B%d", DataStartRow, lastRow))
	m.Set(KeyDBIDRange, fmt.Sprintf("C%d:C%d", DataStartRow, lastRow))
	m.Set(KeyDateRange, fmt.Sprintf("D%d:%s%d", HeaderRow, lastCol, HeaderRow))
}
