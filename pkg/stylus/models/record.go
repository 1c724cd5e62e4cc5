package models

import "github.com/shopspring/decimal"

// Record is one asset row of a portfolio. Identity is the ID; uniqueness
// of ID within a table is assumed, not enforced.
type Record struct {
	// ID is the fund identifier within the parent database.
	ID string
	// Label is the referential label within the portfolio.
	Label string
	// DBID identifies the parent database in Stylus.
	DBID string

	weights map[Date]decimal.Decimal
}

// NewRecord returns a Record with no weights assigned.
func NewRecord(id, label, dbid string) *Record {
	return &Record{ID: id, Label: label, DBID: dbid}
}

// SetWeight assigns the weight of the asset at the given date.
func (r *Record) SetWeight(d Date, w decimal.Decimal) {
	if r.weights == nil {
		r.weights = make(map[Date]decimal.Decimal)
	}
	r.weights[d] = w
}

// Weight returns the weight of the asset at the given date, and whether
// one has been assigned.
func (r *Record) Weight(d Date) (decimal.Decimal, bool) {
	w, ok := r.weights[d]
	return w, ok
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	c := NewRecord(r.ID, r.Label, r.DBID)
	for d, w := range r.weights {
		c.SetWeight(d, w)
	}
	return c
}
