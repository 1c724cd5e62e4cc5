package models

// Table is an ordered sequence of records sharing one set of date
// columns. Dates is kept sorted ascending.
type Table struct {
	Dates   []Date
	Records []*Record
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{}
}

// AddDate inserts a date column in sorted position. Adding a date the
// table already has is a no-op.
func (t *Table) AddDate(d Date) {
	i := 0
	for ; i < len(t.Dates); i++ {
		if d == t.Dates[i] {
			return
		}
		if d.Before(t.Dates[i]) {
			break
		}
	}
	t.Dates = append(t.Dates, Date{})
	copy(t.Dates[i+1:], t.Dates[i:])
	t.Dates[i] = d
}

// Append adds a record after all existing rows.
func (t *Table) Append(r *Record) {
	t.Records = append(t.Records, r)
}

// Lookup returns the first record with the given ID, or nil.
func (t *Table) Lookup(id string) *Record {
	for _, r := range t.Records {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	c := NewTable()
	c.Dates = append(c.Dates, t.Dates...)
	for _, r := range t.Records {
		c.Records = append(c.Records, r.Clone())
	}
	return c
}
