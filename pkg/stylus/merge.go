package stylus

import "github.com/mpitools/stylus-go/pkg/stylus/models"

// Merge joins incoming records into an existing portfolio and returns the
// result as a new table; neither input is modified. Date columns are the
// union of both tables, sorted ascending. An incoming record whose ID is
// already present overwrites only the weights at the incoming table's
// dates on the first matching row; any other ID is appended after all
// existing rows, in incoming order.
func Merge(existing, incoming *models.Table) *models.Table {
	if existing == nil {
		existing = models.NewTable()
	}
	out := existing.Clone()
	for _, d := range incoming.Dates {
		out.AddDate(d)
	}
	for _, rec := range incoming.Records {
		cur := out.Lookup(rec.ID)
		if cur == nil {
			out.Append(rec.Clone())
			continue
		}
		for _, d := range incoming.Dates {
			if w, ok := rec.Weight(d); ok {
				cur.SetWeight(d, w)
			}
		}
	}
	return out
}

// UpdateMetadata brings a portfolio's metadata in line with its table:
// the MPI range keys are recomputed from the table's dimensions, the
// portfolio type is forced to Advanced, and the rebalance frequency
// defaults to Monthly when absent. Keys from joined metadata are added
// when not already present. A nil meta starts from an empty set.
func UpdateMetadata(t *models.Table, meta, joined *models.Metadata) *models.Metadata {
	if meta == nil {
		meta = models.NewMetadata()
	}
	if _, ok := meta.Get(models.KeyRebalance); !ok {
		meta.Set(models.KeyRebalance, "Monthly")
	}
	meta.Set(models.KeyPortfolioType, "Advanced")
	meta.UpdateRanges(len(t.Records), len(t.Dates))
	meta.Merge(joined)
	return meta
}
