package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestAddDateSorted(t *testing.T) {
	tab := NewTable()
	tab.AddDate(NewDate(2021, time.March, 1))
	tab.AddDate(NewDate(2020, time.January, 1))
	tab.AddDate(NewDate(2022, time.June, 30))
	tab.AddDate(NewDate(2020, time.January, 1)) // duplicate, no-op

	expected := []Date{
		NewDate(2020, time.January, 1),
		NewDate(2021, time.March, 1),
		NewDate(2022, time.June, 30),
	}
	if len(tab.Dates) != len(expected) {
		t.Fatalf("expected %d dates, got %d", len(expected), len(tab.Dates))
	}
	for i, d := range expected {
		if tab.Dates[i] != d {
			t.Errorf("Dates[%d] = %v, expected %v", i, tab.Dates[i], d)
		}
	}
}

func TestLookupFirstOccurrence(t *testing.T) {
	tab := NewTable()
	first := NewRecord("AAA", "first", "MfX")
	tab.Append(first)
	tab.Append(NewRecord("BBB", "other", "MfX"))
	tab.Append(NewRecord("AAA", "duplicate", "MfX"))

	if got := tab.Lookup("AAA"); got != first {
		t.Errorf("Lookup returned %v, expected the first occurrence", got)
	}
	if got := tab.Lookup("missing"); got != nil {
		t.Errorf("Lookup of absent ID returned %v, expected nil", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	d := NewDate(2020, time.January, 1)
	tab := NewTable()
	tab.AddDate(d)
	rec := NewRecord("AAA", "MStarFund", "MfX")
	rec.SetWeight(d, decimal.NewFromInt(10))
	tab.Append(rec)

	clone := tab.Clone()
	clone.Records[0].SetWeight(d, decimal.NewFromInt(99))
	clone.AddDate(NewDate(2021, time.January, 1))

	if w, _ := rec.Weight(d); !w.Equal(decimal.NewFromInt(10)) {
		t.Errorf("mutating the clone changed the original weight: %s", w)
	}
	if len(tab.Dates) != 1 {
		t.Errorf("mutating the clone changed the original dates: %v", tab.Dates)
	}
}
