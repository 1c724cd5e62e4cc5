package writer

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mpitools/stylus-go/pkg/stylus/models"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func TestWrite(t *testing.T) {
	d2020 := models.NewDate(2020, time.January, 1)
	d2021 := models.NewDate(2021, time.January, 1)

	tab := models.NewTable()
	tab.AddDate(d2020)
	tab.AddDate(d2021)
	aaa := models.NewRecord("AAA", "MStarFund", "MfX")
	aaa.SetWeight(d2020, decimal.NewFromInt(10))
	aaa.SetWeight(d2021, decimal.NewFromFloat(45.678))
	tab.Append(aaa)
	bbb := models.NewRecord("BBB", "eVestFund", "eVa")
	bbb.SetWeight(d2021, decimal.NewFromInt(5))
	tab.Append(bbb)

	meta := models.NewMetadata()
	meta.Set(models.KeyRebalance, "Monthly")
	meta.Set(models.KeyPortfolioType, "Advanced")
	meta.UpdateRanges(len(tab.Records), len(tab.Dates))

	f := excelize.NewFile()
	defer f.Close()
	if err := Write(f, "Sheet1", tab, meta); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}

	f2, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f2.Close()

	tests := []struct {
		cell     string
		expected string
	}{
		// Metadata rows.
		{"A1", models.KeyRebalance},
		{"A2", "Monthly"},
		{"B1", models.KeyPortfolioType},
		{"B2", "Advanced"},
		{"C1", models.KeyAssetIDRange},
		{"C2", "A5:A6"},
		{"F1", models.KeyDateRange},
		{"F2", "D4:E4"},
		// Date headers render in ISO form.
		{"D4", "2020-01-01"},
		{"E4", "2021-01-01"},
		// Records.
		{"A5", "AAA"},
		{"B5", "MStarFund"},
		{"C5", "MfX"},
		{"D5", "10"},
		{"E5", "45.678"},
		{"A6", "BBB"},
		// Unassigned weight is written as zero.
		{"D6", "0"},
		{"E6", "5"},
	}
	for _, tt := range tests {
		got, err := f2.GetCellValue("Sheet1", tt.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", tt.cell, err)
		}
		if got != tt.expected {
			t.Errorf("%s = %q, expected %q", tt.cell, got, tt.expected)
		}
	}
}
