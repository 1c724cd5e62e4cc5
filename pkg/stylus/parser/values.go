package parser

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseWeight parses a cell as a decimal weight. Blank cells report
// ok=false with no error.
func parseWeight(s string) (decimal.Decimal, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, false, nil
	}
	w, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false, err
	}
	return w, true, nil
}
