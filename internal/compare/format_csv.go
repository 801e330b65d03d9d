package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// FormatCSV renders the year-by-year comparison as CSV, one row per year.
// Without a stressed series there are no delta rows, only the header.
func FormatCSV(c *Comparison) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write([]string{"year", "baseline_cash_flow", "stressed_cash_flow", "delta"}); err != nil {
		return "", err
	}

	for _, d := range c.YearlyDeltas {
		row := []string{
			strconv.Itoa(d.Year),
			d.BaselineCF.Round(0).String(),
			d.StressedCF.Round(0).String(),
			d.Delta.Round(0).String(),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	return b.String(), w.Error()
}
