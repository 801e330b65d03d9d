package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatTable renders the comparison as a fixed-width console table.
func FormatTable(c *Comparison) string {
	var b strings.Builder

	b.WriteString("SCENARIO COMPARISON\n")
	b.WriteString(strings.Repeat("=", 70) + "\n\n")

	writeSummary(&b, c.Baseline)
	if c.Stressed != nil {
		b.WriteString("\n")
		writeSummary(&b, *c.Stressed)

		b.WriteString("\n")
		fmt.Fprintf(&b, "Cumulative cash flow delta: %s\n", formatYen(c.CumulativeDelta))
		if c.DeadCrossShift != 0 {
			fmt.Fprintf(&b, "Dead cross arrives %d year(s) earlier under stress\n", c.DeadCrossShift)
		}

		b.WriteString("\nYEAR-BY-YEAR POST-TAX CASH FLOW\n")
		fmt.Fprintf(&b, "%-6s %15s %15s %15s\n", "Year", "Baseline", "Stressed", "Delta")
		b.WriteString(strings.Repeat("-", 55) + "\n")
		for _, d := range c.YearlyDeltas {
			fmt.Fprintf(&b, "%-6d %15s %15s %15s\n",
				d.Year, formatYen(d.BaselineCF), formatYen(d.StressedCF), formatYen(d.Delta))
		}
	}

	return b.String()
}

func writeSummary(b *strings.Builder, s ScenarioSummary) {
	fmt.Fprintf(b, "%s\n", strings.ToUpper(s.Name))
	fmt.Fprintf(b, "  Cumulative cash flow: %s\n", formatYen(s.CumulativeCashFlow))
	fmt.Fprintf(b, "  Average annual cash flow: %s\n", formatYen(s.AverageCashFlow))
	fmt.Fprintf(b, "  Final-year cash flow: %s\n", formatYen(s.FinalYearCashFlow))
	if s.FirstNegativeYear > 0 {
		fmt.Fprintf(b, "  First non-positive year: %d\n", s.FirstNegativeYear)
	}
	if s.DeadCrossYear > 0 {
		fmt.Fprintf(b, "  Dead cross year: %d\n", s.DeadCrossYear)
	}
	if s.HasExit {
		fmt.Fprintf(b, "  Exit NPV: %s\n", formatYen(s.ExitNPV))
	}
}

// formatYen renders a yen amount with thousands separators and no decimals.
func formatYen(d decimal.Decimal) string {
	neg := d.LessThan(decimal.Zero)
	s := d.Abs().Round(0).String()

	var out strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out.WriteRune(',')
		}
		out.WriteRune(r)
	}
	if neg {
		return "-¥" + out.String()
	}
	return "¥" + out.String()
}
