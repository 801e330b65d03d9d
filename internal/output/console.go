package output

import (
	"fmt"
	"strings"

	"github.com/reisim/property-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders the yearly series as fixed-width tables with a
// summary block, suitable for a terminal.
type ConsoleFormatter struct{}

// Name implements Formatter.
func (cf *ConsoleFormatter) Name() string { return "console" }

// Format implements Formatter.
func (cf *ConsoleFormatter) Format(result *domain.SimulationResult) (string, error) {
	var b strings.Builder

	b.WriteString("PROPERTY INVESTMENT PROJECTION\n")
	b.WriteString(strings.Repeat("=", 100) + "\n\n")

	if result.InitialCosts.GreaterThan(decimal.Zero) {
		fmt.Fprintf(&b, "Initial acquisition costs: %s\n\n", yen(result.InitialCosts))
	}

	b.WriteString("BASELINE\n")
	writeSeries(&b, result.Baseline)
	writeSeriesSummary(&b, result.Baseline, result.DeadCrossYear)

	if result.Exit != nil {
		b.WriteString("\n")
		writeExit(&b, "EXIT", result.Exit)
	}

	if len(result.Stressed) > 0 {
		b.WriteString("\nSTRESSED\n")
		writeSeries(&b, result.Stressed)
		writeSeriesSummary(&b, result.Stressed, result.StressedDeadCrossYear)
		if result.StressedExit != nil {
			b.WriteString("\n")
			writeExit(&b, "STRESSED EXIT", result.StressedExit)
		}
	}

	return b.String(), nil
}

func writeSeries(b *strings.Builder, series []domain.YearlyResult) {
	fmt.Fprintf(b, "%-5s %14s %14s %7s %14s %14s %14s %14s %14s\n",
		"Year", "GPR", "EGI", "Occ%", "OpEx", "DebtSvc", "Tax", "CF pre", "CF post")
	b.WriteString(strings.Repeat("-", 120) + "\n")
	for _, y := range series {
		fmt.Fprintf(b, "%-5d %14s %14s %7s %14s %14s %14s %14s %14s\n",
			y.Year,
			yen(y.GrossPotentialRent),
			yen(y.EffectiveIncome),
			y.OccupancyPercent.Round(1).String(),
			yen(y.OperatingExpenses.Add(y.RepairCosts)),
			yen(y.DebtService()),
			yen(y.IncomeTax),
			yen(y.CashFlowPreTax),
			yen(y.CashFlowPostTax))
	}
}

func writeSeriesSummary(b *strings.Builder, series []domain.YearlyResult, deadCross int) {
	fmt.Fprintf(b, "\nCumulative post-tax cash flow: %s\n", yen(domain.CumulativeCashFlow(series)))
	if deadCross > 0 {
		fmt.Fprintf(b, "Dead cross in year %d: post-tax cash flow turns non-positive\n", deadCross)
	} else {
		b.WriteString("No dead cross within the projection horizon\n")
	}
}

func writeExit(b *strings.Builder, title string, e *domain.ExitSummary) {
	fmt.Fprintf(b, "%s (year %d)\n", title, e.ExitYear)
	fmt.Fprintf(b, "  Sale price: %s\n", yen(e.SalePrice))
	fmt.Fprintf(b, "  Transaction costs: %s\n", yen(e.TransactionCosts))
	fmt.Fprintf(b, "  Book value: %s\n", yen(e.BookValue))
	fmt.Fprintf(b, "  Capital gain: %s\n", yen(e.CapitalGain))
	fmt.Fprintf(b, "  Capital gains tax: %s\n", yen(e.CapitalGainsTax))
	fmt.Fprintf(b, "  Loan payoff: %s\n", yen(e.LoanPayoff))
	fmt.Fprintf(b, "  Net proceeds: %s\n", yen(e.NetProceeds))
	fmt.Fprintf(b, "  NPV: %s\n", yen(e.NPV))
}

// yen renders an amount with thousands separators and no decimals.
func yen(d decimal.Decimal) string {
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
