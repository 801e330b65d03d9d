package tui

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/reisim/property-calculator/internal/domain"
)

// View renders the whole screen.
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render("Error: "+m.err.Error()) + "\n" +
			helpStyle.Render("r reload · q quit") + "\n"
	}
	if m.loading {
		return titleStyle.Render("Property Investment Simulator") + "\n\nLoading...\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Property Investment Simulator"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(m.headline()))
	b.WriteString("\n\n")
	b.WriteString(m.renderTable())

	if m.showExit {
		if e := m.exitSummary(); e != nil {
			b.WriteString("\n")
			b.WriteString(panelStyle.Render(renderExit(e)))
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ scroll · tab baseline/stressed · e exit panel · r reload · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) headline() string {
	name := "baseline"
	deadCross := m.result.DeadCrossYear
	if m.view == viewStressed {
		name = "stressed"
		deadCross = m.result.StressedDeadCrossYear
	}
	cumulative := domain.CumulativeCashFlow(m.series())

	line := fmt.Sprintf("%s · cumulative post-tax CF %s", name, tuiYen(cumulative))
	if deadCross > 0 {
		line += deadCrossStyle.Render(fmt.Sprintf(" · dead cross year %d", deadCross))
	}
	return line
}

func (m Model) renderTable() string {
	series := m.series()
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-5s %13s %13s %6s %13s %13s %13s",
		"Year", "EGI", "OpEx", "Occ%", "DebtSvc", "Tax", "CF post")))
	b.WriteString("\n")

	start := m.rowOffset
	end := start + m.visibleRows()
	if end > len(series) {
		end = len(series)
	}
	for _, y := range series[start:end] {
		row := fmt.Sprintf("%-5d %13s %13s %6s %13s %13s %13s",
			y.Year,
			tuiYen(y.EffectiveIncome),
			tuiYen(y.OperatingExpenses.Add(y.RepairCosts)),
			y.OccupancyPercent.Round(1).String(),
			tuiYen(y.DebtService()),
			tuiYen(y.IncomeTax),
			tuiYen(y.CashFlowPostTax))
		if y.CashFlowPostTax.LessThanOrEqual(decimal.Zero) {
			row = negativeStyle.Render(row)
		} else {
			row = positiveStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	if end < len(series) {
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("... %d more years", len(series)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderExit(e *domain.ExitSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Exit in year %d\n", e.ExitYear)
	fmt.Fprintf(&b, "Sale price       %s\n", tuiYen(e.SalePrice))
	fmt.Fprintf(&b, "Costs            %s\n", tuiYen(e.TransactionCosts))
	fmt.Fprintf(&b, "Capital gain     %s\n", tuiYen(e.CapitalGain))
	fmt.Fprintf(&b, "Gains tax        %s\n", tuiYen(e.CapitalGainsTax))
	fmt.Fprintf(&b, "Loan payoff      %s\n", tuiYen(e.LoanPayoff))
	fmt.Fprintf(&b, "Net proceeds     %s\n", tuiYen(e.NetProceeds))
	fmt.Fprintf(&b, "NPV              %s", tuiYen(e.NPV))
	return b.String()
}

// tuiYen renders an amount with thousands separators and no decimals.
func tuiYen(d decimal.Decimal) string {
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
