package output

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/reisim/property-calculator/internal/domain"
)

// CSVFormatter emits one row per projection year. Stressed years follow the
// baseline years, tagged by the scenario column.
type CSVFormatter struct{}

// Name implements Formatter.
func (cf *CSVFormatter) Name() string { return "csv" }

var csvHeader = []string{
	"scenario", "year",
	"gross_potential_rent", "effective_income", "occupancy_percent",
	"operating_expenses", "repair_costs", "net_operating_income",
	"interest", "principal", "loan_balance",
	"property_tax", "acquisition_tax", "depreciation",
	"taxable_income", "income_tax",
	"cash_flow_pre_tax", "cash_flow_post_tax",
}

// Format implements Formatter.
func (cf *CSVFormatter) Format(result *domain.SimulationResult) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	if err := writeRows(w, "baseline", result.Baseline); err != nil {
		return "", err
	}
	if err := writeRows(w, "stressed", result.Stressed); err != nil {
		return "", err
	}

	w.Flush()
	return b.String(), w.Error()
}

func writeRows(w *csv.Writer, scenario string, series []domain.YearlyResult) error {
	for _, y := range series {
		row := []string{
			scenario,
			strconv.Itoa(y.Year),
			y.GrossPotentialRent.Round(0).String(),
			y.EffectiveIncome.Round(0).String(),
			y.OccupancyPercent.Round(2).String(),
			y.OperatingExpenses.Round(0).String(),
			y.RepairCosts.Round(0).String(),
			y.NetOperatingIncome.Round(0).String(),
			y.Interest.Round(0).String(),
			y.Principal.Round(0).String(),
			y.LoanBalance.Round(0).String(),
			y.PropertyTax.Round(0).String(),
			y.AcquisitionTax.Round(0).String(),
			y.Depreciation.Round(0).String(),
			y.TaxableIncome.Round(0).String(),
			y.IncomeTax.Round(0).String(),
			y.CashFlowPreTax.Round(0).String(),
			y.CashFlowPostTax.Round(0).String(),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
