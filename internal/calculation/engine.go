package calculation

import (
	"github.com/reisim/property-calculator/internal/domain"
	"github.com/reisim/property-calculator/internal/transform"
	"github.com/shopspring/decimal"
)

// Logger is the minimal logging surface the engine uses. The CLI satisfies
// it with the standard log package; tests and library callers get NopLogger.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// CalculationEngine orchestrates the year loop: it threads amortization,
// depreciation and cumulative tax state between the sub-calculators and
// assembles the yearly series, the optional stressed series and the
// optional exit summary. Every sub-calculator is a pure function of
// (configuration, year); the engine is the only component with cross-year
// state, and none of that state survives a run, so the engine is safe to
// call concurrently.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates an engine with a no-op logger.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger replaces the engine logger; nil restores the no-op logger.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	ce.Logger = l
}

// defaultProjectionYears is used when the configuration does not fix a
// horizon.
const defaultProjectionYears = 35

// maxProjectionYears caps the horizon.
const maxProjectionYears = 50

// Simulate runs the full pipeline for a configuration: baseline series,
// dead-cross detection, and - when toggled - the stressed series and exit
// valuation. It never returns an error for numeric inputs: an empty
// configuration produces an all-zero series.
func (ce *CalculationEngine) Simulate(cfg *domain.Configuration) *domain.SimulationResult {
	years := ce.horizon(cfg)

	result := &domain.SimulationResult{}

	if cfg.Empty() {
		ce.Logger.Debugf("configuration empty, returning zero series of %d years", years)
		result.Baseline = zeroSeries(years)
		return result
	}

	result.Baseline = ce.runSeries(cfg, years)
	result.DeadCrossYear = domain.FindDeadCross(result.Baseline)
	result.InitialCosts = cfg.Property.Price.Mul(pct(cfg.Acquisition.TotalPercent())).
		Add(NewPropertyTaxAssessor(cfg).AcquisitionTax())

	if cfg.Exit.Enabled {
		dep := NewDepreciationScheduler(cfg)
		exitEngine := NewExitValuationEngine(cfg)
		result.Exit = exitEngine.Evaluate(result.Baseline, dep.CumulativeThrough(cfg.Exit.ExitYear))
	}

	if cfg.Stress.Enabled {
		stressedCfg, err := transform.ComposeStress(cfg)
		if err != nil {
			// A malformed stress block degrades to no stressed series
			// rather than failing the whole run.
			ce.Logger.Warnf("stress scenario skipped: %v", err)
			return result
		}
		result.Stressed = ce.runSeries(stressedCfg, years)
		result.StressedDeadCrossYear = domain.FindDeadCross(result.Stressed)
		if stressedCfg.Exit.Enabled {
			dep := NewDepreciationScheduler(stressedCfg)
			exitEngine := NewExitValuationEngine(stressedCfg)
			result.StressedExit = exitEngine.Evaluate(result.Stressed, dep.CumulativeThrough(stressedCfg.Exit.ExitYear))
		}
	}

	return result
}

// horizon resolves the projection length in years.
func (ce *CalculationEngine) horizon(cfg *domain.Configuration) int {
	years := cfg.ProjectionYears
	if years <= 0 {
		years = defaultProjectionYears
		if cfg.Loan.DurationYears > years {
			years = cfg.Loan.DurationYears
		}
	}
	if years > maxProjectionYears {
		years = maxProjectionYears
	}
	return years
}

// runSeries executes the year loop for one configuration.
func (ce *CalculationEngine) runSeries(cfg *domain.Configuration, years int) []domain.YearlyResult {
	amort := NewAmortizationScheduler(cfg.Loan).Schedule(years)
	income := NewIncomeProjector(cfg)
	expenses := NewOperatingExpenseEngine(cfg)
	depreciation := NewDepreciationScheduler(cfg)
	propertyTax := NewPropertyTaxAssessor(cfg)
	incomeTax := NewIncomeTaxCalculator(cfg)

	series := make([]domain.YearlyResult, years)
	for i := 0; i < years; i++ {
		year := i + 1

		gpr := income.GrossPotentialRent(year)
		occupancy := income.Occupancy(year)
		egi := gpr.Mul(pct(occupancy))

		opex := expenses.Annual(year, gpr, egi)
		repairs := repairsForYear(cfg.Repairs, year)

		row := amort[i]

		propTax := propertyTax.AnnualTax(year)
		acqTax := decimal.Zero
		if year == propertyTax.AcquisitionTaxYear() {
			acqTax = propertyTax.AcquisitionTax()
		}

		dep := depreciation.Annual(year)

		// The acquisition tax is deductible in its booked year but is paid
		// out of the one-time acquisition outlay (InitialCosts), so it
		// reduces taxable income without entering the yearly cash flow.
		taxable := egi.Sub(opex).Sub(repairs).Sub(row.Interest).Sub(dep).Sub(propTax).Sub(acqTax)
		tax := incomeTax.TaxForYear(taxable)

		preTax := egi.Sub(opex).Sub(repairs).
			Sub(row.Interest).Sub(row.Principal).
			Sub(propTax)

		series[i] = domain.YearlyResult{
			Year:               year,
			GrossPotentialRent: gpr,
			EffectiveIncome:    egi,
			OccupancyPercent:   occupancy,
			OperatingExpenses:  opex,
			RepairCosts:        repairs,
			NetOperatingIncome: egi.Sub(opex),
			Interest:           row.Interest,
			Principal:          row.Principal,
			LoanBalance:        row.Balance,
			PropertyTax:        propTax,
			AcquisitionTax:     acqTax,
			Depreciation:       dep,
			TaxableIncome:      taxable,
			IncomeTax:          tax,
			CashFlowPreTax:     preTax,
			CashFlowPostTax:    preTax.Sub(tax),
		}
	}
	return series
}

// repairsForYear sums one-off repair events booked in a year.
func repairsForYear(repairs []domain.RepairEvent, year int) decimal.Decimal {
	total := decimal.Zero
	for _, r := range repairs {
		if r.Year == year {
			total = total.Add(r.Amount)
		}
	}
	return total
}

// zeroSeries allocates an all-zero result sequence.
func zeroSeries(years int) []domain.YearlyResult {
	series := make([]domain.YearlyResult, years)
	for i := range series {
		series[i].Year = i + 1
	}
	return series
}
