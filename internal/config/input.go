package config

import (
	"fmt"
	"os"

	"github.com/reisim/property-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a configuration from a YAML file, clamps out-of-range
// values and fills every missing field with its estimated default. The
// returned configuration is ready for the calculation engine.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Load(data)
}

// Load parses raw YAML into a normalized, fully-defaulted configuration.
func (ip *InputParser) Load(data []byte) (*domain.Configuration, error) {
	var cfg domain.Configuration
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	Normalize(&cfg)
	return ApplyEstimatedDefaults(&cfg), nil
}

// Normalize clamps every out-of-range value into its documented range and
// returns a note per adjustment. Out-of-range inputs are a legitimate
// in-progress state, so normalization adjusts instead of erroring.
func Normalize(cfg *domain.Configuration) []string {
	var notes []string

	clampPct := func(name string, p *decimal.Decimal) {
		if p.LessThan(decimal.Zero) {
			notes = append(notes, fmt.Sprintf("%s raised to 0%%", name))
			*p = decimal.Zero
		} else if p.GreaterThan(decimal.NewFromInt(100)) {
			notes = append(notes, fmt.Sprintf("%s capped at 100%%", name))
			*p = decimal.NewFromInt(100)
		}
	}
	clampAmount := func(name string, a *decimal.Decimal) {
		if a.LessThan(decimal.Zero) {
			notes = append(notes, fmt.Sprintf("%s raised to 0", name))
			*a = decimal.Zero
		}
	}
	clampYears := func(name string, y *int) {
		if *y < 0 {
			notes = append(notes, fmt.Sprintf("%s raised to 0", name))
			*y = 0
		}
	}

	clampAmount("property price", &cfg.Property.Price)
	clampPct("building ratio", &cfg.Property.BuildingRatioPercent)
	clampYears("building age", &cfg.Property.AgeYears)

	clampAmount("loan principal", &cfg.Loan.Principal)
	clampPct("equity", &cfg.Loan.EquityPercent)
	clampAmount("interest rate", &cfg.Loan.InterestPercent)
	clampYears("loan duration", &cfg.Loan.DurationYears)

	clampAmount("monthly rent", &cfg.Income.MonthlyRent)
	clampPct("rent decline", &cfg.Income.RentDeclinePercent)
	clampPct("late rent decline", &cfg.Income.RentDeclineLatePercent)
	clampPct("flat occupancy", &cfg.Income.Occupancy.FlatPercent)
	if b := cfg.Income.Occupancy.Banded; b != nil {
		clampPct("occupancy band 1-2", &b.Age1to2Percent)
		clampPct("occupancy band 3-10", &b.Age3to10Percent)
		clampPct("occupancy band 11-20", &b.Age11to20Percent)
		clampPct("occupancy band 21-30", &b.Age21to30Percent)
		clampPct("occupancy band 31-40", &b.Age31to40Percent)
	}
	if p := cfg.Income.Vacancy.Probabilistic; p != nil {
		clampPct("vacancy probability", &p.ProbabilityPercent)
		clampYears("vacancy months", &p.VacancyMonths)
	}
	if c := cfg.Income.Vacancy.Cyclic; c != nil {
		clampYears("vacancy cycle", &c.CycleYears)
		clampYears("cyclic vacancy months", &c.VacancyMonths)
	}

	if s := cfg.Expenses.Simple; s != nil {
		clampPct("simple expense rate", &s.RatePercent)
	}
	if d := cfg.Expenses.Detailed; d != nil {
		for i := range d.RateItems {
			clampPct("expense rate item "+d.RateItems[i].Label, &d.RateItems[i].RatePercent)
		}
		for i := range d.FixedItems {
			clampAmount("expense fixed item "+d.FixedItems[i].Label, &d.FixedItems[i].AnnualAmount)
		}
		for i := range d.EventItems {
			clampAmount("expense event item "+d.EventItems[i].Label, &d.EventItems[i].Amount)
			clampYears("expense event interval "+d.EventItems[i].Label, &d.EventItems[i].IntervalYears)
		}
		clampAmount("leasing marketing months", &d.Leasing.MarketingMonths)
		clampAmount("leasing tenancy years", &d.Leasing.AverageTenancyYears)
	}
	for i := range cfg.Repairs {
		clampAmount("repair amount", &cfg.Repairs[i].Amount)
		clampYears("repair year", &cfg.Repairs[i].Year)
	}

	clampPct("registration cost", &cfg.Acquisition.RegistrationPercent)
	clampPct("loan fee", &cfg.Acquisition.LoanFeePercent)
	clampPct("insurance cost", &cfg.Acquisition.InsurancePercent)
	clampPct("water cost", &cfg.Acquisition.WaterPercent)
	clampPct("misc cost", &cfg.Acquisition.MiscPercent)

	clampPct("land evaluation", &cfg.PropertyTax.LandEvaluationPercent)
	clampPct("building evaluation", &cfg.PropertyTax.BuildingEvaluationPercent)
	clampPct("land reduction", &cfg.PropertyTax.LandReductionPercent)
	clampYears("new-build reduction years", &cfg.PropertyTax.NewBuildReductionYears)
	clampPct("new-build reduction", &cfg.PropertyTax.NewBuildReductionPercent)
	clampPct("effective tax rate", &cfg.PropertyTax.EffectiveTaxPercent)
	clampPct("acquisition tax rate", &cfg.PropertyTax.AcquisitionTaxPercent)
	clampPct("acquisition land base", &cfg.PropertyTax.AcquisitionLandPercent)
	clampPct("aging writedown", &cfg.PropertyTax.AgingWritedownPercent)
	clampPct("aging floor", &cfg.PropertyTax.AgingFloorPercent)

	clampPct("equipment ratio", &cfg.Depreciation.EquipmentRatioPercent)
	clampYears("equipment life", &cfg.Depreciation.EquipmentLifeYears)

	if t := cfg.Tax.Individual; t != nil {
		clampAmount("other income", &t.OtherIncome)
		clampPct("resident tax", &t.ResidentTaxPercent)
	}
	if t := cfg.Tax.Corporate; t != nil {
		clampPct("corporate tax rate", &t.RatePercent)
		clampAmount("corporate minimum tax", &t.MinimumTax)
	}

	clampYears("rate shock year", &cfg.Stress.RateShockYear)
	clampPct("rent early decline", &cfg.Stress.RentEarlyPercent)
	clampPct("rent late decline", &cfg.Stress.RentLatePercent)
	clampYears("rent switch year", &cfg.Stress.RentSwitchYear)
	clampPct("occupancy decline points", &cfg.Stress.OccupancyDeclinePoints)
	clampYears("occupancy decline start", &cfg.Stress.OccupancyDeclineStartYear)

	clampYears("exit year", &cfg.Exit.ExitYear)
	clampPct("cap rate", &cfg.Exit.CapRatePercent)
	clampPct("brokerage", &cfg.Exit.BrokeragePercent)
	clampAmount("fixed brokerage", &cfg.Exit.BrokerageFixed)
	clampPct("other exit cost", &cfg.Exit.OtherCostPercent)
	clampPct("short-term gains rate", &cfg.Exit.ShortTermGainsPercent)
	clampPct("long-term gains rate", &cfg.Exit.LongTermGainsPercent)
	clampPct("discount rate", &cfg.Exit.DiscountRatePercent)

	clampYears("projection years", &cfg.ProjectionYears)

	return notes
}
