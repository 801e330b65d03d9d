package domain

import (
	"github.com/shopspring/decimal"
)

// Configuration is the complete, immutable input for one simulation run.
// All monetary amounts are base yen; all *Percent fields are 0-100 scale.
// A Configuration is fully populated by config.ApplyEstimatedDefaults before
// it reaches the calculation engine, so the engine never sees missing fields.
type Configuration struct {
	Property     PropertyProfile       `yaml:"property" json:"property"`
	Loan         LoanTerms             `yaml:"loan" json:"loan"`
	Income       IncomeAssumptions     `yaml:"income" json:"income"`
	Expenses     ExpensePolicy         `yaml:"expenses" json:"expenses"`
	Repairs      []RepairEvent         `yaml:"repairs,omitempty" json:"repairs,omitempty"`
	Acquisition  AcquisitionCostRates  `yaml:"acquisition_costs" json:"acquisition_costs"`
	PropertyTax  PropertyTaxParameters `yaml:"property_tax" json:"property_tax"`
	Depreciation DepreciationPolicy    `yaml:"depreciation" json:"depreciation"`
	Tax          TaxRegime             `yaml:"tax" json:"tax"`
	Stress       StressScenario        `yaml:"stress" json:"stress"`
	Exit         ExitPlan              `yaml:"exit" json:"exit"`

	ProjectionYears int `yaml:"projection_years" json:"projection_years"`
}

// PropertyProfile describes the asset being acquired.
type PropertyProfile struct {
	Price                decimal.Decimal `yaml:"price" json:"price"`
	BuildingRatioPercent decimal.Decimal `yaml:"building_ratio_percent" json:"building_ratio_percent"`
	Structure            StructureType   `yaml:"structure" json:"structure"`
	AgeYears             int             `yaml:"age_years" json:"age_years"`
	PropertyType         PropertyType    `yaml:"property_type,omitempty" json:"property_type,omitempty"`
	Units                int             `yaml:"units,omitempty" json:"units,omitempty"`
}

// BuildingPrice returns price x building ratio.
func (p PropertyProfile) BuildingPrice() decimal.Decimal {
	return p.Price.Mul(p.BuildingRatioPercent).Div(decimal.NewFromInt(100))
}

// LandPrice returns the non-building remainder of the acquisition price.
// Building price plus land price always equals the acquisition price.
func (p PropertyProfile) LandPrice() decimal.Decimal {
	return p.Price.Sub(p.BuildingPrice())
}

// LoanTerms describes the financing of the acquisition. ShockYear and
// ShockDeltaPercent are the effective rate-shock fields the amortization
// scheduler reads; the scenario composer populates them on the stressed
// configuration and they stay zero on the baseline.
type LoanTerms struct {
	Principal       decimal.Decimal `yaml:"principal" json:"principal"`
	EquityPercent   decimal.Decimal `yaml:"equity_percent" json:"equity_percent"`
	InterestPercent decimal.Decimal `yaml:"interest_percent" json:"interest_percent"`
	DurationYears   int             `yaml:"duration_years" json:"duration_years"`

	ShockYear         int             `yaml:"shock_year,omitempty" json:"shock_year,omitempty"`
	ShockDeltaPercent decimal.Decimal `yaml:"shock_delta_percent,omitempty" json:"shock_delta_percent,omitempty"`
}

// IncomeAssumptions drives gross and effective rent per year. The two-phase
// rent curve (late percent plus switch year) is populated by the scenario
// composer; a zero switch year means the single-phase decline applies
// throughout.
type IncomeAssumptions struct {
	MonthlyRent        decimal.Decimal `yaml:"monthly_rent" json:"monthly_rent"`
	RentDeclinePercent decimal.Decimal `yaml:"rent_decline_percent" json:"rent_decline_percent"`
	Occupancy          OccupancyPolicy `yaml:"occupancy" json:"occupancy"`
	Vacancy            VacancyPolicy   `yaml:"vacancy" json:"vacancy"`

	RentDeclineLatePercent decimal.Decimal `yaml:"rent_decline_late_percent,omitempty" json:"rent_decline_late_percent,omitempty"`
	RentSwitchYear         int             `yaml:"rent_switch_year,omitempty" json:"rent_switch_year,omitempty"`
}

// OccupancyPolicy resolves the expected occupancy rate for a building age.
// When Detail is false the flat percentage applies to every year; otherwise
// the five age bands are consulted. DeclinePoints/DeclineStartYear are the
// effective stress fields written by the scenario composer.
type OccupancyPolicy struct {
	Detail      bool                `yaml:"detail" json:"detail"`
	FlatPercent decimal.Decimal     `yaml:"flat_percent" json:"flat_percent"`
	Banded      *AgeBandedOccupancy `yaml:"banded,omitempty" json:"banded,omitempty"`

	DeclinePoints    decimal.Decimal `yaml:"decline_points,omitempty" json:"decline_points,omitempty"`
	DeclineStartYear int             `yaml:"decline_start_year,omitempty" json:"decline_start_year,omitempty"`
}

// AgeBandedOccupancy holds the occupancy percentage per building-age band.
type AgeBandedOccupancy struct {
	Age1to2Percent   decimal.Decimal `yaml:"age_1_2_percent" json:"age_1_2_percent"`
	Age3to10Percent  decimal.Decimal `yaml:"age_3_10_percent" json:"age_3_10_percent"`
	Age11to20Percent decimal.Decimal `yaml:"age_11_20_percent" json:"age_11_20_percent"`
	Age21to30Percent decimal.Decimal `yaml:"age_21_30_percent" json:"age_21_30_percent"`
	Age31to40Percent decimal.Decimal `yaml:"age_31_40_percent" json:"age_31_40_percent"`
}

// ForAge returns the band percentage applying to a building age in years.
func (b AgeBandedOccupancy) ForAge(age int) decimal.Decimal {
	switch {
	case age <= 2:
		return b.Age1to2Percent
	case age <= 10:
		return b.Age3to10Percent
	case age <= 20:
		return b.Age11to20Percent
	case age <= 30:
		return b.Age21to30Percent
	default:
		return b.Age31to40Percent
	}
}

// VacancyMode selects the extra vacancy adjustment applied on top of the
// occupancy policy.
type VacancyMode string

const (
	VacancyFixed         VacancyMode = "fixed"
	VacancyCyclic        VacancyMode = "cyclic"
	VacancyProbabilistic VacancyMode = "probabilistic"
)

// VacancyPolicy is a tagged variant: only the payload matching Mode is
// consulted; the others are ignored.
type VacancyPolicy struct {
	Mode          VacancyMode           `yaml:"mode" json:"mode"`
	Cyclic        *CyclicVacancy        `yaml:"cyclic,omitempty" json:"cyclic,omitempty"`
	Probabilistic *ProbabilisticVacancy `yaml:"probabilistic,omitempty" json:"probabilistic,omitempty"`
}

// CyclicVacancy models a vacancy of VacancyMonths recurring every CycleYears.
type CyclicVacancy struct {
	CycleYears    int `yaml:"cycle_years" json:"cycle_years"`
	VacancyMonths int `yaml:"vacancy_months" json:"vacancy_months"`
}

// ProbabilisticVacancy models the deterministic expectation of a vacancy of
// VacancyMonths occurring with ProbabilityPercent each year. Expectation,
// not sampling, keeps every run reproducible.
type ProbabilisticVacancy struct {
	ProbabilityPercent decimal.Decimal `yaml:"probability_percent" json:"probability_percent"`
	VacancyMonths      int             `yaml:"vacancy_months" json:"vacancy_months"`
}

// ExpenseMode selects the operating-expense model.
type ExpenseMode string

const (
	ExpenseSimple   ExpenseMode = "simple"
	ExpenseDetailed ExpenseMode = "detailed"
)

// ExpensePolicy is a tagged variant over the two expense models.
type ExpensePolicy struct {
	Mode     ExpenseMode      `yaml:"mode" json:"mode"`
	Simple   *SimpleExpense   `yaml:"simple,omitempty" json:"simple,omitempty"`
	Detailed *DetailedExpense `yaml:"detailed,omitempty" json:"detailed,omitempty"`
}

// SimpleExpense books a single percentage of gross potential rent.
type SimpleExpense struct {
	RatePercent decimal.Decimal `yaml:"rate_percent" json:"rate_percent"`
}

// DetailedExpense itemizes operating costs.
type DetailedExpense struct {
	RateItems  []RateItem  `yaml:"rate_items,omitempty" json:"rate_items,omitempty"`
	FixedItems []FixedItem `yaml:"fixed_items,omitempty" json:"fixed_items,omitempty"`
	EventItems []EventItem `yaml:"event_items,omitempty" json:"event_items,omitempty"`
	Leasing    LeasingCost `yaml:"leasing" json:"leasing"`
}

// RateBase selects the income figure a RateItem is charged against.
type RateBase string

const (
	RateBaseGPR RateBase = "gpr"
	RateBaseEGI RateBase = "egi"
)

// RateItem is a percentage-of-income expense line.
type RateItem struct {
	Label       string          `yaml:"label" json:"label"`
	RatePercent decimal.Decimal `yaml:"rate_percent" json:"rate_percent"`
	Base        RateBase        `yaml:"base" json:"base"`
	Enabled     bool            `yaml:"enabled" json:"enabled"`
}

// FixedItem is a flat annual expense line.
type FixedItem struct {
	Label        string          `yaml:"label" json:"label"`
	AnnualAmount decimal.Decimal `yaml:"annual_amount" json:"annual_amount"`
	Enabled      bool            `yaml:"enabled" json:"enabled"`
}

// EventBooking selects how a periodic event cost hits the books.
type EventBooking string

const (
	// EventReserve levelizes the cost across the interval.
	EventReserve EventBooking = "reserve"
	// EventCash books the full cost in the occurrence year.
	EventCash EventBooking = "cash"
)

// EventItem is a cost recurring every IntervalYears.
type EventItem struct {
	Label         string          `yaml:"label" json:"label"`
	Amount        decimal.Decimal `yaml:"amount" json:"amount"`
	IntervalYears int             `yaml:"interval_years" json:"interval_years"`
	Booking       EventBooking    `yaml:"booking" json:"booking"`
	Enabled       bool            `yaml:"enabled" json:"enabled"`
}

// LeasingCost models tenant-turnover marketing cost as a fraction of rent:
// (marketing months / (average tenancy years x 12)) x GPR.
type LeasingCost struct {
	MarketingMonths     decimal.Decimal `yaml:"marketing_months" json:"marketing_months"`
	AverageTenancyYears decimal.Decimal `yaml:"average_tenancy_years" json:"average_tenancy_years"`
}

// RepairEvent is a one-off repair booked in a specific year.
type RepairEvent struct {
	Year   int             `yaml:"year" json:"year"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
	Label  string          `yaml:"label,omitempty" json:"label,omitempty"`
}

// AcquisitionCostRates are the one-time closing cost percentages of the
// acquisition price. They form the initial cash outlay alongside equity and
// are reported separately from the yearly series.
type AcquisitionCostRates struct {
	RegistrationPercent decimal.Decimal `yaml:"registration_percent" json:"registration_percent"`
	LoanFeePercent      decimal.Decimal `yaml:"loan_fee_percent" json:"loan_fee_percent"`
	InsurancePercent    decimal.Decimal `yaml:"insurance_percent" json:"insurance_percent"`
	WaterPercent        decimal.Decimal `yaml:"water_percent" json:"water_percent"`
	MiscPercent         decimal.Decimal `yaml:"misc_percent" json:"misc_percent"`
}

// TotalPercent sums all closing cost rates.
func (a AcquisitionCostRates) TotalPercent() decimal.Decimal {
	return a.RegistrationPercent.
		Add(a.LoanFeePercent).
		Add(a.InsurancePercent).
		Add(a.WaterPercent).
		Add(a.MiscPercent)
}

// PropertyTaxParameters parameterizes annual property tax and the one-time
// acquisition tax.
type PropertyTaxParameters struct {
	LandEvaluationPercent     decimal.Decimal `yaml:"land_evaluation_percent" json:"land_evaluation_percent"`
	BuildingEvaluationPercent decimal.Decimal `yaml:"building_evaluation_percent" json:"building_evaluation_percent"`
	LandReductionPercent      decimal.Decimal `yaml:"land_reduction_percent" json:"land_reduction_percent"`
	NewBuildReductionYears    int             `yaml:"new_build_reduction_years" json:"new_build_reduction_years"`
	NewBuildReductionPercent  decimal.Decimal `yaml:"new_build_reduction_percent" json:"new_build_reduction_percent"`
	EffectiveTaxPercent       decimal.Decimal `yaml:"effective_tax_percent" json:"effective_tax_percent"`
	AcquisitionTaxPercent     decimal.Decimal `yaml:"acquisition_tax_percent" json:"acquisition_tax_percent"`
	AcquisitionLandPercent    decimal.Decimal `yaml:"acquisition_land_percent" json:"acquisition_land_percent"`
	// AcquisitionTaxYear is the projection year the acquisition tax is
	// booked in: 1 (at purchase) or 2 (the following year).
	AcquisitionTaxYear int `yaml:"acquisition_tax_year" json:"acquisition_tax_year"`
	// AgingWritedownPercent is the annual decline of the building
	// evaluation, floored at AgingFloorPercent of the original.
	AgingWritedownPercent decimal.Decimal `yaml:"aging_writedown_percent" json:"aging_writedown_percent"`
	AgingFloorPercent     decimal.Decimal `yaml:"aging_floor_percent" json:"aging_floor_percent"`
}

// DepreciationPolicy controls the building/equipment split.
type DepreciationPolicy struct {
	EquipmentSplit        bool            `yaml:"equipment_split" json:"equipment_split"`
	EquipmentRatioPercent decimal.Decimal `yaml:"equipment_ratio_percent" json:"equipment_ratio_percent"`
	EquipmentLifeYears    int             `yaml:"equipment_life_years" json:"equipment_life_years"`
}

// TaxRegimeMode selects the income-tax regime.
type TaxRegimeMode string

const (
	TaxIndividual TaxRegimeMode = "individual"
	TaxCorporate  TaxRegimeMode = "corporate"
)

// TaxRegime is a tagged variant over the two income-tax regimes.
type TaxRegime struct {
	Mode       TaxRegimeMode  `yaml:"mode" json:"mode"`
	Individual *IndividualTax `yaml:"individual,omitempty" json:"individual,omitempty"`
	Corporate  *CorporateTax  `yaml:"corporate,omitempty" json:"corporate,omitempty"`
}

// IndividualTax holds the progressive-regime inputs.
type IndividualTax struct {
	OtherIncome        decimal.Decimal `yaml:"other_income" json:"other_income"`
	ResidentTaxPercent decimal.Decimal `yaml:"resident_tax_percent" json:"resident_tax_percent"`
}

// CorporateTax holds the flat-regime inputs. MinimumTax is charged every
// year regardless of profitability.
type CorporateTax struct {
	RatePercent decimal.Decimal `yaml:"rate_percent" json:"rate_percent"`
	MinimumTax  decimal.Decimal `yaml:"minimum_tax" json:"minimum_tax"`
}

// StressScenario describes the deltas the scenario composer applies when
// Enabled. The stressed run re-executes the whole pipeline with independent
// loan and tax state.
type StressScenario struct {
	Enabled bool `yaml:"enabled" json:"enabled"`

	RateShockYear         int             `yaml:"rate_shock_year" json:"rate_shock_year"`
	RateShockDeltaPercent decimal.Decimal `yaml:"rate_shock_delta_percent" json:"rate_shock_delta_percent"`

	RentCurveOverride bool            `yaml:"rent_curve_override" json:"rent_curve_override"`
	RentEarlyPercent  decimal.Decimal `yaml:"rent_early_percent" json:"rent_early_percent"`
	RentLatePercent   decimal.Decimal `yaml:"rent_late_percent" json:"rent_late_percent"`
	RentSwitchYear    int             `yaml:"rent_switch_year" json:"rent_switch_year"`

	OccupancyDecline          bool            `yaml:"occupancy_decline" json:"occupancy_decline"`
	OccupancyDeclinePoints    decimal.Decimal `yaml:"occupancy_decline_points" json:"occupancy_decline_points"`
	OccupancyDeclineStartYear int             `yaml:"occupancy_decline_start_year" json:"occupancy_decline_start_year"`
}

// ExitPlan describes the optional sale at ExitYear.
type ExitPlan struct {
	Enabled bool `yaml:"enabled" json:"enabled"`

	ExitYear              int             `yaml:"exit_year" json:"exit_year"`
	CapRatePercent        decimal.Decimal `yaml:"cap_rate_percent" json:"cap_rate_percent"`
	BrokeragePercent      decimal.Decimal `yaml:"brokerage_percent" json:"brokerage_percent"`
	BrokerageFixed        decimal.Decimal `yaml:"brokerage_fixed" json:"brokerage_fixed"`
	OtherCostPercent      decimal.Decimal `yaml:"other_cost_percent" json:"other_cost_percent"`
	ShortTermGainsPercent decimal.Decimal `yaml:"short_term_gains_percent" json:"short_term_gains_percent"`
	LongTermGainsPercent  decimal.Decimal `yaml:"long_term_gains_percent" json:"long_term_gains_percent"`
	DiscountRatePercent   decimal.Decimal `yaml:"discount_rate_percent" json:"discount_rate_percent"`
}

// Empty reports whether the configuration lacks the inputs any meaningful
// simulation needs. Empty configurations simulate to an all-zero series so
// a UI stays responsive while the user is still typing.
func (c *Configuration) Empty() bool {
	return c.Property.Price.LessThanOrEqual(decimal.Zero) ||
		c.Income.MonthlyRent.LessThanOrEqual(decimal.Zero)
}

// DeepCopy returns an independent copy of the configuration. Slices and
// variant payloads are cloned so a stressed run can never alias baseline
// state.
func (c *Configuration) DeepCopy() *Configuration {
	out := *c

	if c.Income.Occupancy.Banded != nil {
		b := *c.Income.Occupancy.Banded
		out.Income.Occupancy.Banded = &b
	}
	if c.Income.Vacancy.Cyclic != nil {
		v := *c.Income.Vacancy.Cyclic
		out.Income.Vacancy.Cyclic = &v
	}
	if c.Income.Vacancy.Probabilistic != nil {
		v := *c.Income.Vacancy.Probabilistic
		out.Income.Vacancy.Probabilistic = &v
	}
	if c.Expenses.Simple != nil {
		s := *c.Expenses.Simple
		out.Expenses.Simple = &s
	}
	if c.Expenses.Detailed != nil {
		d := *c.Expenses.Detailed
		d.RateItems = append([]RateItem(nil), c.Expenses.Detailed.RateItems...)
		d.FixedItems = append([]FixedItem(nil), c.Expenses.Detailed.FixedItems...)
		d.EventItems = append([]EventItem(nil), c.Expenses.Detailed.EventItems...)
		out.Expenses.Detailed = &d
	}
	if c.Tax.Individual != nil {
		t := *c.Tax.Individual
		out.Tax.Individual = &t
	}
	if c.Tax.Corporate != nil {
		t := *c.Tax.Corporate
		out.Tax.Corporate = &t
	}
	out.Repairs = append([]RepairEvent(nil), c.Repairs...)

	return &out
}
