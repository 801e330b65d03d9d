package transform

import (
	"github.com/reisim/property-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// RaiseInterestRate applies a permanent rate shock from a given year.
type RaiseInterestRate struct {
	Year         int
	DeltaPercent decimal.Decimal
}

func (t *RaiseInterestRate) Name() string { return "raise_interest_rate" }

func (t *RaiseInterestRate) Description() string {
	return "Raise the loan interest rate by a fixed delta from a given year onward"
}

func (t *RaiseInterestRate) Validate(base *domain.Configuration) error {
	if t.Year < 1 {
		return &TransformError{TransformName: t.Name(), Reason: "shock year must be at least 1"}
	}
	return nil
}

func (t *RaiseInterestRate) Apply(base *domain.Configuration) (*domain.Configuration, error) {
	out := base.DeepCopy()
	out.Loan.ShockYear = t.Year
	out.Loan.ShockDeltaPercent = t.DeltaPercent
	return out, nil
}

// OverrideRentCurve replaces the single rent-decline rate with an
// early/late pair switching at a given year.
type OverrideRentCurve struct {
	EarlyPercent decimal.Decimal
	LatePercent  decimal.Decimal
	SwitchYear   int
}

func (t *OverrideRentCurve) Name() string { return "override_rent_curve" }

func (t *OverrideRentCurve) Description() string {
	return "Replace the rent-decline curve with an early/late two-phase pair"
}

func (t *OverrideRentCurve) Validate(base *domain.Configuration) error {
	if t.SwitchYear < 1 {
		return &TransformError{TransformName: t.Name(), Reason: "switch year must be at least 1"}
	}
	return nil
}

func (t *OverrideRentCurve) Apply(base *domain.Configuration) (*domain.Configuration, error) {
	out := base.DeepCopy()
	out.Income.RentDeclinePercent = t.EarlyPercent
	out.Income.RentDeclineLatePercent = t.LatePercent
	out.Income.RentSwitchYear = t.SwitchYear
	return out, nil
}

// ReduceOccupancy subtracts a fixed number of percentage points from the
// resolved occupancy from a given year onward.
type ReduceOccupancy struct {
	Points    decimal.Decimal
	StartYear int
}

func (t *ReduceOccupancy) Name() string { return "reduce_occupancy" }

func (t *ReduceOccupancy) Description() string {
	return "Subtract occupancy percentage points from a given year onward"
}

func (t *ReduceOccupancy) Validate(base *domain.Configuration) error {
	if t.StartYear < 1 {
		return &TransformError{TransformName: t.Name(), Reason: "start year must be at least 1"}
	}
	if t.Points.LessThan(decimal.Zero) {
		return &TransformError{TransformName: t.Name(), Reason: "decline points cannot be negative"}
	}
	return nil
}

func (t *ReduceOccupancy) Apply(base *domain.Configuration) (*domain.Configuration, error) {
	out := base.DeepCopy()
	out.Income.Occupancy.DeclinePoints = t.Points
	out.Income.Occupancy.DeclineStartYear = t.StartYear
	return out, nil
}

// ComposeStress derives the stressed configuration from the base one's
// stress block. The returned configuration has its own stress toggle
// cleared so the derived run cannot recurse.
func ComposeStress(base *domain.Configuration) (*domain.Configuration, error) {
	s := base.Stress
	transforms := []ConfigTransform{
		&RaiseInterestRate{Year: s.RateShockYear, DeltaPercent: s.RateShockDeltaPercent},
	}
	if s.RentCurveOverride {
		transforms = append(transforms, &OverrideRentCurve{
			EarlyPercent: s.RentEarlyPercent,
			LatePercent:  s.RentLatePercent,
			SwitchYear:   s.RentSwitchYear,
		})
	}
	if s.OccupancyDecline {
		transforms = append(transforms, &ReduceOccupancy{
			Points:    s.OccupancyDeclinePoints,
			StartYear: s.OccupancyDeclineStartYear,
		})
	}

	out, err := ApplyTransforms(base, transforms)
	if err != nil {
		return nil, err
	}
	out.Stress.Enabled = false
	return out, nil
}
