package calculation

import (
	"github.com/reisim/property-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// AmortizationYear is one row of a fixed-payment loan schedule.
type AmortizationYear struct {
	Year      int
	Payment   decimal.Decimal
	Interest  decimal.Decimal
	Principal decimal.Decimal
	Balance   decimal.Decimal
}

// AmortizationScheduler produces an annuity repayment schedule. When a rate
// shock is configured the remaining balance is reamortized over the
// remaining term at the new rate, so the balance still reaches exactly zero
// at term end.
type AmortizationScheduler struct {
	Principal         decimal.Decimal
	AnnualRatePercent decimal.Decimal
	TermYears         int
	ShockYear         int
	ShockDeltaPercent decimal.Decimal
}

// NewAmortizationScheduler builds a scheduler from loan terms.
func NewAmortizationScheduler(loan domain.LoanTerms) *AmortizationScheduler {
	return &AmortizationScheduler{
		Principal:         loan.Principal,
		AnnualRatePercent: loan.InterestPercent,
		TermYears:         loan.DurationYears,
		ShockYear:         loan.ShockYear,
		ShockDeltaPercent: loan.ShockDeltaPercent,
	}
}

// annuityPayment computes the level annual payment P*r/(1-(1+r)^-n).
// A zero rate degrades to straight principal division.
func annuityPayment(principal, annualRatePercent decimal.Decimal, termYears int) decimal.Decimal {
	if termYears <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	r := annualRatePercent.Div(hundred)
	if r.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(termYears)))
	}
	growth := decimal.NewFromInt(1).Add(r).Pow(decimal.NewFromInt(int64(termYears)))
	// P*r / (1 - (1+r)^-n) == P*r*g / (g - 1)
	return principal.Mul(r).Mul(growth).Div(growth.Sub(decimal.NewFromInt(1)))
}

// Schedule returns one row per projection year. Years past the loan term
// carry zero payment and zero balance.
func (a *AmortizationScheduler) Schedule(years int) []AmortizationYear {
	rows := make([]AmortizationYear, years)

	balance := a.Principal
	rate := a.AnnualRatePercent
	payment := annuityPayment(balance, rate, a.TermYears)

	for i := 0; i < years; i++ {
		year := i + 1
		rows[i].Year = year

		if year > a.TermYears || balance.LessThanOrEqual(decimal.Zero) {
			rows[i].Balance = decimal.Zero
			continue
		}

		if a.ShockYear > 0 && year == a.ShockYear && !a.ShockDeltaPercent.IsZero() {
			rate = rate.Add(a.ShockDeltaPercent)
			if rate.LessThan(decimal.Zero) {
				rate = decimal.Zero
			}
			remaining := a.TermYears - year + 1
			payment = annuityPayment(balance, rate, remaining)
		}

		interest := balance.Mul(rate).Div(hundred)
		principal := payment.Sub(interest)
		if year == a.TermYears || principal.GreaterThan(balance) {
			// Absorb rounding drift so the loan closes exactly at term.
			principal = balance
			payment = interest.Add(principal)
		}

		balance = balance.Sub(principal)
		rows[i].Payment = payment
		rows[i].Interest = interest
		rows[i].Principal = principal
		rows[i].Balance = balance
	}

	return rows
}
