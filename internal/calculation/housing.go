package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lifeplan/lifeplan-simulator/internal/domain"
	"github.com/lifeplan/lifeplan-simulator/pkg/money"
)

var twelve = decimal.NewFromInt(12)

// HousingExpense returns the housing cost for one calendar year, rounded to
// one decimal place.
//
// Rent escalation and renewal fees are measured from the current wall-clock
// year, not the plan's start year. The clock is passed in so callers can pin
// it.
func HousingExpense(h domain.HousingInfo, year int, now time.Time) decimal.Decimal {
	switch h.Type {
	case domain.HousingRent:
		return rentExpense(h.Rent, year, now)
	case domain.HousingOwn:
		return ownExpense(h.Own, year)
	}
	return decimal.Zero
}

func rentExpense(r *domain.RentPlan, year int, now time.Time) decimal.Decimal {
	if r == nil {
		return decimal.Zero
	}
	elapsed := year - now.Year()
	annual := r.MonthlyRent.Mul(twelve).Mul(money.EscalationFactor(r.AnnualIncreaseRate, elapsed))
	if r.RenewalInterval > 0 {
		renewals := floorDiv(elapsed, r.RenewalInterval)
		annual = annual.Add(r.RenewalFee.Mul(decimal.NewFromInt(int64(renewals))))
	}
	return money.Round1(annual)
}

func ownExpense(o *domain.OwnPlan, year int) decimal.Decimal {
	if o == nil || year < o.PurchaseYear {
		return decimal.Zero
	}
	maintenance := o.PurchasePrice.Mul(o.MaintenanceCostRate).Div(decimal.NewFromInt(100))
	if year >= o.PurchaseYear+o.LoanTermYears {
		return money.Round1(maintenance)
	}
	monthly := MonthlyMortgagePayment(o.LoanAmount, o.InterestRate, o.LoanTermYears)
	return money.Round1(monthly.Mul(twelve).Add(maintenance))
}

// MonthlyMortgagePayment computes the level monthly annuity payment for a
// loan, rounded to one decimal place. A zero rate degenerates to straight
// principal division.
func MonthlyMortgagePayment(principal, annualRatePct decimal.Decimal, termYears int) decimal.Decimal {
	if termYears <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	months := termYears * 12
	monthsDec := decimal.NewFromInt(int64(months))
	monthlyRate := annualRatePct.Div(decimal.NewFromInt(100)).Div(twelve)
	if monthlyRate.IsZero() {
		return money.Round1(principal.Div(monthsDec))
	}
	growth := money.PowInt(decimal.NewFromInt(1).Add(monthlyRate), months)
	payment := principal.Mul(monthlyRate).Mul(growth).Div(growth.Sub(decimal.NewFromInt(1)))
	return money.Round1(payment)
}

// floorDiv divides rounding toward negative infinity so a negative
// elapsed-years quotient never counts a renewal.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
