package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lifeplan/lifeplan-simulator/internal/domain"
	"github.com/lifeplan/lifeplan-simulator/pkg/money"
)

// ScheduleEntry is one repayment year of an amortization schedule. Year is
// the 1-based year of the loan term; the ledger maps entry i to calendar
// year startYear+i+1.
type ScheduleEntry struct {
	Year             int
	Payment          decimal.Decimal
	Principal        decimal.Decimal
	Interest         decimal.Decimal
	RemainingBalance decimal.Decimal
}

// Amortize builds the yearly repayment schedule for a loan. Amounts are
// rounded to one decimal place at each step, mirroring how the ledger
// accumulates them. A non-positive principal or term yields no schedule;
// a zero rate amortizes as equal principal with no interest.
func Amortize(principal, annualRatePct decimal.Decimal, termYears int, method domain.RepaymentMethod) []ScheduleEntry {
	if termYears <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	rate := annualRatePct.Div(decimal.NewFromInt(100))
	if annualRatePct.IsZero() {
		method = domain.RepayEqualPrincipal
	}

	schedule := make([]ScheduleEntry, 0, termYears)
	balance := principal

	switch method {
	case domain.RepayEqualPayment:
		// The payment stays level; the last year's principal share shrinks
		// to whatever balance remains.
		payment := money.Round1(rawMonthlyAnnuity(principal, annualRatePct, termYears).Mul(twelve))
		for i := 1; i <= termYears; i++ {
			interest := money.Round1(balance.Mul(rate))
			principalPaid := money.Min(payment.Sub(interest), balance)
			balance = money.FloorZero(money.Round1(balance.Sub(principalPaid)))
			schedule = append(schedule, ScheduleEntry{
				Year:             i,
				Payment:          payment,
				Principal:        money.Round1(principalPaid),
				Interest:         interest,
				RemainingBalance: balance,
			})
		}
	default:
		level := money.Round1(principal.Div(decimal.NewFromInt(int64(termYears))))
		for i := 1; i <= termYears; i++ {
			interest := money.Round1(balance.Mul(rate))
			balance = money.FloorZero(money.Round1(balance.Sub(level)))
			schedule = append(schedule, ScheduleEntry{
				Year:             i,
				Payment:          money.Round1(level.Add(interest)),
				Principal:        level,
				Interest:         interest,
				RemainingBalance: balance,
			})
		}
	}
	return schedule
}

// rawMonthlyAnnuity is the unrounded level monthly payment.
func rawMonthlyAnnuity(principal, annualRatePct decimal.Decimal, termYears int) decimal.Decimal {
	months := termYears * 12
	monthsDec := decimal.NewFromInt(int64(months))
	monthlyRate := annualRatePct.Div(decimal.NewFromInt(100)).Div(twelve)
	if monthlyRate.IsZero() {
		return principal.Div(monthsDec)
	}
	growth := money.PowInt(decimal.NewFromInt(1).Add(monthlyRate), months)
	return principal.Mul(monthlyRate).Mul(growth).Div(growth.Sub(decimal.NewFromInt(1)))
}

// LiabilityAmounts derives the per-calendar-year remaining balance map for
// an auto-calculated liability: the full principal at the loan's start year,
// then the post-repayment balance in each following year.
func LiabilityAmounts(loan domain.LoanSettings) domain.AmountMap {
	schedule := Amortize(loan.BorrowAmount, loan.InterestRate, loan.TermYears, loan.RepaymentType)
	amounts := domain.AmountMap{}
	if len(schedule) == 0 {
		return amounts
	}
	amounts[loan.StartYear] = loan.BorrowAmount
	for i, entry := range schedule {
		amounts[loan.StartYear+i+1] = entry.RemainingBalance
	}
	return amounts
}

// RepaymentsByYear maps schedule entries onto calendar years; the first
// repayment falls in the year after the loan starts.
func RepaymentsByYear(loan domain.LoanSettings) map[int]decimal.Decimal {
	schedule := Amortize(loan.BorrowAmount, loan.InterestRate, loan.TermYears, loan.RepaymentType)
	out := make(map[int]decimal.Decimal, len(schedule))
	for i, entry := range schedule {
		out[loan.StartYear+i+1] = entry.Payment
	}
	return out
}

// LoanPreview summarizes a prospective loan for display.
type LoanPreview struct {
	MonthlyPayment decimal.Decimal
	TotalRepayment decimal.Decimal
	TotalInterest  decimal.Decimal
}

// PreviewLoan computes the level monthly payment and lifetime totals.
func PreviewLoan(principal, annualRatePct decimal.Decimal, termYears int) LoanPreview {
	if termYears <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return LoanPreview{}
	}
	monthly := MonthlyMortgagePayment(principal, annualRatePct, termYears)
	total := money.Round1(monthly.Mul(decimal.NewFromInt(int64(termYears * 12))))
	return LoanPreview{
		MonthlyPayment: monthly,
		TotalRepayment: total,
		TotalInterest:  money.Round1(total.Sub(principal)),
	}
}
