package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lifeplan/lifeplan-simulator/internal/calculation"
	"github.com/lifeplan/lifeplan-simulator/internal/domain"
)

// Small debugging aid: prints the amortization schedule for a sample loan
// under both repayment methods so the two can be compared side by side.
func main() {
	loan := domain.LoanSettings{
		StartYear:    2026,
		TermYears:    10,
		InterestRate: decimal.NewFromInt(2),
		BorrowAmount: decimal.NewFromInt(1000),
	}

	for _, method := range []domain.RepaymentMethod{domain.RepayEqualPayment, domain.RepayEqualPrincipal} {
		loan.RepaymentType = method
		preview := calculation.PreviewLoan(loan.BorrowAmount, loan.InterestRate, loan.TermYears)
		fmt.Printf("%s: monthly %s, total %s, interest %s\n",
			method, preview.MonthlyPayment.StringFixed(1),
			preview.TotalRepayment.StringFixed(1), preview.TotalInterest.StringFixed(1))

		for _, entry := range calculation.Amortize(loan.BorrowAmount, loan.InterestRate, loan.TermYears, method) {
			fmt.Printf("  year %d: payment %s principal %s interest %s remaining %s\n",
				entry.Year, entry.Payment.StringFixed(1), entry.Principal.StringFixed(1),
				entry.Interest.StringFixed(1), entry.RemainingBalance.StringFixed(1))
		}
	}
}
