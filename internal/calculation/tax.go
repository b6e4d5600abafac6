package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lifeplan/lifeplan-simulator/internal/domain"
	"github.com/lifeplan/lifeplan-simulator/pkg/money"
)

// NetIncomeResult breaks a gross salary down into its deductions and the
// resulting take-home amount. All figures are man-yen; deductions and taxes
// are floored to whole man-yen.
type NetIncomeResult struct {
	Gross           decimal.Decimal
	SalaryDeduction decimal.Decimal
	SocialInsurance decimal.Decimal
	TaxableIncome   decimal.Decimal
	IncomeTax       decimal.Decimal
	ResidentTax     decimal.Decimal
	Net             decimal.Decimal
}

// taxBracket is one progressive income-tax band. Ceiling and Subtraction are
// man-yen; a zero Ceiling marks the open top band.
type taxBracket struct {
	Ceiling     decimal.Decimal
	Rate        decimal.Decimal
	Subtraction decimal.Decimal
}

var incomeTaxBrackets = []taxBracket{
	{decimal.NewFromInt(195), decimal.NewFromFloat(0.05), decimal.Zero},
	{decimal.NewFromInt(330), decimal.NewFromFloat(0.10), decimal.NewFromFloat(9.75)},
	{decimal.NewFromInt(695), decimal.NewFromFloat(0.20), decimal.NewFromFloat(42.75)},
	{decimal.NewFromInt(900), decimal.NewFromFloat(0.23), decimal.NewFromFloat(63.6)},
	{decimal.NewFromInt(1800), decimal.NewFromFloat(0.33), decimal.NewFromFloat(153.6)},
	{decimal.NewFromInt(4000), decimal.NewFromFloat(0.40), decimal.NewFromFloat(279.6)},
	{decimal.Zero, decimal.NewFromFloat(0.45), decimal.NewFromFloat(479.6)},
}

var (
	salaryDeductionThreshold = decimal.NewFromInt(850)
	salaryDeductionFloor     = decimal.NewFromInt(55)
	salaryDeductionCap       = decimal.NewFromInt(195)
	salaryDeductionRate      = decimal.NewFromFloat(0.3)
	salaryDeductionBase      = decimal.NewFromInt(8)

	socialInsuranceRateLow  = decimal.NewFromFloat(0.15)
	socialInsuranceRateHigh = decimal.NewFromFloat(0.077)

	residentTaxRate = decimal.NewFromFloat(0.10)
)

// NetIncome converts a gross annual salary to take-home pay for the given
// occupation. Self-employed and homemaker incomes pass through unchanged;
// the employee model applies the salary deduction, social insurance
// premiums, progressive income tax, and the flat resident tax.
func NetIncome(gross decimal.Decimal, occupation domain.Occupation) NetIncomeResult {
	result := NetIncomeResult{Gross: gross, Net: gross}
	if gross.LessThanOrEqual(decimal.Zero) || occupation.IsPassThrough() {
		return result
	}

	if gross.LessThanOrEqual(salaryDeductionThreshold) {
		raw := gross.Mul(salaryDeductionRate).Add(salaryDeductionBase)
		result.SalaryDeduction = money.FloorUnit(money.Clamp(raw, salaryDeductionFloor, salaryDeductionCap))
	} else {
		result.SalaryDeduction = salaryDeductionCap
	}

	if occupation.HasSocialInsurance() {
		rate := socialInsuranceRateLow
		if !gross.LessThan(salaryDeductionThreshold) {
			rate = socialInsuranceRateHigh
		}
		result.SocialInsurance = money.FloorUnit(gross.Mul(rate))
	}

	result.TaxableIncome = money.FloorZero(gross.Sub(result.SalaryDeduction).Sub(result.SocialInsurance))
	result.IncomeTax = incomeTaxOn(result.TaxableIncome)
	result.ResidentTax = money.FloorUnit(result.TaxableIncome.Mul(residentTaxRate))
	result.Net = gross.Sub(result.SocialInsurance).Sub(result.IncomeTax).Sub(result.ResidentTax)
	return result
}

func incomeTaxOn(taxable decimal.Decimal) decimal.Decimal {
	if taxable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	for _, b := range incomeTaxBrackets {
		if b.Ceiling.IsZero() || taxable.LessThanOrEqual(b.Ceiling) {
			return money.FloorUnit(taxable.Mul(b.Rate).Sub(b.Subtraction))
		}
	}
	return decimal.Zero
}

// NetIncomeWithRaise projects the gross salary forward from its base year by
// a compound annual raise, floors it to whole man-yen, and converts to net.
func NetIncomeWithRaise(base, raisePct decimal.Decimal, startYear, year int, occupation domain.Occupation) NetIncomeResult {
	gross := money.FloorUnit(base.Mul(money.EscalationFactor(raisePct, year-startYear)))
	return NetIncome(gross, occupation)
}

// ApplyNetConversion rewrites an income item's amounts as take-home pay,
// preserving the entered gross figures in the shadow map for pension
// averaging. Calling it again is a no-op on already-converted items.
func ApplyNetConversion(item *domain.IncomeItem, occupation domain.Occupation) {
	if len(item.Amounts) == 0 {
		return
	}
	if item.GrossAmounts == nil {
		item.GrossAmounts = item.Amounts.Clone()
	}
	out := make(domain.AmountMap, len(item.GrossAmounts))
	for year, gross := range item.GrossAmounts {
		out[year] = NetIncome(gross, occupation).Net
	}
	item.Amounts = out
}
