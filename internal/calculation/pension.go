package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lifeplan/lifeplan-simulator/internal/domain"
	"github.com/lifeplan/lifeplan-simulator/pkg/money"
)

// Public pension constants, yen unless noted.
var (
	basicPensionFullAmount = decimal.NewFromInt(780900)
	fullPensionMonths      = 480
	maxMonthsBefore2003    = 240

	welfareRateBefore2003 = decimal.NewFromFloat(0.007125)
	welfareRateAfter2003  = decimal.NewFromFloat(0.005481)

	standardPensionStartAge = 65
	earlyRatePerMonth       = decimal.NewFromFloat(0.004)
	delayedRatePerMonth     = decimal.NewFromFloat(0.007)
	minAdjustmentRate       = decimal.NewFromFloat(0.5)
	maxDelayMonths          = 120

	earningsThresholdUnder65 = decimal.NewFromInt(470000)
	earningsThresholdOver65  = decimal.NewFromInt(510000)

	fallbackMonthlySalary       = decimal.NewFromInt(300000)
	fallbackSpouseMonthlySalary = decimal.NewFromInt(250000)
)

// remunerationGrade is one tier of the standard monthly remuneration table.
// Max 0 marks the open top tier.
type remunerationGrade struct {
	Min, Max, Amount int64
}

var remunerationTable = []remunerationGrade{
	{0, 93000, 88000}, {93000, 101000, 98000}, {101000, 107000, 104000},
	{107000, 114000, 110000}, {114000, 122000, 118000}, {122000, 130000, 126000},
	{130000, 138000, 134000}, {138000, 146000, 142000}, {146000, 155000, 150000},
	{155000, 165000, 160000}, {165000, 175000, 170000}, {175000, 185000, 180000},
	{185000, 195000, 190000}, {195000, 210000, 200000}, {210000, 230000, 220000},
	{230000, 250000, 240000}, {250000, 270000, 260000}, {270000, 290000, 280000},
	{290000, 310000, 300000}, {310000, 330000, 320000}, {330000, 350000, 340000},
	{350000, 370000, 360000}, {370000, 395000, 380000}, {395000, 425000, 410000},
	{425000, 455000, 440000}, {455000, 485000, 470000}, {485000, 515000, 500000},
	{515000, 545000, 530000}, {545000, 575000, 560000}, {575000, 605000, 590000},
	{605000, 635000, 620000}, {635000, 0, 650000},
}

// StandardRemuneration maps a monthly salary in yen onto its grade amount.
func StandardRemuneration(monthlyYen decimal.Decimal) decimal.Decimal {
	if monthlyYen.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	for _, g := range remunerationTable {
		min := decimal.NewFromInt(g.Min)
		if monthlyYen.LessThan(min) {
			continue
		}
		if g.Max == 0 || monthlyYen.LessThan(decimal.NewFromInt(g.Max)) {
			return decimal.NewFromInt(g.Amount)
		}
	}
	return decimal.NewFromInt(remunerationTable[len(remunerationTable)-1].Amount)
}

// enrollment buckets pension contribution months by insurance category.
type enrollment struct {
	WelfareMonths       int
	WelfareBefore200304 int
	WelfareAfter200304  int
	NationalMonths      int
	Category3Months     int
}

func (e enrollment) Total() int {
	return e.WelfareMonths + e.NationalMonths + e.Category3Months
}

// enrollmentMonths derives contribution months from a working career. The
// pre-2003-04 welfare split is pinned to the birth year, itself derived
// from the wall clock.
func enrollmentMonths(occupation domain.Occupation, workStartAge, workEndAge, birthYear int) enrollment {
	workingMonths := (workEndAge - workStartAge) * 12
	if workingMonths < 0 {
		workingMonths = 0
	}
	capped := workingMonths
	if capped > fullPensionMonths {
		capped = fullPensionMonths
	}

	// Age in April 2003 is (2003 - birthYear + 4/12) years; in months the
	// career elapsed by then is a whole number.
	monthsUntil200304 := (2003-birthYear-workStartAge)*12 + 4
	if monthsUntil200304 < 0 {
		monthsUntil200304 = 0
	}
	if monthsUntil200304 > maxMonthsBefore2003 {
		monthsUntil200304 = maxMonthsBefore2003
	}
	after := capped - monthsUntil200304
	if after < 0 {
		after = 0
	}

	var e enrollment
	switch occupation {
	case domain.OccupationCompanyEmployee, domain.OccupationPartTimeWithPension:
		e.WelfareMonths = capped
		e.WelfareBefore200304 = monthsUntil200304
		e.WelfareAfter200304 = after
	case domain.OccupationPartTimeWithoutPension, domain.OccupationSelfEmployed:
		e.NationalMonths = capped
	case domain.OccupationHomemaker:
		e.Category3Months = capped
	}
	return e
}

// basicPensionAmount is the annual basic pension in yen for the given total
// contribution months.
func basicPensionAmount(totalMonths int) decimal.Decimal {
	if totalMonths > fullPensionMonths {
		totalMonths = fullPensionMonths
	}
	ratio := decimal.NewFromInt(int64(totalMonths)).Div(decimal.NewFromInt(int64(fullPensionMonths)))
	return basicPensionFullAmount.Mul(ratio).Floor()
}

// welfarePensionAmount is the annual earnings-related pension in yen, split
// across the 2003-04 rate change.
func welfarePensionAmount(gradeYen decimal.Decimal, monthsBefore, monthsAfter int) decimal.Decimal {
	before := gradeYen.Mul(welfareRateBefore2003).Mul(decimal.NewFromInt(int64(monthsBefore)))
	after := gradeYen.Mul(welfareRateAfter2003).Mul(decimal.NewFromInt(int64(monthsAfter)))
	return before.Add(after).Floor()
}

// adjustmentRate scales benefits for early or delayed claiming: -0.4% per
// month claimed early (never below half) and +0.7% per month delayed, capped
// at ten years.
func adjustmentRate(claimAge int) decimal.Decimal {
	monthDiff := (claimAge - standardPensionStartAge) * 12
	switch {
	case monthDiff == 0:
		return decimal.NewFromInt(1)
	case monthDiff < 0:
		rate := decimal.NewFromInt(1).Sub(earlyRatePerMonth.Mul(decimal.NewFromInt(int64(-monthDiff))))
		return money.Max(rate, minAdjustmentRate)
	default:
		if monthDiff > maxDelayMonths {
			monthDiff = maxDelayMonths
		}
		return decimal.NewFromInt(1).Add(delayedRatePerMonth.Mul(decimal.NewFromInt(int64(monthDiff))))
	}
}

// earningsTest suspends part of the welfare pension while the claimant keeps
// working. The basic pension is never reduced; the suspension is half the
// excess of combined monthly income over the age-dependent threshold, capped
// at the welfare pension itself.
func earningsTest(basicYen, welfareYen, monthlySalaryYen decimal.Decimal, age int) decimal.Decimal {
	if monthlySalaryYen.LessThanOrEqual(decimal.Zero) {
		return welfareYen
	}
	monthlyBasic := basicYen.Div(twelve)
	monthlyWelfare := welfareYen.Div(twelve)
	threshold := earningsThresholdUnder65
	if age >= 65 {
		threshold = earningsThresholdOver65
	}
	total := monthlySalaryYen.Add(monthlyBasic).Add(monthlyWelfare)
	excess := money.FloorZero(total.Sub(threshold))
	suspension := money.Min(monthlyWelfare, excess.Div(decimal.NewFromInt(2)))
	return monthlyWelfare.Sub(suspension).Mul(twelve).Floor()
}

// averageMonthlySalary is the mean of the positive entries of a salary
// stream converted to yen per month, rounded to the nearest yen.
func averageMonthlySalary(stream domain.AmountMap) (decimal.Decimal, bool) {
	total := decimal.Zero
	count := 0
	for _, amount := range stream {
		if amount.GreaterThan(decimal.Zero) {
			total = total.Add(amount)
			count++
		}
	}
	if count == 0 {
		return decimal.Zero, false
	}
	avgYearly := total.Div(decimal.NewFromInt(int64(count)))
	return money.ToYen(avgYearly).Div(twelve).Round(0), true
}

func findIncome(items []domain.IncomeItem, name string) *domain.IncomeItem {
	for i := range items {
		if items[i].Name == name {
			return &items[i]
		}
	}
	return nil
}

// PensionForYear returns the household head's annual pension for one
// calendar year in man-yen, zero before the claim age.
func PensionForYear(info domain.BasicInfo, personal []domain.IncomeItem, year int, now time.Time) decimal.Decimal {
	age := info.AgeIn(year)
	claimAge := info.EffectivePensionStartAge()
	if age < claimAge {
		return decimal.Zero
	}

	months := enrollmentMonths(info.Occupation,
		info.EffectiveWorkStartAge(), info.EffectiveWorkEndAge(), info.BirthYear(now))
	basic := basicPensionAmount(months.Total())

	welfare := decimal.Zero
	salaryItem := findIncome(personal, domain.IncomeSalary)
	if info.Occupation.HasWelfarePension() {
		var avgMonthly decimal.Decimal
		if salaryItem != nil {
			var ok bool
			avgMonthly, ok = averageMonthlySalary(salaryItem.SalaryBase())
			if !ok {
				avgMonthly = fallbackMonthlySalary
			}
		}
		grade := StandardRemuneration(avgMonthly)
		welfare = welfarePensionAmount(grade, months.WelfareBefore200304, months.WelfareAfter200304)
	}

	rate := adjustmentRate(claimAge)
	basic = basic.Mul(rate).Floor()
	welfare = welfare.Mul(rate).Floor()

	if info.WillWorkAfterPension && salaryItem != nil {
		if salary := salaryItem.Amounts.Get(year); salary.GreaterThan(decimal.Zero) {
			monthly := money.ToYen(salary).Div(twelve)
			welfare = earningsTest(basic, welfare, monthly, age)
		}
	}
	return money.FromYen(basic.Add(welfare))
}

// SpousePensionForYear returns the spouse's annual pension in man-yen. It is
// zero when there is no spouse, before a planned marriage, and before the
// spouse's claim age. The spouse's salary stream is the income line named
// "spouse".
func SpousePensionForYear(info domain.BasicInfo, personal []domain.IncomeItem, year int, now time.Time) decimal.Decimal {
	if info.MaritalStatus == domain.MaritalSingle || info.Spouse == nil {
		return decimal.Zero
	}
	spouseAge, ok := info.SpouseAgeIn(year)
	if !ok {
		return decimal.Zero
	}
	claimAge := info.Spouse.PensionStartAge
	if claimAge == 0 {
		claimAge = 65
	}
	if spouseAge < claimAge {
		return decimal.Zero
	}

	occupation := info.Spouse.Occupation
	if occupation == "" {
		occupation = domain.OccupationHomemaker
	}
	workStartAge := info.Spouse.WorkStartAge
	if workStartAge == 0 {
		workStartAge = 22
	}
	// Retirement is assumed at the standard age.
	spouseBirthYear := now.Year() - (spouseAge - (year - info.StartYear))
	months := enrollmentMonths(occupation, workStartAge, 60, spouseBirthYear)
	basic := basicPensionAmount(months.Total())

	welfare := decimal.Zero
	spouseItem := findIncome(personal, domain.IncomeSpouse)
	if occupation.HasWelfarePension() {
		avgMonthly := fallbackSpouseMonthlySalary
		if spouseItem != nil {
			if avg, ok := averageMonthlySalary(spouseItem.SalaryBase()); ok {
				avgMonthly = avg
			}
		}
		grade := StandardRemuneration(avgMonthly)
		welfare = welfarePensionAmount(grade, months.WelfareBefore200304, months.WelfareAfter200304)
	}

	rate := adjustmentRate(claimAge)
	basic = basic.Mul(rate).Floor()
	welfare = welfare.Mul(rate).Floor()

	if info.Spouse.WillWorkAfterPension && spouseItem != nil {
		if salary := spouseItem.Amounts.Get(year); salary.GreaterThan(decimal.Zero) {
			monthly := money.ToYen(salary).Div(twelve)
			welfare = earningsTest(basic, welfare, monthly, spouseAge)
		}
	}
	return money.FromYen(basic.Add(welfare))
}
