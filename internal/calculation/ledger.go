package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lifeplan/lifeplan-simulator/internal/domain"
	"github.com/lifeplan/lifeplan-simulator/pkg/money"
)

// eventTotals is the net of one year's life events for one source bucket.
type eventTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

func (t eventTotals) Net() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

func collectEvents(events []domain.LifeEvent, year int, source domain.EventSource) eventTotals {
	totals := eventTotals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, ev := range events {
		if ev.Year != year || ev.Source != source {
			continue
		}
		switch ev.Type {
		case domain.EventIncome:
			totals.Income = totals.Income.Add(ev.Amount)
		case domain.EventExpense:
			totals.Expense = totals.Expense.Add(ev.Amount)
		}
	}
	return totals
}

func sumExpenseCategory(items []domain.ExpenseItem, year int, match func(domain.ExpenseCategory) bool) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if match(item.Category) {
			total = total.Add(item.Amounts.Get(year))
		}
	}
	return total
}

func sumLiabilities(items []domain.LiabilityItem, year int) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amounts.Get(year).Abs())
	}
	return total
}

func sumInitialAssets(items []domain.AssetItem, startYear int) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amounts.Get(startYear).Abs())
	}
	return total
}

// refreshLiabilities regenerates the balance maps of auto-calculated
// liabilities whose stored fingerprint no longer matches their loan
// settings, and returns the combined per-year repayments for the book.
func (e *Engine) refreshLiabilities(items []domain.LiabilityItem, endYear int) map[int]decimal.Decimal {
	repayments := map[int]decimal.Decimal{}
	for i := range items {
		item := &items[i]
		if !item.AutoCalculated || item.Loan == nil {
			continue
		}
		if item.Loan.BorrowAmount.LessThanOrEqual(decimal.Zero) {
			continue
		}
		if sig := item.Loan.Signature(); item.Fingerprint != sig || len(item.Amounts) == 0 {
			e.Logger.Debugf("regenerating schedule for liability %q", item.Name)
			item.Amounts = LiabilityAmounts(*item.Loan)
			item.Fingerprint = sig
		}
		for year, payment := range RepaymentsByYear(*item.Loan) {
			if year > endYear {
				continue
			}
			repayments[year] = repayments[year].Add(payment)
		}
	}
	return repayments
}

// refreshDerivedExpenses recomputes the auto-calculated personal expense
// lines (living, housing, education) for every projected year, and
// re-escalates user-entered lines from their raw amounts.
func (e *Engine) refreshDerivedExpenses(plan *domain.Plan, years []int) {
	info := plan.BasicInfo
	params := plan.Parameters
	now := e.now()

	for i := range plan.Expenses.Personal {
		item := &plan.Expenses.Personal[i]
		if !item.AutoCalculated {
			item.ReapplyEscalation(params, info.StartYear)
			continue
		}
		amounts := make(domain.AmountMap, len(years))
		for _, year := range years {
			switch item.Category {
			case domain.CategoryLiving:
				annual := info.MonthlyLivingExpense.Mul(twelve)
				factor := money.EscalationFactor(params.InflationRate, year-info.StartYear)
				amounts[year] = money.Round1(annual.Mul(factor))
			case domain.CategoryHousing:
				amounts[year] = HousingExpense(info.Housing, year, now)
			case domain.CategoryEducation:
				amounts[year] = EducationExpense(info, params, year)
			default:
				amounts[year] = item.Amounts.Get(year)
			}
		}
		item.Amounts = amounts
	}
	for i := range plan.Expenses.Corporate {
		plan.Expenses.Corporate[i].ReapplyEscalation(params, info.StartYear)
	}
}

// refreshPensionItems overwrites the auto-calculated pension income lines
// with their computed values for every projected year. A pension line that
// is not auto-calculated is zeroed rather than trusted.
func (e *Engine) refreshPensionItems(plan *domain.Plan, years []int) {
	info := plan.BasicInfo
	now := e.now()

	if item := findIncome(plan.Income.Personal, domain.IncomePension); item != nil {
		amounts := make(domain.AmountMap, len(years))
		for _, year := range years {
			if item.AutoCalculated {
				amounts[year] = PensionForYear(info, plan.Income.Personal, year, now)
			} else {
				amounts[year] = decimal.Zero
			}
		}
		item.Amounts = amounts
	}
	if item := findIncome(plan.Income.Personal, domain.IncomeSpousePension); item != nil && info.MaritalStatus != domain.MaritalSingle {
		amounts := make(domain.AmountMap, len(years))
		for _, year := range years {
			if item.AutoCalculated {
				amounts[year] = SpousePensionForYear(info, plan.Income.Personal, year, now)
			} else {
				amounts[year] = decimal.Zero
			}
		}
		item.Amounts = amounts
	}
}

// Rebuild recomputes the full cash-flow projection from the plan. It is a
// pure function of the plan and the engine's clock: the input document is
// cloned, derived lines are refreshed on the clone, and every year from the
// start year through the assumed end of life is emitted. Missing data reads
// as zero; Rebuild never fails.
func (e *Engine) Rebuild(plan *domain.Plan) domain.CashFlowData {
	data := domain.CashFlowData{}
	if plan == nil {
		return data
	}
	work := plan.Clone()
	info := work.BasicInfo
	params := work.Parameters
	years := info.Years()
	if len(years) == 0 {
		e.Logger.Warnf("empty projection range: death age %d precedes current age %d", info.DeathAge, info.CurrentAge)
		return data
	}
	e.Logger.Debugf("rebuilding projection: %d years from %d", len(years), info.StartYear)

	// Salary streams are entered gross; convert to take-home and keep the
	// gross shadow for pension averaging.
	if item := findIncome(work.Income.Personal, domain.IncomeSalary); item != nil {
		ApplyNetConversion(item, info.Occupation)
	}
	if item := findIncome(work.Income.Personal, domain.IncomeSpouse); item != nil && info.Spouse != nil {
		occupation := info.Spouse.Occupation
		if occupation == "" {
			occupation = domain.OccupationHomemaker
		}
		ApplyNetConversion(item, occupation)
	}

	e.refreshDerivedExpenses(work, years)
	e.refreshPensionItems(work, years)

	endYear := info.EndYear()
	personalRepayments := e.refreshLiabilities(work.Liabilities.Personal, endYear)
	corporateRepayments := e.refreshLiabilities(work.Liabilities.Corporate, endYear)

	salaryItem := findIncome(work.Income.Personal, domain.IncomeSalary)
	sideItem := findIncome(work.Income.Personal, domain.IncomeSide)
	spouseItem := findIncome(work.Income.Personal, domain.IncomeSpouse)
	pensionItem := findIncome(work.Income.Personal, domain.IncomePension)
	spousePensionItem := findIncome(work.Income.Personal, domain.IncomeSpousePension)
	salesItem := findIncome(work.Income.Corporate, domain.CorporateSales)
	corporateOtherItem := findIncome(work.Income.Corporate, "other")

	amountFor := func(item *domain.IncomeItem, year int) decimal.Decimal {
		if item == nil {
			return decimal.Zero
		}
		return item.Amounts.Get(year)
	}

	personalAssets := sumInitialAssets(work.Assets.Personal, info.StartYear)
	corporateAssets := sumInitialAssets(work.Assets.Corporate, info.StartYear)
	personalPool := SeedPool(work.Assets.Personal, info.StartYear)
	corporatePool := SeedPool(work.Assets.Corporate, info.StartYear)

	for _, year := range years {
		mainIncome := amountFor(salaryItem, year)
		sideIncome := amountFor(sideItem, year)
		spouseIncome := amountFor(spouseItem, year)
		pensionIncome := amountFor(pensionItem, year)
		spousePensionIncome := amountFor(spousePensionItem, year)
		corporateIncome := amountFor(salesItem, year)
		corporateOtherIncome := amountFor(corporateOtherItem, year)

		livingExpense := sumExpenseCategory(work.Expenses.Personal, year, func(c domain.ExpenseCategory) bool {
			return c == domain.CategoryLiving
		})
		housingExpense := sumExpenseCategory(work.Expenses.Personal, year, func(c domain.ExpenseCategory) bool {
			return c == domain.CategoryHousing
		})
		educationExpense := sumExpenseCategory(work.Expenses.Personal, year, func(c domain.ExpenseCategory) bool {
			return c == domain.CategoryEducation
		})
		otherExpense := sumExpenseCategory(work.Expenses.Personal, year, func(c domain.ExpenseCategory) bool {
			return c == domain.CategoryOther
		})
		corporateBusinessExpense := sumExpenseCategory(work.Expenses.Corporate, year, func(c domain.ExpenseCategory) bool {
			return c == domain.CategoryBusiness
		})
		corporateOfficeExpense := sumExpenseCategory(work.Expenses.Corporate, year, func(c domain.ExpenseCategory) bool {
			return c == domain.CategoryOffice || c == domain.CategoryOther
		})

		personalLoanRepayment := personalRepayments[year]
		corporateLoanRepayment := corporateRepayments[year]

		personalEvents := collectEvents(work.LifeEvents, year, domain.SourcePersonal)
		corporateEvents := collectEvents(work.LifeEvents, year, domain.SourceCorporate)
		personalPoolEvents := collectEvents(work.LifeEvents, year, domain.SourcePersonalInvestment)
		corporatePoolEvents := collectEvents(work.LifeEvents, year, domain.SourceCorporateInvestment)

		personalContribution := InvestmentContribution(work.Income.Personal, year)
		corporateContribution := InvestmentContribution(work.Income.Corporate, year)
		personalPoolIncome := PoolIncome(personalPool, params.InvestmentReturn)
		corporatePoolIncome := PoolIncome(corporatePool, params.InvestmentReturn)

		totalIncome := mainIncome.Add(sideIncome).Add(spouseIncome).
			Add(pensionIncome).Add(spousePensionIncome).
			Add(personalPoolIncome).Add(personalEvents.Income)
		totalExpense := livingExpense.Add(housingExpense).Add(educationExpense).
			Add(otherExpense).Add(personalEvents.Expense).Add(personalLoanRepayment)
		balance := totalIncome.Sub(totalExpense)

		corporateTotalIncome := corporateIncome.Add(corporateOtherIncome).
			Add(corporatePoolIncome).Add(corporateEvents.Income)
		corporateTotalExpense := corporateBusinessExpense.Add(corporateOfficeExpense).
			Add(corporateEvents.Expense).Add(corporateLoanRepayment)
		corporateBalance := corporateTotalIncome.Sub(corporateTotalExpense)

		personalPool = NextPool(personalPool, personalContribution, personalPoolIncome, personalPoolEvents.Net())
		corporatePool = NextPool(corporatePool, corporateContribution, corporatePoolIncome, corporatePoolEvents.Net())

		// The first year's balance is applied to the opening assets too.
		personalAssets = personalAssets.Add(balance)
		corporateAssets = corporateAssets.Add(corporateBalance)

		personalLiabilityTotal := sumLiabilities(work.Liabilities.Personal, year)
		corporateLiabilityTotal := sumLiabilities(work.Liabilities.Corporate, year)

		data[year] = domain.CashFlowYear{
			Year: year,
			Age:  info.AgeIn(year),

			MainIncome:          money.Round1(mainIncome),
			SideIncome:          money.Round1(sideIncome),
			SpouseIncome:        money.Round1(spouseIncome),
			PensionIncome:       money.Round1(pensionIncome),
			SpousePensionIncome: money.Round1(spousePensionIncome),
			InvestmentIncome:    personalPoolIncome,
			EventIncome:         money.Round1(personalEvents.Income),
			TotalIncome:         money.Round1(totalIncome),

			LivingExpense:    money.Round1(livingExpense),
			HousingExpense:   money.Round1(housingExpense),
			EducationExpense: money.Round1(educationExpense),
			OtherExpense:     money.Round1(otherExpense),
			LoanRepayment:    money.Round1(personalLoanRepayment),
			EventExpense:     money.Round1(personalEvents.Expense),
			TotalExpense:     money.Round1(totalExpense),

			Balance:                money.Round1(balance),
			InvestmentContribution: personalContribution,
			InvestmentBalance:      personalPool,
			TotalAssets:            money.Round1(personalAssets),
			LiabilityTotal:         money.Round1(personalLiabilityTotal),
			NetAssets:              money.Round1(personalAssets.Sub(personalLiabilityTotal)),

			CorporateIncome:      money.Round1(corporateIncome),
			CorporateOtherIncome: money.Round1(corporateOtherIncome),
			CorporateEventIncome: money.Round1(corporateEvents.Income),
			CorporateTotalIncome: money.Round1(corporateTotalIncome),

			CorporateBusinessExpense: money.Round1(corporateBusinessExpense),
			CorporateOfficeExpense:   money.Round1(corporateOfficeExpense),
			CorporateLoanRepayment:   money.Round1(corporateLoanRepayment),
			CorporateEventExpense:    money.Round1(corporateEvents.Expense),
			CorporateTotalExpense:    money.Round1(corporateTotalExpense),

			CorporateBalance:                money.Round1(corporateBalance),
			CorporateInvestmentIncome:       corporatePoolIncome,
			CorporateInvestmentContribution: corporateContribution,
			CorporateInvestmentBalance:      corporatePool,
			CorporateTotalAssets:            money.Round1(corporateAssets),
			CorporateLiabilityTotal:         money.Round1(corporateLiabilityTotal),
			CorporateNetAssets:              money.Round1(corporateAssets.Sub(corporateLiabilityTotal)),
		}
	}
	return data
}
