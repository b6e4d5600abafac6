package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeplan/lifeplan-simulator/internal/domain"
)

func newTestEngine() *Engine {
	engine := NewEngine()
	engine.Clock = func() time.Time { return fixedNow }
	return engine
}

// fiveYearPlan is a hand-checked fixture: five years, pass-through income,
// one investment pool, one zero-rate loan, and a handful of life events.
func fiveYearPlan() *domain.Plan {
	return &domain.Plan{
		BasicInfo: domain.BasicInfo{
			CurrentAge:           40,
			StartYear:            2026,
			DeathAge:             44,
			MonthlyLivingExpense: decimal.NewFromInt(10),
			Occupation:           domain.OccupationSelfEmployed,
			MaritalStatus:        domain.MaritalSingle,
			Housing: domain.HousingInfo{
				Type: domain.HousingRent,
				Rent: &domain.RentPlan{
					MonthlyRent:     decimal.NewFromInt(5),
					RenewalInterval: 2,
				},
			},
		},
		Parameters: domain.Parameters{
			InvestmentReturn: decimal.NewFromInt(10),
		},
		Income: domain.IncomeSection{
			Personal: []domain.IncomeItem{
				{
					Name: domain.IncomeSalary,
					Amounts: domain.AmountMap{
						2026: decimal.NewFromInt(500),
						2027: decimal.NewFromInt(500),
						2028: decimal.NewFromInt(500),
					},
					InvestmentRatio: decimal.NewFromInt(10),
				},
				{Name: domain.IncomeSide, Amounts: domain.AmountMap{2027: decimal.NewFromInt(50)}},
			},
			Corporate: []domain.IncomeItem{
				{Name: domain.CorporateSales, Amounts: domain.AmountMap{2026: decimal.NewFromInt(1000)}},
			},
		},
		Expenses: domain.ExpenseSection{
			Personal: []domain.ExpenseItem{
				{Name: "living", Category: domain.CategoryLiving, AutoCalculated: true},
				{Name: "housing", Category: domain.CategoryHousing, AutoCalculated: true},
			},
		},
		Assets: domain.AssetSection{
			Personal: []domain.AssetItem{
				{Name: "cash", Amounts: domain.AmountMap{2026: decimal.NewFromInt(100)}},
				{Name: "fund", Amounts: domain.AmountMap{2026: decimal.NewFromInt(200)}, IsInvestment: true},
			},
		},
		Liabilities: domain.LiabilitySection{
			Personal: []domain.LiabilityItem{
				{
					Name:           "loan",
					AutoCalculated: true,
					Loan: &domain.LoanSettings{
						StartYear:     2026,
						TermYears:     2,
						InterestRate:  decimal.Zero,
						RepaymentType: domain.RepayEqualPayment,
						BorrowAmount:  decimal.NewFromInt(100),
					},
				},
			},
		},
		LifeEvents: []domain.LifeEvent{
			{Name: "bonus", Year: 2027, Type: domain.EventIncome, Source: domain.SourcePersonal, Amount: decimal.NewFromInt(30)},
			{Name: "repair", Year: 2027, Type: domain.EventExpense, Source: domain.SourcePersonal, Amount: decimal.NewFromInt(10)},
			{Name: "gift", Year: 2026, Type: domain.EventIncome, Source: domain.SourcePersonalInvestment, Amount: decimal.NewFromInt(20)},
		},
	}
}

func TestRebuildFiveYearPlan(t *testing.T) {
	engine := newTestEngine()
	data := engine.Rebuild(fiveYearPlan())
	require.Len(t, data, 5)
	require.Equal(t, []int{2026, 2027, 2028, 2029, 2030}, data.Years())

	y2026 := data[2026]
	assert.Equal(t, 40, y2026.Age)
	assert.True(t, decimal.NewFromInt(500).Equal(y2026.MainIncome))
	assert.True(t, decimal.NewFromInt(120).Equal(y2026.LivingExpense))
	assert.True(t, decimal.NewFromInt(60).Equal(y2026.HousingExpense))
	assert.True(t, y2026.LoanRepayment.IsZero(), "repayment starts the year after funding")
	assert.True(t, decimal.NewFromInt(20).Equal(y2026.InvestmentIncome)) // 200 * 10%
	assert.True(t, decimal.NewFromInt(50).Equal(y2026.InvestmentContribution))
	assert.True(t, decimal.NewFromInt(520).Equal(y2026.TotalIncome))
	assert.True(t, decimal.NewFromInt(180).Equal(y2026.TotalExpense))
	assert.True(t, decimal.NewFromInt(340).Equal(y2026.Balance))
	// Pool: 200 + 50 contribution + 20 income + 20 investment event.
	assert.True(t, decimal.NewFromInt(290).Equal(y2026.InvestmentBalance))
	// First-year balance counts toward the opening 300 of assets.
	assert.True(t, decimal.NewFromInt(640).Equal(y2026.TotalAssets))
	assert.True(t, decimal.NewFromInt(100).Equal(y2026.LiabilityTotal))
	assert.True(t, decimal.NewFromInt(540).Equal(y2026.NetAssets))

	y2027 := data[2027]
	assert.True(t, decimal.NewFromInt(50).Equal(y2027.SideIncome))
	assert.True(t, decimal.NewFromInt(30).Equal(y2027.EventIncome))
	assert.True(t, decimal.NewFromInt(10).Equal(y2027.EventExpense))
	assert.True(t, decimal.NewFromInt(50).Equal(y2027.LoanRepayment))
	assert.True(t, decimal.NewFromInt(29).Equal(y2027.InvestmentIncome)) // 290 * 10%
	assert.True(t, decimal.NewFromInt(609).Equal(y2027.TotalIncome))
	assert.True(t, decimal.NewFromInt(240).Equal(y2027.TotalExpense))
	assert.True(t, decimal.NewFromInt(369).Equal(y2027.Balance))
	assert.True(t, decimal.NewFromInt(369).Equal(y2027.InvestmentBalance))
	assert.True(t, decimal.NewFromInt(1009).Equal(y2027.TotalAssets))
	assert.True(t, decimal.NewFromInt(50).Equal(y2027.LiabilityTotal))

	y2028 := data[2028]
	assert.True(t, decimal.NewFromFloat(36.9).Equal(y2028.InvestmentIncome))
	assert.True(t, decimal.NewFromFloat(306.9).Equal(y2028.Balance))
	assert.True(t, decimal.NewFromFloat(455.9).Equal(y2028.InvestmentBalance))
	assert.True(t, y2028.LiabilityTotal.IsZero())

	// 2029 has no salary entry: it reads as zero, never as an error.
	y2029 := data[2029]
	assert.True(t, y2029.MainIncome.IsZero())
	assert.True(t, y2029.InvestmentContribution.IsZero())
	assert.True(t, decimal.NewFromFloat(45.6).Equal(y2029.InvestmentIncome))
	assert.True(t, decimal.NewFromFloat(-134.4).Equal(y2029.Balance))
	assert.True(t, decimal.NewFromFloat(1181.5).Equal(y2029.TotalAssets))

	// Corporate book: sales in 2026 only, no expenses.
	assert.True(t, decimal.NewFromInt(1000).Equal(y2026.CorporateIncome))
	assert.True(t, decimal.NewFromInt(1000).Equal(y2026.CorporateBalance))
	assert.True(t, decimal.NewFromInt(1000).Equal(y2026.CorporateTotalAssets))
	assert.True(t, decimal.NewFromInt(1000).Equal(data[2030].CorporateTotalAssets))
}

func TestRebuildNetWorthRecurrence(t *testing.T) {
	engine := newTestEngine()
	data := engine.Rebuild(fiveYearPlan())
	years := data.Years()
	for i := 1; i < len(years); i++ {
		prev, cur := data[years[i-1]], data[years[i]]
		assert.True(t, prev.TotalAssets.Add(cur.Balance).Equal(cur.TotalAssets),
			"assets recurrence broken in %d", years[i])
		assert.True(t, cur.TotalAssets.Sub(cur.LiabilityTotal).Equal(cur.NetAssets),
			"net assets identity broken in %d", years[i])
	}
}

func TestRebuildDoesNotMutateInput(t *testing.T) {
	plan := fiveYearPlan()
	engine := newTestEngine()
	_ = engine.Rebuild(plan)

	assert.Empty(t, plan.Liabilities.Personal[0].Amounts, "schedule must be generated on the clone")
	assert.Empty(t, plan.Liabilities.Personal[0].Fingerprint)
	assert.Nil(t, plan.Income.Personal[0].GrossAmounts, "net conversion must not leak into the input")
	assert.Empty(t, plan.Expenses.Personal[0].Amounts)
}

func TestRebuildDeterministic(t *testing.T) {
	engine := newTestEngine()
	first := engine.Rebuild(fiveYearPlan())
	second := engine.Rebuild(fiveYearPlan())
	require.Equal(t, first.Years(), second.Years())
	for _, year := range first.Years() {
		assert.Equal(t, first[year], second[year], "year %d differs between rebuilds", year)
	}
}

func TestRebuildEmptyAndNil(t *testing.T) {
	engine := newTestEngine()
	assert.Empty(t, engine.Rebuild(nil))

	plan := &domain.Plan{BasicInfo: domain.BasicInfo{CurrentAge: 50, StartYear: 2026, DeathAge: 40}}
	assert.Empty(t, engine.Rebuild(plan), "death age before current age yields no years")
}

func TestRebuildRefreshesPensionItem(t *testing.T) {
	plan := fiveYearPlan()
	plan.BasicInfo.CurrentAge = 63
	plan.BasicInfo.DeathAge = 67
	plan.BasicInfo.Occupation = domain.OccupationSelfEmployed
	plan.BasicInfo.WorkStartAge = 20
	plan.BasicInfo.WorkEndAge = 60
	plan.Income.Personal = append(plan.Income.Personal, domain.IncomeItem{
		Name:           domain.IncomePension,
		Amounts:        domain.AmountMap{2026: decimal.NewFromInt(999)},
		AutoCalculated: true,
	})

	engine := newTestEngine()
	data := engine.Rebuild(plan)

	// Ages 63..67; pension starts at 65 (2028) at the full basic amount.
	assert.True(t, data[2026].PensionIncome.IsZero())
	assert.True(t, data[2027].PensionIncome.IsZero())
	assert.True(t, decimal.NewFromFloat(78.1).Equal(data[2028].PensionIncome), "got %s", data[2028].PensionIncome)
	assert.True(t, decimal.NewFromFloat(78.1).Equal(data[2030].PensionIncome))
}

func TestRebuildSalaryNetConversion(t *testing.T) {
	plan := fiveYearPlan()
	plan.BasicInfo.Occupation = domain.OccupationCompanyEmployee
	engine := newTestEngine()
	data := engine.Rebuild(plan)

	// Entered gross 500 becomes take-home 383 in the ledger.
	assert.True(t, decimal.NewFromInt(383).Equal(data[2026].MainIncome), "got %s", data[2026].MainIncome)
}

func TestInvestmentContributionCaps(t *testing.T) {
	items := []domain.IncomeItem{
		{
			Name:                "a",
			Amounts:             domain.AmountMap{2026: decimal.NewFromInt(1000)},
			InvestmentRatio:     decimal.NewFromInt(20),
			MaxInvestmentAmount: decimal.NewFromInt(120),
		},
		{
			Name:            "b",
			Amounts:         domain.AmountMap{2026: decimal.NewFromInt(100)},
			InvestmentRatio: decimal.NewFromInt(10),
		},
		{Name: "c", Amounts: domain.AmountMap{2026: decimal.NewFromInt(100)}},
	}
	// a caps 200 to 120, b adds 10, c has no ratio.
	got := InvestmentContribution(items, 2026)
	assert.True(t, decimal.NewFromInt(130).Equal(got), "got %s", got)

	assert.True(t, InvestmentContribution(items, 2030).IsZero())
}

func TestNextPoolNeverNegative(t *testing.T) {
	got := NextPool(decimal.NewFromInt(50), decimal.Zero, decimal.Zero, decimal.NewFromInt(-200))
	assert.True(t, got.IsZero())
}

func TestSeedPoolUsesAbsoluteStartAmounts(t *testing.T) {
	assets := []domain.AssetItem{
		{Name: "fund", Amounts: domain.AmountMap{2026: decimal.NewFromInt(-200)}, IsInvestment: true},
		{Name: "stocks", Amounts: domain.AmountMap{2026: decimal.NewFromInt(100)}, IsInvestment: true},
		{Name: "cash", Amounts: domain.AmountMap{2026: decimal.NewFromInt(500)}},
	}
	got := SeedPool(assets, 2026)
	assert.True(t, decimal.NewFromInt(300).Equal(got), "got %s", got)
}

func TestPoolIncome(t *testing.T) {
	got := PoolIncome(decimal.NewFromInt(455), decimal.NewFromInt(3))
	// 455 * 3% = 13.65 -> 13.7
	assert.True(t, decimal.NewFromFloat(13.7).Equal(got), "got %s", got)
	assert.True(t, PoolIncome(decimal.Zero, decimal.NewFromInt(3)).IsZero())
}
