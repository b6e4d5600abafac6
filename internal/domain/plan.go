package domain

import "github.com/shopspring/decimal"

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Plan is the full life-plan document a projection is built from.
type Plan struct {
	BasicInfo   BasicInfo        `yaml:"basic_info"`
	Parameters  Parameters       `yaml:"parameters"`
	Income      IncomeSection    `yaml:"income"`
	Expenses    ExpenseSection   `yaml:"expenses"`
	Assets      AssetSection     `yaml:"assets"`
	Liabilities LiabilitySection `yaml:"liabilities"`
	LifeEvents  []LifeEvent      `yaml:"life_events,omitempty"`
}

// Clone returns a deep copy of the plan. The engine works on a clone so a
// rebuild never mutates the caller's document.
func (p *Plan) Clone() *Plan {
	out := *p
	if p.BasicInfo.Spouse != nil {
		s := *p.BasicInfo.Spouse
		s.CurrentAge = cloneIntPtr(s.CurrentAge)
		s.MarriageAge = cloneIntPtr(s.MarriageAge)
		s.AgeAtMarriage = cloneIntPtr(s.AgeAtMarriage)
		out.BasicInfo.Spouse = &s
	}
	if p.BasicInfo.Housing.Rent != nil {
		r := *p.BasicInfo.Housing.Rent
		out.BasicInfo.Housing.Rent = &r
	}
	if p.BasicInfo.Housing.Own != nil {
		o := *p.BasicInfo.Housing.Own
		out.BasicInfo.Housing.Own = &o
	}
	out.BasicInfo.Children = append([]Child(nil), p.BasicInfo.Children...)
	out.BasicInfo.PlannedChildren = append([]PlannedChild(nil), p.BasicInfo.PlannedChildren...)

	cloneIncomes := func(src []IncomeItem) []IncomeItem {
		dst := make([]IncomeItem, len(src))
		for i, it := range src {
			dst[i] = it.Clone()
		}
		return dst
	}
	cloneExpenses := func(src []ExpenseItem) []ExpenseItem {
		dst := make([]ExpenseItem, len(src))
		for i, it := range src {
			it.Amounts = it.Amounts.Clone()
			it.RawAmounts = it.RawAmounts.Clone()
			dst[i] = it
		}
		return dst
	}
	cloneAssets := func(src []AssetItem) []AssetItem {
		dst := make([]AssetItem, len(src))
		for i, it := range src {
			it.Amounts = it.Amounts.Clone()
			dst[i] = it
		}
		return dst
	}
	cloneLiabilities := func(src []LiabilityItem) []LiabilityItem {
		dst := make([]LiabilityItem, len(src))
		for i, it := range src {
			it.Amounts = it.Amounts.Clone()
			if it.Loan != nil {
				l := *it.Loan
				it.Loan = &l
			}
			dst[i] = it
		}
		return dst
	}

	out.Income.Personal = cloneIncomes(p.Income.Personal)
	out.Income.Corporate = cloneIncomes(p.Income.Corporate)
	out.Expenses.Personal = cloneExpenses(p.Expenses.Personal)
	out.Expenses.Corporate = cloneExpenses(p.Expenses.Corporate)
	out.Assets.Personal = cloneAssets(p.Assets.Personal)
	out.Assets.Corporate = cloneAssets(p.Assets.Corporate)
	out.Liabilities.Personal = cloneLiabilities(p.Liabilities.Personal)
	out.Liabilities.Corporate = cloneLiabilities(p.Liabilities.Corporate)
	out.LifeEvents = append([]LifeEvent(nil), p.LifeEvents...)
	return &out
}

// DefaultPlan returns a plan seeded with the standard income, expense,
// asset, and liability lines a new projection starts from.
func DefaultPlan() *Plan {
	return &Plan{
		BasicInfo: BasicInfo{
			CurrentAge:           30,
			StartYear:            2026,
			DeathAge:             90,
			Gender:               GenderMale,
			MonthlyLivingExpense: decimal.NewFromInt(20),
			Occupation:           OccupationCompanyEmployee,
			MaritalStatus:        MaritalSingle,
			Housing: HousingInfo{
				Type: HousingRent,
				Rent: &RentPlan{
					MonthlyRent:        decimal.NewFromInt(8),
					AnnualIncreaseRate: decimal.Zero,
					RenewalFee:         decimal.NewFromInt(8),
					RenewalInterval:    2,
				},
			},
		},
		Parameters: Parameters{
			InflationRate:             decimal.NewFromInt(1),
			EducationCostIncreaseRate: decimal.NewFromInt(1),
			InvestmentReturn:          decimal.NewFromInt(3),
		},
		Income: IncomeSection{
			Personal: []IncomeItem{
				{Name: IncomeSalary, Amounts: AmountMap{}},
				{Name: IncomeBusiness, Amounts: AmountMap{}},
				{Name: IncomeSide, Amounts: AmountMap{}},
				{Name: IncomePension, Amounts: AmountMap{}, AutoCalculated: true},
				{Name: IncomeSpouse, Amounts: AmountMap{}},
				{Name: IncomeSpousePension, Amounts: AmountMap{}, AutoCalculated: true},
			},
			Corporate: []IncomeItem{
				{Name: CorporateSales, Amounts: AmountMap{}},
				{Name: "other", Amounts: AmountMap{}},
			},
		},
		Expenses: ExpenseSection{
			Personal: []ExpenseItem{
				{Name: "living", Category: CategoryLiving, Amounts: AmountMap{}, AutoCalculated: true},
				{Name: "housing", Category: CategoryHousing, Amounts: AmountMap{}, AutoCalculated: true},
				{Name: "education", Category: CategoryEducation, Amounts: AmountMap{}, AutoCalculated: true},
				{Name: "other", Category: CategoryOther, Amounts: AmountMap{}},
			},
			Corporate: []ExpenseItem{
				{Name: "personnel", Category: CategoryBusiness, Amounts: AmountMap{}},
				{Name: "outsourcing", Category: CategoryBusiness, Amounts: AmountMap{}},
				{Name: "rent", Category: CategoryOffice, Amounts: AmountMap{}},
				{Name: "equipment", Category: CategoryOffice, Amounts: AmountMap{}},
				{Name: "other", Category: CategoryOther, Amounts: AmountMap{}},
			},
		},
		Assets: AssetSection{
			Personal: []AssetItem{
				{Name: "cash", Amounts: AmountMap{}},
				{Name: "stocks", Amounts: AmountMap{}, IsInvestment: true},
				{Name: "mutual_funds", Amounts: AmountMap{}, IsInvestment: true},
				{Name: "real_estate", Amounts: AmountMap{}},
			},
			Corporate: []AssetItem{
				{Name: "cash", Amounts: AmountMap{}},
			},
		},
		Liabilities: LiabilitySection{
			Personal: []LiabilityItem{
				{Name: "loans", Amounts: AmountMap{}},
				{Name: "credit_balance", Amounts: AmountMap{}},
			},
			Corporate: []LiabilityItem{
				{Name: "borrowings", Amounts: AmountMap{}},
				{Name: "accounts_payable", Amounts: AmountMap{}},
			},
		},
	}
}
