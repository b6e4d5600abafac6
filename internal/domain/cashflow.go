package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CashFlowYear is one ledger row. All amounts are man-yen rounded to one
// decimal place.
type CashFlowYear struct {
	Year int `json:"year"`
	Age  int `json:"age"`

	// Personal book.
	MainIncome          decimal.Decimal `json:"main_income"`
	SideIncome          decimal.Decimal `json:"side_income"`
	SpouseIncome        decimal.Decimal `json:"spouse_income"`
	PensionIncome       decimal.Decimal `json:"pension_income"`
	SpousePensionIncome decimal.Decimal `json:"spouse_pension_income"`
	InvestmentIncome    decimal.Decimal `json:"investment_income"`
	EventIncome         decimal.Decimal `json:"event_income"`
	TotalIncome         decimal.Decimal `json:"total_income"`

	LivingExpense    decimal.Decimal `json:"living_expense"`
	HousingExpense   decimal.Decimal `json:"housing_expense"`
	EducationExpense decimal.Decimal `json:"education_expense"`
	OtherExpense     decimal.Decimal `json:"other_expense"`
	LoanRepayment    decimal.Decimal `json:"loan_repayment"`
	EventExpense     decimal.Decimal `json:"event_expense"`
	TotalExpense     decimal.Decimal `json:"total_expense"`

	Balance                decimal.Decimal `json:"balance"`
	InvestmentContribution decimal.Decimal `json:"investment_contribution"`
	InvestmentBalance      decimal.Decimal `json:"investment_balance"`
	TotalAssets            decimal.Decimal `json:"total_assets"`
	LiabilityTotal         decimal.Decimal `json:"liability_total"`
	NetAssets              decimal.Decimal `json:"net_assets"`

	// Corporate book.
	CorporateIncome       decimal.Decimal `json:"corporate_income"`
	CorporateOtherIncome  decimal.Decimal `json:"corporate_other_income"`
	CorporateEventIncome  decimal.Decimal `json:"corporate_event_income"`
	CorporateTotalIncome  decimal.Decimal `json:"corporate_total_income"`

	CorporateBusinessExpense decimal.Decimal `json:"corporate_business_expense"`
	CorporateOfficeExpense   decimal.Decimal `json:"corporate_office_expense"`
	CorporateLoanRepayment   decimal.Decimal `json:"corporate_loan_repayment"`
	CorporateEventExpense    decimal.Decimal `json:"corporate_event_expense"`
	CorporateTotalExpense    decimal.Decimal `json:"corporate_total_expense"`

	CorporateBalance                decimal.Decimal `json:"corporate_balance"`
	CorporateInvestmentIncome       decimal.Decimal `json:"corporate_investment_income"`
	CorporateInvestmentContribution decimal.Decimal `json:"corporate_investment_contribution"`
	CorporateInvestmentBalance      decimal.Decimal `json:"corporate_investment_balance"`
	CorporateTotalAssets            decimal.Decimal `json:"corporate_total_assets"`
	CorporateLiabilityTotal         decimal.Decimal `json:"corporate_liability_total"`
	CorporateNetAssets              decimal.Decimal `json:"corporate_net_assets"`
}

// CashFlowData is the full projection keyed by calendar year.
type CashFlowData map[int]CashFlowYear

// Years returns the projected years in ascending order.
func (d CashFlowData) Years() []int {
	years := make([]int, 0, len(d))
	for y := range d {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Get returns the row for year; the zero row when absent.
func (d CashFlowData) Get(year int) CashFlowYear {
	return d[year]
}
