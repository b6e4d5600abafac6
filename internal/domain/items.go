package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/lifeplan/lifeplan-simulator/pkg/money"
)

// AmountMap holds a per-calendar-year monetary series in man-yen. Missing
// years read as zero.
type AmountMap map[int]decimal.Decimal

// Get returns the amount for year, or zero when absent.
func (m AmountMap) Get(year int) decimal.Decimal {
	if m == nil {
		return decimal.Zero
	}
	if v, ok := m[year]; ok {
		return v
	}
	return decimal.Zero
}

// Clone returns an independent copy of the map.
func (m AmountMap) Clone() AmountMap {
	if m == nil {
		return nil
	}
	out := make(AmountMap, len(m))
	for y, v := range m {
		out[y] = v
	}
	return out
}

// Years returns the covered years in ascending order.
func (m AmountMap) Years() []int {
	years := make([]int, 0, len(m))
	for y := range m {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// UnmarshalYAML decodes amounts from their scalar representation so values
// like 500.5 keep their exact decimal form.
func (m *AmountMap) UnmarshalYAML(value *yaml.Node) error {
	raw := map[int]string{}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	out := make(AmountMap, len(raw))
	for year, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			out[year] = decimal.Zero
			continue
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return fmt.Errorf("amount for year %d: %w", year, err)
		}
		out[year] = d
	}
	*m = out
	return nil
}

// MarshalYAML emits amounts as plain scalars in year order.
func (m AmountMap) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, y := range m.Years() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprintf("%d", y)},
			&yaml.Node{Kind: yaml.ScalarNode, Value: m[y].String()},
		)
	}
	return node, nil
}

// ExpenseCategory classifies an expense line and selects its escalation rate.
type ExpenseCategory string

const (
	CategoryLiving    ExpenseCategory = "living"
	CategoryHousing   ExpenseCategory = "housing"
	CategoryEducation ExpenseCategory = "education"
	CategoryOther     ExpenseCategory = "other"
	CategoryBusiness  ExpenseCategory = "business"
	CategoryOffice    ExpenseCategory = "office"
)

// EscalationRate returns the annual percentage applied to raw amounts of
// this category.
func (c ExpenseCategory) EscalationRate(p Parameters) decimal.Decimal {
	switch c {
	case CategoryLiving, CategoryHousing, CategoryBusiness, CategoryOffice:
		return p.InflationRate
	case CategoryEducation:
		return p.EducationCostIncreaseRate
	}
	return decimal.Zero
}

// Valid reports whether the category is a known value.
func (c ExpenseCategory) Valid() bool {
	switch c {
	case CategoryLiving, CategoryHousing, CategoryEducation,
		CategoryOther, CategoryBusiness, CategoryOffice:
		return true
	}
	return false
}

// Well-known item names the ledger aggregates by.
const (
	IncomeSalary        = "salary"
	IncomeBusiness      = "business"
	IncomeSide          = "side"
	IncomePension       = "pension"
	IncomeSpouse        = "spouse"
	IncomeSpousePension = "spouse_pension"

	CorporateSales = "sales"
)

// IncomeItem is one income line. Amounts hold take-home figures; for salary
// streams converted from gross entries, GrossAmounts keeps the originals for
// pension averaging.
type IncomeItem struct {
	Name                string          `yaml:"name"`
	Amounts             AmountMap       `yaml:"amounts"`
	GrossAmounts        AmountMap       `yaml:"gross_amounts,omitempty"`
	AutoCalculated      bool            `yaml:"auto_calculated,omitempty"`
	InvestmentRatio     decimal.Decimal `yaml:"investment_ratio,omitempty"`
	MaxInvestmentAmount decimal.Decimal `yaml:"max_investment_amount,omitempty"`
}

// Clone returns a deep copy of the item.
func (it IncomeItem) Clone() IncomeItem {
	out := it
	out.Amounts = it.Amounts.Clone()
	out.GrossAmounts = it.GrossAmounts.Clone()
	return out
}

// SalaryBase returns the stream to average for pension purposes, preferring
// the gross shadow amounts when present.
func (it IncomeItem) SalaryBase() AmountMap {
	if len(it.GrossAmounts) > 0 {
		return it.GrossAmounts
	}
	return it.Amounts
}

// ExpenseItem is one expense line. RawAmounts are the entered base-year
// figures; Amounts the escalated values shown in the ledger.
type ExpenseItem struct {
	Name           string          `yaml:"name"`
	Category       ExpenseCategory `yaml:"category"`
	Amounts        AmountMap       `yaml:"amounts"`
	RawAmounts     AmountMap       `yaml:"raw_amounts,omitempty"`
	AutoCalculated bool            `yaml:"auto_calculated,omitempty"`
}

// ReapplyEscalation derives Amounts from RawAmounts using the category's
// escalation rate compounded from startYear. Items without raw amounts are
// left as entered.
func (it *ExpenseItem) ReapplyEscalation(p Parameters, startYear int) {
	if len(it.RawAmounts) == 0 {
		return
	}
	rate := it.Category.EscalationRate(p)
	out := make(AmountMap, len(it.RawAmounts))
	for year, base := range it.RawAmounts {
		factor := money.EscalationFactor(rate, year-startYear)
		out[year] = money.Round1(base.Mul(factor))
	}
	it.Amounts = out
}

// AssetItem is one asset line; IsInvestment marks it as seeding the
// investment pool at the start year.
type AssetItem struct {
	Name         string    `yaml:"name"`
	Amounts      AmountMap `yaml:"amounts"`
	IsInvestment bool      `yaml:"is_investment,omitempty"`
}

// RepaymentMethod selects the loan amortization method.
type RepaymentMethod string

const (
	RepayEqualPayment   RepaymentMethod = "equal_payment"
	RepayEqualPrincipal RepaymentMethod = "equal_principal"
)

// LoanSettings configure an auto-calculated liability schedule.
type LoanSettings struct {
	StartYear     int             `yaml:"start_year"`
	TermYears     int             `yaml:"term_years"`
	InterestRate  decimal.Decimal `yaml:"interest_rate"`
	RepaymentType RepaymentMethod `yaml:"repayment_type"`
	BorrowAmount  decimal.Decimal `yaml:"borrow_amount"`
}

// Signature identifies the parameter set a generated schedule was built
// from. A stored fingerprint that no longer matches forces regeneration.
func (s LoanSettings) Signature() string {
	return fmt.Sprintf("%d_%d_%s_%s_%s",
		s.StartYear, s.TermYears, s.InterestRate.String(),
		s.RepaymentType, s.BorrowAmount.String())
}

// LiabilityItem is one liability line. Auto-calculated items carry loan
// settings and a fingerprint of the parameters their amounts were generated
// from.
type LiabilityItem struct {
	Name           string        `yaml:"name"`
	Amounts        AmountMap     `yaml:"amounts"`
	AutoCalculated bool          `yaml:"auto_calculated,omitempty"`
	Loan           *LoanSettings `yaml:"loan,omitempty"`
	Fingerprint    string        `yaml:"fingerprint,omitempty"`
}

// EventType distinguishes inflow from outflow life events.
type EventType string

const (
	EventIncome  EventType = "income"
	EventExpense EventType = "expense"
)

// EventSource selects which book (and which pool) an event hits.
type EventSource string

const (
	SourcePersonal            EventSource = "personal"
	SourceCorporate           EventSource = "corporate"
	SourcePersonalInvestment  EventSource = "personal_investment"
	SourceCorporateInvestment EventSource = "corporate_investment"
)

// LifeEvent is a one-off cash movement in a single year.
type LifeEvent struct {
	Name   string          `yaml:"name"`
	Year   int             `yaml:"year"`
	Type   EventType       `yaml:"type"`
	Source EventSource     `yaml:"source"`
	Amount decimal.Decimal `yaml:"amount"`
}

// IncomeSection groups income lines by book.
type IncomeSection struct {
	Personal  []IncomeItem `yaml:"personal"`
	Corporate []IncomeItem `yaml:"corporate"`
}

// ExpenseSection groups expense lines by book.
type ExpenseSection struct {
	Personal  []ExpenseItem `yaml:"personal"`
	Corporate []ExpenseItem `yaml:"corporate"`
}

// AssetSection groups asset lines by book.
type AssetSection struct {
	Personal  []AssetItem `yaml:"personal"`
	Corporate []AssetItem `yaml:"corporate"`
}

// LiabilitySection groups liability lines by book.
type LiabilitySection struct {
	Personal  []LiabilityItem `yaml:"personal"`
	Corporate []LiabilityItem `yaml:"corporate"`
}
