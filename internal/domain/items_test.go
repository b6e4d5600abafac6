package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestAmountMapYAMLRoundTrip(t *testing.T) {
	in := []byte("2026: 500.5\n2027: 480\n2030: -12.3\n")
	var m AmountMap
	require.NoError(t, yaml.Unmarshal(in, &m))
	require.Len(t, m, 3)
	assert.True(t, decimal.NewFromFloat(500.5).Equal(m[2026]))
	assert.True(t, decimal.NewFromInt(480).Equal(m[2027]))
	assert.True(t, decimal.NewFromFloat(-12.3).Equal(m[2030]))

	out, err := yaml.Marshal(m)
	require.NoError(t, err)

	var back AmountMap
	require.NoError(t, yaml.Unmarshal(out, &back))
	for year, want := range m {
		assert.True(t, want.Equal(back[year]), "year %d: got %s", year, back[year])
	}
}

func TestAmountMapYAMLRejectsBadValues(t *testing.T) {
	var m AmountMap
	assert.Error(t, yaml.Unmarshal([]byte("2026: twelve\n"), &m))
	assert.Error(t, yaml.Unmarshal([]byte("soon: 5\n"), &m))
}

func TestAmountMapGetDefaultsToZero(t *testing.T) {
	m := AmountMap{2026: decimal.NewFromInt(10)}
	assert.True(t, m.Get(2027).IsZero())
	assert.True(t, AmountMap(nil).Get(2026).IsZero())
}

func TestAmountMapCloneIsIndependent(t *testing.T) {
	m := AmountMap{2026: decimal.NewFromInt(10)}
	c := m.Clone()
	c[2026] = decimal.NewFromInt(99)
	c[2027] = decimal.NewFromInt(1)
	assert.True(t, decimal.NewFromInt(10).Equal(m[2026]))
	assert.Len(t, m, 1)
	assert.Nil(t, AmountMap(nil).Clone())
}

func TestAmountMapYearsSorted(t *testing.T) {
	m := AmountMap{2030: decimal.Zero, 2026: decimal.Zero, 2028: decimal.Zero}
	assert.Equal(t, []int{2026, 2028, 2030}, m.Years())
}

func TestExpenseCategoryEscalationRate(t *testing.T) {
	p := Parameters{
		InflationRate:             decimal.NewFromInt(2),
		EducationCostIncreaseRate: decimal.NewFromInt(3),
	}
	tests := []struct {
		category ExpenseCategory
		want     decimal.Decimal
	}{
		{CategoryLiving, decimal.NewFromInt(2)},
		{CategoryHousing, decimal.NewFromInt(2)},
		{CategoryBusiness, decimal.NewFromInt(2)},
		{CategoryOffice, decimal.NewFromInt(2)},
		{CategoryEducation, decimal.NewFromInt(3)},
		{CategoryOther, decimal.Zero},
	}
	for _, tt := range tests {
		got := tt.category.EscalationRate(p)
		assert.True(t, tt.want.Equal(got), "%s: got %s", tt.category, got)
	}
}

func TestReapplyEscalation(t *testing.T) {
	item := ExpenseItem{
		Name:     "groceries",
		Category: CategoryLiving,
		RawAmounts: AmountMap{
			2026: decimal.NewFromInt(100),
			2028: decimal.NewFromInt(100),
		},
	}
	p := Parameters{InflationRate: decimal.NewFromInt(2)}
	item.ReapplyEscalation(p, 2026)

	assert.True(t, decimal.NewFromInt(100).Equal(item.Amounts[2026]))
	// 100 * 1.02^2 = 104.04 -> 104.0
	assert.True(t, decimal.NewFromInt(104).Equal(item.Amounts[2028]), "got %s", item.Amounts[2028])

	// Without raw amounts the entered values stay as-is.
	plain := ExpenseItem{Name: "misc", Category: CategoryOther, Amounts: AmountMap{2026: decimal.NewFromInt(50)}}
	plain.ReapplyEscalation(p, 2026)
	assert.True(t, decimal.NewFromInt(50).Equal(plain.Amounts[2026]))
}

func TestIncomeItemSalaryBase(t *testing.T) {
	net := AmountMap{2026: decimal.NewFromInt(383)}
	gross := AmountMap{2026: decimal.NewFromInt(500)}

	item := IncomeItem{Name: IncomeSalary, Amounts: net, GrossAmounts: gross}
	assert.True(t, decimal.NewFromInt(500).Equal(item.SalaryBase().Get(2026)))

	item.GrossAmounts = nil
	assert.True(t, decimal.NewFromInt(383).Equal(item.SalaryBase().Get(2026)))
}

func TestLoanSettingsSignature(t *testing.T) {
	loan := LoanSettings{
		StartYear:     2028,
		TermYears:     5,
		InterestRate:  decimal.NewFromFloat(1.5),
		RepaymentType: RepayEqualPayment,
		BorrowAmount:  decimal.NewFromInt(200),
	}
	assert.Equal(t, "2028_5_1.5_equal_payment_200", loan.Signature())

	changed := loan
	changed.RepaymentType = RepayEqualPrincipal
	assert.NotEqual(t, loan.Signature(), changed.Signature())
}
