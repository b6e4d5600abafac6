package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lifeplan/lifeplan-simulator/internal/domain"
)

func TestNetIncomeEmployee(t *testing.T) {
	tests := []struct {
		name              string
		gross             decimal.Decimal
		occupation        domain.Occupation
		expectedDeduction decimal.Decimal
		expectedInsurance decimal.Decimal
		expectedIncomeTax decimal.Decimal
		expectedResident  decimal.Decimal
		expectedNet       decimal.Decimal
	}{
		{
			name:              "mid salary",
			gross:             decimal.NewFromInt(500),
			occupation:        domain.OccupationCompanyEmployee,
			expectedDeduction: decimal.NewFromInt(158), // 500*0.3+8
			expectedInsurance: decimal.NewFromInt(75),  // 500*0.15
			expectedIncomeTax: decimal.NewFromInt(16),  // 267*0.10-9.75 floored
			expectedResident:  decimal.NewFromInt(26),  // 267*0.10 floored
			expectedNet:       decimal.NewFromInt(383),
		},
		{
			name:              "low salary",
			gross:             decimal.NewFromInt(300),
			occupation:        domain.OccupationCompanyEmployee,
			expectedDeduction: decimal.NewFromInt(98), // 300*0.3+8
			expectedInsurance: decimal.NewFromInt(45),
			expectedIncomeTax: decimal.NewFromInt(7), // 157*0.05 floored
			expectedResident:  decimal.NewFromInt(15),
			expectedNet:       decimal.NewFromInt(233),
		},
		{
			name:              "above insurance threshold",
			gross:             decimal.NewFromInt(1000),
			occupation:        domain.OccupationCompanyEmployee,
			expectedDeduction: decimal.NewFromInt(195), // capped
			expectedInsurance: decimal.NewFromInt(77),  // 1000*0.077
			expectedIncomeTax: decimal.NewFromInt(103), // 728*0.23-63.6 floored
			expectedResident:  decimal.NewFromInt(72),
			expectedNet:       decimal.NewFromInt(748),
		},
		{
			name:              "part time without pension pays no insurance",
			gross:             decimal.NewFromInt(200),
			occupation:        domain.OccupationPartTimeWithoutPension,
			expectedDeduction: decimal.NewFromInt(68), // 200*0.3+8
			expectedInsurance: decimal.Zero,
			expectedIncomeTax: decimal.NewFromInt(6), // 132*0.05 floored
			expectedResident:  decimal.NewFromInt(13),
			expectedNet:       decimal.NewFromInt(181),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NetIncome(tt.gross, tt.occupation)
			assert.True(t, tt.expectedDeduction.Equal(result.SalaryDeduction), "deduction: got %s", result.SalaryDeduction)
			assert.True(t, tt.expectedInsurance.Equal(result.SocialInsurance), "insurance: got %s", result.SocialInsurance)
			assert.True(t, tt.expectedIncomeTax.Equal(result.IncomeTax), "income tax: got %s", result.IncomeTax)
			assert.True(t, tt.expectedResident.Equal(result.ResidentTax), "resident tax: got %s", result.ResidentTax)
			assert.True(t, tt.expectedNet.Equal(result.Net), "net: got %s", result.Net)
		})
	}
}

func TestNetIncomePassThrough(t *testing.T) {
	for _, occupation := range []domain.Occupation{domain.OccupationSelfEmployed, domain.OccupationHomemaker} {
		result := NetIncome(decimal.NewFromInt(500), occupation)
		assert.True(t, decimal.NewFromInt(500).Equal(result.Net), "%s should take home the full amount", occupation)
		assert.True(t, result.IncomeTax.IsZero())
		assert.True(t, result.SocialInsurance.IsZero())
	}
}

func TestNetIncomeZeroAndNegative(t *testing.T) {
	zero := NetIncome(decimal.Zero, domain.OccupationCompanyEmployee)
	assert.True(t, zero.Net.IsZero())
	assert.True(t, zero.SalaryDeduction.IsZero())

	negative := NetIncome(decimal.NewFromInt(-10), domain.OccupationCompanyEmployee)
	assert.True(t, decimal.NewFromInt(-10).Equal(negative.Net))
}

func TestNetIncomeMonotonic(t *testing.T) {
	previous := decimal.Zero
	for gross := 100; gross <= 2000; gross += 100 {
		net := NetIncome(decimal.NewFromInt(int64(gross)), domain.OccupationCompanyEmployee).Net
		assert.True(t, net.GreaterThan(previous), "net income should grow with gross (gross %d)", gross)
		previous = net
	}
}

func TestNetIncomeWithRaise(t *testing.T) {
	// 500 * 1.02^2 = 520.2, floored to 520 before conversion.
	result := NetIncomeWithRaise(decimal.NewFromInt(500), decimal.NewFromInt(2), 2025, 2027, domain.OccupationCompanyEmployee)
	assert.True(t, decimal.NewFromInt(520).Equal(result.Gross), "gross: got %s", result.Gross)
	assert.True(t, decimal.NewFromInt(397).Equal(result.Net), "net: got %s", result.Net)
}

func TestApplyNetConversion(t *testing.T) {
	item := &domain.IncomeItem{
		Name:    domain.IncomeSalary,
		Amounts: domain.AmountMap{2026: decimal.NewFromInt(500)},
	}
	ApplyNetConversion(item, domain.OccupationCompanyEmployee)
	assert.True(t, decimal.NewFromInt(500).Equal(item.GrossAmounts.Get(2026)), "gross shadow should keep the entry")
	assert.True(t, decimal.NewFromInt(383).Equal(item.Amounts.Get(2026)))

	// Converting again must not compound.
	ApplyNetConversion(item, domain.OccupationCompanyEmployee)
	assert.True(t, decimal.NewFromInt(383).Equal(item.Amounts.Get(2026)))
}
