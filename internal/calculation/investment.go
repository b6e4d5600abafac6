package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lifeplan/lifeplan-simulator/internal/domain"
	"github.com/lifeplan/lifeplan-simulator/pkg/money"
)

// InvestmentContribution sums the year's automatic investment deposits over
// a book's income lines: each line with a positive amount and a positive
// ratio contributes amount x ratio, capped per line by its maximum (a zero
// or negative maximum means uncapped). Rounded to one decimal place.
func InvestmentContribution(items []domain.IncomeItem, year int) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		amount := item.Amounts.Get(year)
		if amount.LessThanOrEqual(decimal.Zero) || item.InvestmentRatio.LessThanOrEqual(decimal.Zero) {
			continue
		}
		contribution := amount.Mul(item.InvestmentRatio).Div(decimal.NewFromInt(100))
		if item.MaxInvestmentAmount.GreaterThan(decimal.Zero) {
			contribution = money.Min(contribution, item.MaxInvestmentAmount)
		}
		total = total.Add(contribution)
	}
	return money.Round1(total)
}

// PoolIncome is the year's return on the previous pool balance, rounded to
// one decimal place.
func PoolIncome(previousPool, returnPct decimal.Decimal) decimal.Decimal {
	return money.Round1(previousPool.Mul(returnPct).Div(decimal.NewFromInt(100)))
}

// NextPool rolls the pool forward one year. The pool never goes negative;
// investment-sourced life events net directly against it.
func NextPool(previousPool, contribution, income, eventNet decimal.Decimal) decimal.Decimal {
	return money.FloorZero(money.Round1(previousPool.Add(contribution).Add(income).Add(eventNet)))
}

// SeedPool sums the start-year balances of the asset lines flagged as
// investments.
func SeedPool(assets []domain.AssetItem, startYear int) decimal.Decimal {
	total := decimal.Zero
	for _, asset := range assets {
		if asset.IsInvestment {
			total = total.Add(asset.Amounts.Get(startYear).Abs())
		}
	}
	return money.Round1(total)
}
