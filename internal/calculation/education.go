package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lifeplan/lifeplan-simulator/internal/domain"
	"github.com/lifeplan/lifeplan-simulator/pkg/money"
)

// Annual education cost per schooling stage in man-yen.
var stageCosts = map[domain.SchoolChoice]map[string]decimal.Decimal{
	domain.SchoolPublic: {
		"nursery":    decimal.NewFromFloat(29.9),
		"preschool":  decimal.NewFromFloat(18.4),
		"elementary": decimal.NewFromFloat(33.6),
		"junior_high": decimal.NewFromFloat(54.2),
		"high_school": decimal.NewFromFloat(59.7),
	},
	domain.SchoolPrivate: {
		"nursery":    decimal.NewFromFloat(35.3),
		"preschool":  decimal.NewFromFloat(34.7),
		"elementary": decimal.NewFromFloat(182.8),
		"junior_high": decimal.NewFromInt(156),
		"high_school": decimal.NewFromInt(103),
	},
}

var universityCosts = map[domain.UniversityChoice]decimal.Decimal{
	domain.UniversityNationalArts:    decimal.NewFromFloat(60.6),
	domain.UniversityNationalScience: decimal.NewFromFloat(60.6),
	domain.UniversityPrivateArts:     decimal.NewFromFloat(102.6),
	domain.UniversityPrivateScience:  decimal.NewFromFloat(135.4),
}

// annualEducationCost returns the base-year cost of one child at the given
// age under the given plan.
func annualEducationCost(age int, plan domain.EducationPlan) decimal.Decimal {
	var choice domain.SchoolChoice
	var stage string
	switch {
	case age >= 0 && age <= 2:
		choice, stage = plan.Nursery, "nursery"
	case age >= 3 && age <= 5:
		choice, stage = plan.Preschool, "preschool"
	case age >= 6 && age <= 11:
		choice, stage = plan.Elementary, "elementary"
	case age >= 12 && age <= 14:
		choice, stage = plan.JuniorHigh, "junior_high"
	case age >= 15 && age <= 17:
		choice, stage = plan.HighSchool, "high_school"
	case age >= 18 && age <= 21:
		return universityCosts[plan.University]
	default:
		return decimal.Zero
	}
	if costs, ok := stageCosts[choice]; ok {
		return costs[stage]
	}
	return decimal.Zero
}

// EducationExpense returns the household's total education cost for one
// calendar year, escalated by the education cost increase rate compounded
// from the start year, rounded to one decimal place.
func EducationExpense(info domain.BasicInfo, params domain.Parameters, year int) decimal.Decimal {
	elapsed := year - info.StartYear
	total := decimal.Zero
	for _, child := range info.Children {
		total = total.Add(annualEducationCost(child.CurrentAge+elapsed, child.EducationPlan))
	}
	for _, planned := range info.PlannedChildren {
		if elapsed < planned.YearsFromNow {
			continue
		}
		total = total.Add(annualEducationCost(elapsed-planned.YearsFromNow, planned.EducationPlan))
	}
	if total.IsZero() {
		return decimal.Zero
	}
	return money.Round1(total.Mul(money.EscalationFactor(params.EducationCostIncreaseRate, elapsed)))
}
