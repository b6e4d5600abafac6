package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/lifeplan/lifeplan-simulator/internal/domain"
)

// PlanParser loads and validates plan documents.
type PlanParser struct{}

// NewPlanParser creates a new plan parser.
func NewPlanParser() *PlanParser {
	return &PlanParser{}
}

// LoadFromFile loads a plan from a YAML file.
func (pp *PlanParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return pp.Load(data)
}

// Load parses and validates a plan from YAML bytes.
func (pp *PlanParser) Load(data []byte) (*domain.Plan, error) {
	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := pp.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}
	return &plan, nil
}

// SaveToFile writes a plan back out as YAML.
func (pp *PlanParser) SaveToFile(plan *domain.Plan, filename string) error {
	data, err := yaml.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// ValidatePlan validates a loaded plan document.
func (pp *PlanParser) ValidatePlan(plan *domain.Plan) error {
	if err := pp.validateBasicInfo(&plan.BasicInfo); err != nil {
		return fmt.Errorf("basic info validation failed: %w", err)
	}
	if err := pp.validateParameters(&plan.Parameters); err != nil {
		return fmt.Errorf("parameters validation failed: %w", err)
	}
	for i, item := range plan.Expenses.Personal {
		if item.Category != "" && !item.Category.Valid() {
			return fmt.Errorf("personal expense %d (%s): unknown category %q", i, item.Name, item.Category)
		}
	}
	for i, item := range plan.Expenses.Corporate {
		if item.Category != "" && !item.Category.Valid() {
			return fmt.Errorf("corporate expense %d (%s): unknown category %q", i, item.Name, item.Category)
		}
	}
	for i, item := range plan.Liabilities.Personal {
		if err := pp.validateLiability(&item); err != nil {
			return fmt.Errorf("personal liability %d (%s): %w", i, item.Name, err)
		}
	}
	for i, item := range plan.Liabilities.Corporate {
		if err := pp.validateLiability(&item); err != nil {
			return fmt.Errorf("corporate liability %d (%s): %w", i, item.Name, err)
		}
	}
	for i, ev := range plan.LifeEvents {
		if err := pp.validateLifeEvent(&ev); err != nil {
			return fmt.Errorf("life event %d (%s): %w", i, ev.Name, err)
		}
	}
	return nil
}

func (pp *PlanParser) validateBasicInfo(info *domain.BasicInfo) error {
	if info.CurrentAge <= 0 {
		return fmt.Errorf("current age must be positive")
	}
	if info.StartYear <= 0 {
		return fmt.Errorf("start year is required")
	}
	if info.DeathAge < info.CurrentAge {
		return fmt.Errorf("death age %d must not precede current age %d", info.DeathAge, info.CurrentAge)
	}
	if !info.Occupation.Valid() {
		return fmt.Errorf("unknown occupation %q", info.Occupation)
	}
	if info.MonthlyLivingExpense.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly living expense cannot be negative")
	}

	switch info.Housing.Type {
	case domain.HousingRent:
		if info.Housing.Rent == nil {
			return fmt.Errorf("housing type is rent but no rent plan is set")
		}
		if info.Housing.Rent.RenewalInterval < 0 {
			return fmt.Errorf("rent renewal interval cannot be negative")
		}
	case domain.HousingOwn:
		if info.Housing.Own == nil {
			return fmt.Errorf("housing type is own but no purchase plan is set")
		}
		if info.Housing.Own.LoanTermYears < 0 {
			return fmt.Errorf("housing loan term cannot be negative")
		}
	default:
		return fmt.Errorf("unknown housing type %q", info.Housing.Type)
	}

	switch info.MaritalStatus {
	case domain.MaritalSingle:
	case domain.MaritalMarried:
		if info.Spouse == nil || info.Spouse.CurrentAge == nil {
			return fmt.Errorf("married status requires the spouse's current age")
		}
	case domain.MaritalPlanning:
		if info.Spouse == nil || info.Spouse.MarriageAge == nil || info.Spouse.AgeAtMarriage == nil {
			return fmt.Errorf("planned marriage requires marriage age and spouse age at marriage")
		}
	default:
		return fmt.Errorf("unknown marital status %q", info.MaritalStatus)
	}

	if info.Spouse != nil && info.Spouse.Occupation != "" && !info.Spouse.Occupation.Valid() {
		return fmt.Errorf("unknown spouse occupation %q", info.Spouse.Occupation)
	}
	for i, child := range info.Children {
		if child.CurrentAge < 0 {
			return fmt.Errorf("child %d: age cannot be negative", i)
		}
	}
	for i, planned := range info.PlannedChildren {
		if planned.YearsFromNow < 0 {
			return fmt.Errorf("planned child %d: years from now cannot be negative", i)
		}
	}
	return nil
}

func (pp *PlanParser) validateParameters(params *domain.Parameters) error {
	if params.MaxInvestmentAmount.LessThan(decimal.Zero) {
		return fmt.Errorf("max investment amount cannot be negative")
	}
	return nil
}

func (pp *PlanParser) validateLiability(item *domain.LiabilityItem) error {
	if !item.AutoCalculated {
		return nil
	}
	if item.Loan == nil {
		return fmt.Errorf("auto-calculated liability requires loan settings")
	}
	if item.Loan.TermYears <= 0 {
		return fmt.Errorf("loan term must be positive")
	}
	if item.Loan.BorrowAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("borrow amount must be positive")
	}
	if item.Loan.InterestRate.LessThan(decimal.Zero) {
		return fmt.Errorf("interest rate cannot be negative")
	}
	switch item.Loan.RepaymentType {
	case domain.RepayEqualPayment, domain.RepayEqualPrincipal:
	default:
		return fmt.Errorf("unknown repayment type %q", item.Loan.RepaymentType)
	}
	return nil
}

func (pp *PlanParser) validateLifeEvent(ev *domain.LifeEvent) error {
	if ev.Year <= 0 {
		return fmt.Errorf("year is required")
	}
	switch ev.Type {
	case domain.EventIncome, domain.EventExpense:
	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
	switch ev.Source {
	case domain.SourcePersonal, domain.SourceCorporate,
		domain.SourcePersonalInvestment, domain.SourceCorporateInvestment:
	default:
		return fmt.Errorf("unknown event source %q", ev.Source)
	}
	if ev.Amount.LessThan(decimal.Zero) {
		return fmt.Errorf("amount cannot be negative")
	}
	return nil
}

// CreateExamplePlan returns a small but fully-populated plan suitable as a
// starting template.
func CreateExamplePlan() *domain.Plan {
	plan := domain.DefaultPlan()
	info := &plan.BasicInfo
	info.CurrentAge = 35
	info.StartYear = 2026
	info.DeathAge = 90
	info.MonthlyLivingExpense = decimal.NewFromInt(22)
	info.Occupation = domain.OccupationCompanyEmployee
	info.MaritalStatus = domain.MaritalMarried
	spouseAge := 33
	info.Spouse = &domain.SpouseInfo{
		CurrentAge: &spouseAge,
		Occupation: domain.OccupationPartTimeWithoutPension,
	}
	info.Children = []domain.Child{{
		CurrentAge: 3,
		EducationPlan: domain.EducationPlan{
			Nursery:    domain.SchoolNone,
			Preschool:  domain.SchoolPublic,
			Elementary: domain.SchoolPublic,
			JuniorHigh: domain.SchoolPublic,
			HighSchool: domain.SchoolPublic,
			University: domain.UniversityPrivateArts,
		},
	}}
	info.WillWorkAfterPension = false

	for i := range plan.Income.Personal {
		item := &plan.Income.Personal[i]
		switch item.Name {
		case domain.IncomeSalary:
			for year := info.StartYear; year < info.StartYear+25; year++ {
				item.Amounts[year] = decimal.NewFromInt(600)
			}
			item.InvestmentRatio = decimal.NewFromInt(10)
		case domain.IncomeSpouse:
			for year := info.StartYear; year < info.StartYear+20; year++ {
				item.Amounts[year] = decimal.NewFromInt(100)
			}
		}
	}
	for i := range plan.Expenses.Personal {
		item := &plan.Expenses.Personal[i]
		if item.Name == "other" {
			item.RawAmounts = domain.AmountMap{}
			for year := info.StartYear; year <= info.EndYear(); year++ {
				item.RawAmounts[year] = decimal.NewFromInt(24)
			}
		}
	}
	for i := range plan.Assets.Personal {
		item := &plan.Assets.Personal[i]
		switch item.Name {
		case "cash":
			item.Amounts[info.StartYear] = decimal.NewFromInt(300)
		case "mutual_funds":
			item.Amounts[info.StartYear] = decimal.NewFromInt(200)
		}
	}
	plan.Liabilities.Personal = append(plan.Liabilities.Personal, domain.LiabilityItem{
		Name:           "car_loan",
		Amounts:        domain.AmountMap{},
		AutoCalculated: true,
		Loan: &domain.LoanSettings{
			StartYear:     info.StartYear + 2,
			TermYears:     5,
			InterestRate:  decimal.NewFromInt(2),
			RepaymentType: domain.RepayEqualPayment,
			BorrowAmount:  decimal.NewFromInt(200),
		},
	})
	plan.LifeEvents = []domain.LifeEvent{
		{
			Name:   "car_purchase",
			Year:   info.StartYear + 2,
			Type:   domain.EventIncome,
			Source: domain.SourcePersonal,
			Amount: decimal.NewFromInt(200),
		},
		{
			Name:   "car_payment",
			Year:   info.StartYear + 2,
			Type:   domain.EventExpense,
			Source: domain.SourcePersonal,
			Amount: decimal.NewFromInt(200),
		},
	}
	return plan
}
