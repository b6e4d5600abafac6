package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Occupation classifies how the household head (or spouse) earns income.
// It drives both the net-income deduction model and pension enrollment.
type Occupation string

const (
	OccupationCompanyEmployee        Occupation = "company_employee"
	OccupationPartTimeWithPension    Occupation = "part_time_with_pension"
	OccupationPartTimeWithoutPension Occupation = "part_time_without_pension"
	OccupationSelfEmployed           Occupation = "self_employed"
	OccupationHomemaker              Occupation = "homemaker"
)

// HasSocialInsurance reports whether salary income carries employee social
// insurance premiums (and welfare-pension enrollment).
func (o Occupation) HasSocialInsurance() bool {
	return o == OccupationCompanyEmployee || o == OccupationPartTimeWithPension
}

// HasWelfarePension reports whether the occupation accrues the
// earnings-related pension component.
func (o Occupation) HasWelfarePension() bool {
	return o.HasSocialInsurance()
}

// IsPassThrough reports whether gross income is taken home unchanged
// (no salary deduction, insurance, or payroll taxes are modeled).
func (o Occupation) IsPassThrough() bool {
	return o == OccupationSelfEmployed || o == OccupationHomemaker
}

// Valid reports whether the occupation is one of the known values.
func (o Occupation) Valid() bool {
	switch o {
	case OccupationCompanyEmployee, OccupationPartTimeWithPension,
		OccupationPartTimeWithoutPension, OccupationSelfEmployed, OccupationHomemaker:
		return true
	}
	return false
}

// Gender of the household head. Recorded for display; not used by the engine.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// MaritalStatus of the household head.
type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "single"
	MaritalMarried  MaritalStatus = "married"
	MaritalPlanning MaritalStatus = "planning"
)

// HousingType selects which housing plan is active.
type HousingType string

const (
	HousingRent HousingType = "rent"
	HousingOwn  HousingType = "own"
)

// RentPlan describes an ongoing rental with escalation and renewal fees.
type RentPlan struct {
	MonthlyRent        decimal.Decimal `yaml:"monthly_rent"`
	AnnualIncreaseRate decimal.Decimal `yaml:"annual_increase_rate"`
	RenewalFee         decimal.Decimal `yaml:"renewal_fee"`
	RenewalInterval    int             `yaml:"renewal_interval"`
}

// OwnPlan describes a home purchase financed by an amortizing mortgage.
type OwnPlan struct {
	PurchaseYear        int             `yaml:"purchase_year"`
	PurchasePrice       decimal.Decimal `yaml:"purchase_price"`
	LoanAmount          decimal.Decimal `yaml:"loan_amount"`
	InterestRate        decimal.Decimal `yaml:"interest_rate"`
	LoanTermYears       int             `yaml:"loan_term_years"`
	MaintenanceCostRate decimal.Decimal `yaml:"maintenance_cost_rate"`
}

// HousingInfo holds the household's housing configuration. Exactly one of
// Rent/Own is populated, selected by Type.
type HousingInfo struct {
	Type HousingType `yaml:"type"`
	Rent *RentPlan   `yaml:"rent,omitempty"`
	Own  *OwnPlan    `yaml:"own,omitempty"`
}

// SchoolChoice selects the schooling track for a non-university stage.
type SchoolChoice string

const (
	SchoolPublic  SchoolChoice = "public"
	SchoolPrivate SchoolChoice = "private"
	SchoolNone    SchoolChoice = "none"
)

// UniversityChoice selects the university track.
type UniversityChoice string

const (
	UniversityNationalArts    UniversityChoice = "national_arts"
	UniversityNationalScience UniversityChoice = "national_science"
	UniversityPrivateArts     UniversityChoice = "private_arts"
	UniversityPrivateScience  UniversityChoice = "private_science"
	UniversityNone            UniversityChoice = "none"
)

// EducationPlan records the schooling choice for each stage of one child.
type EducationPlan struct {
	Nursery    SchoolChoice     `yaml:"nursery"`
	Preschool  SchoolChoice     `yaml:"preschool"`
	Elementary SchoolChoice     `yaml:"elementary"`
	JuniorHigh SchoolChoice     `yaml:"junior_high"`
	HighSchool SchoolChoice     `yaml:"high_school"`
	University UniversityChoice `yaml:"university"`
}

// Child is an existing child, aged from the plan's start year.
type Child struct {
	CurrentAge    int           `yaml:"current_age"`
	EducationPlan EducationPlan `yaml:"education_plan"`
}

// PlannedChild is a future child expected some years from the start year.
type PlannedChild struct {
	YearsFromNow  int           `yaml:"years_from_now"`
	EducationPlan EducationPlan `yaml:"education_plan"`
}

// SpouseInfo describes the spouse (current or planned). For a planned
// marriage, MarriageAge is the household head's age at marriage and
// AgeAtMarriage the spouse's; for an existing marriage CurrentAge is set.
type SpouseInfo struct {
	CurrentAge           *int       `yaml:"current_age,omitempty"`
	MarriageAge          *int       `yaml:"marriage_age,omitempty"`
	AgeAtMarriage        *int       `yaml:"age_at_marriage,omitempty"`
	Occupation           Occupation `yaml:"occupation,omitempty"`
	WorkStartAge         int        `yaml:"work_start_age,omitempty"`
	PensionStartAge      int        `yaml:"pension_start_age,omitempty"`
	WillWorkAfterPension bool       `yaml:"will_work_after_pension,omitempty"`
}

// BasicInfo is the household profile entered at step one of a plan.
type BasicInfo struct {
	CurrentAge           int             `yaml:"current_age"`
	StartYear            int             `yaml:"start_year"`
	DeathAge             int             `yaml:"death_age"`
	Gender               Gender          `yaml:"gender"`
	MonthlyLivingExpense decimal.Decimal `yaml:"monthly_living_expense"`
	Occupation           Occupation      `yaml:"occupation"`
	MaritalStatus        MaritalStatus   `yaml:"marital_status"`
	Housing              HousingInfo     `yaml:"housing"`
	Spouse               *SpouseInfo     `yaml:"spouse,omitempty"`
	Children             []Child         `yaml:"children,omitempty"`
	PlannedChildren      []PlannedChild  `yaml:"planned_children,omitempty"`

	// Pension settings.
	WorkStartAge         int  `yaml:"work_start_age,omitempty"`
	WorkEndAge           int  `yaml:"work_end_age,omitempty"`
	PensionStartAge      int  `yaml:"pension_start_age,omitempty"`
	WillWorkAfterPension bool `yaml:"will_work_after_pension,omitempty"`
}

// Years returns the simulated year range, start year through the assumed
// end-of-life year inclusive.
func (b *BasicInfo) Years() []int {
	n := b.DeathAge - b.CurrentAge
	if n < 0 {
		return nil
	}
	years := make([]int, n+1)
	for i := range years {
		years[i] = b.StartYear + i
	}
	return years
}

// EndYear is the final simulated year.
func (b *BasicInfo) EndYear() int {
	return b.StartYear + (b.DeathAge - b.CurrentAge)
}

// AgeIn returns the household head's age in the given simulated year.
func (b *BasicInfo) AgeIn(year int) int {
	return b.CurrentAge + (year - b.StartYear)
}

// BirthYear derives the head's birth year from the wall clock.
func (b *BasicInfo) BirthYear(now time.Time) int {
	return now.Year() - b.CurrentAge
}

// EffectivePensionStartAge returns the claim age, defaulting to 65.
func (b *BasicInfo) EffectivePensionStartAge() int {
	if b.PensionStartAge == 0 {
		return 65
	}
	return b.PensionStartAge
}

// EffectiveWorkStartAge returns the working-career start age, defaulting to 22.
func (b *BasicInfo) EffectiveWorkStartAge() int {
	if b.WorkStartAge == 0 {
		return 22
	}
	return b.WorkStartAge
}

// EffectiveWorkEndAge returns the retirement-from-work age, defaulting to 60.
func (b *BasicInfo) EffectiveWorkEndAge() int {
	if b.WorkEndAge == 0 {
		return 60
	}
	return b.WorkEndAge
}

// MarriageYear returns the calendar year of a planned marriage and whether
// one is configured. Degrades to "not configured" when data is incomplete.
func (b *BasicInfo) MarriageYear() (int, bool) {
	if b.MaritalStatus != MaritalPlanning || b.Spouse == nil || b.Spouse.MarriageAge == nil {
		return 0, false
	}
	return b.StartYear + (*b.Spouse.MarriageAge - b.CurrentAge), true
}

// SpouseAgeIn returns the spouse's age in the given year and whether a spouse
// exists (yet) in that year.
func (b *BasicInfo) SpouseAgeIn(year int) (int, bool) {
	if b.Spouse == nil {
		return 0, false
	}
	switch b.MaritalStatus {
	case MaritalMarried:
		if b.Spouse.CurrentAge == nil {
			return 0, false
		}
		return *b.Spouse.CurrentAge + (year - b.StartYear), true
	case MaritalPlanning:
		marriageYear, ok := b.MarriageYear()
		if !ok || b.Spouse.AgeAtMarriage == nil || year < marriageYear {
			return 0, false
		}
		return *b.Spouse.AgeAtMarriage + (year - marriageYear), true
	}
	return 0, false
}

// Parameters are the global simulation rates, all in percent except the
// investment cap which is a man-yen amount.
type Parameters struct {
	InflationRate             decimal.Decimal `yaml:"inflation_rate"`
	EducationCostIncreaseRate decimal.Decimal `yaml:"education_cost_increase_rate"`
	InvestmentReturn          decimal.Decimal `yaml:"investment_return"`
	InvestmentRatio           decimal.Decimal `yaml:"investment_ratio,omitempty"`
	MaxInvestmentAmount       decimal.Decimal `yaml:"max_investment_amount,omitempty"`
}
