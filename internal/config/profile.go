package config

import (
	"fmt"

	"github.com/propfin/affordability/pkg/constants"
	"github.com/propfin/affordability/pkg/mathutil"
)

// FieldError reports a validation failure on one profile field.
type FieldError struct {
	Field   string `json:"field" yaml:"field"`
	Message string `json:"message" yaml:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FinancialProfile holds the detailed-calculator applicant inputs.
type FinancialProfile struct {
	GrossIncome       float64 `yaml:"grossIncome" json:"grossIncome"`
	CoApplicant       bool    `yaml:"coApplicant" json:"coApplicant"`
	CoApplicantIncome float64 `yaml:"coApplicantIncome" json:"coApplicantIncome"`

	// Monthly obligation group
	Utilities     float64 `yaml:"utilities" json:"utilities"`
	Groceries     float64 `yaml:"groceries" json:"groceries"`
	Subscriptions float64 `yaml:"subscriptions" json:"subscriptions"`
	OtherMonthly  float64 `yaml:"otherMonthly" json:"otherMonthly"`

	// Yearly obligation group
	Insurance   float64 `yaml:"insurance" json:"insurance"`
	SchoolFees  float64 `yaml:"schoolFees" json:"schoolFees"`
	PropertyTax float64 `yaml:"propertyTax" json:"propertyTax"`
	OtherYearly float64 `yaml:"otherYearly" json:"otherYearly"`

	ExistingEMIs   float64 `yaml:"existingEMIs" json:"existingEMIs"`
	MonthlySavings float64 `yaml:"monthlySavings" json:"monthlySavings"`
	TotalSavings   float64 `yaml:"totalSavings" json:"totalSavings"`
	DownPayment    float64 `yaml:"downPayment" json:"downPayment"`

	CreditScoreBand     string `yaml:"creditScoreBand" json:"creditScoreBand"` // e.g. "700-749" or "don't know"
	Age                 int    `yaml:"age" json:"age"`
	WorkExperienceYears int    `yaml:"workExperienceYears" json:"workExperienceYears"`

	InterestRate float64 `yaml:"interestRate" json:"interestRate"`
	LoanTenure   int     `yaml:"loanTenure" json:"loanTenure"`
	LoanType     string  `yaml:"loanType" json:"loanType"` // fixed or flexible
	LoanRequired bool    `yaml:"loanRequired" json:"loanRequired"`
}

// TotalMonthlyIncome returns gross income plus the co-applicant's income
// when one is declared.
func (p *FinancialProfile) TotalMonthlyIncome() float64 {
	income := p.GrossIncome
	if p.CoApplicant {
		income += p.CoApplicantIncome
	}
	return income
}

// TotalMonthlyObligations aggregates the monthly group, the yearly group
// spread over twelve months, existing EMIs, and money committed to savings.
// Rent is excluded because it no longer applies after purchase.
func (p *FinancialProfile) TotalMonthlyObligations() float64 {
	monthly := p.Utilities + p.Groceries + p.Subscriptions + p.OtherMonthly
	yearly := p.Insurance + p.SchoolFees + p.PropertyTax + p.OtherYearly
	return mathutil.Round(monthly + yearly/constants.MonthsPerYear + p.ExistingEMIs + p.MonthlySavings)
}

// Validate checks the profile and returns field-level errors. Money fields
// must be non-negative; the rate, tenure, age, and experience must sit in
// their lender-accepted ranges.
func (p *FinancialProfile) Validate() []FieldError {
	var errs []FieldError

	if p.GrossIncome <= 0 {
		errs = append(errs, FieldError{Field: "grossIncome", Message: "gross income must be positive"})
	}
	if p.CoApplicant && p.CoApplicantIncome < 0 {
		errs = append(errs, FieldError{Field: "coApplicantIncome", Message: "co-applicant income cannot be negative"})
	}

	negatives := []struct {
		field string
		value float64
	}{
		{"utilities", p.Utilities},
		{"groceries", p.Groceries},
		{"subscriptions", p.Subscriptions},
		{"otherMonthly", p.OtherMonthly},
		{"insurance", p.Insurance},
		{"schoolFees", p.SchoolFees},
		{"propertyTax", p.PropertyTax},
		{"otherYearly", p.OtherYearly},
		{"existingEMIs", p.ExistingEMIs},
		{"monthlySavings", p.MonthlySavings},
		{"totalSavings", p.TotalSavings},
		{"downPayment", p.DownPayment},
	}
	for _, n := range negatives {
		if n.value < 0 {
			errs = append(errs, FieldError{Field: n.field, Message: "cannot be negative"})
		}
	}

	if p.Age < constants.MinApplicantAge || p.Age > constants.MaxApplicantAge {
		errs = append(errs, FieldError{
			Field:   "age",
			Message: fmt.Sprintf("age must be between %d and %d", constants.MinApplicantAge, constants.MaxApplicantAge),
		})
	}
	if p.WorkExperienceYears < 0 || p.WorkExperienceYears > constants.MaxWorkExperienceYears {
		errs = append(errs, FieldError{
			Field:   "workExperienceYears",
			Message: fmt.Sprintf("work experience must be between 0 and %d years", constants.MaxWorkExperienceYears),
		})
	}

	if p.LoanRequired {
		if p.InterestRate < constants.MinInterestRate || p.InterestRate > constants.MaxInterestRate {
			errs = append(errs, FieldError{
				Field:   "interestRate",
				Message: fmt.Sprintf("interest rate must be between %.1f and %.1f", constants.MinInterestRate, constants.MaxInterestRate),
			})
		}
		if p.LoanTenure < constants.MinTenureYears || p.LoanTenure > constants.MaxTenureYears {
			errs = append(errs, FieldError{
				Field:   "loanTenure",
				Message: fmt.Sprintf("loan tenure must be between %d and %d years", constants.MinTenureYears, constants.MaxTenureYears),
			})
		}
		if p.LoanType != "" && p.LoanType != "fixed" && p.LoanType != "flexible" {
			errs = append(errs, FieldError{Field: "loanType", Message: "loan type must be fixed or flexible"})
		}
	}

	return errs
}

// QuickProfile holds the quick-estimate applicant inputs.
type QuickProfile struct {
	NetIncome    float64 `yaml:"netIncome" json:"netIncome"`
	VariablePay  float64 `yaml:"variablePay" json:"variablePay"` // yearly
	OtherIncome  float64 `yaml:"otherIncome" json:"otherIncome"`
	ExistingEMIs float64 `yaml:"existingEMIs" json:"existingEMIs"`
	CreditCard   float64 `yaml:"creditCard" json:"creditCard"`
	Rent         float64 `yaml:"rent" json:"rent"`
	SchoolFees   float64 `yaml:"schoolFees" json:"schoolFees"` // yearly
	OtherExpense float64 `yaml:"otherExpense" json:"otherExpense"`

	CreditBand      string `yaml:"creditBand" json:"creditBand"`           // excellent, good, fair, poor
	IncomeStability string `yaml:"incomeStability" json:"incomeStability"` // high, medium, low
	EmploymentType  string `yaml:"employmentType" json:"employmentType"`   // salaried, self-employed, business
	Age             int    `yaml:"age" json:"age"`

	LoanTenure   int     `yaml:"loanTenure" json:"loanTenure"`
	DownPayment  float64 `yaml:"downPayment" json:"downPayment"`
	LoanRequired bool    `yaml:"loanRequired" json:"loanRequired"`
}

// MonthlyIncome returns net income plus variable pay spread across the year
// plus other income.
func (q *QuickProfile) MonthlyIncome() float64 {
	return q.NetIncome + q.VariablePay/constants.MonthsPerYear + q.OtherIncome
}

// MonthlyObligations aggregates EMIs, card payments, rent, yearly school
// fees spread across the year, and other expenses.
func (q *QuickProfile) MonthlyObligations() float64 {
	return q.ExistingEMIs + q.CreditCard + q.Rent + q.SchoolFees/constants.MonthsPerYear + q.OtherExpense
}

// Validate checks the quick profile and returns field-level errors.
func (q *QuickProfile) Validate() []FieldError {
	var errs []FieldError

	if q.NetIncome <= 0 {
		errs = append(errs, FieldError{Field: "netIncome", Message: "net income must be positive"})
	}

	negatives := []struct {
		field string
		value float64
	}{
		{"variablePay", q.VariablePay},
		{"otherIncome", q.OtherIncome},
		{"existingEMIs", q.ExistingEMIs},
		{"creditCard", q.CreditCard},
		{"rent", q.Rent},
		{"schoolFees", q.SchoolFees},
		{"otherExpense", q.OtherExpense},
		{"downPayment", q.DownPayment},
	}
	for _, n := range negatives {
		if n.value < 0 {
			errs = append(errs, FieldError{Field: n.field, Message: "cannot be negative"})
		}
	}

	switch q.CreditBand {
	case "excellent", "good", "fair", "poor", "":
	default:
		errs = append(errs, FieldError{Field: "creditBand", Message: "credit band must be excellent, good, fair, or poor"})
	}
	switch q.IncomeStability {
	case "high", "medium", "low", "":
	default:
		errs = append(errs, FieldError{Field: "incomeStability", Message: "income stability must be high, medium, or low"})
	}
	switch q.EmploymentType {
	case "salaried", "self-employed", "business", "":
	default:
		errs = append(errs, FieldError{Field: "employmentType", Message: "employment type must be salaried, self-employed, or business"})
	}

	if q.Age < constants.MinApplicantAge || q.Age > constants.MaxApplicantAge {
		errs = append(errs, FieldError{
			Field:   "age",
			Message: fmt.Sprintf("age must be between %d and %d", constants.MinApplicantAge, constants.MaxApplicantAge),
		})
	}
	if q.LoanRequired && (q.LoanTenure < constants.MinTenureYears || q.LoanTenure > constants.MaxTenureYears) {
		errs = append(errs, FieldError{
			Field:   "loanTenure",
			Message: fmt.Sprintf("loan tenure must be between %d and %d years", constants.MinTenureYears, constants.MaxTenureYears),
		})
	}

	return errs
}
