// Package engine orchestrates the affordability products: the detailed
// calculator, the quick estimate, and the what-if scenario generator.
package engine

import (
	"errors"

	"github.com/propfin/affordability/internal/config"
	"github.com/propfin/affordability/pkg/constants"
	"github.com/propfin/affordability/pkg/emi"
	"github.com/propfin/affordability/pkg/foir"
	"github.com/propfin/affordability/pkg/projection"
	"github.com/propfin/affordability/pkg/scoring"
	"go.uber.org/zap"
)

// ErrNilProfile is returned when a computation is attempted without a profile.
var ErrNilProfile = errors.New("engine: nil profile")

// ObligationBreakdown itemizes the monthly obligation figure.
type ObligationBreakdown struct {
	MonthlyExpenses   float64 `json:"monthlyExpenses" yaml:"monthlyExpenses"`
	YearlyExpenses    float64 `json:"yearlyExpenses" yaml:"yearlyExpenses"`
	ExistingEMIs      float64 `json:"existingEMIs" yaml:"existingEMIs"`
	MonthlySavings    float64 `json:"monthlySavings" yaml:"monthlySavings"`
	CoApplicantIncome float64 `json:"coApplicantIncome" yaml:"coApplicantIncome"`
}

// AffordabilityResult is the full detailed-calculator output.
type AffordabilityResult struct {
	TotalMonthlyIncome      float64               `json:"totalMonthlyIncome" yaml:"totalMonthlyIncome"`
	TotalMonthlyObligations float64               `json:"totalMonthlyObligations" yaml:"totalMonthlyObligations"`
	FOIR                    float64               `json:"foir" yaml:"foir"`
	FOIRStatus              foir.Rating           `json:"foirStatus" yaml:"foirStatus"`
	ReadinessScore          int                   `json:"readinessScore" yaml:"readinessScore"`
	ReadinessStatus         scoring.Status        `json:"readinessStatus" yaml:"readinessStatus"`
	SavingsProfile          scoring.SavingsResult `json:"savingsProfile" yaml:"savingsProfile"`
	MaxLoanAmount           float64               `json:"maxLoanAmount" yaml:"maxLoanAmount"`
	MaxPropertyPrice        float64               `json:"maxPropertyPrice" yaml:"maxPropertyPrice"`
	MaxEMI                  float64               `json:"maxEMI" yaml:"maxEMI"`
	EMIVariations           *emi.Variation        `json:"emiVariations,omitempty" yaml:"emiVariations,omitempty"`
	Projection              projection.Result     `json:"projection" yaml:"projection"`
	Guidance                Guidance              `json:"guidance" yaml:"guidance"`
	Breakdown               ObligationBreakdown   `json:"breakdown" yaml:"breakdown"`
	NoLoanNeeded            bool                  `json:"noLoanNeeded" yaml:"noLoanNeeded"`
}

// ComputeAffordability runs the detailed affordability calculation on a
// validated profile.
func ComputeAffordability(logger *zap.Logger, profile *config.FinancialProfile) (*AffordabilityResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if profile == nil {
		return nil, ErrNilProfile
	}

	income := profile.TotalMonthlyIncome()
	obligations := profile.TotalMonthlyObligations()

	ratio := foir.Compute(income, obligations)
	readiness := scoring.StrictReadiness(profile.Age, profile.WorkExperienceYears, profile.CreditScoreBand, ratio)

	result := &AffordabilityResult{
		TotalMonthlyIncome:      income,
		TotalMonthlyObligations: obligations,
		FOIR:                    ratio,
		FOIRStatus:              foir.FiveBandScale.Classify(ratio),
		ReadinessScore:          readiness,
		ReadinessStatus:         scoring.ReadinessStatus(readiness),
		SavingsProfile:          scoring.SavingsProfile(income, profile.MonthlySavings, profile.TotalSavings),
		Breakdown: ObligationBreakdown{
			MonthlyExpenses: profile.Utilities + profile.Groceries + profile.Subscriptions + profile.OtherMonthly,
			YearlyExpenses:  profile.Insurance + profile.SchoolFees + profile.PropertyTax + profile.OtherYearly,
			ExistingEMIs:    profile.ExistingEMIs,
			MonthlySavings:  profile.MonthlySavings,
		},
	}
	if profile.CoApplicant {
		result.Breakdown.CoApplicantIncome = profile.CoApplicantIncome
	}

	if !profile.LoanRequired {
		// Buying outright: affordability is just the accumulated down payment.
		result.NoLoanNeeded = true
		result.MaxPropertyPrice = profile.DownPayment
		result.Guidance = generateGuidance(profile, ratio, readiness, result.MaxPropertyPrice)
		logger.Debug("computed affordability without loan",
			zap.String("op", "engine.ComputeAffordability"),
			zap.Float64("maxPropertyPrice", result.MaxPropertyPrice),
		)
		return result, nil
	}

	result.MaxLoanAmount = emi.MaxLoanAmount(income, obligations, profile.InterestRate, profile.LoanTenure)
	result.MaxPropertyPrice = result.MaxLoanAmount + profile.DownPayment
	result.MaxEMI = emi.Compute(result.MaxLoanAmount, profile.InterestRate, profile.LoanTenure)

	if profile.LoanType == "flexible" {
		variations := emi.Variations(result.MaxLoanAmount, profile.InterestRate, profile.LoanTenure)
		result.EMIVariations = &variations
	}

	result.Projection = projection.Project(income, result.MaxEMI,
		constants.DefaultIncomeGrowthRate, constants.DefaultProjectionYears)
	result.Guidance = generateGuidance(profile, ratio, readiness, result.MaxPropertyPrice)

	logger.Debug("computed affordability",
		zap.String("op", "engine.ComputeAffordability"),
		zap.Float64("income", income),
		zap.Float64("obligations", obligations),
		zap.Float64("foir", ratio),
		zap.Int("readinessScore", readiness),
		zap.Float64("maxLoanAmount", result.MaxLoanAmount),
		zap.Float64("maxPropertyPrice", result.MaxPropertyPrice),
	)

	return result, nil
}
