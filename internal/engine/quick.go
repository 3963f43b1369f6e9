package engine

import (
	"math"

	"github.com/propfin/affordability/internal/config"
	"github.com/propfin/affordability/pkg/comparison"
	"github.com/propfin/affordability/pkg/emi"
	"github.com/propfin/affordability/pkg/foir"
	"github.com/propfin/affordability/pkg/mathutil"
	"github.com/propfin/affordability/pkg/scoring"
	"go.uber.org/zap"
)

// QuickResult is the quick-estimate output.
type QuickResult struct {
	MaxHomePrice        float64                    `json:"maxHomePrice" yaml:"maxHomePrice"`
	MaxLoanAmount       float64                    `json:"maxLoanAmount" yaml:"maxLoanAmount"`
	MonthlyEMI          float64                    `json:"monthlyEMI" yaml:"monthlyEMI"`
	FOIR                float64                    `json:"foir" yaml:"foir"`
	FOIRStatus          foir.Rating                `json:"foirStatus" yaml:"foirStatus"`
	InterestRate        float64                    `json:"interestRate" yaml:"interestRate"`
	DownPayment         float64                    `json:"downPayment" yaml:"downPayment"`
	BasePrice           float64                    `json:"basePrice" yaml:"basePrice"`
	Charges             comparison.ChargeBreakdown `json:"charges" yaml:"charges"`
	MonthlyIncome       float64                    `json:"monthlyIncome" yaml:"monthlyIncome"`
	MonthlyObligations  float64                    `json:"monthlyObligations" yaml:"monthlyObligations"`
	ReadinessScore      int                        `json:"readinessScore" yaml:"readinessScore"`
	ReadinessStatus     scoring.Status             `json:"readinessStatus" yaml:"readinessStatus"`
	NoLoanRequired      bool                       `json:"noLoanRequired" yaml:"noLoanRequired"`
}

// InterestRateFor derives the quick-estimate interest rate from the credit
// band, adjusted for employment type and income stability.
func InterestRateFor(quick *config.QuickProfile) float64 {
	rate := 8.5
	switch quick.CreditBand {
	case "excellent":
		rate = 7.5
	case "good":
		rate = 8.5
	case "fair":
		rate = 9.5
	case "poor":
		rate = 11.0
	}

	switch quick.EmploymentType {
	case "self-employed":
		rate += 0.5
	case "business":
		rate += 0.75
	}

	switch quick.IncomeStability {
	case "low":
		rate += 0.5
	case "high":
		rate -= 0.25
	}

	return rate
}

// ComputeQuickEstimate runs the quick affordability estimate on a validated
// quick profile.
func ComputeQuickEstimate(logger *zap.Logger, quick *config.QuickProfile) (*QuickResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if quick == nil {
		return nil, ErrNilProfile
	}

	income := quick.MonthlyIncome()
	obligations := quick.MonthlyObligations()

	if !quick.LoanRequired {
		result := &QuickResult{
			MaxHomePrice:       quick.DownPayment,
			DownPayment:        quick.DownPayment,
			BasePrice:          quick.DownPayment,
			MonthlyIncome:      mathutil.Round(income),
			MonthlyObligations: mathutil.Round(obligations),
			NoLoanRequired:     true,
		}
		result.FOIRStatus = foir.FourBandScale.Classify(0)
		result.ReadinessScore = scoring.WeightedReadiness(scoring.WeightedInput{
			IncomeStability:  quick.IncomeStability,
			CreditBand:       quick.CreditBand,
			DownPayment:      quick.DownPayment,
			MaxPropertyPrice: result.MaxHomePrice,
			Age:              quick.Age,
		})
		result.ReadinessStatus = scoring.ReadinessStatus(result.ReadinessScore)
		return result, nil
	}

	ratio := foir.Compute(income, obligations)
	rate := InterestRateFor(quick)

	// The lender caps total outgo at half the net income.
	maxEMI := math.Max(0, income*0.5-obligations)
	maxLoan := emi.PrincipalForPayment(maxEMI, rate, quick.LoanTenure)

	basePrice := maxLoan + quick.DownPayment
	charges := comparison.Charges(basePrice)
	maxHomePrice := basePrice - charges.Total

	result := &QuickResult{
		MaxHomePrice:       mathutil.Round(maxHomePrice),
		MaxLoanAmount:      maxLoan,
		MonthlyEMI:         mathutil.Round(maxEMI),
		FOIR:               ratio,
		FOIRStatus:         foir.FourBandScale.Classify(ratio),
		InterestRate:       rate,
		DownPayment:        quick.DownPayment,
		BasePrice:          mathutil.Round(basePrice),
		Charges:            charges,
		MonthlyIncome:      mathutil.Round(income),
		MonthlyObligations: mathutil.Round(obligations),
	}

	result.ReadinessScore = scoring.WeightedReadiness(scoring.WeightedInput{
		IncomeStability:  quick.IncomeStability,
		CreditBand:       quick.CreditBand,
		DownPayment:      quick.DownPayment,
		MaxPropertyPrice: result.MaxHomePrice,
		Age:              quick.Age,
	})
	result.ReadinessStatus = scoring.ReadinessStatus(result.ReadinessScore)

	logger.Debug("computed quick estimate",
		zap.String("op", "engine.ComputeQuickEstimate"),
		zap.Float64("income", income),
		zap.Float64("obligations", obligations),
		zap.Float64("interestRate", rate),
		zap.Float64("maxLoanAmount", maxLoan),
		zap.Float64("maxHomePrice", result.MaxHomePrice),
	)

	return result, nil
}
