package scoring

import (
	"github.com/propfin/affordability/pkg/constants"
	"github.com/propfin/affordability/pkg/mathutil"
)

// SavingsResult reports the savings-health score with its supporting ratios
// and the recommendations for the scored band.
type SavingsResult struct {
	Score               int      `json:"score" yaml:"score"`
	Status              string   `json:"status" yaml:"status"`
	Description         string   `json:"description" yaml:"description"`
	SavingsRate         float64  `json:"savingsRate" yaml:"savingsRate"`
	EmergencyFundMonths float64  `json:"emergencyFundMonths" yaml:"emergencyFundMonths"`
	Recommendations     []string `json:"recommendations" yaml:"recommendations"`
}

// SavingsProfile scores savings health out of 100 across three weighted
// factors: monthly savings rate (50 points), emergency-fund coverage against
// assumed expenses of 60% of income (30 points), and accumulated savings
// relative to income (20 points).
func SavingsProfile(monthlyIncome, monthlySavings, totalSavings float64) SavingsResult {
	savingsRate := 0.0
	if monthlyIncome > 0 {
		savingsRate = monthlySavings / monthlyIncome * 100
	}

	monthlyExpenses := monthlyIncome * constants.ExpenseRatio
	emergencyFundMonths := 0.0
	if monthlyExpenses > 0 {
		emergencyFundMonths = totalSavings / monthlyExpenses
	}

	score := 0

	switch {
	case savingsRate >= 30:
		score += 50
	case savingsRate >= 20:
		score += 40
	case savingsRate >= 15:
		score += 30
	case savingsRate >= 10:
		score += 20
	case savingsRate >= 5:
		score += 10
	}

	switch {
	case emergencyFundMonths >= 12:
		score += 30
	case emergencyFundMonths >= 8:
		score += 25
	case emergencyFundMonths >= 6:
		score += 20
	case emergencyFundMonths >= 4:
		score += 15
	case emergencyFundMonths >= 2:
		score += 10
	}

	// The accumulated-savings factor only applies to a funded account; an
	// all-zero profile must not score points from 0 >= 12*0.
	if totalSavings > 0 {
		switch {
		case totalSavings >= monthlyIncome*12:
			score += 20
		case totalSavings >= monthlyIncome*8:
			score += 15
		case totalSavings >= monthlyIncome*6:
			score += 10
		case totalSavings >= monthlyIncome*3:
			score += 5
		}
	}

	result := SavingsResult{
		Score:               score,
		SavingsRate:         mathutil.RoundTenth(savingsRate),
		EmergencyFundMonths: mathutil.RoundTenth(emergencyFundMonths),
	}

	switch {
	case score >= 80:
		result.Status = "Excellent"
		result.Description = "Strong savings discipline with excellent emergency fund"
		result.Recommendations = []string{
			"Maintain your current savings rate",
			"Consider investing in higher-yield instruments",
			"You have excellent financial security",
		}
	case score >= 60:
		result.Status = "Good"
		result.Description = "Good savings habits with adequate emergency fund"
		result.Recommendations = []string{
			"Try to increase savings rate to 20-30%",
			"Build emergency fund to 8-12 months",
			"Consider systematic investment plans",
		}
	case score >= 40:
		result.Status = "Fair"
		result.Description = "Moderate savings with room for improvement"
		result.Recommendations = []string{
			"Aim for 15-20% monthly savings rate",
			"Build emergency fund to 6-8 months",
			"Start with small, consistent savings",
		}
	case score >= 20:
		result.Status = "Poor"
		result.Description = "Low savings rate, needs immediate attention"
		result.Recommendations = []string{
			"Start with 10% monthly savings",
			"Build emergency fund to 3-6 months",
			"Reduce non-essential expenses",
			"Consider additional income sources",
		}
	default:
		result.Status = "Critical"
		result.Description = "Very low savings, high financial risk"
		result.Recommendations = []string{
			"Immediate focus on building emergency fund",
			"Aim for minimum 10% monthly savings",
			"Review and reduce all expenses",
			"Seek financial counseling if needed",
		}
	}

	return result
}
