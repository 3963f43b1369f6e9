package scoring

import "github.com/propfin/affordability/pkg/constants"

// RiskResult reports the lender risk level with the factors that drove it.
type RiskResult struct {
	Level   string   `json:"level" yaml:"level"`
	Score   int      `json:"score" yaml:"score"`
	Factors []string `json:"factors" yaml:"factors"`
	Message string   `json:"message" yaml:"message"`
}

// AssessRisk scores approval risk additively from the FOIR, credit score,
// and income level, and maps the total to a risk band.
func AssessRisk(foirPercent float64, creditScore int, grossMonthlyIncome float64) RiskResult {
	score := 0
	var factors []string

	switch {
	case foirPercent > 60:
		score += 40
		factors = append(factors, "Very high FOIR (>60%)")
	case foirPercent > 45:
		score += 25
		factors = append(factors, "High FOIR (>45%)")
	}

	switch {
	case creditScore < 550:
		score += 30
		factors = append(factors, "Poor CIBIL score")
	case creditScore < 650:
		score += 15
		factors = append(factors, "Fair CIBIL score")
	}

	if grossMonthlyIncome < constants.LowIncomeThreshold {
		score += 20
		factors = append(factors, "Low monthly income")
	}

	result := RiskResult{Score: score, Factors: factors}
	switch {
	case score >= 70:
		result.Level = "High"
		result.Message = "Significant improvements needed before loan approval"
	case score >= 40:
		result.Level = "Medium"
		result.Message = "Moderate improvements recommended for better terms"
	case score >= 20:
		result.Level = "Low"
		result.Message = "Minor improvements can enhance loan terms"
	default:
		result.Level = "Very Low"
		result.Message = "Excellent financial profile for loan approval"
	}

	return result
}
